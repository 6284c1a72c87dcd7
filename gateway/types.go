package gateway

// Record is a single row as the record store returns it. Field names follow the
// store's convention (bare "Id"/"Name"/"Tags" plus "_c" suffixed custom fields).
type Record map[string]interface{}

// Field selects one column in a fetch request.
type Field struct {
	Name string `json:"name"`
}

// Where is a single filter condition. Operator is one of the store's operators
// ("EqualTo", "Contains").
type Where struct {
	FieldName string   `json:"fieldName"`
	Operator  string   `json:"operator"`
	Values    []string `json:"values"`
}

// WhereGroup combines sub-conditions with AND/OR. Only one level of nesting is
// used by this application (OR across single-condition subgroups).
type WhereGroup struct {
	Operator  string     `json:"operator"`
	SubGroups []SubGroup `json:"subGroups"`
}

type SubGroup struct {
	Operator   string  `json:"operator"`
	Conditions []Where `json:"conditions"`
}

// OrderBy sorts the fetch result. SortType is "ASC" or "DESC".
type OrderBy struct {
	FieldName string `json:"fieldName"`
	SortType  string `json:"sortType"`
}

type PagingInfo struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// FetchRequest shapes a filtered read.
type FetchRequest struct {
	Fields      []Field      `json:"fields,omitempty"`
	Where       []Where      `json:"where,omitempty"`
	WhereGroups []WhereGroup `json:"whereGroups,omitempty"`
	OrderBy     []OrderBy    `json:"orderBy,omitempty"`
	PagingInfo  *PagingInfo  `json:"pagingInfo,omitempty"`
}

// WriteRequest carries records for create/update. Batches are always size one
// at current call sites; the per-record result contract still applies.
type WriteRequest struct {
	Records []Record `json:"records"`
}

type DeleteRequest struct {
	RecordIDs []int `json:"RecordIds"`
}

// FunctionRequest invokes a hosted side-effect function (email sender).
type FunctionRequest struct {
	Body    string            `json:"body"`
	Headers map[string]string `json:"headers,omitempty"`
}

// RecordResult is the per-record outcome inside a write response.
type RecordResult struct {
	Success bool   `json:"success"`
	Data    Record `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// Response is the store's uniform envelope. Success=false carries Message;
// transport failures are reported through the method's error return instead.
type Response struct {
	Success bool           `json:"success"`
	Data    []Record       `json:"data,omitempty"`
	Record  Record         `json:"record,omitempty"`
	Results []RecordResult `json:"results,omitempty"`
	Message string         `json:"message,omitempty"`
}

// Fields builds a field selection list from plain names.
func Fields(names ...string) []Field {
	fields := make([]Field, len(names))
	for i, name := range names {
		fields[i] = Field{Name: name}
	}
	return fields
}

// RecordGateway is the remote store boundary. Implementations: Client (hosted
// store over HTTP) and LocalGateway (gorm-backed, for development and tests).
type RecordGateway interface {
	FetchRecords(entity string, req FetchRequest) (*Response, error)
	GetRecordByID(entity string, id int, req FetchRequest) (*Response, error)
	CreateRecord(entity string, req WriteRequest) (*Response, error)
	UpdateRecord(entity string, req WriteRequest) (*Response, error)
	DeleteRecord(entity string, req DeleteRequest) (*Response, error)
	InvokeFunction(functionID string, req FunctionRequest) (*Response, error)
}

// Entity names at the store boundary.
const (
	EntityMenuItem       = "menu_item_c"
	EntityPhoto          = "photo_c"
	EntityReservation    = "reservation_c"
	EntityRestaurantInfo = "restaurant_info_c"
	EntityReview         = "review_c"
)
