package gateway

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/tavolo-app/backend/utils"
)

// localRecord is one stored row. Fields holds the record's store-convention
// field map as JSON, so every entity shares one table.
type localRecord struct {
	ID        uint      `gorm:"primaryKey"`
	Entity    string    `gorm:"type:varchar(64);index;not null"`
	Fields    string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// LocalGateway implements RecordGateway on a gorm database. It backs
// development and test runs where the hosted record store is not reachable.
// Filtering, ordering and paging happen in-process after a per-entity scan;
// the data volumes here (menus, photos, reservations) make that acceptable.
type LocalGateway struct {
	db *gorm.DB
}

func NewLocalGateway(db *gorm.DB) (*LocalGateway, error) {
	if err := db.AutoMigrate(&localRecord{}); err != nil {
		return nil, fmt.Errorf("error migrating local records: %v", err)
	}
	return &LocalGateway{db: db}, nil
}

func (lg *LocalGateway) FetchRecords(entity string, req FetchRequest) (*Response, error) {
	var rows []localRecord
	if err := lg.db.Where("entity = ?", entity).Order("id").Find(&rows).Error; err != nil {
		return &Response{Success: false, Message: err.Error()}, nil
	}

	var records []Record
	for _, row := range rows {
		rec, err := row.decode()
		if err != nil {
			return &Response{Success: false, Message: err.Error()}, nil
		}
		if !matchesWheres(rec, req.Where) || !matchesWhereGroups(rec, req.WhereGroups) {
			continue
		}
		records = append(records, rec)
	}

	sortRecords(records, req.OrderBy)
	records = pageRecords(records, req.PagingInfo)

	if len(req.Fields) > 0 {
		for i, rec := range records {
			records[i] = projectFields(rec, req.Fields)
		}
	}

	return &Response{Success: true, Data: records}, nil
}

func (lg *LocalGateway) GetRecordByID(entity string, id int, req FetchRequest) (*Response, error) {
	var row localRecord
	err := lg.db.Where("entity = ? AND id = ?", entity, id).First(&row).Error
	if err == gorm.ErrRecordNotFound {
		return &Response{Success: false, Message: fmt.Sprintf("record %d does not exist", id)}, nil
	}
	if err != nil {
		return &Response{Success: false, Message: err.Error()}, nil
	}

	rec, err := row.decode()
	if err != nil {
		return &Response{Success: false, Message: err.Error()}, nil
	}
	if len(req.Fields) > 0 {
		rec = projectFields(rec, req.Fields)
	}
	return &Response{Success: true, Record: rec}, nil
}

func (lg *LocalGateway) CreateRecord(entity string, req WriteRequest) (*Response, error) {
	results := make([]RecordResult, 0, len(req.Records))
	for _, fields := range req.Records {
		encoded, err := json.Marshal(fields)
		if err != nil {
			results = append(results, RecordResult{Success: false, Message: err.Error()})
			continue
		}
		row := localRecord{Entity: entity, Fields: string(encoded)}
		if err := lg.db.Create(&row).Error; err != nil {
			results = append(results, RecordResult{Success: false, Message: err.Error()})
			continue
		}
		created, err := row.decode()
		if err != nil {
			results = append(results, RecordResult{Success: false, Message: err.Error()})
			continue
		}
		results = append(results, RecordResult{Success: true, Data: created})
	}
	return &Response{Success: true, Results: results}, nil
}

func (lg *LocalGateway) UpdateRecord(entity string, req WriteRequest) (*Response, error) {
	results := make([]RecordResult, 0, len(req.Records))
	for _, fields := range req.Records {
		id, ok := recordID(fields)
		if !ok {
			results = append(results, RecordResult{Success: false, Message: "record Id is required for update"})
			continue
		}

		var row localRecord
		err := lg.db.Where("entity = ? AND id = ?", entity, id).First(&row).Error
		if err != nil {
			results = append(results, RecordResult{Success: false, Message: fmt.Sprintf("record %d does not exist", id)})
			continue
		}

		current, err := row.decode()
		if err != nil {
			results = append(results, RecordResult{Success: false, Message: err.Error()})
			continue
		}
		for name, value := range fields {
			if name == "Id" {
				continue
			}
			current[name] = value
		}
		delete(current, "Id")

		encoded, err := json.Marshal(current)
		if err != nil {
			results = append(results, RecordResult{Success: false, Message: err.Error()})
			continue
		}
		row.Fields = string(encoded)
		if err := lg.db.Save(&row).Error; err != nil {
			results = append(results, RecordResult{Success: false, Message: err.Error()})
			continue
		}
		updated, _ := row.decode()
		results = append(results, RecordResult{Success: true, Data: updated})
	}
	return &Response{Success: true, Results: results}, nil
}

func (lg *LocalGateway) DeleteRecord(entity string, req DeleteRequest) (*Response, error) {
	results := make([]RecordResult, 0, len(req.RecordIDs))
	for _, id := range req.RecordIDs {
		res := lg.db.Where("entity = ? AND id = ?", entity, id).Delete(&localRecord{})
		if res.Error != nil {
			results = append(results, RecordResult{Success: false, Message: res.Error.Error()})
			continue
		}
		if res.RowsAffected == 0 {
			results = append(results, RecordResult{Success: false, Message: fmt.Sprintf("record %d does not exist", id)})
			continue
		}
		results = append(results, RecordResult{Success: true})
	}
	return &Response{Success: true, Results: results}, nil
}

// InvokeFunction has no hosted functions to call locally; it logs the request
// and reports success so callers behave the same as against the hosted store.
func (lg *LocalGateway) InvokeFunction(functionID string, req FunctionRequest) (*Response, error) {
	utils.InfoLogger.Printf("local gateway: skipping function %s invocation", functionID)
	return &Response{Success: true}, nil
}

func (row localRecord) decode() (Record, error) {
	rec := Record{}
	if err := json.Unmarshal([]byte(row.Fields), &rec); err != nil {
		return nil, fmt.Errorf("error decoding record %d: %v", row.ID, err)
	}
	rec["Id"] = float64(row.ID)
	return rec, nil
}

func recordID(rec Record) (uint, bool) {
	switch v := rec["Id"].(type) {
	case float64:
		return uint(v), true
	case int:
		return uint(v), true
	case uint:
		return v, true
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return uint(n), true
	default:
		return 0, false
	}
}

func matchesWheres(rec Record, wheres []Where) bool {
	for _, w := range wheres {
		if !matchesWhere(rec, w) {
			return false
		}
	}
	return true
}

func matchesWhere(rec Record, w Where) bool {
	value := stringValue(rec[w.FieldName])
	switch w.Operator {
	case "EqualTo":
		for _, want := range w.Values {
			if value == want {
				return true
			}
		}
		return false
	case "Contains":
		for _, want := range w.Values {
			if strings.Contains(strings.ToLower(value), strings.ToLower(want)) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func matchesWhereGroups(rec Record, groups []WhereGroup) bool {
	for _, group := range groups {
		if !matchesWhereGroup(rec, group) {
			return false
		}
	}
	return true
}

func matchesWhereGroup(rec Record, group WhereGroup) bool {
	anyMatch := false
	for _, sub := range group.SubGroups {
		subMatch := matchesConditions(rec, sub.Conditions, sub.Operator)
		if subMatch {
			anyMatch = true
		} else if group.Operator != "OR" {
			return false
		}
	}
	if group.Operator == "OR" {
		return anyMatch || len(group.SubGroups) == 0
	}
	return true
}

func matchesConditions(rec Record, conditions []Where, operator string) bool {
	if operator == "OR" {
		for _, cond := range conditions {
			if matchesWhere(rec, cond) {
				return true
			}
		}
		return len(conditions) == 0
	}
	for _, cond := range conditions {
		if !matchesWhere(rec, cond) {
			return false
		}
	}
	return true
}

func sortRecords(records []Record, orderBy []OrderBy) {
	if len(orderBy) == 0 {
		return
	}
	sort.SliceStable(records, func(i, j int) bool {
		for _, ob := range orderBy {
			cmp := compareValues(records[i][ob.FieldName], records[j][ob.FieldName])
			if cmp == 0 {
				continue
			}
			if ob.SortType == "DESC" {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
}

func compareValues(a, b interface{}) int {
	na, okA := numericValue(a)
	nb, okB := numericValue(b)
	if okA && okB {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(stringValue(a), stringValue(b))
}

func numericValue(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

func stringValue(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return fmt.Sprintf("%v", s)
	}
}

func pageRecords(records []Record, paging *PagingInfo) []Record {
	if paging == nil {
		return records
	}
	start := paging.Offset
	if start > len(records) {
		return nil
	}
	end := len(records)
	if paging.Limit > 0 && start+paging.Limit < end {
		end = start + paging.Limit
	}
	return records[start:end]
}

func projectFields(rec Record, fields []Field) Record {
	out := Record{}
	for _, f := range fields {
		if value, ok := rec[f.Name]; ok {
			out[f.Name] = value
		}
	}
	return out
}
