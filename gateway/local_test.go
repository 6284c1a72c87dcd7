package gateway

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tavolo-app/backend/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

func setupLocalGateway(t *testing.T) *LocalGateway {
	t.Helper()
	// one in-memory database per test, shared across pooled connections
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	lg, err := NewLocalGateway(db)
	if err != nil {
		t.Fatalf("failed to set up local gateway: %v", err)
	}
	return lg
}

func seedReview(t *testing.T, lg *LocalGateway, name string, rating int) Record {
	t.Helper()
	resp, err := lg.CreateRecord(EntityReview, WriteRequest{Records: []Record{{
		"Name":            name,
		"reviewer_name_c": name,
		"rating_c":        rating,
		"review_text_c":   "text",
		"date_c":          "2024-05-01",
		"verified_c":      false,
	}}})
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.True(t, resp.Results[0].Success)
	return resp.Results[0].Data
}

func TestLocalGatewayCreateAndFetch(t *testing.T) {
	lg := setupLocalGateway(t)
	created := seedReview(t, lg, "Ana", 5)
	seedReview(t, lg, "Bob", 3)

	assert.NotNil(t, created["Id"])

	resp, err := lg.FetchRecords(EntityReview, FetchRequest{})
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data, 2)
}

func TestLocalGatewayWhereEqualTo(t *testing.T) {
	lg := setupLocalGateway(t)
	seedReview(t, lg, "Ana", 5)
	seedReview(t, lg, "Bob", 3)

	resp, err := lg.FetchRecords(EntityReview, FetchRequest{
		Where: []Where{{FieldName: "rating_c", Operator: "EqualTo", Values: []string{"5"}}},
	})
	assert.NoError(t, err)
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, "Ana", resp.Data[0]["reviewer_name_c"])
}

func TestLocalGatewayWhereGroupsOr(t *testing.T) {
	lg := setupLocalGateway(t)
	resp, err := lg.CreateRecord(EntityMenuItem, WriteRequest{Records: []Record{
		{"name_c": "Bruschetta", "description_c": "Grilled bread", "category_c": "appetizers"},
		{"name_c": "Tiramisu", "description_c": "Coffee dessert", "category_c": "desserts"},
		{"name_c": "Espresso", "description_c": "Short coffee", "category_c": "drinks"},
	}})
	assert.NoError(t, err)
	assert.True(t, resp.Success)

	// matches name on one record and description on another
	fetched, err := lg.FetchRecords(EntityMenuItem, FetchRequest{
		WhereGroups: []WhereGroup{{
			Operator: "OR",
			SubGroups: []SubGroup{
				{Operator: "OR", Conditions: []Where{{FieldName: "name_c", Operator: "Contains", Values: []string{"espresso"}}}},
				{Operator: "OR", Conditions: []Where{{FieldName: "description_c", Operator: "Contains", Values: []string{"coffee"}}}},
			},
		}},
	})
	assert.NoError(t, err)
	assert.Len(t, fetched.Data, 2)
}

func TestLocalGatewayOrderByAndPaging(t *testing.T) {
	lg := setupLocalGateway(t)
	seedReview(t, lg, "Ana", 2)
	seedReview(t, lg, "Bob", 5)
	seedReview(t, lg, "Cyn", 4)

	resp, err := lg.FetchRecords(EntityReview, FetchRequest{
		OrderBy:    []OrderBy{{FieldName: "rating_c", SortType: "DESC"}},
		PagingInfo: &PagingInfo{Limit: 2},
	})
	assert.NoError(t, err)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, "Bob", resp.Data[0]["reviewer_name_c"])
	assert.Equal(t, "Cyn", resp.Data[1]["reviewer_name_c"])
}

func TestLocalGatewayFieldProjection(t *testing.T) {
	lg := setupLocalGateway(t)
	seedReview(t, lg, "Ana", 5)

	resp, err := lg.FetchRecords(EntityReview, FetchRequest{
		Fields: Fields("Id", "rating_c"),
	})
	assert.NoError(t, err)
	assert.Len(t, resp.Data, 1)
	assert.Contains(t, resp.Data[0], "rating_c")
	assert.NotContains(t, resp.Data[0], "reviewer_name_c")
}

func TestLocalGatewayGetByID(t *testing.T) {
	lg := setupLocalGateway(t)
	created := seedReview(t, lg, "Ana", 5)
	id, ok := recordID(created)
	assert.True(t, ok)

	resp, err := lg.GetRecordByID(EntityReview, int(id), FetchRequest{})
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Ana", resp.Record["reviewer_name_c"])

	missing, err := lg.GetRecordByID(EntityReview, 9999, FetchRequest{})
	assert.NoError(t, err)
	assert.False(t, missing.Success)
}

func TestLocalGatewayUpdateMergesFields(t *testing.T) {
	lg := setupLocalGateway(t)
	created := seedReview(t, lg, "Ana", 5)
	id, _ := recordID(created)

	resp, err := lg.UpdateRecord(EntityReview, WriteRequest{Records: []Record{{
		"Id":       int(id),
		"rating_c": 4,
	}}})
	assert.NoError(t, err)
	assert.True(t, resp.Results[0].Success)

	fetched, err := lg.GetRecordByID(EntityReview, int(id), FetchRequest{})
	assert.NoError(t, err)
	// updated field changed, untouched fields survived the merge
	assert.Equal(t, float64(4), fetched.Record["rating_c"])
	assert.Equal(t, "Ana", fetched.Record["reviewer_name_c"])
}

func TestLocalGatewayUpdateWithoutID(t *testing.T) {
	lg := setupLocalGateway(t)
	resp, err := lg.UpdateRecord(EntityReview, WriteRequest{Records: []Record{{"rating_c": 4}}})
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.False(t, resp.Results[0].Success)
}

func TestLocalGatewayDelete(t *testing.T) {
	lg := setupLocalGateway(t)
	created := seedReview(t, lg, "Ana", 5)
	id, _ := recordID(created)

	resp, err := lg.DeleteRecord(EntityReview, DeleteRequest{RecordIDs: []int{int(id)}})
	assert.NoError(t, err)
	assert.True(t, resp.Results[0].Success)

	again, err := lg.DeleteRecord(EntityReview, DeleteRequest{RecordIDs: []int{int(id)}})
	assert.NoError(t, err)
	assert.False(t, again.Results[0].Success)
}

func TestLocalGatewayEntitiesAreIsolated(t *testing.T) {
	lg := setupLocalGateway(t)
	seedReview(t, lg, "Ana", 5)

	resp, err := lg.FetchRecords(EntityPhoto, FetchRequest{})
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Data)
}
