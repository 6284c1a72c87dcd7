package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tavolo-app/backend/gateway"
	"github.com/tavolo-app/backend/models"
)

func infoRecord() gateway.Record {
	return gateway.Record{
		"Id":                float64(1),
		"name_c":            "Tavolo",
		"address_c":         "12 Via Roma",
		"phone_c":           "555-0100",
		"email_c":           "hello@tavolo.example",
		"hours_monday_c":    "Closed",
		"hours_tuesday_c":   "17:00-23:00",
		"hours_wednesday_c": "17:00-23:00",
		"hours_thursday_c":  "17:00-23:00",
		"hours_friday_c":    "17:00-24:00",
		"hours_saturday_c":  "17:00-24:00",
		"hours_sunday_c":    "16:00-22:00",
		"coordinates_lat_c": 41.9,
		"coordinates_lng_c": 12.49,
	}
}

func TestGetInfo(t *testing.T) {
	fake := &fakeGateway{fetchFn: func(entity string, req gateway.FetchRequest) (*gateway.Response, error) {
		assert.Equal(t, gateway.EntityRestaurantInfo, entity)
		assert.Equal(t, 1, req.PagingInfo.Limit)
		return fetchResponse(infoRecord()), nil
	}}
	svc := NewRestaurantService(fake)

	info, err := svc.GetInfo()
	assert.NoError(t, err)
	assert.Equal(t, "Tavolo", info.Name)
	assert.Equal(t, "Closed", info.Hours.Monday)
	assert.Equal(t, 41.9, info.Coordinates.Lat)
}

func TestGetInfoAbsentSingleton(t *testing.T) {
	svc := NewRestaurantService(&fakeGateway{fetchFn: func(string, gateway.FetchRequest) (*gateway.Response, error) {
		return fetchResponse(), nil
	}})

	info, err := svc.GetInfo()
	assert.NoError(t, err)
	assert.Nil(t, info)
}

func TestGetInfoFailure(t *testing.T) {
	svc := NewRestaurantService(&fakeGateway{fetchFn: func(string, gateway.FetchRequest) (*gateway.Response, error) {
		return nil, errGatewayDown
	}})

	info, err := svc.GetInfo()
	assert.Error(t, err)
	assert.Nil(t, info)
}

func TestUpdateInfoSendsOnlySuppliedFields(t *testing.T) {
	var submitted gateway.Record
	fake := &fakeGateway{
		fetchFn: func(string, gateway.FetchRequest) (*gateway.Response, error) {
			return fetchResponse(infoRecord()), nil
		},
		updateFn: func(entity string, req gateway.WriteRequest) (*gateway.Response, error) {
			submitted = req.Records[0]
			return &gateway.Response{Success: true, Results: []gateway.RecordResult{{Success: true, Data: submitted}}}, nil
		},
	}
	svc := NewRestaurantService(fake)

	phone := "555-0199"
	_, err := svc.UpdateInfo(models.RestaurantInfoUpdate{Phone: &phone})

	assert.NoError(t, err)
	assert.Equal(t, gateway.Record{"Id": 1, "phone_c": "555-0199"}, submitted)
}

func TestSubViews(t *testing.T) {
	fake := &fakeGateway{fetchFn: func(string, gateway.FetchRequest) (*gateway.Response, error) {
		return fetchResponse(infoRecord()), nil
	}}
	svc := NewRestaurantService(fake)

	hours, err := svc.GetHours()
	assert.NoError(t, err)
	assert.Equal(t, "16:00-22:00", hours.Sunday)

	location, err := svc.GetLocation()
	assert.NoError(t, err)
	assert.Equal(t, "12 Via Roma", location.Address)
	assert.Equal(t, 12.49, location.Coordinates.Lng)

	contact, err := svc.GetContactInfo()
	assert.NoError(t, err)
	assert.Equal(t, "555-0100", contact.Phone)
	assert.Equal(t, "hello@tavolo.example", contact.Email)
}

func TestPhotoGetByCategory(t *testing.T) {
	fake := &fakeGateway{fetchFn: func(entity string, req gateway.FetchRequest) (*gateway.Response, error) {
		assert.Equal(t, gateway.EntityPhoto, entity)
		return fetchResponse(gateway.Record{
			"Id": float64(1), "title_c": "Dining room", "category_c": "interior", "image_url_c": "https://img.example/1.jpg",
		}), nil
	}}
	svc := NewPhotoService(fake)

	photos, err := svc.GetByCategory("interior")
	assert.NoError(t, err)
	assert.Len(t, photos, 1)
	assert.Equal(t, "Dining room", photos[0].Title)
	assert.Equal(t, []gateway.Where{
		{FieldName: "category_c", Operator: "EqualTo", Values: []string{"interior"}},
	}, fake.fetches[0].Where)
}
