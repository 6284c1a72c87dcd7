package models

import (
	"github.com/tavolo-app/backend/gateway"
)

// RestaurantInfoFields is the store field list for the singleton info record.
var RestaurantInfoFields = []string{
	"Id", "Name", "name_c", "address_c", "phone_c", "email_c",
	"hours_monday_c", "hours_tuesday_c", "hours_wednesday_c", "hours_thursday_c",
	"hours_friday_c", "hours_saturday_c", "hours_sunday_c",
	"coordinates_lat_c", "coordinates_lng_c",
}

type WeeklyHours struct {
	Monday    string `json:"monday"`
	Tuesday   string `json:"tuesday"`
	Wednesday string `json:"wednesday"`
	Thursday  string `json:"thursday"`
	Friday    string `json:"friday"`
	Saturday  string `json:"saturday"`
	Sunday    string `json:"sunday"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RestaurantInfo is the singleton restaurant record, flattened store fields
// grouped into hours and coordinates sub-structs for callers.
type RestaurantInfo struct {
	ID          int         `json:"Id"`
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	Phone       string      `json:"phone"`
	Email       string      `json:"email"`
	Hours       WeeklyHours `json:"hours"`
	Coordinates Coordinates `json:"coordinates"`
}

func RestaurantInfoFromRecord(rec gateway.Record) RestaurantInfo {
	return RestaurantInfo{
		ID:      intField(rec, "Id"),
		Name:    firstNonEmpty(stringField(rec, "name_c"), stringField(rec, "Name")),
		Address: stringField(rec, "address_c"),
		Phone:   stringField(rec, "phone_c"),
		Email:   stringField(rec, "email_c"),
		Hours: WeeklyHours{
			Monday:    stringField(rec, "hours_monday_c"),
			Tuesday:   stringField(rec, "hours_tuesday_c"),
			Wednesday: stringField(rec, "hours_wednesday_c"),
			Thursday:  stringField(rec, "hours_thursday_c"),
			Friday:    stringField(rec, "hours_friday_c"),
			Saturday:  stringField(rec, "hours_saturday_c"),
			Sunday:    stringField(rec, "hours_sunday_c"),
		},
		Coordinates: Coordinates{
			Lat: floatField(rec, "coordinates_lat_c"),
			Lng: floatField(rec, "coordinates_lng_c"),
		},
	}
}

// Location is the address-plus-coordinates sub-view of the info record.
type Location struct {
	Address     string      `json:"address"`
	Coordinates Coordinates `json:"coordinates"`
}

// ContactInfo is the contact sub-view of the info record.
type ContactInfo struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// RestaurantInfoUpdate is a partial update of the singleton record.
type RestaurantInfoUpdate struct {
	Name      *string  `json:"name_c"`
	Address   *string  `json:"address_c"`
	Phone     *string  `json:"phone_c"`
	Email     *string  `json:"email_c"`
	Monday    *string  `json:"hours_monday_c"`
	Tuesday   *string  `json:"hours_tuesday_c"`
	Wednesday *string  `json:"hours_wednesday_c"`
	Thursday  *string  `json:"hours_thursday_c"`
	Friday    *string  `json:"hours_friday_c"`
	Saturday  *string  `json:"hours_saturday_c"`
	Sunday    *string  `json:"hours_sunday_c"`
	Lat       *float64 `json:"coordinates_lat_c"`
	Lng       *float64 `json:"coordinates_lng_c"`
}

func (u RestaurantInfoUpdate) Fields(id int) gateway.Record {
	rec := gateway.Record{"Id": id}
	setString := func(name string, v *string) {
		if v != nil {
			rec[name] = *v
		}
	}
	setString("name_c", u.Name)
	setString("address_c", u.Address)
	setString("phone_c", u.Phone)
	setString("email_c", u.Email)
	setString("hours_monday_c", u.Monday)
	setString("hours_tuesday_c", u.Tuesday)
	setString("hours_wednesday_c", u.Wednesday)
	setString("hours_thursday_c", u.Thursday)
	setString("hours_friday_c", u.Friday)
	setString("hours_saturday_c", u.Saturday)
	setString("hours_sunday_c", u.Sunday)
	if u.Lat != nil {
		rec["coordinates_lat_c"] = *u.Lat
	}
	if u.Lng != nil {
		rec["coordinates_lng_c"] = *u.Lng
	}
	return rec
}
