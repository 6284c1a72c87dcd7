package models

import (
	"fmt"

	"github.com/tavolo-app/backend/gateway"
)

// StatusConfirmed is the only status this system writes; only confirmed
// reservations count toward a slot's capacity.
const StatusConfirmed = "confirmed"

// SlotCapacity is the number of concurrent confirmed reservations one time
// slot can hold.
const SlotCapacity = 3

// TimeSlots is the fixed daily schedule: half-hour steps from 17:00 to 22:00.
var TimeSlots = []string{
	"17:00", "17:30", "18:00", "18:30", "19:00", "19:30",
	"20:00", "20:30", "21:00", "21:30", "22:00",
}

// ReservationFields is the store field list fetched for reservations.
var ReservationFields = []string{
	"Id", "Name", "customer_name_c", "customer_email_c", "customer_phone_c",
	"date_c", "time_c", "party_size_c", "special_requests_c", "status_c",
}

type Reservation struct {
	ID              int    `json:"Id"`
	Name            string `json:"Name"`
	CustomerName    string `json:"customer_name_c"`
	CustomerEmail   string `json:"customer_email_c"`
	CustomerPhone   string `json:"customer_phone_c"`
	Date            string `json:"date_c"`
	Time            string `json:"time_c"`
	PartySize       int    `json:"party_size_c"`
	SpecialRequests string `json:"special_requests_c"`
	Status          string `json:"status_c"`
}

func ReservationFromRecord(rec gateway.Record) Reservation {
	return Reservation{
		ID:              intField(rec, "Id"),
		Name:            stringField(rec, "Name"),
		CustomerName:    stringField(rec, "customer_name_c"),
		CustomerEmail:   stringField(rec, "customer_email_c"),
		CustomerPhone:   stringField(rec, "customer_phone_c"),
		Date:            stringField(rec, "date_c"),
		Time:            stringField(rec, "time_c"),
		PartySize:       intField(rec, "party_size_c"),
		SpecialRequests: stringField(rec, "special_requests_c"),
		Status:          stringField(rec, "status_c"),
	}
}

// ReservationInput accepts both field conventions on creation. The canonical
// "_c" name wins when both are supplied.
type ReservationInput struct {
	CustomerName    string      `json:"customer_name_c"`
	CustomerEmail   string      `json:"customer_email_c"`
	CustomerPhone   string      `json:"customer_phone_c"`
	Date            string      `json:"date_c"`
	Time            string      `json:"time_c"`
	PartySize       interface{} `json:"party_size_c"`
	SpecialRequests string      `json:"special_requests_c"`

	LegacyCustomerName    string      `json:"customerName"`
	LegacyCustomerEmail   string      `json:"customerEmail"`
	LegacyCustomerPhone   string      `json:"customerPhone"`
	LegacyDate            string      `json:"date"`
	LegacyTime            string      `json:"time"`
	LegacyPartySize       interface{} `json:"partySize"`
	LegacySpecialRequests string      `json:"specialRequests"`
}

// Normalize resolves the dual naming into one outbound record. Status is not
// part of the input; the reservation service forces it on creation.
func (in ReservationInput) Normalize() (gateway.Record, error) {
	partySizeValue := in.PartySize
	if partySizeValue == nil {
		partySizeValue = in.LegacyPartySize
	}
	partySize, err := coerceInt(partySizeValue)
	if err != nil {
		return nil, fmt.Errorf("%w: party size: %v", ErrInvalidInput, err)
	}

	name := firstNonEmpty(in.CustomerName, in.LegacyCustomerName)
	return gateway.Record{
		"Name":               name,
		"customer_name_c":    name,
		"customer_email_c":   firstNonEmpty(in.CustomerEmail, in.LegacyCustomerEmail),
		"customer_phone_c":   firstNonEmpty(in.CustomerPhone, in.LegacyCustomerPhone),
		"date_c":             firstNonEmpty(in.Date, in.LegacyDate),
		"time_c":             firstNonEmpty(in.Time, in.LegacyTime),
		"party_size_c":       partySize,
		"special_requests_c": firstNonEmpty(in.SpecialRequests, in.LegacySpecialRequests),
	}, nil
}

// ReservationUpdate is a partial update: only supplied fields go out. A
// present-but-empty SpecialRequests clears the stored text, an absent one
// leaves it untouched.
type ReservationUpdate struct {
	CustomerName    *string     `json:"customer_name_c"`
	CustomerEmail   *string     `json:"customer_email_c"`
	CustomerPhone   *string     `json:"customer_phone_c"`
	Date            *string     `json:"date_c"`
	Time            *string     `json:"time_c"`
	PartySize       interface{} `json:"party_size_c"`
	SpecialRequests *string     `json:"special_requests_c"`
	Status          *string     `json:"status_c"`
}

func (u ReservationUpdate) Fields(id int) (gateway.Record, error) {
	rec := gateway.Record{"Id": id}
	if u.CustomerName != nil {
		rec["customer_name_c"] = *u.CustomerName
	}
	if u.CustomerEmail != nil {
		rec["customer_email_c"] = *u.CustomerEmail
	}
	if u.CustomerPhone != nil {
		rec["customer_phone_c"] = *u.CustomerPhone
	}
	if u.Date != nil {
		rec["date_c"] = *u.Date
	}
	if u.Time != nil {
		rec["time_c"] = *u.Time
	}
	if u.PartySize != nil {
		partySize, err := coerceInt(u.PartySize)
		if err != nil {
			return nil, fmt.Errorf("%w: party size: %v", ErrInvalidInput, err)
		}
		rec["party_size_c"] = partySize
	}
	if u.SpecialRequests != nil {
		rec["special_requests_c"] = *u.SpecialRequests
	}
	if u.Status != nil {
		rec["status_c"] = *u.Status
	}
	return rec, nil
}
