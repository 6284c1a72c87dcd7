package services

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tavolo-app/backend/gateway"
	"github.com/tavolo-app/backend/models"
	"github.com/tavolo-app/backend/utils"
)

const reservationListLimit = 100

// availabilityProbeLimit only needs to see past the capacity threshold.
const availabilityProbeLimit = 10

// ReservationService handles reservation CRUD, slot availability and the
// confirmation email side effect.
type ReservationService struct {
	gw              gateway.RecordGateway
	emailFunctionID string
}

func NewReservationService(gw gateway.RecordGateway) *ReservationService {
	functionID := os.Getenv("RESERVATION_EMAIL_FN")
	if functionID == "" {
		functionID = "send-reservation-email"
	}
	return &ReservationService{gw: gw, emailFunctionID: functionID}
}

func (s *ReservationService) GetAll() ([]models.Reservation, error) {
	resp, err := s.gw.FetchRecords(gateway.EntityReservation, gateway.FetchRequest{
		Fields:     gateway.Fields(models.ReservationFields...),
		PagingInfo: &gateway.PagingInfo{Limit: reservationListLimit},
	})
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("error fetching reservations: %s", resp.Message)
	}

	reservations := make([]models.Reservation, 0, len(resp.Data))
	for _, rec := range resp.Data {
		reservations = append(reservations, models.ReservationFromRecord(rec))
	}
	return reservations, nil
}

func (s *ReservationService) GetByID(id int) (*models.Reservation, error) {
	resp, err := s.gw.GetRecordByID(gateway.EntityReservation, id, gateway.FetchRequest{
		Fields: gateway.Fields(models.ReservationFields...),
	})
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("error fetching reservation %d: %s", id, resp.Message)
	}

	reservation := models.ReservationFromRecord(resp.Record)
	return &reservation, nil
}

// Create normalizes the input, forces status to confirmed and submits one
// record. On success a confirmation email is sent in the background; email
// failure never affects the created reservation.
func (s *ReservationService) Create(input models.ReservationInput) (*models.Reservation, error) {
	rec, err := input.Normalize()
	if err != nil {
		return nil, err
	}
	rec["status_c"] = models.StatusConfirmed

	resp, err := s.gw.CreateRecord(gateway.EntityReservation, gateway.WriteRequest{
		Records: []gateway.Record{rec},
	})
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("error creating reservation: %s", resp.Message)
	}
	created, err := singleResult(resp.Results)
	if err != nil {
		return nil, fmt.Errorf("error creating reservation: %v", err)
	}

	reservation := models.ReservationFromRecord(created)

	go s.sendConfirmationEmail(reservation)

	return &reservation, nil
}

// sendConfirmationEmail invokes the hosted email function. Best effort: any
// failure is logged and swallowed, the reservation stands either way.
func (s *ReservationService) sendConfirmationEmail(res models.Reservation) {
	body, err := json.Marshal(map[string]interface{}{
		"customerName":    res.CustomerName,
		"customerEmail":   res.CustomerEmail,
		"customerPhone":   res.CustomerPhone,
		"date":            res.Date,
		"time":            res.Time,
		"partySize":       res.PartySize,
		"specialRequests": res.SpecialRequests,
	})
	if err != nil {
		utils.ErrorLogger.Printf("Error building confirmation email for reservation %d: %v", res.ID, err)
		return
	}

	resp, err := s.gw.InvokeFunction(s.emailFunctionID, gateway.FunctionRequest{
		Body:    string(body),
		Headers: map[string]string{"Content-Type": "application/json"},
	})
	if err != nil {
		utils.ErrorLogger.Printf("Error invoking %s for reservation %d: %v", s.emailFunctionID, res.ID, err)
		return
	}
	if !resp.Success {
		utils.ErrorLogger.Printf("Function %s failed for reservation %d: %s", s.emailFunctionID, res.ID, resp.Message)
	}
}

func (s *ReservationService) Update(id int, update models.ReservationUpdate) (*models.Reservation, error) {
	rec, err := update.Fields(id)
	if err != nil {
		return nil, err
	}

	resp, err := s.gw.UpdateRecord(gateway.EntityReservation, gateway.WriteRequest{
		Records: []gateway.Record{rec},
	})
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("error updating reservation %d: %s", id, resp.Message)
	}
	updated, err := singleResult(resp.Results)
	if err != nil {
		return nil, fmt.Errorf("error updating reservation %d: %v", id, err)
	}

	reservation := models.ReservationFromRecord(updated)
	return &reservation, nil
}

func (s *ReservationService) Delete(id int) error {
	resp, err := s.gw.DeleteRecord(gateway.EntityReservation, gateway.DeleteRequest{
		RecordIDs: []int{id},
	})
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("error deleting reservation %d: %s", id, resp.Message)
	}
	for _, result := range resp.Results {
		if !result.Success {
			return fmt.Errorf("error deleting reservation %d: %s", id, result.Message)
		}
	}
	return nil
}

// CheckAvailability reports whether (date, slot) has open capacity: true while
// fewer than models.SlotCapacity confirmed reservations occupy the slot.
// Fails open: a failed capacity read never hides a slot from customers, at the
// cost of the occasional optimistic answer under store trouble.
func (s *ReservationService) CheckAvailability(date, slot string) bool {
	resp, err := s.gw.FetchRecords(gateway.EntityReservation, gateway.FetchRequest{
		Fields: gateway.Fields("Id"),
		Where: []gateway.Where{
			{FieldName: "date_c", Operator: "EqualTo", Values: []string{date}},
			{FieldName: "time_c", Operator: "EqualTo", Values: []string{slot}},
			{FieldName: "status_c", Operator: "EqualTo", Values: []string{models.StatusConfirmed}},
		},
		PagingInfo: &gateway.PagingInfo{Limit: availabilityProbeLimit},
	})
	if err != nil {
		utils.ErrorLogger.Printf("Error checking availability for %s %s: %v", date, slot, err)
		return true
	}
	if !resp.Success {
		utils.ErrorLogger.Printf("Error checking availability for %s %s: %s", date, slot, resp.Message)
		return true
	}

	return len(resp.Data) < models.SlotCapacity
}

// GetAvailableTimeSlots walks the fixed daily schedule in order, one capacity
// check per slot, and returns the open sub-sequence.
func (s *ReservationService) GetAvailableTimeSlots(date string) []string {
	available := make([]string, 0, len(models.TimeSlots))
	for _, slot := range models.TimeSlots {
		if s.CheckAvailability(date, slot) {
			available = append(available, slot)
		}
	}
	return available
}

// singleResult applies the all-or-nothing batch policy: any failed per-record
// result fails the whole call. Batches are size one at every call site today.
func singleResult(results []gateway.RecordResult) (gateway.Record, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("store returned no per-record results")
	}
	for _, result := range results {
		if !result.Success {
			return nil, fmt.Errorf("record failed: %s", result.Message)
		}
	}
	return results[0].Data, nil
}
