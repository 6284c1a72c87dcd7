package services

import (
	"fmt"

	"github.com/tavolo-app/backend/gateway"
	"github.com/tavolo-app/backend/models"
)

// RestaurantService handles the singleton restaurant info record and its
// sub-views.
type RestaurantService struct {
	gw gateway.RecordGateway
}

func NewRestaurantService(gw gateway.RecordGateway) *RestaurantService {
	return &RestaurantService{gw: gw}
}

// GetInfo fetches the singleton info record. A nil result with nil error means
// the record simply does not exist yet.
func (s *RestaurantService) GetInfo() (*models.RestaurantInfo, error) {
	resp, err := s.gw.FetchRecords(gateway.EntityRestaurantInfo, gateway.FetchRequest{
		Fields:     gateway.Fields(models.RestaurantInfoFields...),
		PagingInfo: &gateway.PagingInfo{Limit: 1},
	})
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("error fetching restaurant info: %s", resp.Message)
	}
	if len(resp.Data) == 0 {
		return nil, nil
	}

	info := models.RestaurantInfoFromRecord(resp.Data[0])
	return &info, nil
}

// UpdateInfo applies a partial update to the singleton record and returns the
// refreshed view.
func (s *RestaurantService) UpdateInfo(update models.RestaurantInfoUpdate) (*models.RestaurantInfo, error) {
	current, err := s.GetInfo()
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, fmt.Errorf("restaurant info record does not exist")
	}

	resp, err := s.gw.UpdateRecord(gateway.EntityRestaurantInfo, gateway.WriteRequest{
		Records: []gateway.Record{update.Fields(current.ID)},
	})
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("error updating restaurant info: %s", resp.Message)
	}
	if _, err := singleResult(resp.Results); err != nil {
		return nil, fmt.Errorf("error updating restaurant info: %v", err)
	}

	return s.GetInfo()
}

func (s *RestaurantService) GetHours() (*models.WeeklyHours, error) {
	info, err := s.GetInfo()
	if err != nil || info == nil {
		return nil, err
	}
	return &info.Hours, nil
}

func (s *RestaurantService) GetLocation() (*models.Location, error) {
	info, err := s.GetInfo()
	if err != nil || info == nil {
		return nil, err
	}
	return &models.Location{Address: info.Address, Coordinates: info.Coordinates}, nil
}

func (s *RestaurantService) GetContactInfo() (*models.ContactInfo, error) {
	info, err := s.GetInfo()
	if err != nil || info == nil {
		return nil, err
	}
	return &models.ContactInfo{Phone: info.Phone, Email: info.Email, Address: info.Address}, nil
}
