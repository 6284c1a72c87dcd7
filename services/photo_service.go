package services

import (
	"fmt"

	"github.com/tavolo-app/backend/gateway"
	"github.com/tavolo-app/backend/models"
)

const photoListLimit = 100

// PhotoService handles gallery photo reads.
type PhotoService struct {
	gw gateway.RecordGateway
}

func NewPhotoService(gw gateway.RecordGateway) *PhotoService {
	return &PhotoService{gw: gw}
}

func (s *PhotoService) GetAll() ([]models.Photo, error) {
	return s.fetch(gateway.FetchRequest{
		Fields:     gateway.Fields(models.PhotoFields...),
		PagingInfo: &gateway.PagingInfo{Limit: photoListLimit},
	})
}

func (s *PhotoService) GetByCategory(category string) ([]models.Photo, error) {
	return s.fetch(gateway.FetchRequest{
		Fields: gateway.Fields(models.PhotoFields...),
		Where: []gateway.Where{
			{FieldName: "category_c", Operator: "EqualTo", Values: []string{category}},
		},
		PagingInfo: &gateway.PagingInfo{Limit: photoListLimit},
	})
}

func (s *PhotoService) fetch(req gateway.FetchRequest) ([]models.Photo, error) {
	resp, err := s.gw.FetchRecords(gateway.EntityPhoto, req)
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("error fetching photos: %s", resp.Message)
	}

	photos := make([]models.Photo, 0, len(resp.Data))
	for _, rec := range resp.Data {
		photos = append(photos, models.PhotoFromRecord(rec))
	}
	return photos, nil
}
