package services

import (
	"fmt"

	"github.com/tavolo-app/backend/gateway"
	"github.com/tavolo-app/backend/models"
)

const menuListLimit = 100

// MenuService handles menu item reads and the fixed category/tag vocabularies.
type MenuService struct {
	gw gateway.RecordGateway
}

func NewMenuService(gw gateway.RecordGateway) *MenuService {
	return &MenuService{gw: gw}
}

func (s *MenuService) GetAll() ([]models.MenuItem, error) {
	return s.fetch(gateway.FetchRequest{
		Fields:     gateway.Fields(models.MenuItemFields...),
		PagingInfo: &gateway.PagingInfo{Limit: menuListLimit},
	})
}

func (s *MenuService) GetByCategory(category string) ([]models.MenuItem, error) {
	return s.fetch(gateway.FetchRequest{
		Fields: gateway.Fields(models.MenuItemFields...),
		Where: []gateway.Where{
			{FieldName: "category_c", Operator: "EqualTo", Values: []string{category}},
		},
		PagingInfo: &gateway.PagingInfo{Limit: menuListLimit},
	})
}

func (s *MenuService) GetByID(id int) (*models.MenuItem, error) {
	resp, err := s.gw.GetRecordByID(gateway.EntityMenuItem, id, gateway.FetchRequest{
		Fields: gateway.Fields(models.MenuItemFields...),
	})
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("error fetching menu item %d: %s", id, resp.Message)
	}

	item := models.MenuItemFromRecord(resp.Record)
	return &item, nil
}

// Search matches the query against item name or description.
func (s *MenuService) Search(query string) ([]models.MenuItem, error) {
	return s.fetch(gateway.FetchRequest{
		Fields: gateway.Fields(models.MenuItemFields...),
		WhereGroups: []gateway.WhereGroup{
			{
				Operator: "OR",
				SubGroups: []gateway.SubGroup{
					{
						Operator: "OR",
						Conditions: []gateway.Where{
							{FieldName: "name_c", Operator: "Contains", Values: []string{query}},
						},
					},
					{
						Operator: "OR",
						Conditions: []gateway.Where{
							{FieldName: "description_c", Operator: "Contains", Values: []string{query}},
						},
					},
				},
			},
		},
		PagingInfo: &gateway.PagingInfo{Limit: menuListLimit},
	})
}

// GetByDietaryTags filters items carrying any of the given tags. An empty tag
// set means no filter.
func (s *MenuService) GetByDietaryTags(tags []string) ([]models.MenuItem, error) {
	if len(tags) == 0 {
		return s.GetAll()
	}
	return s.fetch(gateway.FetchRequest{
		Fields: gateway.Fields(models.MenuItemFields...),
		Where: []gateway.Where{
			{FieldName: "Tags", Operator: "Contains", Values: tags},
		},
		PagingInfo: &gateway.PagingInfo{Limit: menuListLimit},
	})
}

func (s *MenuService) Categories() []string {
	return models.Categories
}

func (s *MenuService) DietaryTags() []string {
	return models.DietaryTags
}

func (s *MenuService) fetch(req gateway.FetchRequest) ([]models.MenuItem, error) {
	resp, err := s.gw.FetchRecords(gateway.EntityMenuItem, req)
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("error fetching menu items: %s", resp.Message)
	}

	items := make([]models.MenuItem, 0, len(resp.Data))
	for _, rec := range resp.Data {
		items = append(items, models.MenuItemFromRecord(rec))
	}
	return items, nil
}
