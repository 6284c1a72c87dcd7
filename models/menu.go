package models

import (
	"strings"

	"github.com/tavolo-app/backend/gateway"
)

// Categories is the fixed menu category set.
var Categories = []string{"appetizers", "mains", "desserts", "drinks"}

// DietaryTags is the fixed dietary tag vocabulary.
var DietaryTags = []string{"vegetarian", "vegan", "gluten-free"}

// MenuItemFields is the store field list fetched for menu items.
var MenuItemFields = []string{
	"Id", "Name", "name_c", "description_c", "category_c", "price_c",
	"image_c", "available_c", "Tags",
}

type MenuItem struct {
	ID          int      `json:"Id"`
	Name        string   `json:"name_c"`
	Description string   `json:"description_c"`
	Category    string   `json:"category_c"`
	Price       float64  `json:"price_c"`
	Image       string   `json:"image_c"`
	Available   bool     `json:"available_c"`
	Tags        []string `json:"Tags"`
}

func MenuItemFromRecord(rec gateway.Record) MenuItem {
	return MenuItem{
		ID:          intField(rec, "Id"),
		Name:        firstNonEmpty(stringField(rec, "name_c"), stringField(rec, "Name")),
		Description: stringField(rec, "description_c"),
		Category:    stringField(rec, "category_c"),
		Price:       floatField(rec, "price_c"),
		Image:       stringField(rec, "image_c"),
		Available:   boolField(rec, "available_c"),
		Tags:        tagList(rec["Tags"]),
	}
}

// tagList handles the store's tag field, which arrives either as a list or as
// a comma-separated string.
func tagList(v interface{}) []string {
	switch tags := v.(type) {
	case []interface{}:
		out := make([]string, 0, len(tags))
		for _, t := range tags {
			if s, ok := t.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return tags
	case string:
		if tags == "" {
			return nil
		}
		parts := strings.Split(tags, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	default:
		return nil
	}
}
