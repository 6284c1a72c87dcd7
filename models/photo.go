package models

import "github.com/tavolo-app/backend/gateway"

// PhotoFields is the store field list fetched for gallery photos.
var PhotoFields = []string{
	"Id", "Name", "title_c", "category_c", "image_url_c", "description_c",
}

type Photo struct {
	ID          int    `json:"Id"`
	Title       string `json:"title_c"`
	Category    string `json:"category_c"`
	ImageURL    string `json:"image_url_c"`
	Description string `json:"description_c"`
}

func PhotoFromRecord(rec gateway.Record) Photo {
	return Photo{
		ID:          intField(rec, "Id"),
		Title:       firstNonEmpty(stringField(rec, "title_c"), stringField(rec, "Name")),
		Category:    stringField(rec, "category_c"),
		ImageURL:    stringField(rec, "image_url_c"),
		Description: stringField(rec, "description_c"),
	}
}
