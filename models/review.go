package models

import (
	"fmt"

	"github.com/tavolo-app/backend/gateway"
)

// ReviewFields is the store field list fetched for reviews.
var ReviewFields = []string{
	"Id", "Name", "rating_c", "review_text_c", "reviewer_name_c", "date_c", "verified_c",
}

type Review struct {
	ID           int    `json:"Id"`
	Name         string `json:"Name"`
	Rating       int    `json:"rating_c"`
	ReviewText   string `json:"review_text_c"`
	ReviewerName string `json:"reviewer_name_c"`
	Date         string `json:"date_c"`
	Verified     bool   `json:"verified_c"`
}

func ReviewFromRecord(rec gateway.Record) Review {
	return Review{
		ID:           intField(rec, "Id"),
		Name:         stringField(rec, "Name"),
		Rating:       intField(rec, "rating_c"),
		ReviewText:   stringField(rec, "review_text_c"),
		ReviewerName: stringField(rec, "reviewer_name_c"),
		Date:         stringField(rec, "date_c"),
		Verified:     boolField(rec, "verified_c"),
	}
}

// ReviewInput accepts both field conventions; canonical wins.
type ReviewInput struct {
	ReviewerName string      `json:"reviewer_name_c"`
	Rating       interface{} `json:"rating_c"`
	ReviewText   string      `json:"review_text_c"`

	LegacyReviewerName string      `json:"reviewerName"`
	LegacyRating       interface{} `json:"rating"`
	LegacyReviewText   string      `json:"reviewText"`
}

// Normalize resolves the dual naming. The review date and verified flag are
// stamped by the review service at creation, not taken from the caller.
func (in ReviewInput) Normalize() (gateway.Record, error) {
	ratingValue := in.Rating
	if ratingValue == nil {
		ratingValue = in.LegacyRating
	}
	rating, err := coerceInt(ratingValue)
	if err != nil {
		return nil, fmt.Errorf("%w: rating: %v", ErrInvalidInput, err)
	}

	name := firstNonEmpty(in.ReviewerName, in.LegacyReviewerName)
	return gateway.Record{
		"Name":            name,
		"reviewer_name_c": name,
		"rating_c":        rating,
		"review_text_c":   firstNonEmpty(in.ReviewText, in.LegacyReviewText),
	}, nil
}
