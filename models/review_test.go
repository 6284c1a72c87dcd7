package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tavolo-app/backend/gateway"
)

func TestReviewInputNormalize(t *testing.T) {
	tests := []struct {
		name    string
		input   ReviewInput
		want    gateway.Record
		wantErr bool
	}{
		{
			name: "canonical wins",
			input: ReviewInput{
				ReviewerName:       "Canonical",
				LegacyReviewerName: "Legacy",
				Rating:             float64(5),
				LegacyRating:       float64(1),
				ReviewText:         "Great dinner",
			},
			want: gateway.Record{
				"Name":            "Canonical",
				"reviewer_name_c": "Canonical",
				"rating_c":        5,
				"review_text_c":   "Great dinner",
			},
		},
		{
			name: "legacy fallback with string rating",
			input: ReviewInput{
				LegacyReviewerName: "Sam",
				LegacyRating:       "4",
				LegacyReviewText:   "Good",
			},
			want: gateway.Record{
				"Name":            "Sam",
				"reviewer_name_c": "Sam",
				"rating_c":        4,
				"review_text_c":   "Good",
			},
		},
		{
			name:    "non-numeric rating is rejected",
			input:   ReviewInput{ReviewerName: "Sam", Rating: "five stars"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.Normalize()
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidInput))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReviewFromRecord(t *testing.T) {
	rec := gateway.Record{
		"Id":              float64(3),
		"rating_c":        float64(4),
		"review_text_c":   "Lovely",
		"reviewer_name_c": "Ana",
		"date_c":          "2024-05-20",
		"verified_c":      true,
	}

	review := ReviewFromRecord(rec)
	assert.Equal(t, 3, review.ID)
	assert.Equal(t, 4, review.Rating)
	assert.True(t, review.Verified)
}
