package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tavolo-app/backend/gateway"
	"github.com/tavolo-app/backend/models"
)

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"full spread rounds to 3.0", []int{5, 4, 3, 2, 1}, 3.0},
		{"half rounds up", []int{4, 5}, 4.5},
		{"mean 4.25 rounds to 4.3", []int{4, 4, 4, 5}, 4.3},
		{"mean 4.66 rounds to 4.7", []int{4, 5, 5}, 4.7},
		{"no reviews", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeGateway{fetchFn: func(string, gateway.FetchRequest) (*gateway.Response, error) {
				return fetchResponse(ratingRecords(tt.ratings...)...), nil
			}}
			svc := NewReviewService(fake)

			average, err := svc.AverageRating()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, average)
		})
	}
}

func TestAverageRatingIsIdempotent(t *testing.T) {
	fake := &fakeGateway{fetchFn: func(string, gateway.FetchRequest) (*gateway.Response, error) {
		return fetchResponse(ratingRecords(5, 4, 3, 2, 1)...), nil
	}}
	svc := NewReviewService(fake)

	first, err := svc.AverageRating()
	assert.NoError(t, err)
	second, err := svc.AverageRating()
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAverageRatingOnFailure(t *testing.T) {
	svc := NewReviewService(&fakeGateway{fetchFn: func(string, gateway.FetchRequest) (*gateway.Response, error) {
		return nil, errGatewayDown
	}})

	average, err := svc.AverageRating()
	assert.Error(t, err)
	assert.Equal(t, 0.0, average)
}

func TestRatingDistribution(t *testing.T) {
	// 7 is out of range and must not be counted anywhere
	fake := &fakeGateway{fetchFn: func(string, gateway.FetchRequest) (*gateway.Response, error) {
		return fetchResponse(ratingRecords(5, 5, 4, 1, 7)...), nil
	}}
	svc := NewReviewService(fake)

	distribution, err := svc.RatingDistribution()
	assert.NoError(t, err)
	assert.Equal(t, map[int]int{1: 1, 2: 0, 3: 0, 4: 1, 5: 2}, distribution)

	total := 0
	for _, count := range distribution {
		total += count
	}
	assert.Equal(t, 4, total)
}

func TestRatingDistributionOnFailure(t *testing.T) {
	svc := NewReviewService(&fakeGateway{fetchFn: func(string, gateway.FetchRequest) (*gateway.Response, error) {
		return &gateway.Response{Success: false, Message: "down"}, nil
	}})

	distribution, err := svc.RatingDistribution()
	assert.Error(t, err)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}, distribution)
}

func TestCreateReviewStampsDateAndVerified(t *testing.T) {
	var submitted gateway.Record
	fake := &fakeGateway{createFn: func(entity string, req gateway.WriteRequest) (*gateway.Response, error) {
		assert.Equal(t, gateway.EntityReview, entity)
		submitted = req.Records[0]
		return &gateway.Response{Success: true, Results: []gateway.RecordResult{{Success: true, Data: submitted}}}, nil
	}}
	svc := NewReviewService(fake)

	review, err := svc.Create(models.ReviewInput{
		ReviewerName: "Ana",
		Rating:       float64(5),
		ReviewText:   "Wonderful",
	})

	assert.NoError(t, err)
	assert.Equal(t, time.Now().Format("2006-01-02"), submitted["date_c"])
	assert.Equal(t, false, submitted["verified_c"])
	assert.False(t, review.Verified)
}

func TestGetSortedByRatingRequestsOrder(t *testing.T) {
	tests := []struct {
		name      string
		ascending bool
		wantSort  string
	}{
		{"descending by default", false, "DESC"},
		{"ascending on request", true, "ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeGateway{fetchFn: func(string, gateway.FetchRequest) (*gateway.Response, error) {
				return fetchResponse(), nil
			}}
			svc := NewReviewService(fake)

			_, err := svc.GetSortedByRating(tt.ascending)
			assert.NoError(t, err)
			assert.Len(t, fake.fetches, 1)
			assert.Equal(t, []gateway.OrderBy{{FieldName: "rating_c", SortType: tt.wantSort}}, fake.fetches[0].OrderBy)
		})
	}
}

func TestGetAllReviewsNewestFirst(t *testing.T) {
	fake := &fakeGateway{fetchFn: func(string, gateway.FetchRequest) (*gateway.Response, error) {
		return fetchResponse(
			gateway.Record{"Id": float64(2), "reviewer_name_c": "Bob", "date_c": "2024-05-02"},
			gateway.Record{"Id": float64(1), "reviewer_name_c": "Ana", "date_c": "2024-05-01"},
		), nil
	}}
	svc := NewReviewService(fake)

	reviews, err := svc.GetAll()
	assert.NoError(t, err)
	assert.Len(t, reviews, 2)
	assert.Equal(t, []gateway.OrderBy{{FieldName: "date_c", SortType: "DESC"}}, fake.fetches[0].OrderBy)
}
