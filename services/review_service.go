package services

import (
	"fmt"
	"math"
	"time"

	"github.com/tavolo-app/backend/gateway"
	"github.com/tavolo-app/backend/models"
)

const reviewListLimit = 100

// ratingScanLimit covers the full review set for the aggregate computations.
const ratingScanLimit = 1000

// ReviewService handles review reads, creation and aggregate statistics.
type ReviewService struct {
	gw gateway.RecordGateway
}

func NewReviewService(gw gateway.RecordGateway) *ReviewService {
	return &ReviewService{gw: gw}
}

// GetAll returns reviews newest first.
func (s *ReviewService) GetAll() ([]models.Review, error) {
	resp, err := s.gw.FetchRecords(gateway.EntityReview, gateway.FetchRequest{
		Fields:     gateway.Fields(models.ReviewFields...),
		OrderBy:    []gateway.OrderBy{{FieldName: "date_c", SortType: "DESC"}},
		PagingInfo: &gateway.PagingInfo{Limit: reviewListLimit},
	})
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("error fetching reviews: %s", resp.Message)
	}
	return reviewsFromRecords(resp.Data), nil
}

func (s *ReviewService) GetByID(id int) (*models.Review, error) {
	resp, err := s.gw.GetRecordByID(gateway.EntityReview, id, gateway.FetchRequest{
		Fields: gateway.Fields(models.ReviewFields...),
	})
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("error fetching review %d: %s", id, resp.Message)
	}

	review := models.ReviewFromRecord(resp.Record)
	return &review, nil
}

// Create stores a review stamped with today's date and verified=false.
// Verification is a back-office action, never set from here.
func (s *ReviewService) Create(input models.ReviewInput) (*models.Review, error) {
	rec, err := input.Normalize()
	if err != nil {
		return nil, err
	}
	rec["date_c"] = time.Now().Format("2006-01-02")
	rec["verified_c"] = false

	resp, err := s.gw.CreateRecord(gateway.EntityReview, gateway.WriteRequest{
		Records: []gateway.Record{rec},
	})
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("error creating review: %s", resp.Message)
	}
	created, err := singleResult(resp.Results)
	if err != nil {
		return nil, fmt.Errorf("error creating review: %v", err)
	}

	review := models.ReviewFromRecord(created)
	return &review, nil
}

// GetSortedByRating returns reviews ordered by rating, descending by default.
// Order among equal ratings is whatever the store returns.
func (s *ReviewService) GetSortedByRating(ascending bool) ([]models.Review, error) {
	sortType := "DESC"
	if ascending {
		sortType = "ASC"
	}

	resp, err := s.gw.FetchRecords(gateway.EntityReview, gateway.FetchRequest{
		Fields:     gateway.Fields(models.ReviewFields...),
		OrderBy:    []gateway.OrderBy{{FieldName: "rating_c", SortType: sortType}},
		PagingInfo: &gateway.PagingInfo{Limit: reviewListLimit},
	})
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("error fetching sorted reviews: %s", resp.Message)
	}
	return reviewsFromRecords(resp.Data), nil
}

// AverageRating is the mean of all ratings rounded half-up to one decimal,
// 0 when there are no reviews.
func (s *ReviewService) AverageRating() (float64, error) {
	records, err := s.fetchRatings()
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}

	sum := 0
	for _, rec := range records {
		sum += models.ReviewFromRecord(rec).Rating
	}
	mean := float64(sum) / float64(len(records))
	return math.Floor(mean*10+0.5) / 10, nil
}

// RatingDistribution counts reviews per rating 1..5. Out-of-range ratings are
// excluded.
func (s *ReviewService) RatingDistribution() (map[int]int, error) {
	distribution := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}

	records, err := s.fetchRatings()
	if err != nil {
		return distribution, err
	}
	for _, rec := range records {
		rating := models.ReviewFromRecord(rec).Rating
		if rating >= 1 && rating <= 5 {
			distribution[rating]++
		}
	}
	return distribution, nil
}

func (s *ReviewService) fetchRatings() ([]gateway.Record, error) {
	resp, err := s.gw.FetchRecords(gateway.EntityReview, gateway.FetchRequest{
		Fields:     gateway.Fields("rating_c"),
		PagingInfo: &gateway.PagingInfo{Limit: ratingScanLimit},
	})
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("error fetching ratings: %s", resp.Message)
	}
	return resp.Data, nil
}

func reviewsFromRecords(records []gateway.Record) []models.Review {
	reviews := make([]models.Review, 0, len(records))
	for _, rec := range records {
		reviews = append(reviews, models.ReviewFromRecord(rec))
	}
	return reviews
}
