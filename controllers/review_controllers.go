package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tavolo-app/backend/models"
	"github.com/tavolo-app/backend/services"
	"github.com/tavolo-app/backend/utils"
)

type ReviewController struct {
	service *services.ReviewService
}

func NewReviewController(service *services.ReviewService) *ReviewController {
	return &ReviewController{service: service}
}

// GetAllReviews returns reviews newest first, or sorted by rating when the
// "sort" query is "rating_asc"/"rating_desc".
func (rc *ReviewController) GetAllReviews(c *gin.Context) {
	var (
		reviews []models.Review
		err     error
	)
	switch c.Query("sort") {
	case "rating_asc":
		reviews, err = rc.service.GetSortedByRating(true)
	case "rating_desc":
		reviews, err = rc.service.GetSortedByRating(false)
	default:
		reviews, err = rc.service.GetAll()
	}
	if err != nil {
		utils.ErrorLogger.Printf("Error fetching reviews: %v", err)
		utils.RespondJSON(c, http.StatusOK, "List of reviews", []models.Review{})
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reviews", reviews)
}

func (rc *ReviewController) GetReviewByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("review_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid review id"))
		return
	}

	review, err := rc.service.GetByID(id)
	if err != nil {
		utils.ErrorLogger.Printf("Error fetching review %d: %v", id, err)
		utils.RespondJSON(c, http.StatusOK, "Review detail", nil)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Review detail", review)
}

func (rc *ReviewController) CreateReview(c *gin.Context) {
	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid review payload"))
		return
	}

	review, err := rc.service.Create(input)
	if err != nil {
		if errors.Is(err, models.ErrInvalidInput) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.ErrorLogger.Printf("Error creating review: %v", err)
		utils.RespondJSON(c, http.StatusOK, "Review could not be created", nil)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Review created", review)
}

// GetReviewStats bundles the aggregate numbers the reviews page shows.
func (rc *ReviewController) GetReviewStats(c *gin.Context) {
	average, err := rc.service.AverageRating()
	if err != nil {
		utils.ErrorLogger.Printf("Error calculating average rating: %v", err)
		average = 0
	}

	distribution, err := rc.service.RatingDistribution()
	if err != nil {
		utils.ErrorLogger.Printf("Error calculating rating distribution: %v", err)
	}

	utils.RespondJSON(c, http.StatusOK, "Review statistics", gin.H{
		"average_rating": average,
		"distribution":   distribution,
	})
}
