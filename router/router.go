package router

import (
	"github.com/gin-gonic/gin"

	"github.com/tavolo-app/backend/controllers"
	"github.com/tavolo-app/backend/gateway"
	"github.com/tavolo-app/backend/middlewares"
	"github.com/tavolo-app/backend/services"
)

// SetupRouter wires the public API on top of the given record gateway.
func SetupRouter(gw gateway.RecordGateway) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())

	menuCtrl := controllers.NewMenuController(services.NewMenuService(gw))
	photoCtrl := controllers.NewPhotoController(services.NewPhotoService(gw))
	reservationCtrl := controllers.NewReservationController(services.NewReservationService(gw))
	restaurantCtrl := controllers.NewRestaurantController(services.NewRestaurantService(gw))
	reviewCtrl := controllers.NewReviewController(services.NewReviewService(gw))

	api := r.Group("/api/v1")
	{
		menu := api.Group("/menu")
		{
			menu.GET("", menuCtrl.GetAllMenuItems)
			menu.GET("/meta", menuCtrl.GetMenuMeta)
			menu.GET("/:item_id", menuCtrl.GetMenuItemByID)
		}

		photos := api.Group("/photos")
		{
			photos.GET("", photoCtrl.GetAllPhotos)
		}

		reservations := api.Group("/reservations")
		{
			reservations.GET("", reservationCtrl.GetAllReservations)
			reservations.POST("", middlewares.NewBookingRateLimiter(), reservationCtrl.CreateReservation)
			reservations.GET("/availability", reservationCtrl.CheckAvailability)
			reservations.GET("/time-slots", reservationCtrl.GetAvailableTimeSlots)
			reservations.GET("/:reservation_id", reservationCtrl.GetReservationByID)
			reservations.PATCH("/:reservation_id", reservationCtrl.UpdateReservation)
			reservations.DELETE("/:reservation_id", reservationCtrl.DeleteReservation)
		}

		restaurant := api.Group("/restaurant")
		{
			restaurant.GET("", restaurantCtrl.GetInfo)
			restaurant.PATCH("", restaurantCtrl.UpdateInfo)
			restaurant.GET("/hours", restaurantCtrl.GetHours)
			restaurant.GET("/location", restaurantCtrl.GetLocation)
			restaurant.GET("/contact", restaurantCtrl.GetContactInfo)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", reviewCtrl.GetAllReviews)
			reviews.POST("", reviewCtrl.CreateReview)
			reviews.GET("/stats", reviewCtrl.GetReviewStats)
			reviews.GET("/:review_id", reviewCtrl.GetReviewByID)
		}
	}

	return r
}
