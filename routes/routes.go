package routes

import (
	"github.com/Shetty-ANANYA-Raju/NutriVista/controllers"
	"github.com/Shetty-ANANYA-Raju/NutriVista/middlewares"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Controllers struct {
	Auth        *controllers.AuthController
	User        *controllers.UserController
	FoodLog     *controllers.FoodLogController
	Doctor      *controllers.DoctorController
	Appointment *controllers.AppointmentController
	Store       *controllers.StoreController
	Realtime    *controllers.RealtimeController
}

func SetupRouter(ctrl Controllers, jwtSecret string, log *zap.SugaredLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(log))

	api := r.Group("/api")
	{
		// Public routes
		api.POST("/register", ctrl.Auth.Register)
		api.POST("/login", ctrl.Auth.Login)
		api.GET("/doctors", ctrl.Doctor.ListDoctors)
		api.GET("/store/products", ctrl.Store.ListProducts)
		api.GET("/recipes", ctrl.Store.ListRecipes)

		// Protected routes
		auth := api.Group("")
		auth.Use(middlewares.AuthMiddleware(jwtSecret))
		{
			auth.GET("/profile", ctrl.User.GetProfile)
			auth.PUT("/profile", ctrl.User.UpdateProfile)
			auth.POST("/foodlog", ctrl.FoodLog.LogFood)
			auth.GET("/foodlog/summary", ctrl.FoodLog.GetSummary)
			auth.POST("/appointments", ctrl.Appointment.Book)
			auth.GET("/appointments/user", ctrl.Appointment.ListForUser)
			auth.GET("/ws", ctrl.Realtime.EventsWS)
		}
	}

	return r
}
