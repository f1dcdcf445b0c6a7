package main

import (
	"log"

	"github.com/Shetty-ANANYA-Raju/NutriVista/catalog"
	"github.com/Shetty-ANANYA-Raju/NutriVista/config"
	"github.com/Shetty-ANANYA-Raju/NutriVista/controllers"
	"github.com/Shetty-ANANYA-Raju/NutriVista/logger"
	"github.com/Shetty-ANANYA-Raju/NutriVista/routes"
	"github.com/Shetty-ANANYA-Raju/NutriVista/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	db, err := config.InitDB(cfg)
	if err != nil {
		zlog.Fatalf("database: %v", err)
	}

	doctorSvc := services.NewDoctorService(db)
	if err := doctorSvc.Seed(); err != nil {
		zlog.Fatalf("seed doctors: %v", err)
	}
	storeSvc := services.NewStoreService(db)
	if err := storeSvc.Seed(); err != nil {
		zlog.Fatalf("seed store: %v", err)
	}

	foodCatalog := catalog.Default()
	hub := services.NewRealtimeHub()

	ctrl := routes.Controllers{
		Auth:        controllers.NewAuthController(services.NewAuthService(db, cfg.JWTSecret)),
		User:        controllers.NewUserController(services.NewUserService(db)),
		FoodLog:     controllers.NewFoodLogController(services.NewFoodLogService(db, foodCatalog), hub),
		Doctor:      controllers.NewDoctorController(doctorSvc),
		Appointment: controllers.NewAppointmentController(services.NewAppointmentService(db)),
		Store:       controllers.NewStoreController(storeSvc),
		Realtime:    controllers.NewRealtimeController(hub),
	}

	r := routes.SetupRouter(ctrl, cfg.JWTSecret, zlog)

	zlog.Infof("server running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		zlog.Fatalf("server: %v", err)
	}
}
