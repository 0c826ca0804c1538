package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-booking-admin/config"
	"hotel-booking-admin/controllers"
	"hotel-booking-admin/routes"
	"hotel-booking-admin/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	// Services
	catalogService := services.NewCatalogService(db)
	availabilityService := services.NewAvailabilityService(db, catalogService)
	bookingService := services.NewBookingService(db, availabilityService)
	roomService := services.NewRoomService(db)
	blockService := services.NewBlockService(db)
	calendarService := services.NewCalendarService(db)
	adminService := services.NewAdminService(db)
	policyService := services.NewPolicyService(db)

	// Controllers
	ctrls := routes.Controllers{
		Auth:         controllers.NewAuthController(adminService),
		Admin:        controllers.NewAdminController(adminService),
		Role:         controllers.NewRoleController(db),
		Hotel:        controllers.NewHotelController(catalogService),
		RoomType:     controllers.NewRoomTypeController(catalogService),
		Room:         controllers.NewRoomController(roomService),
		Block:        controllers.NewBlockController(blockService, calendarService),
		Booking:      controllers.NewBookingController(bookingService),
		Availability: controllers.NewAvailabilityController(availabilityService),
	}

	router := routes.SetupRouter(ctrls, policyService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
