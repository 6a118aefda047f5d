package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"strconv"

	"fleetbook/internal/api"
	"fleetbook/internal/auth"
	"fleetbook/internal/repository"
	"fleetbook/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
)

const (
	defaultRetentionDays = 730
	defaultOffsetHours   = 10 // fleet operates on AEST
)

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	vehicleRepo := repository.NewVehicleRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	adminAuthRepo := repository.NewAdminAuthRepository(db)
	jobRepo := repository.NewJobRepository(db)

	notifySvc := service.NewNotifyService()
	bookingSvc := service.NewBookingService(bookingRepo, vehicleRepo, notifySvc)
	vehicleSvc := service.NewVehicleService(vehicleRepo)
	availabilitySvc := service.NewAvailabilityService(vehicleRepo, bookingRepo, envInt("AEST_OFFSET_HOURS", defaultOffsetHours))
	adminAuthSvc := service.NewAdminAuthService(adminAuthRepo)
	jobSvc := service.NewJobService(jobRepo, envInt("BOOKING_RETENTION_DAYS", defaultRetentionDays))

	bookingHandler := api.NewBookingHandler(bookingSvc)
	vehicleHandler := api.NewVehicleHandler(vehicleSvc)
	availabilityHandler := api.NewAvailabilityHandler(availabilitySvc)
	adminAuthHandler := api.NewAdminAuthHandler(adminAuthSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/vehicles", vehicleHandler.ListVehicles).Methods("GET")
	r.HandleFunc("/api/bookings", bookingHandler.ListBookings).Methods("GET")
	r.HandleFunc("/api/bookings", bookingHandler.CreateBooking).Methods("POST")
	r.HandleFunc("/api/bookings/{id}", bookingHandler.UpdateBooking).Methods("PUT")
	r.HandleFunc("/api/bookings/{id}", bookingHandler.DeleteBooking).Methods("DELETE")
	r.HandleFunc("/api/availability", availabilityHandler.CheckAvailability).Methods("POST")
	r.HandleFunc("/api/availability/fully-booked", availabilityHandler.FullyBookedDates).Methods("GET")
	r.HandleFunc("/api/availability/soonest", availabilityHandler.SoonestAvailable).Methods("GET")

	// Auth
	r.HandleFunc("/admin/login", adminAuthHandler.Login).Methods("POST")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware)
	admin.HandleFunc("/users", adminAuthHandler.CreateUserAdmin).Methods("POST")
	admin.HandleFunc("/vehicles", vehicleHandler.CreateVehicle).Methods("POST")
	admin.HandleFunc("/vehicles/{id}", vehicleHandler.UpdateVehicle).Methods("PUT")
	admin.HandleFunc("/vehicles/{id}", vehicleHandler.DeleteVehicle).Methods("DELETE")
	admin.HandleFunc("/bookings", bookingHandler.ListBookingsFiltered).Methods("GET")

	c := cron.New()
	if _, err := c.AddFunc("0 3 * * *", func() {
		if err := jobSvc.PurgeExpiredBookings(); err != nil {
			log.Printf("Cron Job error: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule retention job: %v", err)
	}
	c.Start()

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %d", key, raw, fallback)
		return fallback
	}
	return v
}
