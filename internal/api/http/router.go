package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"agroverse-backend/internal/security"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth      *AuthHandler
	Users     *UserHandler
	Equipment *EquipmentHandler
	Bookings  *BookingHandler
	Dashboard *DashboardHandler
}

// NewRouter builds the full route table. uploadsDir is served statically
// under /uploads for equipment images.
func NewRouter(tokens security.TokenManager, h Handlers, uploadsDir string) *mux.Router {
	r := mux.NewRouter()
	r.Use(LoggingMiddleware, CORSMiddleware, RecoveryMiddleware)

	auth := RequireAuth(tokens)
	protected := func(fn http.HandlerFunc) http.Handler {
		return auth(fn)
	}

	api := r.PathPrefix("/api").Subrouter()

	// Users
	api.HandleFunc("/users", h.Users.Register).Methods(http.MethodPost, http.MethodOptions)
	api.Handle("/users/profile", protected(h.Users.UpdateProfile)).Methods(http.MethodPut, http.MethodOptions)
	api.Handle("/users/password", protected(h.Users.UpdatePassword)).Methods(http.MethodPut, http.MethodOptions)

	// Auth
	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost, http.MethodOptions)
	api.Handle("/auth/me", protected(h.Auth.Me)).Methods(http.MethodGet)

	// Equipment. The my-equipment route must precede the {id} route so the
	// literal segment is not swallowed as an id.
	api.Handle("/equipment/my-equipment", protected(h.Equipment.MyEquipment)).Methods(http.MethodGet)
	api.HandleFunc("/equipment", h.Equipment.List).Methods(http.MethodGet)
	api.Handle("/equipment", protected(h.Equipment.Create)).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/equipment/{id}", h.Equipment.Get).Methods(http.MethodGet)
	api.Handle("/equipment/{id}", protected(h.Equipment.Update)).Methods(http.MethodPut, http.MethodOptions)
	api.Handle("/equipment/{id}/toggle-availability", protected(h.Equipment.ToggleAvailability)).Methods(http.MethodPut, http.MethodOptions)
	api.Handle("/equipment/{id}", protected(h.Equipment.Delete)).Methods(http.MethodDelete, http.MethodOptions)

	// Bookings
	api.Handle("/bookings", protected(h.Bookings.Create)).Methods(http.MethodPost, http.MethodOptions)
	api.Handle("/bookings/my-bookings", protected(h.Bookings.MyBookings)).Methods(http.MethodGet)
	api.Handle("/bookings/recent", protected(h.Bookings.Recent)).Methods(http.MethodGet)
	api.Handle("/bookings/{id}", protected(h.Bookings.Get)).Methods(http.MethodGet)
	api.Handle("/bookings/{id}/cancel", protected(h.Bookings.Cancel)).Methods(http.MethodPut, http.MethodOptions)
	api.Handle("/bookings/{id}/approve", protected(h.Bookings.Approve)).Methods(http.MethodPut, http.MethodOptions)
	api.Handle("/bookings/{id}/reject", protected(h.Bookings.Reject)).Methods(http.MethodPut, http.MethodOptions)
	api.Handle("/bookings/{id}/complete", protected(h.Bookings.Complete)).Methods(http.MethodPut, http.MethodOptions)

	// Dashboard
	api.Handle("/dashboard/stats", protected(h.Dashboard.Stats)).Methods(http.MethodGet)

	// Uploaded images
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir))))

	return r
}
