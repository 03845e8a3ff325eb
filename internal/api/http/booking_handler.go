package http

import (
	"context"
	"encoding/json"
	"net/http"

	"agroverse-backend/internal/domain"
	"agroverse-backend/internal/service"
)

// BookingHandler serves booking creation and lifecycle transitions.
type BookingHandler struct {
	bookings service.BookingService
}

func NewBookingHandler(bookings service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

type createBookingRequest struct {
	Equipment  int32   `json:"equipment"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	TotalPrice float64 `json:"totalPrice"`
	Message    string  `json:"message"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Equipment == 0 || req.StartDate == "" || req.EndDate == "" {
		respondMessage(w, http.StatusBadRequest, "Please provide equipment, start date and end date")
		return
	}

	booking, err := h.bookings.Create(r.Context(), claims.UserID, req.Equipment, req.StartDate, req.EndDate, req.TotalPrice, req.Message)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) MyBookings(w http.ResponseWriter, r *http.Request) {
	h.listMine(w, r, 0)
}

// Recent returns the caller's three most recent bookings for dashboards.
func (h *BookingHandler) Recent(w http.ResponseWriter, r *http.Request) {
	h.listMine(w, r, 3)
}

func (h *BookingHandler) listMine(w http.ResponseWriter, r *http.Request, limit int32) {
	claims, ok := claimsFrom(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	bookings, err := h.bookings.ListMine(r.Context(), claims.UserID, claims.Role, limit)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		respondMessage(w, http.StatusNotFound, "Booking not found")
		return
	}

	booking, err := h.bookings.Get(r.Context(), claims.UserID, claims.Role, id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.bookings.Cancel)
}

func (h *BookingHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.bookings.Approve)
}

func (h *BookingHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.bookings.Reject)
}

func (h *BookingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.bookings.Complete)
}

func (h *BookingHandler) transition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, callerID, id int32) (*domain.Booking, error)) {
	claims, ok := claimsFrom(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		respondMessage(w, http.StatusNotFound, "Booking not found")
		return
	}

	booking, err := fn(r.Context(), claims.UserID, id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, booking)
}
