package http

import (
	"net/http"

	"agroverse-backend/internal/service"
)

// DashboardHandler serves role-dependent summary statistics.
type DashboardHandler struct {
	dashboard service.DashboardService
}

func NewDashboardHandler(dashboard service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	stats, err := h.dashboard.Stats(r.Context(), claims.UserID, claims.Role)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
