package domain

// DashboardStats is a derived view recomputed from scratch on every request.
type DashboardStats struct {
	TotalBookings   int32   `json:"totalBookings"`
	PendingBookings int32   `json:"pendingBookings"`
	TotalEquipment  int32   `json:"totalEquipment"`
	TotalEarnings   float64 `json:"totalEarnings"`
}
