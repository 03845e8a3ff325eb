package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

type Booking struct {
	ID          int32      `json:"id"`
	UserID      int32      `json:"user"`
	EquipmentID int32      `json:"equipmentId"`
	Equipment   *Equipment `json:"equipment,omitempty"` // populated on reads
	UserName    string     `json:"userName,omitempty"`  // populated on reads
	UserEmail   string     `json:"userEmail,omitempty"` // populated on reads
	StartDate   time.Time  `json:"startDate"`
	EndDate     time.Time  `json:"endDate"`
	// TotalPrice is supplied by the caller at creation time and stored
	// as-is; it is not recomputed against the equipment's daily price.
	TotalPrice float64       `json:"totalPrice"`
	Status     BookingStatus `json:"status"`
	Message    string        `json:"message,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
}
