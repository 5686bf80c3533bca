package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaxSuggestionLength bounds the message a customer can send.
const MaxSuggestionLength = 1000

// Suggestion is a message a customer leaves for the restaurant. The
// restaurant can mark it as liked and answer it once.
type Suggestion struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	UserEmail     string    `json:"user_email"`
	Message       string    `json:"message"`
	Liked         bool      `json:"liked"`
	AdminResponse string    `json:"admin_response,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Answered reports whether the restaurant already replied.
func (s *Suggestion) Answered() bool {
	return s.AdminResponse != ""
}

// DashboardStats summarises the current month for the back office.
type DashboardStats struct {
	Since         time.Time `json:"since"`
	TotalOrders   int       `json:"total_orders"`
	TotalRevenue  int64     `json:"total_revenue"`
	PendingOrders int       `json:"pending_orders"`
	NewCustomers  int       `json:"new_customers"`
	RecentOrders  []*Order  `json:"recent_orders"`
}

// StartOfMonth returns midnight on the first day of t's month, in t's location.
func StartOfMonth(t time.Time) time.Time {
	year, month, _ := t.Date()

	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}
