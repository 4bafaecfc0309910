package types

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type BookingStatus string

const (
	BOOKING_PENDING   BookingStatus = "pending"
	BOOKING_CONFIRMED BookingStatus = "confirmed"
	BOOKING_CANCELLED BookingStatus = "cancelled"
)

// ValidBookingTransition reports whether an admin may move a booking to s.
// Only confirmed/cancelled are reachable; pending is the creation state.
func ValidBookingTransition(s BookingStatus) bool {
	return s == BOOKING_CONFIRMED || s == BOOKING_CANCELLED
}

type LeadStatus string

const (
	LEAD_INTERESTED     LeadStatus = "interested"
	LEAD_CONTACTED      LeadStatus = "contacted"
	LEAD_CONVERTED      LeadStatus = "converted"
	LEAD_NOT_INTERESTED LeadStatus = "not_interested"
)

// ValidLeadTransition reports whether an admin may move a lead to s.
// interested is the creation state and is not re-enterable.
func ValidLeadTransition(s LeadStatus) bool {
	switch s {
	case LEAD_CONTACTED, LEAD_CONVERTED, LEAD_NOT_INTERESTED:
		return true
	}
	return false
}

type SimpleRequestParams struct {
	ID string `uri:"id" binding:"required"`
}

type CreateBookingRequestBody struct {
	TripID     string `json:"trip_id" binding:"required"`
	FullName   string `json:"full_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
	Travelers  int    `json:"travelers" binding:"required,min=1,max=10"`
	Pickup     string `json:"pickup,omitempty"`
	TravelDate string `json:"travel_date,omitempty" binding:"omitempty,traveldate" time_format:"2006-01-02"`
}

type CreateLeadRequestBody struct {
	TripID        string `json:"trip_id" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Mobile        string `json:"mobile" binding:"required"`
	PreferredDate string `json:"preferred_date,omitempty" binding:"omitempty,traveldate" time_format:"2006-01-02"`
}

type AttachPaymentRequestBody struct {
	UpiTransactionID string `json:"upi_transaction_id,omitempty"`
	ScreenshotKey    string `json:"screenshot_key,omitempty"`
}

type UpdateBookingStatusRequestBody struct {
	Status BookingStatus `json:"status" binding:"required"`
	Notes  string        `json:"notes,omitempty"`
}

type UpdateLeadStatusRequestBody struct {
	Status LeadStatus `json:"status" binding:"required"`
}

type RegisterUserRequestBody struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequestBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type QuoteResponse struct {
	TripID    string `json:"trip_id"`
	Pickup    string `json:"pickup,omitempty"`
	Travelers int    `json:"travelers"`
	UnitPrice int64  `json:"unit_price"`
	Total     int64  `json:"total"`
	Advance   int64  `json:"advance"`
	Balance   int64  `json:"balance"`
	Display   string `json:"display,omitempty"`
}

type AdminStats struct {
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
	Total     int `json:"total"`
}
