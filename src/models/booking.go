package models

import "gobhraman/src/types"

// Booking is a submitted booking request. Amount is the price snapshot
// taken at submission time and is never recomputed from the catalog.
type Booking struct {
	ID                   string              `gorm:"primarykey;type:uuid" json:"id"`
	TripID               string              `json:"trip_id,omitempty"`
	TripName             string              `json:"trip_name,omitempty"`
	FullName             string              `json:"full_name,omitempty"`
	Email                string              `json:"email,omitempty"`
	Phone                string              `json:"phone,omitempty"`
	PickupLocation       string              `json:"pickup_location,omitempty"`
	NumTravelers         int                 `json:"num_travelers,omitempty"`
	TravelDate           *string             `json:"travel_date,omitempty"`
	Amount               int64               `json:"amount"`
	Status               types.BookingStatus `gorm:"default:pending" json:"status,omitempty"`
	UpiTransactionID     *string             `json:"upi_transaction_id,omitempty"`
	PaymentScreenshotKey *string             `json:"payment_screenshot_key,omitempty"`
	AdminNotes           *string             `json:"admin_notes,omitempty"`
	UserID               *string             `gorm:"type:uuid" json:"user_id,omitempty"`

	User *User `gorm:"foreignKey:user_id" json:"user,omitempty"`

	types.Timestamps
}
