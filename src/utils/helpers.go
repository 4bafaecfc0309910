package utils

import (
	"errors"
	"fmt"
	"log"

	"gobhraman/src/catalog"
	"gobhraman/src/db"
	"gobhraman/src/models"
	"gobhraman/src/types"
	"gobhraman/src/workflow"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrTripNotFound = errors.New("trip not found")
var ErrTripNotBookable = errors.New("trip is not open for booking")

// CreateBooking drives the booking workflow for a submitted request and
// persists the resulting record with status pending. The returned
// booking carries the amount snapshot taken at submission time.
func CreateBooking(params *types.CreateBookingRequestBody, userID *string) (*models.Booking, error) {
	trip, ok := catalog.Get(params.TripID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTripNotFound, params.TripID)
	}
	if !trip.IsActive {
		return nil, fmt.Errorf("%w: %s", ErrTripNotBookable, params.TripID)
	}
	if trip.Capacity > 0 && params.Travelers > trip.Capacity {
		return nil, &workflow.ValidationError{Field: "travelers", Reason: "exceeds trip capacity"}
	}

	form := workflow.New(trip)
	form.FullName = params.FullName
	form.Email = params.Email
	form.Phone = params.Phone
	form.Travelers = params.Travelers
	if params.Pickup != "" {
		form.Pickup = catalog.PickupPoint(params.Pickup)
	}
	form.TravelDate = params.TravelDate

	if _, err := form.Submit(); err != nil {
		return nil, err
	}
	req, err := form.Submit()
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ID:             uuid.NewString(),
		TripID:         req.TripID,
		TripName:       req.TripName,
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		PickupLocation: req.PickupLocation,
		NumTravelers:   req.NumTravelers,
		Amount:         req.Amount,
		Status:         types.BOOKING_PENDING,
		UserID:         userID,
	}
	if req.TravelDate != "" {
		booking.TravelDate = &req.TravelDate
	}

	conn := db.GetDb()
	if err := conn.Create(booking).Error; err != nil {
		log.Printf("Could not create Booking for trip [%s]: %s\n", req.TripID, err.Error())
		// nothing was persisted; the caller re-submits the same request
		return nil, err
	}
	return booking, nil
}

// CreateLead records an expression of interest; guests pass a nil userID.
func CreateLead(params *types.CreateLeadRequestBody, userID *string) (*models.InterestedLead, error) {
	trip, ok := catalog.Get(params.TripID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTripNotFound, params.TripID)
	}
	lead := &models.InterestedLead{
		ID:       uuid.NewString(),
		Name:     params.Name,
		Mobile:   params.Mobile,
		TripID:   trip.ID,
		TripName: trip.Name,
		Status:   types.LEAD_INTERESTED,
		UserID:   userID,
	}
	if params.PreferredDate != "" {
		lead.PreferredDate = &params.PreferredDate
	}
	conn := db.GetDb()
	if err := conn.Create(lead).Error; err != nil {
		log.Printf("Could not create InterestedLead for trip [%s]: %s\n", trip.ID, err.Error())
		return nil, err
	}
	return lead, nil
}

// GetOwnBookings lists a user's bookings, newest first.
func GetOwnBookings(userID string) ([]models.Booking, error) {
	conn := db.GetDb()
	var bookings []models.Booking
	err := conn.
		Model(&models.Booking{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).
		Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// AttachPayment stores the traveler-supplied UPI reference and/or
// screenshot key on their own pending booking.
func AttachPayment(bookingID, userID string, params *types.AttachPaymentRequestBody) error {
	if params.UpiTransactionID == "" && params.ScreenshotKey == "" {
		return &workflow.ValidationError{Field: "payment", Reason: "transaction id or screenshot required"}
	}
	patch := map[string]any{}
	if params.UpiTransactionID != "" {
		patch["upi_transaction_id"] = params.UpiTransactionID
	}
	if params.ScreenshotKey != "" {
		patch["payment_screenshot_key"] = params.ScreenshotKey
	}
	conn := db.GetDb()
	tx := conn.
		Model(&models.Booking{}).
		Where("id = ? AND user_id = ?", bookingID, userID).
		Updates(patch)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
