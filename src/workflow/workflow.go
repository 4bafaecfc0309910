package workflow

import (
	"fmt"
	"strings"
	"time"

	"gobhraman/src/catalog"
	"gobhraman/src/config"
	"gobhraman/src/pricing"
)

// Step is the booking form's position in the flow.
type Step int

const (
	CollectingDetails Step = iota
	ReviewingPayment
	Confirmed
)

func (s Step) String() string {
	switch s {
	case ReviewingPayment:
		return "reviewing_payment"
	case Confirmed:
		return "confirmed"
	default:
		return "collecting_details"
	}
}

// ValidationError keeps the form on its current step.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// BookingRequest is the submission produced when the form reaches
// Confirmed. Amount is the price snapshot taken at that moment.
type BookingRequest struct {
	TripID         string
	TripName       string
	FullName       string
	Email          string
	Phone          string
	NumTravelers   int
	PickupLocation string
	TravelDate     string
	Amount         int64
	Advance        int64
}

// Form is the multi-step booking state machine:
// CollectingDetails → ReviewingPayment → Confirmed, with Back and Close.
type Form struct {
	trip *catalog.Trip
	step Step

	FullName   string
	Email      string
	Phone      string
	Travelers  int
	Pickup     catalog.PickupPoint
	TravelDate string
}

// New starts a form at CollectingDetails with one traveler and, for
// tiered trips, the first pickup point pre-selected.
func New(trip *catalog.Trip) *Form {
	f := &Form{trip: trip, Travelers: 1}
	if pps := trip.PickupPoints(); len(pps) > 0 {
		f.Pickup = pps[0]
	}
	return f
}

func (f *Form) Trip() *catalog.Trip { return f.trip }

func (f *Form) Step() Step { return f.step }

func (f *Form) validate() error {
	if strings.TrimSpace(f.FullName) == "" {
		return &ValidationError{Field: "full_name", Reason: "must not be empty"}
	}
	if !strings.Contains(f.Email, "@") {
		return &ValidationError{Field: "email", Reason: "must contain @"}
	}
	if strings.TrimSpace(f.Phone) == "" {
		return &ValidationError{Field: "phone", Reason: "must not be empty"}
	}
	if f.Travelers < pricing.MIN_TRAVELERS || f.Travelers > pricing.MAX_TRAVELERS {
		return &ValidationError{
			Field:  "travelers",
			Reason: fmt.Sprintf("must be between %d and %d", pricing.MIN_TRAVELERS, pricing.MAX_TRAVELERS),
		}
	}
	if f.trip.HasTieredPricing() {
		if f.Pickup == "" {
			return &ValidationError{Field: "pickup", Reason: "must be selected for this trip"}
		}
		if config.StrictPickup() && !f.trip.KnownPickupPoint(f.Pickup) {
			return &ValidationError{Field: "pickup", Reason: "not offered for this trip"}
		}
	}
	if f.TravelDate != "" {
		date, err := time.Parse(config.TRAVEL_DATE_FORMAT, f.TravelDate)
		if err != nil {
			return &ValidationError{Field: "travel_date", Reason: "must be YYYY-MM-DD"}
		}
		if date.Before(time.Now().Truncate(24 * time.Hour)) {
			return &ValidationError{Field: "travel_date", Reason: "must not be in the past"}
		}
	}
	return nil
}

// Submit advances the form. From CollectingDetails it validates the
// entered details and moves to ReviewingPayment, returning no request
// yet. From ReviewingPayment it takes the price snapshot and returns the
// BookingRequest to persist, moving to Confirmed. A validation failure
// leaves the step unchanged.
func (f *Form) Submit() (*BookingRequest, error) {
	switch f.step {
	case CollectingDetails:
		if err := f.validate(); err != nil {
			return nil, err
		}
		f.step = ReviewingPayment
		return nil, nil
	case ReviewingPayment:
		quote := pricing.QuoteTrip(f.trip, f.Pickup, f.Travelers)
		req := &BookingRequest{
			TripID:         f.trip.ID,
			TripName:       f.trip.Name,
			FullName:       f.FullName,
			Email:          f.Email,
			Phone:          f.Phone,
			NumTravelers:   f.Travelers,
			PickupLocation: string(f.Pickup),
			TravelDate:     f.TravelDate,
			Amount:         quote.Total,
			Advance:        quote.Advance,
		}
		f.step = Confirmed
		return req, nil
	default:
		return nil, fmt.Errorf("booking already submitted for trip %s", f.trip.ID)
	}
}

// Back returns from ReviewingPayment to CollectingDetails, keeping every
// entered field.
func (f *Form) Back() {
	if f.step == ReviewingPayment {
		f.step = CollectingDetails
	}
}

// Reopen drops a just-confirmed form back to ReviewingPayment so a failed
// persistence call can be retried without re-entering details.
func (f *Form) Reopen() {
	if f.step == Confirmed {
		f.step = ReviewingPayment
	}
}

// Close resets the form from any step: all fields cleared, back to
// CollectingDetails.
func (f *Form) Close() {
	trip := f.trip
	*f = *New(trip)
}
