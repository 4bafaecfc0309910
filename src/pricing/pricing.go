package pricing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gobhraman/src/catalog"
	"gobhraman/src/models"
	"gobhraman/src/types"
)

// DEFAULT_ADVANCE is the per-traveler deposit (INR) collected up front
// when a trip does not define its own advance amount.
const DEFAULT_ADVANCE int64 = 2000

const (
	MIN_TRAVELERS = 1
	MAX_TRAVELERS = 10
)

var ErrUnknownPickupPoint = errors.New("unknown pickup point for trip")

// ResolveUnitPrice returns the per-person price for a trip and pickup
// point. Scalar prices ignore the pickup point entirely; tiered prices
// use the override when one exists and fall back to the default
// otherwise, without error.
func ResolveUnitPrice(trip *catalog.Trip, pickup catalog.PickupPoint) int64 {
	if !trip.Price.IsTiered() {
		return trip.Price.Default()
	}
	if v, ok := trip.Price.Override(pickup); ok {
		return v
	}
	return trip.Price.Default()
}

// ResolveUnitPriceStrict is the strict-mode variant: an unrecognized
// pickup point on a tiered trip is an error instead of a fallback.
func ResolveUnitPriceStrict(trip *catalog.Trip, pickup catalog.PickupPoint) (int64, error) {
	if !trip.Price.IsTiered() {
		return trip.Price.Default(), nil
	}
	if v, ok := trip.Price.Override(pickup); ok {
		return v, nil
	}
	if trip.KnownPickupPoint(pickup) {
		return trip.Price.Default(), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPickupPoint, pickup)
}

func ComputeTotal(unitPrice int64, travelers int) int64 {
	return unitPrice * int64(travelers)
}

// ComputeAdvance uses the trip's own advance when defined, otherwise
// DEFAULT_ADVANCE, per traveler.
func ComputeAdvance(trip *catalog.Trip, travelers int) int64 {
	advance := DEFAULT_ADVANCE
	if trip.Booking != nil && trip.Booking.Advance > 0 {
		advance = trip.Booking.Advance
	}
	return advance * int64(travelers)
}

// ComputeBalance clamps at zero: an overpaid advance never yields a
// negative balance.
func ComputeBalance(total, advancePaid int64) int64 {
	if balance := total - advancePaid; balance > 0 {
		return balance
	}
	return 0
}

// Quote aggregates the amounts the review step displays.
type Quote struct {
	UnitPrice int64
	Total     int64
	Advance   int64
	Balance   int64
}

func QuoteTrip(trip *catalog.Trip, pickup catalog.PickupPoint, travelers int) Quote {
	unit := ResolveUnitPrice(trip, pickup)
	total := ComputeTotal(unit, travelers)
	advance := ComputeAdvance(trip, travelers)
	return Quote{
		UnitPrice: unit,
		Total:     total,
		Advance:   advance,
		Balance:   ComputeBalance(total, advance),
	}
}

type PaymentState string

const (
	PAYMENT_PARTIAL   PaymentState = "Partial"
	PAYMENT_COMPLETED PaymentState = "Completed"
)

// PaymentStatus derives the payment state of a persisted booking. It is
// never stored: always recomputed from the amount snapshot, the traveler
// count and the fixed per-traveler advance. Completed requires the
// booking to be confirmed as well as paid in full; a cancelled booking
// with zero balance stays Partial.
func PaymentStatus(b *models.Booking) PaymentState {
	balance := ComputeBalance(b.Amount, DEFAULT_ADVANCE*int64(b.NumTravelers))
	if b.Status == types.BOOKING_CONFIRMED && balance <= 0 {
		return PAYMENT_COMPLETED
	}
	return PAYMENT_PARTIAL
}

// FormatINR renders an integer rupee amount with Indian digit grouping,
// e.g. ₹6,399 and ₹1,23,456. Presentation only, the numeric amount is
// never altered.
func FormatINR(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)
	if len(digits) <= 3 {
		return sign + "₹" + digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	parts = append([]string{head}, parts...)
	return sign + "₹" + strings.Join(parts, ",") + "," + tail
}
