package catalog

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/gosimple/slug"
)

// PickupPoint is the origin city a traveler departs from. Tiered trips
// carry one price per pickup point.
type PickupPoint string

const (
	PickupMumbai PickupPoint = "mumbai"
	PickupPune   PickupPoint = "pune"
)

// Price is a tagged variant: either a single scalar amount, or a default
// amount with per-pickup-point overrides. Amounts are integer INR.
type Price struct {
	amount    int64
	overrides map[PickupPoint]int64
	tiered    bool
}

func Scalar(amount int64) Price {
	if amount < 0 {
		panic(fmt.Sprintf("catalog: negative scalar price %d", amount))
	}
	return Price{amount: amount}
}

func Tiered(def int64, overrides map[PickupPoint]int64) Price {
	if def < 0 {
		panic(fmt.Sprintf("catalog: negative default price %d", def))
	}
	m := make(map[PickupPoint]int64, len(overrides))
	for pp, v := range overrides {
		if v < 0 {
			panic(fmt.Sprintf("catalog: negative override price %d for %q", v, pp))
		}
		m[pp] = v
	}
	return Price{amount: def, overrides: m, tiered: true}
}

func (p Price) Default() int64 { return p.amount }

// MarshalJSON keeps the wire shape the storefront expects: a bare number
// for scalar prices, an object with a default and per-pickup keys for
// tiered ones.
func (p Price) MarshalJSON() ([]byte, error) {
	if !p.tiered {
		return json.Marshal(p.amount)
	}
	out := make(map[string]int64, len(p.overrides)+1)
	out["default"] = p.amount
	for pp, v := range p.overrides {
		out["from_"+string(pp)] = v
	}
	return json.Marshal(out)
}

func (p Price) IsTiered() bool { return p.tiered }

// Override returns the per-pickup price, if the trip defines one.
func (p Price) Override(pp PickupPoint) (int64, bool) {
	if !p.tiered {
		return 0, false
	}
	v, ok := p.overrides[pp]
	return v, ok
}

// PickupPoints lists the override keys in stable order.
func (p Price) PickupPoints() []PickupPoint {
	pps := make([]PickupPoint, 0, len(p.overrides))
	for pp := range p.overrides {
		pps = append(pps, pp)
	}
	sort.Slice(pps, func(i, j int) bool { return pps[i] < pps[j] })
	return pps
}

type ScheduleItem struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
}

type ItineraryDay struct {
	Day      int            `json:"day"`
	Title    string         `json:"title"`
	Schedule []ScheduleItem `json:"schedule"`
}

type BankAccount struct {
	Name          string `json:"name"`
	AccountNumber string `json:"account_number"`
	IFSC          string `json:"ifsc"`
}

// BookingInfo carries the payment instructions shown on the review step.
// No money moves through this system; transfers happen out-of-band.
type BookingInfo struct {
	Advance        int64        `json:"advance"`
	PaymentMethods []string     `json:"payment_methods"`
	Bank           *BankAccount `json:"bank,omitempty"`
	UPI            string       `json:"upi,omitempty"`
}

type Contact struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type Trip struct {
	ID             string            `json:"trip_id"`
	Name           string            `json:"trip_name"`
	Price          Price             `json:"price"`
	Duration       string            `json:"duration"`
	Summary        string            `json:"summary"`
	Highlights     []string          `json:"highlights,omitempty"`
	Itinerary      []ItineraryDay    `json:"itinerary,omitempty"`
	Inclusions     []string          `json:"inclusions,omitempty"`
	Exclusions     []string          `json:"exclusions,omitempty"`
	Booking        *BookingInfo      `json:"booking,omitempty"`
	Cancellation   map[string]string `json:"cancellation_policy,omitempty"`
	Locations      []string          `json:"locations,omitempty"`
	Images         []string          `json:"images,omitempty"`
	IsActive       bool              `json:"is_active"`
	Capacity       int               `json:"capacity,omitempty"`
	AvailableDates []string          `json:"available_dates,omitempty"`
	Contact        *Contact          `json:"contact,omitempty"`
	Notes          string            `json:"notes,omitempty"`
}

func (t *Trip) HasTieredPricing() bool {
	return t.Price.IsTiered()
}

// PickupPoints lists the pickup choices offered on the booking form.
// Scalar-priced trips have no meaningful pickup selection.
func (t *Trip) PickupPoints() []PickupPoint {
	if !t.Price.IsTiered() {
		return nil
	}
	pps := t.Price.PickupPoints()
	for _, pp := range pps {
		if pp == PickupMumbai {
			return pps
		}
	}
	// default tier is always bookable even without an explicit override
	return append([]PickupPoint{PickupMumbai}, pps...)
}

func (t *Trip) KnownPickupPoint(pp PickupPoint) bool {
	for _, known := range t.PickupPoints() {
		if known == pp {
			return true
		}
	}
	return false
}

// Get returns the trip with the given ID.
func Get(id string) (*Trip, bool) {
	for i := range trips {
		if trips[i].ID == id {
			return &trips[i], true
		}
	}
	return nil, false
}

// Active returns the trips currently open for booking.
func Active() []Trip {
	out := make([]Trip, 0, len(trips))
	for _, t := range trips {
		if t.IsActive {
			out = append(out, t)
		}
	}
	return out
}

func All() []Trip {
	out := make([]Trip, len(trips))
	copy(out, trips)
	return out
}

func tripID(name string, seq int) string {
	return fmt.Sprintf("%s-%03d", slug.Make(name), seq)
}
