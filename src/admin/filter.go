package admin

import (
	"strings"

	"gobhraman/src/models"
)

// FilterBookings narrows a loaded booking list: case-insensitive
// substring match on name, email, phone or trip name, intersected with
// an exact status match unless status is "all". Returns a fresh slice,
// the input is never mutated.
func FilterBookings(bookings []models.Booking, term, status string) []models.Booking {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if term != "" && !anyContains(term, b.FullName, b.Email, b.Phone, b.TripName) {
			continue
		}
		if status != "" && status != "all" && string(b.Status) != status {
			continue
		}
		out = append(out, b)
	}
	return out
}

// FilterLeads is the lead-side analogue, matching name, mobile and trip
// name.
func FilterLeads(leads []models.InterestedLead, term, status string) []models.InterestedLead {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]models.InterestedLead, 0, len(leads))
	for _, l := range leads {
		if term != "" && !anyContains(term, l.Name, l.Mobile, l.TripName) {
			continue
		}
		if status != "" && status != "all" && string(l.Status) != status {
			continue
		}
		out = append(out, l)
	}
	return out
}

func anyContains(term string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
