package models

import "gobhraman/src/types"

// InterestedLead is a soft expression of interest in a trip, recorded
// before any booking exists. UserID is nil for guest submissions.
type InterestedLead struct {
	ID            string           `gorm:"primarykey;type:uuid" json:"id"`
	Name          string           `json:"name,omitempty"`
	Mobile        string           `json:"mobile,omitempty"`
	TripID        string           `json:"trip_id,omitempty"`
	TripName      string           `json:"trip_name,omitempty"`
	PreferredDate *string          `json:"preferred_date,omitempty"`
	Status        types.LeadStatus `gorm:"default:interested" json:"status,omitempty"`
	UserID        *string          `gorm:"type:uuid" json:"user_id,omitempty"`

	types.Timestamps
}

func (InterestedLead) TableName() string {
	return "interested_users"
}
