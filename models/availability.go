package models

import "fmt"

// ServiceSession is a named service window with its own time-slot range.
type ServiceSession string

const (
	SessionLunch  ServiceSession = "LUNCH"
	SessionDinner ServiceSession = "DINNER"
)

// Valid reports whether the value is a known service session.
func (s ServiceSession) Valid() bool {
	return s == SessionLunch || s == SessionDinner
}

// AreaType distinguishes private rooms from open dining-hall seating.
type AreaType string

const (
	AreaVIP  AreaType = "VIP"
	AreaHall AreaType = "HALL"
)

func (a AreaType) Valid() bool {
	return a == AreaVIP || a == AreaHall
}

// DiningArea is a server-reported availability snapshot for a room or hall
// section on a specific date+session. The client never mutates it.
type DiningArea struct {
	ID                int      `json:"id"`
	Name              string   `json:"name"`
	AreaType          AreaType `json:"area_type"`
	Capacity          int      `json:"capacity"`
	Description       string   `json:"description,omitempty"`
	Image             string   `json:"image,omitempty"`
	HasKTV            bool     `json:"has_ktv"`
	HasRestroom       bool     `json:"has_restroom"`
	HasTV             bool     `json:"has_tv"`
	HasCouch          bool     `json:"has_couch"`
	IsAvailable       bool     `json:"is_available"`
	RemainingCapacity int      `json:"remaining_capacity"`
}

// Validate rejects malformed upstream records so undefined fields never
// propagate into wizard state.
func (d DiningArea) Validate() error {
	if d.ID <= 0 {
		return fmt.Errorf("dining area missing id")
	}
	if d.Name == "" {
		return fmt.Errorf("dining area %d missing name", d.ID)
	}
	if !d.AreaType.Valid() {
		return fmt.Errorf("dining area %q has unknown area type %q", d.Name, d.AreaType)
	}
	if d.Capacity < 0 {
		return fmt.Errorf("dining area %q has negative capacity", d.Name)
	}
	return nil
}
