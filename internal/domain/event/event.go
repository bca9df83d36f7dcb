package event

import (
	"errors"
	"time"
)

type Event struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     *string   `json:"description"`
	FullDescription *string   `json:"full_description"`
	EventDate       time.Time `json:"event_date"`
	EventTime       *string   `json:"event_time"`
	Location        string    `json:"location"`
	VenueDetails    *string   `json:"venue_details"`
	CategoryID      int64     `json:"category_id"`
	OrganizationID  int64     `json:"organization_id"`
	TicketPrice     *float64  `json:"ticket_price"`
	FundraisingGoal *float64  `json:"fundraising_goal"`
	CurrentProgress float64   `json:"current_progress"`
	IsActive        bool      `json:"is_active"`
	ImageURL        *string   `json:"image_url"`
	Latitude        *float64  `json:"latitude"`
	Longitude       *float64  `json:"longitude"`

	// joined names, nullable since the joins are LEFT joins
	CategoryName     *string `json:"category_name"`
	OrganizationName *string `json:"organization_name"`
}

// with pointers if optional, it will be nil
type SearchFilter struct {
	Date     *time.Time
	Location *string
	Category *string
}

var ErrNotFound = errors.New("event not found")

// deletion is refused while registrations reference the event
var ErrHasRegistrations = errors.New("event has existing registrations")

// CreateEventRequest doubles as the update payload: an update is a full
// replace with the same required fields and the same defaulting rules.
// Optional fields are pointers so "absent" and "zero" stay distinct:
// a ticket_price of 0 must be stored as 0, and an explicit is_active of
// false must not be flipped back to the default.
type CreateEventRequest struct {
	Title           string   `json:"title" binding:"required"`
	Description     *string  `json:"description"`
	FullDescription *string  `json:"full_description"`
	EventDate       string   `json:"event_date" binding:"required,datetime=2006-01-02"`
	EventTime       *string  `json:"event_time"`
	Location        string   `json:"location" binding:"required"`
	VenueDetails    *string  `json:"venue_details"`
	CategoryID      *int64   `json:"category_id" binding:"required"`
	OrganizationID  *int64   `json:"organization_id" binding:"required"`
	TicketPrice     *float64 `json:"ticket_price"`
	FundraisingGoal *float64 `json:"fundraising_goal"`
	CurrentProgress *float64 `json:"current_progress"`
	IsActive        *bool    `json:"is_active"`
	ImageURL        *string  `json:"image_url"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
}
