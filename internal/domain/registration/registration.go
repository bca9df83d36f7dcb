package registration

import "time"

// Registration is the read-side projection attached to an event detail.
// The owning event_id is the lookup key, not part of the payload.
type Registration struct {
	ID               int64     `json:"id"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	TicketCount      int       `json:"ticket_count"`
	RegistrationDate time.Time `json:"registration_date"`
}

// CreateRegistrationRequest keeps the numeric fields as pointers: the
// check is presence, not truthiness, so ticket_count 0 is a valid value.
// Presence is the only rule; the email is stored as given, with no format
// check. The registration timestamp and id are store-assigned.
type CreateRegistrationRequest struct {
	EventID     *int64 `json:"event_id" binding:"required"`
	FullName    string `json:"full_name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	TicketCount *int   `json:"ticket_count" binding:"required"`
}
