package event

// Defaulting helpers shared by insert and update. The trigger is
// "field absent from the payload", never "field is falsy".

// Progress returns current_progress, defaulting to 0 when absent.
func (r CreateEventRequest) Progress() float64 {
	if r.CurrentProgress == nil {
		return 0
	}

	return *r.CurrentProgress
}

// Active returns is_active, defaulting to true when absent. An explicit
// false is honored.
func (r CreateEventRequest) Active() bool {
	if r.IsActive == nil {
		return true
	}

	return *r.IsActive
}
