package meetings

// MeetingType is a bookable meeting template shown on the dashboard.
// Persistence is deliberately out of scope: types live in process memory per
// user and reset on restart.
type MeetingType struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Duration int    `json:"duration"` // minutes
	Color    string `json:"color"`
	Slug     string `json:"slug"`
}

// CreateMeetingTypeRequest is the input for creating or updating a type
type CreateMeetingTypeRequest struct {
	Name     string `json:"name"`
	Duration int    `json:"duration"`
	Color    string `json:"color"`
}
