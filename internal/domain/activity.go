package domain

// Activity is a single extracurricular offering and its roster.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// HasParticipant reports whether email is already on the roster.
func (a Activity) HasParticipant(email string) bool {
	for _, existing := range a.Participants {
		if existing == email {
			return true
		}
	}
	return false
}
