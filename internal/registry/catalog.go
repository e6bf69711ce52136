package registry

import "example.com/signup/internal/domain"

// SeedCatalog returns the fixed school catalog loaded at process start. Each
// call builds fresh slices so callers never share roster state.
func SeedCatalog() []domain.Activity {
	return []domain.Activity{
		{
			Name:            "Soccer Team",
			Description:     "Join the school soccer team and compete in regional matches",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"alex@mergington.edu", "sarah@mergington.edu"},
		},
		{
			Name:            "Basketball Club",
			Description:     "Develop basketball skills and participate in friendly matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu", "emily@mergington.edu"},
		},
		{
			Name:            "Art Studio",
			Description:     "Explore various art mediums including painting, drawing, and sculpture",
			Schedule:        "Wednesdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 18,
			Participants:    []string{"lily@mergington.edu", "noah@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Perform in plays and learn acting, stage design, and production",
			Schedule:        "Thursdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"ava@mergington.edu", "ethan@mergington.edu"},
		},
		{
			Name:            "Debate Team",
			Description:     "Develop critical thinking and public speaking through competitive debates",
			Schedule:        "Tuesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"isabella@mergington.edu", "liam@mergington.edu"},
		},
		{
			Name:            "Science Olympiad",
			Description:     "Compete in science and engineering challenges at regional competitions",
			Schedule:        "Fridays, 3:30 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"mia@mergington.edu", "william@mergington.edu"},
		},
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	}
}
