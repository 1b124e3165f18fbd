package store

import "mergington/internal/activities/models"

// Seed returns the canonical activity catalog the registry is populated with
// at process start. Values are fixed; compatibility tests depend on them
// bit-exact, including participant order.
func Seed() []*models.Activity {
	return []*models.Activity{
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
		{
			Name:            "Basketball Team",
			Description:     "Competitive basketball team for all skill levels",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"alex@mergington.edu"},
		},
		{
			Name:            "Tennis Club",
			Description:     "Learn tennis techniques and participate in friendly matches",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"ryan@mergington.edu", "jessica@mergington.edu"},
		},
		{
			Name:            "Art Studio",
			Description:     "Explore painting, drawing, and digital art techniques",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"maya@mergington.edu"},
		},
		{
			Name:            "Music Band",
			Description:     "Join our school band and perform at concerts and events",
			Schedule:        "Mondays and Fridays, 3:30 PM - 4:30 PM",
			MaxParticipants: 25,
			Participants:    []string{"lucas@mergington.edu", "isabella@mergington.edu"},
		},
		{
			Name:            "Debate Club",
			Description:     "Develop public speaking and critical thinking skills",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 14,
			Participants:    []string{"noah@mergington.edu"},
		},
		{
			Name:            "Math Olympiad",
			Description:     "Challenge yourself with advanced math problems and competitions",
			Schedule:        "Saturdays, 10:00 AM - 12:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"ava@mergington.edu", "ethan@mergington.edu"},
		},
	}
}
