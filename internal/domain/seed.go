package domain

// DefaultActivities returns the school's activity catalog used to seed
// the registry at startup.
func DefaultActivities() []Activity {
	return []Activity{
		{
			Name:        "Chess Club",
			Description: "Learn strategies and compete in chess tournaments",
			Schedule:    "Fridays, 3:30 PM - 5:00 PM",
			Capacity:    12,
			Roster:      []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:        "Programming Class",
			Description: "Learn programming fundamentals and build software projects",
			Schedule:    "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			Capacity:    20,
			Roster:      []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:        "Gym Class",
			Description: "Physical education and sports activities",
			Schedule:    "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			Capacity:    30,
			Roster:      []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:        "Soccer Team",
			Description: "Join the school soccer team and compete in matches",
			Schedule:    "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			Capacity:    22,
			Roster:      []string{"liam@mergington.edu", "noah@mergington.edu"},
		},
		{
			Name:        "Basketball Team",
			Description: "Practice and play basketball with the school team",
			Schedule:    "Wednesdays and Fridays, 3:30 PM - 5:00 PM",
			Capacity:    15,
			Roster:      []string{"ava@mergington.edu", "mia@mergington.edu"},
		},
		{
			Name:        "Art Club",
			Description: "Explore your creativity through painting and drawing",
			Schedule:    "Thursdays, 3:30 PM - 5:00 PM",
			Capacity:    15,
			Roster:      []string{"amelia@mergington.edu", "harper@mergington.edu"},
		},
		{
			Name:        "Drama Club",
			Description: "Act, direct, and produce plays and performances",
			Schedule:    "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			Capacity:    20,
			Roster:      []string{"ella@mergington.edu", "scarlett@mergington.edu"},
		},
		{
			Name:        "Math Club",
			Description: "Solve challenging problems and participate in math competitions",
			Schedule:    "Tuesdays, 3:30 PM - 4:30 PM",
			Capacity:    10,
			Roster:      []string{"james@mergington.edu", "benjamin@mergington.edu"},
		},
		{
			Name:        "Debate Team",
			Description: "Develop public speaking and argumentation skills",
			Schedule:    "Fridays, 4:00 PM - 5:30 PM",
			Capacity:    12,
			Roster:      []string{"charlotte@mergington.edu", "henry@mergington.edu"},
		},
	}
}
