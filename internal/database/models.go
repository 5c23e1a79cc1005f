package database

import "time"

// Participant is one stored survey participant. The fields/topics tag
// sets are stored as delimiter-joined text: for mentors they hold the
// experienced fields and knowledgeable topics, for mentees the
// interested fields and desired topics.
type Participant struct {
	ID            string    `json:"id"`
	BatchID       string    `json:"batch_id"`
	Email         string    `json:"email"`
	Name          *string   `json:"name,omitempty"`
	Role          string    `json:"role"`
	Year          string    `json:"year"`
	TimeZone      int       `json:"time_zone"`
	Capacity      *int      `json:"capacity,omitempty"` // mentors only
	AvailableTime int       `json:"available_time"`
	Experience    int       `json:"experience"`
	Fields        string    `json:"fields"`
	Topics        string    `json:"topics"`
	Hobbies       string    `json:"hobbies"`
	CreatedAt     time.Time `json:"created_at"`
}

// ImportBatch records one roster import from a survey file
type ImportBatch struct {
	ID          string    `json:"id"`
	SourceFile  string    `json:"source_file"`
	MenteeCount int       `json:"mentee_count"`
	MentorCount int       `json:"mentor_count"`
	ImportedAt  time.Time `json:"imported_at"`
}

// RosterStats represents aggregate statistics over the stored roster
type RosterStats struct {
	Batches             int `json:"batches"`
	Mentees             int `json:"mentees"`
	Mentors             int `json:"mentors"`
	TotalCapacity       int `json:"total_capacity"`
	ZeroCapacityMentors int `json:"zero_capacity_mentors"`
}
