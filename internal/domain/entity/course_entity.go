package entity

import "time"

// CourseStatus is the course lifecycle state. Only PUBLISHED courses are
// visible on the public listing.
type CourseStatus string

const (
	CourseDraft     CourseStatus = "DRAFT"
	CoursePublished CourseStatus = "PUBLISHED"
	CourseArchived  CourseStatus = "ARCHIVED"
)

func (s CourseStatus) Valid() bool {
	switch s {
	case CourseDraft, CoursePublished, CourseArchived:
		return true
	}
	return false
}

// Course is owned by the instructor referenced by InstructorID.
type Course struct {
	ID                string
	Title             string
	Description       string
	Content           string
	Duration          int // hours
	Price             float64
	MaxStudents       int
	CurrentEnrollment int
	Status            CourseStatus
	Thumbnail         string
	InstructorID      string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Populated by repository reads that join related rows.
	Instructor *UserSummary
	Categories []Category
}

// UserSummary is the instructor projection embedded in course responses.
type UserSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}
