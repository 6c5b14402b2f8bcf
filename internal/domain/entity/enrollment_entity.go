package entity

import "time"

// EnrollmentStatus tracks the state of a user's enrollment in a course.
type EnrollmentStatus string

const (
	EnrollmentEnrolled  EnrollmentStatus = "ENROLLED"
	EnrollmentCompleted EnrollmentStatus = "COMPLETED"
	EnrollmentDropped   EnrollmentStatus = "DROPPED"
	EnrollmentCancelled EnrollmentStatus = "CANCELLED"
)

// Enrollment links a user and a course. A course with ENROLLED enrollments
// cannot be deleted.
type Enrollment struct {
	ID         string
	UserID     string
	CourseID   string
	Status     EnrollmentStatus
	Progress   float64
	EnrolledAt time.Time
	UpdatedAt  time.Time
}

// EnrollmentSummary is the projection embedded in the course detail response.
type EnrollmentSummary struct {
	ID         string           `json:"id"`
	UserID     string           `json:"userId"`
	Status     EnrollmentStatus `json:"status"`
	EnrolledAt time.Time        `json:"enrolledAt"`
}

// EnrollmentStats aggregates per-course enrollment counts for instructor views.
type EnrollmentStats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}
