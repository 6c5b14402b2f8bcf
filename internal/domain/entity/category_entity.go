package entity

import "time"

// Category tags courses, many-to-many via course_categories.
// Name is unique. A category with associated courses cannot be deleted.
type Category struct {
	ID          string
	Name        string
	Description string
	Color       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
