package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"coursehub/config"
	"coursehub/pkg/helpers"
)

type seedUser struct {
	email     string
	password  string
	firstName string
	lastName  string
	role      string
	bio       string
	phone     string
}

type seedCategory struct {
	name        string
	description string
	color       string
}

type seedCourse struct {
	title       string
	description string
	content     string
	duration    int
	price       float64
	maxStudents int
	instructor  string // email
	category    string // name
}

var users = []seedUser{
	{"admin@coursemanagement.com", "Admin123!", "System", "Administrator", "ADMIN", "", ""},
	{"john.instructor@coursemanagement.com", "Instructor123!", "John", "Smith", "INSTRUCTOR",
		"Experienced software developer with 10+ years in web development and cloud architecture.", "+1234567890"},
	{"sarah.instructor@coursemanagement.com", "Instructor123!", "Sarah", "Johnson", "INSTRUCTOR",
		"Data science expert specializing in machine learning and artificial intelligence.", "+1234567891"},
	{"alice.student@coursemanagement.com", "Student123!", "Alice", "Wilson", "STUDENT", "", ""},
	{"bob.student@coursemanagement.com", "Student123!", "Bob", "Brown", "STUDENT", "", ""},
	{"charlie.student@coursemanagement.com", "Student123!", "Charlie", "Davis", "STUDENT", "", ""},
}

var categories = []seedCategory{
	{"Web Development", "Learn modern web development technologies and frameworks", "#3B82F6"},
	{"Data Science", "Explore data analysis, machine learning, and AI", "#10B981"},
	{"Mobile Development", "Build native and cross-platform mobile applications", "#F59E0B"},
	{"DevOps", "Learn deployment, CI/CD, and infrastructure management", "#EF4444"},
}

var courses = []seedCourse{
	{"Complete Web Development Bootcamp",
		"Learn HTML, CSS, JavaScript, React, Node.js, and more in this comprehensive web development course.",
		"This course covers everything you need to become a full-stack web developer.",
		40, 89.99, 100, "john.instructor@coursemanagement.com", "Web Development"},
	{"Advanced React and TypeScript",
		"Master React development with TypeScript, advanced patterns, and best practices.",
		"Deep dive into React ecosystem with TypeScript and modern development patterns.",
		25, 129.99, 50, "john.instructor@coursemanagement.com", "Web Development"},
	{"Data Science Fundamentals",
		"Introduction to data science, statistics, and machine learning basics.",
		"Learn the fundamentals of data analysis and machine learning.",
		30, 99.99, 75, "sarah.instructor@coursemanagement.com", "Data Science"},
	{"Machine Learning with Python",
		"Advanced machine learning concepts and practical implementations using Python.",
		"Build and deploy machine learning models using Python and popular libraries.",
		35, 149.99, 40, "sarah.instructor@coursemanagement.com", "Data Science"},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	userIDs := map[string]string{}
	for _, u := range users {
		hash, err := helpers.HashPassword(u.password)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}
		var id string
		err = db.QueryRow(`
			INSERT INTO users (email, password_hash, first_name, last_name, role, status, bio, phone)
			VALUES ($1, $2, $3, $4, $5, 'ACTIVE', $6, $7)
			ON CONFLICT (email) DO UPDATE SET updated_at = now()
			RETURNING id
		`, u.email, hash, u.firstName, u.lastName, u.role, u.bio, u.phone).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed user %s: %v", u.email, err)
		}
		userIDs[u.email] = id
		fmt.Printf("seeded user: %s (%s)\n", u.email, u.role)
	}

	categoryIDs := map[string]string{}
	for _, c := range categories {
		var id string
		err := db.QueryRow(`
			INSERT INTO categories (name, description, color)
			VALUES ($1, $2, $3)
			ON CONFLICT (name) DO UPDATE SET updated_at = now()
			RETURNING id
		`, c.name, c.description, c.color).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed category %s: %v", c.name, err)
		}
		categoryIDs[c.name] = id
		fmt.Printf("seeded category: %s\n", c.name)
	}

	for _, c := range courses {
		var id string
		err := db.QueryRow(`
			INSERT INTO courses (title, description, content, duration, price, max_students, status, instructor_id)
			VALUES ($1, $2, $3, $4, $5, $6, 'PUBLISHED', $7)
			ON CONFLICT DO NOTHING
			RETURNING id
		`, c.title, c.description, c.content, c.duration, c.price, c.maxStudents, userIDs[c.instructor]).Scan(&id)
		if err == sql.ErrNoRows {
			continue // already seeded
		}
		if err != nil {
			log.Fatalf("failed to seed course %s: %v", c.title, err)
		}
		if _, err := db.Exec(`
			INSERT INTO course_categories (course_id, category_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, id, categoryIDs[c.category]); err != nil {
			log.Fatalf("failed to link course %s: %v", c.title, err)
		}
		fmt.Printf("seeded course: %s\n", c.title)
	}

	fmt.Println("\nseeded accounts:")
	for _, u := range users {
		fmt.Printf("  %-12s %s / %s\n", u.role, u.email, u.password)
	}
}
