package handlers

import "github.com/Avishake00/schl-scheduler-frontend/internal/models"

// Demo dataset served by the mock backend.

var seedStudents = []models.Student{
	{
		ID:        "2",
		Name:      "Jane Doe",
		Email:     "student@example.com",
		Major:     "Computer Science",
		Year:      2,
		StudentID: "CS20220002",
	},
	{
		ID:        "3",
		Name:      "Alex Johnson",
		Email:     "alex@example.com",
		Major:     "Mathematics",
		Year:      3,
		StudentID: "MT20210003",
	},
	{
		ID:        "4",
		Name:      "Maria Garcia",
		Email:     "maria@example.com",
		Major:     "Physics",
		Year:      2,
		StudentID: "PH20220004",
	},
	{
		ID:        "5",
		Name:      "Sam Lee",
		Email:     "sam@example.com",
		Major:     "Chemistry",
		Year:      4,
		StudentID: "CH20190005",
	},
}

var seedClasses = []models.Class{
	{
		ID:          "1",
		Subject:     "Advanced Mathematics",
		Date:        "2025-05-10",
		Time:        "09:00",
		Duration:    60,
		TeacherID:   "1",
		StudentIDs:  []string{"2", "3"},
		Room:        "Hall 101",
		Description: "Covering linear algebra and calculus topics",
		Category:    models.CategoryMathematics,
	},
	{
		ID:          "2",
		Subject:     "Quantum Physics",
		Date:        "2025-05-10",
		Time:        "11:00",
		Duration:    90,
		TeacherID:   "1",
		StudentIDs:  []string{"2", "4"},
		Room:        "Lab 203",
		Description: "Introduction to quantum mechanics",
		Category:    models.CategoryScience,
	},
	{
		ID:          "3",
		Subject:     "Organic Chemistry",
		Date:        "2025-05-10",
		Time:        "14:00",
		Duration:    60,
		TeacherID:   "1",
		StudentIDs:  []string{"3", "5"},
		Room:        "Lab 105",
		Description: "Study of carbon compounds and reactions",
		Category:    models.CategoryScience,
	},
	{
		ID:          "4",
		Subject:     "Data Structures",
		Date:        "2025-05-11",
		Time:        "10:00",
		Duration:    120,
		TeacherID:   "1",
		StudentIDs:  []string{"2", "4"},
		Room:        "Computer Lab 302",
		Description: "Algorithms and data structures fundamentals",
		Category:    models.CategoryComputerScience,
	},
	{
		ID:          "5",
		Subject:     "Literary Analysis",
		Date:        "2025-05-12",
		Time:        "13:00",
		Duration:    60,
		TeacherID:   "1",
		StudentIDs:  []string{"3", "5"},
		Room:        "Room 205",
		Description: "Critical analysis of classical literature",
		Category:    models.CategoryLiterature,
	},
}
