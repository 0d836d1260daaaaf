package handlers

import (
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/Avishake00/schl-scheduler-frontend/internal/models"
)

// MemStore is the in-memory record store behind the mock backend. It stands
// in for the real persistence tier during development and in client tests;
// it assigns ids itself, because id assignment belongs to the backend alone.
type MemStore struct {
	mu       sync.RWMutex
	students map[string]models.Student
	classes  map[string]models.Class
}

func NewMemStore() *MemStore {
	return &MemStore{
		students: make(map[string]models.Student),
		classes:  make(map[string]models.Class),
	}
}

// Seed installs the demo dataset.
func (s *MemStore) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, student := range seedStudents {
		s.students[student.ID] = student
	}
	for _, class := range seedClasses {
		s.classes[class.ID] = class
	}
}

// ===== STUDENTS =====

func (s *MemStore) ListStudents() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	students := make([]models.Student, 0, len(s.students))
	for _, student := range s.students {
		students = append(students, student)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].ID < students[j].ID })
	return students
}

func (s *MemStore) FindStudentByEmail(email string) (models.Student, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, student := range s.students {
		if strings.EqualFold(student.Email, email) {
			return student, true
		}
	}
	return models.Student{}, false
}

func (s *MemStore) CreateStudent(student models.Student) models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()

	student.ID = uuid.NewString()
	s.students[student.ID] = student
	return student
}

func (s *MemStore) UpdateStudent(id string, student models.Student) (models.Student, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.students[id]; !ok {
		return models.Student{}, false
	}
	student.ID = id
	s.students[id] = student
	return student, true
}

func (s *MemStore) DeleteStudent(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.students[id]; !ok {
		return false
	}
	delete(s.students, id)
	return true
}

// ===== CLASSES =====

func (s *MemStore) ListClasses() []models.Class {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectClasses(func(models.Class) bool { return true })
}

func (s *MemStore) GetClass(id string) (models.Class, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	class, ok := s.classes[id]
	return class, ok
}

func (s *MemStore) ListClassesByDate(date string) []models.Class {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectClasses(func(c models.Class) bool { return classDate(c) == date })
}

func (s *MemStore) ListClassesForStudent(studentID string) []models.Class {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectClasses(func(c models.Class) bool { return onRoster(c, studentID) })
}

func (s *MemStore) ListClassesForStudentOnDate(studentID, date string) []models.Class {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectClasses(func(c models.Class) bool {
		return onRoster(c, studentID) && classDate(c) == date
	})
}

func (s *MemStore) CreateClass(class models.Class) models.Class {
	s.mu.Lock()
	defer s.mu.Unlock()

	class.ID = uuid.NewString()
	s.classes[class.ID] = class
	return class
}

func (s *MemStore) DeleteClass(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.classes[id]; !ok {
		return false
	}
	delete(s.classes, id)
	return true
}

// collectClasses must be called with the lock held.
func (s *MemStore) collectClasses(keep func(models.Class) bool) []models.Class {
	classes := make([]models.Class, 0, len(s.classes))
	for _, class := range s.classes {
		if keep(class) {
			classes = append(classes, class)
		}
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i].ID < classes[j].ID })
	return classes
}

// classDate truncates a stored date to its calendar-day prefix so timestamp
// suffixes do not break exact-date filtering.
func classDate(c models.Class) string {
	if len(c.Date) > 10 {
		return c.Date[:10]
	}
	return c.Date
}

func onRoster(c models.Class, studentID string) bool {
	for _, id := range c.StudentIDs {
		if id == studentID {
			return true
		}
	}
	return false
}
