// Package store holds the static in-memory HR data the assistant answers
// from: the current user, company policies, notices, the employee
// directory, and inquiry analytics. All data is immutable for the process
// lifetime.
package store

import "strings"

// User is the employee the assistant is serving.
type User struct {
	ID           string
	Name         string
	Role         string
	Department   string
	JoinDate     string
	LeaveBalance float64
	Position     string
	Email        string
}

// Policy is a company policy document.
type Policy struct {
	ID          string
	Title       string
	Category    string
	Summary     string
	Content     string // markdown
	LastUpdated string
}

// PolicySummary is the one-line digest embedded into the model's system
// instruction.
type PolicySummary struct {
	ID      string
	Title   string
	Summary string
}

// Employee is a directory entry returned by employee search.
type Employee struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Phone      string `json:"phone"`
	Location   string `json:"location"`
}

// Notice is a company announcement shown on the dashboard.
type Notice struct {
	ID        int
	Title     string
	Date      string
	Important bool
}

// AnalyticsEntry is an inquiry count per category.
type AnalyticsEntry struct {
	Category string
	Count    int
}

// Store provides read-only access to the mock HR data set.
type Store struct {
	user      User
	policies  []Policy
	employees []Employee
	notices   []Notice
	analytics []AnalyticsEntry
}

// New returns a store seeded with the demo data set.
func New() *Store {
	return &Store{
		user:      currentUser,
		policies:  mockPolicies,
		employees: employees,
		notices:   mockNotices,
		analytics: mockAnalytics,
	}
}

// CurrentUser returns the employee using the assistant.
func (s *Store) CurrentUser() User {
	return s.user
}

// FindPolicy looks up a policy by ID.
func (s *Store) FindPolicy(id string) (Policy, bool) {
	for _, p := range s.policies {
		if p.ID == id {
			return p, true
		}
	}
	return Policy{}, false
}

// Policies returns all policy documents in display order.
func (s *Store) Policies() []Policy {
	return s.policies
}

// ListPolicySummaries returns the ordered policy digest for the system
// instruction.
func (s *Store) ListPolicySummaries() []PolicySummary {
	summaries := make([]PolicySummary, 0, len(s.policies))
	for _, p := range s.policies {
		summaries = append(summaries, PolicySummary{ID: p.ID, Title: p.Title, Summary: p.Summary})
	}
	return summaries
}

// SearchEmployees returns directory entries whose name, role, or
// department contains query as a substring. Matching is case-sensitive,
// mirroring the directory's exact-hangul lookup semantics.
func (s *Store) SearchEmployees(query string) []Employee {
	matches := make([]Employee, 0)
	for _, e := range s.employees {
		if strings.Contains(e.Name, query) ||
			strings.Contains(e.Role, query) ||
			strings.Contains(e.Department, query) {
			matches = append(matches, e)
		}
	}
	return matches
}

// Notices returns the dashboard announcements.
func (s *Store) Notices() []Notice {
	return s.notices
}

// Analytics returns inquiry counts per category.
func (s *Store) Analytics() []AnalyticsEntry {
	return s.analytics
}
