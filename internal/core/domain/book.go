package domain

import (
	"errors"
	"fmt"
	"time"
)

// Book is a single catalog record. Available never exceeds Total nor
// drops below zero; both bounds are enforced by the catalog service.
type Book struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Total     int    `json:"total"`
	Available int    `json:"available"`
}

var ErrBookNotFound = errors.New("book not found")
var ErrNoCopiesAvailable = errors.New("no copies available")
var ErrAllCopiesPresent = errors.New("all copies already present")
var ErrEmptyTitle = errors.New("title is required")

// SeedCatalog returns the fixed initial catalog written whenever the
// backing entry is absent or unparseable. The identifiers and copy counts
// are part of the storage compatibility contract and must not change.
func SeedCatalog() []Book {
	return []Book{
		{ID: "B-101", Title: "Introduction to Java", Author: "K. Thomas", Total: 5, Available: 5},
		{ID: "B-102", Title: "Data Structures", Author: "S. Yadav", Total: 4, Available: 4},
		{ID: "B-103", Title: "Operating Systems", Author: "A. Tanenbaum", Total: 3, Available: 3},
		{ID: "B-104", Title: "Computer Networks", Author: "J. Kurose", Total: 2, Available: 2},
		{ID: "B-105", Title: "Database Systems", Author: "R. Elmasri", Total: 6, Available: 6},
	}
}

// NewBookID derives an identifier for a user-added book from the given
// creation time, matching the seed format B-<number>.
func NewBookID(at time.Time) string {
	return fmt.Sprintf("B-%d", at.UnixMilli())
}
