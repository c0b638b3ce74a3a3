// Package store is the persistence boundary for employee records. Handlers
// depend on the EmployeeStore interface so the Mongo-backed implementation
// can be swapped for an in-memory one in tests.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"idcard/internal/models"
)

var (
	// ErrNotFound means no record exists for the given prno.
	ErrNotFound = errors.New("employee not found")
	// ErrDuplicatePrno means a record with the same prno already exists.
	ErrDuplicatePrno = errors.New("employee already exists")
)

// Filter holds the optional search criteria. Zero-value fields impose no
// constraint; set fields are ANDed together.
type Filter struct {
	Name       string // case-insensitive substring match
	Prno       string // exact match
	Department string // exact match
}

// Summary is the projection returned by Search: {name, department, prno,
// mobileNo} plus the record id.
type Summary struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Department string             `bson:"department" json:"department"`
	Prno       string             `bson:"prno" json:"prno"`
	MobileNo   string             `bson:"mobileNo" json:"mobileNo"`
}

type EmployeeStore interface {
	// Create inserts a new record. Returns ErrDuplicatePrno when the prno
	// is already taken.
	Create(ctx context.Context, e *models.Employee) error
	// FindByPrno returns the record for prno, or ErrNotFound.
	FindByPrno(ctx context.Context, prno string) (*models.Employee, error)
	// Update replaces the whole document identified by e.Prno.
	// Last-write-wins; no optimistic concurrency check.
	Update(ctx context.Context, e *models.Employee) error
	// Search returns summaries of every record matching the filter.
	Search(ctx context.Context, f Filter) ([]Summary, error)
	// FindAll returns every record.
	FindAll(ctx context.Context) ([]models.Employee, error)
}
