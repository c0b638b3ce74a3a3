package handlers

import (
	"context"
	"strings"
	"sync"

	"idcard/internal/models"
	"idcard/internal/store"
)

// fakeStore is an in-memory EmployeeStore for handler tests. It mirrors the
// Mongo implementation's semantics: unique prno, whole-document replace,
// ANDed search filters with case-insensitive name matching.
type fakeStore struct {
	mu        sync.Mutex
	employees map[string]models.Employee
	order     []string
	forcedErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{employees: make(map[string]models.Employee)}
}

func (f *fakeStore) Create(_ context.Context, e *models.Employee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return f.forcedErr
	}
	if _, exists := f.employees[e.Prno]; exists {
		return store.ErrDuplicatePrno
	}
	f.employees[e.Prno] = *e
	f.order = append(f.order, e.Prno)
	return nil
}

func (f *fakeStore) FindByPrno(_ context.Context, prno string) (*models.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	e, exists := f.employees[prno]
	if !exists {
		return nil, store.ErrNotFound
	}
	copied := e
	return &copied, nil
}

func (f *fakeStore) Update(_ context.Context, e *models.Employee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return f.forcedErr
	}
	if _, exists := f.employees[e.Prno]; !exists {
		return store.ErrNotFound
	}
	f.employees[e.Prno] = *e
	return nil
}

func (f *fakeStore) Search(_ context.Context, filter store.Filter) ([]store.Summary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	results := make([]store.Summary, 0)
	for _, prno := range f.order {
		e := f.employees[prno]
		if filter.Name != "" && !strings.Contains(strings.ToLower(e.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.Prno != "" && e.Prno != filter.Prno {
			continue
		}
		if filter.Department != "" && e.Department != filter.Department {
			continue
		}
		results = append(results, store.Summary{
			ID:         e.ID,
			Name:       e.Name,
			Department: e.Department,
			Prno:       e.Prno,
			MobileNo:   e.MobileNo,
		})
	}
	return results, nil
}

func (f *fakeStore) FindAll(_ context.Context) ([]models.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	employees := make([]models.Employee, 0, len(f.order))
	for _, prno := range f.order {
		employees = append(employees, f.employees[prno])
	}
	return employees, nil
}

// get returns the stored record directly, bypassing the interface. Test-only.
func (f *fakeStore) get(prno string) (models.Employee, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, exists := f.employees[prno]
	return e, exists
}
