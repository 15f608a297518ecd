package gateway

import (
	"context"
	"sync"

	"github.com/ManuelReschke/QuoteFox/app/models"
)

// Store caches the customer and policy collections of a Backend. Every
// successful mutation re-fetches the whole collection. A failed call leaves
// the cache untouched and records its message, readable through Err.
type Store struct {
	backend Backend

	mu        sync.RWMutex
	customers []models.Customer
	policies  []models.Policy
	loading   int
	lastErr   string
}

func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// FetchCustomers replaces the cached customers with the backend's.
func (s *Store) FetchCustomers(ctx context.Context) error {
	return s.run(func() error {
		return s.refreshCustomers(ctx)
	})
}

// FetchPolicies replaces the cached policies with the backend's.
func (s *Store) FetchPolicies(ctx context.Context) error {
	return s.run(func() error {
		return s.refreshPolicies(ctx)
	})
}

// FetchAll loads both collections and stops at the first failure.
func (s *Store) FetchAll(ctx context.Context) error {
	if err := s.FetchCustomers(ctx); err != nil {
		return err
	}
	return s.FetchPolicies(ctx)
}

func (s *Store) AddCustomer(ctx context.Context, customer models.Customer) error {
	return s.run(func() error {
		if _, err := s.backend.CreateCustomer(ctx, customer); err != nil {
			return err
		}
		return s.refreshCustomers(ctx)
	})
}

func (s *Store) UpdateCustomer(ctx context.Context, id uint, patch models.CustomerPatch) error {
	return s.run(func() error {
		if _, err := s.backend.UpdateCustomer(ctx, id, patch); err != nil {
			return err
		}
		return s.refreshCustomers(ctx)
	})
}

func (s *Store) DeleteCustomer(ctx context.Context, id uint) error {
	return s.run(func() error {
		if err := s.backend.DeleteCustomer(ctx, id); err != nil {
			return err
		}
		return s.refreshCustomers(ctx)
	})
}

func (s *Store) AddPolicy(ctx context.Context, policy models.Policy) error {
	return s.run(func() error {
		if _, err := s.backend.CreatePolicy(ctx, policy); err != nil {
			return err
		}
		return s.refreshPolicies(ctx)
	})
}

func (s *Store) UpdatePolicy(ctx context.Context, id uint, patch models.PolicyPatch) error {
	return s.run(func() error {
		if _, err := s.backend.UpdatePolicy(ctx, id, patch); err != nil {
			return err
		}
		return s.refreshPolicies(ctx)
	})
}

func (s *Store) DeletePolicy(ctx context.Context, id uint) error {
	return s.run(func() error {
		if err := s.backend.DeletePolicy(ctx, id); err != nil {
			return err
		}
		return s.refreshPolicies(ctx)
	})
}

// Customers returns a copy of the cached customers.
func (s *Store) Customers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Customer{}, s.customers...)
}

// Policies returns a copy of the cached policies.
func (s *Store) Policies() []models.Policy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Policy{}, s.policies...)
}

// PoliciesFor filters the cached policies by customer. Zero means all.
func (s *Store) PoliciesFor(customerID uint) []models.Policy {
	all := s.Policies()
	if customerID == 0 {
		return all
	}
	out := make([]models.Policy, 0, len(all))
	for _, p := range all {
		if p.CustomerID == customerID {
			out = append(out, p)
		}
	}
	return out
}

// Loading reports whether a call is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading > 0
}

// Err returns the message of the last failed call, or "".
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *Store) ClearError() {
	s.mu.Lock()
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *Store) run(fn func() error) error {
	s.mu.Lock()
	s.loading++
	s.lastErr = ""
	s.mu.Unlock()

	err := fn()

	s.mu.Lock()
	s.loading--
	if err != nil {
		s.lastErr = err.Error()
	}
	s.mu.Unlock()
	return err
}

func (s *Store) refreshCustomers(ctx context.Context) error {
	customers, err := s.backend.ListCustomers(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.customers = customers
	s.mu.Unlock()
	return nil
}

func (s *Store) refreshPolicies(ctx context.Context) error {
	policies, err := s.backend.ListPolicies(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.policies = policies
	s.mu.Unlock()
	return nil
}
