// Package gateway synchronizes customers and policies with a backing store.
//
// A Backend performs the CRUD calls. HTTPBackend talks to the REST API,
// RepositoryBackend works on the database directly and MemoryBackend keeps
// everything in memory. Pick one when wiring the application; Store caches
// the collections on top of any of them.
package gateway

import (
	"context"
	"errors"

	"github.com/ManuelReschke/QuoteFox/app/models"
)

// ErrNotFound is returned by update and delete calls for unknown ids.
var ErrNotFound = errors.New("record not found")

type Backend interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	CountCustomers(ctx context.Context) (int64, error)
	CreateCustomer(ctx context.Context, customer models.Customer) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, id uint, patch models.CustomerPatch) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id uint) error

	ListPolicies(ctx context.Context) ([]models.Policy, error)
	CountPolicies(ctx context.Context) (int64, error)
	CreatePolicy(ctx context.Context, policy models.Policy) (*models.Policy, error)
	UpdatePolicy(ctx context.Context, id uint, patch models.PolicyPatch) (*models.Policy, error)
	DeletePolicy(ctx context.Context, id uint) error
}
