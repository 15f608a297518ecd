package gateway

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ManuelReschke/QuoteFox/app/models"
	"github.com/ManuelReschke/QuoteFox/app/repository"
)

// RepositoryBackend runs every call against the database. Each statement
// commits on its own and is bound to the caller's ctx.
type RepositoryBackend struct {
	customers repository.CustomerRepository
	policies  repository.PolicyRepository
}

func NewRepositoryBackend(repos *repository.Repositories) *RepositoryBackend {
	return &RepositoryBackend{
		customers: repos.Customer,
		policies:  repos.Policy,
	}
}

func (b *RepositoryBackend) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return b.customers.List(ctx)
}

func (b *RepositoryBackend) CountCustomers(ctx context.Context) (int64, error) {
	return b.customers.Count(ctx)
}

func (b *RepositoryBackend) CreateCustomer(ctx context.Context, customer models.Customer) (*models.Customer, error) {
	customer.ID = 0
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if err := b.customers.Create(ctx, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (b *RepositoryBackend) UpdateCustomer(ctx context.Context, id uint, patch models.CustomerPatch) (*models.Customer, error) {
	customer, err := b.customers.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "customer", id)
	}
	patch.Apply(customer)
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if err := b.customers.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (b *RepositoryBackend) DeleteCustomer(ctx context.Context, id uint) error {
	return notFound(b.customers.Delete(ctx, id), "customer", id)
}

func (b *RepositoryBackend) ListPolicies(ctx context.Context) ([]models.Policy, error) {
	return b.policies.List(ctx)
}

func (b *RepositoryBackend) CountPolicies(ctx context.Context) (int64, error) {
	return b.policies.Count(ctx)
}

func (b *RepositoryBackend) CreatePolicy(ctx context.Context, policy models.Policy) (*models.Policy, error) {
	policy.ID = 0
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if err := b.policies.Create(ctx, &policy); err != nil {
		return nil, err
	}
	return &policy, nil
}

func (b *RepositoryBackend) UpdatePolicy(ctx context.Context, id uint, patch models.PolicyPatch) (*models.Policy, error) {
	policy, err := b.policies.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "policy", id)
	}
	patch.Apply(policy)
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if err := b.policies.Update(ctx, policy); err != nil {
		return nil, err
	}
	return policy, nil
}

func (b *RepositoryBackend) DeletePolicy(ctx context.Context, id uint) error {
	return notFound(b.policies.Delete(ctx, id), "policy", id)
}

// notFound maps gorm's missing-row error onto ErrNotFound.
func notFound(err error, kind string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
	}
	return err
}
