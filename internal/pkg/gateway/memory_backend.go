package gateway

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/utils"

	"github.com/ManuelReschke/QuoteFox/app/models"
)

// MemoryBackend is an in-memory stand-in for the database with the same
// uniqueness rules (customer email, policy number).
type MemoryBackend struct {
	mu             sync.Mutex
	customers      []models.Customer
	policies       []models.Policy
	nextCustomerID uint
	nextPolicyID   uint
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{nextCustomerID: 1, nextPolicyID: 1}
}

func (b *MemoryBackend) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Customer{}, b.customers...), nil
}

func (b *MemoryBackend) CountCustomers(ctx context.Context) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return int64(len(b.customers)), nil
}

func (b *MemoryBackend) CreateCustomer(ctx context.Context, customer models.Customer) (*models.Customer, error) {
	if err := customer.Validate(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.customerEmailTaken(customer.Email, 0) {
		return nil, fmt.Errorf("UNIQUE constraint failed: Customers.email")
	}
	customer = detachCustomer(customer)
	customer.ID = b.nextCustomerID
	customer.CreatedAt = time.Now()
	b.nextCustomerID++
	b.customers = append(b.customers, customer)
	return &customer, nil
}

func (b *MemoryBackend) UpdateCustomer(ctx context.Context, id uint, patch models.CustomerPatch) (*models.Customer, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.customers {
		if b.customers[i].ID != id {
			continue
		}
		updated := b.customers[i]
		patch.Apply(&updated)
		if err := updated.Validate(); err != nil {
			return nil, err
		}
		if b.customerEmailTaken(updated.Email, id) {
			return nil, fmt.Errorf("UNIQUE constraint failed: Customers.email")
		}
		b.customers[i] = detachCustomer(updated)
		updated = b.customers[i]
		return &updated, nil
	}
	return nil, fmt.Errorf("customer %d: %w", id, ErrNotFound)
}

func (b *MemoryBackend) DeleteCustomer(ctx context.Context, id uint) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.customers {
		if b.customers[i].ID == id {
			b.customers = append(b.customers[:i], b.customers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("customer %d: %w", id, ErrNotFound)
}

func (b *MemoryBackend) ListPolicies(ctx context.Context) ([]models.Policy, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Policy{}, b.policies...), nil
}

func (b *MemoryBackend) CountPolicies(ctx context.Context) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return int64(len(b.policies)), nil
}

func (b *MemoryBackend) CreatePolicy(ctx context.Context, policy models.Policy) (*models.Policy, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.policyNumberTaken(policy.PolicyNumber, 0) {
		return nil, fmt.Errorf("UNIQUE constraint failed: Policies.policyNumber")
	}
	policy = detachPolicy(policy)
	policy.ID = b.nextPolicyID
	policy.CreatedAt = time.Now()
	b.nextPolicyID++
	b.policies = append(b.policies, policy)
	return &policy, nil
}

func (b *MemoryBackend) UpdatePolicy(ctx context.Context, id uint, patch models.PolicyPatch) (*models.Policy, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.policies {
		if b.policies[i].ID != id {
			continue
		}
		updated := b.policies[i]
		patch.Apply(&updated)
		if err := updated.Validate(); err != nil {
			return nil, err
		}
		if b.policyNumberTaken(updated.PolicyNumber, id) {
			return nil, fmt.Errorf("UNIQUE constraint failed: Policies.policyNumber")
		}
		b.policies[i] = detachPolicy(updated)
		updated = b.policies[i]
		return &updated, nil
	}
	return nil, fmt.Errorf("policy %d: %w", id, ErrNotFound)
}

func (b *MemoryBackend) DeletePolicy(ctx context.Context, id uint) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.policies {
		if b.policies[i].ID == id {
			b.policies = append(b.policies[:i], b.policies[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("policy %d: %w", id, ErrNotFound)
}

func (b *MemoryBackend) customerEmailTaken(email string, exceptID uint) bool {
	for _, c := range b.customers {
		if c.Email == email && c.ID != exceptID {
			return true
		}
	}
	return false
}

func (b *MemoryBackend) policyNumberTaken(number string, exceptID uint) bool {
	for _, p := range b.policies {
		if p.PolicyNumber == number && p.ID != exceptID {
			return true
		}
	}
	return false
}

// detachCustomer copies the strings of c so the stored row owns its memory.
func detachCustomer(c models.Customer) models.Customer {
	c.FirstName = utils.CopyString(c.FirstName)
	c.LastName = utils.CopyString(c.LastName)
	c.Email = utils.CopyString(c.Email)
	c.Phone = utils.CopyString(c.Phone)
	c.Address = utils.CopyString(c.Address)
	return c
}

func detachPolicy(p models.Policy) models.Policy {
	p.PolicyNumber = utils.CopyString(p.PolicyNumber)
	p.PolicyType = utils.CopyString(p.PolicyType)
	p.StartDate = utils.CopyString(p.StartDate)
	p.EndDate = utils.CopyString(p.EndDate)
	p.Status = utils.CopyString(p.Status)
	return p
}
