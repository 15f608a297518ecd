package repository

import (
	"context"

	"github.com/ManuelReschke/QuoteFox/app/models"
	"gorm.io/gorm"
)

// CustomerRepository defines the interface for customer-related database operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id uint) (*models.Customer, error)
	GetByEmail(ctx context.Context, email string) (*models.Customer, error)
	List(ctx context.Context) ([]models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

// PolicyRepository defines the interface for policy-related database operations
type PolicyRepository interface {
	Create(ctx context.Context, policy *models.Policy) error
	GetByID(ctx context.Context, id uint) (*models.Policy, error)
	GetByPolicyNumber(ctx context.Context, number string) (*models.Policy, error)
	List(ctx context.Context) ([]models.Policy, error)
	ListByCustomerID(ctx context.Context, customerID uint) ([]models.Policy, error)
	Update(ctx context.Context, policy *models.Policy) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	Customer CustomerRepository
	Policy   PolicyRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Customer: NewCustomerRepository(db),
		Policy:   NewPolicyRepository(db),
	}
}
