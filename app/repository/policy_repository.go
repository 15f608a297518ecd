package repository

import (
	"context"

	"github.com/ManuelReschke/QuoteFox/app/models"
	"gorm.io/gorm"
)

// policyRepository implements the PolicyRepository interface
type policyRepository struct {
	db *gorm.DB
}

// NewPolicyRepository creates a new policy repository instance
func NewPolicyRepository(db *gorm.DB) PolicyRepository {
	return &policyRepository{db: db}
}

// Create inserts a policy; the generated id is written back into policy.
func (r *policyRepository) Create(ctx context.Context, policy *models.Policy) error {
	return r.db.WithContext(ctx).Create(policy).Error
}

// GetByID retrieves a policy by its ID
func (r *policyRepository) GetByID(ctx context.Context, id uint) (*models.Policy, error) {
	var policy models.Policy
	err := r.db.WithContext(ctx).First(&policy, id).Error
	if err != nil {
		return nil, err
	}
	return &policy, nil
}

// GetByPolicyNumber retrieves a policy by its unique number
func (r *policyRepository) GetByPolicyNumber(ctx context.Context, number string) (*models.Policy, error) {
	var policy models.Policy
	err := r.db.WithContext(ctx).Where("policyNumber = ?", number).First(&policy).Error
	if err != nil {
		return nil, err
	}
	return &policy, nil
}

// List returns every policy in the store's natural order.
func (r *policyRepository) List(ctx context.Context) ([]models.Policy, error) {
	policies := []models.Policy{}
	err := r.db.WithContext(ctx).Find(&policies).Error
	return policies, err
}

// ListByCustomerID returns the policies of one customer
func (r *policyRepository) ListByCustomerID(ctx context.Context, customerID uint) ([]models.Policy, error) {
	policies := []models.Policy{}
	err := r.db.WithContext(ctx).Where("customerId = ?", customerID).Find(&policies).Error
	return policies, err
}

// Update saves all fields of an existing policy
func (r *policyRepository) Update(ctx context.Context, policy *models.Policy) error {
	return r.db.WithContext(ctx).Save(policy).Error
}

// Delete removes a policy by its ID
func (r *policyRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Policy{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the total number of policies
func (r *policyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Policy{}).Count(&count).Error
	return count, err
}
