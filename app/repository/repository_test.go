package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ManuelReschke/QuoteFox/app/models"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/database"
)

func newTestRepositories(t *testing.T) *Repositories {
	t.Helper()
	db, err := database.OpenMemory(strings.ReplaceAll(t.Name(), "/", "_"))
	require.NoError(t, err)
	return NewRepositories(db)
}

func newPolicy(customerID uint, number string) *models.Policy {
	return &models.Policy{
		CustomerID:   customerID,
		PolicyNumber: number,
		PolicyType:   "Homeowners",
		StartDate:    "2025-01-01",
		EndDate:      "2026-01-01",
		Premium:      834.6,
		Status:       models.POLICY_STATUS_ACTIVE,
	}
}

func TestCustomerCreateAssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepositories(t)

	const n = 5
	for i := 0; i < n; i++ {
		c := &models.Customer{FirstName: "F", LastName: "L", Email: fmt.Sprintf("user%d@example.com", i)}
		require.NoError(t, repos.Customer.Create(ctx, c))
		assert.NotZero(t, c.ID)
	}

	customers, err := repos.Customer.List(ctx)
	require.NoError(t, err)
	require.Len(t, customers, n)

	seen := map[uint]bool{}
	for _, c := range customers {
		assert.False(t, seen[c.ID], "duplicate id %d", c.ID)
		seen[c.ID] = true
	}
}

func TestCustomerDuplicateEmailFails(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepositories(t)

	require.NoError(t, repos.Customer.Create(ctx, &models.Customer{FirstName: "A", LastName: "B", Email: "a@b.com"}))
	err := repos.Customer.Create(ctx, &models.Customer{FirstName: "C", LastName: "D", Email: "a@b.com"})
	require.Error(t, err)
	assert.Contains(t, strings.ToLower(err.Error()), "unique")

	count, err := repos.Customer.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCustomerListEmptyIsNotNil(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepositories(t)

	customers, err := repos.Customer.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, customers)
	assert.Empty(t, customers)
}

func TestCustomerUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepositories(t)

	c := &models.Customer{FirstName: "A", LastName: "B", Email: "a@b.com"}
	require.NoError(t, repos.Customer.Create(ctx, c))

	c.Phone = "555-0100"
	require.NoError(t, repos.Customer.Update(ctx, c))

	got, err := repos.Customer.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "555-0100", got.Phone)

	require.NoError(t, repos.Customer.Delete(ctx, c.ID))
	_, err = repos.Customer.GetByID(ctx, c.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	err = repos.Customer.Delete(ctx, c.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestPolicyDuplicateNumberFails(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepositories(t)

	require.NoError(t, repos.Policy.Create(ctx, newPolicy(1, "POL-1")))
	err := repos.Policy.Create(ctx, newPolicy(2, "POL-1"))
	require.Error(t, err)

	policies, err := repos.Policy.List(ctx)
	require.NoError(t, err)
	require.Len(t, policies, 1)
	assert.Equal(t, uint(1), policies[0].CustomerID)
}

func TestPolicyCustomerReferenceNotEnforced(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepositories(t)

	p := newPolicy(999, "POL-ORPHAN")
	require.NoError(t, repos.Policy.Create(ctx, p))

	got, err := repos.Policy.GetByPolicyNumber(ctx, "POL-ORPHAN")
	require.NoError(t, err)
	assert.Equal(t, uint(999), got.CustomerID)
}

func TestPolicyListByCustomerID(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepositories(t)

	require.NoError(t, repos.Policy.Create(ctx, newPolicy(1, "POL-1")))
	require.NoError(t, repos.Policy.Create(ctx, newPolicy(2, "POL-2")))
	require.NoError(t, repos.Policy.Create(ctx, newPolicy(1, "POL-3")))

	policies, err := repos.Policy.ListByCustomerID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, policies, 2)
	assert.Equal(t, "POL-1", policies[0].PolicyNumber)
	assert.Equal(t, "POL-3", policies[1].PolicyNumber)
}

func TestPolicyUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepositories(t)

	p := newPolicy(1, "POL-1")
	require.NoError(t, repos.Policy.Create(ctx, p))
	p.Status = models.POLICY_STATUS_CANCELLED
	require.NoError(t, repos.Policy.Update(ctx, p))

	got, err := repos.Policy.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.POLICY_STATUS_CANCELLED, got.Status)

	require.NoError(t, repos.Policy.Delete(ctx, p.ID))
	count, err := repos.Policy.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCancelledContextAbortsQuery(t *testing.T) {
	repos := newTestRepositories(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repos.Customer.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	err = repos.Policy.Create(ctx, newPolicy(1, "POL-1"))
	assert.ErrorIs(t, err, context.Canceled)

	count, err := repos.Policy.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}
