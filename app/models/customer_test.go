package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerValidateRequiredFields(t *testing.T) {
	c := &Customer{FirstName: "A", LastName: "B", Email: "a@b.com"}
	require.NoError(t, c.Validate())

	missing := &Customer{FirstName: "A", Email: "a@b.com"}
	err := missing.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LastName")
}

func TestCustomerPatchApply(t *testing.T) {
	c := Customer{ID: 3, FirstName: "Ann", LastName: "Lee", Email: "ann@example.com", Phone: "123"}
	phone := "555-0100"
	email := "ann.lee@example.com"

	CustomerPatch{Phone: &phone, Email: &email}.Apply(&c)

	assert.Equal(t, uint(3), c.ID)
	assert.Equal(t, "Ann", c.FirstName)
	assert.Equal(t, "Lee", c.LastName)
	assert.Equal(t, "555-0100", c.Phone)
	assert.Equal(t, "ann.lee@example.com", c.Email)
	assert.Equal(t, "Ann Lee", c.FullName())
}

func TestPolicyValidate(t *testing.T) {
	p := &Policy{
		CustomerID:   1,
		PolicyNumber: "POL-1",
		PolicyType:   "Homeowners",
		StartDate:    "2025-01-01",
		EndDate:      "2026-01-01",
		Premium:      834.6,
		Status:       POLICY_STATUS_ACTIVE,
	}
	require.NoError(t, p.Validate())

	p.Premium = -1
	assert.Error(t, p.Validate())

	p.Premium = 10
	p.CustomerID = 0
	assert.Error(t, p.Validate())
}

func TestPolicyPatchApply(t *testing.T) {
	p := Policy{ID: 9, PolicyNumber: "POL-9", Status: POLICY_STATUS_PENDING, Premium: 100}
	status := POLICY_STATUS_ACTIVE
	premium := 120.5

	PolicyPatch{Status: &status, Premium: &premium}.Apply(&p)

	assert.Equal(t, "POL-9", p.PolicyNumber)
	assert.Equal(t, POLICY_STATUS_ACTIVE, p.Status)
	assert.Equal(t, 120.5, p.Premium)
}
