package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	POLICY_STATUS_ACTIVE    = "Active"
	POLICY_STATUS_PENDING   = "Pending"
	POLICY_STATUS_CANCELLED = "Cancelled"
	POLICY_STATUS_EXPIRED   = "Expired"
)

// Policy is an issued insurance contract. CustomerID references Customers.id
// but is not enforced as a foreign key.
type Policy struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CustomerID   uint      `gorm:"column:customerId;not null;index" json:"customerId" validate:"required"`
	PolicyNumber string    `gorm:"column:policyNumber;type:varchar(100);uniqueIndex;not null" json:"policyNumber" validate:"required,max=100"`
	PolicyType   string    `gorm:"column:policyType;type:varchar(100);not null" json:"policyType" validate:"required,max=100"`
	StartDate    string    `gorm:"column:startDate;type:varchar(30);not null" json:"startDate" validate:"required"`
	EndDate      string    `gorm:"column:endDate;type:varchar(30);not null" json:"endDate" validate:"required"`
	Premium      float64   `gorm:"column:premium;not null" json:"premium" validate:"gte=0"`
	Status       string    `gorm:"column:status;type:varchar(50);not null" json:"status" validate:"required,max=50"`
	CreatedAt    time.Time `gorm:"column:createdAt;autoCreateTime" json:"createdAt"`
}

// TableName specifies the table name for the Policy model
func (Policy) TableName() string {
	return "Policies"
}

func (p *Policy) Validate() error {
	v := validator.New()
	return v.Struct(p)
}

// PolicyPatch carries a partial policy update; nil fields stay untouched.
type PolicyPatch struct {
	CustomerID   *uint    `json:"customerId,omitempty"`
	PolicyNumber *string  `json:"policyNumber,omitempty"`
	PolicyType   *string  `json:"policyType,omitempty"`
	StartDate    *string  `json:"startDate,omitempty"`
	EndDate      *string  `json:"endDate,omitempty"`
	Premium      *float64 `json:"premium,omitempty"`
	Status       *string  `json:"status,omitempty"`
}

// Apply copies the set fields of the patch onto p.
func (pp PolicyPatch) Apply(p *Policy) {
	if pp.CustomerID != nil {
		p.CustomerID = *pp.CustomerID
	}
	if pp.PolicyNumber != nil {
		p.PolicyNumber = *pp.PolicyNumber
	}
	if pp.PolicyType != nil {
		p.PolicyType = *pp.PolicyType
	}
	if pp.StartDate != nil {
		p.StartDate = *pp.StartDate
	}
	if pp.EndDate != nil {
		p.EndDate = *pp.EndDate
	}
	if pp.Premium != nil {
		p.Premium = *pp.Premium
	}
	if pp.Status != nil {
		p.Status = *pp.Status
	}
}
