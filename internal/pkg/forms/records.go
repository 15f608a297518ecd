package forms

import (
	"github.com/ManuelReschke/QuoteFox/app/models"
)

// Customer is the add-customer form of the customer/policy page.
type Customer struct {
	FirstName string `form:"firstName" validate:"required"`
	LastName  string `form:"lastName" validate:"required"`
	Email     string `form:"email" validate:"required,looseemail"`
	Phone     string `form:"phone"`
	Address   string `form:"address"`
}

func (c *Customer) Validate() Errors {
	trim(&c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Address)
	return Validate(c)
}

func (c *Customer) Model() models.Customer {
	return models.Customer{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
	}
}

// Policy is the add-policy form of the customer/policy page.
type Policy struct {
	CustomerID   uint    `form:"customerId" validate:"required"`
	PolicyNumber string  `form:"policyNumber" validate:"required"`
	PolicyType   string  `form:"policyType" validate:"required"`
	StartDate    string  `form:"startDate" validate:"required"`
	EndDate      string  `form:"endDate" validate:"required"`
	Premium      float64 `form:"premium" validate:"gte=0"`
	Status       string  `form:"status" validate:"required"`
}

func (p *Policy) Validate() Errors {
	trim(&p.PolicyNumber, &p.PolicyType, &p.StartDate, &p.EndDate, &p.Status)
	return Validate(p)
}

func (p *Policy) Model() models.Policy {
	return models.Policy{
		CustomerID:   p.CustomerID,
		PolicyNumber: p.PolicyNumber,
		PolicyType:   p.PolicyType,
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		Premium:      p.Premium,
		Status:       p.Status,
	}
}
