package models

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Customer is a person who can hold policies. Columns keep the camelCase
// layout of the Customers table.
type Customer struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FirstName string    `gorm:"column:firstName;type:varchar(150);not null" json:"firstName" validate:"required,max=150"`
	LastName  string    `gorm:"column:lastName;type:varchar(150);not null" json:"lastName" validate:"required,max=150"`
	Email     string    `gorm:"column:email;type:varchar(200);uniqueIndex;not null" json:"email" validate:"required,max=200"`
	Phone     string    `gorm:"column:phone;type:varchar(50)" json:"phone" validate:"max=50"`
	Address   string    `gorm:"column:address;type:text" json:"address"`
	CreatedAt time.Time `gorm:"column:createdAt;autoCreateTime" json:"createdAt"`
}

// TableName specifies the table name for the Customer model
func (Customer) TableName() string {
	return "Customers"
}

func (c *Customer) Validate() error {
	v := validator.New()
	return v.Struct(c)
}

// FullName joins first and last name for display.
func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// CustomerPatch carries a partial customer update; nil fields stay untouched.
type CustomerPatch struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
}

// Apply copies the set fields of the patch onto c.
func (p CustomerPatch) Apply(c *Customer) {
	if p.FirstName != nil {
		c.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		c.LastName = *p.LastName
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
}

func FindCustomerByEmail(db *gorm.DB, email string) (*Customer, error) {
	var customer Customer
	err := db.Where("email = ?", email).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}
