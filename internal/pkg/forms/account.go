package forms

// Signup is the registration form.
type Signup struct {
	FirstName       string `form:"firstName" validate:"required"`
	LastName        string `form:"lastName" validate:"required"`
	Email           string `form:"email" validate:"required,looseemail"`
	Password        string `form:"password" validate:"required,min=8"`
	ConfirmPassword string `form:"confirmPassword" validate:"eqfield=Password"`
	Phone           string `form:"phone" validate:"required"`
	Address         string `form:"address" validate:"required"`
	City            string `form:"city" validate:"required"`
	State           string `form:"state" validate:"required"`
	ZipCode         string `form:"zipCode" validate:"required"`
	DateOfBirth     string `form:"dateOfBirth"`
}

func (s *Signup) Validate() Errors {
	trim(&s.FirstName, &s.LastName, &s.Email, &s.Phone, &s.Address, &s.City, &s.State, &s.ZipCode, &s.DateOfBirth)
	return Validate(s)
}

// Login is the sign in form.
type Login struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}

func (l *Login) Validate() Errors {
	trim(&l.Email)
	return Validate(l)
}
