package forms

// Payment is the mock card payment form.
type Payment struct {
	CardNumber     string `form:"cardNumber" validate:"required,cardnumber"`
	CardName       string `form:"cardName" validate:"required"`
	ExpiryDate     string `form:"expiryDate" validate:"required,expiry"`
	CVV            string `form:"cvv" validate:"required,cvv"`
	BillingAddress string `form:"billingAddress" validate:"required"`
	City           string `form:"city" validate:"required"`
	State          string `form:"state" validate:"required"`
	ZipCode        string `form:"zipCode" validate:"required,zipcode"`
}

// Validate trims the input and checks every field.
func (p *Payment) Validate() Errors {
	trim(&p.CardNumber, &p.CardName, &p.ExpiryDate, &p.CVV, &p.BillingAddress, &p.City, &p.State, &p.ZipCode)
	return Validate(p)
}

// CardLast4 returns the last four digits of the card number.
func (p *Payment) CardLast4() string {
	digits := StripSpaces(p.CardNumber)
	if len(digits) < 4 {
		return digits
	}
	return digits[len(digits)-4:]
}
