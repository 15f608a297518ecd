package controllers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/ManuelReschke/QuoteFox/internal/pkg/cart"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/forms"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/reference"
	isession "github.com/ManuelReschke/QuoteFox/internal/pkg/session"
)

// Confirmation is the receipt of a mock payment, shown once on the success page.
type Confirmation struct {
	Reference     string    `json:"reference"`
	TransactionID string    `json:"transactionId"`
	PolicyNumber  string    `json:"policyNumber"`
	Amount        float64   `json:"amount"`
	CardLast4     string    `json:"cardLast4"`
	Coverages     int       `json:"coverages"`
	PaidAt        time.Time `json:"paidAt"`
}

// EffectiveDate is the policy start, the day of payment.
func (c Confirmation) EffectiveDate() string {
	return c.PaidAt.Format("January 2, 2006")
}

func newConfirmation(items *cart.Cart, form *forms.Payment) (*Confirmation, error) {
	ref, err := reference.PaymentReference()
	if err != nil {
		return nil, err
	}
	policyNumber, err := reference.PolicyNumber()
	if err != nil {
		return nil, err
	}
	return &Confirmation{
		Reference:     ref,
		TransactionID: reference.TransactionID(),
		PolicyNumber:  policyNumber,
		Amount:        items.Total(),
		CardLast4:     form.CardLast4(),
		Coverages:     items.Len(),
		PaidAt:        time.Now(),
	}, nil
}

func (w *WebController) HandlePayment(c *fiber.Ctx) error {
	sess, items, err := w.loadCart(c)
	if err != nil {
		return err
	}
	if items.IsEmpty() {
		return c.Redirect("/coverage", fiber.StatusSeeOther)
	}

	return render(c, fiber.StatusOK, "payment", w.page(c, sess, "payment", "Payment"), fiber.Map{
		"Cart":   items,
		"Form":   forms.Payment{},
		"Errors": forms.Errors{},
	})
}

// HandlePaymentPost validates the card details and completes the mock
// payment. Nothing is charged; the cart is emptied and a confirmation is
// kept for the success page.
func (w *WebController) HandlePaymentPost(c *fiber.Ctx) error {
	sess, items, err := w.loadCart(c)
	if err != nil {
		return err
	}
	if items.IsEmpty() {
		return flashError(c, "Your cart is empty", "/coverage")
	}

	var form forms.Payment
	if err := c.BodyParser(&form); err != nil {
		return flashError(c, "Invalid payment request", "/payment")
	}
	if errs := form.Validate(); len(errs) > 0 {
		form.CVV = ""
		return render(c, fiber.StatusUnprocessableEntity, "payment", w.page(c, sess, "payment", "Payment"), fiber.Map{
			"Cart":   items,
			"Form":   form,
			"Errors": errs,
		})
	}

	confirmation, err := newConfirmation(items, &form)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(confirmation)
	if err != nil {
		return err
	}

	if err := w.checkouts.AddCheckout(c.UserContext(), confirmation.Amount); err != nil {
		fiberlog.Warnf("[Payment] failed to count checkout %s: %v", confirmation.Reference, err)
	}

	items.Clear()
	sess.Set(isession.KeyConfirmation, string(raw))
	if err := saveCart(sess, items); err != nil {
		return err
	}
	return c.Redirect("/payment-success", fiber.StatusSeeOther)
}

// HandlePaymentSuccess shows the last confirmation once. Without one there is
// nothing to confirm and the visitor lands on the dashboard.
func (w *WebController) HandlePaymentSuccess(c *fiber.Ctx) error {
	sess, err := w.sessions.Get(c)
	if err != nil {
		return err
	}

	confirmation, ok := takeConfirmation(sess)
	if !ok {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	// Save hands sess back to the store, so read everything from it first
	layout := w.page(c, sess, "payment-success", "Payment successful")
	if err := sess.Save(); err != nil {
		return err
	}

	return render(c, fiber.StatusOK, "payment_success", layout, fiber.Map{
		"Confirmation": confirmation,
	})
}

func takeConfirmation(sess *session.Session) (Confirmation, bool) {
	raw := isession.GetString(sess, isession.KeyConfirmation)
	if raw == "" {
		return Confirmation{}, false
	}
	sess.Delete(isession.KeyConfirmation)

	var confirmation Confirmation
	if err := json.Unmarshal([]byte(raw), &confirmation); err != nil {
		return Confirmation{}, false
	}
	return confirmation, true
}
