package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/QuoteFox/app/models"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/forms"
)

var policyStatuses = []string{
	models.POLICY_STATUS_ACTIVE,
	models.POLICY_STATUS_PENDING,
	models.POLICY_STATUS_CANCELLED,
	models.POLICY_STATUS_EXPIRED,
}

// customerPolicyData is everything the customer/policy page renders. The
// forms are passed back on validation errors so the input is kept.
type customerPolicyData struct {
	Customers      []models.Customer
	Policies       []models.Policy
	Selected       uint
	SelectedName   string
	Error          string
	Statuses       []string
	CustomerForm   forms.Customer
	CustomerErrors forms.Errors
	PolicyForm     forms.Policy
	PolicyErrors   forms.Errors
}

// HandleCustomerPolicy lists customers and policies. ?customer=<id> limits
// the policies to one customer.
func (w *WebController) HandleCustomerPolicy(c *fiber.Ctx) error {
	selected, _ := strconv.ParseUint(c.Query("customer"), 10, 64)
	data := customerPolicyData{
		Selected:       uint(selected),
		CustomerErrors: forms.Errors{},
		PolicyErrors:   forms.Errors{},
		PolicyForm:     forms.Policy{Status: models.POLICY_STATUS_ACTIVE},
	}
	return w.renderCustomerPolicy(c, fiber.StatusOK, data)
}

func (w *WebController) HandleCustomerPolicyAddCustomer(c *fiber.Ctx) error {
	var form forms.Customer
	if err := c.BodyParser(&form); err != nil {
		return flashError(c, "Invalid customer data", "/customer-policy")
	}
	if errs := form.Validate(); len(errs) > 0 {
		return w.renderCustomerPolicy(c, fiber.StatusUnprocessableEntity, customerPolicyData{
			CustomerForm:   form,
			CustomerErrors: errs,
			PolicyErrors:   forms.Errors{},
			PolicyForm:     forms.Policy{Status: models.POLICY_STATUS_ACTIVE},
		})
	}

	if err := w.records.AddCustomer(c.UserContext(), form.Model()); err != nil {
		return flashError(c, err.Error(), "/customer-policy")
	}
	return flashSuccess(c, "Customer "+form.FirstName+" "+form.LastName+" added", "/customer-policy")
}

func (w *WebController) HandleCustomerPolicyAddPolicy(c *fiber.Ctx) error {
	var form forms.Policy
	if err := c.BodyParser(&form); err != nil {
		return w.renderCustomerPolicy(c, fiber.StatusUnprocessableEntity, customerPolicyData{
			CustomerErrors: forms.Errors{},
			PolicyForm:     form,
			PolicyErrors:   forms.Errors{"form": "Please check the customer and premium values"},
		})
	}
	if errs := form.Validate(); len(errs) > 0 {
		return w.renderCustomerPolicy(c, fiber.StatusUnprocessableEntity, customerPolicyData{
			Selected:       form.CustomerID,
			CustomerErrors: forms.Errors{},
			PolicyForm:     form,
			PolicyErrors:   errs,
		})
	}

	if err := w.records.AddPolicy(c.UserContext(), form.Model()); err != nil {
		return flashError(c, err.Error(), "/customer-policy")
	}
	return flashSuccess(c, "Policy "+form.PolicyNumber+" added", "/customer-policy?customer="+strconv.FormatUint(uint64(form.CustomerID), 10))
}

// renderCustomerPolicy reloads both collections and renders the page. A
// failed load shows the error instead of the tables.
func (w *WebController) renderCustomerPolicy(c *fiber.Ctx, status int, data customerPolicyData) error {
	sess, err := w.sessions.Get(c)
	if err != nil {
		return err
	}

	if err := w.records.FetchAll(c.UserContext()); err != nil {
		data.Error = err.Error()
	}
	data.Customers = w.records.Customers()
	data.Policies = w.records.PoliciesFor(data.Selected)
	data.Statuses = policyStatuses
	for _, customer := range data.Customers {
		if customer.ID == data.Selected {
			data.SelectedName = customer.FullName()
		}
	}

	return render(c, status, "customer_policy", w.page(c, sess, "customer-policy", "Customers & Policies"), fiber.Map{
		"Data": data,
	})
}
