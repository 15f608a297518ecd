package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/QuoteFox/app/models"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/gateway"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/metrics/counter"
)

// APIController serves the JSON API for customers and policies.
type APIController struct {
	backend   gateway.Backend
	checkouts counter.Recorder
}

func NewAPIController(backend gateway.Backend, checkouts counter.Recorder) *APIController {
	return &APIController{backend: backend, checkouts: checkouts}
}

// apiError writes the {"error": msg} body used by every failing endpoint.
func apiError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": msg,
	})
}

// recordError maps a backend failure: unknown ids are 404, everything else
// (validation, constraint violations, SQL errors) is 500 with the message.
func recordError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gateway.ErrNotFound) {
		return apiError(c, fiber.StatusNotFound, err.Error())
	}
	return apiError(c, fiber.StatusInternalServerError, err.Error())
}

// pathID reads the :id parameter; ok is false for ids that cannot exist.
func pathID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

func (a *APIController) HandleCustomerList(c *fiber.Ctx) error {
	customers, err := a.backend.ListCustomers(c.UserContext())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(customers)
}

func (a *APIController) HandleCustomerCreate(c *fiber.Ctx) error {
	var customer models.Customer
	if err := c.BodyParser(&customer); err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}

	created, err := a.backend.CreateCustomer(c.UserContext(), customer)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (a *APIController) HandleCustomerUpdate(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "customer not found")
	}

	var patch models.CustomerPatch
	if err := c.BodyParser(&patch); err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}

	updated, err := a.backend.UpdateCustomer(c.UserContext(), id, patch)
	if err != nil {
		return recordError(c, err)
	}
	return c.JSON(updated)
}

func (a *APIController) HandleCustomerDelete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "customer not found")
	}

	if err := a.backend.DeleteCustomer(c.UserContext(), id); err != nil {
		return recordError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (a *APIController) HandlePolicyList(c *fiber.Ctx) error {
	policies, err := a.backend.ListPolicies(c.UserContext())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(policies)
}

func (a *APIController) HandlePolicyCreate(c *fiber.Ctx) error {
	var policy models.Policy
	if err := c.BodyParser(&policy); err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}

	created, err := a.backend.CreatePolicy(c.UserContext(), policy)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (a *APIController) HandlePolicyUpdate(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "policy not found")
	}

	var patch models.PolicyPatch
	if err := c.BodyParser(&patch); err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}

	updated, err := a.backend.UpdatePolicy(c.UserContext(), id, patch)
	if err != nil {
		return recordError(c, err)
	}
	return c.JSON(updated)
}

func (a *APIController) HandlePolicyDelete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "policy not found")
	}

	if err := a.backend.DeletePolicy(c.UserContext(), id); err != nil {
		return recordError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleStats reports record counts and completed checkouts.
func (a *APIController) HandleStats(c *fiber.Ctx) error {
	ctx := c.UserContext()
	customers, err := a.backend.CountCustomers(ctx)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	policies, err := a.backend.CountPolicies(ctx)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	checkouts, err := a.checkouts.Stats(ctx)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"customers":       customers,
		"policies":        policies,
		"checkouts":       checkouts.Count,
		"checkoutPremium": checkouts.Premium,
	})
}
