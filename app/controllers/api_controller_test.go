package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/QuoteFox/app/repository"
	apiv1 "github.com/ManuelReschke/QuoteFox/internal/api/v1"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/database"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/gateway"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/metrics/counter"
)

const (
	janeJSON   = `{"firstName":"Jane","lastName":"Doe","email":"jane@example.com","phone":"555-0100"}`
	policyJSON = `{"customerId":1,"policyNumber":"POL-39284756","policyType":"Home","startDate":"2025-04-15","endDate":"2026-04-15","premium":834.6,"status":"Active"}`
)

type apiFixture struct {
	app       *fiber.App
	checkouts *counter.MemoryRecorder
	doc       *openapi3.T
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	db, err := database.OpenMemory("api_" + strings.ReplaceAll(t.Name(), "/", "_"))
	require.NoError(t, err)
	doc, err := apiv1.LoadSpec("../../" + apiv1.SpecFile)
	require.NoError(t, err)

	checkouts := counter.NewMemoryRecorder()
	a := NewAPIController(gateway.NewRepositoryBackend(repository.NewRepositories(db)), checkouts)

	app := fiber.New(fiber.Config{Immutable: true})
	app.Get("/api/customers", a.HandleCustomerList)
	app.Post("/api/customers", a.HandleCustomerCreate)
	app.Put("/api/customers/:id", a.HandleCustomerUpdate)
	app.Delete("/api/customers/:id", a.HandleCustomerDelete)
	app.Get("/api/policies", a.HandlePolicyList)
	app.Post("/api/policies", a.HandlePolicyCreate)
	app.Put("/api/policies/:id", a.HandlePolicyUpdate)
	app.Delete("/api/policies/:id", a.HandlePolicyDelete)
	app.Get("/api/stats", a.HandleStats)

	return &apiFixture{app: app, checkouts: checkouts, doc: doc}
}

// call sends a JSON request and decodes the answer into a generic value.
func (f *apiFixture) call(t *testing.T, method, path, body string) (int, interface{}) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) == 0 {
		return resp.StatusCode, nil
	}
	var out interface{}
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return resp.StatusCode, out
}

// conforms checks a response body against the documented schema.
func (f *apiFixture) conforms(t *testing.T, path, method string, status int, body interface{}) {
	t.Helper()
	schema, err := apiv1.ResponseSchema(f.doc, path, method, status)
	require.NoError(t, err)
	assert.NoError(t, schema.VisitJSON(body))
}

func TestAPICustomerCreateAndList(t *testing.T) {
	f := newAPIFixture(t)

	status, body := f.call(t, http.MethodGet, "/api/customers", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []interface{}{}, body)

	status, body = f.call(t, http.MethodPost, "/api/customers", janeJSON)
	require.Equal(t, http.StatusCreated, status)
	f.conforms(t, "/customers", http.MethodPost, http.StatusCreated, body)
	created := body.(map[string]interface{})
	assert.Equal(t, float64(1), created["id"])
	assert.Equal(t, "Jane", created["firstName"])

	status, body = f.call(t, http.MethodGet, "/api/customers", "")
	assert.Equal(t, http.StatusOK, status)
	f.conforms(t, "/customers", http.MethodGet, http.StatusOK, body)
	assert.Len(t, body, 1)
}

func TestAPICustomerDuplicateEmail(t *testing.T) {
	f := newAPIFixture(t)

	status, _ := f.call(t, http.MethodPost, "/api/customers", janeJSON)
	require.Equal(t, http.StatusCreated, status)

	status, body := f.call(t, http.MethodPost, "/api/customers", janeJSON)
	assert.Equal(t, http.StatusInternalServerError, status)
	f.conforms(t, "/customers", http.MethodPost, http.StatusInternalServerError, body)
	assert.Contains(t, body.(map[string]interface{})["error"], "UNIQUE constraint failed")
}

func TestAPICustomerMissingFieldIs500(t *testing.T) {
	f := newAPIFixture(t)

	status, body := f.call(t, http.MethodPost, "/api/customers", `{"firstName":"Jane"}`)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.NotEmpty(t, body.(map[string]interface{})["error"])

	_, body = f.call(t, http.MethodGet, "/api/customers", "")
	assert.Empty(t, body)
}

func TestAPICustomerUpdateAndDelete(t *testing.T) {
	f := newAPIFixture(t)
	f.call(t, http.MethodPost, "/api/customers", janeJSON)

	status, body := f.call(t, http.MethodPut, "/api/customers/1", `{"lastName":"Smith"}`)
	require.Equal(t, http.StatusOK, status)
	f.conforms(t, "/customers/{id}", http.MethodPut, http.StatusOK, body)
	updated := body.(map[string]interface{})
	assert.Equal(t, "Smith", updated["lastName"])
	assert.Equal(t, "555-0100", updated["phone"])

	status, _ = f.call(t, http.MethodDelete, "/api/customers/1", "")
	assert.Equal(t, http.StatusNoContent, status)

	status, body = f.call(t, http.MethodDelete, "/api/customers/1", "")
	assert.Equal(t, http.StatusNotFound, status)
	f.conforms(t, "/customers/{id}", http.MethodDelete, http.StatusNotFound, body)
}

func TestAPIUnknownOrInvalidID(t *testing.T) {
	f := newAPIFixture(t)

	for _, path := range []string{"/api/customers/9", "/api/customers/0", "/api/customers/abc", "/api/policies/9"} {
		status, _ := f.call(t, http.MethodPut, path, `{"status":"Expired"}`)
		assert.Equal(t, http.StatusNotFound, status, path)
	}
}

func TestAPIPolicyLifecycle(t *testing.T) {
	f := newAPIFixture(t)

	// customerId does not have to reference an existing customer
	status, body := f.call(t, http.MethodPost, "/api/policies", policyJSON)
	require.Equal(t, http.StatusCreated, status)
	f.conforms(t, "/policies", http.MethodPost, http.StatusCreated, body)
	assert.Equal(t, 834.6, body.(map[string]interface{})["premium"])

	status, body = f.call(t, http.MethodPost, "/api/policies", policyJSON)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Contains(t, body.(map[string]interface{})["error"], "UNIQUE")

	status, body = f.call(t, http.MethodPut, "/api/policies/1", `{"status":"Cancelled"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Cancelled", body.(map[string]interface{})["status"])
	assert.Equal(t, "Home", body.(map[string]interface{})["policyType"])

	status, body = f.call(t, http.MethodGet, "/api/policies", "")
	assert.Equal(t, http.StatusOK, status)
	f.conforms(t, "/policies", http.MethodGet, http.StatusOK, body)

	status, _ = f.call(t, http.MethodDelete, "/api/policies/1", "")
	assert.Equal(t, http.StatusNoContent, status)
}

func TestAPIStats(t *testing.T) {
	f := newAPIFixture(t)
	f.call(t, http.MethodPost, "/api/customers", janeJSON)
	f.call(t, http.MethodPost, "/api/policies", policyJSON)
	require.NoError(t, f.checkouts.AddCheckout(context.Background(), 941.6))

	status, body := f.call(t, http.MethodGet, "/api/stats", "")
	require.Equal(t, http.StatusOK, status)
	f.conforms(t, "/stats", http.MethodGet, http.StatusOK, body)

	stats := body.(map[string]interface{})
	assert.Equal(t, float64(1), stats["customers"])
	assert.Equal(t, float64(1), stats["policies"])
	assert.Equal(t, float64(1), stats["checkouts"])
	assert.InDelta(t, 941.6, stats["checkoutPremium"], 0.001)
}
