package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ManuelReschke/QuoteFox/app/models"
)

// HTTPBackend calls the JSON API under baseURL, e.g. http://localhost:4000/api.
// Requests run until the server answers or the transport fails; bound them
// through ctx if needed.
type HTTPBackend struct {
	baseURL string
	client  *http.Client
}

// NewHTTPBackend returns a client for the API at baseURL. A nil client means
// http.DefaultClient.
func NewHTTPBackend(baseURL string, client *http.Client) *HTTPBackend {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPBackend{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// errorBody is the failure payload of the API.
type errorBody struct {
	Error string `json:"error"`
}

// statsBody is the subset of GET /stats the backend reads.
type statsBody struct {
	Customers int64 `json:"customers"`
	Policies  int64 `json:"policies"`
}

func (b *HTTPBackend) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	customers := []models.Customer{}
	err := b.do(ctx, http.MethodGet, "/customers", nil, &customers, "Failed to fetch customers")
	return customers, err
}

func (b *HTTPBackend) CountCustomers(ctx context.Context) (int64, error) {
	var stats statsBody
	err := b.do(ctx, http.MethodGet, "/stats", nil, &stats, "Failed to count customers")
	return stats.Customers, err
}

func (b *HTTPBackend) CreateCustomer(ctx context.Context, customer models.Customer) (*models.Customer, error) {
	var created models.Customer
	if err := b.do(ctx, http.MethodPost, "/customers", customer, &created, "Failed to add customer"); err != nil {
		return nil, err
	}
	return &created, nil
}

func (b *HTTPBackend) UpdateCustomer(ctx context.Context, id uint, patch models.CustomerPatch) (*models.Customer, error) {
	var updated models.Customer
	if err := b.do(ctx, http.MethodPut, fmt.Sprintf("/customers/%d", id), patch, &updated, "Failed to update customer"); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (b *HTTPBackend) DeleteCustomer(ctx context.Context, id uint) error {
	return b.do(ctx, http.MethodDelete, fmt.Sprintf("/customers/%d", id), nil, nil, "Failed to delete customer")
}

func (b *HTTPBackend) ListPolicies(ctx context.Context) ([]models.Policy, error) {
	policies := []models.Policy{}
	err := b.do(ctx, http.MethodGet, "/policies", nil, &policies, "Failed to fetch policies")
	return policies, err
}

func (b *HTTPBackend) CountPolicies(ctx context.Context) (int64, error) {
	var stats statsBody
	err := b.do(ctx, http.MethodGet, "/stats", nil, &stats, "Failed to count policies")
	return stats.Policies, err
}

func (b *HTTPBackend) CreatePolicy(ctx context.Context, policy models.Policy) (*models.Policy, error) {
	var created models.Policy
	if err := b.do(ctx, http.MethodPost, "/policies", policy, &created, "Failed to add policy"); err != nil {
		return nil, err
	}
	return &created, nil
}

func (b *HTTPBackend) UpdatePolicy(ctx context.Context, id uint, patch models.PolicyPatch) (*models.Policy, error) {
	var updated models.Policy
	if err := b.do(ctx, http.MethodPut, fmt.Sprintf("/policies/%d", id), patch, &updated, "Failed to update policy"); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (b *HTTPBackend) DeletePolicy(ctx context.Context, id uint) error {
	return b.do(ctx, http.MethodDelete, fmt.Sprintf("/policies/%d", id), nil, nil, "Failed to delete policy")
}

// do sends one request. Any non-2xx answer becomes an error that starts with
// failure and carries the server message when there is one.
func (b *HTTPBackend) do(ctx context.Context, method, path string, in, out interface{}, failure string) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: %w", failure, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: %w", failure, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", failure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		msg := failure
		if eb.Error != "" {
			msg = failure + ": " + eb.Error
		}
		if resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%s: %w", msg, ErrNotFound)
		}
		return fmt.Errorf("%s (status %d)", msg, resp.StatusCode)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", failure, err)
	}
	return nil
}
