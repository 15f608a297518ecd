// Package apiv1 holds the OpenAPI description of the JSON API.
package apiv1

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// SpecFile is the location of the document relative to the project root.
const SpecFile = "public/docs/v1/openapi.yml"

// LoadSpec reads and validates the OpenAPI document at path.
func LoadSpec(path string) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi spec: %w", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid openapi spec: %w", err)
	}
	return doc, nil
}

// ResponseSchema returns the JSON schema of one documented response.
func ResponseSchema(doc *openapi3.T, path, method string, status int) (*openapi3.Schema, error) {
	item := doc.Paths.Find(path)
	if item == nil {
		return nil, fmt.Errorf("path %s not documented", path)
	}
	op := item.GetOperation(method)
	if op == nil {
		return nil, fmt.Errorf("%s %s not documented", method, path)
	}
	resp := op.Responses.Status(status)
	if resp == nil || resp.Value == nil {
		return nil, fmt.Errorf("%s %s has no %d response", method, path, status)
	}
	media := resp.Value.Content.Get("application/json")
	if media == nil || media.Schema == nil {
		return nil, fmt.Errorf("%s %s %d has no JSON body", method, path, status)
	}
	return media.Schema.Value, nil
}
