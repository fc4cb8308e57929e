// Package client provides a typed HTTP client for the staffdesk API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"staffdesk/internal/model"
)

// DefaultBaseURL points at a locally running server.
const DefaultBaseURL = "http://localhost:5000/api"

// ErrNotFound is returned when the server answers 404 for an employee id.
var ErrNotFound = errors.New("employee not found")

// API calls the staffdesk employee endpoints.
type API struct {
	baseURL string
	httpc   *http.Client
}

// New creates an API client. An empty baseURL falls back to DefaultBaseURL.
func New(baseURL string) *API {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &API{
		baseURL: baseURL,
		httpc:   &http.Client{},
	}
}

// updateEnvelope mirrors the server's PUT response body.
type updateEnvelope struct {
	Message string         `json:"message"`
	Data    model.Employee `json:"data"`
}

type messageEnvelope struct {
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ListEmployees fetches the full record set.
func (a *API) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	if err := a.do(ctx, http.MethodGet, "/employees", nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// GetEmployee fetches a single record by id.
func (a *API) GetEmployee(ctx context.Context, id uint) (*model.Employee, error) {
	var employee model.Employee
	if err := a.do(ctx, http.MethodGet, fmt.Sprintf("/employees/%d", id), nil, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

// CreateEmployee creates a record and returns it with the assigned id.
func (a *API) CreateEmployee(ctx context.Context, employee model.Employee) (*model.Employee, error) {
	var created model.Employee
	if err := a.do(ctx, http.MethodPost, "/employees", employee, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateEmployee applies a partial update and returns the merged record.
func (a *API) UpdateEmployee(ctx context.Context, id uint, patch model.EmployeePatch) (*model.Employee, error) {
	var envelope updateEnvelope
	if err := a.do(ctx, http.MethodPut, fmt.Sprintf("/employees/%d", id), patch, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// DeleteEmployee removes a record. The server reports success even for ids
// that never existed.
func (a *API) DeleteEmployee(ctx context.Context, id uint) error {
	var envelope messageEnvelope
	return a.do(ctx, http.MethodDelete, fmt.Sprintf("/employees/%d", id), nil, &envelope)
}

func (a *API) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr errorEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s (%s)", method, path, apiErr.Error, apiErr.Code)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
