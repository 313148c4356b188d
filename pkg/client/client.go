// Package client is a Go client for the bookroster HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gojek/heimdall/v7"
	"github.com/gojek/heimdall/v7/httpclient"

	"github.com/redhat-data-and-ai/bookroster/pkg/store"
	"github.com/redhat-data-and-ai/bookroster/pkg/types"
)

const (
	defaultTimeout    = 10 * time.Second
	defaultRetryCount = 3
)

type Config struct {
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
}

// Client talks to one bookroster server. Requests that fail at the transport
// level or with a 5xx status are retried with a constant backoff
type Client struct {
	baseURL string
	doer    heimdall.Doer
}

// APIError is a non-2xx response. It matches the store sentinel errors
// under errors.Is, so callers can test for store.ErrNotFound and friends
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("unexpected status code: %d, response: %s", e.StatusCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case store.ErrValidation:
		return e.StatusCode == http.StatusBadRequest
	case store.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case store.ErrConflict:
		return e.StatusCode == http.StatusConflict
	}
	return false
}

func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("client configuration is missing required field: BaseURL")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RetryCount < 0 {
		cfg.RetryCount = 0
	} else if cfg.RetryCount == 0 {
		cfg.RetryCount = defaultRetryCount
	}

	doer := httpclient.NewClient(
		httpclient.WithHTTPTimeout(cfg.Timeout),
		httpclient.WithRetrier(heimdall.NewRetrier(heimdall.NewConstantBackoff(100*time.Millisecond, 50*time.Millisecond))),
		httpclient.WithRetryCount(cfg.RetryCount),
	)
	return NewWithDoer(cfg.BaseURL, doer), nil
}

// NewWithDoer builds a client on an existing heimdall.Doer
func NewWithDoer(baseURL string, doer heimdall.Doer) *Client {
	return &Client{baseURL: strings.TrimSuffix(baseURL, "/"), doer: doer}
}

// Healthz returns nil when the server and its store are reachable
func (c *Client) Healthz(ctx context.Context) error {
	return c.send(ctx, http.MethodGet, "/healthz", nil, nil)
}

func (c *Client) CreateCompany(ctx context.Context, company types.Company) (int64, error) {
	return createRecord(ctx, c, "company", company)
}

func (c *Client) GetCompany(ctx context.Context, id int64) (*types.Company, error) {
	return getRecord[types.Company](ctx, c, "company", id)
}

func (c *Client) ListCompanies(ctx context.Context) ([]types.Company, error) {
	return listRecords[types.Company](ctx, c, "company")
}

func (c *Client) UpdateCompany(ctx context.Context, id int64, update types.CompanyUpdate) (*types.Company, error) {
	return updateRecord[types.Company](ctx, c, "company", id, update)
}

func (c *Client) DeleteCompany(ctx context.Context, id int64) error {
	return c.deleteRecord(ctx, "company", id)
}

func (c *Client) CreateEmployee(ctx context.Context, employee types.Employee) (int64, error) {
	return createRecord(ctx, c, "employee", employee)
}

func (c *Client) GetEmployee(ctx context.Context, id int64) (*types.Employee, error) {
	return getRecord[types.Employee](ctx, c, "employee", id)
}

func (c *Client) ListEmployees(ctx context.Context) ([]types.Employee, error) {
	return listRecords[types.Employee](ctx, c, "employee")
}

func (c *Client) UpdateEmployee(ctx context.Context, id int64, update types.EmployeeUpdate) (*types.Employee, error) {
	return updateRecord[types.Employee](ctx, c, "employee", id, update)
}

func (c *Client) DeleteEmployee(ctx context.Context, id int64) error {
	return c.deleteRecord(ctx, "employee", id)
}

func (c *Client) CreateBook(ctx context.Context, book types.Book) (int64, error) {
	return createRecord(ctx, c, "book", book)
}

func (c *Client) GetBook(ctx context.Context, id int64) (*types.Book, error) {
	return getRecord[types.Book](ctx, c, "book", id)
}

func (c *Client) ListBooks(ctx context.Context) ([]types.Book, error) {
	return listRecords[types.Book](ctx, c, "book")
}

func (c *Client) UpdateBook(ctx context.Context, id int64, update types.BookUpdate) (*types.Book, error) {
	return updateRecord[types.Book](ctx, c, "book", id, update)
}

func (c *Client) DeleteBook(ctx context.Context, id int64) error {
	return c.deleteRecord(ctx, "book", id)
}

func (c *Client) CreateAdmin(ctx context.Context, admin types.Admin) (int64, error) {
	return createRecord(ctx, c, "admin", admin)
}

func (c *Client) GetAdmin(ctx context.Context, id int64) (*types.Admin, error) {
	return getRecord[types.Admin](ctx, c, "admin", id)
}

func (c *Client) ListAdmins(ctx context.Context) ([]types.Admin, error) {
	return listRecords[types.Admin](ctx, c, "admin")
}

func (c *Client) UpdateAdmin(ctx context.Context, id int64, update types.AdminUpdate) (*types.Admin, error) {
	return updateRecord[types.Admin](ctx, c, "admin", id, update)
}

func (c *Client) DeleteAdmin(ctx context.Context, id int64) error {
	return c.deleteRecord(ctx, "admin", id)
}

// AddToList puts a book on one of an employee's reading lists
func (c *Client) AddToList(ctx context.Context, employeeID int64, list types.ListName, bookID int64) error {
	path := fmt.Sprintf("/io/employee/%d/books/%s", employeeID, list)
	return c.send(ctx, http.MethodPost, path, map[string]int64{"book_id": bookID}, nil)
}

func (c *Client) RemoveFromList(ctx context.Context, employeeID int64, list types.ListName, bookID int64) error {
	path := fmt.Sprintf("/io/employee/%d/books/%s/%d", employeeID, list, bookID)
	return c.send(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) GetLists(ctx context.Context, employeeID int64) (*types.ReadingLists, error) {
	lists := &types.ReadingLists{}
	if err := c.send(ctx, http.MethodGet, fmt.Sprintf("/io/employee/%d/books", employeeID), nil, lists); err != nil {
		return nil, err
	}
	return lists, nil
}

func (c *Client) GetList(ctx context.Context, employeeID int64, list types.ListName) ([]int64, error) {
	resp := map[string][]int64{}
	if err := c.send(ctx, http.MethodGet, fmt.Sprintf("/io/employee/%d/books/%s", employeeID, list), nil, &resp); err != nil {
		return nil, err
	}
	return resp[string(list)], nil
}

func createRecord[T any](ctx context.Context, c *Client, kind string, record T) (int64, error) {
	var resp struct {
		ID int64 `json:"id"`
	}
	if err := c.send(ctx, http.MethodPost, "/io/"+kind, record, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

func getRecord[T any](ctx context.Context, c *Client, kind string, id int64) (*T, error) {
	var record T
	if err := c.send(ctx, http.MethodGet, fmt.Sprintf("/io/%s/%d", kind, id), nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func listRecords[T any](ctx context.Context, c *Client, kind string) ([]T, error) {
	var records []T
	if err := c.send(ctx, http.MethodGet, "/io/"+kind, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func updateRecord[T any](ctx context.Context, c *Client, kind string, id int64, changes any) (*T, error) {
	var record T
	if err := c.send(ctx, http.MethodPut, fmt.Sprintf("/io/%s/%d", kind, id), changes, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *Client) deleteRecord(ctx context.Context, kind string, id int64) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/io/%s/%d", kind, id), nil, nil)
}

// send performs one request. body is JSON encoded when non-nil and a 2xx
// response is decoded into out when out is non-nil
func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		message := string(payload)
		if json.Unmarshal(payload, &apiErr) == nil && apiErr.Error != "" {
			message = apiErr.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out != nil {
		if err := json.Unmarshal(payload, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
