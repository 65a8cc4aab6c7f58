// Package api wraps the remote REST backend: list, create, update and delete
// calls for transactions, accounts and categories. Every call is independent;
// there is no retry policy, no request queue and no de-duplication of
// concurrent identical fetches.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"moneta/internal/core"
	applog "moneta/internal/log"
)

const defaultTimeout = 15 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ensure interface conformance
var _ Backend = (*Client)(nil)

// ListTransactions fetches the full transaction snapshot for one user.
func (c *Client) ListTransactions(ctx context.Context, userID string) ([]core.Transaction, error) {
	var dtos []transactionDTO
	if err := c.get(ctx, "transactions", userID, &dtos); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	out := make([]core.Transaction, len(dtos))
	for i, d := range dtos {
		out[i] = d.toCore()
	}
	logListed(ctx, "transactions", userID, len(out))
	return out, nil
}

func (c *Client) ListAccounts(ctx context.Context, userID string) ([]core.Account, error) {
	var dtos []accountDTO
	if err := c.get(ctx, "accounts", userID, &dtos); err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	out := make([]core.Account, len(dtos))
	for i, d := range dtos {
		out[i] = d.toCore()
	}
	logListed(ctx, "accounts", userID, len(out))
	return out, nil
}

func (c *Client) ListCategories(ctx context.Context, userID string) ([]core.Category, error) {
	var dtos []categoryDTO
	if err := c.get(ctx, "categories", userID, &dtos); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	out := make([]core.Category, len(dtos))
	for i, d := range dtos {
		out[i] = d.toCore()
	}
	logListed(ctx, "categories", userID, len(out))
	return out, nil
}

func logListed(ctx context.Context, resource, userID string, count int) {
	slog.DebugContext(ctx, "Listed resource", applog.NewFields().
		WithComponent(applog.ComponentAPI).
		WithOperation(applog.OpList).
		WithUser(userID).
		WithResource(resource, count).
		ToSlice()...)
}

// CreateTransaction posts a new transaction. Identity is client-generated:
// records without an ID get a fresh uuid before the request goes out.
func (c *Client) CreateTransaction(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	if err := t.Validate(); err != nil {
		return core.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if err := c.post(ctx, "transactions", transactionToDTO(t)); err != nil {
		return core.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}
	return t, nil
}

func (c *Client) UpdateTransaction(ctx context.Context, t core.Transaction) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	if err := c.put(ctx, "transactions", t.ID, transactionToDTO(t)); err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	if err := c.delete(ctx, "transactions", id); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

func (c *Client) CreateAccount(ctx context.Context, a core.Account) (core.Account, error) {
	if err := a.Validate(); err != nil {
		return core.Account{}, fmt.Errorf("create account: %w", err)
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if err := c.post(ctx, "accounts", accountToDTO(a)); err != nil {
		return core.Account{}, fmt.Errorf("create account: %w", err)
	}
	return a, nil
}

func (c *Client) UpdateAccount(ctx context.Context, a core.Account) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	if err := c.put(ctx, "accounts", a.ID, accountToDTO(a)); err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

func (c *Client) DeleteAccount(ctx context.Context, id string) error {
	if err := c.delete(ctx, "accounts", id); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}

func (c *Client) CreateCategory(ctx context.Context, cat core.Category) (core.Category, error) {
	if err := cat.Validate(); err != nil {
		return core.Category{}, fmt.Errorf("create category: %w", err)
	}
	if cat.ID == "" {
		cat.ID = uuid.NewString()
	}
	if err := c.post(ctx, "categories", categoryToDTO(cat)); err != nil {
		return core.Category{}, fmt.Errorf("create category: %w", err)
	}
	return cat, nil
}

func (c *Client) UpdateCategory(ctx context.Context, cat core.Category) error {
	if err := cat.Validate(); err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if err := c.put(ctx, "categories", cat.ID, categoryToDTO(cat)); err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	if err := c.delete(ctx, "categories", id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, resource, userID string, out any) error {
	u := fmt.Sprintf("%s/%s?userId=%s", c.baseURL, resource, url.QueryEscape(userID))
	return c.do(ctx, http.MethodGet, u, nil, out)
}

func (c *Client) post(ctx context.Context, resource string, body any) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("%s/%s", c.baseURL, resource), body, nil)
}

func (c *Client) put(ctx context.Context, resource, id string, body any) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%s/%s", c.baseURL, resource, url.PathEscape(id)), body, nil)
}

func (c *Client) delete(ctx context.Context, resource, id string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%s/%s", c.baseURL, resource, url.PathEscape(id)), nil, nil)
}

func (c *Client) do(ctx context.Context, method, rawURL string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "Backend request failed",
			applog.FieldComponent, applog.ComponentAPI,
			applog.FieldOperation, opForMethod(method),
			"url", rawURL, applog.FieldError, err)
		return transportError(err)
	}
	defer resp.Body.Close()

	slog.DebugContext(ctx, "Backend request",
		applog.FieldComponent, applog.ComponentAPI,
		applog.FieldOperation, opForMethod(method),
		"url", rawURL,
		applog.FieldStatus, resp.StatusCode,
		applog.FieldDuration, time.Since(start).Milliseconds())

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		// Failure bodies are plain strings; keep them short.
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
		return &StatusError{Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func opForMethod(method string) string {
	switch method {
	case http.MethodPost:
		return applog.OpCreate
	case http.MethodPut:
		return applog.OpUpdate
	case http.MethodDelete:
		return applog.OpDelete
	default:
		return applog.OpList
	}
}
