// ABOUTME: Typed HTTP client for the remote record service
// ABOUTME: Carries the bearer credential and transcodes records at the wire boundary
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Davi-web/cms-dashboard/models"
)

// StatusError is a non-2xx response from the record service. The message is
// whatever the service put in its error envelope.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d", e.Code)
}

// Client is a thin typed wrapper around the record service. It is safe for
// concurrent use; only the access token is mutable.
type Client struct {
	baseURL string
	anonKey string
	http    *http.Client
	log     *logrus.Entry

	mu    sync.RWMutex
	token string
}

// NewClient creates a client for the service at baseURL. anonKey is sent as
// the bearer credential while no session token is set.
func NewClient(baseURL, anonKey string) *Client {
	return &Client{
		baseURL: baseURL,
		anonKey: anonKey,
		http:    &http.Client{},
		log:     logrus.WithField("component", "api"),
	}
}

// SetAccessToken installs (or clears, with "") the session bearer token.
func (c *Client) SetAccessToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.token != "" {
		return c.token
	}
	return c.anonKey
}

type errorEnvelope struct {
	Error string `json:"error"`
}

// request performs one round trip. body and out may be nil. Errors propagate
// to the caller; nothing is retried here.
func (c *Client) request(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.bearer())

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithError(err).WithField("endpoint", path).Error("request failed")
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{Code: resp.StatusCode}
		var env errorEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && env.Error != "" {
			statusErr.Message = env.Error
		}
		c.log.WithFields(logrus.Fields{
			"endpoint": path,
			"status":   resp.StatusCode,
		}).Error(statusErr.Error())
		return statusErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

// Health pings the service.
func (c *Client) Health(ctx context.Context) error {
	return c.request(ctx, http.MethodGet, "/health", nil, nil)
}

// AuthUser is the user block in auth responses.
type AuthUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// AuthSession is a successful sign-in: the user plus a bearer credential.
type AuthSession struct {
	AccessToken string   `json:"access_token"`
	User        AuthUser `json:"user"`
}

type signupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup creates an account. The service auto-confirms the address; a
// follow-up SignIn issues the credential.
func (c *Client) Signup(ctx context.Context, email, password, firstName, lastName string) (*AuthUser, error) {
	var resp struct {
		User AuthUser `json:"user"`
	}
	err := c.request(ctx, http.MethodPost, "/auth/signup", signupRequest{
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// SignIn exchanges credentials for a session. The token is returned, not
// installed; the session manager owns that.
func (c *Client) SignIn(ctx context.Context, email, password string) (*AuthSession, error) {
	var resp AuthSession
	err := c.request(ctx, http.MethodPost, "/auth/signin", signinRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Contacts

func (c *Client) ListContacts(ctx context.Context) ([]models.Contact, error) {
	var resp struct {
		Contacts []contactWire `json:"contacts"`
	}
	if err := c.request(ctx, http.MethodGet, "/contacts", nil, &resp); err != nil {
		return nil, err
	}
	return contactsFromWire(resp.Contacts), nil
}

func (c *Client) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	var resp struct {
		Contact contactWire `json:"contact"`
	}
	if err := c.request(ctx, http.MethodPost, "/contacts", contactToWire(contact), &resp); err != nil {
		return models.Contact{}, err
	}
	return contactFromWire(resp.Contact), nil
}

func (c *Client) UpdateContact(ctx context.Context, id string, contact models.Contact) (models.Contact, error) {
	var resp struct {
		Contact contactWire `json:"contact"`
	}
	if err := c.request(ctx, http.MethodPut, "/contacts/"+id, contactToWire(contact), &resp); err != nil {
		return models.Contact{}, err
	}
	return contactFromWire(resp.Contact), nil
}

func (c *Client) DeleteContact(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/contacts/"+id, nil, nil)
}

// Companies

func (c *Client) ListCompanies(ctx context.Context) ([]models.Company, error) {
	var resp struct {
		Companies []companyWire `json:"companies"`
	}
	if err := c.request(ctx, http.MethodGet, "/companies", nil, &resp); err != nil {
		return nil, err
	}
	return companiesFromWire(resp.Companies), nil
}

func (c *Client) CreateCompany(ctx context.Context, company models.Company) (models.Company, error) {
	var resp struct {
		Company companyWire `json:"company"`
	}
	if err := c.request(ctx, http.MethodPost, "/companies", companyToWire(company), &resp); err != nil {
		return models.Company{}, err
	}
	return companyFromWire(resp.Company), nil
}

func (c *Client) UpdateCompany(ctx context.Context, id string, company models.Company) (models.Company, error) {
	var resp struct {
		Company companyWire `json:"company"`
	}
	if err := c.request(ctx, http.MethodPut, "/companies/"+id, companyToWire(company), &resp); err != nil {
		return models.Company{}, err
	}
	return companyFromWire(resp.Company), nil
}

func (c *Client) DeleteCompany(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/companies/"+id, nil, nil)
}

// Tasks

func (c *Client) ListTasks(ctx context.Context) ([]models.Task, error) {
	var resp struct {
		Tasks []taskWire `json:"tasks"`
	}
	if err := c.request(ctx, http.MethodGet, "/tasks", nil, &resp); err != nil {
		return nil, err
	}
	return tasksFromWire(resp.Tasks), nil
}

func (c *Client) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	var resp struct {
		Task taskWire `json:"task"`
	}
	if err := c.request(ctx, http.MethodPost, "/tasks", taskToWire(task), &resp); err != nil {
		return models.Task{}, err
	}
	return taskFromWire(resp.Task), nil
}

func (c *Client) UpdateTask(ctx context.Context, id string, task models.Task) (models.Task, error) {
	var resp struct {
		Task taskWire `json:"task"`
	}
	if err := c.request(ctx, http.MethodPut, "/tasks/"+id, taskToWire(task), &resp); err != nil {
		return models.Task{}, err
	}
	return taskFromWire(resp.Task), nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/tasks/"+id, nil, nil)
}

// SyncResult is the service's verdict on a bulk sync.
type SyncResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type syncRequest struct {
	Contacts  []contactWire `json:"contacts"`
	Companies []companyWire `json:"companies"`
	Tasks     []taskWire    `json:"tasks"`
}

// Sync uploads the full local collections in one bulk call. Merge, dedup and
// id reassignment are the service's problem, not ours.
func (c *Client) Sync(ctx context.Context, contacts []models.Contact, companies []models.Company, tasks []models.Task) (SyncResult, error) {
	var resp SyncResult
	err := c.request(ctx, http.MethodPost, "/sync", syncRequest{
		Contacts:  contactsToWire(contacts),
		Companies: companiesToWire(companies),
		Tasks:     tasksToWire(tasks),
	}, &resp)
	if err != nil {
		return SyncResult{}, err
	}
	return resp, nil
}
