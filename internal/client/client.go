// Package client is a typed HTTP client for the member API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// Member is a record as returned by GET /api/members.
type Member struct {
	ID int64 `json:"id"`
	MemberInput
	CreatedAt string `json:"created_at"`
}

// MemberInput is the writable part of a record, sent on create and update.
type MemberInput struct {
	Name                string `json:"name"`
	Sex                 string `json:"sex"`
	Age                 string `json:"age"`
	DOB                 string `json:"dob"`
	Address             string `json:"address"`
	State               string `json:"state"`
	Country             string `json:"country"`
	Email               string `json:"email"`
	EmergencyContact    string `json:"emergency_contact"`
	EmergencyPhone      string `json:"emergency_phone"`
	MembershipType      string `json:"membership_type"`
	Medications         string `json:"medications"`
	Allergies           string `json:"allergies"`
	PastInjuries        string `json:"past_injuries"`
	MedicalConditions   string `json:"medical_conditions"`
	MedicalContact      string `json:"medical_contact"`
	MedicalContactPhone string `json:"medical_contact_phone"`
	OtherInfo           string `json:"other_info"`
	PaymentType         string `json:"payment_type"`
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New builds a client for baseURL, e.g. "http://localhost:3000/api".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type createResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

type changesResponse struct {
	Success bool  `json:"success"`
	Changes int64 `json:"changes"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *Client) ListMembers(ctx context.Context) ([]Member, error) {
	var items []Member
	if err := c.do(ctx, http.MethodGet, "/members", nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []Member{}
	}
	return items, nil
}

func (c *Client) CreateMember(ctx context.Context, input MemberInput) (int64, error) {
	var resp createResponse
	if err := c.do(ctx, http.MethodPost, "/members", input, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

func (c *Client) UpdateMember(ctx context.Context, id int64, input MemberInput) (int64, error) {
	var resp changesResponse
	if err := c.do(ctx, http.MethodPut, memberPath(id), input, &resp); err != nil {
		return 0, err
	}
	return resp.Changes, nil
}

func (c *Client) DeleteMember(ctx context.Context, id int64) (int64, error) {
	var resp changesResponse
	if err := c.do(ctx, http.MethodDelete, memberPath(id), nil, &resp); err != nil {
		return 0, err
	}
	return resp.Changes, nil
}

func memberPath(id int64) string {
	return "/members/" + strconv.FormatInt(id, 10)
}

func (c *Client) do(ctx context.Context, method, path string, payload, dst interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var env errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&env); err == nil {
			apiErr.Message = env.Error
		}
		return apiErr
	}

	if dst == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
