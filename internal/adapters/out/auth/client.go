// Package auth provides an HTTP client for the external authentication
// service. The storefront never issues or parses tokens itself; it forwards
// the bearer token and trusts the auth service's verdict.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

const requestTimeout = 5 * time.Second

// Principal is the authenticated caller as reported by the auth service.
type Principal struct {
	ID          kernel.UUID
	Name        string
	Permissions []string
}

// IsAdmin reports whether the principal carries the admin permission.
// Admin callers may drive fulfillment status transitions.
func (p Principal) IsAdmin() bool {
	for _, perm := range p.Permissions {
		if perm == "admin" {
			return true
		}
	}
	return false
}

// Client validates bearer tokens against the auth service.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates an auth client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

type currentUserResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
	Enabled     bool     `json:"enabled"`
}

// ValidateToken asks the auth service who the token belongs to. Any verdict
// other than an enabled user with a well-formed ID surfaces as an
// UnauthorizedError.
func (c *Client) ValidateToken(ctx context.Context, token string) (Principal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users/current", nil)
	if err != nil {
		return Principal{}, err
	}

	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return Principal{}, errs.NewUnauthorizedErrorWithCause("auth service unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Principal{}, errs.NewUnauthorizedError(
			fmt.Sprintf("auth service rejected token with status %d", resp.StatusCode))
	}

	var user currentUserResponse
	if err = json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return Principal{}, errs.NewUnauthorizedErrorWithCause("malformed auth service response", err)
	}

	if !user.Enabled {
		return Principal{}, errs.NewUnauthorizedError("user is disabled")
	}

	id, err := kernel.UUIDFromString(user.ID)
	if err != nil {
		return Principal{}, errs.NewUnauthorizedErrorWithCause("malformed user ID in auth service response", err)
	}

	return Principal{
		ID:          id,
		Name:        user.Name,
		Permissions: user.Permissions,
	}, nil
}
