package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/adapters/out/auth"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestValidateToken_EnabledUser_ReturnsPrincipal(t *testing.T) {
	userID := kernel.NewUUID()

	server := newAuthServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/current", r.URL.Path)
		assert.Equal(t, "Bearer valid-token", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":          userID.String(),
			"name":        "Jordan",
			"permissions": []string{"customer"},
			"enabled":     true,
		})
	})

	client := auth.NewClient(server.URL)
	principal, err := client.ValidateToken(t.Context(), "valid-token")

	require.NoError(t, err)
	assert.True(t, principal.ID.IsEqual(userID))
	assert.Equal(t, "Jordan", principal.Name)
	assert.False(t, principal.IsAdmin())
}

func TestValidateToken_AdminPermission(t *testing.T) {
	server := newAuthServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":          kernel.NewUUID().String(),
			"name":        "Sam",
			"permissions": []string{"customer", "admin"},
			"enabled":     true,
		})
	})

	client := auth.NewClient(server.URL)
	principal, err := client.ValidateToken(t.Context(), "admin-token")

	require.NoError(t, err)
	assert.True(t, principal.IsAdmin())
}

func TestValidateToken_RejectedToken_Unauthorized(t *testing.T) {
	server := newAuthServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	client := auth.NewClient(server.URL)
	_, err := client.ValidateToken(t.Context(), "bad-token")

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestValidateToken_DisabledUser_Unauthorized(t *testing.T) {
	server := newAuthServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":          kernel.NewUUID().String(),
			"name":        "Ghost",
			"permissions": []string{"customer"},
			"enabled":     false,
		})
	})

	client := auth.NewClient(server.URL)
	_, err := client.ValidateToken(t.Context(), "disabled-token")

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestValidateToken_MalformedUserID_Unauthorized(t *testing.T) {
	server := newAuthServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":          "not-a-uuid",
			"name":        "Broken",
			"permissions": []string{"customer"},
			"enabled":     true,
		})
	})

	client := auth.NewClient(server.URL)
	_, err := client.ValidateToken(t.Context(), "token")

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestValidateToken_ServiceUnreachable_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // nothing is listening anymore

	client := auth.NewClient(server.URL)
	_, err := client.ValidateToken(t.Context(), "token")

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}
