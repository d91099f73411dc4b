package cmd

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/estatedesk/estate/cmd/estatectl/cmd/auth"
	"github.com/estatedesk/estate/pkg/sdk"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backend is a fake estate API that records the paths it served.
type backend struct {
	mu       sync.Mutex
	requests []string
	validTok string
}

func (b *backend) record(r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = append(b.requests, r.Method+" "+r.URL.Path)
}

func (b *backend) served() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.requests...)
}

func (b *backend) router() http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b.record(r)
			next.ServeHTTP(w, r)
		})
	})
	r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		var in sdk.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Password != "secret" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"invalid credentials"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": b.validTok, "role_id": 2})
	})
	r.Group(func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Header.Get("Authorization") != "Bearer "+b.validTok {
					http.Error(w, "Invalid token", http.StatusUnauthorized)
					return
				}
				next.ServeHTTP(w, r)
			})
		})
		r.Get("/properties", func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode([]sdk.Property{{ID: 1, Address: "1 Main St", Type: "house", Price: 100, Status: sdk.StatusAvailable}})
		})
		r.Get("/admin/users", func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode([]sdk.User{})
		})
	})
	return r
}

func setup(t *testing.T) (*backend, string) {
	t.Helper()
	b := &backend{validTok: "good-token"}
	srv := httptest.NewServer(b.router())
	t.Cleanup(srv.Close)

	home := t.TempDir()
	sessionFile := filepath.Join(home, "session.json")
	t.Setenv("HOME", home)
	t.Setenv("ESTATE_SERVER", srv.URL)
	t.Setenv("ESTATE_SESSION_FILE", sessionFile)
	t.Setenv("ESTATE_NON_INTERACTIVE", "1")
	t.Setenv("ESTATE_TOKEN", "")
	return b, sessionFile
}

func writeSession(t *testing.T, path, token, role string) {
	t.Helper()
	data, err := json.Marshal(map[string]string{sdk.TokenKey: token, sdk.RoleKey: role})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0600))
}

func run(args ...string) error {
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(context.Background())
}

func TestUnauthenticatedCommandLandsOnLogin(t *testing.T) {
	b, _ := setup(t)

	err := run("properties", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
	assert.Empty(t, b.served())
}

func TestInsufficientRoleShowsPropertiesInstead(t *testing.T) {
	b, sessionFile := setup(t)
	writeSession(t, sessionFile, "good-token", "3")

	require.NoError(t, run("admin", "users"))
	assert.Equal(t, []string{"GET /properties"}, b.served())
}

func TestAdminAllowed(t *testing.T) {
	b, sessionFile := setup(t)
	writeSession(t, sessionFile, "good-token", "1")

	require.NoError(t, run("admin", "users"))
	assert.Equal(t, []string{"GET /admin/users"}, b.served())
}

func TestRejectedTokenClearsSession(t *testing.T) {
	b, sessionFile := setup(t)
	writeSession(t, sessionFile, "stale-token", "1")

	err := run("properties", "list")
	require.Error(t, err)
	assert.True(t, sdk.IsUnauthorized(err))
	assert.Equal(t, []string{"GET /properties"}, b.served())

	_, statErr := os.Stat(sessionFile)
	assert.True(t, os.IsNotExist(statErr), "session file should be removed")
}

func TestLoggerSyncedAfterFailedCommand(t *testing.T) {
	setup(t)

	rootCmd.SetArgs([]string{"properties", "list"})
	executed, err := rootCmd.ExecuteContextC(context.Background())
	require.Error(t, err)
	assert.True(t, syncLogger(executed), "failed command still carries its config")
	assert.False(t, syncLogger(nil))
}

func TestLoginStoresSession(t *testing.T) {
	_, sessionFile := setup(t)
	t.Cleanup(func() {
		_ = auth.LoginCmd.Flags().Set("email", "")
		_ = auth.LoginCmd.Flags().Set("password", "")
	})

	require.NoError(t, run("login", "--email", "a@b.c", "--password", "secret"))

	data, err := os.ReadFile(sessionFile)
	require.NoError(t, err)
	var stored map[string]string
	require.NoError(t, json.Unmarshal(data, &stored))
	assert.Equal(t, "good-token", stored[sdk.TokenKey])
	assert.Equal(t, "2", stored[sdk.RoleKey])
}

func TestRegisterRequiresFlagsWhenNonInteractive(t *testing.T) {
	b, _ := setup(t)

	err := run("open", "/register")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-interactive")
	assert.Empty(t, b.served())
}

func TestLogout(t *testing.T) {
	_, sessionFile := setup(t)
	writeSession(t, sessionFile, "good-token", "1")

	require.NoError(t, run("logout"))
	_, err := os.Stat(sessionFile)
	assert.True(t, os.IsNotExist(err))
}
