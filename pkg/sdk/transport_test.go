package sdk_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/estatedesk/estate/pkg/sdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoServer(t *testing.T, status int, seen *http.Header) *httptest.Server {
	t.Helper()
	var mu sync.Mutex
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		*seen = r.Header.Clone()
		mu.Unlock()
		w.WriteHeader(status)
		_, _ = w.Write([]byte("[]"))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestTransport_AttachesBearerToken(t *testing.T) {
	var seen http.Header
	srv := newEchoServer(t, http.StatusOK, &seen)

	store := sdk.NewMemoryStore("abc")
	client := sdk.NewClient(srv.URL, sdk.WithHTTPClient(sdk.NewHTTPClient(store, nil, nil)))

	_, err := client.ListProperties(context.Background(), sdk.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", seen.Get("Authorization"))
	assert.NotEmpty(t, seen.Get(sdk.RequestIDHeader))
}

func TestTransport_NoTokenSendsRequestUnmodified(t *testing.T) {
	var seen http.Header
	srv := newEchoServer(t, http.StatusOK, &seen)

	store := sdk.NewMemoryStore("")
	client := sdk.NewClient(srv.URL, sdk.WithHTTPClient(sdk.NewHTTPClient(store, nil, nil)))

	_, err := client.ListProperties(context.Background(), sdk.ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, seen.Get("Authorization"))
}

func TestTransport_DoesNotMutateCallerRequest(t *testing.T) {
	var seen http.Header
	srv := newEchoServer(t, http.StatusOK, &seen)

	transport := &sdk.Transport{Sessions: sdk.NewMemoryStore("abc")}
	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := transport.RoundTrip(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Empty(t, req.Header.Get("Authorization"))
	assert.Equal(t, "Bearer abc", seen.Get("Authorization"))
}

func TestTransport_UnauthorizedClearsSessionAndPropagates(t *testing.T) {
	var seen http.Header
	srv := newEchoServer(t, http.StatusUnauthorized, &seen)

	store := sdk.NewMemoryStore("expired")
	require.NoError(t, store.SetRole(sdk.RoleAgent))

	var redirects atomic.Int32
	httpClient := sdk.NewHTTPClient(store, func(*http.Request) { redirects.Add(1) }, nil)
	client := sdk.NewClient(srv.URL, sdk.WithHTTPClient(httpClient))

	_, err := client.ListProperties(context.Background(), sdk.ListOptions{})
	require.Error(t, err)
	assert.True(t, sdk.IsUnauthorized(err), "caller still receives the 401: %v", err)
	assert.Equal(t, int32(1), redirects.Load())
	assert.Equal(t, sdk.Session{Role: sdk.DefaultRole}, store.Session())
	assert.Equal(t, "Bearer expired", seen.Get("Authorization"))
}

func TestTransport_OtherErrorsHaveNoSideEffect(t *testing.T) {
	for _, status := range []int{http.StatusForbidden, http.StatusNotFound, http.StatusInternalServerError} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			var seen http.Header
			srv := newEchoServer(t, status, &seen)

			store := sdk.NewMemoryStore("abc")
			called := false
			client := sdk.NewClient(srv.URL, sdk.WithHTTPClient(sdk.NewHTTPClient(store, func(*http.Request) { called = true }, nil)))

			_, err := client.ListProperties(context.Background(), sdk.ListOptions{})
			require.Error(t, err)
			assert.Equal(t, status, sdk.StatusCode(err))
			assert.False(t, called)
			assert.Equal(t, "abc", store.Session().Token)
		})
	}
}

func TestTransport_ConcurrentUnauthorizedIsIdempotent(t *testing.T) {
	var seen http.Header
	srv := newEchoServer(t, http.StatusUnauthorized, &seen)

	store := sdk.NewMemoryStore("abc")
	var redirects atomic.Int32
	client := sdk.NewClient(srv.URL, sdk.WithHTTPClient(sdk.NewHTTPClient(store, func(*http.Request) { redirects.Add(1) }, nil)))

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = client.ListSales(context.Background(), sdk.ListOptions{})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.True(t, sdk.IsUnauthorized(err))
	}
	assert.False(t, store.Session().Authenticated())
	assert.Equal(t, int32(len(errs)), redirects.Load())
}

func TestTransport_TokenSnapshotTakenAtDispatch(t *testing.T) {
	store := sdk.NewMemoryStore("abc")
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		// a concurrent 401 handler clearing the store mid-flight
		_ = store.Clear()
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	client := sdk.NewClient(srv.URL, sdk.WithHTTPClient(sdk.NewHTTPClient(store, nil, nil)))
	_, err := client.ListPurchases(context.Background(), sdk.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", got)
	assert.False(t, store.Session().Authenticated())
}
