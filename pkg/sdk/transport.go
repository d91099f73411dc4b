package sdk

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// RequestIDHeader carries a per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// Transport decorates outgoing API requests with the session's bearer token
// and reacts to 401 responses.
//
// The token is read from Sessions when the request is dispatched, so requests
// in flight keep the token they started with even if a concurrent 401 clears
// the store. On a 401 the store is cleared and OnUnauthorized is invoked; the
// response itself is returned unchanged so the caller still sees the failure.
type Transport struct {
	// Base performs the actual round trip. http.DefaultTransport when nil.
	Base http.RoundTripper
	// Sessions supplies the token. Requests go out undecorated when nil.
	Sessions SessionStore
	// OnUnauthorized runs after the session has been cleared by a 401.
	OnUnauthorized func(req *http.Request)
	// Logger receives debug output. Nop when nil.
	Logger *zap.Logger
}

var _ http.RoundTripper = (*Transport)(nil)

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	out := req.Clone(req.Context())

	if out.Header.Get(RequestIDHeader) == "" {
		out.Header.Set(RequestIDHeader, uuid.NewString())
	}
	if t.Sessions != nil {
		if session := t.Sessions.Session(); session.Authenticated() {
			token := &oauth2.Token{AccessToken: session.Token, TokenType: "Bearer"}
			token.SetAuthHeader(out)
		}
	}

	resp, err := t.base().RoundTrip(out)
	if err != nil {
		t.logger().Debug("api request failed",
			zap.String("method", out.Method),
			zap.String("path", out.URL.Path),
			zap.String("request_id", out.Header.Get(RequestIDHeader)),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return nil, err
	}

	t.logger().Debug("api request",
		zap.String("method", out.Method),
		zap.String("path", out.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", out.Header.Get(RequestIDHeader)),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode == http.StatusUnauthorized {
		t.handleUnauthorized(out)
	}
	return resp, nil
}

func (t *Transport) handleUnauthorized(req *http.Request) {
	if t.Sessions != nil {
		if err := t.Sessions.Clear(); err != nil {
			t.logger().Warn("failed to clear session after 401", zap.Error(err))
		}
	}
	if t.OnUnauthorized != nil {
		t.OnUnauthorized(req)
	}
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

func (t *Transport) logger() *zap.Logger {
	if t.Logger != nil {
		return t.Logger
	}
	return zap.NewNop()
}

// NewHTTPClient returns an http.Client whose requests go through a Transport
// bound to sessions.
func NewHTTPClient(sessions SessionStore, onUnauthorized func(*http.Request), logger *zap.Logger) *http.Client {
	return &http.Client{
		Transport: &Transport{
			Sessions:       sessions,
			OnUnauthorized: onUnauthorized,
			Logger:         logger,
		},
	}
}
