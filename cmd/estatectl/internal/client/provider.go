package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/estatedesk/estate/pkg/sdk"
	"go.uber.org/zap"
)

// Provider yields HTTP and SDK clients whose requests carry the session token
// and whose 401 responses clear the session.
type Provider struct {
	serverURL      string
	sessions       sdk.SessionStore
	onUnauthorized func(*http.Request)
	base           http.RoundTripper
	logger         *zap.Logger

	httpOnce sync.Once
	httpCli  *http.Client
	httpErr  error

	sdkOnce   sync.Once
	sdkClient *sdk.Client
}

// Option configures a Provider.
type Option func(*Provider)

// WithUnauthorizedHandler sets the hook run after a 401 has cleared the session.
func WithUnauthorizedHandler(fn func(*http.Request)) Option {
	return func(p *Provider) { p.onUnauthorized = fn }
}

// WithLogger sets the diagnostic logger passed to the transport.
func WithLogger(l *zap.Logger) Option {
	return func(p *Provider) { p.logger = l }
}

// WithBaseTransport overrides the underlying round tripper.
func WithBaseTransport(rt http.RoundTripper) Option {
	return func(p *Provider) { p.base = rt }
}

// NewProvider constructs a new Provider bound to the given server URL and
// session store.
func NewProvider(serverURL string, sessions sdk.SessionStore, opts ...Option) *Provider {
	p := &Provider{serverURL: serverURL, sessions: sessions, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Sessions returns the session store backing the clients.
func (p *Provider) Sessions() sdk.SessionStore {
	return p.sessions
}

// HTTPClient returns the shared http.Client.
func (p *Provider) HTTPClient() (*http.Client, error) {
	p.httpOnce.Do(func() {
		u, err := url.Parse(p.serverURL)
		if err != nil {
			p.httpErr = fmt.Errorf("invalid server URL: %w", err)
			return
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			p.httpErr = fmt.Errorf("invalid server URL %q: expected http(s)://host[:port]", p.serverURL)
			return
		}

		p.httpCli = &http.Client{
			Transport: &sdk.Transport{
				Base:           p.base,
				Sessions:       p.sessions,
				OnUnauthorized: p.onUnauthorized,
				Logger:         p.logger,
			},
		}
	})

	if p.httpErr != nil {
		return nil, p.httpErr
	}

	return p.httpCli, nil
}

// SDKClient returns an SDK client backed by HTTPClient.
func (p *Provider) SDKClient() (*sdk.Client, error) {
	httpClient, err := p.HTTPClient()
	if err != nil {
		return nil, err
	}
	p.sdkOnce.Do(func() {
		p.sdkClient = sdk.NewClient(p.serverURL, sdk.WithHTTPClient(httpClient))
	})
	return p.sdkClient, nil
}

// EnsureTimeout applies timeout to ctx unless it already has a deadline.
func EnsureTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}

	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	return ctxWithTimeout, cancel
}
