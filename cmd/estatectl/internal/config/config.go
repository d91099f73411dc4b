package config

import (
	"context"
	"net/http"

	"github.com/estatedesk/estate/cmd/estatectl/internal/client"
	"github.com/estatedesk/estate/cmd/estatectl/internal/nav"
	"github.com/estatedesk/estate/cmd/estatectl/internal/session"
	"github.com/estatedesk/estate/pkg/sdk"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type contextKey string

const configKey contextKey = "estatectl-config"

// LandingFunc renders the view bound to a route when navigation ends there
// instead of at the route a command asked for.
type LandingFunc func(cmd *cobra.Command) error

// GlobalConfig holds shared configuration for all estatectl commands.
// This is injected into the cobra command context by the root command's
// PersistentPreRunE hook and consumed by all subcommands.
type GlobalConfig struct {
	Settings

	Sessions       sdk.SessionStore
	Navigator      *nav.Navigator
	ClientProvider *client.Provider
	Logger         *zap.Logger
	// Landing maps a route path to the view shown when a navigation lands there.
	Landing map[string]LandingFunc
}

// Assemble wires the session store, navigator and client provider for s.
// An ESTATE_TOKEN-style ephemeral token keeps the session in memory; otherwise
// the session file is used, falling back to memory if it cannot be opened.
func Assemble(s Settings, logger *zap.Logger, notifier nav.Notifier) *GlobalConfig {
	if logger == nil {
		logger = zap.NewNop()
	}
	if notifier == nil {
		notifier = nav.NotifierFunc(func(string) {})
	}

	var sessions sdk.SessionStore
	if s.Token != "" {
		sessions = sdk.NewMemoryStore(s.Token)
	} else {
		store, err := session.NewFileStore(s.SessionFile, logger)
		if err != nil {
			pterm.Warning.Printf("Session storage unavailable (%v); this session will not be remembered.\n", err)
			sessions = sdk.NewMemoryStore("")
		} else {
			sessions = store
		}
	}

	navigator := nav.NewNavigator(nav.DefaultTable(), nav.DefaultGuard(), sessions,
		nav.WithNotifier(notifier),
		nav.WithLogger(logger),
	)
	provider := client.NewProvider(s.ServerURL, sessions,
		client.WithUnauthorizedHandler(func(*http.Request) { navigator.ForceLogin() }),
		client.WithLogger(logger),
	)

	return &GlobalConfig{
		Settings:       s,
		Sessions:       sessions,
		Navigator:      navigator,
		ClientProvider: provider,
		Logger:         logger,
		Landing:        map[string]LandingFunc{},
	}
}

// InjectConfig adds config to the cobra command context.
// This should be called in the root command's PersistentPreRunE.
func InjectConfig(ctx context.Context, cfg *GlobalConfig) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext retrieves config from the cobra command context.
// Returns (nil, false) if config is not present.
func FromContext(ctx context.Context) (*GlobalConfig, bool) {
	if ctx == nil {
		return nil, false
	}
	cfg, ok := ctx.Value(configKey).(*GlobalConfig)
	return cfg, ok
}

// MustFromContext retrieves config from context or panics.
// This should only be used in command RunE functions where we know
// the config has been injected by the root command.
func MustFromContext(ctx context.Context) *GlobalConfig {
	cfg, ok := FromContext(ctx)
	if !ok {
		panic("estatectl: config not found in context - this is a bug in estatectl")
	}
	return cfg
}
