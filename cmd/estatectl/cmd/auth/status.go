package auth

import (
	"time"

	"github.com/estatedesk/estate/cmd/estatectl/internal/config"
	"github.com/estatedesk/estate/cmd/estatectl/internal/session"
	"github.com/estatedesk/estate/pkg/sdk"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// StatusCmd shows the stored session.
var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display the current session",
	Long: `Shows whether a session is stored, the role it carries and the claims of
its token. Claims are decoded for display only; the server remains the judge
of whether the token is valid.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		s := cfg.Sessions.Session()

		pterm.DefaultSection.Println("Session")
		pterm.Info.Printf("Server: %s\n", cfg.ServerURL)
		pterm.Info.Printf("Storage: %s\n", storageName(cfg.Sessions))

		if !s.Authenticated() {
			pterm.Info.Println("Not logged in.")
			return nil
		}
		pterm.Info.Printf("Role: %s (%d)\n", s.Role, int(s.Role))

		claims, err := sdk.DecodeClaims(s.Token)
		if err != nil {
			pterm.Warning.Printf("Stored token could not be decoded: %v\n", err)
			return nil
		}

		pterm.DefaultSection.Println("Token")
		if claims.UserID != 0 {
			pterm.Info.Printf("User ID: %d\n", claims.UserID)
		}
		if claims.Subject != "" {
			pterm.Info.Printf("Subject: %s\n", claims.Subject)
		}
		if exp := claims.ExpiresAtTime(); !exp.IsZero() {
			pterm.Info.Printf("Expires: %s\n", exp.Format(time.RFC1123))
			if claims.IsExpired() {
				pterm.Warning.Println("Token has expired; run 'estatectl login'.")
			}
		}
		return nil
	},
}

func storageName(store sdk.SessionStore) string {
	switch s := store.(type) {
	case *session.FileStore:
		return s.Path()
	case *sdk.MemoryStore:
		return "memory (not persisted)"
	default:
		return "unknown"
	}
}
