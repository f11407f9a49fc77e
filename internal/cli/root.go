// Package cli implements the resconv command tree: profile management and the
// interactive browse and export screens.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"resource-converter/internal/client"
	"resource-converter/internal/config"
	"resource-converter/internal/profile"
	"resource-converter/internal/session"
)

type app struct {
	cfg      *config.ClientConfig
	plain    bool
	client   *client.Client
	profiles *profile.Store
	sessions session.Store
	// prompter overrides the liner prompt in tests.
	prompter Prompter
}

// NewRootCommand builds the resconv command tree around cfg.
func NewRootCommand(cfg *config.ClientConfig) *cobra.Command {
	a := &app{cfg: cfg}

	root := &cobra.Command{
		Use:   "resconv",
		Short: "Export localized labels and error messages as .properties or .xml files",
		Long: `resconv browses the label and error message tables of a resource database
through the converter backend, collects a selection across pages and filters,
and downloads it as .properties or .xml files, one per language or zipped.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringP("server", "s", cfg.ServerURL, "Backend server URL")
	root.PersistentFlags().Bool("plain", false, "Use plain ASCII tables instead of Unicode box drawing")

	root.AddCommand(newProfileCommand(a))
	root.AddCommand(newBrowseCommand(a))
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	server, _ := cmd.Flags().GetString("server")
	if strings.TrimSpace(server) == "" {
		return fmt.Errorf("--server must not be empty")
	}
	a.cfg.ServerURL = server
	a.plain, _ = cmd.Flags().GetBool("plain")

	a.client = client.NewClient(a.cfg.ServerURL, a.cfg.Timeout)

	var secrets profile.Secrets
	if a.cfg.UseKeyring {
		secrets = profile.NewKeyringSecrets()
	}
	a.profiles = profile.NewStore(a.cfg.ConfigDir, secrets)

	if a.cfg.SessionDir != "" {
		a.sessions = session.NewFileStore(a.cfg.SessionDir)
	} else {
		a.sessions = session.NewMemoryStore()
	}
	return nil
}
