package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"resource-converter/internal/domain"
	"resource-converter/internal/profile"
)

func newProfileCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "profile",
		Aliases: []string{"profiles"},
		Short:   "Manage saved database connection profiles",
	}
	cmd.AddCommand(
		newProfileListCommand(a),
		newProfileSaveCommand(a),
		newProfileDeleteCommand(a),
		newProfileUseCommand(a),
		newProfileTestCommand(a),
	)
	return cmd
}

func newProfileListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved profiles; the active one is marked with *",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profiles, err := a.profiles.List()
			if err != nil {
				return err
			}
			if len(profiles) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No profiles saved. Use 'resconv profile save <name>' to add one.")
				return nil
			}
			active, err := a.profiles.Active()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return renderProfiles(out, a.plain || !isTerminal(out), profiles, active)
		},
	}
}

func newProfileSaveCommand(a *app) *cobra.Command {
	var (
		dbType      string
		host        string
		port        int
		dbName      string
		user        string
		password    string
		askPassword bool
		langs       map[string]string
	)

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Create a profile or update the fields given as flags",
		Long: `Create a profile or update an existing one. Only the flags you pass change
an existing profile. Language labels name the locale stored in each text
column, e.g. --lang country1=en --lang country2=ja; an empty label hides the
column from exports.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if name == "" {
				return profile.ErrNameRequired
			}

			p, err := a.profiles.Get(name)
			if errors.Is(err, profile.ErrNotFound) {
				p = domain.DefaultProfile()
				p.Name = name
			} else if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("db-type") {
				t, err := parseDBType(dbType)
				if err != nil {
					return err
				}
				p.DBType = t
				if !flags.Changed("port") {
					p.Port = domain.DefaultPort(t)
				}
			}
			if flags.Changed("host") {
				p.Host = host
			}
			if flags.Changed("port") {
				p.Port = port
			}
			if flags.Changed("db-name") {
				p.DBName = dbName
			}
			if flags.Changed("user") {
				p.Username = user
			}
			if flags.Changed("password") {
				p.Password = password
			}
			if askPassword {
				pw, err := readPassword(cmd.InOrStdin(), cmd.OutOrStdout())
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				p.Password = pw
			}
			if p.LanguageMap == nil {
				p.LanguageMap = map[domain.Slot]string{}
			}
			for slot, label := range langs {
				p.LanguageMap[domain.Slot(strings.TrimSpace(slot))] = strings.TrimSpace(label)
			}

			editor, err := profile.NewEditor(a.profiles, a.client)
			if err != nil {
				return err
			}
			editor.Set(p)
			if err := editor.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved profile %q.\n", name)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&dbType, "db-type", "", "Database type: MySQL, PostgreSQL, Oracle, SQLServer or SQLite")
	f.StringVar(&host, "host", "", "Database host")
	f.IntVar(&port, "port", 0, "Database port (0 uses the default port of the type)")
	f.StringVar(&dbName, "db-name", "", "Database name, Oracle service name or SQLite file path")
	f.StringVar(&user, "user", "", "Database user")
	f.StringVar(&password, "password", "", "Database password (prefer --ask-password)")
	f.BoolVar(&askPassword, "ask-password", false, "Prompt for the password")
	f.StringToStringVar(&langs, "lang", nil, "Language label per column, e.g. country2=ja")
	return cmd
}

func newProfileDeleteCommand(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			editor, err := profile.NewEditor(a.profiles, a.client)
			if err != nil {
				return err
			}

			ask := func(q string) bool {
				return yes || confirm(cmd.InOrStdin(), cmd.OutOrStdout(), q)
			}
			deleted, err := editor.Delete(args[0], ask)
			if err != nil {
				return err
			}
			if !deleted {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted profile %q.\n", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func newProfileUseCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "use <name>",
		Short: "Make a profile the active one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			editor, err := profile.NewEditor(a.profiles, a.client)
			if err != nil {
				return err
			}
			if err := editor.Load(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Active profile is now %q.\n", args[0])
			return nil
		},
	}
}

func newProfileTestCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "test [name]",
		Short: "Ask the backend to open a connection with a profile",
		Long:  "Ask the backend to open a connection with the named profile, or with the active one.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			editor, err := profile.NewEditor(a.profiles, a.client)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				p, err := a.profiles.Get(args[0])
				if err != nil {
					return err
				}
				editor.Set(p)
			} else if editor.Current().Name == "" {
				return errors.New("no active profile; pass a profile name")
			}

			fmt.Fprintln(cmd.OutOrStdout(), editor.TestConnection(cmd.Context()))
			return nil
		},
	}
}

func parseDBType(s string) (domain.DBType, error) {
	for _, t := range domain.ValidDBTypes {
		if strings.EqualFold(string(t), s) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedDBType, s)
}
