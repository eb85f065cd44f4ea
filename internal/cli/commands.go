package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/modstack/internal/version"
	"github.com/arthur-debert/modstack/pkg/config"
	"github.com/arthur-debert/modstack/pkg/export"
	"github.com/arthur-debert/modstack/pkg/filesystem"
	"github.com/arthur-debert/modstack/pkg/logging"
	"github.com/arthur-debert/modstack/pkg/modlist"
	"github.com/arthur-debert/modstack/pkg/paths"
	"github.com/arthur-debert/modstack/pkg/profiles"
	"github.com/arthur-debert/modstack/pkg/reveal"
	"github.com/arthur-debert/modstack/pkg/types"
)

// DefaultProfile is used when --profile is not given
const DefaultProfile = "default"

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "modstack",
		Short: "A per-profile mod list manager",
		Long: `modstack keeps an ordered list of installed mods per profile, backed by
a plain YAML file. Every change is persisted immediately, and profiles can
be exported as a single archive bundling the list and its configuration.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringP("profile", "p", DefaultProfile, "Profile to operate on")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newProfilesCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newRemoveCmd())
	rootCmd.AddCommand(newEnableCmd())
	rootCmd.AddCommand(newDisableCmd())
	rootCmd.AddCommand(newUpCmd())
	rootCmd.AddCommand(newDownCmd())
	rootCmd.AddCommand(newExportCmd())

	return rootCmd
}

// appContext bundles the wired-up collaborators every command needs
type appContext struct {
	cfg     *config.Config
	fs      types.FS
	paths   paths.Paths
	manager *modlist.Manager
}

// initApp loads configuration and wires the production collaborators
func initApp() (*appContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	p, err := paths.New(cfg.ModsFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize paths: %w", err)
	}

	fs := filesystem.NewOS()
	return &appContext{
		cfg:     cfg,
		fs:      fs,
		paths:   p,
		manager: modlist.New(fs, cfg.ModsFileName),
	}, nil
}

// resolveProfile loads the profile selected by the --profile flag
func resolveProfile(cmd *cobra.Command, app *appContext) (types.Profile, error) {
	name, _ := cmd.Root().PersistentFlags().GetString("profile")
	return profiles.Load(app.fs, app.paths, name)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("modstack version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Printf("Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Printf("Built:  %s\n", version.Date)
			}
		},
	}
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init <profile>",
		Short: "Create a new profile",
		Long: `Init creates the directory skeleton for a new profile: its metadata
file and an empty config directory. The mod list file is created on first
access.`,
		Example: `  # Create a profile named hardcore
  modstack init hardcore`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp()
			if err != nil {
				return err
			}

			profile, err := profiles.Create(app.fs, app.paths, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Created profile %s at %s\n", profile.Name, profile.Path)
			return nil
		},
	}
}

func newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List all profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp()
			if err != nil {
				return err
			}

			found, err := profiles.Discover(app.fs, app.paths)
			if err != nil {
				return err
			}

			if len(found) == 0 {
				fmt.Println("No profiles yet. Create one with: modstack init <name>")
				return nil
			}

			fmt.Print(renderProfiles(found))
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the profile's mod list in activation order",
		Example: `  # Show the default profile's list
  modstack list

  # Show another profile's list
  modstack list -p hardcore`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp()
			if err != nil {
				return err
			}
			profile, err := resolveProfile(cmd, app)
			if err != nil {
				return err
			}

			list, err := app.manager.List(profile)
			if err != nil {
				return err
			}

			fmt.Print(renderList(profile, list))
			return nil
		},
	}
}

func newAddCmd() *cobra.Command {
	var modVersion string
	var source string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a mod, or replace it in place if already listed",
		Long: `Add records a mod in the profile's list. If the mod is already listed,
the entry is replaced without losing its position; a new mod is appended
at the end of the activation order.`,
		Example: `  # Append a new mod
  modstack add quality-tweaks --mod-version 1.2.0

  # Replace it, keeping its position
  modstack add quality-tweaks --mod-version 1.3.0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp()
			if err != nil {
				return err
			}
			profile, err := resolveProfile(cmd, app)
			if err != nil {
				return err
			}

			rec := types.Record{Name: args[0]}
			rec.SetField("enabled", true)
			if modVersion != "" {
				rec.SetField("version", modVersion)
			}
			if source != "" {
				rec.SetField("source", source)
			}

			list, err := app.manager.AddOrReplace(profile, rec)
			if err != nil {
				return err
			}

			fmt.Print(renderList(profile, list))
			return nil
		},
	}

	cmd.Flags().StringVar(&modVersion, "mod-version", "", "Version to record for the mod")
	cmd.Flags().StringVar(&source, "source", "", "Where the mod came from (workshop, manual, ...)")

	return cmd
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a mod from the profile's list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp()
			if err != nil {
				return err
			}
			profile, err := resolveProfile(cmd, app)
			if err != nil {
				return err
			}

			list, err := app.manager.Remove(profile, types.Record{Name: args[0]})
			if err != nil {
				return err
			}

			fmt.Print(renderList(profile, list))
			return nil
		},
	}
}

func newEnableCmd() *cobra.Command {
	return newToggleCmd("enable", "Enable a mod without touching its position", true)
}

func newDisableCmd() *cobra.Command {
	return newToggleCmd("disable", "Disable a mod while keeping it in the list", false)
}

func newToggleCmd(use, short string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <name>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp()
			if err != nil {
				return err
			}
			profile, err := resolveProfile(cmd, app)
			if err != nil {
				return err
			}

			list, err := app.manager.Update(profile, types.Record{Name: args[0]}, func(r *types.Record) {
				r.SetField("enabled", enabled)
			})
			if err != nil {
				return err
			}

			fmt.Print(renderList(profile, list))
			return nil
		},
	}
}

func newUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up <name>",
		Short: "Move a mod one position earlier in the activation order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShift(cmd, args[0], true)
		},
	}
}

func newDownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down <name>",
		Short: "Move a mod one position later in the activation order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShift(cmd, args[0], false)
		},
	}
}

func runShift(cmd *cobra.Command, name string, up bool) error {
	app, err := initApp()
	if err != nil {
		return err
	}
	profile, err := resolveProfile(cmd, app)
	if err != nil {
		return err
	}

	var list types.ModList
	if up {
		list, err = app.manager.ShiftUp(profile, types.Record{Name: name})
	} else {
		list, err = app.manager.ShiftDown(profile, types.Record{Name: name})
	}
	if err != nil {
		return err
	}

	fmt.Print(renderList(profile, list))
	return nil
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export the profile as a single archive",
		Long: `Export snapshots the profile's mod list and its config directory into
one archive under the export directory, then reveals it in the file
browser (when enabled in the configuration).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp()
			if err != nil {
				return err
			}
			profile, err := resolveProfile(cmd, app)
			if err != nil {
				return err
			}

			revealer := reveal.Noop()
			if app.cfg.Reveal {
				revealer = reveal.NewOS()
			}

			exporter := export.New(app.fs, app.paths, app.manager, revealer, app.cfg.ExportExtension)
			archivePath, err := exporter.Export(profile)
			if err != nil {
				return err
			}

			fmt.Printf("Exported %s to %s\n", profile.Name, archivePath)
			return nil
		},
	}
}
