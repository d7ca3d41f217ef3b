package cli

import (
	"fmt"

	"github.com/AntonioJCosta/lolbunny/internal/config"
	"github.com/AntonioJCosta/lolbunny/internal/core/domain/shortcut"
	"github.com/AntonioJCosta/lolbunny/internal/core/ports"
	"github.com/AntonioJCosta/lolbunny/internal/core/services/redirect"
	"github.com/AntonioJCosta/lolbunny/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app is the state shared by subcommands. It is filled in by the root
// command's PersistentPreRunE, once flags have been parsed.
type app struct {
	viper  *viper.Viper
	config *config.Config
	log    zerolog.Logger
	svc    ports.RedirectService
}

func NewRootCommand(
	version string,
	provider ports.ShortcutProvider,
	parser ports.CommandParser,
) *cobra.Command {
	a := &app{viper: config.New(), log: zerolog.Nop()}
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "lolbunny",
		Short: "lolbunny turns short commands into redirects.",
		Long: `lolbunny resolves shortcuts like "jira FOO-123" or "g golang" to a
destination URL. Run it as a server for browsers, or use it from the shell.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if provider == nil {
				return fmt.Errorf("shortcut provider not initialized for command %s", cmd.Name())
			}
			if parser == nil {
				return fmt.Errorf("command parser not initialized for command %s", cmd.Name())
			}
			return a.init(configFile, provider, parser)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Path to a config file (yaml, toml or json).")
	flags.String("log-level", "info", "Log level: trace, debug, info, warn, error.")
	flags.String("log-format", "console", "Log format: console or json.")
	flags.String("fallback-url", redirect.DefaultFallbackURL, "Search URL that receives input matching no shortcut.")
	mustBind(a.viper, config.KeyLoggingLevel, flags.Lookup("log-level"))
	mustBind(a.viper, config.KeyLoggingFormat, flags.Lookup("log-format"))
	mustBind(a.viper, config.KeySearchFallbackURL, flags.Lookup("fallback-url"))

	rootCmd.AddCommand(NewServeCommand(a))
	rootCmd.AddCommand(NewResolveCommand(a))
	rootCmd.AddCommand(NewListCommand(a))
	rootCmd.AddCommand(NewHelpPageCommand(a))

	return rootCmd
}

// init loads configuration, the logger and the shortcut catalog, and builds
// the redirect service. The registry is fixed from here on.
func (a *app) init(configFile string, provider ports.ShortcutProvider, parser ports.CommandParser) error {
	cfg, err := config.Load(a.viper, configFile)
	if err != nil {
		return err
	}
	a.config = cfg

	logger, err := logging.New(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	if err != nil {
		return fmt.Errorf("could not set up logging: %w", err)
	}
	a.log = logger

	catalog, err := provider.GetCatalog()
	if err != nil {
		return fmt.Errorf("could not load shortcuts: %w", err)
	}
	registry := shortcut.NewRegistry(catalog.Shortcuts...)
	a.log.Debug().Int("shortcuts", registry.Len()).Msg("loaded shortcut catalog")

	a.svc = redirect.NewService(parser, registry, catalog.Tables,
		redirect.WithFallbackURL(cfg.Search.FallbackURL),
		redirect.WithSearchDescriptorURL(cfg.Server.PublicURL+"/opensearch.xml"),
		redirect.WithLogger(logging.WithComponent(a.log, "redirect")),
	)
	return nil
}

func mustBind(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag for %s: %v", key, err))
	}
}
