package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/capitaoleads/leadstore-go/internal/config"
	"github.com/capitaoleads/leadstore-go/internal/kv"
	"github.com/capitaoleads/leadstore-go/internal/repository"
	"github.com/capitaoleads/leadstore-go/internal/service"
)

var (
	flagJSON bool

	cfg         *config.Config
	storeCloser io.Closer

	authService *service.AuthService
	formService *service.FormService
	leadService *service.LeadService
)

var rootCmd = &cobra.Command{
	Use:   "leadstore",
	Short: "leadstore — administer the lead-capture store from the terminal",
	Long: `leadstore manages users, capture forms and captured leads in the
configured storage backend (memory, redis or postgres).

Get started:
  leadstore seed-admin                       Provision the admin account
  leadstore register "Ana" ana@x.com pw1     Register a user
  leadstore forms list --user ana@x.com      List a user's forms
  leadstore leads list --user ana@x.com      List a user's leads`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		setLogLevel(cfg.LogLevel)

		store, err := openStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		userRepo := repository.NewUserRepository(store)
		sessionRepo := repository.NewSessionRepository(store)
		formRepo := repository.NewFormRepository(store)
		leadRepo := repository.NewLeadRepository(store)
		settingsRepo := repository.NewSettingsRepository(store)

		migrator := service.NewMigrator(formRepo, leadRepo, settingsRepo)
		authService = service.NewAuthService(userRepo, sessionRepo, formRepo, migrator)
		formService = service.NewFormService(formRepo, leadRepo)
		leadService = service.NewLeadService(leadRepo, migrator)

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if storeCloser != nil {
			return storeCloser.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
}

func openStore(ctx context.Context, cfg *config.Config) (kv.Store, error) {
	switch cfg.StorageBackend {
	case config.BackendRedis:
		store, err := kv.NewRedis(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		storeCloser = store
		return store, nil
	case config.BackendPostgres:
		store, err := kv.NewPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		schemaCtx, cancel := context.WithTimeout(ctx, config.StorePingTimeout)
		defer cancel()
		if err := store.EnsureSchema(schemaCtx); err != nil {
			store.Close()
			return nil, fmt.Errorf("ensuring storage schema: %w", err)
		}
		storeCloser = store
		return store, nil
	default:
		log.Warn().Msg("memory backend selected: data does not persist between invocations")
		return kv.NewMemory(), nil
	}
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// resolveUserID accepts either a user id or an email.
func resolveUserID(ctx context.Context, ref string) (string, error) {
	user, err := authService.Lookup(ctx, ref)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", fmt.Errorf("user %q not found", ref)
	}
	return user.ID, nil
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
