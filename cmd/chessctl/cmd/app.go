package cmd

import (
	"context"
	"log/slog"
	"os"

	"chess/config"
	"chess/internal/client/api"
	"chess/internal/client/authority"
	"chess/internal/client/credential"
	"chess/internal/client/nonce"
	"chess/internal/client/platform"
	"chess/internal/client/session"
	logs "chess/internal/infra/log"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// app holds the client components shared by every command.
type app struct {
	cfg       *config.ClientConfig
	logger    *slog.Logger
	store     *credential.Store
	authority *authority.Client
	keyring   *platform.KeyringSource
	manager   *session.Manager
	api       *api.Client
}

func newApp(cfg *config.ClientConfig) (*app, error) {
	logger, err := logs.NewWithWriter(os.Stderr, cfg.Env.Log)
	if err != nil {
		return nil, err
	}

	authorityClient := authority.NewClient(authority.Config{
		Domain:     cfg.Authority.Domain,
		ClientID:   cfg.Authority.ClientID,
		Audience:   cfg.Authority.Audience,
		Realm:      cfg.Authority.Realm,
		Connection: cfg.Authority.Connection,
		Scope:      cfg.Authority.Scope,
		Timeout:    cfg.Authority.Timeout,
	}, authority.WithLogger(logger))

	store := credential.NewStore(
		credential.NewFileBackend(cfg.Credentials.Path),
		authorityClient,
		credential.WithSkew(cfg.Credentials.Skew),
		credential.WithLogger(logger),
	)

	keyringSource := platform.NewKeyringSource(cfg.Keyring.Service)

	// Start tries the saved password first, then Google when it is configured.
	sources := []platform.Source{keyringSource}
	var federated platform.Source
	if cfg.Google.ClientID != "" {
		federated = platform.NewGoogleDeviceSource(cfg.Google.ClientID, cfg.Google.ClientSecret, promptDeviceCode)
		sources = append(sources, federated)
	}

	manager := session.New(session.Params{
		Store:       store,
		Exchanger:   authorityClient,
		Credentials: platform.NewChain(logger, sources...),
		Federated:   federated,
		Nonces:      nonce.NewGenerator(nil),
		Logger:      logger,
	})

	return &app{
		cfg:       cfg,
		logger:    logger,
		store:     store,
		authority: authorityClient,
		keyring:   keyringSource,
		manager:   manager,
		api:       api.NewClient(cfg.API.BaseURL, manager, nil),
	}, nil
}

type appKey struct{}

func withApp(ctx context.Context, a *app) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

// appFrom returns the app built for this invocation by the root command.
func appFrom(cmd *cobra.Command) *app {
	a, _ := cmd.Context().Value(appKey{}).(*app)
	return a
}

func promptDeviceCode(verificationURI, userCode string) {
	pterm.Info.Printf("Open %s and enter the code %s\n", verificationURI, pterm.Bold.Sprint(userCode))
}
