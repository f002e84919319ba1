// cmd/assistance-wizard/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"financial-assistance/internal/assistance/gateway"
	"financial-assistance/internal/assistance/suggestion"
	"financial-assistance/internal/common/config"
	"financial-assistance/internal/common/database"
	"financial-assistance/internal/common/i18n"
	"financial-assistance/internal/common/logger"
	"financial-assistance/internal/console"
	"financial-assistance/internal/form/storage"
	"financial-assistance/internal/form/wizard"
)

func main() {
	configPath := flag.String("config", "", "Path to a config file (default: configs/config.yaml lookup)")
	serverURL := flag.String("server", "", "Assistance server base URL (overrides client.server_url)")
	backend := flag.String("storage", "", "Form storage backend: file, redis or memory")
	lang := flag.String("lang", "", "Initial language when none is saved: en or ar")
	logLevel := flag.String("log-level", "warn", "Log level for stderr output")
	flag.Parse()

	zapLog := logger.NewToStderr(*logLevel)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	if *serverURL != "" {
		cfg.Client.ServerURL = *serverURL
	}
	if *backend != "" {
		cfg.Client.Storage.Backend = *backend
	}
	if *lang != "" {
		cfg.Client.Language = *lang
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(cfg, log)
	if err != nil {
		zapLog.Fatal("storage init failed", zap.Error(err))
	}
	defer closeStore()

	initial, ok := i18n.ParseLanguage(cfg.Client.Language)
	if !ok {
		initial = i18n.Default
	}

	tr := i18n.NewTable()

	form := wizard.New(ctx, wizard.Options{
		Storage:    storage.NewAdapter(store, log),
		Submitter:  gateway.New(cfg.Client.ServerURL, config.GetDuration(cfg.Client.SubmissionTimeout), log),
		Translator: tr,
		Language:   initial,
		Logger:     log,
	})

	assistant := suggestion.NewWorkflow(
		suggestion.NewClient(cfg.Client.ServerURL, config.GetDuration(cfg.Client.SuggestionTimeout), log),
		form,
		tr,
		log,
	)

	fmt.Fprintln(os.Stdout, "type help for commands")
	if err := console.New(form, assistant, tr, os.Stdin, os.Stdout, log).Run(ctx); err != nil && ctx.Err() == nil {
		zapLog.Error("console stopped", zap.Error(err))
		os.Exit(1)
	}
}

// openStore returns the configured backend. A nil store is valid and makes
// the wizard run without persistence.
func openStore(cfg *config.Config, log logger.Logger) (storage.KeyValueStore, func(), error) {
	switch cfg.Client.Storage.Backend {
	case "memory":
		return storage.NewMemoryStore(), func() {}, nil
	case "redis":
		rdb := database.NewRedis(cfg.Database.Redis)
		if err := rdb.Ping(context.Background()); err != nil {
			log.Warn("redis unavailable, continuing without persistence", map[string]interface{}{"error": err})
			_ = rdb.Close()
			return nil, func() {}, nil
		}
		return storage.NewRedisStore(rdb, cfg.Client.Storage.KeyPrefix), func() { _ = rdb.Close() }, nil
	default:
		fs, err := storage.NewFileStore(cfg.Client.Storage.Dir)
		if err != nil {
			return nil, func() {}, fmt.Errorf("file store: %w", err)
		}
		return fs, func() {}, nil
	}
}
