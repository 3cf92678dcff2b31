package main

import (
	"context"
	"net/http"
	"os"

	"github.com/bookbrainz/entity-api/internal/pkg/application/lookup"
	"github.com/bookbrainz/entity-api/internal/pkg/infrastructure/router"
	"github.com/bookbrainz/entity-api/internal/pkg/infrastructure/storage"
	"github.com/bookbrainz/entity-api/internal/pkg/presentation/api"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

const serviceName string = "entity-api"

func main() {
	serviceVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion, "json")
	defer cleanup()

	cfg := loadAPIConfiguration(ctx)

	pool, err := storage.Connect(ctx, storage.LoadConfiguration(ctx))
	if err != nil {
		log.Error("failed to connect to database", "err", err.Error())
		os.Exit(1)
	}
	defer pool.Close()

	resolver := lookup.New(storage.New(pool))

	r := router.New(serviceName)

	err = api.RegisterHandlers(ctx, r, resolver, cfg.EntityKinds())
	if err != nil {
		log.Error("failed to register handlers", "err", err.Error())
		os.Exit(1)
	}

	port := env.GetVariableOrDefault(ctx, "SERVICE_PORT", "8080")
	log.Info("starting to listen for connections", "port", port)

	err = http.ListenAndServe(":"+port, r)
	if err != nil {
		log.Error("failed to listen for connections", "err", err.Error())
		os.Exit(1)
	}
}

func loadAPIConfiguration(ctx context.Context) *Config {
	log := logging.GetFromContext(ctx)

	configPath := env.GetVariableOrDefault(ctx, "SERVICE_CONFIG_FILE", "/opt/entity-api/config.yaml")

	f, err := os.Open(configPath)
	if err != nil {
		log.Info("no configuration file found, serving default entity kinds", "path", configPath)
		return DefaultConfig()
	}
	defer f.Close()

	cfg, err := LoadConfiguration(f)
	if err != nil {
		log.Error("failed to load configuration", "path", configPath, "err", err.Error())
		os.Exit(1)
	}

	return cfg
}
