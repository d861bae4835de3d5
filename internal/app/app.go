// Package app assembles the session service from configuration.
package app

import (
	"context"
	"fmt"
	"os"

	"huffman_codec_go/internal/config"
	"huffman_codec_go/internal/notify"
	"huffman_codec_go/internal/repo"
	"huffman_codec_go/internal/service"
	"huffman_codec_go/pkg/logger"
)

type App struct {
	Sessions *service.SessionService

	artifacts repo.ArtifactRepo
	notifier  notify.Notifier
}

func New(ctx context.Context, cfg config.Config, logg logger.Logger) (*App, error) {
	artifacts, err := OpenArtifactRepo(ctx, cfg)
	if err != nil {
		return nil, err
	}

	notifier := notify.Nop()
	if cfg.MQTTBroker != "" {
		host, _ := os.Hostname()
		notifier, err = notify.NewMQTT(cfg.MQTTBroker, cfg.MQTTTopic, fmt.Sprintf("huffman-%s-%d", host, os.Getpid()))
		if err != nil {
			artifacts.Close()
			return nil, err
		}
		logg.Infof("publishing events to %s on %s", cfg.MQTTBroker, cfg.MQTTTopic)
	}

	sessions, err := repo.NewSessionRepoLRU(cfg.SessionCache, func(id string) {
		logg.Infof("session evicted: %s", id)
	})
	if err != nil {
		artifacts.Close()
		notifier.Close()
		return nil, err
	}

	return &App{
		Sessions:  service.NewSessionService(sessions, artifacts, notifier, logg),
		artifacts: artifacts,
		notifier:  notifier,
	}, nil
}

// OpenArtifactRepo picks the artifact store named by cfg.Store.
func OpenArtifactRepo(ctx context.Context, cfg config.Config) (repo.ArtifactRepo, error) {
	switch cfg.Store {
	case config.StoreMemory, "":
		return repo.NewArtifactRepoInMemory(), nil
	case config.StoreSQLite:
		return repo.OpenSQLite(ctx, cfg.SQLitePath)
	case config.StorePostgres:
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("store %q needs HUFF_PG_DSN", cfg.Store)
		}
		return repo.OpenPostgres(ctx, cfg.PostgresDSN)
	}
	return nil, fmt.Errorf("unknown store %q", cfg.Store)
}

func (a *App) Close() {
	a.notifier.Close()
	a.artifacts.Close()
}
