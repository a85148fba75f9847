package app

import (
	"github.com/sirupsen/logrus"

	"midiwire/internal/domain"
	"midiwire/internal/relay"
	capturesvc "midiwire/internal/services/capture"
	streamsvc "midiwire/internal/services/stream"
	"midiwire/internal/store"
)

// Wire bundles the store, services, and hub client for the CLI.
type Wire struct {
	Takes   domain.TakeStore
	Streams domain.StreamService
	Capture domain.CaptureService
	Hub     domain.HubClient // nil when no hub is configured
	Log     *logrus.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	log := cfg.Log
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.WarnLevel)
	}

	takeStore := store.NewFileStore(cfg.Home)
	streamSvc := streamsvc.New(log)
	captureSvc := capturesvc.New(streamSvc, takeStore, log)

	var hub domain.HubClient
	if cfg.HubURL != "" {
		hub = relay.NewHTTP(cfg.HubURL)
	}

	return &Wire{
		Takes:   takeStore,
		Streams: streamSvc,
		Capture: captureSvc,
		Hub:     hub,
		Log:     log,
	}, nil
}
