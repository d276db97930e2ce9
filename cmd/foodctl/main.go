package main

import (
	"os"

	"foodctl/internal/api"
	"foodctl/internal/config"
	"foodctl/internal/session"
)

type app struct {
	cfg    config.Config
	sess   *session.Store
	gate   *session.Gate
	client *api.Client
}

func main() {
	cfg := config.Load()
	sess := session.NewStore(cfg.SessionFile)
	a := &app{
		cfg:    cfg,
		sess:   sess,
		gate:   session.NewGate(sess),
		client: api.New(cfg.GatewayBaseURL, sess),
	}
	if err := newRootCmd(a).Execute(); err != nil {
		os.Exit(1)
	}
}
