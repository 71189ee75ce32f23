package main

import (
	"fmt"
	"time"

	"github.com/lox/mersenne/cmd/mt64/shared"
	"github.com/lox/mersenne/internal/server"
)

// ServeCmd runs the WebSocket service
type ServeCmd struct {
	Addr        string         `short:"a" help:"Server address to bind to (overrides config)"`
	IdleTimeout *time.Duration `help:"Close connections idle for this long, 0 disables (overrides config)"`
	MaxBatch    *int           `help:"Maximum values per request (overrides config)"`
}

func (c *ServeCmd) Run(globals *Globals) error {
	cfg, err := globals.loadConfig()
	if err != nil {
		return err
	}
	cfg.Server.LogLevel = globals.logLevel(cfg)
	if c.MaxBatch != nil {
		cfg.Server.MaxBatch = *c.MaxBatch
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := shared.SetupLogger(cfg.Server.LogLevel, globals.Stderr)
	if err != nil {
		return err
	}

	addr := cfg.ServerAddress()
	if c.Addr != "" {
		addr = c.Addr
	}
	srvCfg := server.Config{
		IdleTimeout: cfg.IdleTimeout(),
		MaxBatch:    cfg.Server.MaxBatch,
	}
	if c.IdleTimeout != nil {
		if *c.IdleTimeout < 0 {
			return fmt.Errorf("idle timeout must not be negative")
		}
		srvCfg.IdleTimeout = *c.IdleTimeout
	}

	logger.Info("Starting mt64 server",
		"address", addr,
		"idle_timeout", srvCfg.IdleTimeout,
		"max_batch", srvCfg.MaxBatch)

	s := server.NewServer(srvCfg, logger)
	ctx := shared.SetupSignalHandler(logger)
	return s.Start(ctx, addr)
}
