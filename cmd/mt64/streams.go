package main

import (
	"context"
	"fmt"

	"github.com/lox/mersenne/cmd/mt64/shared"
	"github.com/lox/mersenne/internal/stream"
)

// StreamsCmd generates every stream block in the config concurrently
type StreamsCmd struct {
	Workers int    `short:"w" help:"Concurrent workers (default GOMAXPROCS)"`
	Format  string `short:"f" default:"dec" enum:"dec,hex,bin" help:"Output format (bin writes streams back to back without headers)"`
}

func (c *StreamsCmd) Run(globals *Globals) error {
	cfg, err := globals.loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := shared.SetupLogger(globals.logLevel(cfg), globals.Stderr)
	if err != nil {
		return err
	}

	format, err := stream.ParseFormat(c.Format)
	if err != nil {
		return err
	}

	jobs := cfg.StreamJobs()
	if len(jobs) == 0 {
		return fmt.Errorf("no stream blocks in %s", globals.Config)
	}

	logger.Debug("Generating streams", "streams", len(jobs), "workers", c.Workers)
	results, err := stream.Generate(context.Background(), jobs, c.Workers)
	if err != nil {
		return err
	}

	for _, res := range results {
		if format != stream.FormatBin {
			fmt.Fprintln(globals.Stdout, HeaderStyle.Render(fmt.Sprintf(" %s ", res.Name)))
		}
		if err := stream.Write(globals.Stdout, res.Values, format); err != nil {
			return err
		}
	}
	logger.Info("Streams generated", "streams", len(results))
	return nil
}
