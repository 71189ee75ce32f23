package main

import (
	"context"

	"github.com/lox/mersenne/internal/stream"
)

// GenCmd prints values from one generator
type GenCmd struct {
	Seed   *uint64  `short:"s" help:"Seed value (overrides config)"`
	Key    []uint64 `short:"k" sep:"," help:"Comma separated seed key for array seeding (overrides seed)"`
	Count  *int     `short:"n" help:"Number of values to print (overrides config)"`
	Skip   *int     `help:"Values to discard before printing (overrides config)"`
	Format string   `short:"f" help:"Output format: dec, hex or bin (overrides config)"`
}

func (c *GenCmd) Run(globals *Globals) error {
	cfg, err := globals.loadConfig()
	if err != nil {
		return err
	}

	if c.Seed != nil {
		cfg.Generator.Seed = c.Seed
		cfg.Generator.Key = nil
	}
	if len(c.Key) > 0 {
		cfg.Generator.Key = c.Key
	}
	if c.Count != nil {
		cfg.Generator.Count = *c.Count
	}
	if c.Skip != nil {
		cfg.Generator.Skip = *c.Skip
	}
	if c.Format != "" {
		cfg.Generator.Format = c.Format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	format, err := stream.ParseFormat(cfg.Generator.Format)
	if err != nil {
		return err
	}

	res, err := cfg.GeneratorJob().Run(context.Background())
	if err != nil {
		return err
	}
	return stream.Write(globals.Stdout, res.Values, format)
}
