package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/mersenne/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" default:"mt64.hcl" help:"Path to HCL configuration file"`
	LogLevel string `help:"Log level: debug, info, warn or error (overrides config)"`
	NoColor  bool   `help:"Disable colored output" env:"NO_COLOR"`

	Stdout io.Writer `kong:"-"`
	Stderr io.Writer `kong:"-"`
}

// loadConfig loads the configuration file, falling back to defaults
func (g *Globals) loadConfig() (*config.Config, error) {
	return config.LoadConfig(g.Config)
}

// logLevel prefers --log-level over the config file's server log_level
func (g *Globals) logLevel(cfg *config.Config) string {
	if g.LogLevel != "" {
		return g.LogLevel
	}
	return cfg.Server.LogLevel
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Gen     GenCmd           `cmd:"" help:"Print values from a seeded generator"`
	Verify  VerifyCmd        `cmd:"" help:"Check the generator against published reference outputs"`
	Shuffle ShuffleCmd       `cmd:"" help:"Deterministically shuffle items"`
	Streams StreamsCmd       `cmd:"" help:"Generate the configured independent streams in parallel"`
	Serve   ServeCmd         `cmd:"" help:"Serve generators over WebSocket"`
}

func main() {
	cli := CLI{Globals: Globals{Stdout: os.Stdout, Stderr: os.Stderr}}
	ctx := kong.Parse(&cli,
		kong.Name("mt64"),
		kong.Description("Deterministic 64-bit Mersenne Twister (MT19937-64) generator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
