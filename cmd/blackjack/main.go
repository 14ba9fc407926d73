package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack-cli/internal/config"
	"github.com/lox/blackjack-cli/internal/display"
	"github.com/lox/blackjack-cli/internal/game"
	"github.com/lox/blackjack-cli/internal/randutil"
)

// version is set by ldflags during build
var version = "dev"

// debugLogFile is written when --debug is given without a configured log file
const debugLogFile = "blackjack.log"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `help:"Path to optional HCL config file" default:"blackjack.hcl" type:"path"`
	Seed    int64            `help:"Shuffle seed (0 seeds from the clock)"`
	Debug   bool             `help:"Write debug logs"`
	NoColor bool             `help:"Disable colored output"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Play a single round of blackjack against the dealer"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
	)
	err := cli.Run(os.Stdin, os.Stdout)
	ctx.FatalIfErrorf(err)
}

// Run plays exactly one round against the given terminal streams
func (c *CLI) Run(stdin io.ReadCloser, stdout io.Writer) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Debug {
		cfg.UI.LogLevel = "debug"
	}
	if c.Seed != 0 {
		cfg.Game.Seed = c.Seed
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", c.Config, err)
	}

	logPath := cfg.UI.LogFile
	if logPath == "" && c.Debug {
		logPath = debugLogFile
	}

	var logOut io.Writer = io.Discard
	if logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer func() {
			if err := logFile.Close(); err != nil {
				log.Error("Failed to close log file", "error", err)
			}
		}()
		logOut = logFile
	}

	logger := log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "BLACKJACK",
		Level:           cfg.Level(),
	})

	display.SetColor(cfg.ColorEnabled() && !c.NoColor)

	console, err := display.NewConsole(stdin, stdout, logger)
	if err != nil {
		return fmt.Errorf("failed to create console: %w", err)
	}
	defer func() {
		if err := console.Close(); err != nil {
			logger.Error("Failed to close console", "error", err)
		}
	}()

	console.Banner(" ♠ ♥ Blackjack ♦ ♣ ")

	seed := randutil.Seed(cfg.Game.Seed)
	logger.Info("Starting round", "seed", seed, "version", version)

	round := game.NewRound(randutil.New(seed), console, console, game.WithLogger(logger))
	if _, err := round.Play(); err != nil {
		return fmt.Errorf("round aborted: %w", err)
	}
	return nil
}
