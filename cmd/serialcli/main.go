package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/serialcli/serialcli/internal/config"
	"github.com/serialcli/serialcli/pkg/console"
)

var BUILD_VERSION = "dev"

var configPath = flag.String("config", "", "path to a YAML config file")
var versionFlag = flag.Bool("ver", false, "display build version")

const pollInterval = 5 * time.Millisecond

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Println(BUILD_VERSION)
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "serialcli: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logger, err := initializeLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "serialcli: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck // flush on exit

	logger.Info("-------- new serialcli session --------",
		zap.String("version", BUILD_VERSION))

	if err := run(cfg, logger); err != nil {
		logger.Error("unhandled error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "serialcli: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	// Raw mode gives the console each keystroke as it is typed, the way a
	// serial device would deliver them.
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("failed to enter raw mode: %w", err)
		}
		defer term.Restore(fd, oldState) //nolint:errcheck
	}

	stream := console.NewPipeStream(os.Stdin, os.Stdout)

	started := time.Now()
	cli, err := console.New(stream, buildCommands(started), console.Options{
		MaxLineLen: cfg.MaxLineLength,
		MaxArgs:    cfg.MaxArgs,
		Prompt:     cfg.Prompt,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	cli.Start()
	for cli.Running() {
		cli.Poll()
		time.Sleep(pollInterval)
	}

	// Leave the hosting terminal on a fresh line.
	fmt.Print("\r\n")
	return nil
}

func buildCommands(started time.Time) []console.Command {
	return []console.Command{
		{
			Name:    "help",
			MaxArgs: 0,
			Help:    "List available commands",
			Handler: func(ctx *console.Context, args []string) error {
				ctx.PrintHelp()
				return nil
			},
		},
		{
			Name:    "echo",
			MaxArgs: 8,
			Help:    "Echo arguments back",
			Handler: func(ctx *console.Context, args []string) error {
				ctx.Println(strings.Join(args[1:], " "))
				return nil
			},
		},
		{
			Name:    "args",
			MaxArgs: 8,
			Help:    "Show how a line was tokenized",
			Handler: func(ctx *console.Context, args []string) error {
				ctx.Printf("argc: %d\r\n", len(args))
				for i, arg := range args {
					ctx.Printf("argv[%d]: %s\r\n", i, arg)
				}
				return nil
			},
		},
		{
			Name:    "prompt",
			MaxArgs: 1,
			Help:    "Set the prompt string",
			Handler: func(ctx *console.Context, args []string) error {
				if len(args) < 2 {
					return fmt.Errorf("usage: prompt <string>")
				}
				ctx.SetPrompt(args[1] + " ")
				return nil
			},
		},
		{
			Name:    "uptime",
			MaxArgs: 0,
			Help:    "Show session uptime",
			Handler: func(ctx *console.Context, args []string) error {
				ctx.Printf("up %s\r\n", time.Since(started).Round(time.Second))
				return nil
			},
		},
		{
			Name:    "stop",
			MaxArgs: 0,
			Help:    "Stop the console session",
			Handler: func(ctx *console.Context, args []string) error {
				ctx.Println("Stopping console.")
				ctx.RequestStop()
				return nil
			},
		},
	}
}

func initializeLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.LogFile == "" {
		// Logs would corrupt the raw-mode terminal, so without a log file
		// they are discarded.
		return zap.NewNop(), nil
	}

	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = level
	loggerConfig.OutputPaths = []string{cfg.LogFile}

	return loggerConfig.Build()
}
