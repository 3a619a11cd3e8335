package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	app "github.com/rocketscienceinc/mnkgame/internal"
	"github.com/rocketscienceinc/mnkgame/internal/config"
)

// main - is the entry point: it loads the configuration, builds the logger,
// and plays one match.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initConfig parses the command line and loads the configuration. The two
// positional arguments pick the players; -board points at a saved layout.
func initConfig() *config.Config {
	var (
		configPath = flag.String("config", "", "path to a YAML config file")
		boardPath  = flag.String("board", "", "path to a saved board file")
	)
	flag.Usage = usage
	flag.Parse()

	conf := config.MustLoad(*configPath)

	if *boardPath != "" {
		conf.Board.File = *boardPath
	}

	args := flag.Args()
	if len(args) > 0 {
		conf.Players.X = playerKind(args[0])
	}
	if len(args) > 1 {
		conf.Players.O = playerKind(args[1])
	}

	return conf
}

// playerKind maps a command-line player argument to a config kind; anything
// unrecognized plays as a human.
func playerKind(arg string) string {
	switch arg {
	case "n", config.PlayerNegamax:
		return config.PlayerNegamax
	case "a", config.PlayerAlphaBeta:
		return config.PlayerAlphaBeta
	default:
		return config.PlayerHuman
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] <player> <player>\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "\toptions")
	fmt.Fprintln(os.Stderr, "\t\t-config <filename>\tYAML configuration")
	fmt.Fprintln(os.Stderr, "\t\t-board <filename>\tsaved board layout")
	fmt.Fprintln(os.Stderr, "\tplayer")
	fmt.Fprintln(os.Stderr, "\t\tn == ai player, (n)egamax")
	fmt.Fprintln(os.Stderr, "\t\ta == ai player, negamax-(a)lphabeta")
	fmt.Fprintln(os.Stderr, "\t\th == (h)uman player")
}

// initLogger builds the JSON logger. It writes to stderr so log lines do not
// interleave with the board rendering on stdout.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
