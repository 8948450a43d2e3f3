package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"termtris/client"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/joho/godotenv"
	"golang.org/x/term"
)

const envPrefix = "TERMTRIS_"

type config struct {
	name    string
	seed    uint64
	noGhost bool
	logFile string
	debug   bool
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "termtris: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("unable to load .env file: %w", err)
	}
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("stdin is not a terminal")
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debug("starting", slog.String("name", cfg.name), slog.Uint64("seed", cfg.seed))
	c, err := client.New(logger, &client.Options{
		Name:    cfg.name,
		NoGhost: cfg.noGhost,
		Seed:    cfg.seed,
	})
	if err != nil {
		return fmt.Errorf("unable to start client: %w", err)
	}
	return c.Start(ctx)
}

// parseFlags reads the command line. Flag defaults come from TERMTRIS_*
// environment variables when they are set.
func parseFlags(args []string) (*config, error) {
	seed, err := envUint("SEED")
	if err != nil {
		return nil, err
	}
	noGhost, err := envBool("NOGHOST")
	if err != nil {
		return nil, err
	}
	debug, err := envBool("DEBUG")
	if err != nil {
		return nil, err
	}
	name := os.Getenv(envPrefix + "NAME")
	if name == "" {
		name = petname.Generate(2, "-")
	}

	cfg := &config{}
	flags := flag.NewFlagSet("termtris", flag.ContinueOnError)
	flags.StringVar(&cfg.name, "name", name, "player name shown next to the field")
	flags.Uint64Var(&cfg.seed, "seed", seed, "seed for the tetromino sequence, 0 picks one from the clock")
	flags.BoolVar(&cfg.noGhost, "noghost", noGhost, "hide the ghost of the falling tetromino")
	flags.StringVar(&cfg.logFile, "log", os.Getenv(envPrefix+"LOG"), "write JSON logs to this file")
	flags.BoolVar(&cfg.debug, "debug", debug, "log at debug level")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if cfg.seed == 0 {
		cfg.seed = uint64(time.Now().UnixNano()) //nolint:gosec
	}
	return cfg, nil
}

func envUint(key string) (uint64, error) {
	v := os.Getenv(envPrefix + key)
	if v == "" {
		return 0, nil
	}
	u, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s%s: %w", envPrefix, key, err)
	}
	return u, nil
}

func envBool(key string) (bool, error) {
	v := os.Getenv(envPrefix + key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s%s: %w", envPrefix, key, err)
	}
	return b, nil
}

// newLogger writes JSON logs to the configured file. Without a file the
// logs are discarded since stdout belongs to the game.
func newLogger(cfg *config) (*slog.Logger, func(), error) {
	if cfg.logFile == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(cfg.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to open log file: %w", err)
	}
	level := slog.LevelInfo
	if cfg.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	closeLog := func() {
		f.Close() //nolint:errcheck
	}
	return logger, closeLog, nil
}
