// Command manage bootstraps the products table: create, seed or drop.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"inventory-api/internal/config"
	"inventory-api/internal/database"
	"inventory-api/internal/model"
	"inventory-api/internal/repository"
	"inventory-api/internal/seed"

	"github.com/rs/zerolog"
)

const usage = "usage: manage <create|seed [-file path]|drop>"

var errUsage = errors.New(usage)

// command is a parsed invocation.
type command struct {
	name        string
	fixtureFile string
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cmd, err := parseArgs(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	switch cmd.name {
	case "create":
		if err := database.CreateSchema(ctx, pool); err != nil {
			return err
		}
		fmt.Fprintln(out, "Tables created")

	case "seed":
		fixtures, err := loadFixtures(ctx, cfg, cmd.fixtureFile, logger)
		if err != nil {
			return err
		}
		repo := repository.NewProductRepository(pool, logger)
		if _, err := seed.Seed(ctx, repo, fixtures, logger); err != nil {
			return err
		}
		fmt.Fprintln(out, "Tables seeded")

	case "drop":
		if err := database.DropSchema(ctx, pool); err != nil {
			return err
		}
		fmt.Fprintln(out, "Tables dropped")
	}

	return nil
}

// parseArgs validates the subcommand and its flags before anything
// touches the database.
func parseArgs(args []string) (command, error) {
	if len(args) == 0 {
		return command{}, errUsage
	}

	cmd := command{name: args[0]}
	switch cmd.name {
	case "create", "drop":
		if len(args) > 1 {
			return command{}, fmt.Errorf("%s takes no arguments: %w", cmd.name, errUsage)
		}

	case "seed":
		flags := flag.NewFlagSet("seed", flag.ContinueOnError)
		flags.SetOutput(io.Discard)
		flags.StringVar(&cmd.fixtureFile, "file", "", "JSON-lines fixture file, optionally gzipped")
		if err := flags.Parse(args[1:]); err != nil {
			return command{}, fmt.Errorf("seed: %v: %w", err, errUsage)
		}
		if flags.NArg() > 0 {
			return command{}, fmt.Errorf("seed: unexpected argument %q: %w", flags.Arg(0), errUsage)
		}

	default:
		return command{}, fmt.Errorf("unknown command %q: %w", cmd.name, errUsage)
	}

	return cmd, nil
}

// loadFixtures returns the built-in sample products when path is empty,
// otherwise reads path through S3 (when enabled) with a local fallback.
func loadFixtures(ctx context.Context, cfg *config.Config, path string, logger zerolog.Logger) ([]model.ProductFields, error) {
	if path == "" {
		return seed.DefaultProducts(), nil
	}

	fileLoader := seed.NewFileLoader(logger)

	var s3Loader seed.Loader
	if cfg.S3.Enabled {
		loader, err := seed.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		} else {
			s3Loader = loader
		}
	} else {
		logger.Info().Msg("using local file system for fixture files (S3 disabled)")
	}

	return seed.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, logger).Load(ctx, path)
}
