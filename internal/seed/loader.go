package seed

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"inventory-api/internal/model"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for fixture files on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based fixture loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "seed-loader").Logger(),
	}
}

// Load reads a fixture file with one JSON product object per line.
// Files ending in .gz are gunzipped first.
func (l *fileLoader) Load(ctx context.Context, filePath string) ([]model.ProductFields, error) {
	l.logger.Info().Str("file", filePath).Msg("loading fixture file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open fixture file")
		return nil, fmt.Errorf("failed to open fixture file %s: %w", filePath, err)
	}
	defer file.Close()

	fixtures, err := decodeFixtures(ctx, file, filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read fixture file")
		return nil, err
	}

	l.logger.Info().
		Str("file", filePath).
		Int("fixtures_loaded", len(fixtures)).
		Msg("fixture file loaded successfully")

	return fixtures, nil
}

// decodeFixtures parses JSON-lines fixtures from r. name decides whether
// the stream is gzipped and labels errors.
func decodeFixtures(ctx context.Context, r io.Reader, name string) ([]model.ProductFields, error) {
	if strings.HasSuffix(name, ".gz") {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", name, err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	fixtures := []model.ProductFields{}
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var fields model.ProductFields
		if err := json.Unmarshal([]byte(line), &fields); err != nil {
			return nil, fmt.Errorf("invalid fixture on line %d of %s: %w", lineNo, name, err)
		}
		fixtures = append(fixtures, fields)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading fixtures from %s: %w", name, err)
	}

	return fixtures, nil
}
