// Package support loads process configuration from the environment.
package support

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/weegigs/wee-counter/we"
)

const ServiceName = "wee-counter"

type StoreKind string

const (
	FileStore   StoreKind = "file"
	MemoryStore StoreKind = "memory"
)

type Config struct {
	Port     int
	DataFile string
	Store    StoreKind
	LogLevel zerolog.Level
	Tracing  we.TracingOptions
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Lookup matches os.LookupEnv.
type Lookup func(key string) (string, bool)

func LoadConfig() (Config, error) {
	return ConfigFrom(os.LookupEnv)
}

func ConfigFrom(lookup Lookup) (Config, error) {
	get := func(key string, fallback string) string {
		if value, ok := lookup(key); ok && value != "" {
			return value
		}
		return fallback
	}

	port, err := strconv.Atoi(get("PORT", "3000"))
	if err != nil {
		return Config{}, errors.Wrap(err, "invalid PORT")
	}
	if port < 1 || port > 65535 {
		return Config{}, errors.Errorf("invalid PORT: %d is out of range", port)
	}

	store := StoreKind(get("STORE", string(FileStore)))
	if store != FileStore && store != MemoryStore {
		return Config{}, errors.Errorf("invalid STORE: %q", store)
	}

	level, err := zerolog.ParseLevel(get("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, errors.Wrap(err, "invalid LOG_LEVEL")
	}

	tracing := we.TracingOptions{
		Exporter:         we.Exporter(get("TRACE_EXPORTER", string(we.ExporterNone))),
		ServiceName:      ServiceName,
		HoneycombTeam:    get("HONEYCOMB_TEAM", ""),
		HoneycombDataset: get("HONEYCOMB_DATASET", ServiceName),
		JaegerEndpoint:   get("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
	}

	switch tracing.Exporter {
	case we.ExporterNone, we.ExporterConsole, we.ExporterJaeger:
	case we.ExporterHoneycomb:
		if tracing.HoneycombTeam == "" {
			return Config{}, errors.New("HONEYCOMB_TEAM is required for the honeycomb exporter")
		}
	default:
		return Config{}, errors.Errorf("invalid TRACE_EXPORTER: %q", tracing.Exporter)
	}

	return Config{
		Port:     port,
		DataFile: get("DATA_FILE", "data.json"),
		Store:    store,
		LogLevel: level,
		Tracing:  tracing,
	}, nil
}
