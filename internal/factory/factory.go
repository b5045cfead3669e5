package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/tinkergames/tinkerdeck/internal/dependencies/clock"
	"github.com/tinkergames/tinkerdeck/internal/dependencies/random"
	"github.com/tinkergames/tinkerdeck/internal/registry"
	"github.com/tinkergames/tinkerdeck/internal/registry/memory"
	redisregistry "github.com/tinkergames/tinkerdeck/internal/registry/redis"
	"github.com/tinkergames/tinkerdeck/internal/services/catalog"
	"github.com/tinkergames/tinkerdeck/internal/services/session"
)

// Registry type constants
const (
	RegistryTypeMemory = "memory"
	RegistryTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Registry
	Registry registry.Store

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	CatalogService    *catalog.Service
	SessionController *session.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// RegistryType selects the definition store backend ("memory" or "redis")
	// If empty, defaults to "memory"
	RegistryType string
	// RedisConfig holds Redis connection settings (required if RegistryType is "redis")
	RedisConfig *redisregistry.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create registry store based on type
	var store registry.Store
	registryType := cfg.RegistryType
	if registryType == "" {
		registryType = RegistryTypeMemory
	}

	switch registryType {
	case RegistryTypeMemory:
		store = memory.New()
	case RegistryTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when RegistryType is redis")
		}
		redisStore, err := redisregistry.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid RegistryType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, clk, rnd, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store registry.Store, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	catalogService := catalog.New(store, rnd, logger)
	sessionController := session.NewController(catalogService, clk, rnd, logger)

	return &App{
		Registry:          store,
		Clock:             clk,
		Random:            rnd,
		CatalogService:    catalogService,
		SessionController: sessionController,
	}
}
