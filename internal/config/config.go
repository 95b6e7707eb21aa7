package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/youtube-rag-chatbot/internal/models"
)

// Option customizes Load
type Option func(*options)

type options struct {
	envFiles []string
	secrets  SecretsProvider
	logger   zerolog.Logger
}

// WithEnvFiles replaces the list of .env files to read. No arguments disables .env loading.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.envFiles = paths
	}
}

// WithSecrets sets the hosted secrets store instead of detecting it
func WithSecrets(secrets SecretsProvider) Option {
	return func(o *options) {
		o.secrets = secrets
	}
}

// WithLogger sets the logger used while loading
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Load resolves the application configuration.
// It only fails when a .env file exists but cannot be parsed.
// Precedence: environment > .env file > hosted secrets store > defaults.
// Values loaded from .env and the secrets store are written into the process environment.
func Load(opts ...Option) (*models.AppConfig, error) {
	o := &options{
		envFiles: []string{DefaultEnvFile},
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	logger := o.logger.With().Str("component", "config").Logger()

	preset := presentVars()

	// 1. .env files never override variables that are already set
	fromDotenv, err := loadEnvFiles(o.envFiles, logger)
	if err != nil {
		return nil, err
	}

	// 2. Hosted secrets store, same rule
	secrets := o.secrets
	if secrets == nil {
		secrets, err = DetectSecrets()
		if err != nil {
			logger.Warn().Err(err).Msg("Secrets store unavailable, using environment only")
			secrets = NoSecrets{}
		}
	}
	if fileSecrets, ok := secrets.(*FileSecrets); ok {
		logger.Debug().Strs("paths", fileSecrets.Paths()).Msg("Using Streamlit secrets files")
	}
	fromSecrets := applySecrets(secrets, logger)

	// 3. Defaults overlaid with the environment, invalid overrides keep the default
	config, rejected := resolve(logger)

	sources := resolveSources(preset, fromDotenv, fromSecrets)
	for name := range rejected {
		sources[name] = models.SourceDefault
	}

	logger.Debug().
		Int("dotenv_vars", len(fromDotenv)).
		Int("secrets_vars", len(fromSecrets)).
		Int("rejected_vars", len(rejected)).
		Msg("Configuration resolved")

	return config.WithSources(sources), nil
}

// defaultConfig returns a config filled with hard-coded defaults
func defaultConfig() *models.AppConfig {
	return &models.AppConfig{
		HuggingFace: models.HuggingFaceConfig{
			LLMModel:       DefaultLLMModel,
			EmbeddingModel: DefaultEmbeddingModel,
		},
		Chroma: models.ChromaConfig{
			PersistDirectory: DefaultChromaPersistDirectory,
			CollectionName:   DefaultChromaCollectionName,
		},
		Splitter: models.SplitterConfig{
			ChunkSize:    DefaultChunkSize,
			ChunkOverlap: DefaultChunkOverlap,
		},
		RAG: models.RAGConfig{
			RetrievalK:   DefaultRetrievalK,
			Temperature:  DefaultLLMTemperature,
			MaxNewTokens: DefaultLLMMaxNewTokens,
		},
		UI: models.UIConfig{
			PageTitle: DefaultPageTitle,
			PageIcon:  DefaultPageIcon,
		},
		LogLevel:    DefaultLogLevel,
		Environment: DefaultEnvironment,
	}
}

// loadEnvFiles reads .env files and sets variables missing from the environment.
// Missing files are skipped, malformed ones are an error.
func loadEnvFiles(paths []string, logger zerolog.Logger) (map[string]bool, error) {
	loaded := make(map[string]bool)

	for _, path := range paths {
		values, err := godotenv.Read(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logger.Debug().Str("path", path).Msg("No .env file found")
				continue
			}
			return nil, fmt.Errorf("failed to load env file %s: %w", path, err)
		}

		for key, value := range values {
			if _, ok := os.LookupEnv(key); ok {
				continue
			}
			if err := os.Setenv(key, value); err != nil {
				return nil, fmt.Errorf("failed to set %s from %s: %w", key, path, err)
			}
			loaded[key] = true
		}

		logger.Debug().
			Str("path", path).
			Int("vars", len(values)).
			Msg("Loaded .env file")
	}

	return loaded, nil
}

// applySecrets copies secrets into the environment for names that are not defined yet
func applySecrets(secrets SecretsProvider, logger zerolog.Logger) map[string]bool {
	applied := make(map[string]bool)

	for _, name := range SecretNames {
		if _, ok := os.LookupEnv(name); ok {
			continue
		}
		value, ok := secrets.Lookup(name)
		if !ok {
			continue
		}
		if err := os.Setenv(name, value); err != nil {
			logger.Warn().Err(err).Str("name", name).Msg("Failed to export secret")
			continue
		}
		applied[name] = true
	}

	return applied
}

// presentVars returns tracked variables that hold a value before loading
func presentVars() map[string]bool {
	present := make(map[string]bool)
	for _, name := range trackedNames {
		if os.Getenv(name) != "" {
			present[name] = true
		}
	}
	return present
}

// resolveSources records where each tracked value came from.
// Empty variables do not override defaults, so they count as unset.
func resolveSources(preset, fromDotenv, fromSecrets map[string]bool) map[string]models.ValueSource {
	sources := make(map[string]models.ValueSource, len(trackedNames))

	for _, name := range trackedNames {
		switch {
		case os.Getenv(name) == "":
			sources[name] = models.SourceDefault
		case preset[name]:
			sources[name] = models.SourceEnv
		case fromDotenv[name]:
			sources[name] = models.SourceDotenv
		case fromSecrets[name]:
			sources[name] = models.SourceSecrets
		default:
			sources[name] = models.SourceEnv
		}
	}

	return sources
}

// resolve applies environment overrides to the defaults one variable at a time.
// An override that does not parse or fails its check is logged and ignored.
func resolve(logger zerolog.Logger) (*models.AppConfig, map[string]bool) {
	config := defaultConfig()
	rejected := make(map[string]bool)

	for _, name := range trackedNames {
		value := os.Getenv(name)
		if value == "" {
			continue
		}

		candidate := *config
		err := env.ParseWithOptions(&candidate, env.Options{
			Environment: map[string]string{name: value},
		})
		if err == nil {
			if check, ok := checks[name]; ok {
				err = check(&candidate)
			}
		}
		if err != nil {
			logger.Warn().
				Err(err).
				Str("variable", name).
				Str("value", redact(name, value)).
				Msg("Invalid configuration value, using default")
			rejected[name] = true
			continue
		}

		*config = candidate
	}

	// Overlap is checked against the final chunk size
	if config.Splitter.ChunkOverlap >= config.Splitter.ChunkSize {
		logger.Warn().
			Int("chunk_size", config.Splitter.ChunkSize).
			Int("chunk_overlap", config.Splitter.ChunkOverlap).
			Msgf("%s must be less than %s, using defaults", EnvChunkOverlap, EnvChunkSize)
		config.Splitter = models.SplitterConfig{
			ChunkSize:    DefaultChunkSize,
			ChunkOverlap: DefaultChunkOverlap,
		}
		rejected[EnvChunkSize] = true
		rejected[EnvChunkOverlap] = true
	}

	return config, rejected
}

// checks validates single overrides after parsing
var checks = map[string]func(*models.AppConfig) error{
	EnvChunkSize: func(c *models.AppConfig) error {
		return positive(EnvChunkSize, c.Splitter.ChunkSize)
	},
	EnvChunkOverlap: func(c *models.AppConfig) error {
		if c.Splitter.ChunkOverlap < 0 {
			return fmt.Errorf("%s must not be negative, got %d", EnvChunkOverlap, c.Splitter.ChunkOverlap)
		}
		return nil
	},
	EnvRetrievalK: func(c *models.AppConfig) error {
		return positive(EnvRetrievalK, c.RAG.RetrievalK)
	},
	EnvLLMTemperature: func(c *models.AppConfig) error {
		if c.RAG.Temperature < 0 {
			return fmt.Errorf("%s must not be negative, got %g", EnvLLMTemperature, c.RAG.Temperature)
		}
		return nil
	},
	EnvLLMMaxNewTokens: func(c *models.AppConfig) error {
		return positive(EnvLLMMaxNewTokens, c.RAG.MaxNewTokens)
	},
	EnvLogLevel: func(c *models.AppConfig) error {
		level := strings.ToLower(strings.TrimSpace(c.LogLevel))
		if level == "warning" {
			level = zerolog.WarnLevel.String()
		}
		parsed, err := zerolog.ParseLevel(level)
		if err != nil || parsed == zerolog.NoLevel {
			return fmt.Errorf("%s is not a valid log level: %q", EnvLogLevel, c.LogLevel)
		}
		c.LogLevel = parsed.String()
		return nil
	},
}

func positive(name string, value int) error {
	if value <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, value)
	}
	return nil
}

// redact hides secret values in log output
func redact(name, value string) string {
	for _, secret := range SecretNames {
		if name == secret {
			return "***"
		}
	}
	return value
}
