package main

import (
	"os"
	"sort"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/youtube-rag-chatbot/internal/config"
	"github.com/youtube-rag-chatbot/internal/logging"
	"github.com/youtube-rag-chatbot/internal/models"
)

func main() {
	// Load configuration
	cfg, err := config.Load(config.WithLogger(log.Logger))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.Environment)
	reportConfig(logger, cfg)

	if !cfg.HasHuggingFaceToken() {
		logger.Warn().
			Str("variable", config.EnvHuggingFaceAPIToken).
			Msg("HuggingFace API token is not set, inference requests will be rejected")
	}
}

// reportConfig logs the effective configuration. Secret values are never logged.
func reportConfig(logger zerolog.Logger, cfg *models.AppConfig) {
	logger.Info().
		Str("environment", cfg.Environment).
		Bool("huggingface_token_set", cfg.HasHuggingFaceToken()).
		Bool("openai_key_set", cfg.HasOpenAIKey()).
		Str("llm_model", cfg.HuggingFace.LLMModel).
		Str("embedding_model", cfg.HuggingFace.EmbeddingModel).
		Str("chroma_dir", cfg.Chroma.PersistDirectory).
		Str("chroma_collection", cfg.Chroma.CollectionName).
		Int("chunk_size", cfg.Splitter.ChunkSize).
		Int("chunk_overlap", cfg.Splitter.ChunkOverlap).
		Int("retrieval_k", cfg.RAG.RetrievalK).
		Float32("temperature", cfg.RAG.Temperature).
		Int("max_new_tokens", cfg.RAG.MaxNewTokens).
		Str("page_title", cfg.UI.PageTitle).
		Str("page_icon", cfg.UI.PageIcon).
		Msg("Configuration loaded")

	sources := cfg.Sources()
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		logger.Debug().
			Str("variable", name).
			Str("source", sources[name].String()).
			Msg("Configuration source")
	}
}
