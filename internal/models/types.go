package models

// ValueSource tells where a configuration value was resolved from
type ValueSource string

const (
	// SourceDefault means no override was found and the hard-coded default is used
	SourceDefault ValueSource = "default"

	// SourceEnv means the variable was already set in the process environment
	SourceEnv ValueSource = "env"

	// SourceDotenv means the variable was loaded from a .env file
	SourceDotenv ValueSource = "dotenv"

	// SourceSecrets means the variable was copied from the hosted secrets store
	SourceSecrets ValueSource = "secrets"
)

// String returns string representation of ValueSource
func (s ValueSource) String() string {
	return string(s)
}

// HuggingFaceConfig holds the hosted inference provider settings
type HuggingFaceConfig struct {
	APIToken       string `env:"HUGGINGFACE_API_TOKEN"`
	LLMModel       string `env:"HUGGINGFACE_LLM_MODEL"`
	EmbeddingModel string `env:"HUGGINGFACE_EMBEDDING_MODEL"`
}

// OpenAIConfig holds the optional alternate provider settings
type OpenAIConfig struct {
	APIKey string `env:"OPENAI_API_KEY"`
}

// ChromaConfig holds the vector store settings
type ChromaConfig struct {
	PersistDirectory string `env:"CHROMA_PERSIST_DIRECTORY"`
	CollectionName   string `env:"CHROMA_COLLECTION_NAME"`
}

// SplitterConfig holds transcript chunking parameters, both in characters
type SplitterConfig struct {
	ChunkSize    int `env:"CHUNK_SIZE"`
	ChunkOverlap int `env:"CHUNK_OVERLAP"`
}

// RAGConfig holds retrieval and generation parameters
type RAGConfig struct {
	RetrievalK   int     `env:"RETRIEVAL_K"`
	Temperature  float32 `env:"LLM_TEMPERATURE"`
	MaxNewTokens int     `env:"LLM_MAX_NEW_TOKENS"`
}

// UIConfig holds the web UI display settings
type UIConfig struct {
	PageTitle string `env:"PAGE_TITLE"`
	PageIcon  string `env:"PAGE_ICON"`
}

// AppConfig represents the resolved application configuration.
// It is built once at startup by config.Load and must be treated as read-only;
// pass it by value to consumers that must not share it.
type AppConfig struct {
	HuggingFace HuggingFaceConfig
	OpenAI      OpenAIConfig
	Chroma      ChromaConfig
	Splitter    SplitterConfig
	RAG         RAGConfig
	UI          UIConfig

	// App settings
	LogLevel    string `env:"LOG_LEVEL"`
	Environment string `env:"ENVIRONMENT"`

	// sources maps env var names to the origin of their value
	sources map[string]ValueSource
}

// WithSources returns a copy of the config carrying its own copy of sources
func (c AppConfig) WithSources(sources map[string]ValueSource) *AppConfig {
	c.sources = make(map[string]ValueSource, len(sources))
	for name, src := range sources {
		c.sources[name] = src
	}
	return &c
}

// Sources returns a copy of the value origins keyed by env var name
func (c *AppConfig) Sources() map[string]ValueSource {
	sources := make(map[string]ValueSource, len(c.sources))
	for name, src := range c.sources {
		sources[name] = src
	}
	return sources
}

// HasHuggingFaceToken reports whether the inference provider token is configured
func (c *AppConfig) HasHuggingFaceToken() bool {
	return c.HuggingFace.APIToken != ""
}

// HasOpenAIKey reports whether the alternate provider key is configured
func (c *AppConfig) HasOpenAIKey() bool {
	return c.OpenAI.APIKey != ""
}

// SourceOf returns where the value of the given env var came from
func (c *AppConfig) SourceOf(name string) ValueSource {
	if src, ok := c.sources[name]; ok {
		return src
	}
	return SourceDefault
}
