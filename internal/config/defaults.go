package config

// Environment variable names
const (
	// Secrets
	EnvHuggingFaceAPIToken = "HUGGINGFACE_API_TOKEN"
	EnvOpenAIAPIKey        = "OPENAI_API_KEY"

	// Models
	EnvHuggingFaceLLMModel       = "HUGGINGFACE_LLM_MODEL"
	EnvHuggingFaceEmbeddingModel = "HUGGINGFACE_EMBEDDING_MODEL"

	// Vector store
	EnvChromaPersistDirectory = "CHROMA_PERSIST_DIRECTORY"
	EnvChromaCollectionName   = "CHROMA_COLLECTION_NAME"

	// Text splitting
	EnvChunkSize    = "CHUNK_SIZE"
	EnvChunkOverlap = "CHUNK_OVERLAP"

	// Retrieval and generation
	EnvRetrievalK      = "RETRIEVAL_K"
	EnvLLMTemperature  = "LLM_TEMPERATURE"
	EnvLLMMaxNewTokens = "LLM_MAX_NEW_TOKENS"

	// UI
	EnvPageTitle = "PAGE_TITLE"
	EnvPageIcon  = "PAGE_ICON"

	// App
	EnvLogLevel    = "LOG_LEVEL"
	EnvEnvironment = "ENVIRONMENT"
)

// Default values
const (
	// DefaultLLMModel is the chat model served by the HuggingFace inference API
	DefaultLLMModel = "meta-llama/Llama-3.1-8B-Instruct"

	// DefaultEmbeddingModel is the sentence embedding model (384 dimensions)
	DefaultEmbeddingModel = "intfloat/e5-small-v2"

	// DefaultChromaPersistDirectory is where the vector store keeps its files
	DefaultChromaPersistDirectory = "./chroma_db"

	// DefaultChromaCollectionName is the collection holding transcript chunks
	DefaultChromaCollectionName = "youtube_transcripts"

	// DefaultChunkSize is the transcript chunk size in characters
	DefaultChunkSize = 1000

	// DefaultChunkOverlap is the overlap between consecutive chunks in characters
	DefaultChunkOverlap = 200

	// DefaultRetrievalK is the number of documents to retrieve per query
	DefaultRetrievalK = 4

	// DefaultLLMTemperature is the generation sampling temperature
	DefaultLLMTemperature float32 = 0.2

	// DefaultLLMMaxNewTokens is the maximum number of generated tokens per response
	DefaultLLMMaxNewTokens = 512

	DefaultPageTitle = "YouTube Video Chatbot"
	DefaultPageIcon  = "🎥"

	DefaultLogLevel    = "info"
	DefaultEnvironment = "production"
)

// DefaultEnvFile is the .env file read from the working directory
const DefaultEnvFile = ".env"

// SecretNames lists the variables that may be supplied by the hosted secrets store
var SecretNames = []string{
	EnvHuggingFaceAPIToken,
	EnvOpenAIAPIKey,
}

// trackedNames lists every variable whose source is recorded in AppConfig.Sources
var trackedNames = []string{
	EnvHuggingFaceAPIToken,
	EnvOpenAIAPIKey,
	EnvHuggingFaceLLMModel,
	EnvHuggingFaceEmbeddingModel,
	EnvChromaPersistDirectory,
	EnvChromaCollectionName,
	EnvChunkSize,
	EnvChunkOverlap,
	EnvRetrievalK,
	EnvLLMTemperature,
	EnvLLMMaxNewTokens,
	EnvPageTitle,
	EnvPageIcon,
	EnvLogLevel,
	EnvEnvironment,
}
