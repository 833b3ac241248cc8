package config

import "time"

// Config is the umbrella configuration object: system defaults merged with
// (optional) per-user overrides. This is the primary object returned by
// Load() and used throughout the gateway.
type Config struct {
	System       SystemConfig       `json:"system"`
	API          APIConfig          `json:"api"`
	Prompts      PromptsConfig      `json:"prompts"`
	Memory       MemoryConfig       `json:"memory"`
	Conversation ConversationConfig `json:"conversation"`
	Server       ServerConfig       `json:"server"`
	LLM          LLMServiceConfig   `json:"llm"`
	Channels     ChannelsConfig     `json:"channels"`

	// Per-user identity overrides. Empty at the system level; populated by
	// user override files.
	AgentName    string `json:"agent_name,omitempty"`
	SystemPrompt string `json:"system_prompt,omitempty"`
}

// SystemConfig groups process-wide settings.
type SystemConfig struct {
	Version         string `json:"version"`
	DataDir         string `json:"data_dir"`
	ExtensionsDir   string `json:"extensions_dir"`
	StreamMode      bool   `json:"stream_mode"`
	Debug           bool   `json:"debug"`
	LogLevel        string `json:"log_level"`
	SessionTTLHours int    `json:"session_ttl_hours"`
}

// APIConfig holds the main LLM API settings. The API key itself is never
// stored in configuration files; APIKeyEnv names the environment variable
// that carries it.
type APIConfig struct {
	APIKeyEnv        string  `json:"api_key_env"`
	BaseURL          string  `json:"base_url"`
	Model            string  `json:"model"`
	Temperature      float64 `json:"temperature"`
	MaxTokens        int     `json:"max_tokens"`
	MaxHistoryRounds int     `json:"max_history_rounds"`
	TimeoutS         int     `json:"timeout_s"`
}

// PromptsConfig holds the base system prompt templates.
type PromptsConfig struct {
	System string `json:"system"`
}

// MemoryConfig groups everything related to the long-term memory subsystem.
type MemoryConfig struct {
	Enabled     bool                    `json:"enabled"`
	Graph       GraphConfig             `json:"graph"`
	API         MemoryAPIConfig         `json:"api"`
	HotLayer    HotLayerConfig          `json:"hot_layer"`
	WarmLayer   WarmLayerConfig         `json:"warm_layer"`
	ColdLayer   ColdLayerConfig         `json:"cold_layer"`
	Gating      MemoryGatingConfig      `json:"gating"`
	Maintenance MemoryMaintenanceConfig `json:"maintenance"`
}

// GraphConfig holds graph database connection settings. The database URL is
// resolved from the environment variable named by DatabaseURLEnv when set,
// falling back to DatabaseURL.
type GraphConfig struct {
	Enabled         bool   `json:"enabled"`
	DatabaseURL     string `json:"database_url"`
	DatabaseURLEnv  string `json:"database_url_env"`
	ConnectTimeoutS int    `json:"connect_timeout_s"`
}

// MemoryAPIConfig configures the classifier/summary LLM. When UseMainAPI is
// true the main APIConfig is used instead.
type MemoryAPIConfig struct {
	UseMainAPI bool   `json:"use_main_api"`
	APIKeyEnv  string `json:"api_key_env"`
	BaseURL    string `json:"base_url"`
	Model      string `json:"model"`
}

// HotLayerConfig tunes layer-0 fact extraction.
type HotLayerConfig struct {
	MaxTuplesPerMessage  int     `json:"max_tuples_per_message"`
	MinConfidence        float64 `json:"min_confidence"`
	MessageRetentionDays int     `json:"message_retention_days"`
	MessageCleanupBatch  int     `json:"message_cleanup_batch"`
}

// WarmLayerConfig tunes layer-1 concept clustering.
type WarmLayerConfig struct {
	Enabled                bool    `json:"enabled"`
	EmbeddingModel         string  `json:"embedding_model"`
	ClusteringThreshold    float64 `json:"clustering_threshold"`
	MinClusterSize         int     `json:"min_cluster_size"`
	MaxConcepts            int     `json:"max_concepts"`
	ClusterEveryMessages   int     `json:"cluster_every_messages"`
	ClusterMinIntervalS    int     `json:"cluster_min_interval_s"`
	IdleClusterDelayS      int     `json:"idle_cluster_delay_s"`
	IdleClusterMinMessages int     `json:"idle_cluster_min_messages"`
}

// ColdLayerConfig tunes layer-2 session summarization.
type ColdLayerConfig struct {
	SummaryModel         string `json:"summary_model"`
	MaxSummaryLength     int    `json:"max_summary_length"`
	CompressionThreshold int    `json:"compression_threshold"`
}

// MemoryGatingConfig groups the cheap code-level gates that run before any
// LLM call on the memory paths.
type MemoryGatingConfig struct {
	RecallFilter RecallFilterConfig `json:"recall_filter"`
	WriteFilter  WriteFilterConfig  `json:"write_filter"`
	Dedupe       DedupeConfig       `json:"dedupe"`
}

// RecallFilterConfig gates query-time recall.
type RecallFilterConfig struct {
	Enabled       bool `json:"enabled"`
	MinQueryChars int  `json:"min_query_chars"`
	MaxQueryChars int  `json:"max_query_chars"`
}

// WriteFilterConfig gates the interaction-completed write path.
type WriteFilterConfig struct {
	Enabled                       bool `json:"enabled"`
	MinUserChars                  int  `json:"min_user_chars"`
	MinAssistantCharsForShortUser int  `json:"min_assistant_chars_for_short_user"`
	MaxCombinedChars              int  `json:"max_combined_chars"`
}

// DedupeConfig tunes the recent-write cache and candidate filtering.
type DedupeConfig struct {
	RecentWriteCacheSize int `json:"recent_write_cache_size"`
	MinCandidateChars    int `json:"min_candidate_chars"`
}

// MemoryMaintenanceConfig tunes decay and forgetting sweeps.
type MemoryMaintenanceConfig struct {
	DecayIntervalS       int     `json:"decay_interval_s"`
	MinImportance        float64 `json:"min_importance"`
	CleanupBatchSize     int     `json:"cleanup_batch_size"`
	CleanupEveryMessages int     `json:"cleanup_every_messages"`
}

// ConversationConfig groups orchestrator settings.
type ConversationConfig struct {
	Processing ProcessingConfig `json:"processing"`
}

// ProcessingConfig controls per-session queues, retries, and worker lifetime.
type ProcessingConfig struct {
	MaxQueueSize    int     `json:"max_queue_size"`
	MaxRetries      int     `json:"max_retries"`
	RetryBaseDelayS float64 `json:"retry_base_delay_s"`
	RetryMaxDelayS  float64 `json:"retry_max_delay_s"`
	WorkerIdleTTLS  float64 `json:"worker_idle_ttl_s"`
}

// RetryBaseDelay returns the base backoff delay as a duration.
func (p ProcessingConfig) RetryBaseDelay() time.Duration {
	return time.Duration(p.RetryBaseDelayS * float64(time.Second))
}

// RetryMaxDelay returns the backoff cap as a duration.
func (p ProcessingConfig) RetryMaxDelay() time.Duration {
	return time.Duration(p.RetryMaxDelayS * float64(time.Second))
}

// WorkerIdleTTL returns the worker idle timeout as a duration.
func (p ProcessingConfig) WorkerIdleTTL() time.Duration {
	return time.Duration(p.WorkerIdleTTLS * float64(time.Second))
}

// ServerConfig holds HTTP/WebSocket listener settings.
type ServerConfig struct {
	ListenAddr       string   `json:"listen_addr"`
	AllowedWSOrigins []string `json:"allowed_ws_origins"`
}

// LLMServiceConfig points at the external LLM service spoken to over gRPC.
type LLMServiceConfig struct {
	Addr     string `json:"addr"`
	TimeoutS int    `json:"timeout_s"`
}

// ChannelsConfig groups channel adapter settings.
type ChannelsConfig struct {
	Web   WebChannelConfig   `json:"web"`
	Slack SlackChannelConfig `json:"slack"`
}

// WebChannelConfig configures the built-in WebSocket channel.
type WebChannelConfig struct {
	Enabled bool `json:"enabled"`
}

// SlackChannelConfig configures the Slack adapter. The bot token is read
// from the environment variable named by TokenEnv.
type SlackChannelConfig struct {
	Enabled  bool   `json:"enabled"`
	TokenEnv string `json:"token_env"`
	Channel  string `json:"channel"`
}
