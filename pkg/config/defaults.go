package config

// Default returns the built-in system configuration. Values mirror what the
// gateway ships with before config/default.json or user overrides apply.
func Default() *Config {
	return &Config{
		System:       DefaultSystemConfig(),
		API:          DefaultAPIConfig(),
		Prompts:      DefaultPromptsConfig(),
		Memory:       DefaultMemoryConfig(),
		Conversation: DefaultConversationConfig(),
		Server:       DefaultServerConfig(),
		LLM:          DefaultLLMServiceConfig(),
		Channels:     DefaultChannelsConfig(),
	}
}

// DefaultSystemConfig returns the built-in system defaults.
func DefaultSystemConfig() SystemConfig {
	return SystemConfig{
		Version:         "1.0",
		DataDir:         "data",
		ExtensionsDir:   "extensions",
		StreamMode:      true,
		LogLevel:        "INFO",
		SessionTTLHours: 0,
	}
}

// DefaultAPIConfig returns the built-in main LLM API defaults.
func DefaultAPIConfig() APIConfig {
	return APIConfig{
		APIKeyEnv:        "GATEWAY_API_KEY",
		BaseURL:          "https://openrouter.ai/api/v1",
		Model:            "nvidia/nemotron-3-nano-30b-a3b:free",
		Temperature:      0.7,
		MaxTokens:        2000,
		MaxHistoryRounds: 10,
		TimeoutS:         120,
	}
}

// DefaultPromptsConfig returns the built-in prompt defaults.
func DefaultPromptsConfig() PromptsConfig {
	return PromptsConfig{
		System: "You are a practical AI assistant. " +
			"For technical tasks, be precise and structured. " +
			"For normal conversation, remain clear and concise.",
	}
}

// DefaultMemoryConfig returns the built-in memory subsystem defaults.
// Memory is disabled until a graph database is configured.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		Enabled: false,
		Graph: GraphConfig{
			Enabled:         false,
			DatabaseURLEnv:  "GATEWAY_DATABASE_URL",
			ConnectTimeoutS: 3,
		},
		API: MemoryAPIConfig{
			UseMainAPI: true,
			APIKeyEnv:  "GATEWAY_MEMORY_API_KEY",
			BaseURL:    "https://openrouter.ai/api/v1",
		},
		HotLayer: HotLayerConfig{
			MaxTuplesPerMessage:  10,
			MinConfidence:        0.5,
			MessageRetentionDays: 30,
			MessageCleanupBatch:  200,
		},
		WarmLayer: WarmLayerConfig{
			Enabled:                true,
			EmbeddingModel:         "text-embedding-ada-002",
			ClusteringThreshold:    0.7,
			MinClusterSize:         3,
			MaxConcepts:            100,
			ClusterEveryMessages:   12,
			ClusterMinIntervalS:    300,
			IdleClusterDelayS:      120,
			IdleClusterMinMessages: 2,
		},
		ColdLayer: ColdLayerConfig{
			SummaryModel:         "gpt-4",
			MaxSummaryLength:     500,
			CompressionThreshold: 50,
		},
		Gating: MemoryGatingConfig{
			RecallFilter: RecallFilterConfig{
				Enabled:       true,
				MinQueryChars: 6,
				MaxQueryChars: 4000,
			},
			WriteFilter: WriteFilterConfig{
				Enabled:                       true,
				MinUserChars:                  4,
				MinAssistantCharsForShortUser: 20,
				MaxCombinedChars:              8000,
			},
			Dedupe: DedupeConfig{
				RecentWriteCacheSize: 2000,
				MinCandidateChars:    8,
			},
		},
		Maintenance: MemoryMaintenanceConfig{
			DecayIntervalS:       86400,
			MinImportance:        0.15,
			CleanupBatchSize:     100,
			CleanupEveryMessages: 100,
		},
	}
}

// DefaultConversationConfig returns the built-in orchestrator defaults.
func DefaultConversationConfig() ConversationConfig {
	return ConversationConfig{
		Processing: ProcessingConfig{
			MaxQueueSize:    32,
			MaxRetries:      2,
			RetryBaseDelayS: 1.0,
			RetryMaxDelayS:  30.0,
			WorkerIdleTTLS:  300.0,
		},
	}
}

// DefaultServerConfig returns the built-in listener defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		ListenAddr: ":8100",
	}
}

// DefaultLLMServiceConfig returns the built-in LLM service client defaults.
func DefaultLLMServiceConfig() LLMServiceConfig {
	return LLMServiceConfig{
		Addr:     "localhost:50051",
		TimeoutS: 120,
	}
}

// DefaultChannelsConfig returns the built-in channel adapter defaults.
func DefaultChannelsConfig() ChannelsConfig {
	return ChannelsConfig{
		Web: WebChannelConfig{Enabled: true},
		Slack: SlackChannelConfig{
			Enabled:  false,
			TokenEnv: "SLACK_BOT_TOKEN",
		},
	}
}
