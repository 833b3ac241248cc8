package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"DEBUG":   true,
	"INFO":    true,
	"WARNING": true,
	"ERROR":   true,
}

// Validate checks the merged configuration for out-of-range values. It is
// called after every load, reload, and user override merge.
func Validate(cfg *Config) error {
	if err := validateSystem(&cfg.System); err != nil {
		return err
	}
	if err := validateAPI(&cfg.API); err != nil {
		return err
	}
	if err := validateMemory(&cfg.Memory); err != nil {
		return err
	}
	return validateProcessing(&cfg.Conversation.Processing)
}

func validateSystem(sys *SystemConfig) error {
	level := strings.ToUpper(sys.LogLevel)
	if !validLogLevels[level] {
		return NewValidationError("system", "log_level",
			fmt.Errorf("%w: %q", ErrInvalidValue, sys.LogLevel))
	}
	sys.LogLevel = level
	if sys.SessionTTLHours < 0 {
		return NewValidationError("system", "session_ttl_hours",
			fmt.Errorf("%w: must be >= 0", ErrInvalidValue))
	}
	return nil
}

func validateAPI(api *APIConfig) error {
	if api.Temperature < 0 || api.Temperature > 2 {
		return NewValidationError("api", "temperature",
			fmt.Errorf("%w: must be in [0, 2]", ErrInvalidValue))
	}
	if api.MaxTokens < 1 || api.MaxTokens > 8192 {
		return NewValidationError("api", "max_tokens",
			fmt.Errorf("%w: must be in [1, 8192]", ErrInvalidValue))
	}
	if api.MaxHistoryRounds < 1 || api.MaxHistoryRounds > 100 {
		return NewValidationError("api", "max_history_rounds",
			fmt.Errorf("%w: must be in [1, 100]", ErrInvalidValue))
	}
	if api.TimeoutS < 0 || api.TimeoutS > 300 {
		return NewValidationError("api", "timeout_s",
			fmt.Errorf("%w: must be in [0, 300]", ErrInvalidValue))
	}
	return nil
}

func validateMemory(mem *MemoryConfig) error {
	warm := &mem.WarmLayer
	if warm.ClusteringThreshold < 0 || warm.ClusteringThreshold > 1 {
		return NewValidationError("memory", "warm_layer.clustering_threshold",
			fmt.Errorf("%w: must be in [0, 1]", ErrInvalidValue))
	}
	if warm.MinClusterSize < 1 {
		return NewValidationError("memory", "warm_layer.min_cluster_size",
			fmt.Errorf("%w: must be >= 1", ErrInvalidValue))
	}
	gating := &mem.Gating
	if gating.RecallFilter.MaxQueryChars < 64 {
		return NewValidationError("memory", "gating.recall_filter.max_query_chars",
			fmt.Errorf("%w: must be >= 64", ErrInvalidValue))
	}
	if gating.Dedupe.RecentWriteCacheSize < 100 {
		return NewValidationError("memory", "gating.dedupe.recent_write_cache_size",
			fmt.Errorf("%w: must be >= 100", ErrInvalidValue))
	}
	maint := &mem.Maintenance
	if maint.MinImportance < 0 || maint.MinImportance > 1 {
		return NewValidationError("memory", "maintenance.min_importance",
			fmt.Errorf("%w: must be in [0, 1]", ErrInvalidValue))
	}
	return nil
}

func validateProcessing(p *ProcessingConfig) error {
	if p.MaxQueueSize < 1 {
		return NewValidationError("conversation", "processing.max_queue_size",
			fmt.Errorf("%w: must be >= 1", ErrInvalidValue))
	}
	if p.MaxRetries < 0 {
		return NewValidationError("conversation", "processing.max_retries",
			fmt.Errorf("%w: must be >= 0", ErrInvalidValue))
	}
	if p.RetryBaseDelayS < 0 || p.RetryMaxDelayS < 0 {
		return NewValidationError("conversation", "processing.retry_base_delay_s",
			fmt.Errorf("%w: delays must be >= 0", ErrInvalidValue))
	}
	if p.WorkerIdleTTLS <= 0 {
		return NewValidationError("conversation", "processing.worker_idle_ttl_s",
			fmt.Errorf("%w: must be > 0", ErrInvalidValue))
	}
	return nil
}
