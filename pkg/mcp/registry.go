package mcp

import (
	"fmt"
	"sort"
	"sync"
)

// Transport types supported for MCP servers.
const (
	TransportTypeStdio = "stdio"
	TransportTypeHTTP  = "http"
	TransportTypeSSE   = "sse"
)

// TransportConfig describes how to reach one MCP server.
type TransportConfig struct {
	Type string `json:"type"`

	// stdio
	Command string            `json:"command,omitempty"`
	Args    []string          `json:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty"`

	// http / sse
	URL         string `json:"url,omitempty"`
	BearerToken string `json:"bearer_token,omitempty"`
	VerifySSL   *bool  `json:"verify_ssl,omitempty"`
	TimeoutS    int    `json:"timeout_s,omitempty"`
}

// ServerConfig is one registered MCP server.
type ServerConfig struct {
	ID        string          `json:"id"`
	Transport TransportConfig `json:"transport"`
}

// Registry holds the known MCP servers. Extension manifests register
// servers here at load time; the client resolves them lazily.
type Registry struct {
	mu      sync.RWMutex
	servers map[string]ServerConfig
}

// NewRegistry creates a registry, optionally pre-populated.
func NewRegistry(servers []ServerConfig) *Registry {
	r := &Registry{servers: make(map[string]ServerConfig, len(servers))}
	for _, s := range servers {
		r.servers[s.ID] = s
	}
	return r
}

// ValidateServerConfig checks a server entry without registering it.
func ValidateServerConfig(cfg ServerConfig) error {
	if cfg.ID == "" {
		return fmt.Errorf("mcp server config requires an id")
	}
	if err := validateTransport(cfg.Transport); err != nil {
		return fmt.Errorf("mcp server %q: %w", cfg.ID, err)
	}
	return nil
}

// Register adds or replaces a server entry.
func (r *Registry) Register(cfg ServerConfig) error {
	if err := ValidateServerConfig(cfg); err != nil {
		return err
	}
	r.mu.Lock()
	r.servers[cfg.ID] = cfg
	r.mu.Unlock()
	return nil
}

// Get returns the config for a server id.
func (r *Registry) Get(id string) (ServerConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cfg, ok := r.servers[id]
	if !ok {
		return ServerConfig{}, fmt.Errorf("unknown mcp server %q", id)
	}
	return cfg, nil
}

// Has reports whether a server id is registered.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.servers[id]
	return ok
}

// IDs returns all registered server ids, sorted.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.servers))
	for id := range r.servers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func validateTransport(cfg TransportConfig) error {
	switch cfg.Type {
	case TransportTypeStdio:
		if cfg.Command == "" {
			return fmt.Errorf("stdio transport requires command")
		}
	case TransportTypeHTTP, TransportTypeSSE:
		if cfg.URL == "" {
			return fmt.Errorf("%s transport requires url", cfg.Type)
		}
	default:
		return fmt.Errorf("unsupported transport type %q", cfg.Type)
	}
	return nil
}
