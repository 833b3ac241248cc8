// Gateway server — terminates client connections, routes conversations
// through the orchestrator, and fronts the memory, tool, and config
// subsystems.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/openconvo/gateway/pkg/agents"
	"github.com/openconvo/gateway/pkg/bus"
	"github.com/openconvo/gateway/pkg/channels"
	"github.com/openconvo/gateway/pkg/config"
	"github.com/openconvo/gateway/pkg/database"
	"github.com/openconvo/gateway/pkg/gateway"
	"github.com/openconvo/gateway/pkg/graph"
	"github.com/openconvo/gateway/pkg/llm"
	"github.com/openconvo/gateway/pkg/mcp"
	"github.com/openconvo/gateway/pkg/memory"
	"github.com/openconvo/gateway/pkg/metrics"
	"github.com/openconvo/gateway/pkg/orchestrator"
	"github.com/openconvo/gateway/pkg/plugins"
	"github.com/openconvo/gateway/pkg/sessions"
	"github.com/openconvo/gateway/pkg/tools"
	"github.com/openconvo/gateway/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// resolveGraphURL resolves the graph database connection string.
// Priority: named environment variable > configured URL.
func resolveGraphURL(cfg config.GraphConfig) string {
	if cfg.DatabaseURLEnv != "" {
		if url := os.Getenv(cfg.DatabaseURLEnv); url != "" {
			return url
		}
	}
	return cfg.DatabaseURL
}

func main() {
	os.Exit(run())
}

// run wires the process so deferred teardown executes in reverse
// dependency order before the exit code is returned.
func run() int {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./config"),
		"Path to configuration directory")
	listenAddr := flag.String("listen",
		getEnv("LISTEN_ADDR", ""),
		"Listen address (overrides server.listen_addr)")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	ctx := context.Background()
	b := bus.New()

	// 1. Configuration
	cfgSvc, err := config.NewService(*configDir, b)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}
	cfg := cfgSvc.System()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.System.LogLevel),
	}))
	slog.SetDefault(logger)

	watchCtx, stopWatch := context.WithCancel(ctx)
	defer stopWatch()
	cfgSvc.Watch(watchCtx)

	slog.Info("Starting gateway",
		"version", version.Full(),
		"config_dir", *configDir)

	meter := metrics.New(b)

	// 2. LLM client (lazy dialing; the connection is made on first RPC)
	llmClient, err := llm.NewGRPCClient(cfg.LLM.Addr)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", cfg.LLM.Addr, "error", err)
		return 1
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	slog.Info("LLM client initialized", "addr", cfg.LLM.Addr)

	// 3. Memory graph store. A missing or unreachable database degrades
	// to the in-memory store rather than failing startup.
	var store graph.Store = graph.NewMemStore()
	var dbClient *database.Client
	if cfg.Memory.Enabled && cfg.Memory.Graph.Enabled {
		url := resolveGraphURL(cfg.Memory.Graph)
		if url == "" {
			slog.Warn("Graph database URL not configured, using in-memory store")
		} else {
			connectTimeout := time.Duration(cfg.Memory.Graph.ConnectTimeoutS) * time.Second
			if connectTimeout <= 0 {
				connectTimeout = 10 * time.Second
			}
			connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
			dbClient, err = database.NewClient(connectCtx, database.DefaultConfig(url))
			cancel()
			if err != nil {
				slog.Warn("Graph database unavailable, using in-memory store", "error", err)
			} else {
				store = graph.NewEntStore(dbClient.Client)
				slog.Info("Connected to graph database")
			}
		}
	}
	if dbClient != nil {
		defer func() {
			if err := dbClient.Close(); err != nil {
				slog.Error("Error closing database client", "error", err)
			}
		}()
	}

	// 4. Memory service
	var memSvc *memory.Service
	if cfg.Memory.Enabled {
		memModel := llm.MemoryModelConfig(cfg.Memory.API, cfg.API)
		memCompleter := llm.NewModelCompleter(llmClient, memModel)
		memSvc = memory.NewService(cfg.Memory, memory.Deps{
			Store:      store,
			Extractor:  memory.NewLLMExtractor(memCompleter, logger),
			Classifier: memCompleter,
			Summarizer: memCompleter,
			Embedder:   llm.NewEmbeddings(llmClient, cfg.Memory.WarmLayer.EmbeddingModel),
			Bus:        b,
			Logger:     logger,
		})
		memSvc.Start()
		defer memSvc.Close()
		slog.Info("Memory service started")
	} else {
		slog.Info("Memory subsystem disabled")
	}

	// 5. Session manager
	var memSync sessions.MemorySync
	if memSvc != nil {
		memSync = memSvc
	}
	sessionPath := filepath.Join(cfg.System.DataDir, "sessions.json")
	sessionMgr := sessions.NewManager(sessionPath, cfg.API.MaxHistoryRounds, memSync)
	defer sessionMgr.Close()

	// 6. MCP registry and client; extensions fill the registry.
	mcpRegistry := mcp.NewRegistry(nil)
	mcpClient := mcp.NewClient(mcpRegistry, logger)
	defer func() {
		if err := mcpClient.Close(); err != nil {
			slog.Error("Error closing MCP client", "error", err)
		}
	}()

	// 7. Agent runner and tool service
	defs, err := agents.LoadDefinitions(*configDir)
	if err != nil {
		slog.Error("Failed to load agent definitions", "error", err)
		return 1
	}
	agentRunner := agents.NewRunner(llmClient, llm.MainModelConfig(cfg.API), nil, defs, logger)
	toolSvc := tools.NewService(agentRunner, mcpClient, b, logger)

	// 8. Extensions
	extensionsDir := cfg.System.ExtensionsDir
	if extensionsDir == "" {
		extensionsDir = filepath.Join(*configDir, "extensions")
	}
	loader := plugins.NewLoader(mcpRegistry, toolSvc, mcpClient, logger)
	report, err := loader.LoadDir(extensionsDir)
	if err != nil {
		slog.Error("Failed to scan extensions directory", "dir", extensionsDir, "error", err)
		return 1
	}
	for _, rej := range report.Rejected {
		slog.Warn("Extension rejected", "path", rej.Path, "reason", rej.Reason)
	}
	if len(report.Loaded) > 0 {
		slog.Info("Extensions loaded",
			"extensions", report.Loaded, "servers", report.Servers, "tools", report.Tools)
		mcpClient.Initialize(ctx)
	}

	// 9. Orchestrator
	var memProvider orchestrator.MemoryProvider
	var recall orchestrator.RecallDecider
	if memSvc != nil {
		memProvider = memSvc
		recall = llm.NewRecallClassifier(llmClient, llm.MemoryModelConfig(cfg.Memory.API, cfg.API), logger)
	}
	orch := orchestrator.New(orchestrator.Deps{
		Config:   cfgSvc,
		Bus:      b,
		Sessions: sessionMgr,
		Memory:   memProvider,
		Recall:   recall,
		Chat:     llm.NewChatLoop(llmClient, llm.MainModelConfig(cfg.API), logger),
		Tools:    toolSvc,
		Logger:   logger,
	})
	orch.Start()
	defer orch.Close()

	// 10. Channels
	registry := channels.NewRegistry(b, logger)
	var web *channels.Web
	if cfg.Channels.Web.Enabled {
		web = channels.NewWeb(b)
		registry.Register(web)
	}
	if cfg.Channels.Slack.Enabled {
		token := os.Getenv(cfg.Channels.Slack.TokenEnv)
		if token == "" {
			slog.Warn("Slack channel enabled but token is not set",
				"token_env", cfg.Channels.Slack.TokenEnv)
		} else {
			registry.Register(channels.NewSlack(token, cfg.Channels.Slack.Channel, b, logger))
		}
	}

	// 11. Gateway and HTTP server
	var memAPI gateway.MemoryAPI
	if memSvc != nil {
		memAPI = memSvc
	}
	gw := gateway.New(gateway.Deps{
		Config:     cfgSvc,
		Bus:        b,
		Sessions:   sessionMgr,
		Memory:     memAPI,
		Tools:      toolSvc,
		Agents:     agentRunner,
		AgentNames: agentRunner.Names(),
		Channels:   registry,
		Confirmer:  orch,
		Metrics:    meter,
		Logger:     logger,
	})
	conns := gateway.NewConnectionManager(gw, b, logger)
	connCtx, stopConns := context.WithCancel(ctx)
	defer stopConns()
	conns.Start(connCtx)
	defer conns.Stop()

	httpServer := gateway.NewServer(gw, conns, cfg.Server.AllowedWSOrigins, logger)
	if web != nil {
		web.SetDeliverFunc(conns.DeliverToDevice)
		httpServer.SetChatReceiver(web)
	}

	if err := registry.Start(ctx); err != nil {
		slog.Error("Failed to start channels", "error", err)
		return 1
	}
	defer registry.Stop(ctx)

	addr := *listenAddr
	if addr == "" {
		addr = cfg.Server.ListenAddr
	}
	if addr == "" {
		addr = ":8080"
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Gateway started",
		"channels", registry.Names(),
		"agents", agentRunner.Names(),
		"methods", len(gw.Methods()))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	exitCode := 0
	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
		exitCode = 1
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
	return exitCode
}
