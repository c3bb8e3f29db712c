// cmd/server/main.go
package main

import (
	"log"
	"log/slog"

	"salesql/internal/analyzer"
	"salesql/internal/config"
	"salesql/internal/llm"
	"salesql/internal/server"
	"salesql/internal/session"
	"salesql/internal/store"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	st, err := store.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("failed to open analytics database: %v", err)
	}
	defer st.Close()

	provider, err := llm.NewOpenAI(&cfg.OpenAI)
	if err != nil {
		log.Fatalf("failed to create LLM provider: %v", err)
	}

	chain := llm.NewChain(provider, cfg.OpenAI.Tiers(), cfg.OpenAI.AttemptsPerTier, cfg.OpenAI.RetryDelay)
	sessions := session.NewManager(cfg.Analysis.SessionTTL)
	analyzer := analyzer.New(st, chain, sessions, cfg.Analysis)

	srv := server.New(*cfg, analyzer, st)
	slog.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port, "database", cfg.Database.Path)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
