package main

import (
	"context"

	llmagentx "github.com/tanpawarit/evo-commerce-agent/agent/agents/llmagent"
	orchestratorx "github.com/tanpawarit/evo-commerce-agent/agent/agents/orchestrator"
	rulesx "github.com/tanpawarit/evo-commerce-agent/agent/agents/rules"
	catalogx "github.com/tanpawarit/evo-commerce-agent/agent/catalog"
	contractx "github.com/tanpawarit/evo-commerce-agent/agent/contract"
	llmx "github.com/tanpawarit/evo-commerce-agent/agent/llm"
	toolx "github.com/tanpawarit/evo-commerce-agent/agent/tool"
	configx "github.com/tanpawarit/evo-commerce-agent/pkg/config"
	groqx "github.com/tanpawarit/evo-commerce-agent/pkg/groq"
	logx "github.com/tanpawarit/evo-commerce-agent/pkg/logger"
	_ "github.com/tanpawarit/evo-commerce-agent/pkg/logger/autoload"
	serverx "github.com/tanpawarit/evo-commerce-agent/server"
)

func main() {
	ctx := context.Background()

	catalogCfg := configx.MustNew[catalogx.Config]("")
	toolCfg := configx.MustNew[toolx.Config]("")
	llmCfg := configx.MustNew[llmx.Config]("GROQ")
	serverCfg := configx.MustNew[serverx.Config]("")

	store, err := catalogx.Load(*catalogCfg)
	if err != nil {
		logx.Fatal().Err(err).Msg("load catalog")
	}

	tools := toolx.NewRegistry(store, *toolCfg)

	registry := buildRegistry(ctx, *llmCfg)

	agent, err := orchestratorx.New(registry, tools)
	if err != nil {
		logx.Fatal().Err(err).Msg("build orchestrator")
	}

	srv := serverx.New(agent, *serverCfg)
	logx.Info().Str("port", serverCfg.Port).Msg("server starting")
	if err := srv.Listen(); err != nil {
		logx.Fatal().Err(err).Msg("server stopped")
	}
}

// buildRegistry picks the model-backed registry when the model service is
// configured and reachable, otherwise the deterministic rule registry.
func buildRegistry(ctx context.Context, cfg llmx.Config) contractx.Registry {
	if !cfg.Enabled() {
		logx.Info().Msg("no model api key configured, running rule-only")
		return rulesx.NewRegistry()
	}

	client := groqx.NewClient(cfg.GroqFor(llmx.StageClassifier))
	if client == nil {
		logx.Warn().Msg("model client unavailable, running rule-only")
		return rulesx.NewRegistry()
	}
	if _, err := client.Models.List(ctx); err != nil {
		logx.Warn().Err(err).Msg("model service unreachable, running rule-only")
		return rulesx.NewRegistry()
	}

	registry, err := llmagentx.NewRegistry(ctx, cfg)
	if err != nil {
		logx.Fatal().Err(err).Msg("build model registry")
	}
	logx.Info().Str("model", cfg.Model).Msg("model service enabled")
	return registry
}
