package app

import (
	"go.uber.org/dig"

	"logistics-dashboard-service/internal/config"
	"logistics-dashboard-service/internal/gateway/assistant"
	"logistics-dashboard-service/internal/http/handlers"
	"logistics-dashboard-service/internal/logx"
	"logistics-dashboard-service/internal/storage"
)

func registerAssistant(container *dig.Container) error {
	return provideAll(container, newAssistantGateway)
}

func newAssistantGateway(cfg *config.Config, logger logx.Logger, m metricsBundle) assistant.Gateway {
	client := assistant.NewClient(assistant.Config{
		BaseURL: cfg.Assistant.BaseURL,
		APIKey:  cfg.Assistant.APIKey,
		Model:   cfg.Assistant.Model,
		Timeout: cfg.Assistant.Timeout,
	}, logger)
	return assistant.NewRetrying(client, logger, m.AssistantRetriesTotal, assistant.RetryConfig{
		MaxAttempts: cfg.Assistant.MaxAttempts,
		BaseDelay:   cfg.Assistant.BaseDelay,
		MaxDelay:    cfg.Assistant.MaxDelay,
	})
}

func newAssistantHandler(s *storage.Store, gw assistant.Gateway) *handlers.AssistantHandler {
	return handlers.NewAssistantHandler(s, gw)
}
