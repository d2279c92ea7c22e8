// posthog_client.go provides a wrapper around the posthog.Client to make it easier to use and handle when its not initialized.
package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// DefaultPosthogEndpoint is used when no endpoint is configured.
const DefaultPosthogEndpoint = "https://eu.i.posthog.com"

// PosthogClientWrapper tolerates a missing client so analytics stay optional.
type PosthogClientWrapper struct {
	posthogClient posthog.Client
	logger        *slog.Logger
}

// InitializePosthogClient returns an uninitialized wrapper when apiKey is empty
// or the client cannot be created.
func InitializePosthogClient(apiKey, endpoint string, logger *slog.Logger) *PosthogClientWrapper {
	if apiKey == "" {
		logger.Warn("Posthog API key is empty, not initializing posthog client.")
		return &PosthogClientWrapper{logger: logger}
	}
	if endpoint == "" {
		endpoint = DefaultPosthogEndpoint
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		logger.Error("Failed to initialize posthog client", slog.String("error", err.Error()))
		return &PosthogClientWrapper{logger: logger}
	}
	logger.Info("Initialized posthog client", slog.String("endpoint", endpoint))
	return NewPosthogClientWrapper(client, logger)
}

// NewPosthogClientWrapper wraps an existing client.
func NewPosthogClientWrapper(client posthog.Client, logger *slog.Logger) *PosthogClientWrapper {
	return &PosthogClientWrapper{posthogClient: client, logger: logger}
}

func (w *PosthogClientWrapper) IsInitialized() bool {
	return w != nil && w.posthogClient != nil
}

func (w *PosthogClientWrapper) Enqueue(distinctId string, event string, properties map[string]any) {
	if !w.IsInitialized() {
		return
	}
	if w.logger != nil {
		w.logger.Debug("Enqueueing event", slog.String("distinct_id", distinctId), slog.String("event", event), slog.Any("properties", properties))
	}
	err := w.posthogClient.Enqueue(posthog.Capture{
		DistinctId: distinctId,
		Event:      event,
		Properties: properties,
	})
	if err != nil && w.logger != nil {
		w.logger.Warn("Failed to enqueue event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

func (w *PosthogClientWrapper) Close() {
	if !w.IsInitialized() {
		return
	}
	if err := w.posthogClient.Close(); err != nil && w.logger != nil {
		w.logger.Warn("Failed to close posthog client", slog.String("error", err.Error()))
	}
}
