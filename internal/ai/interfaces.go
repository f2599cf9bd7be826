package ai

import (
	"context"

	"atsgrader/internal/types"
)

// AIProvider interface for different AI implementations
// All methods return token usage information - callers can ignore it if not needed
type AIProvider interface {
	ImproveText(ctx context.Context, input types.ImproveTextInput) (types.ImproveTextOutput, *TokenUsage, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	Close() error
}
