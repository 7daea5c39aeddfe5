package logging

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const ComponentKey = "component"

// WithComponent returns a context carrying a logger that is tagged with the component name.
// Code running in that context logs through log.Ctx(ctx).
// When ctx has no logger, the global logger is used as parent.
func WithComponent(ctx context.Context, name string) context.Context {
	parent := zerolog.Ctx(ctx)
	if parent.GetLevel() == zerolog.Disabled {
		parent = &log.Logger
	}
	logger := parent.With().Str(ComponentKey, name).Logger()
	return logger.WithContext(ctx)
}
