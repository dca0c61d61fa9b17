// Package logging configures the zerolog logger used across recordgrid.
//
// The logger travels through context.Context so that every component logs
// with the same sink and the same per-run trace ID:
//
//	result := logging.NewLoggerWithPath(cfg)
//	ctx = logging.ContextWithTraceID(ctx, logging.GetOrGenerateTraceID(ctx))
//	ctx = result.Logger.WithContext(ctx)
//	...
//	logging.FromContext(ctx).Debug().Ctx(ctx).Msg("recomputed")
//
// Events created with .Ctx(ctx) pick up the trace_id field automatically.
package logging
