// Package logger builds *slog.Logger instances from functional options and
// injects context values (such as request ids) into every record.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format and wraps it with LogHandlerDecorator, which runs the registered
// ContextExtractor callbacks on each Handle call.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment("development", "dateinput"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "dob validated",
//		logger.Field("dob"),
//		logger.Reason(res.Reason),
//	)
//
// Error, Errors and Reason return an empty attribute for nil input, so callers
// can pass them unconditionally. Birth dates are personal data: log Length or
// Reason, not the value.
package logger
