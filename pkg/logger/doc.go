// Package logger builds configured slog.Logger instances with structured
// output and optional context attribute extraction.
//
//	log := logger.New(
//		logger.WithService("clinickit"),
//		logger.WithContextExtractors(tenant.LoggerExtractor()),
//	)
package logger
