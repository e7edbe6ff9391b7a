package logging

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

type contextKey struct{}

var logDataKey contextKey

// Middleware returns a huma middleware that attaches a fresh LogData to each
// request context, stamps it with a request ID, and logs completion with all
// fields and timings the handler collected.
func Middleware(logger *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		operationID := ctx.Operation().OperationID
		logger.Infof("Handler.%v.Start", operationID)

		logData := NewLogData(logger)
		logData.AddData("requestID", uuid.Must(uuid.NewV4()).String())
		logData.AddData("operation", operationID)

		endTimer := logData.AddTiming("durationMs")
		next(huma.WithValue(ctx, logDataKey, logData))
		endTimer()

		logData.AddData("status", ctx.Status())
		logData.Log().Infof("Handler.%v.Complete", operationID)
	}
}

// GetLogData returns the request's LogData, or nil outside the middleware.
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(logDataKey).(*LogData)
	return logData
}
