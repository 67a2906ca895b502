package logger

import (
	"context"
	"log/slog"
)

// Context keys for request-scoped log fields.
type contextKey string

const (
	requestIDKey contextKey = "request_id"
	userIDKey    contextKey = "user_id"
)

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithUserID stores the authenticated user ID in the context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetRequestID extracts the request ID from the context.
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// GetUserID extracts the user ID from the context.
func GetUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(userIDKey).(string); ok {
		return userID
	}
	return ""
}

// FromContext builds a logger carrying request_id and user_id when present.
func FromContext(ctx context.Context) *slog.Logger {
	logger := GetLogger()

	var fields []any
	if requestID := GetRequestID(ctx); requestID != "" {
		fields = append(fields, "request_id", requestID)
	}
	if userID := GetUserID(ctx); userID != "" {
		fields = append(fields, "user_id", userID)
	}

	if len(fields) > 0 {
		logger = logger.With(fields...)
	}
	return logger
}

// CtxDebug logs debug with context fields.
func CtxDebug(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Debug(msg, args...)
}

// CtxInfo logs info with context fields.
func CtxInfo(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Info(msg, args...)
}

// CtxWarn logs warning with context fields.
func CtxWarn(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Warn(msg, args...)
}

// CtxError logs error with context fields.
func CtxError(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Error(msg, args...)
}

// CtxWithError logs an error message together with the error object.
func CtxWithError(ctx context.Context, msg string, err error, args ...any) {
	fields := append([]any{"error", err.Error()}, args...)
	FromContext(ctx).Error(msg, fields...)
}
