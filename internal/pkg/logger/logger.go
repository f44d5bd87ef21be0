package logger

import (
	"context"
	"fmt"

	"github.com/constructora/cost-api/internal/pkg/constants"
	"go.uber.org/zap"
)

var global = zap.Must(zap.NewProduction()).Sugar()

// Init replaces the default production logger, e.g. with a development
// config. Safe to skip; the package works out of the box.
func Init(l *zap.Logger) {
	global = l.Sugar()
}

func Sync() {
	_ = global.Sync()
}

func withCtx(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return global
	}
	if reqID, ok := ctx.Value(constants.CtxKeyRequestID).(string); ok {
		return global.With("request_id", reqID)
	}
	return global
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	withCtx(ctx).Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	withCtx(ctx).Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	withCtx(ctx).Warnf(format, args...)
}

func Error(ctx context.Context, msg string) {
	withCtx(ctx).Error(msg)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	withCtx(ctx).Errorf(format, args...)
}

func Fatal(ctx context.Context, err error) {
	if err == nil {
		return
	}
	withCtx(ctx).Fatal(fmt.Sprintf("fatal: %s", err.Error()))
}
