package server

import (
	"context"
	"time"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"
)

// LoggingInterceptor logs every unary call with its outcome.
func LoggingInterceptor(logger *zap.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()

			res, err := next(ctx, req)

			fields := []zap.Field{
				zap.String("procedure", req.Spec().Procedure),
				zap.String("peer", req.Peer().Addr),
				zap.Duration("duration", time.Since(start)),
			}

			if err != nil {
				logger.Warn("rpc failed", append(fields, zap.Stringer("code", connect.CodeOf(err)), zap.Error(err))...)

				return res, err
			}

			logger.Debug("rpc", fields...)

			return res, nil
		}
	}
}
