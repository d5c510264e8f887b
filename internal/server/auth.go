package server

import (
	"context"
	"crypto/subtle"
	"strings"

	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const apiKeyHeader = "x-api-key"

// APIKeyInterceptor rejects calls without the shared API key. An empty
// configured key disables the check (local development). Health service
// calls pass through so probes need no credentials.
func APIKeyInterceptor(apiKey string, logger *slog.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if apiKey == "" || isHealthMethod(info.FullMethod) {
			return handler(ctx, req)
		}

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}
		keys := md.Get(apiKeyHeader)
		if len(keys) == 0 || subtle.ConstantTimeCompare([]byte(keys[0]), []byte(apiKey)) != 1 {
			logger.Warn("server.auth.rejected", "method", info.FullMethod)
			return nil, status.Error(codes.Unauthenticated, "invalid api key")
		}
		return handler(ctx, req)
	}
}

func isHealthMethod(fullMethod string) bool {
	return strings.HasPrefix(fullMethod, "/grpc.health.")
}
