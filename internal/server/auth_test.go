package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func callWithKey(t *testing.T, interceptor grpc.UnaryServerInterceptor, method string, md metadata.MD) error {
	t.Helper()
	ctx := context.Background()
	if md != nil {
		ctx = metadata.NewIncomingContext(ctx, md)
	}
	_, err := interceptor(ctx, nil,
		&grpc.UnaryServerInfo{FullMethod: method},
		func(context.Context, any) (any, error) { return "ok", nil },
	)
	return err
}

func TestAPIKeyInterceptor(t *testing.T) {
	interceptor := APIKeyInterceptor("secret", nil)
	const method = "/notifier.v1.NotifierService/ProcessGuide"

	t.Run("valid key", func(t *testing.T) {
		err := callWithKey(t, interceptor, method, metadata.Pairs(apiKeyHeader, "secret"))
		assert.NoError(t, err)
	})

	t.Run("wrong key", func(t *testing.T) {
		err := callWithKey(t, interceptor, method, metadata.Pairs(apiKeyHeader, "nope"))
		require.Error(t, err)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("missing metadata", func(t *testing.T) {
		err := callWithKey(t, interceptor, method, nil)
		require.Error(t, err)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("health bypasses auth", func(t *testing.T) {
		err := callWithKey(t, interceptor, "/grpc.health.v1.Health/Check", nil)
		assert.NoError(t, err)
	})

	t.Run("empty key disables check", func(t *testing.T) {
		open := APIKeyInterceptor("", nil)
		err := callWithKey(t, open, method, nil)
		assert.NoError(t, err)
	})
}
