package server_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bufbuild/connect-go"
	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/BeerHall/pkg/server"
)

func TestLoggingInterceptor_LogsFailures(t *testing.T) {
	observedZapCore, observedLogs := observer.New(zap.DebugLevel)
	interceptor := server.LoggingInterceptor(zap.New(observedZapCore))

	failing := interceptor(func(context.Context, connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, connect.NewError(connect.CodeUnavailable, errors.New("database down"))
	})

	_, err := failing(context.Background(), connect.NewRequest(&grpchealth.CheckRequest{}))

	require.Error(t, err)

	logs := observedLogs.FilterMessage("rpc failed").All()
	require.Len(t, logs, 1)
	assert.Equal(t, "unavailable", logs[0].ContextMap()["code"])
}

func TestLoggingInterceptor_PassesResponsesThrough(t *testing.T) {
	observedZapCore, observedLogs := observer.New(zap.DebugLevel)
	interceptor := server.LoggingInterceptor(zap.New(observedZapCore))
	response := connect.NewResponse(&grpchealth.CheckResponse{Status: grpchealth.StatusServing})

	succeeding := interceptor(func(context.Context, connect.AnyRequest) (connect.AnyResponse, error) {
		return response, nil
	})

	got, err := succeeding(context.Background(), connect.NewRequest(&grpchealth.CheckRequest{}))

	require.NoError(t, err)
	assert.Same(t, response, got)
	assert.Equal(t, 1, observedLogs.FilterMessage("rpc").Len())
}
