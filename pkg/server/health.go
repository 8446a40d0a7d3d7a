package server

import (
	"context"
	"fmt"
	"slices"

	"github.com/bufbuild/connect-go"
	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	"go.uber.org/zap"
)

const BrewerServiceName = "beerhall.v1.BrewerService"

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthChecker reports the process as serving while the store answers pings.
type HealthChecker struct {
	pinger   Pinger
	services []string
	logger   *zap.Logger
}

var _ grpchealth.Checker = (*HealthChecker)(nil)

func NewHealthChecker(pinger Pinger, logger *zap.Logger, services ...string) *HealthChecker {
	return &HealthChecker{pinger: pinger, services: services, logger: logger}
}

// Check answers for the whole process (empty service name) or for one of the
// registered services.
func (h *HealthChecker) Check(ctx context.Context, request *grpchealth.CheckRequest) (*grpchealth.CheckResponse, error) {
	if request.Service != "" && !slices.Contains(h.services, request.Service) {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("unknown service %s", request.Service))
	}

	if err := h.pinger.Ping(ctx); err != nil {
		h.logger.Warn("health check failed", zap.String("service", request.Service), zap.Error(err))

		return &grpchealth.CheckResponse{Status: grpchealth.StatusNotServing}, nil
	}

	return &grpchealth.CheckResponse{Status: grpchealth.StatusServing}, nil
}
