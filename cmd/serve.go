package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bufbuild/connect-go"
	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	grpcreflect "github.com/bufbuild/connect-grpcreflect-go"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"droscher.com/BeerHall/configs"
	"droscher.com/BeerHall/pkg/auth"
	"droscher.com/BeerHall/pkg/repository"
	"droscher.com/BeerHall/pkg/server"
	"droscher.com/BeerHall/pkg/server/web"
)

type ServeCmd struct {
	ConfigFile string `default:".BeerHall.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(cliCtx *Context) error {
	logger, _ := zap.NewProductionConfig().Build()
	if cliCtx.Debug {
		logger = developmentLogger()
	}
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	sessions := func() repository.BrewerRepository { return repo.NewBrewerSession() }
	handler := newServerHandler(conf, sessions, repo.Locations(), repo, logger)

	svr := &http.Server{
		Addr:              fmt.Sprintf(":%d", conf.Server.Port),
		ReadHeaderTimeout: conf.Server.ReadHeaderTimeout,
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)

	go func() {
		logger.Info("starting server", zap.String("address", svr.Addr))
		serveErr <- svr.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start server", zap.Error(err))

			return err
		}

		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
	defer cancel()

	if err = svr.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutting down server", zap.Error(err))

		return err
	}

	return nil
}

// newServerHandler mounts the health and reflection services next to the
// authenticated web pages.
func newServerHandler(conf *configs.Config, sessions web.SessionFactory, locations repository.LocationRepository,
	pinger server.Pinger, logger *zap.Logger,
) http.Handler {
	mux := http.NewServeMux()

	interceptors := connect.WithInterceptors(server.LoggingInterceptor(logger))
	checker := server.NewHealthChecker(pinger, logger, server.BrewerServiceName)
	reflector := grpcreflect.NewStaticReflector(grpchealth.HealthV1ServiceName)

	mux.Handle(grpchealth.NewHandler(checker, interceptors))
	mux.Handle(grpcreflect.NewHandlerV1(reflector))
	mux.Handle(grpcreflect.NewHandlerV1Alpha(reflector))

	authManager := auth.NewAuthManager(conf.Auth, logger)
	mux.Handle("/", authManager.Middleware(web.NewHandler(sessions, locations, logger, conf.Server)))

	return configureCORS(mux, conf.Server.AllowedOrigins)
}

func configureCORS(mux *http.ServeMux, allowedOrigins []string) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions, http.MethodHead},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"authorization",
			"cache-control",
			"connect-accept-encoding",
			"connect-content-encoding",
			"connect-protocol-version",
			"connect-timeout-ms",
			"content-encoding",
			"content-length",
			"content-type",
			"grpc-accept-encoding",
			"grpc-encoding",
			"grpc-timeout",
			"origin",
			"referer",
			"user-agent",
			"x-grpc-web",
			"x-request-id",
			"x-user-agent",
		},
		ExposedHeaders: []string{
			"connect-protocol-version",
			"grpc-message",
			"grpc-status",
			"grpc-status-details-bin",
			"x-request-id",
		},
		MaxAge:             86400, // 24 hours
		OptionsPassthrough: false,
	})

	return corsOpts.Handler(mux)
}
