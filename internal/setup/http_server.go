package setup

import (
	"context"

	"github.com/bornholm/todo/internal/config"
	"github.com/bornholm/todo/internal/http"
	"github.com/bornholm/todo/internal/http/handler/api"
	"github.com/bornholm/todo/internal/http/handler/metrics"
	"github.com/bornholm/todo/internal/http/middleware/authn"
	"github.com/pkg/errors"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*http.Server, error) {
	apiHandler, err := getAPIHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure api handler from config")
	}

	tokenHandler, err := getTokenAuthnHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure authn handler from config")
	}

	authnMiddleware := authn.Middleware(api.HandleUnauthenticated, tokenHandler)

	options := []http.OptionFunc{
		http.WithAddress(conf.HTTP.Address),
		http.WithBaseURL(conf.HTTP.BaseURL),
		http.WithMount("/auth/", tokenHandler),
		http.WithMount("/api/v1/", authnMiddleware(apiHandler)),
		http.WithMount("/metrics/", metrics.NewHandler()),
	}

	if len(conf.HTTP.CORS.AllowedOrigins) > 0 {
		options = append(options, http.WithCORS(conf.HTTP.CORS.AllowedOrigins...))
	}

	server := http.NewServer(options...)

	return server, nil
}
