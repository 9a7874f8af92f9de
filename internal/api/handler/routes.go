package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/revenue-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/ledgering"
	"github.com/vfg2006/revenue-dashboard-api/pkg/middleware"
)

func Healthcheck(loc *time.Location) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(loc),
		},
	}
}

// Ledgers registra a leitura pública e as escritas. Com autenticação ativa, as escritas
// exigem token de administrador.
func Ledgers(service ledgering.Ledgering, authenticator authenticating.Authenticator) []router.Route {
	writeMiddlewares := adminMiddlewares(authenticator)

	return []router.Route{
		{
			Path:    "/api/get-revenue",
			Method:  http.MethodGet,
			Handler: GetRevenue(service),
		},
		{
			Path:        "/api/set-revenue",
			Method:      http.MethodPost,
			Handler:     SetRevenue(service),
			Middlewares: writeMiddlewares,
		},
		{
			Path:        "/api/set-expenses",
			Method:      http.MethodPost,
			Handler:     SetExpenses(service),
			Middlewares: writeMiddlewares,
		},
		{
			Path:        "/api/set-daily",
			Method:      http.MethodPost,
			Handler:     SetDaily(service),
			Middlewares: writeMiddlewares,
		},
	}
}

func adminMiddlewares(authenticator authenticating.Authenticator) []func(http.Handler) http.Handler {
	if authenticator == nil || !authenticator.Enabled() {
		return nil
	}

	return []func(http.Handler) http.Handler{
		middleware.AuthMiddleware(authenticator),
		middleware.AdminOnly(),
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	if service == nil || !service.Enabled() {
		return nil
	}

	return []router.Route{
		{
			Path:    "/api/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}
