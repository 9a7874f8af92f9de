package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/revenue-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-dashboard-api/pkg/log"
	"github.com/vfg2006/revenue-dashboard-api/pkg/utils"
)

func Login(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.LoginRequest
		if !decodeBody(w, r, "login", &req) {
			return
		}

		resp, err := service.Login(req.Password)
		if err != nil {
			handleLoginError(w, r, err)
			return
		}

		logger.Info("login: token de administrador emitido")

		if err := utils.WriteJSON(w, http.StatusOK, resp); err != nil {
			logger.WithError(err).Error("login: erro ao codificar resposta")
		}
	})
}

func handleLoginError(w http.ResponseWriter, r *http.Request, err error) {
	log.ForContext(r.Context()).WithError(err).Warn("login: falha na autenticação")

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Details, nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Server error", nil)
}
