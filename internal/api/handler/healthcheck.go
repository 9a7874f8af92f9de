package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-dashboard-api/pkg/utils"
)

// HealthcheckHandler responde com o horário do servidor no fuso dos cálculos
func HealthcheckHandler(loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := utils.WriteJSON(w, http.StatusOK, map[string]string{
			"status":     "ok",
			"serverTime": time.Now().In(loc).Format(time.RFC3339),
		})
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
