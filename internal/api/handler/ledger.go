package handler

import (
	"io"
	"net/http"

	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/ledgering"
	"github.com/vfg2006/revenue-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-dashboard-api/pkg/log"
	"github.com/vfg2006/revenue-dashboard-api/pkg/utils"
)

const maxBodyBytes = 1 << 20

// GetRevenue devolve o snapshot calculado para o instante da requisição
func GetRevenue(service ledgering.Ledgering) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		snapshot, err := service.GetSnapshot(r.Context())
		if err != nil {
			writeLedgerError(w, r, "get-revenue", err)
			return
		}

		logger.WithFields(log.Fields{
			"revenue_mode":   snapshot.RevenueMode,
			"revenue_source": snapshot.RevenueSource,
		}).Debug("get-revenue: snapshot calculado")

		if err := utils.WriteJSON(w, http.StatusOK, snapshot); err != nil {
			logger.WithError(err).Error("get-revenue: erro ao codificar resposta")
		}
	})
}

// SetRevenue aceita {monthKey, amount} ou {type, monthKey, amount}. Sem type, grava receita.
func SetRevenue(service ledgering.Ledgering) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.SetMonthlyRequest
		if !decodeBody(w, r, "set-revenue", &req) {
			return
		}

		kind, err := domain.ParseLedgerKind(req.Type)
		if err != nil {
			writeLedgerError(w, r, "set-revenue", ledgering.InvalidType(err))
			return
		}

		setMonthly(w, r, service, "set-revenue", kind, req)
	})
}

// SetExpenses grava no ledger de despesas ignorando o campo type
func SetExpenses(service ledgering.Ledgering) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.SetMonthlyRequest
		if !decodeBody(w, r, "set-expenses", &req) {
			return
		}

		setMonthly(w, r, service, "set-expenses", domain.LedgerExpenses, req)
	})
}

func SetDaily(service ledgering.Ledgering) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.SetDailyRequest
		if !decodeBody(w, r, "set-daily", &req) {
			return
		}

		days, err := service.SetDaily(r.Context(), req)
		if err != nil {
			writeLedgerError(w, r, "set-daily", err)
			return
		}

		logger.WithFields(log.Fields{
			"ledger": domain.LedgerDaily,
			"key":    req.Date,
		}).Info("set-daily: lançamento diário gravado")

		err = utils.WriteJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"date":    req.Date,
			"days":    days,
		})
		if err != nil {
			logger.WithError(err).Error("set-daily: erro ao codificar resposta")
		}
	})
}

func setMonthly(
	w http.ResponseWriter,
	r *http.Request,
	service ledgering.Ledgering,
	route string,
	kind domain.LedgerKind,
	req domain.SetMonthlyRequest,
) {
	logger := log.ForContext(r.Context())

	ledger, err := service.SetMonthly(r.Context(), kind, req)
	if err != nil {
		writeLedgerError(w, r, route, err)
		return
	}

	logger.WithFields(log.Fields{
		"ledger": kind,
		"key":    req.MonthKey,
	}).Info(route + ": lançamento mensal gravado")

	body := map[string]any{"success": true}
	if kind == domain.LedgerExpenses {
		body["type"] = domain.LedgerExpenses
		body["expenses"] = ledger
	} else {
		body["months"] = ledger
	}

	if err := utils.WriteJSON(w, http.StatusOK, body); err != nil {
		logger.WithError(err).Error(route + ": erro ao codificar resposta")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, route string, target any) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err == nil {
		// Unmarshal rejeita qualquer coisa além de espaços depois do objeto
		err = json.Unmarshal(body, target)
	}

	if err != nil {
		log.ForContext(r.Context()).WithError(err).Warn(route + ": corpo da requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
		return false
	}

	return true
}

// writeLedgerError registra falhas de armazenamento com a causa e devolve só a mensagem genérica
func writeLedgerError(w http.ResponseWriter, r *http.Request, route string, err error) {
	ledgerErr := ledgering.AsLedgerError(err)
	logger := log.ForContext(r.Context()).WithError(err)

	if ledgering.IsValidationError(err) {
		logger.Warn(route + ": requisição rejeitada")
	} else {
		logger.Error(route + ": erro ao acessar os ledgers")
	}

	apiErrors.WriteError(w, ledgerErr.Code, ledgerErr.Message, nil)
}
