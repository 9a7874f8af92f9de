package ledgering

import (
	"errors"
	"fmt"

	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/pkg/apiErrors"
)

var (
	ErrDateNotInPast     = errors.New("date is today or in the future")
	ErrUnknownLedgerType = errors.New("unknown ledger type")
	ErrStoreUnavailable  = errors.New("ledger store unavailable")
)

// Mensagens devolvidas aos clientes no campo "error"
const (
	msgInvalidMonthKey = "Invalid monthKey format. Use YYYY-MM"
	msgInvalidDate     = "Invalid date format. Use YYYY-MM-DD"
	msgInvalidAmount   = "Invalid amount"
	msgInvalidType     = "Invalid type. Use revenue or expenses"
	msgDateNotInPast   = "Cannot enter data for today or future dates"
	msgServerError     = "Server error"
)

// LedgerError carrega o código da API e a mensagem para o cliente
type LedgerError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Message string // Mensagem exposta ao cliente
	Cause   error  // Erro original do armazenamento (quando aplicável)
}

func (e *LedgerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Cause.Error())
	}
	return e.Err.Error()
}

func (e *LedgerError) Unwrap() error {
	return e.Err
}

func newValidationError(err error, code, message string) *LedgerError {
	return &LedgerError{
		Err:     err,
		Code:    code,
		Message: message,
	}
}

func newStoreError(cause error) *LedgerError {
	return &LedgerError{
		Err:     ErrStoreUnavailable,
		Code:    apiErrors.ErrStoreOperation,
		Message: msgServerError,
		Cause:   cause,
	}
}

// InvalidType é usado pelo handler quando o campo "type" não é reconhecido
func InvalidType(err error) *LedgerError {
	return &LedgerError{
		Err:     ErrUnknownLedgerType,
		Code:    apiErrors.ErrInvalidFormat,
		Message: msgInvalidType,
		Cause:   err,
	}
}

// IsValidationError verifica se o erro deve virar um 400
func IsValidationError(err error) bool {
	return errors.Is(err, domain.ErrInvalidMonthKey) ||
		errors.Is(err, domain.ErrInvalidDayKey) ||
		errors.Is(err, domain.ErrInvalidAmount) ||
		errors.Is(err, ErrDateNotInPast) ||
		errors.Is(err, ErrUnknownLedgerType)
}

// AsLedgerError extrai o LedgerError, tratando qualquer outro erro como falha interna
func AsLedgerError(err error) *LedgerError {
	var ledgerErr *LedgerError
	if errors.As(err, &ledgerErr) {
		return ledgerErr
	}
	return &LedgerError{
		Err:     err,
		Code:    apiErrors.ErrInternalServer,
		Message: msgServerError,
	}
}
