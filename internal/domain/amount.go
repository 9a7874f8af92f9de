package domain

import (
	"bytes"
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/revenue-dashboard-api/pkg/utils"
)

var ErrInvalidAmount = errors.New("invalid amount")

// maxAmountMagnitude limita o expoente decimal aceito. Acima disso o float64 já é Inf ou
// zero, e converter o decimal exigiria um inteiro de 10^exp dígitos.
const maxAmountMagnitude = 400

// ParseAmount aceita o campo amount como número JSON ou string numérica
// (o painel administrativo envia o valor digitado como texto).
func ParseAmount(raw []byte) (float64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, ErrInvalidAmount
	}

	text := string(raw)
	if raw[0] == '"' {
		unquoted, err := strconv.Unquote(text)
		if err != nil {
			return 0, ErrInvalidAmount
		}
		text = strings.TrimSpace(unquoted)
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	exp := int(d.Exponent())
	if exp < -maxAmountMagnitude || exp+d.NumDigits() > maxAmountMagnitude {
		return 0, ErrInvalidAmount
	}

	amount, _ := d.Float64()
	return amount, ValidateAmount(amount)
}

// ValidateAmount garante um valor finito e não negativo
func ValidateAmount(amount float64) error {
	if !utils.IsFinite(amount) || amount < 0 {
		return ErrInvalidAmount
	}
	return nil
}
