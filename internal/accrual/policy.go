// Package accrual distribui os totais mensais (e diários) dos ledgers ao longo do tempo
// para produzir os números de hoje, do mês, do ano e a taxa por segundo.
package accrual

import (
	"fmt"
	"strings"
)

// Mode define qual lançamento do ledger representa o mês "atual"
type Mode string

const (
	// ModeDirect usa o lançamento do mês corrente do calendário
	ModeDirect Mode = "direct"
	// ModeLagByOne exibe o mês anterior como se fosse o mês corrente
	ModeLagByOne Mode = "lag"
	// ModeLagWithGrace igual ao lag, mas volta mais um mês enquanto o anterior não foi lançado
	ModeLagWithGrace Mode = "lag-grace"
	// ModeDaily usa os lançamentos diários do mês corrente
	ModeDaily Mode = "daily"
)

func (m Mode) String() string {
	return string(m)
}

// ParseMode converte o valor de configuração em um modo mensal
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeDirect:
		return ModeDirect, nil
	case ModeLagByOne:
		return ModeLagByOne, nil
	case ModeLagWithGrace, "":
		return ModeLagWithGrace, nil
	default:
		return "", fmt.Errorf("modo de receita inválido: %q (use direct, lag ou lag-grace)", s)
	}
}

// Policy é a política de seleção de mês da receita. Monthly nunca é ModeDaily:
// DailyPriority faz os lançamentos diários prevalecerem e Monthly vira o fallback.
type Policy struct {
	Monthly       Mode
	DailyPriority bool
}

// NewPolicy monta a política a partir dos valores de configuração
func NewPolicy(mode string, dailyPriority bool) (Policy, error) {
	monthly, err := ParseMode(mode)
	if err != nil {
		return Policy{}, err
	}
	return Policy{Monthly: monthly, DailyPriority: dailyPriority}, nil
}

// DefaultPolicy prioriza os lançamentos diários e cai para lag com carência
func DefaultPolicy() Policy {
	return Policy{Monthly: ModeLagWithGrace, DailyPriority: true}
}

func (p Policy) String() string {
	if p.DailyPriority {
		return fmt.Sprintf("daily>%s", p.Monthly)
	}
	return p.Monthly.String()
}
