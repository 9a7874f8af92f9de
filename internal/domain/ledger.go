package domain

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
)

const (
	MonthKeyLayout = "2006-01"
	DayKeyLayout   = "2006-01-02"
)

var (
	monthKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)
	dayKeyPattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	ErrInvalidMonthKey = errors.New("invalid monthKey format. Use YYYY-MM")
	ErrInvalidDayKey   = errors.New("invalid date format. Use YYYY-MM-DD")
)

// LedgerKind identifica qual ledger persistido está sendo lido ou escrito
type LedgerKind string

const (
	LedgerRevenue  LedgerKind = "revenue"
	LedgerExpenses LedgerKind = "expenses"
	LedgerDaily    LedgerKind = "daily"
)

func (k LedgerKind) String() string {
	return string(k)
}

// ParseLedgerKind interpreta o campo "type" da escrita mensal. Vazio significa receita.
func ParseLedgerKind(s string) (LedgerKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(LedgerRevenue):
		return LedgerRevenue, nil
	case string(LedgerExpenses), "expense":
		return LedgerExpenses, nil
	default:
		return "", fmt.Errorf("unknown ledger type %q", s)
	}
}

// YearMonth é um mês do calendário, independente de fuso horário
type YearMonth struct {
	Year  int
	Month time.Month
}

func NewYearMonth(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// Prev retorna o mês anterior, voltando para dezembro do ano anterior em janeiro
func (ym YearMonth) Prev() YearMonth {
	if ym.Month == time.January {
		return YearMonth{Year: ym.Year - 1, Month: time.December}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month - 1}
}

// Days retorna a quantidade de dias do mês (28-31)
func (ym YearMonth) Days() int {
	return time.Date(ym.Year, ym.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Key formata o mês como YYYY-MM
func (ym YearMonth) Key() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// DayKey formata o dia informado do mês como YYYY-MM-DD
func (ym YearMonth) DayKey(day int) string {
	return fmt.Sprintf("%s-%02d", ym.Key(), day)
}

// ParseMonthKey valida uma chave YYYY-MM, incluindo o intervalo do mês
func ParseMonthKey(key string) (YearMonth, error) {
	if !monthKeyPattern.MatchString(key) {
		return YearMonth{}, ErrInvalidMonthKey
	}
	t, err := time.Parse(MonthKeyLayout, key)
	if err != nil {
		return YearMonth{}, ErrInvalidMonthKey
	}
	return NewYearMonth(t), nil
}

// ParseDayKey valida uma chave YYYY-MM-DD contra o calendário
func ParseDayKey(key string) (time.Time, error) {
	if !dayKeyPattern.MatchString(key) {
		return time.Time{}, ErrInvalidDayKey
	}
	t, err := time.Parse(DayKeyLayout, key)
	if err != nil {
		return time.Time{}, ErrInvalidDayKey
	}
	return t, nil
}

// MonthlyLedger mapeia YYYY-MM para o total do mês. Chave ausente significa zero.
type MonthlyLedger map[string]float64

// DailyLedger mapeia YYYY-MM-DD para o total do dia.
type DailyLedger map[string]float64

func NewMonthlyLedger() MonthlyLedger {
	return MonthlyLedger{}
}

func NewDailyLedger() DailyLedger {
	return DailyLedger{}
}

// Amount retorna o valor do mês, ou zero quando ausente
func (l MonthlyLedger) Amount(ym YearMonth) float64 {
	return l[ym.Key()]
}

// Put insere ou atualiza a chave. Valor zero remove a chave
func (l MonthlyLedger) Put(key string, amount float64) {
	putEntry(l, key, amount)
}

func (l MonthlyLedger) Clone() MonthlyLedger {
	return MonthlyLedger(cloneEntries(l))
}

// Keys retorna as chaves em ordem crescente
func (l MonthlyLedger) Keys() []string {
	return sortedKeys(l)
}

// Put insere ou atualiza a chave. Valor zero remove a chave
func (l DailyLedger) Put(key string, amount float64) {
	putEntry(l, key, amount)
}

func (l DailyLedger) Clone() DailyLedger {
	return DailyLedger(cloneEntries(l))
}

func (l DailyLedger) Keys() []string {
	return sortedKeys(l)
}

// MonthTotal soma os lançamentos diários do mês e informa quantos existem
func (l DailyLedger) MonthTotal(ym YearMonth) (float64, int) {
	prefix := ym.Key() + "-"

	total := 0.0
	count := 0
	for _, key := range sortedKeys(l) {
		if strings.HasPrefix(key, prefix) {
			total += l[key]
			count++
		}
	}

	return total, count
}

func putEntry(entries map[string]float64, key string, amount float64) {
	if amount == 0 {
		delete(entries, key)
		return
	}
	entries[key] = amount
}

func cloneEntries(entries map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(entries))
	for k, v := range entries {
		out[k] = v
	}
	return out
}

func sortedKeys(entries map[string]float64) []string {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
