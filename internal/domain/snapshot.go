package domain

import "encoding/json"

// Snapshot é a visão calculada a cada leitura. Nunca é persistida.
type Snapshot struct {
	ServerTime  string `json:"serverTime"`
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	Day         int    `json:"day"`
	DaysInMonth int    `json:"daysInMonth"`

	ExpensesToday float64 `json:"expensesToday"`
	ExpensesMonth float64 `json:"expensesMonth"`
	ExpensesYear  float64 `json:"expensesYear"`
	ExpPerSecond  float64 `json:"expPerSecond"`

	RevenueToday  float64 `json:"revenueToday"`
	RevenueMonth  float64 `json:"revenueMonth"`
	RevenueYear   float64 `json:"revenueYear"`
	RevPerSecond  float64 `json:"revPerSecond"`
	RevenueMode   string  `json:"revenueMode"`
	RevenueSource string  `json:"revenueSource"`

	// Ledgers brutos para a tela administrativa
	Days     DailyLedger   `json:"days"`
	Expenses MonthlyLedger `json:"expenses"`
	Months   MonthlyLedger `json:"months"`
}

// LedgerChange descreve uma escrita bem sucedida em um ledger
type LedgerChange struct {
	Ledger    LedgerKind `json:"ledger"`
	Key       string     `json:"key"`
	Amount    float64    `json:"amount"`
	Deleted   bool       `json:"deleted"`
	ChangedAt string     `json:"changed_at"`
}

// DailyClose é o resumo publicado quando um dia termina no fuso fixo
type DailyClose struct {
	Date          string  `json:"date"`
	RevenueYear   float64 `json:"revenueYear"`
	ExpensesYear  float64 `json:"expensesYear"`
	Net           float64 `json:"net"`
	RevenueMode   string  `json:"revenueMode"`
	RevenueSource string  `json:"revenueSource"`
	ClosedAt      string  `json:"closedAt"`
}

// SetMonthlyRequest é o corpo de set-revenue e set-expenses. Amount chega como número ou texto.
type SetMonthlyRequest struct {
	Type     string          `json:"type"`
	MonthKey string          `json:"monthKey"`
	Amount   json.RawMessage `json:"amount"`
}

type SetDailyRequest struct {
	Date   string          `json:"date"`
	Amount json.RawMessage `json:"amount"`
}
