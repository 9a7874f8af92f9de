package accrual

import (
	"time"

	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
)

const secondsPerDay = 86400

// Instant é o "agora" já deslocado para o fuso fixo, com os campos de calendário derivados dele
type Instant struct {
	Time         time.Time
	Current      domain.YearMonth
	Day          int
	DaysInMonth  int
	SecondsToday int
}

// NewInstant desloca now para loc uma única vez; todo campo de calendário sai daqui
func NewInstant(now time.Time, loc *time.Location) Instant {
	shifted := now.In(loc)
	current := domain.NewYearMonth(shifted)

	return Instant{
		Time:         shifted,
		Current:      current,
		Day:          shifted.Day(),
		DaysInMonth:  current.Days(),
		SecondsToday: shifted.Hour()*3600 + shifted.Minute()*60 + shifted.Second(),
	}
}

// SecondsInMonth é o tempo decorrido desde a meia-noite do dia 1
func (i Instant) SecondsInMonth() int {
	return (i.Day-1)*secondsPerDay + i.SecondsToday
}

// Yesterday retorna a chave YYYY-MM-DD do dia anterior, atravessando mês e ano
func (i Instant) Yesterday() string {
	y, m, d := i.Time.AddDate(0, 0, -1).Date()
	return domain.YearMonth{Year: y, Month: m}.DayKey(d)
}

// Figures são os quatro números de uma grandeza (receita ou despesa)
type Figures struct {
	Today     float64
	Month     float64
	Year      float64
	PerSecond float64
}

// Revenue é o resultado da receita junto com o modo efetivo e o mês exibido
type Revenue struct {
	Figures
	Mode   Mode
	Source domain.YearMonth
}

// Ledgers agrupa os ledgers persistidos usados no cálculo
type Ledgers struct {
	Revenue  domain.MonthlyLedger
	Expenses domain.MonthlyLedger
	Daily    domain.DailyLedger
}

type Calculator struct {
	policy          Policy
	defaultExpenses float64
	location        *time.Location
}

func NewCalculator(policy Policy, defaultExpenses float64, location *time.Location) *Calculator {
	if location == nil {
		location = time.UTC
	}

	return &Calculator{
		policy:          policy,
		defaultExpenses: defaultExpenses,
		location:        location,
	}
}

// Location retorna o fuso fixo usado pelo cálculo
func (c *Calculator) Location() *time.Location {
	return c.location
}

// Instant converte um horário qualquer no instante deslocado do calculador
func (c *Calculator) Instant(now time.Time) Instant {
	return NewInstant(now, c.location)
}

// Snapshot calcula a visão completa para o instante now
func (c *Calculator) Snapshot(ledgers Ledgers, now time.Time) domain.Snapshot {
	at := c.Instant(now)

	revenue := ComputeRevenue(c.policy, ledgers.Revenue, ledgers.Daily, at)
	expenses := ComputeExpenses(ledgers.Expenses, c.defaultExpenses, at)

	return domain.Snapshot{
		ServerTime:  at.Time.Format(time.RFC3339),
		Year:        at.Current.Year,
		Month:       int(at.Current.Month),
		Day:         at.Day,
		DaysInMonth: at.DaysInMonth,

		ExpensesToday: expenses.Today,
		ExpensesMonth: expenses.Month,
		ExpensesYear:  expenses.Year,
		ExpPerSecond:  expenses.PerSecond,

		RevenueToday:  revenue.Today,
		RevenueMonth:  revenue.Month,
		RevenueYear:   revenue.Year,
		RevPerSecond:  revenue.PerSecond,
		RevenueMode:   revenue.Mode.String(),
		RevenueSource: revenue.Source.Key(),

		Days:     nonNilDaily(ledgers.Daily).Clone(),
		Expenses: nonNilMonthly(ledgers.Expenses).Clone(),
		Months:   nonNilMonthly(ledgers.Revenue).Clone(),
	}
}

// ComputeRevenue aplica a política de seleção de mês sobre os ledgers de receita
func ComputeRevenue(policy Policy, monthly domain.MonthlyLedger, daily domain.DailyLedger, at Instant) Revenue {
	if policy.DailyPriority {
		if revenue, ok := dailyRevenue(monthly, daily, at); ok {
			return revenue
		}
	}

	switch policy.Monthly {
	case ModeDirect:
		return monthlyRevenue(monthly, at.Current, ModeDirect, at)
	case ModeLagByOne:
		return monthlyRevenue(monthly, at.Current.Prev(), ModeLagByOne, at)
	default:
		return monthlyRevenue(monthly, graceMonth(monthly, at.Current), ModeLagWithGrace, at)
	}
}

// ComputeExpenses distribui a despesa do mês corrente (ou o valor padrão) sem defasagem
func ComputeExpenses(ledger domain.MonthlyLedger, defaultAmount float64, at Instant) Figures {
	amountFor := func(ym domain.YearMonth) float64 {
		if amount := ledger.Amount(ym); amount > 0 {
			return amount
		}
		return defaultAmount
	}

	perSecond := amountFor(at.Current) / float64(at.DaysInMonth*secondsPerDay)
	month := perSecond * float64(at.SecondsInMonth())

	year := 0.0
	for m := time.January; m < at.Current.Month; m++ {
		year += amountFor(domain.YearMonth{Year: at.Current.Year, Month: m})
	}

	return Figures{
		Today:     perSecond * float64(at.SecondsToday),
		Month:     month,
		Year:      year + month,
		PerSecond: perSecond,
	}
}

// graceMonth escolhe o mês exibido no lag com carência: o mês anterior, ou o que vem
// antes dele quando o anterior ainda não foi lançado e o retrasado tem valor positivo.
func graceMonth(monthly domain.MonthlyLedger, current domain.YearMonth) domain.YearMonth {
	display := current.Prev()
	if monthly.Amount(display) > 0 {
		return display
	}

	fallback := display.Prev()
	if monthly.Amount(fallback) > 0 {
		return fallback
	}

	return display
}

// monthlyRevenue espalha o valor de display pelos segundos do mês corrente. O acumulado do
// ano soma os meses cheios do ano de display anteriores a ele.
func monthlyRevenue(monthly domain.MonthlyLedger, display domain.YearMonth, mode Mode, at Instant) Revenue {
	perSecond := monthly.Amount(display) / float64(at.DaysInMonth*secondsPerDay)
	month := perSecond * float64(at.SecondsInMonth())

	year := 0.0
	for m := time.January; m < display.Month; m++ {
		year += monthly.Amount(domain.YearMonth{Year: display.Year, Month: m})
	}

	return Revenue{
		Figures: Figures{
			Today:     perSecond * float64(at.SecondsToday),
			Month:     month,
			Year:      year + month,
			PerSecond: perSecond,
		},
		Mode:   mode,
		Source: display,
	}
}

// dailyRevenue usa o dia de ontem como taxa para estimar o dia de hoje. Só vale quando
// o mês corrente já tem pelo menos um lançamento diário.
func dailyRevenue(monthly domain.MonthlyLedger, daily domain.DailyLedger, at Instant) (Revenue, bool) {
	monthTotal, count := daily.MonthTotal(at.Current)
	if count == 0 {
		return Revenue{}, false
	}

	perSecond := daily[at.Yesterday()] / secondsPerDay
	today := perSecond * float64(at.SecondsToday)
	month := monthTotal + today

	year := 0.0
	for m := time.January; m < at.Current.Month; m++ {
		ym := domain.YearMonth{Year: at.Current.Year, Month: m}
		if total, n := daily.MonthTotal(ym); n > 0 {
			year += total
			continue
		}
		year += monthly.Amount(ym)
	}

	return Revenue{
		Figures: Figures{
			Today:     today,
			Month:     month,
			Year:      year + month,
			PerSecond: perSecond,
		},
		Mode:   ModeDaily,
		Source: at.Current,
	}, true
}

func nonNilMonthly(l domain.MonthlyLedger) domain.MonthlyLedger {
	if l == nil {
		return domain.NewMonthlyLedger()
	}
	return l
}

func nonNilDaily(l domain.DailyLedger) domain.DailyLedger {
	if l == nil {
		return domain.NewDailyLedger()
	}
	return l
}
