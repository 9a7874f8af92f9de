package ticker

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
)

// Live guarda o último snapshot e o instante local em que ele chegou
type Live struct {
	Snapshot   domain.Snapshot
	ReceivedAt time.Time
}

// Figures são os valores exibidos em um instante
type Figures struct {
	RevenueToday  float64
	RevenueMonth  float64
	RevenueYear   float64
	ExpensesToday float64
	ExpensesMonth float64
	ExpensesYear  float64
}

// Net é o resultado do ano: receita menos despesa
func (f Figures) Net() float64 {
	return f.RevenueYear - f.ExpensesYear
}

func (f Figures) IsProfit() bool {
	return f.Net() >= 0
}

// At avança o snapshot até now somando taxa × segundos decorridos em cada total
func (l Live) At(now time.Time) Figures {
	return Extrapolate(l.Snapshot, now.Sub(l.ReceivedAt))
}

func Extrapolate(s domain.Snapshot, elapsed time.Duration) Figures {
	if elapsed < 0 {
		elapsed = 0
	}

	seconds := elapsed.Seconds()
	revTick := s.RevPerSecond * seconds
	expTick := s.ExpPerSecond * seconds

	return Figures{
		RevenueToday:  s.RevenueToday + revTick,
		RevenueMonth:  s.RevenueMonth + revTick,
		RevenueYear:   s.RevenueYear + revTick,
		ExpensesToday: s.ExpensesToday + expTick,
		ExpensesMonth: s.ExpensesMonth + expTick,
		ExpensesYear:  s.ExpensesYear + expTick,
	}
}

// FormatAmount usa separador de milhar e duas casas: 1234567.891 → "1,234,567.89"
func FormatAmount(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

// FormatNet prefixa "+" nos valores positivos
func FormatNet(v float64) string {
	if v >= 0 {
		return "+" + FormatAmount(v)
	}
	return FormatAmount(v)
}

func NetLabel(f Figures) string {
	if f.IsProfit() {
		return "Profit"
	}
	return "Loss"
}
