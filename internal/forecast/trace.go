package forecast

import (
	"github.com/finassist/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Allocation is money handed to a single goal or wishlist item.
type Allocation struct {
	ID      uuid.UUID       `json:"id" example:"2f1e5f52-3f3f-4a5e-8f0a-59d1e1bca1d2"`
	Name    string          `json:"name" example:"New laptop"`
	Amount  decimal.Decimal `json:"amount" example:"25000"`
	Reached bool            `json:"reached" example:"false"` // The target was reached with this allocation
}

// DayTrace describes a day on which money was allocated.
type DayTrace struct {
	Date          types.Date      `json:"date" example:"2025-01-10"`
	Incomes       decimal.Decimal `json:"incomes" example:"40000"`
	Bonuses       decimal.Decimal `json:"bonuses" example:"0"`
	Outflows      decimal.Decimal `json:"outflows" example:"12000"`
	BalanceBefore decimal.Decimal `json:"balanceBefore" example:"28000"`
	BalanceAfter  decimal.Decimal `json:"balanceAfter" example:"0"`
	Goals         []Allocation    `json:"goals"`
	Wishlist      []Allocation    `json:"wishlist"`
}

// Tracer receives allocation traces during a forecast run.
type Tracer interface {
	Trace(DayTrace)
}

// Recorder is a Tracer that keeps all traces in memory.
type Recorder struct {
	Days []DayTrace
}

func (r *Recorder) Trace(t DayTrace) {
	r.Days = append(r.Days, t)
}

// LogTracer is a Tracer that writes every trace as a debug log line.
type LogTracer struct {
	Logger zerolog.Logger
}

func (l LogTracer) Trace(t DayTrace) {
	goals := zerolog.Dict()
	for _, a := range t.Goals {
		goals.Str(a.Name, a.Amount.String())
	}

	wishlist := zerolog.Dict()
	for _, a := range t.Wishlist {
		wishlist.Str(a.Name, a.Amount.String())
	}

	l.Logger.Debug().
		Str("date", t.Date.String()).
		Str("incomes", t.Incomes.String()).
		Str("bonuses", t.Bonuses.String()).
		Str("outflows", t.Outflows.String()).
		Str("balance_before", t.BalanceBefore.String()).
		Str("balance_after", t.BalanceAfter.String()).
		Dict("goals", goals).
		Dict("wishlist", wishlist).
		Msg("forecast allocation")
}

// Tracers passes every trace to all of its tracers.
type Tracers []Tracer

func (ts Tracers) Trace(t DayTrace) {
	for _, tracer := range ts {
		tracer.Trace(t)
	}
}
