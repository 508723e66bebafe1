// Package usecase derives market states from fixed exchange schedules.
package usecase

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // コンテナにタイムゾーンDBがなくても動作させる

	"stock_dashboard/internal/feature/markethours/domain"
	"stock_dashboard/internal/feature/markethours/domain/entity"
	qentity "stock_dashboard/internal/feature/quotes/domain/entity"
)

func hm(h, m int) int { return h*60 + m }

// DefaultSchedules returns the schedules of the exchanges the dashboard displays, in display order.
func DefaultSchedules() []entity.Schedule {
	newYork := mustLoad("America/New_York")
	berlin := mustLoad("Europe/Berlin")
	return []entity.Schedule{
		{Exchange: "NYSE", Location: newYork, Open: hm(9, 30), Close: hm(16, 0), PreOpen: hm(4, 0), PostClose: hm(20, 0)},
		{Exchange: "NASDAQ", Location: newYork, Open: hm(9, 30), Close: hm(16, 0), PreOpen: hm(4, 0), PostClose: hm(20, 0)},
		{Exchange: "XETRA", Location: berlin, Open: hm(9, 0), Close: hm(17, 30)},
		{Exchange: "GETTEX", Location: berlin, Open: hm(8, 0), Close: hm(22, 0)},
	}
}

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("load time zone %s: %v", name, err))
	}
	return loc
}

// StateAt returns the market state of s at now. Weekends are always CLOSED; holidays are not modelled.
func StateAt(s entity.Schedule, now time.Time) qentity.MarketState {
	local := now.In(s.Location)
	if isWeekend(local) {
		return qentity.MarketStateClosed
	}
	m := minutesOfDay(local)

	if s.HasExtendedHours() {
		if m >= s.PreOpen && m < s.Open {
			return qentity.MarketStatePre
		}
		if m >= s.Close && m < s.PostClose {
			return qentity.MarketStatePost
		}
	}
	if m >= s.Open && m < s.Close {
		return qentity.MarketStateRegular
	}
	return qentity.MarketStateClosed
}

// NextEvent returns the next regular-session boundary on the same local day.
// ok is false on weekends and after the close.
func NextEvent(s entity.Schedule, now time.Time) (event entity.Event, minutes int, ok bool) {
	local := now.In(s.Location)
	if isWeekend(local) {
		return "", 0, false
	}
	m := minutesOfDay(local)
	switch {
	case m < s.Open:
		return entity.EventOpen, s.Open - m, true
	case m < s.Close:
		return entity.EventClose, s.Close - m, true
	}
	return "", 0, false
}

// FormatCountdown renders minutes as "2h 5m" or "45m".
func FormatCountdown(minutes int) string {
	h, m := minutes/60, minutes%60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// Status combines StateAt and NextEvent.
func Status(s entity.Schedule, now time.Time) entity.MarketStatus {
	state := StateAt(s, now)
	st := entity.MarketStatus{
		Exchange: s.Exchange,
		State:    state,
		IsOpen:   state == qentity.MarketStateRegular,
	}
	if ev, mins, ok := NextEvent(s, now); ok {
		st.NextEvent, st.MinutesUntil, st.Countdown = ev, mins, FormatCountdown(mins)
	}
	return st
}

func isWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// MarketHoursUsecase は取引所スケジュールから現在の市場状態を返します。
type MarketHoursUsecase struct {
	schedules []entity.Schedule
	now       func() time.Time
}

// NewMarketHoursUsecase creates a MarketHoursUsecase. A nil now uses time.Now.
func NewMarketHoursUsecase(schedules []entity.Schedule, now func() time.Time) *MarketHoursUsecase {
	if now == nil {
		now = time.Now
	}
	return &MarketHoursUsecase{schedules: schedules, now: now}
}

// GetStatus returns the status of one exchange (case-insensitive).
func (u *MarketHoursUsecase) GetStatus(exchange string) (entity.MarketStatus, error) {
	name := strings.ToUpper(strings.TrimSpace(exchange))
	for _, s := range u.schedules {
		if s.Exchange == name {
			return Status(s, u.now()), nil
		}
	}
	return entity.MarketStatus{}, fmt.Errorf("%w: %q", domain.ErrUnknownExchange, exchange)
}

// GetAll returns the status of every known exchange at the same instant.
func (u *MarketHoursUsecase) GetAll() []entity.MarketStatus {
	now := u.now()
	out := make([]entity.MarketStatus, 0, len(u.schedules))
	for _, s := range u.schedules {
		out = append(out, Status(s, now))
	}
	return out
}
