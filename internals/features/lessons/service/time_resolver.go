// file: internals/features/lessons/service/time_resolver.go
package service

import (
	"time"

	"lesprivat_backend/internals/helpers/dbtime"
	"lesprivat_backend/internals/helpers/errs"
)

const minuteMillis = 60_000

// TimeResolver mengubah wall-clock (timezone + tanggal + jam + menit) jadi
// epoch millis, dan meresolve batas billing period. "now" datang dari Clock
// yang bisa diinject.
type TimeResolver struct {
	clock dbtime.Clock
}

func NewTimeResolver(clock dbtime.Clock) TimeResolver {
	if clock == nil {
		clock = dbtime.SystemClock{}
	}
	return TimeResolver{clock: clock}
}

// ResolveWallClock: (timezone, "YYYY-MM-DD", jam 0–23, menit 0–59) → epoch ms
// pada momen wall-clock itu di zona tersebut.
func (r TimeResolver) ResolveWallClock(timezone, date string, hour, minute int) (int64, error) {
	if timezone == "" || date == "" {
		return 0, errs.New(errs.KindInvalidInput, "lesson_timezone dan lesson_start_date wajib diisi")
	}
	if hour < 0 || hour > 23 {
		return 0, errs.Newf(errs.KindInvalidInput, "lesson_start_hour di luar rentang 0-23: %d", hour)
	}
	if minute < 0 || minute > 59 {
		return 0, errs.Newf(errs.KindInvalidInput, "lesson_start_minute di luar rentang 0-59: %d", minute)
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return 0, errs.Newf(errs.KindInvalidInput, "timezone tidak dikenal: %s", timezone)
	}
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return 0, errs.Newf(errs.KindInvalidInput, "lesson_start_date tidak valid (format YYYY-MM-DD): %s", date)
	}
	t := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc)
	return t.UnixMilli(), nil
}

// EndFor menurunkan end time dari start + panjang les.
func EndFor(startMillis int64, lengthMinutes int) int64 {
	return startMillis + int64(lengthMinutes)*minuteMillis
}

func daysInMonth(year int, month time.Month) int {
	// hari ke-0 bulan berikutnya = hari terakhir bulan ini
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// paymentBoundary: tengah malam tanggal gajian di (year, month). Tanggal yang
// mustahil (31 Februari) digeser maju ke tanggal 1 bulan berikutnya — satu-
// satunya clamping yang dilakukan resolver ini.
func paymentBoundary(year int, month time.Month, payDay int, loc *time.Location) time.Time {
	if payDay > daysInMonth(year, month) {
		return time.Date(year, month+1, 1, 0, 0, 0, 0, loc) // time.Date menormalkan Desember+1
	}
	return time.Date(year, month, payDay, 0, 0, 0, 0, loc)
}

// BillingPeriod meresolve rentang [start, end) billing period yang memuat
// "now" untuk payment day 1–31 di zona loc.
func (r TimeResolver) BillingPeriod(payDay int, loc *time.Location) (time.Time, time.Time, error) {
	if payDay < 1 || payDay > 31 {
		return time.Time{}, time.Time{}, errs.Newf(errs.KindInvalidInput, "payment_day di luar rentang 1-31: %d", payDay)
	}
	if loc == nil {
		loc = time.UTC
	}
	now := r.clock.Now().In(loc)

	// end = boundary terkecil yang > now; start = boundary satu bulan sebelumnya
	year, month := now.Year(), now.Month()
	end := paymentBoundary(year, month, payDay, loc)
	for !end.After(now) {
		year, month = nextMonth(year, month)
		end = paymentBoundary(year, month, payDay, loc)
	}
	prevYear, prevMonth := prevMonth(year, month)
	start := paymentBoundary(prevYear, prevMonth, payDay, loc)
	return start, end, nil
}

// BillingPeriodFromStartDate: periode berjalan ber-anchor tanggal mulai
// kontrak customer/teacher (day-of-month-nya yang dipakai).
func (r TimeResolver) BillingPeriodFromStartDate(startDate time.Time, loc *time.Location) (time.Time, time.Time, error) {
	return r.BillingPeriod(startDate.Day(), loc)
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

func prevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}
