package dateutil

import (
	"time"
)

const (
	DateLayout = "2006-01-02"
	HMLayout   = "15:04"
)

// --------------------------------------------------
// Datas em dia-granularidade são sempre normalizadas
// para meia-noite UTC (evita drift de fuso entre
// cliente e servidor)
// --------------------------------------------------

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func Midnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func ParseHM(s string) (hour, minute int, err error) {
	t, err := time.Parse(HMLayout, s)
	if err != nil {
		return 0, 0, err
	}
	return t.Hour(), t.Minute(), nil
}

// AtTime posiciona um horário HH:MM sobre a data (meia-noite UTC) informada.
func AtTime(date time.Time, hm string) (time.Time, error) {
	h, m, err := ParseHM(hm)
	if err != nil {
		return time.Time{}, err
	}
	d := Midnight(date)
	return d.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute), nil
}

func FormatHM(t time.Time) string {
	return t.UTC().Format(HMLayout)
}

// SameMonthDay compara apenas mês e dia (ignora o ano).
func SameMonthDay(a, b time.Time) bool {
	au, bu := a.UTC(), b.UTC()
	return au.Month() == bu.Month() && au.Day() == bu.Day()
}

func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
