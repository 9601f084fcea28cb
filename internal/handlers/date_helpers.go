package handlers

import (
	"time"

	"github.com/navalhaapp/barber-booking/internal/dateutil"
)

// --------------------------------------------------
// Datas de agenda são interpretadas em UTC (dia em
// meia-noite UTC) para evitar drift entre cliente e
// servidor.
// --------------------------------------------------

func parseDateParam(dateStr string) (time.Time, error) {
	return dateutil.ParseDate(dateStr)
}

func parseDateTimeParam(dateStr, timeStr string) (time.Time, error) {
	return time.Parse("2006-01-02 15:04", dateStr+" "+timeStr)
}
