package api

import (
	"time"

	"github.com/zapponejosh/hebcal-api/internal/hebcal"
)

// Clock supplies today's date. The conversion engine never reads the
// system clock itself; handlers receive one of these so tests can pin
// the date.
type Clock interface {
	Today() hebcal.GregorianDate
}

type systemClock struct{}

func (systemClock) Today() hebcal.GregorianDate {
	return hebcal.GregorianFromTime(time.Now())
}

// SystemClock returns a Clock backed by the local system time.
func SystemClock() Clock {
	return systemClock{}
}
