// README: Trip-level definitions: service types, amplitude columns, crew rules.
package trip

import "time"

// ServiceType is the kind of charter being priced. Each value selects one of
// the four rate grids.
type ServiceType string

const (
	ServiceOneWay            ServiceType = "aller_simple"
	ServiceDayTrip           ServiceType = "ar_journee"
	ServiceMultiDayStandby   ServiceType = "ar_sejour_mad"
	ServiceMultiDayNoStandby ServiceType = "ar_sejour_sans_mad"
)

func (s ServiceType) Valid() bool {
	switch s {
	case ServiceOneWay, ServiceDayTrip, ServiceMultiDayStandby, ServiceMultiDayNoStandby:
		return true
	}
	return false
}

// MultiDay reports whether the service spans several days (MAD or not).
func (s ServiceType) MultiDay() bool {
	return s == ServiceMultiDayStandby || s == ServiceMultiDayNoStandby
}

// Amplitude is a column of the same-day round-trip grid. Amplitude9hBreak is
// the split-duty day: total spread above the plain 9h duty limit, legal with
// a rest break in the middle.
type Amplitude string

const (
	Amplitude8h      Amplitude = "8h"
	Amplitude10h     Amplitude = "10h"
	Amplitude12h     Amplitude = "12h"
	Amplitude9hBreak Amplitude = "9h_coupure"
)

func (a Amplitude) Valid() bool {
	switch a {
	case Amplitude8h, Amplitude10h, Amplitude12h, Amplitude9hBreak:
		return true
	}
	return false
}

// Rules are the legal/operational crew-sizing parameters. They come from the
// operational configuration, never from the rate tables.
type Rules struct {
	// AvgSpeedKmh converts kilometres into estimated driving hours.
	AvgSpeedKmh float64
	// MaxDailyDrive is the daily driving ceiling for a single driver.
	MaxDailyDrive time.Duration
	// MaxAmplitude is the single-driver amplitude ceiling for a same-day duty.
	MaxAmplitude time.Duration
}

// Info is what the calculator derives from distance, service type and timing.
// It is recomputed on every input change and never persisted.
type Info struct {
	DriverCount       int           `json:"driver_count"`
	DayAmplitude      time.Duration `json:"day_amplitude"`
	Amplitude         Amplitude     `json:"amplitude"`
	AmplitudeExceeded bool          `json:"amplitude_exceeded"`
	DrivingTime       time.Duration `json:"driving_time"`
	TwoDriverReason   string        `json:"two_driver_reason,omitempty"`
}
