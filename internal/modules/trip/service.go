// README: Trip info calculator: crew sizing and amplitude classification.
package trip

import (
	"fmt"
	"time"
)

// ClassifyAmplitude maps a same-day elapsed duration onto a grid column using
// ascending thresholds. Beyond the 12h column there is no plain single-shift
// arrangement left, so the split-duty column is returned together with
// exceeded=true; callers must surface that instead of silently charging the
// cheaper column. An operator scheduling a rest break picks Amplitude9hBreak
// explicitly; this duration-only mapping is only the default.
func ClassifyAmplitude(elapsed time.Duration) (Amplitude, bool) {
	switch {
	case elapsed <= 8*time.Hour:
		return Amplitude8h, false
	case elapsed <= 10*time.Hour:
		return Amplitude10h, false
	case elapsed <= 12*time.Hour:
		return Amplitude12h, false
	}
	return Amplitude9hBreak, true
}

// ComputeInfo derives driver count, day amplitude and the two-driver reason
// from the caller-supplied trip description. Pure: it never touches the rate
// tables.
func ComputeInfo(distanceKm float64, svc ServiceType, departure, ret time.Time, rules Rules) Info {
	info := Info{DriverCount: 1}

	oneWay := drivingTime(distanceKm, rules.AvgSpeedKmh)

	switch {
	case svc == ServiceDayTrip:
		// Out and back within one duty day.
		info.DrivingTime = 2 * oneWay
		if ret.After(departure) {
			info.DayAmplitude = ret.Sub(departure)
		}
		info.Amplitude, info.AmplitudeExceeded = ClassifyAmplitude(info.DayAmplitude)

		if info.DrivingTime > rules.MaxDailyDrive {
			info.DriverCount = 2
			info.TwoDriverReason = fmt.Sprintf(
				"estimated driving time %s exceeds the %s daily driving limit for one driver",
				fmtHours(info.DrivingTime), fmtHours(rules.MaxDailyDrive))
		} else if info.DayAmplitude > rules.MaxAmplitude {
			info.DriverCount = 2
			info.TwoDriverReason = fmt.Sprintf(
				"day amplitude %s exceeds the %s single-driver ceiling",
				fmtHours(info.DayAmplitude), fmtHours(rules.MaxAmplitude))
		}

	default:
		// One-way and multi-day services drive at most one leg per day.
		info.DrivingTime = oneWay
		if info.DrivingTime > rules.MaxDailyDrive {
			info.DriverCount = 2
			info.TwoDriverReason = fmt.Sprintf(
				"estimated driving time %s on a single leg exceeds the %s daily driving limit for one driver",
				fmtHours(info.DrivingTime), fmtHours(rules.MaxDailyDrive))
		}
	}

	return info
}

func drivingTime(distanceKm, avgSpeedKmh float64) time.Duration {
	if avgSpeedKmh <= 0 || distanceKm <= 0 {
		return 0
	}
	return time.Duration(distanceKm / avgSpeedKmh * float64(time.Hour))
}

func fmtHours(d time.Duration) string {
	return fmt.Sprintf("%.1fh", d.Hours())
}
