package timesheet

import "math"

// WorkedHours computes the worked duration in hours between an in and an out
// time. Shifts that cross midnight come out negative first and get a day
// added back. Pairs that mix a fraction with a clock time resolve to 0; the
// two encodings are never reconciled against each other.
func WorkedHours(in, out TimeValue) float64 {
	if in.Kind == TimeEmpty || out.Kind == TimeEmpty {
		return 0
	}
	if in.Kind != out.Kind {
		return 0
	}

	var hours float64
	switch in.Kind {
	case TimeFraction:
		hours = (out.Fraction - in.Fraction) * 24
	case TimeClock:
		hours = float64(out.Hour-in.Hour) + float64(out.Minute-in.Minute)/60
	}

	if hours < 0 {
		hours += 24
	}
	return round2(hours)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
