package school

import "math"

// AttendanceSummary counts a student's Present and Absent records.
type AttendanceSummary struct {
	Present int
	Absent  int
}

// Summarize counts records whose status is exactly StatusPresent or StatusAbsent; any other status is ignored.
func Summarize(records []Attendance) AttendanceSummary {
	var sum AttendanceSummary
	for _, r := range records {
		switch r.Status {
		case StatusPresent:
			sum.Present++
		case StatusAbsent:
			sum.Absent++
		}
	}
	return sum
}

func (s AttendanceSummary) Total() int { return s.Present + s.Absent }

func (s AttendanceSummary) IsEmpty() bool { return s.Total() == 0 }

// PresentPercent is the share of Present records, rounded to one decimal.
func (s AttendanceSummary) PresentPercent() float64 { return s.percent(s.Present) }

// AbsentPercent is the share of Absent records, rounded to one decimal.
func (s AttendanceSummary) AbsentPercent() float64 { return s.percent(s.Absent) }

func (s AttendanceSummary) percent(n int) float64 {
	if s.Total() == 0 {
		return 0
	}
	return math.Round(float64(n)*1000/float64(s.Total())) / 10
}
