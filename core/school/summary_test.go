package school

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	att := func(statuses ...string) []Attendance {
		recs := make([]Attendance, 0, len(statuses))
		for i, s := range statuses {
			recs = append(recs, Attendance{ID: i + 1, UserID: 1, Date: "2024-03-01", Status: s})
		}
		return recs
	}

	tests := []struct {
		name        string
		records     []Attendance
		want        AttendanceSummary
		wantPresent float64
		wantAbsent  float64
	}{
		{name: "no records", records: nil, want: AttendanceSummary{}},
		{name: "two present, one absent", records: att("Present", "Present", "Absent"), want: AttendanceSummary{Present: 2, Absent: 1}, wantPresent: 66.7, wantAbsent: 33.3},
		{name: "all present", records: att("Present", "Present"), want: AttendanceSummary{Present: 2}, wantPresent: 100},
		{name: "one of eight absent", records: att("Present", "Present", "Present", "Present", "Present", "Present", "Present", "Absent"), want: AttendanceSummary{Present: 7, Absent: 1}, wantPresent: 87.5, wantAbsent: 12.5},
		{name: "only exact statuses count", records: att("present", "Absent", "Late", "Present"), want: AttendanceSummary{Present: 1, Absent: 1}, wantPresent: 50, wantAbsent: 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.records)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Present == 0 && tt.want.Absent == 0, got.IsEmpty())
			assert.Equal(t, tt.wantPresent, got.PresentPercent())
			assert.Equal(t, tt.wantAbsent, got.AbsentPercent())
		})
	}
}
