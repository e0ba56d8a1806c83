package school

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/masomo-desk/core"
)

func fieldErrors(t *testing.T, err error) []core.FieldError {
	t.Helper()
	vErr, ok := errors.Cause(err).(*core.ValidationError)
	require.True(t, ok, "want *core.ValidationError, got %v", err)
	return vErr.Fields
}

func TestNewAttendance_Validate(t *testing.T) {
	tests := []struct {
		name       string
		form       NewAttendance
		want       Attendance
		wantFields []core.FieldError
	}{
		{
			name: "valid",
			form: NewAttendance{StudentID: " 3 ", Date: "2024-03-01", Status: "Present"},
			want: Attendance{UserID: 3, Date: "2024-03-01", Status: StatusPresent},
		},
		{
			name:       "blank fields",
			form:       NewAttendance{StudentID: "", Date: "  ", Status: "Absent"},
			wantFields: []core.FieldError{{Field: "student_id", Error: core.RequiredText}, {Field: "date", Error: core.RequiredText}},
		},
		{
			name:       "unknown status",
			form:       NewAttendance{StudentID: "3", Date: "2024-03-01", Status: "Late"},
			wantFields: []core.FieldError{{Field: "status"}},
		},
		{
			name:       "non numeric student id",
			form:       NewAttendance{StudentID: "abc", Date: "2024-03-01", Status: "Absent"},
			wantFields: []core.FieldError{{Field: "student_id", Error: "must be a whole number"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.form.Validate()
			if tt.wantFields != nil {
				flds := fieldErrors(t, err)
				require.Len(t, flds, len(tt.wantFields))
				for i, want := range tt.wantFields {
					assert.Equal(t, want.Field, flds[i].Field)
					if want.Error != "" {
						assert.Equal(t, want.Error, flds[i].Error)
					}
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewMark_Validate(t *testing.T) {
	tests := []struct {
		name      string
		form      NewMark
		want      Mark
		wantField string
	}{
		{name: "valid", form: NewMark{StudentID: "1", Semester: "2", Subject: " Math ", Marks: "88"}, want: Mark{UserID: 1, Semester: 2, Subject: "Math", Marks: 88}},
		{name: "blank subject", form: NewMark{StudentID: "1", Semester: "2", Subject: "", Marks: "88"}, wantField: "subject"},
		{name: "non numeric semester", form: NewMark{StudentID: "1", Semester: "two", Subject: "Math", Marks: "88"}, wantField: "semester"},
		{name: "non numeric marks", form: NewMark{StudentID: "1", Semester: "2", Subject: "Math", Marks: "8.5"}, wantField: "marks"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.form.Validate()
			if tt.wantField != "" {
				flds := fieldErrors(t, err)
				require.Len(t, flds, 1)
				assert.Equal(t, tt.wantField, flds[0].Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewAssignment_Validate(t *testing.T) {
	form := NewAssignment{StudentID: "4", Title: "Essay", Description: "On rivers", Deadline: "2024-05-01"}
	got, err := form.Validate()
	require.NoError(t, err)
	assert.Equal(t, Assignment{UserID: 4, Title: "Essay", Description: "On rivers", Deadline: "2024-05-01", Status: StatusPending}, got)

	form.Description = " "
	_, err = form.Validate()
	assert.True(t, core.IsValidationError(err))
}

func TestNewNotification_Validate(t *testing.T) {
	nn := NewNotification{UserID: 0, Message: "hi", Date: "2024-03-01"}
	assert.True(t, core.IsValidationError(nn.Validate()))

	nn.UserID = 1
	assert.NoError(t, nn.Validate())
}
