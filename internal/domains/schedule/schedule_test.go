package schedule

import (
	"errors"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelter-backend/internal/shared/utils"
)

func TestScheduleString(t *testing.T) {
	tests := []struct {
		name string
		s    Schedule
		want string
	}{
		{
			name: "two days",
			s:    Schedule{Days: []time.Weekday{time.Tuesday, time.Monday}, StartHour: 9, EndHour: 17, EndMinute: 30},
			want: "Hours: MON, TUE from 09:00 to 17:30",
		},
		{
			name: "sunday sorts last",
			s:    Schedule{Days: []time.Weekday{time.Sunday, time.Saturday}, StartHour: 10, StartMinute: 5, EndHour: 12},
			want: "Hours: SAT, SUN from 10:05 to 12:00",
		},
		{
			name: "single day",
			s:    Schedule{Days: []time.Weekday{time.Wednesday}, StartHour: 8, EndHour: 9},
			want: "Hours: WED from 08:00 to 09:00",
		},
		{
			name: "no days",
			s:    Schedule{StartHour: 8, EndHour: 9},
			want: "Hours: from 08:00 to 09:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.s.String())
		})
	}
}

func TestScheduleString_SkipsOutOfRangeWeekday(t *testing.T) {
	s := Schedule{Days: []time.Weekday{time.Weekday(9), time.Monday, time.Weekday(-1)}, StartHour: 9, EndHour: 17}

	assert.NotPanics(t, func() { _ = s.String() })
	assert.Equal(t, "Hours: MON from 09:00 to 17:00", s.String())
	assert.Equal(t, []string{"MONDAY"}, DayNames(s.Days))
}

func TestParseDays(t *testing.T) {
	days, err := ParseDays([]string{"friday", "MONDAY", "Monday"})
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Monday, time.Friday}, days)

	_, err = ParseDays([]string{"FUNDAY"})
	assert.ErrorIs(t, err, ErrInvalidDay)
}

func TestToDTO(t *testing.T) {
	s := Schedule{ID: 7, Days: []time.Weekday{time.Friday, time.Monday}, StartHour: 9, EndHour: 17, EndMinute: 30}

	want := ScheduleDTO{
		ScheduleID:     7,
		Days:           []string{"MONDAY", "FRIDAY"},
		StartTimeHour:  9,
		EndTimeHour:    17,
		EndTimeMinute:  30,
		ScheduleString: "Hours: MON, FRI from 09:00 to 17:30",
	}
	if diff := cmp.Diff(want, s.ToDTO()); diff != "" {
		t.Errorf("ToDTO() mismatch (-want +got):\n%s", diff)
	}
}

func TestScheduleRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     ScheduleRequest
		create  bool
		wantErr string
	}{
		{name: "valid create", req: ScheduleRequest{Days: []string{"MONDAY"}, StartTimeHour: utils.Ptr(9)}, create: true},
		{name: "hour out of range", req: ScheduleRequest{StartTimeHour: utils.Ptr(24)}, wantErr: "startTimeHour"},
		{name: "negative minute", req: ScheduleRequest{EndTimeMinute: utils.Ptr(-1)}, wantErr: "endTimeMinute"},
		{name: "minute out of range", req: ScheduleRequest{StartTimeMinute: utils.Ptr(60)}, wantErr: "startTimeMinute"},
		{name: "bad day", req: ScheduleRequest{Days: []string{"MONDAY", "NOPE"}}, wantErr: "days"},
		{name: "create needs days", req: ScheduleRequest{StartTimeHour: utils.Ptr(9)}, create: true, wantErr: "days"},
		{name: "partial update without days", req: ScheduleRequest{StartTimeHour: utils.Ptr(9)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.create {
				err = tt.req.ValidateCreate()
			} else {
				err = tt.req.Validate()
			}

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			var verrs validation.Errors
			require.True(t, errors.As(err, &verrs), "expected validation.Errors, got %v", err)
			assert.Contains(t, verrs, tt.wantErr)
		})
	}
}

func TestApplyUpdateKeepsAbsentFields(t *testing.T) {
	s := &Schedule{ID: 3, Days: []time.Weekday{time.Monday}, StartHour: 9, StartMinute: 15, EndHour: 17}

	err := ScheduleRequest{EndTimeHour: utils.Ptr(18)}.ApplyUpdate(s)
	require.NoError(t, err)

	assert.Equal(t, int64(3), s.ID)
	assert.Equal(t, []time.Weekday{time.Monday}, s.Days)
	assert.Equal(t, 9, s.StartHour)
	assert.Equal(t, 15, s.StartMinute)
	assert.Equal(t, 18, s.EndHour)
}
