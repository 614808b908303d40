package volunteer

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelter-backend/internal/domains/schedule"
	"shelter-backend/internal/shared/utils"
)

func TestVolunteerRequest_FlatJSON(t *testing.T) {
	var req VolunteerRequest
	raw := `{"notes":"weekends","scheduleId":99,"days":["SATURDAY"],"startTimeHour":10,"endTimeHour":14}`
	require.NoError(t, json.Unmarshal([]byte(raw), &req))

	assert.Equal(t, "weekends", *req.Notes)
	assert.Equal(t, []string{"SATURDAY"}, req.Days)
	assert.Equal(t, 10, *req.StartTimeHour)
	assert.NoError(t, req.ValidateCreate())
}

func TestVolunteerRequest_ValidateCreateNeedsDays(t *testing.T) {
	req := VolunteerRequest{Notes: utils.Ptr("x")}
	assert.Error(t, req.ValidateCreate())
	assert.NoError(t, req.Validate())
}

func TestWithSchedule_ToDTO(t *testing.T) {
	w := WithSchedule{
		Volunteer: Volunteer{ID: 3, Notes: "n", ScheduleID: 7},
		Schedule:  schedule.Schedule{ID: 7, Days: []time.Weekday{time.Monday}, StartHour: 8, EndHour: 9},
	}

	dto := w.ToDTO()
	assert.Equal(t, int64(3), dto.ID)
	assert.Equal(t, int64(7), dto.ScheduleID)
	assert.Equal(t, []string{"MONDAY"}, dto.Days)
	assert.Equal(t, "Hours: MON from 08:00 to 09:00", dto.ScheduleString)
}

func TestApplyUpdate_KeepsIDs(t *testing.T) {
	w := WithSchedule{
		Volunteer: Volunteer{ID: 3, Notes: "old", ScheduleID: 7},
		Schedule:  schedule.Schedule{ID: 7, Days: []time.Weekday{time.Monday}, StartHour: 8, EndHour: 9},
	}

	req := VolunteerRequest{Notes: utils.Ptr("new")}
	req.EndTimeHour = utils.Ptr(12)
	require.NoError(t, req.ApplyUpdate(&w))

	assert.Equal(t, "new", w.Volunteer.Notes)
	assert.Equal(t, 12, w.Schedule.EndHour)
	assert.Equal(t, 8, w.Schedule.StartHour)
	assert.Equal(t, int64(3), w.Volunteer.ID)
	assert.Equal(t, int64(7), w.Schedule.ID)
}
