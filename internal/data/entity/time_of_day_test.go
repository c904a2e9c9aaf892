package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{in: "09:00", want: NewTimeOfDay(9, 0)},
		{in: "17:30", want: NewTimeOfDay(17, 30)},
		{in: "13:00:15", want: NewTimeOfDay(13, 0) + TimeOfDay(15*time.Second)},
		{in: "00:00", want: 0},
		{in: "24:00", wantErr: true},
		{in: "9am", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDay_String(t *testing.T) {
	assert.Equal(t, "09:00", NewTimeOfDay(9, 0).String())
	assert.Equal(t, "23:59", NewTimeOfDay(23, 59).String())
	assert.Equal(t, "13:00:15", (NewTimeOfDay(13, 0) + TimeOfDay(15*time.Second)).String())
}

func TestTimeOfDay_Valid(t *testing.T) {
	assert.True(t, NewTimeOfDay(0, 0).Valid())
	assert.True(t, NewTimeOfDay(23, 59).Valid())
	assert.False(t, NewTimeOfDay(24, 0).Valid())
	assert.False(t, TimeOfDay(-time.Minute).Valid())
}

func TestAudit_StampAndTouch(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	updated := created.Add(2 * time.Hour)

	var a Audit
	a.Stamp("System", "API", created)

	assert.Equal(t, "System", a.CreatedBy)
	assert.Equal(t, created, a.CreatedOn)
	assert.Equal(t, "API", a.CreatedFrom)
	assert.Equal(t, a.CreatedOn, a.UpdatedOn)

	a.Touch("60020656", "10.0.0.7", updated)

	assert.Equal(t, "System", a.CreatedBy, "created triple must not change on update")
	assert.Equal(t, created, a.CreatedOn)
	assert.Equal(t, "60020656", a.UpdatedBy)
	assert.Equal(t, updated, a.UpdatedOn)
	assert.Equal(t, "10.0.0.7", a.UpdatedFrom)
}
