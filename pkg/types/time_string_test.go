package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "hh:mm", input: "09:30", want: "09:30"},
		{name: "with seconds", input: "17:00:00", want: "17:00"},
		{name: "end of day", input: "24:00", want: "24:00"},
		{name: "trimmed", input: " 08:15 ", want: "08:15"},
		{name: "bad hour", input: "25:00", wantErr: true},
		{name: "bad minute", input: "10:60", wantErr: true},
		{name: "past midnight", input: "24:01", wantErr: true},
		{name: "no colon", input: "0930", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	start := TimeString("09:00")
	assert.Equal(t, 540, start.Minutes())
	assert.Equal(t, 1440, TimeString("24:00").Minutes())

	assert.True(t, start.IsBefore("10:30"))
	assert.False(t, TimeString("10:30").IsBefore(start))
	assert.False(t, start.IsBefore(start))

	assert.Equal(t, -1, TimeString("nope").Minutes())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:45:00"))
	assert.Equal(t, TimeString("14:45"), ts)

	require.NoError(t, ts.Scan([]byte("07:05:00")))
	assert.Equal(t, TimeString("07:05"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 18, 20, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("18:20"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))

	v, err := TimeString("12:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "12:00", v)
}
