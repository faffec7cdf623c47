package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:00", want: 540},
		{in: "14:30", want: 870},
		{in: "23:59", want: 1439},
		{in: "9:05", want: 545},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "12-30", wantErr: true},
		{in: "ab:cd", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := TimeToMinutes(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				var fe *FormatError
				assert.ErrorAs(t, err, &fe)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinutesToTime(t *testing.T) {
	tests := []struct {
		in      int
		want    string
		wantErr bool
	}{
		{in: 0, want: "00:00"},
		{in: 540, want: "09:00"},
		{in: 650, want: "10:50"},
		{in: 1439, want: "23:59"},
		{in: -1, wantErr: true},
		{in: 1440, wantErr: true},
	}
	for _, tt := range tests {
		got, err := MinutesToTime(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "minutes=%d", tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestAddMinutes(t *testing.T) {
	got, err := AddMinutes("10:00", 50)
	require.NoError(t, err)
	assert.Equal(t, "10:50", got)

	got, err = AddMinutes("09:45", 15)
	require.NoError(t, err)
	assert.Equal(t, "10:00", got)

	// Runs past midnight: rejected, not wrapped.
	_, err = AddMinutes("23:50", 20)
	assert.Error(t, err)
}

func TestTo24Hour(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "02:30 PM", want: "14:30"},
		{in: "09:00 AM", want: "09:00"},
		{in: "12:00 PM", want: "12:00"}, // noon
		{in: "12:00 AM", want: "00:00"}, // midnight
		{in: "11:45 PM", want: "23:45"},
		{in: "02:30", wantErr: true},
		{in: "13:00 PM", wantErr: true},
		{in: "02:30 XM", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := To24Hour(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTo12Hour(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "14:30", want: "02:30 PM"},
		{in: "09:00", want: "09:00 AM"},
		{in: "12:00", want: "12:00 PM"},
		{in: "00:00", want: "12:00 AM"},
		{in: "23:45", want: "11:45 PM"},
	}
	for _, tt := range tests {
		got, err := To12Hour(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestRoundTrip12And24(t *testing.T) {
	for _, t24 := range []string{"00:00", "06:15", "12:00", "12:45", "18:30", "23:59"} {
		t12, err := To12Hour(t24)
		require.NoError(t, err)
		back, err := To24Hour(t12)
		require.NoError(t, err)
		assert.Equal(t, t24, back)
	}
}

func TestIs12Hour(t *testing.T) {
	assert.True(t, Is12Hour("02:30 PM"))
	assert.True(t, Is12Hour("10:00 am"))
	assert.False(t, Is12Hour("14:30"))
}
