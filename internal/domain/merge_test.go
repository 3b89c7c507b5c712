package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeDay_NoExistingRecord(t *testing.T) {
	u := DayUpdate{StartTime: StrPtr("08:00"), BreakMinutes: IntPtr(30)}

	merged := MergeDay(nil, "2024-05-01", u, false)

	assert.Equal(t, "2024-05-01", merged.Date)
	require.NotNil(t, merged.StartTime)
	assert.Equal(t, "08:00", *merged.StartTime)
	assert.Nil(t, merged.EndTime, "absent update field stays absent")
	require.NotNil(t, merged.BreakMinutes)
	assert.Equal(t, 30, *merged.BreakMinutes)
}

func TestMergeDay_Overwrite(t *testing.T) {
	existing := &DayRecord{
		Date:         "2024-05-01",
		StartTime:    StrPtr("08:00"),
		EndTime:      StrPtr("16:00"),
		BreakMinutes: IntPtr(30),
	}

	tests := []struct {
		name       string
		update     DayUpdate
		wantStart  *string
		wantEnd    *string
		wantBreak  *int
	}{
		{
			name:      "provided fields replace stored ones",
			update:    DayUpdate{StartTime: StrPtr("07:00")},
			wantStart: StrPtr("07:00"),
			wantEnd:   StrPtr("16:00"),
			wantBreak: IntPtr(30),
		},
		{
			name:      "absent fields leave stored values unchanged",
			update:    DayUpdate{},
			wantStart: StrPtr("08:00"),
			wantEnd:   StrPtr("16:00"),
			wantBreak: IntPtr(30),
		},
		{
			name:      "all fields replaced",
			update:    DayUpdate{StartTime: StrPtr("09:00"), EndTime: StrPtr("17:30"), BreakMinutes: IntPtr(45)},
			wantStart: StrPtr("09:00"),
			wantEnd:   StrPtr("17:30"),
			wantBreak: IntPtr(45),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := MergeDay(existing, existing.Date, tt.update, true)
			assert.Equal(t, tt.wantStart, merged.StartTime)
			assert.Equal(t, tt.wantEnd, merged.EndTime)
			assert.Equal(t, tt.wantBreak, merged.BreakMinutes)
		})
	}
}

func TestMergeDay_FillGapsNeverReplacesStoredData(t *testing.T) {
	existing := &DayRecord{
		Date:      "2024-05-01",
		StartTime: StrPtr("07:00"),
	}
	u := DayUpdate{
		StartTime:    StrPtr("12:00"), // must be ignored, start is already set
		EndTime:      StrPtr("15:00"),
		BreakMinutes: IntPtr(20),
	}

	merged := MergeDay(existing, existing.Date, u, false)

	require.NotNil(t, merged.StartTime)
	assert.Equal(t, "07:00", *merged.StartTime, "stored data must survive a no-overwrite update")
	require.NotNil(t, merged.EndTime)
	assert.Equal(t, "15:00", *merged.EndTime, "gap is filled from the update")
	require.NotNil(t, merged.BreakMinutes)
	assert.Equal(t, 20, *merged.BreakMinutes)
}

func TestMergeDay_FillGapsAbsentStaysAbsent(t *testing.T) {
	existing := &DayRecord{Date: "2024-05-01", EndTime: StrPtr("16:00")}

	merged := MergeDay(existing, existing.Date, DayUpdate{}, false)

	assert.Nil(t, merged.StartTime)
	assert.Equal(t, "16:00", *merged.EndTime)
	assert.Nil(t, merged.BreakMinutes)
}

func TestMergeDay_OverwriteIsIdempotent(t *testing.T) {
	existing := &DayRecord{Date: "2024-05-01", StartTime: StrPtr("08:00")}
	u := DayUpdate{StartTime: StrPtr("07:15"), EndTime: StrPtr("15:45")}

	once := MergeDay(existing, existing.Date, u, true)
	twice := MergeDay(&once, once.Date, u, true)

	assert.Equal(t, once, twice)
}
