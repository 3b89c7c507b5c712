package report

import (
	"testing"

	"github.com/alexanderramin/stempel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(date string, start, end string, breakMin int) domain.DayRecord {
	return domain.DayRecord{
		Date:         date,
		StartTime:    domain.StrPtr(start),
		EndTime:      domain.StrPtr(end),
		BreakMinutes: domain.IntPtr(breakMin),
	}
}

func TestAggregate_WorkingAndOvertimeHours(t *testing.T) {
	history := []domain.DayRecord{
		day("2020-02-01", "08:00", "16:00", 30),
		day("2020-02-02", "07:00", "15:00", 50),
	}

	summaries := Aggregate(history, 7.8)
	require.Len(t, summaries, 2)

	first := summaries[0]
	require.NotNil(t, first.WorkingHours)
	assert.InDelta(t, 7.5, *first.WorkingHours, 1e-9)
	require.NotNil(t, first.OvertimeHours)
	assert.InDelta(t, -0.3, *first.OvertimeHours, 1e-9)
	assert.InDelta(t, -0.3, first.CumulativeOvertimeHours, 1e-9)

	second := summaries[1]
	assert.Equal(t, 7.17, Round2(*second.WorkingHours))
	assert.Equal(t, -0.63, Round2(*second.OvertimeHours))
	assert.Equal(t, -0.93, Round2(second.CumulativeOvertimeHours))
}

func TestAggregate_CarriesBalanceAcrossIncompleteDays(t *testing.T) {
	history := []domain.DayRecord{
		day("2020-02-01", "08:00", "16:00", 30),
		day("2020-02-02", "07:00", "15:00", 50),
		{Date: "2020-03-02"}, // no times recorded
	}

	summaries := Aggregate(history, 7.8)
	require.Len(t, summaries, 3)

	gap := summaries[2]
	assert.Nil(t, gap.WorkingHours)
	assert.Nil(t, gap.OvertimeHours)
	assert.InDelta(t, summaries[1].CumulativeOvertimeHours, gap.CumulativeOvertimeHours, 1e-9,
		"balance is carried forward unchanged")
}

func TestAggregate_MissingBreakCountsAsZero(t *testing.T) {
	history := []domain.DayRecord{
		{Date: "2020-02-01", StartTime: domain.StrPtr("08:00"), EndTime: domain.StrPtr("16:00")},
	}

	summaries := Aggregate(history, 7.8)
	require.Len(t, summaries, 1)
	require.NotNil(t, summaries[0].WorkingHours)
	assert.InDelta(t, 8.0, *summaries[0].WorkingHours, 1e-9)
}

func TestAggregate_SingleTimeIsNotComputable(t *testing.T) {
	history := []domain.DayRecord{
		{Date: "2020-02-01", StartTime: domain.StrPtr("08:00")},
		{Date: "2020-02-02", EndTime: domain.StrPtr("16:00")},
	}

	summaries := Aggregate(history, 7.8)
	for _, s := range summaries {
		assert.Nil(t, s.WorkingHours)
		assert.Nil(t, s.OvertimeHours)
		assert.Zero(t, s.CumulativeOvertimeHours, "no computable day precedes, balance stays 0")
	}
}

func TestAggregate_NegativeSpanFlowsThrough(t *testing.T) {
	// End before start is not validated; the arithmetic result passes
	// through into the balance.
	history := []domain.DayRecord{
		day("2020-02-01", "16:00", "08:00", 0),
	}

	summaries := Aggregate(history, 7.8)
	require.NotNil(t, summaries[0].WorkingHours)
	assert.InDelta(t, -8.0, *summaries[0].WorkingHours, 1e-9)
	assert.InDelta(t, -15.8, summaries[0].CumulativeOvertimeHours, 1e-9)
}

func TestAggregate_NoRoundingDriftAcrossLongHistory(t *testing.T) {
	// 7:10 of work against a 7.8h day gives overtime with a repeating
	// fraction. Accumulating 300 of them must match the closed form.
	var history []domain.DayRecord
	for i := 0; i < 300; i++ {
		history = append(history, day("2020-01-01", "08:00", "15:40", 30))
	}

	summaries := Aggregate(history, 7.8)
	last := summaries[len(summaries)-1]
	expected := 300 * (430.0/60 - 7.8)
	assert.InDelta(t, expected, last.CumulativeOvertimeHours, 1e-6)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, -0.93, Round2(-0.9333333333))
	assert.Equal(t, 7.17, Round2(7.1666666667))
	assert.Equal(t, 0.0, Round2(0))
}
