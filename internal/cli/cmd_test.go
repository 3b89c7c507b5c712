package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/stempel/internal/repository"
	"github.com/alexanderramin/stempel/internal/service"
	"github.com/alexanderramin/stempel/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)

	dayRepo := repository.NewSQLiteDayRepo(db)
	noteRepo := repository.NewSQLiteNoteRepo(db)
	configRepo := repository.NewSQLiteConfigRepo(db)

	return &App{
		Ledger: service.NewLedgerService(dayRepo, noteRepo, configRepo),
		Config: service.NewConfigService(configRepo),
		Export: service.NewExportService(dayRepo, noteRepo, configRepo),
		// IsInteractive left nil — commands never launch forms in tests.
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func decodeShowJSON(t *testing.T, out string) []map[string]any {
	t.Helper()
	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	return rows
}

// --- add command ---

func TestAddCmd_RecordsDay(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "add", "-d", "2020-02-01", "-s=08:00", "-e=16:00", "-b", "30")
	require.NoError(t, err)
	assert.Contains(t, out, "Recorded 2020-02-01")

	out, err = executeCmd(t, app, "show", "-d", "2020-02-01", "-f", "json")
	require.NoError(t, err)
	rows := decodeShowJSON(t, out)
	require.Len(t, rows, 1)
	assert.Equal(t, "08:00", rows[0]["start_time"])
	assert.Equal(t, "16:00", rows[0]["end_time"])
	assert.Equal(t, float64(30), rows[0]["break_minutes"])
	assert.Equal(t, 7.5, rows[0]["working_hours"])
}

func TestAddCmd_FillGapsKeepsExisting(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "add", "-d", "2020-02-01", "-s=07:00")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "add", "-d", "2020-02-01", "-s=12:00", "-e=16:00", "--overwrite=false")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "show", "-d", "2020-02-01", "-f", "json")
	require.NoError(t, err)
	rows := decodeShowJSON(t, out)
	require.Len(t, rows, 1)
	assert.Equal(t, "07:00", rows[0]["start_time"])
	assert.Equal(t, "16:00", rows[0]["end_time"])
}

func TestAddCmd_OverwriteReplaces(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "add", "-d", "2020-02-01", "-s=07:00")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "add", "-d", "2020-02-01", "-s=12:00")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "show", "-d", "2020-02-01", "-f", "json")
	require.NoError(t, err)
	rows := decodeShowJSON(t, out)
	assert.Equal(t, "12:00", rows[0]["start_time"])
}

func TestAddCmd_NoteOnlyCreatesDay(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "add", "-d", "2020-02-01", "-n", "doctor appointment")
	require.NoError(t, err)
	assert.Contains(t, out, "Added note 1 for 2020-02-01")

	out, err = executeCmd(t, app, "show", "-d", "2020-02-01", "-n", "-f", "json")
	require.NoError(t, err)
	rows := decodeShowJSON(t, out)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0]["start_time"])
	notes, ok := rows[0]["notes"].([]any)
	require.True(t, ok)
	require.Len(t, notes, 1)
}

func TestAddCmd_NothingToAdd(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "add", "-d", "2020-02-01")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to add")
}

func TestAddCmd_InvalidDate(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "add", "-d", "01.02.2020", "-s=08:00")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
}

func TestAddCmd_InvalidClock(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "add", "-d", "2020-02-01", "-s=8am")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid time")
}

// --- rm command ---

func TestRmCmd_RequiresExactlyOneSelector(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "rm")
	assert.Error(t, err)

	_, err = executeCmd(t, app, "rm", "-d", "2020-02-01", "-i", "1")
	assert.Error(t, err)
}

func TestRmCmd_RemovesDay(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "add", "-d", "2020-02-01", "-s=08:00")
	require.NoError(t, err)
	out, err := executeCmd(t, app, "rm", "-d", "2020-02-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed 2020-02-01")

	out, err = executeCmd(t, app, "show", "-d", "2020-02-01", "-f", "json")
	require.NoError(t, err)
	assert.Empty(t, decodeShowJSON(t, out))
}

func TestRmCmd_AbsentTargetsAreNoOps(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "rm", "-d", "2020-02-01")
	assert.NoError(t, err)

	_, err = executeCmd(t, app, "rm", "-i", "99")
	assert.NoError(t, err)
}

// --- show command ---

func TestShowCmd_YearWindowKeepsFullHistoryBalance(t *testing.T) {
	app := testApp(t)

	// 2019: one day, +0.2 overtime against the default 7.8.
	_, err := executeCmd(t, app, "add", "-d", "2019-12-30", "-s=08:00", "-e=16:00")
	require.NoError(t, err)
	// 2020: exactly the expected workday.
	_, err = executeCmd(t, app, "add", "-d", "2020-01-02", "-s=08:00", "-e=16:18", "-b", "30")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "show", "-y=2020", "-f", "json")
	require.NoError(t, err)
	rows := decodeShowJSON(t, out)
	require.Len(t, rows, 1)
	assert.Equal(t, "2020-01-02", rows[0]["date"])
	assert.Equal(t, 0.2, rows[0]["cumulative_overtime_hours"], "balance carries history outside the window")
}

func TestShowCmd_MonthWithYear(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "add", "-d", "2020-03-02", "-s=08:00", "-e=16:00")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "add", "-d", "2020-04-01", "-s=08:00", "-e=16:00")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "show", "-m=3", "-y=2020", "-f", "json")
	require.NoError(t, err)
	rows := decodeShowJSON(t, out)
	require.Len(t, rows, 1)
	assert.Equal(t, "2020-03-02", rows[0]["date"])
}

func TestShowCmd_AllAscendingOrder(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "add", "-d", "2021-01-05", "-s=08:00")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "add", "-d", "2020-06-01", "-s=08:00")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "show", "-a", "-f", "json")
	require.NoError(t, err)
	rows := decodeShowJSON(t, out)
	require.Len(t, rows, 2)
	assert.Equal(t, "2020-06-01", rows[0]["date"])
	assert.Equal(t, "2021-01-05", rows[1]["date"])
}

func TestShowCmd_SelectorConflicts(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "show", "-d", "2020-02-01", "-a")
	assert.Error(t, err)

	_, err = executeCmd(t, app, "show", "-a", "-y=2020")
	assert.Error(t, err)
}

func TestShowCmd_DefaultSelectionEmpty(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "No days recorded")
}

func TestShowCmd_UnsupportedFormat(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "show", "-a", "-f", "xml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestShowCmd_NotesOmittedWithoutFlag(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "add", "-d", "2020-02-01", "-s=08:00", "-n", "standup")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "show", "-a", "-f", "json")
	require.NoError(t, err)
	rows := decodeShowJSON(t, out)
	require.Len(t, rows, 1)
	_, present := rows[0]["notes"]
	assert.False(t, present)
}

// --- check command ---

func TestCheckCmd_ReportsMissingFields(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "add", "-d", "2020-03-02", "-s=07:00")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "Missing end_time for 2020-03-02")
	assert.Contains(t, out, "Missing break_minutes for 2020-03-02")
	assert.NotContains(t, out, "Missing start_time")
}

func TestCheckCmd_AllComplete(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "add", "-d", "2020-02-01", "-s=08:00", "-e=16:00", "-b", "30")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "All recorded days are complete.")
}

// --- dump command ---

func TestDumpCmd_WritesFiles(t *testing.T) {
	app := testApp(t)
	dest := t.TempDir()

	_, err := executeCmd(t, app, "add", "-d", "2020-02-01", "-s=08:00", "-e=16:00", "-b", "30")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "dump", "--destination", dest)
	require.NoError(t, err)
	assert.Contains(t, out, "Dumped database to "+dest)

	data, err := os.ReadFile(filepath.Join(dest, "work_hours.dump"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "2020-02-01, 08:00, 16:00, 30")
}

func TestDumpCmd_RequiresDestination(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "dump")
	assert.Error(t, err)
}

// --- config command ---

func TestConfigCmd_SetListRm(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "config", "set", "-k", "expected_workday_hours", "-v", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "Set expected_workday_hours = 8")

	out, err = executeCmd(t, app, "config", "list", "-k", "expected_workday_hours")
	require.NoError(t, err)
	assert.Contains(t, out, "expected_workday_hours = 8")

	out, err = executeCmd(t, app, "config", "rm", "-k", "expected_workday_hours")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed expected_workday_hours")

	_, err = executeCmd(t, app, "config", "list", "-k", "expected_workday_hours")
	assert.Error(t, err)
}

func TestConfigCmd_ListAllIncludesSeededDefault(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "config", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "expected_workday_hours")
	assert.Contains(t, out, "7.8")
}

func TestConfigCmd_ChangedThresholdMovesOvertime(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "config", "set", "-k", "expected_workday_hours", "-v", "7.5")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "add", "-d", "2020-02-01", "-s=08:00", "-e=16:00", "-b", "30")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "show", "-d", "2020-02-01", "-f", "json")
	require.NoError(t, err)
	rows := decodeShowJSON(t, out)
	require.Len(t, rows, 1)
	assert.Equal(t, float64(0), rows[0]["overtime_hours"])
}
