package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claritypath/themedeck/internal/cssvars"
	"github.com/claritypath/themedeck/internal/db"
	"github.com/claritypath/themedeck/internal/models"
	"github.com/claritypath/themedeck/internal/store"
	"github.com/claritypath/themedeck/internal/theme"
	"github.com/claritypath/themedeck/internal/themed"
)

// runCLI executes the root command in an isolated config/data home.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, "data"))
	return execute(t, args...)
}

// execute runs the root command with the current environment.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	appConfig = nil
	progressOut = io.Discard

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if slice, ok := f.Value.(pflag.SliceValue); ok {
			_ = slice.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestListPrintsEveryTheme(t *testing.T) {
	out, err := runCLI(t, "list")
	require.NoError(t, err)

	for _, th := range theme.DefaultRegistry().All() {
		assert.Contains(t, out, th.ID)
	}

	var marked []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "*") {
			marked = append(marked, line)
		}
	}
	require.Len(t, marked, 1)
	assert.Contains(t, marked[0], "calm-professional-clean-card")
}

func TestListFilters(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "palette",
			args: []string{"list", "--json", "--palette", "warm-earth"},
			want: []string{"warm-earth-clean-card", "warm-earth-soft-neumorphic", "warm-earth-minimalist-clinical"},
		},
		{
			name: "palette and style",
			args: []string{"list", "--json", "--palette", "warm-earth", "--style", "minimalist-clinical"},
			want: []string{"warm-earth-minimalist-clinical"},
		},
		{
			name: "style",
			args: []string{"list", "--json", "--style", "soft-neumorphic"},
			want: []string{"calm-professional-soft-neumorphic", "modern-wellness-soft-neumorphic", "warm-earth-soft-neumorphic"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, tt.args...)
			require.NoError(t, err)

			var themes []theme.Theme
			require.NoError(t, json.Unmarshal([]byte(out), &themes))
			ids := make([]string, len(themes))
			for i, th := range themes {
				ids[i] = th.ID
			}
			assert.ElementsMatch(t, tt.want, ids)
		})
	}
}

func TestListRejectsUnknownPalette(t *testing.T) {
	_, err := runCLI(t, "list", "--palette", "neon")
	require.Error(t, err)
	assert.True(t, errors.Is(err, theme.ErrUnknownPalette))
}

func TestShowResolvesArguments(t *testing.T) {
	out, err := runCLI(t, "show", "--json", "modern-wellness")
	require.NoError(t, err)

	var got theme.Theme
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "#4F46E5", got.Colors.Primary)
	assert.Equal(t, "12px", got.Design.Radius.Base)

	out, err = runCLI(t, "show", "--json", "modern-wellness", "minimalist-clinical")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "#4F46E5", got.Colors.Primary)
	assert.Equal(t, "4px", got.Design.Radius.Base)
}

func TestShowUsesConfiguredTheme(t *testing.T) {
	path := writeConfig(t, "theme:\n  palette: warm-earth\n  style: soft-neumorphic\n")

	out, err := runCLI(t, "--config", path, "show", "--json")
	require.NoError(t, err)

	var got theme.Theme
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "warm-earth-soft-neumorphic", got.ID)
}

func TestShowFallsBackForUnknownConfiguredTheme(t *testing.T) {
	path := writeConfig(t, "theme:\n  palette: neon\n  style: clean-card\n")

	out, err := runCLI(t, "--config", path, "show", "--json")
	require.NoError(t, err)

	var got theme.Theme
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, theme.Default().ID, got.ID)
}

func TestShowHumanOutput(t *testing.T) {
	out, err := runCLI(t, "show", "calm-professional")
	require.NoError(t, err)
	assert.Contains(t, out, "Calm Professional + Clean Card")
	assert.Contains(t, out, "#0D7377")
	assert.Contains(t, out, "12px")
}

func TestCSSFormats(t *testing.T) {
	out, err := runCLI(t, "css")
	require.NoError(t, err)
	assert.Contains(t, out, ":root {")
	assert.Contains(t, out, "--color-primary: #0D7377;")
	assert.Contains(t, out, "--border-radius: 12px;")

	out, err = runCLI(t, "css", "modern-wellness", "--selector", ".preview")
	require.NoError(t, err)
	assert.Contains(t, out, ".preview {")
	assert.Contains(t, out, "--color-primary: #4F46E5;")

	out, err = runCLI(t, "css", "--format", "env")
	require.NoError(t, err)
	assert.Contains(t, out, `THEMEDECK_COLOR_PRIMARY="#0D7377"`)

	_, err = runCLI(t, "css", "--format", "xml")
	require.Error(t, err)
}

func TestCSSWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.css")

	_, err := runCLI(t, "css", "warm-earth", "-o", path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "--color-primary: #C2704B;")
	assert.Contains(t, string(content), "/* themedeck: Warm Earth + Clean Card */")
}

func TestUIRequiresInteractiveTerminal(t *testing.T) {
	_, err := runCLI(t, "--non-interactive", "ui")

	var preflight *PreflightError
	require.True(t, errors.As(err, &preflight), "expected PreflightError, got %v", err)
	assert.Equal(t, "themedeck list", preflight.NextStep)
}

func TestHistoryRequiresJournal(t *testing.T) {
	_, err := runCLI(t, "history")

	var preflight *PreflightError
	require.True(t, errors.As(err, &preflight), "expected PreflightError, got %v", err)
}

func TestJournalRecordsCommandSessions(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "journal.db")
	path := writeConfig(t, "journal:\n  enabled: true\n  path: "+dbPath+"\n")

	_, err := runCLI(t, "--config", path, "show", "warm-earth")
	require.NoError(t, err)

	out, err := runCLI(t, "--config", path, "history", "--json")
	require.NoError(t, err)

	var page db.JournalPage
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	require.Len(t, page.Events, 3)
	assert.Empty(t, page.NextCursor)

	types := map[models.EventType]*models.Event{}
	for _, event := range page.Events {
		types[event.Type] = event
	}
	require.Contains(t, types, models.EventTypeSessionStarted)
	require.Contains(t, types, models.EventTypeSessionEnded)
	require.Contains(t, types, models.EventTypeThemeChanged)

	var payload models.ThemeChangedPayload
	require.NoError(t, json.Unmarshal(types[models.EventTypeThemeChanged].Payload, &payload))
	assert.Equal(t, "calm-professional-clean-card", payload.Previous)
	assert.Equal(t, "warm-earth-clean-card", payload.Current)
	assert.Equal(t, "cli", payload.Source)

	out, err = runCLI(t, "--config", path, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "calm-professional-clean-card -> warm-earth-clean-card (cli)")
}

func TestJournalRecordsFallback(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "journal.db")
	path := writeConfig(t, "theme:\n  palette: neon\njournal:\n  enabled: true\n  path: "+dbPath+"\n")

	_, err := runCLI(t, "--config", path, "list")
	require.NoError(t, err)

	out, err := runCLI(t, "--config", path, "history", "--jsonl")
	require.NoError(t, err)
	assert.Contains(t, out, string(models.EventTypeThemeFallback))
}

func journalWithTwoSessions(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "journal.db")
	path := writeConfig(t, "journal:\n  enabled: true\n  path: "+dbPath+"\n")

	_, err := runCLI(t, "--config", path, "show", "warm-earth")
	require.NoError(t, err)
	_, err = runCLI(t, "--config", path, "show", "modern-wellness", "soft-neumorphic")
	require.NoError(t, err)
	return path
}

func historyPage(t *testing.T, args ...string) db.JournalPage {
	t.Helper()
	out, err := runCLI(t, append(args, "--json")...)
	require.NoError(t, err)

	var page db.JournalPage
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	return page
}

func TestHistoryPagesWithCursor(t *testing.T) {
	path := journalWithTwoSessions(t)

	seen := map[string]bool{}
	cursor := ""
	for pages := 0; ; pages++ {
		require.Less(t, pages, 6, "paging did not terminate")

		args := []string{"--config", path, "history", "--limit", "2"}
		if cursor != "" {
			args = append(args, "--cursor", cursor)
		}
		page := historyPage(t, args...)
		assert.LessOrEqual(t, len(page.Events), 2)
		for _, event := range page.Events {
			assert.False(t, seen[event.ID], "event %s repeated across pages", event.ID)
			seen[event.ID] = true
		}
		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}
	assert.Len(t, seen, 6)

	out, err := runCLI(t, "--config", path, "history", "--limit", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "More entries: themedeck history --cursor ")
}

func TestHistoryFilters(t *testing.T) {
	path := journalWithTwoSessions(t)

	page := historyPage(t, "--config", path, "history", "--type", "theme.changed")
	require.Len(t, page.Events, 2)
	var newest models.ThemeChangedPayload
	require.NoError(t, json.Unmarshal(page.Events[0].Payload, &newest))
	assert.Equal(t, "modern-wellness-soft-neumorphic", newest.Current)

	page = historyPage(t, "--config", path, "history", "--type", "theme.changed", "--oldest-first")
	require.Len(t, page.Events, 2)
	var oldest models.ThemeChangedPayload
	require.NoError(t, json.Unmarshal(page.Events[0].Payload, &oldest))
	assert.Equal(t, "warm-earth-clean-card", oldest.Current)

	session := page.Events[0].EntityID
	page = historyPage(t, "--config", path, "history", "--session", session)
	assert.Len(t, page.Events, 3)

	page = historyPage(t, "--config", path, "history", "--since", "1h")
	assert.Len(t, page.Events, 6)

	page = historyPage(t, "--config", path, "history", "--until", "2020-01-01")
	assert.Empty(t, page.Events)

	out, err := runCLI(t, "--config", path, "history", "--since", "2020-01-01", "--until", "2020-01-02")
	require.NoError(t, err)
	assert.Contains(t, out, "No journal entries yet.")
}

func TestHistoryRejectsBadInput(t *testing.T) {
	path := journalWithTwoSessions(t)

	_, err := runCLI(t, "--config", path, "history", "--cursor", "missing")
	var preflight *PreflightError
	require.True(t, errors.As(err, &preflight), "expected PreflightError, got %v", err)
	assert.Contains(t, preflight.Message, "invalid journal cursor")

	_, err = runCLI(t, "--config", path, "history", "--type", "theme.deleted")
	assert.ErrorContains(t, err, "unknown event type")

	_, err = runCLI(t, "--config", path, "history", "--since", "yesterday")
	assert.ErrorContains(t, err, "invalid --since")

	_, err = runCLI(t, "--config", path, "history", "--since", "1h", "--until", "2h")
	assert.ErrorContains(t, err, "--since must be before --until")
}

func TestParseTimeFlag(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "empty", input: "", want: time.Time{}},
		{name: "hours", input: "1h", want: now.Add(-time.Hour)},
		{name: "minutes trimmed", input: "  30m  ", want: now.Add(-30 * time.Minute)},
		{name: "days", input: "7d", want: now.AddDate(0, 0, -7)},
		{name: "rfc3339", input: "2024-01-15T10:30:00Z", want: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		{name: "rfc3339 offset", input: "2024-01-15T10:30:00-05:00", want: time.Date(2024, 1, 15, 15, 30, 0, 0, time.UTC)},
		{name: "local time", input: "2024-01-15T10:30:00", want: time.Date(2024, 1, 15, 10, 30, 0, 0, time.Local)},
		{name: "date", input: "2024-01-15", want: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{name: "negative duration", input: "-1h", wantErr: true},
		{name: "garbage", input: "not-a-time", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTimeFlag(tt.input, now)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestJSONAndJSONLAreExclusive(t *testing.T) {
	_, err := runCLI(t, "--json", "--jsonl", "list")
	require.Error(t, err)
}

func TestVersionJSON(t *testing.T) {
	SetVersion("1.2.3", "abc123", "")
	t.Cleanup(func() { SetVersion("dev", "none", "unknown") })

	out, err := runCLI(t, "version", "--json")
	require.NoError(t, err)

	var info versionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "abc123", info.Commit)
	assert.Equal(t, "unknown", info.Date)
}

func TestConfigInit(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	out, err := execute(t, "config", "init")
	require.NoError(t, err)

	configPath := filepath.Join(configHome, "themedeck", "config.yaml")
	assert.Contains(t, out, configPath)
	_, err = os.Stat(configPath)
	require.NoError(t, err)

	_, err = execute(t, "config", "init")
	require.Error(t, err)

	_, err = execute(t, "config", "init", "--force")
	require.NoError(t, err)

	out, err = execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, configPath)
}

func TestRemoteCommands(t *testing.T) {
	st := store.New()
	env := cssvars.NewEnvironment()
	require.NoError(t, cssvars.NewSink(env, zerolog.Nop()).Attach(st))

	daemon, err := themed.New(st, env, zerolog.Nop(), themed.Options{})
	require.NoError(t, err)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- daemon.Serve(ctx, lis) }()
	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Error("daemon did not stop")
		}
	})

	addr := lis.Addr().String()

	out, err := runCLI(t, "remote", "set", "--addr", addr, "warm-earth", "--json")
	require.NoError(t, err)
	var resp themed.ThemeResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.True(t, resp.Changed)
	assert.Equal(t, "warm-earth-clean-card", resp.Theme.ID)
	assert.Equal(t, "warm-earth-clean-card", st.Theme().ID)

	out, err = runCLI(t, "remote", "set", "--addr", addr, "--style", "minimalist-clinical")
	require.NoError(t, err)
	assert.Contains(t, out, "warm-earth-minimalist-clinical")

	out, err = runCLI(t, "remote", "get", "--addr", addr, "--json")
	require.NoError(t, err)
	var got theme.Theme
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "4px", got.Design.Radius.Base)

	out, err = runCLI(t, "remote", "vars", "--addr", addr)
	require.NoError(t, err)
	assert.Contains(t, out, "--color-primary: #C2704B;")

	out, err = runCLI(t, "remote", "list", "--addr", addr)
	require.NoError(t, err)
	assert.Contains(t, out, "* ")

	_, err = runCLI(t, "remote", "set", "--addr", addr, "neon")
	require.Error(t, err)
	assert.Equal(t, "warm-earth-minimalist-clinical", st.Theme().ID)

	_, err = runCLI(t, "remote", "set", "--addr", addr)
	require.Error(t, err)
}

func TestRemoteUnreachable(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close())

	_, err = runCLI(t, "remote", "get", "--addr", addr, "--timeout", "500ms")
	var preflight *PreflightError
	require.True(t, errors.As(err, &preflight), "expected PreflightError, got %v", err)
}

func TestWriteOutputJSONLines(t *testing.T) {
	original := jsonlOutput
	jsonlOutput = true
	t.Cleanup(func() { jsonlOutput = original })

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, []map[string]int{{"a": 1}, {"b": 2}}))
	assert.Equal(t, "{\"a\":1}\n{\"b\":2}\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteOutput(&buf, map[string]int{"c": 3}))
	assert.Equal(t, "{\"c\":3}\n", buf.String())
}

func TestPreflightErrorMessage(t *testing.T) {
	err := &PreflightError{Message: "no tty", Hint: "use a terminal", NextStep: "themedeck list"}
	assert.Equal(t, "no tty\n  hint: use a terminal\n  try:  themedeck list", err.Error())
	assert.Equal(t, "bare", (&PreflightError{Message: "bare"}).Error())
}

func TestDescribeEvent(t *testing.T) {
	payload, err := json.Marshal(models.ThemeFallbackPayload{
		RequestedPalette: "neon",
		RequestedStyle:   "clean-card",
		Fallback:         "calm-professional-clean-card",
	})
	require.NoError(t, err)

	got := describeEvent(&models.Event{Type: models.EventTypeThemeFallback, Payload: payload})
	assert.Equal(t, "neon/clean-card -> calm-professional-clean-card", got)
	assert.Empty(t, describeEvent(&models.Event{Type: "other"}))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500µs", formatDuration(500*time.Microsecond))
	assert.Equal(t, "120ms", formatDuration(123*time.Millisecond))
	assert.Equal(t, "1.5s", formatDuration(1520*time.Millisecond))
}

func TestExportBuiltinTemplate(t *testing.T) {
	out, err := runCLI(t, "export", "scss", "warm-earth", "--set", "prefix=brand")
	require.NoError(t, err)
	assert.Contains(t, out, "$brand-color-primary: #C2704B;")

	_, err = runCLI(t, "export", "less")
	require.Error(t, err)

	_, err = runCLI(t, "export", "scss", "--set", "novalue")
	require.Error(t, err)
}

func TestTemplatesList(t *testing.T) {
	out, err := runCLI(t, "templates")
	require.NoError(t, err)
	for _, name := range []string{"scss", "tailwind", "typescript"} {
		assert.Contains(t, out, name)
	}
}
