package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/claritypath/themedeck/internal/db"
	"github.com/claritypath/themedeck/internal/models"
)

var (
	historyLimit       int
	historySession     string
	historyTypes       []string
	historySince       string
	historyUntil       string
	historyCursor      string
	historyOldestFirst bool
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of events per page")
	historyCmd.Flags().StringVar(&historySession, "session", "", "only events of this session id")
	historyCmd.Flags().StringSliceVar(&historyTypes, "type", nil, "only these event types (theme.changed, theme.fallback, session.started, session.ended)")
	historyCmd.Flags().StringVar(&historySince, "since", "", "only events at or after this time (duration like 1h or 7d, RFC3339, or YYYY-MM-DD)")
	historyCmd.Flags().StringVar(&historyUntil, "until", "", "only events before this time (same formats as --since)")
	historyCmd.Flags().StringVar(&historyCursor, "cursor", "", "continue from a previous page's next cursor")
	historyCmd.Flags().BoolVar(&historyOldestFirst, "oldest-first", false, "list oldest events first")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the selection journal",
	Long: `Show journaled theme changes and sessions, newest first.

Results are paged; when more events match, the command prints the cursor to
pass to --cursor for the next page.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if cfg == nil || !cfg.Journal.Enabled {
			return &PreflightError{
				Message:  "the selection journal is disabled",
				Hint:     "Set journal.enabled: true in the config file or THEMEDECK_JOURNAL_ENABLED=true",
				NextStep: "themedeck config init",
			}
		}

		query, err := historyQuery(time.Now())
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		database, err := openDatabase(ctx, cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		page, err := db.NewEventRepository(database).Query(ctx, query)
		if errors.Is(err, db.ErrInvalidCursor) {
			return &PreflightError{
				Message:  err.Error(),
				Hint:     "Cursors come from the previous page of the same journal",
				NextStep: "themedeck history",
			}
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if IsJSONLOutput() {
			return WriteOutput(out, page.Events)
		}
		if IsJSONOutput() {
			return WriteOutput(out, page)
		}
		if len(page.Events) == 0 {
			fmt.Fprintln(out, "No journal entries yet.")
			return nil
		}

		rows := make([][]string, 0, len(page.Events))
		for _, event := range page.Events {
			rows = append(rows, []string{
				event.Timestamp.Local().Format(time.DateTime),
				formatEventType(event.Type),
				shortID(event.EntityID),
				describeEvent(event),
			})
		}
		if err := writeTable(out, []string{"TIME", "EVENT", "SESSION", "DETAIL"}, rows); err != nil {
			return err
		}
		if page.NextCursor != "" {
			fmt.Fprintf(out, "\nMore entries: themedeck history --cursor %s\n", page.NextCursor)
		}
		return nil
	},
}

func historyQuery(now time.Time) (db.JournalQuery, error) {
	query := db.JournalQuery{
		Session:     strings.TrimSpace(historySession),
		Cursor:      strings.TrimSpace(historyCursor),
		Limit:       historyLimit,
		OldestFirst: historyOldestFirst,
	}
	for _, raw := range historyTypes {
		eventType := models.EventType(strings.TrimSpace(raw))
		if !eventType.Known() {
			return query, fmt.Errorf("unknown event type %q", raw)
		}
		query.Types = append(query.Types, eventType)
	}

	var err error
	if query.Since, err = parseTimeFlag(historySince, now); err != nil {
		return query, fmt.Errorf("invalid --since: %w", err)
	}
	if query.Until, err = parseTimeFlag(historyUntil, now); err != nil {
		return query, fmt.Errorf("invalid --until: %w", err)
	}
	if !query.Since.IsZero() && !query.Until.IsZero() && !query.Since.Before(query.Until) {
		return query, fmt.Errorf("--since must be before --until")
	}
	return query, nil
}

// parseTimeFlag accepts a lookback duration ("90m", "1h", "7d") or an
// absolute time. An empty value yields the zero time.
func parseTimeFlag(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}

	if days, ok := strings.CutSuffix(value, "d"); ok {
		if n, err := strconv.Atoi(days); err == nil && n >= 0 {
			return now.AddDate(0, 0, -n), nil
		}
	}
	if d, err := time.ParseDuration(value); err == nil {
		if d < 0 {
			return time.Time{}, fmt.Errorf("duration %q is negative", value)
		}
		return now.Add(-d), nil
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", value, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", value)
}

func describeEvent(event *models.Event) string {
	switch event.Type {
	case models.EventTypeThemeChanged:
		var payload models.ThemeChangedPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return ""
		}
		detail := payload.Previous + " -> " + payload.Current
		if payload.Source != "" {
			detail += " (" + payload.Source + ")"
		}
		return detail
	case models.EventTypeThemeFallback:
		var payload models.ThemeFallbackPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return ""
		}
		return fmt.Sprintf("%s/%s -> %s", payload.RequestedPalette, payload.RequestedStyle, payload.Fallback)
	case models.EventTypeSessionStarted, models.EventTypeSessionEnded:
		var payload models.SessionPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return ""
		}
		return strings.TrimSpace(payload.Surface + " " + payload.Theme)
	default:
		return ""
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
