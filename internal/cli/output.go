package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/agbru/redflags/internal/config"
	"github.com/agbru/redflags/internal/flags"
	"github.com/agbru/redflags/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// Format is "text" or "json".
	Format string
	// Quiet prints only the tri-state value.
	Quiet bool
	// OutputFile is the path to save the JSON report (empty for no file output).
	OutputFile string
}

// FormatQuietResult returns "true", "false" or "null".
func FormatQuietResult(r Report) string {
	data, _ := r.Result.MarshalJSON()
	return string(data)
}

// FormatTextResult returns a single human-readable line describing the report.
func FormatTextResult(r Report) string {
	var b strings.Builder
	switch r.Result {
	case flags.Flagged:
		b.WriteString(ui.Badge("FLAGGED", ui.ToneWarning))
	case flags.Clear:
		b.WriteString(ui.Badge("CLEAR", ui.ToneSuccess))
	default:
		b.WriteString(ui.Badge("N/A", ui.ToneMuted))
	}
	fmt.Fprintf(&b, " %s%s%s", ui.ColorBold(), r.Indicator, ui.ColorReset())
	if r.OCID != "" {
		fmt.Fprintf(&b, " %s%s%s", ui.ColorSecondary(), r.OCID, ui.ColorReset())
	}

	if !r.Result.Applicable() {
		fmt.Fprintf(&b, ": not applicable (%s)", r.Reason)
		return b.String()
	}

	verb := "is not within"
	if r.Result == flags.Flagged {
		verb = "is within"
	}
	fmt.Fprintf(&b, ": winning bid %s%s%s differs from estimate %s by %s%.2f%%%s, which %s the %.2f%% threshold",
		ui.ColorPrimary(), r.WinningBid, ui.ColorReset(),
		r.EstimatedPrice,
		ui.ColorBold(), *r.PercentDiff*100, ui.ColorReset(),
		verb, r.Threshold*100)
	return b.String()
}

// DisplayResult writes the report in the configured format.
func DisplayResult(out io.Writer, r Report, cfg OutputConfig) error {
	switch {
	case cfg.Quiet:
		_, err := fmt.Fprintln(out, FormatQuietResult(r))
		return err
	case cfg.Format == config.FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	default:
		_, err := fmt.Fprintln(out, FormatTextResult(r))
		return err
	}
}

// DisplayError writes an error line, colored when the theme allows it.
func DisplayError(out io.Writer, err error) {
	fmt.Fprintf(out, "%sError:%s %v\n", ui.ColorRed(), ui.ColorReset(), err)
}

// WriteReportToFile writes the report as indented JSON, creating parent
// directories as needed.
func WriteReportToFile(path string, r Report) error {
	if path == "" {
		return nil
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
