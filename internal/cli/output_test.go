package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/agbru/redflags/internal/config"
	"github.com/agbru/redflags/internal/flags"
	"github.com/agbru/redflags/internal/ocds"
	"github.com/agbru/redflags/internal/ui"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func flaggedReport() Report {
	release := &ocds.Release{OCID: "ocds-1", ID: "ocds-1-award"}
	ev := flags.Evaluation{
		Result:         flags.Flagged,
		EstimatedPrice: &ocds.Money{Amount: 1000, Currency: "USD"},
		WinningBid:     &ocds.Money{Amount: 950, Currency: "USD"},
		PercentDiff:    0.05,
	}
	return NewReport(flags.I171ID, release, 0.05, ev, fixedNow)
}

func notApplicableReport() Report {
	ev := flags.Evaluation{Result: flags.NotApplicable, Reason: flags.ReasonNoWinningBid}
	return NewReport(flags.I171ID, &ocds.Release{OCID: "ocds-2"}, 0.05, ev, fixedNow)
}

func withoutColors(t *testing.T) {
	t.Helper()
	saved := ui.GetCurrentTheme()
	ui.SetCurrentTheme(ui.NoColorTheme)
	t.Cleanup(func() { ui.SetCurrentTheme(saved) })
}

func TestNewReport(t *testing.T) {
	r := flaggedReport()
	if r.OCID != "ocds-1" || r.ReleaseID != "ocds-1-award" {
		t.Errorf("release identifiers not copied: %+v", r)
	}
	if r.PercentDiff == nil || *r.PercentDiff != 0.05 {
		t.Errorf("PercentDiff = %v, want 0.05", r.PercentDiff)
	}

	na := notApplicableReport()
	if na.PercentDiff != nil {
		t.Errorf("not applicable report should omit PercentDiff, got %v", *na.PercentDiff)
	}
	if NewReport("i171", nil, 0.05, flags.Evaluation{}, fixedNow).OCID != "" {
		t.Error("nil release should give empty OCID")
	}
}

func TestFormatQuietResult(t *testing.T) {
	tests := []struct {
		result flags.Result
		want   string
	}{
		{flags.Flagged, "true"},
		{flags.Clear, "false"},
		{flags.NotApplicable, "null"},
	}
	for _, tt := range tests {
		if got := FormatQuietResult(Report{Result: tt.result}); got != tt.want {
			t.Errorf("FormatQuietResult(%v) = %q, want %q", tt.result, got, tt.want)
		}
	}
}

func TestFormatTextResult(t *testing.T) {
	withoutColors(t)

	flagged := FormatTextResult(flaggedReport())
	for _, want := range []string{"[FLAGGED]", "i171", "ocds-1", "950 USD", "1000 USD", "5.00%", "is within"} {
		if !strings.Contains(flagged, want) {
			t.Errorf("flagged line should contain %q, got %q", want, flagged)
		}
	}

	clearReport := flaggedReport()
	clearReport.Result = flags.Clear
	clearReport.Threshold = 0.04
	line := FormatTextResult(clearReport)
	if !strings.Contains(line, "[CLEAR]") || !strings.Contains(line, "is not within the 4.00% threshold") {
		t.Errorf("clear line = %q", line)
	}

	na := FormatTextResult(notApplicableReport())
	if !strings.Contains(na, "[N/A]") || !strings.Contains(na, "no winning bid") {
		t.Errorf("not applicable line = %q", na)
	}
}

func TestDisplayResult(t *testing.T) {
	withoutColors(t)

	t.Run("quiet", func(t *testing.T) {
		var buf bytes.Buffer
		if err := DisplayResult(&buf, notApplicableReport(), OutputConfig{Quiet: true, Format: config.FormatJSON}); err != nil {
			t.Fatal(err)
		}
		if buf.String() != "null\n" {
			t.Errorf("quiet output = %q, want null", buf.String())
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := DisplayResult(&buf, flaggedReport(), OutputConfig{Format: config.FormatJSON}); err != nil {
			t.Fatal(err)
		}
		var decoded map[string]any
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
		}
		if decoded["result"] != true || decoded["indicator"] != "i171" || decoded["percentDiff"] != 0.05 {
			t.Errorf("unexpected JSON report: %v", decoded)
		}
	})

	t.Run("json not applicable", func(t *testing.T) {
		var buf bytes.Buffer
		if err := DisplayResult(&buf, notApplicableReport(), OutputConfig{Format: config.FormatJSON}); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), `"result": null`) {
			t.Errorf("result should be null, got %s", buf.String())
		}
		if strings.Contains(buf.String(), "percentDiff") {
			t.Errorf("percentDiff should be omitted, got %s", buf.String())
		}
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		if err := DisplayResult(&buf, flaggedReport(), OutputConfig{Format: config.FormatText}); err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(buf.String(), "[FLAGGED]") {
			t.Errorf("text output = %q", buf.String())
		}
	})
}

func TestDisplayError(t *testing.T) {
	withoutColors(t)
	var buf bytes.Buffer
	DisplayError(&buf, errors.New("boom"))
	if buf.String() != "Error: boom\n" {
		t.Errorf("DisplayError() = %q", buf.String())
	}
}

func TestWriteReportToFile(t *testing.T) {
	t.Run("empty path is a no-op", func(t *testing.T) {
		if err := WriteReportToFile("", flaggedReport()); err != nil {
			t.Errorf("WriteReportToFile(\"\") error = %v", err)
		}
	})

	t.Run("creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "reports", "i171.json")
		if err := WriteReportToFile(path, flaggedReport()); err != nil {
			t.Fatalf("WriteReportToFile() error = %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		var decoded Report
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("report is not JSON: %v", err)
		}
		if decoded.Result != flags.Flagged || !decoded.GeneratedAt.Equal(fixedNow) {
			t.Errorf("decoded report = %+v", decoded)
		}
	})
}
