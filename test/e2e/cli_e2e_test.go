package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E builds the binary and runs it against the fixtures in testdata.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}

	tmpDir := t.TempDir()
	binName := "redflags"
	if runtime.GOOS == "windows" {
		binName = "redflags.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs with the package directory as CWD; build from the module root.
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/redflags")
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build redflags: %v", err)
	}

	fixture := func(name string) string { return filepath.Join("testdata", name) }

	tests := []struct {
		name     string
		args     []string
		wantOut  string // substring match (case-insensitive)
		wantCode int
	}{
		{
			name:     "Flagged Text",
			args:     []string{fixture("flagged.json")},
			wantOut:  "[FLAGGED] i171",
			wantCode: 0,
		},
		{
			name:     "Clear Quiet",
			args:     []string{"-q", "--threshold", "0.04", fixture("flagged.json")},
			wantOut:  "false",
			wantCode: 0,
		},
		{
			name:     "JSON Report",
			args:     []string{"--format", "json", fixture("flagged.json")},
			wantOut:  `"result": true`,
			wantCode: 0,
		},
		{
			name:     "Missing Tender Value",
			args:     []string{"-q", fixture("no_tender_value.json")},
			wantOut:  "null",
			wantCode: 0,
		},
		{
			name:     "Zero Estimate",
			args:     []string{fixture("zero_estimate.json")},
			wantOut:  "zero estimated amount",
			wantCode: 0,
		},
		{
			name:     "Currency Mismatch",
			args:     []string{fixture("mismatch.json")},
			wantOut:  "different currencies",
			wantCode: 3,
		},
		{
			name:     "Missing File",
			args:     []string{fixture("absent.json")},
			wantOut:  "absent.json",
			wantCode: 2,
		},
		{
			name:     "Invalid Threshold",
			args:     []string{"--threshold", "-0.1", fixture("flagged.json")},
			wantOut:  "threshold",
			wantCode: 4,
		},
		{
			name:     "Help",
			args:     []string{"--help"},
			wantOut:  "usage",
			wantCode: 0,
		},
		{
			name:     "Version Flag",
			args:     []string{"--version"},
			wantOut:  "redflags",
			wantCode: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			gotCode := 0
			if exitErr, ok := err.(*exec.ExitError); ok {
				gotCode = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("running binary: %v", err)
			}
			if gotCode != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nOutput: %s", gotCode, tt.wantCode, outStr)
			}

			if !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
			}
		})
	}
}

// TestCLI_E2E_Stdin verifies that the release can be piped in.
func TestCLI_E2E_Stdin(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}

	binPath := filepath.Join(t.TempDir(), "redflags")
	build := exec.Command("go", "build", "-o", binPath, "./cmd/redflags")
	build.Dir = "../.."
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build redflags: %v\n%s", err, out)
	}

	input, err := os.Open(filepath.Join("testdata", "flagged.json"))
	if err != nil {
		t.Fatal(err)
	}
	defer input.Close()

	cmd := exec.Command(binPath, "-q", "-")
	cmd.Stdin = input
	output, err := cmd.Output()
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if strings.TrimSpace(string(output)) != "true" {
		t.Errorf("stdout = %q, want true", output)
	}
}
