package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/zulandar/taproom/internal/models"
)

func TestFormatVolume(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{15.5, "15.5"},
		{10, "10.0"},
		{0, "0.0"},
		{7.75, "7.8"},
	}
	for _, tt := range tests {
		if got := FormatVolume(tt.in); got != tt.want {
			t.Errorf("FormatVolume(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 24); got != "short" {
		t.Errorf("truncate(short) = %q, want unchanged", got)
	}
	long := strings.Repeat("x", 30)
	got := truncate(long, 24)
	if len(got) != 24 {
		t.Errorf("len(truncate(long)) = %d, want 24", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncate(long) = %q, want ... suffix", got)
	}
}

func TestWriteTable(t *testing.T) {
	out := new(bytes.Buffer)
	WriteTable(out, []models.Keg{
		{ID: 1, BeerType: "IPA", Size: 15.5, CurrentVolume: 10.5, Location: "Bar 1", LastUpdated: 1700000000},
		{ID: 2, BeerType: "Stout", Size: 10, CurrentVolume: 10, Location: "Cellar", LastUpdated: 1700000000},
	})

	got := out.String()
	for _, col := range []string{"ID", "BEER TYPE", "SIZE", "CURRENT", "LOCATION", "UPDATED"} {
		if !strings.Contains(got, col) {
			t.Fatalf("missing %s column, got: %s", col, got)
		}
	}

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("table has %d lines, want 3 (header + 2 rows), got: %s", len(lines), got)
	}
	for _, want := range []string{"IPA", "15.5", "10.5", "Bar 1"} {
		if !strings.Contains(lines[1], want) {
			t.Errorf("row 1 = %q, missing %q", lines[1], want)
		}
	}
	for _, want := range []string{"Stout", "10.0", "Cellar"} {
		if !strings.Contains(lines[2], want) {
			t.Errorf("row 2 = %q, missing %q", lines[2], want)
		}
	}
}
