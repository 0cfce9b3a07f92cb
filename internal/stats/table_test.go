package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Date", "Result", "1st Srv"}
	rows := [][]string{
		{"2025-05-01", "W", "80.0%"},
		{"2025-05-08", "L", "7.5%"},
	}
	rightAlign := map[int]bool{2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Date       Result 1st Srv" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "2025-05-01 W        80.0%" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "2025-05-08 L         7.5%" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}
