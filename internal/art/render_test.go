package art

import (
	"strings"
	"testing"

	"github.com/drunken-bishop/randomart/internal/bishop"
)

func TestRenderEmptyBoard(t *testing.T) {
	b, err := bishop.NewBoard(17, 9)
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}

	out := Render(b, "")
	lines := strings.Split(out, "\n")

	if len(lines) != 11 {
		t.Fatalf("expected 11 lines, got %d", len(lines))
	}

	border := "+-----------------+"
	if lines[0] != border {
		t.Errorf("top border: expected %q, got %q", border, lines[0])
	}
	if lines[len(lines)-1] != border {
		t.Errorf("bottom border: expected %q, got %q", border, lines[len(lines)-1])
	}

	for i, line := range lines {
		if len(line) != 19 {
			t.Errorf("line %d: expected width 19, got %d", i, len(line))
		}
	}
	for _, line := range lines[1 : len(lines)-1] {
		if line != "|                 |" {
			t.Errorf("expected blank body row, got %q", line)
		}
	}
}

func TestRenderZeroFingerprint(t *testing.T) {
	b, err := bishop.Draw("00", 17, 9)
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	want := strings.Join([]string{
		"+-----------------+",
		"|    E            |",
		"|     .           |",
		"|      .          |",
		"|       .         |",
		"|        S        |",
		"|                 |",
		"|                 |",
		"|                 |",
		"|                 |",
		"+-----------------+",
	}, "\n")

	if got := Render(b, ""); got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestRenderLabel(t *testing.T) {
	b, err := bishop.NewBoard(17, 9)
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}

	tests := []struct {
		label string
		want  string
	}{
		{"md5", "+------[md5]------+"},
		// odd padding: the extra dash goes to the right
		{"sha1", "+-----[sha1]------+"},
		{"sha3-512", "+---[sha3-512]----+"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			out := Render(b, tt.label)
			lines := strings.Split(out, "\n")
			if got := lines[len(lines)-1]; got != tt.want {
				t.Errorf("bottom border: expected %q, got %q", tt.want, got)
			}
			// the label only touches the bottom border
			if lines[0] != "+-----------------+" {
				t.Errorf("top border changed: %q", lines[0])
			}
		})
	}
}

func TestRenderLabelOverflow(t *testing.T) {
	b, err := bishop.NewBoard(5, 3)
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}

	// An oversized label widens the bottom border instead of being cut.
	out := Render(b, "longlabel")
	lines := strings.Split(out, "\n")
	if got := lines[len(lines)-1]; got != "+[longlabel]+" {
		t.Errorf("expected overflowing border, got %q", got)
	}
}

func TestRenderDeterministic(t *testing.T) {
	const fingerprint = "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"

	first, err := bishop.Draw(fingerprint, 17, 9)
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	second, err := bishop.Draw(fingerprint, 17, 9)
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	if Render(first, "sha256") != Render(second, "sha256") {
		t.Error("identical inputs rendered differently")
	}
}

func TestRenderSentinelPrecedence(t *testing.T) {
	// NW then SE brings the bishop back home, so the shared cell shows E.
	b, err := bishop.NewBoard(17, 9)
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	b.Walk([]bishop.Move{bishop.NW, bishop.SE})
	b.Seal()

	lines := strings.Split(Render(b, ""), "\n")
	if got := lines[5][9]; got != 'E' {
		t.Errorf("expected 'E' on the shared cell, got %q", got)
	}
	if strings.ContainsRune(Render(b, ""), 'S') {
		t.Error("no cell should show 'S' when start and end coincide")
	}
}
