package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/townsfolk/internal/games/townsfolk/engine"
)

func TestParseCoord(t *testing.T) {
	tests := []struct {
		in      string
		want    engine.Coord
		wantErr bool
	}{
		{"0,0,0", engine.C(0, 0, 0), false},
		{"1, 2, 3", engine.C(1, 2, 3), false},
		{"1,2", engine.Coord{}, true},
		{"a,b,c", engine.Coord{}, true},
		{"", engine.Coord{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseCoord(tt.in)
			if tt.wantErr {
				if !errors.Is(err, errBadCoord) {
					t.Errorf("parseCoord(%q) error = %v, want errBadCoord", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("parseCoord(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestReplay(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	if err := replay(&out, "cube", []string{"0,0,0", "2,2,2"}); err != nil {
		t.Fatalf("replay() failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"1. Player 1 converts (0,0,0): collected 1",
		"2. Player 2 converts (2,2,2): collected",
		"Layer 1",
		"Player 1 collected 1:",
		"The town was left unfinished.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestReplayRejectsBadMoves(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	tests := []struct {
		name  string
		id    string
		moves []string
	}{
		{"unknown variant", "sphere", nil},
		{"bad coordinate", "cube", []string{"1,1"}},
		{"empty cell", "cube", []string{"0,0,0", "0,0,0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := replay(&out, tt.id, tt.moves); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestTrimScreen(t *testing.T) {
	if got := trimScreen("ab  \ncd \n   \n  "); got != "ab\ncd" {
		t.Errorf("trimScreen() = %q", got)
	}
}
