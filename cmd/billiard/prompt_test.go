package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/lixenwraith/billiard/physics"
)

func TestPrompter_Float(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		retries int
	}{
		{"value", "3.5\n", 3.5, 0},
		{"default on empty", "\n", 1.25, 0},
		{"whitespace", "  -2 \n", -2, 0},
		{"no trailing newline", "4", 4, 0},
		{"retry on text", "abc\n7\n", 7, 1},
		{"retry on nan", "NaN\nInf\n0\n", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := newPrompter(strings.NewReader(tt.input), &out)

			got, err := p.float("Value", 1.25)
			if err != nil {
				t.Fatalf("float() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("float() = %g, want %g", got, tt.want)
			}
			if n := strings.Count(out.String(), "Please enter a numeric value."); n != tt.retries {
				t.Errorf("retries = %d, want %d", n, tt.retries)
			}
		})
	}
}

func TestPrompter_FloatEOF(t *testing.T) {
	p := newPrompter(strings.NewReader("x\n"), io.Discard)
	if _, err := p.float("Value", 0); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("float() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestPrompter_Mode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		def     physics.Mode
		want    physics.Mode
		wantErr bool
	}{
		{"full", "1\n", physics.FlatBottom, physics.Full, false},
		{"flat", "2\n", physics.Full, physics.FlatBottom, false},
		{"default full", "\n", physics.Full, physics.Full, false},
		{"default flat", "\n", physics.FlatBottom, physics.FlatBottom, false},
		{"invalid", "3\n", physics.Full, physics.Full, true},
		{"word", "full\n", physics.Full, physics.Full, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPrompter(strings.NewReader(tt.input), io.Discard)
			got, err := p.mode(tt.def)
			if tt.wantErr {
				if !errors.Is(err, errInvalidChoice) {
					t.Errorf("mode() error = %v, want errInvalidChoice", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("mode() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("mode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPrompter_StartRetriesOutside(t *testing.T) {
	var out bytes.Buffer
	table := physics.Table{Radius: 7.5, Mode: physics.Full}
	p := newPrompter(strings.NewReader("10\n10\n2\n1\n0.5\n"), &out)

	s, err := p.start(table, physics.State{})
	if err != nil {
		t.Fatalf("start() error = %v", err)
	}
	if s.X != 2 || s.Y != 1 || s.Angle != 0.5 {
		t.Errorf("start() = %+v, want (2, 1, 0.5)", s)
	}

	text := out.String()
	if !strings.Contains(text, "Error: Position (10.00, 10.00) is OUTSIDE the billiard table (r=7.5).") {
		t.Errorf("missing outside message:\n%s", text)
	}
	if !strings.Contains(text, "Please try again.") {
		t.Errorf("missing retry message:\n%s", text)
	}
}

func TestPrompter_StartRetriesBelowChord(t *testing.T) {
	var out bytes.Buffer
	table := physics.Table{Radius: 7.5, Mode: physics.FlatBottom}
	p := newPrompter(strings.NewReader("0\n-1\n0\n3\n\n"), &out)

	s, err := p.start(table, physics.State{Angle: 1.5})
	if err != nil {
		t.Fatalf("start() error = %v", err)
	}
	if s.X != 0 || s.Y != 3 || s.Angle != 1.5 {
		t.Errorf("start() = %+v, want (0, 3, 1.5)", s)
	}
	if !strings.Contains(out.String(), "Error: In Semi-Circular mode, Y cannot be negative.") {
		t.Errorf("missing chord message:\n%s", out.String())
	}
}

func TestPrompter_StartDefaults(t *testing.T) {
	table := physics.Table{Radius: 7.5, Mode: physics.Full}
	def := physics.State{X: -1, Y: 2, Angle: 3}
	p := newPrompter(strings.NewReader("\n\n\n"), io.Discard)

	s, err := p.start(table, def)
	if err != nil {
		t.Fatalf("start() error = %v", err)
	}
	if s != def {
		t.Errorf("start() = %+v, want %+v", s, def)
	}
}
