package trajectory

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lixenwraith/billiard/physics"
	"github.com/lixenwraith/billiard/vmath"
)

// Log format: one "x y" pair per line, six decimals, first line is the start
// Matches the %lf output the plotting tools were written against
const lineFormat = "%f %f\n"

func writePoint(w io.Writer, s physics.State) error {
	if _, err := fmt.Fprintf(w, lineFormat, s.X, s.Y); err != nil {
		return fmt.Errorf("trajectory: write log: %w", err)
	}
	return nil
}

// WriteLog writes all positions of states to w
func WriteLog(w io.Writer, states []physics.State) error {
	bw := bufio.NewWriter(w)
	for _, s := range states {
		if err := writePoint(bw, s); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("trajectory: write log: %w", err)
	}
	return nil
}

// ReadLog parses a trajectory log; blank lines are skipped
func ReadLog(r io.Reader) ([]vmath.Vec2, error) {
	var pts []vmath.Vec2
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return pts, fmt.Errorf("%w: line %d: %q", ErrMalformedLog, line, text)
		}
		x, errX := strconv.ParseFloat(fields[0], 64)
		y, errY := strconv.ParseFloat(fields[1], 64)
		if errX != nil || errY != nil {
			return pts, fmt.Errorf("%w: line %d: %q", ErrMalformedLog, line, text)
		}
		pts = append(pts, vmath.Vec2{X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return pts, fmt.Errorf("trajectory: read log: %w", err)
	}
	return pts, nil
}
