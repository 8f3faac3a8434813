package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/billiard/physics"
	"github.com/lixenwraith/billiard/trajectory"
	"github.com/lixenwraith/billiard/vmath"
)

const sampleRate = beep.SampleRate(44100)

// Pentatonic degrees in semitones above the octave root
var pentatonic = [5]int{0, 2, 4, 7, 9}

// Options controls trajectory sonification
type Options struct {
	Tone       time.Duration // Length of each bounce tone
	BaseHz     float64       // Pitch of the lowest arc note, chord hits sound an octave below
	Volume     float64       // Linear gain in [0, 1]
	GapPerUnit time.Duration // Silence per table unit of flight before each tone
	MaxGap     time.Duration
}

// DefaultOptions returns sonification defaults
func DefaultOptions() Options {
	return Options{
		Tone:       60 * time.Millisecond,
		BaseHz:     220,
		Volume:     0.5,
		GapPerUnit: 10 * time.Millisecond,
		MaxGap:     250 * time.Millisecond,
	}
}

// Pitch maps an impact to a frequency
// Arc hits walk two pentatonic octaves by impact normal angle; chord hits use base/2
func Pitch(s physics.State, wall physics.Wall, baseHz float64) float64 {
	if wall == physics.WallChord {
		return baseHz / 2
	}
	phi := vmath.NormalizeAngle(math.Atan2(s.Y, s.X))
	step := int(phi / vmath.TwoPi * 2 * float64(len(pentatonic)))
	if step >= 2*len(pentatonic) {
		step = 2*len(pentatonic) - 1
	}
	semis := (step/len(pentatonic))*12 + pentatonic[step%len(pentatonic)]
	return baseHz * math.Pow(2, float64(semis)/12)
}

func (o Options) gapSamples(distance float64) int {
	gap := time.Duration(distance * float64(o.GapPerUnit))
	if gap > o.MaxGap {
		gap = o.MaxGap
	}
	if gap < 0 {
		gap = 0
	}
	return sampleRate.N(gap)
}

func (o Options) validate() error {
	if o.Tone <= 0 {
		return fmt.Errorf("audio: tone duration %v must be positive", o.Tone)
	}
	if o.BaseHz <= 0 || o.BaseHz*4 >= float64(sampleRate)/2 {
		return fmt.Errorf("audio: base pitch %g Hz out of range", o.BaseHz)
	}
	if o.Volume < 0 || o.Volume > 1 {
		return fmt.Errorf("audio: volume %g out of range", o.Volume)
	}
	return nil
}

// Sonify builds a finite streamer with one tone per bounce of tr
func Sonify(tr *trajectory.Trajectory, o Options) (beep.Streamer, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}

	toneN := sampleRate.N(o.Tone)
	parts := make([]beep.Streamer, 0, 2*tr.Bounces())
	for i := 0; i < tr.Bounces(); i++ {
		if gap := o.gapSamples(tr.Distances[i]); gap > 0 {
			parts = append(parts, beep.Silence(gap))
		}
		sine, err := generators.SineTone(sampleRate, Pitch(tr.States[i+1], tr.Walls[i], o.BaseHz))
		if err != nil {
			return nil, fmt.Errorf("audio: tone %d: %w", i+1, err)
		}
		parts = append(parts, newDecay(beep.Take(toneN, sine), toneN))
	}

	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   math.Log2(math.Max(o.Volume, 1e-6)),
		Silent:   o.Volume == 0,
	}, nil
}

// decay applies a linear fade-out over total samples
type decay struct {
	s     beep.Streamer
	pos   int
	total int
}

func newDecay(s beep.Streamer, total int) *decay {
	return &decay{s: s, total: total}
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.s.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1 - float64(d.pos)/float64(d.total)
		if gain < 0 {
			gain = 0
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error {
	return d.s.Err()
}
