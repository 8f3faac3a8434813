package audio

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/lixenwraith/billiard/trajectory"
)

// Format is the encoding used for WAV export
var Format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// WriteWAV encodes s into a 16-bit stereo WAV file at path
func WriteWAV(path string, s beep.Streamer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("audio: create %s: %w", path, err)
	}
	if err := wav.Encode(f, s, Format); err != nil {
		f.Close()
		return fmt.Errorf("audio: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("audio: close %s: %w", path, err)
	}
	log.Printf("[audio] wrote %s", path)
	return nil
}

// Play streams s to the speaker and blocks until it finishes
func Play(s beep.Streamer) error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	defer speaker.Close()

	done := make(chan struct{})
	speaker.Play(beep.Seq(s, beep.Callback(func() {
		close(done)
	})))
	<-done
	return nil
}

// Hook returns a trajectory hook that exports and/or plays the sonification
// Empty wavPath skips export
func Hook(o Options, wavPath string, play bool) trajectory.Hook {
	return trajectory.HookFunc{
		Label: "sound",
		Fn: func(tr *trajectory.Trajectory) error {
			if wavPath != "" {
				s, err := Sonify(tr, o)
				if err != nil {
					return err
				}
				if err := WriteWAV(wavPath, s); err != nil {
					return err
				}
			}
			if play {
				// Streamers are single-use, build a fresh one for playback
				s, err := Sonify(tr, o)
				if err != nil {
					return err
				}
				return Play(s)
			}
			return nil
		},
	}
}
