package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/lixenwraith/billiard/audio"
	"github.com/lixenwraith/billiard/config"
	"github.com/lixenwraith/billiard/persistence"
	"github.com/lixenwraith/billiard/physics"
	"github.com/lixenwraith/billiard/render"
	"github.com/lixenwraith/billiard/trajectory"
	"github.com/lixenwraith/billiard/vmath"
)

// openStore is replaced in tests to keep sessions in memory
var openStore = func() *persistence.Store {
	return persistence.Open(persistence.AppName)
}

// viewer is replaced in tests, the real one takes over the terminal
var viewer = render.View

var createOutput = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

type options struct {
	configPath string
	viewPath   string
	batch      bool
	noSave     bool

	mode   string
	radius float64
	n      int
	x, y   float64
	angle  float64
	out    string
	plot   bool
	wav    string
	play   bool
	debug  bool

	set map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	o := &options{set: make(map[string]bool)}
	fs := flag.NewFlagSet("billiard", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&o.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&o.viewPath, "view", "", "Plot an existing trajectory log and exit")
	fs.BoolVar(&o.batch, "batch", false, "Do not prompt; use config and flags only")
	fs.BoolVar(&o.noSave, "no-save", false, "Do not remember the initial conditions")
	fs.StringVar(&o.mode, "mode", "", "Table mode: full, flat-bottom (or 1, 2)")
	fs.Float64Var(&o.radius, "r", 0, "Table radius")
	fs.IntVar(&o.n, "n", 0, "Number of bounces")
	fs.Float64Var(&o.x, "x", 0, "Initial X coordinate")
	fs.Float64Var(&o.y, "y", 0, "Initial Y coordinate")
	fs.Float64Var(&o.angle, "angle", 0, "Initial heading in radians")
	fs.StringVar(&o.out, "out", "", "Trajectory log path")
	fs.BoolVar(&o.plot, "plot", false, "Show terminal plot after the run")
	fs.StringVar(&o.wav, "wav", "", "Export bounce sonification to WAV")
	fs.BoolVar(&o.play, "play", false, "Play bounce sonification")
	fs.BoolVar(&o.debug, "debug", false, "Write debug log to logs/billiard.log")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// resolveConfig layers file, environment and explicitly set flags, in that order
func resolveConfig(o *options) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	if o.set["mode"] {
		m, err := physics.ParseMode(o.mode)
		if err != nil {
			return nil, err
		}
		cfg.Table.Mode = m
	}
	if o.set["r"] {
		cfg.Table.Radius = o.radius
	}
	if o.set["n"] {
		cfg.Iterations = o.n
	}
	if o.set["x"] {
		cfg.Start.X = o.x
	}
	if o.set["y"] {
		cfg.Start.Y = o.y
	}
	if o.set["angle"] {
		cfg.Start.Angle = o.angle
	}
	if o.set["out"] {
		cfg.Output = o.out
	}
	if o.set["plot"] {
		cfg.Plot = o.plot
	}
	if o.set["wav"] {
		cfg.Sound.WAV = o.wav
		cfg.Sound.Enabled = cfg.Sound.Enabled || o.wav != ""
	}
	if o.set["play"] {
		cfg.Sound.Play = o.play
		cfg.Sound.Enabled = cfg.Sound.Enabled || o.play
	}
	if o.set["debug"] {
		cfg.Log.Debug = o.debug
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := resolveConfig(o)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if logFile := setupLogging(cfg.Log.Debug); logFile != nil {
		defer logFile.Close()
	}

	if o.viewPath != "" {
		if err := viewLog(o.viewPath, cfg, o.set["mode"]); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	store := openStore()
	table := cfg.PhysicsTable()
	var start physics.State

	if o.batch {
		start, err = physics.NewState(cfg.Start.X, cfg.Start.Y, cfg.Start.Angle, table)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	} else {
		table, start, err = interactive(stdin, stdout, cfg, store, o.set["mode"])
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	if !o.noSave {
		sess := persistence.Session{Mode: table.Mode, X: start.X, Y: start.Y, Angle: start.Angle}
		if err := store.Save(sess); err != nil {
			log.Printf("[main] session not saved: %v", err)
		}
	}

	tr, err := simulate(stdout, cfg, table, start)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if hooks := buildHooks(cfg); len(hooks) > 0 {
		if cfg.Plot {
			fmt.Fprintln(stdout, "Launching visualization...")
		}
		if err := trajectory.RunHooks(tr, hooks...); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}
	return 0
}

// interactive runs the prompt flow; remembered values become the defaults
func interactive(stdin io.Reader, stdout io.Writer, cfg *config.Config, store *persistence.Store, modeFixed bool) (physics.Table, physics.State, error) {
	table := cfg.PhysicsTable()
	def := cfg.StartState()

	if sess, ok, err := store.Load(); err != nil {
		log.Printf("[main] last session unavailable: %v", err)
	} else if ok {
		def = physics.State{X: sess.X, Y: sess.Y, Angle: sess.Angle}
		if !modeFixed {
			table.Mode = sess.Mode
		}
	}

	fmt.Fprintln(stdout, "╔════════════════════════════════════════╗")
	fmt.Fprintln(stdout, "║  BILLIARD TRAJECTORY SIMULATOR         ║")
	fmt.Fprintln(stdout, "╚════════════════════════════════════════╝")
	fmt.Fprintln(stdout)

	p := newPrompter(stdin, stdout)
	if !modeFixed {
		m, err := p.mode(table.Mode)
		if err != nil {
			return table, physics.State{}, err
		}
		table.Mode = m
	}

	start, err := p.start(table, def)
	return table, start, err
}

// simulate writes the trajectory log and prints one progress line per bounce
func simulate(stdout io.Writer, cfg *config.Config, table physics.Table, start physics.State) (*trajectory.Trajectory, error) {
	f, err := createOutput(cfg.Output)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", cfg.Output, err)
	}
	closed := false
	defer func() {
		if !closed {
			f.Close()
		}
	}()
	bw := bufio.NewWriter(f)

	fmt.Fprintf(stdout, "\nStart: %.2f, %.2f\n", start.X, start.Y)

	began := time.Now()
	tr, err := trajectory.Run(start, table, cfg.Iterations,
		trajectory.WithSink(bw),
		trajectory.WithObserver(func(step int, s physics.State, wall physics.Wall) {
			fmt.Fprintf(stdout, "Bounce %d: x=%.2f, y=%.2f\n", step, s.X, s.Y)
		}),
	)
	if flushErr := bw.Flush(); err == nil && flushErr != nil {
		err = fmt.Errorf("writing %s: %w", cfg.Output, flushErr)
	}
	if err != nil {
		return tr, err
	}
	closed = true
	if err := f.Close(); err != nil {
		return tr, fmt.Errorf("closing %s: %w", cfg.Output, err)
	}

	log.Printf("[main] %d bounces in %v, path length %.3f", tr.Bounces(), time.Since(began), tr.PathLength())
	fmt.Fprintf(stdout, "\nDone. Data saved to %s\n", cfg.Output)
	return tr, nil
}

func buildHooks(cfg *config.Config) []trajectory.Hook {
	var hooks []trajectory.Hook
	if cfg.Plot {
		hooks = append(hooks, render.Hook())
	}
	if cfg.Sound.Enabled && (cfg.Sound.WAV != "" || cfg.Sound.Play) {
		opts := audio.DefaultOptions()
		opts.Tone = time.Duration(cfg.Sound.ToneMs) * time.Millisecond
		opts.BaseHz = cfg.Sound.BaseHz
		opts.Volume = cfg.Sound.Volume
		hooks = append(hooks, audio.Hook(opts, cfg.Sound.WAV, cfg.Sound.Play))
	}
	return hooks
}

// viewLog plots an existing log; without an explicit mode the chord is inferred from the data
func viewLog(path string, cfg *config.Config, modeFixed bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	pts, err := trajectory.ReadLog(f)
	if err != nil {
		return err
	}
	if len(pts) == 0 {
		return fmt.Errorf("no data in %s", path)
	}

	table := cfg.PhysicsTable()
	if !modeFixed {
		table.Mode = inferMode(pts)
	}
	return viewer(pts, table)
}

// inferMode treats a log that never dips below the chord as flat-bottom
func inferMode(pts []vmath.Vec2) physics.Mode {
	for _, p := range pts {
		if p.Y <= -0.1 {
			return physics.Full
		}
	}
	return physics.FlatBottom
}
