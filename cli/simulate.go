package cli

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"pfeifer.dev/overlayd/overlay"
	"pfeifer.dev/overlayd/render"
	"pfeifer.dev/overlayd/sim"
)

type engineOptions struct {
	Config       overlay.Config
	Wide         bool
	Experimental bool
}

type simulateSettings struct {
	Engine          engineOptions
	Scenarios       []string
	OutputDirectory string
	HTML            bool
	Database        string
}

type snapshotSettings struct {
	Engine   engineOptions
	Scenario string
	Frame    int
	Output   string
}

func engineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Category: "Engine",
			Name:     "tablet",
			Usage:    "Use the tablet lock-on box size",
		},
		&cli.BoolFlag{
			Category: "Engine",
			Name:     "wide",
			Usage:    "Project against the wide road camera",
		},
		&cli.BoolFlag{
			Category: "Engine",
			Name:     "experimental",
			Usage:    "Color the path by the planned acceleration",
		},
		&cli.BoolFlag{
			Category: "Engine",
			Name:     "no-path-invert",
			Usage:    "Trim the path ribbon where it would fold over itself",
		},
		&cli.Float64Flag{
			Category: "Engine",
			Name:     "min-prob",
			Usage:    "Lead probability a candidate must exceed to get a lock-on box",
			Value:    overlay.DEFAULT_MIN_LEAD_PROB,
		},
		&cli.IntFlag{
			Category: "Engine",
			Name:     "stale-reset",
			Usage:    "Frames without a lead before a lock-on slot is forgotten, 0 freezes it",
			Value:    0,
		},
	}
}

func engineSettings(cmd *cli.Command) engineOptions {
	cfg := overlay.DefaultConfig()
	cfg.Tablet = cmd.Bool("tablet")
	cfg.PathAllowInvert = !cmd.Bool("no-path-invert")
	cfg.MinLeadProb = cmd.Float64("min-prob")
	cfg.LockOnStaleResetFrames = max(int(cmd.Int("stale-reset")), 0)
	return engineOptions{Config: cfg, Wide: cmd.Bool("wide"), Experimental: cmd.Bool("experimental")}
}

func (e engineOptions) runner() sim.Runner {
	r := sim.NewRunner(e.Config)
	r.WideCam = e.Wide
	r.Experimental = e.Experimental
	return r
}

func simulate(s simulateSettings) error {
	if err := os.MkdirAll(s.OutputDirectory, 0o775); err != nil {
		return errors.Wrap(err, "could not create output directory")
	}

	runID := sim.NewRunID()
	var store *sim.TraceStore
	if s.Database != "" {
		var err error
		store, err = sim.OpenTraceStore(s.Database)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	traces := make([]sim.Trace, 0, len(s.Scenarios))
	for _, name := range s.Scenarios {
		scenario, ok := sim.GetScenario(name)
		if !ok {
			return errors.Errorf("unknown scenario %q, expected one of %v", name, sim.ScenarioNames())
		}
		tr := s.Engine.runner().Run(scenario)
		traces = append(traces, tr)

		file := filepath.Join(s.OutputDirectory, name+".png")
		if err := sim.SavePlot(tr, file); err != nil {
			return err
		}
		if store != nil {
			if err := store.Insert(runID, tr); err != nil {
				return err
			}
		}
		if len(tr.Frames) > 0 {
			last := tr.Frames[len(tr.Frames)-1]
			slog.Info("scenario finished", "run", runID, "scenario", name, "frames", len(tr.Frames), "quality", last.Quality, "visible", last.Visible, "plot", file)
		}
	}

	if !s.HTML {
		return nil
	}
	file := filepath.Join(s.OutputDirectory, "report.html")
	f, err := os.Create(file)
	if err != nil {
		return errors.Wrap(err, "could not create report")
	}
	defer f.Close()
	if err := sim.WriteReport(f, traces); err != nil {
		return err
	}
	slog.Info("wrote scenario report", "file", file)
	return nil
}

func snapshot(s snapshotSettings) error {
	scenario, ok := sim.GetScenario(s.Scenario)
	if !ok {
		return errors.Errorf("unknown scenario %q, expected one of %v", s.Scenario, sim.ScenarioNames())
	}
	frame := s.Frame
	if frame < 0 {
		frame += scenario.Frames
	}
	if frame < 0 || frame >= scenario.Frames {
		return errors.Errorf("frame %d is outside of scenario %s with %d frames", s.Frame, s.Scenario, scenario.Frames)
	}
	if err := os.MkdirAll(filepath.Dir(s.Output), 0o775); err != nil {
		return errors.Wrap(err, "could not create output directory")
	}

	var saveErr error
	rendered := false
	r := s.Engine.runner()
	r.OnFrame = func(i int, scene *overlay.Scene) {
		if i != frame {
			return
		}
		c := render.Snapshot(scene)
		defer c.Close()
		saveErr = c.Save(s.Output)
		rendered = true
	}
	r.Run(scenario)

	if saveErr != nil {
		return saveErr
	}
	if !rendered {
		return errors.Errorf("frame %d of scenario %s produced no scene", frame, s.Scenario)
	}
	slog.Info("wrote snapshot", "scenario", s.Scenario, "frame", frame, "file", s.Output)
	return nil
}
