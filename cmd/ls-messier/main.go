// Command ls-messier is a terminal UI showing where the Messier objects are in
// the sky for an observer.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-messier/internal/astro"
	"github.com/litescript/ls-messier/internal/catalog"
	"github.com/litescript/ls-messier/internal/config"
	"github.com/litescript/ls-messier/internal/logging"
	"github.com/litescript/ls-messier/internal/state"
	"github.com/litescript/ls-messier/internal/ui"
)

// Visibility windows are sampled over one day.
const (
	windowSpan = 24 * time.Hour
	windowStep = 10 * time.Minute
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code so deferred cleanup, including the
// logger flush, happens before main exits.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ls-messier", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	start, err := flags.ObservationTime(time.Now())
	if err != nil {
		fmt.Fprintf(stderr, "Error: invalid --time: %v\n", err)
		return 2
	}

	headless := flags.Summary || flags.JSON || flags.Object != "" || !isTerminal(stdout)

	logger := newLogger(cfg, headless, stderr)
	defer logger.Sync()

	clock, err := cfg.Clock()
	if err != nil {
		logger.Error("Sidereal clock: %v", err)
		return 2
	}
	tr := astro.NewTransformer(clock)
	obs := cfg.ObserverSite()
	logger.Debug("Observer %+v, clock %T", obs, clock)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	stateCfg := state.DefaultConfig()
	stateCfg.RefreshInterval = cfg.Display.Refresh
	stateCfg.MinAltitude = cfg.Display.MinAltitude
	stateMgr := state.NewManager(stateCfg, tr, obs, nil)

	opts := ui.TableOptions{
		Sort:        cfg.SortOrder(),
		VisibleOnly: cfg.Display.VisibleOnly,
		MinAltitude: cfg.Display.MinAltitude,
	}

	if headless {
		if err := runHeadless(stdout, flags, tr, obs, stateMgr, opts, start, logger); err != nil {
			logger.Error("%v", err)
			return 1
		}
		return 0
	}

	// A fixed --time keeps advancing from the given instant.
	offset := time.Until(start)
	now := func() time.Time { return time.Now().Add(offset) }

	p := tea.NewProgram(ui.New(stateMgr, opts, now), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		fmt.Fprintf(stderr, "Error running TUI: %v\n", err)
		return 1
	}
	return 0
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// newLogger writes to stderr in headless mode. The TUI owns the terminal, so
// it only logs when a log file is configured.
func newLogger(cfg *config.Config, headless bool, stderr io.Writer) *logging.Logger {
	level := logging.ParseLevel(cfg.Logging.Level)
	switch {
	case cfg.Logging.File != "":
		return logging.NewFile(level, logging.DefaultFileConfig(cfg.Logging.File))
	case headless:
		return logging.NewWithWriter(level, stderr)
	default:
		return logging.Discard()
	}
}

// runHeadless prints a single object card, a JSON snapshot or the summary
// table.
func runHeadless(w io.Writer, flags *config.Flags, tr astro.Transformer, obs astro.Observer, stateMgr *state.Manager,
	opts ui.TableOptions, at time.Time, logger *logging.Logger) error {
	if flags.Object != "" {
		obj, err := catalog.Lookup(flags.Object)
		if err != nil {
			return err
		}
		log := logger.With("object", obj.ID())

		p := catalog.PositionOf(tr, obj, obs, at)
		if p.Err != nil {
			log.Warn("Position failed: %v", p.Err)
		} else if !p.AzDefined {
			log.Info("Azimuth undefined for this geometry")
		}

		var win *astro.VisibilityWindow
		samples, err := astro.SamplesFor(obj.RAdeg, obj.DecDeg, at, windowSpan, windowStep)
		if err != nil {
			return fmt.Errorf("sample %s: %w", obj.ID(), err)
		}
		if w, err := tr.RiseSet(obs, samples); err != nil {
			log.Warn("Visibility window unavailable: %v", err)
		} else {
			win = &w
		}

		fmt.Fprint(w, ui.RenderObject(p, win))
		return nil
	}

	stateMgr.Update(at)
	snap := stateMgr.Snapshot()
	for _, p := range snap.Positions {
		if p.Err != nil {
			logger.Warn("%s: %v", p.Object.ID(), p.Err)
		}
	}
	logger.Debug("Computed %d positions in %v", len(snap.Positions), snap.ComputeTime)

	if flags.JSON {
		if err := state.ExportSnapshot(snap).WriteJSON(w); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}
		return nil
	}

	ui.WriteSummary(w, snap, opts)
	return nil
}
