package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/config"
	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/intent"
	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/vr"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

var ErrCompanionMissing = errors.New("VR companion is not installed")

// Runner carries out command line actions against a bridge.
type Runner struct {
	Bridge     *vr.Bridge
	Fs         afero.Fs
	Clock      clockwork.Clock
	Out        io.Writer
	HandoffDir string
}

// Startup links the native loader the first time it runs in a process.
func (r *Runner) Startup(ctx context.Context) error {
	session := r.Bridge.Session()
	if session.IsInitialized() {
		return nil
	}
	if err := r.Bridge.LinkLoader(ctx); err != nil {
		return fmt.Errorf("failed to link VR loader: %w", err)
	}
	session.SetInitialized()
	return nil
}

func (r *Runner) Installed(ctx context.Context) error {
	installed, err := r.Bridge.IsInstalled(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for VR companion: %w", err)
	}
	_, _ = fmt.Fprintf(r.Out, "installed: %t\n", installed)
	return nil
}

func (r *Runner) Inspect() error {
	summaries, err := r.Bridge.InspectConfig()
	if err != nil {
		return fmt.Errorf("failed to inspect config: %w", err)
	}
	out, err := yaml.Marshal(summaries)
	if err != nil {
		return fmt.Errorf("failed to encode config summary: %w", err)
	}
	_, err = r.Out.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write config summary: %w", err)
	}
	return nil
}

// Launch sends paths to the VR companion after clearing out stale
// envelopes.
func (r *Runner) Launch(ctx context.Context, paths []string) error {
	if _, err := intent.PruneHandoffs(r.Fs, r.HandoffDir, r.Clock, config.HandoffMaxAge); err != nil {
		log.Warn().Err(err).Msg("failed to prune stale handoffs")
	}

	installed, err := r.Bridge.IsInstalled(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for VR companion: %w", err)
	}
	if !installed {
		return ErrCompanionMissing
	}

	if err := r.Bridge.OpenIntent(ctx, paths); err != nil {
		return fmt.Errorf("failed to launch in VR: %w", err)
	}
	return nil
}

// Restore consumes one envelope and prints the files it asks to start.
func (r *Runner) Restore(ctx context.Context, path string) error {
	if err := r.Startup(ctx); err != nil {
		return err
	}
	in, restored, err := r.Bridge.RestoreFromHandoff(path)
	if err != nil {
		return fmt.Errorf("failed to restore launch request: %w", err)
	}
	r.printLaunch(in, restored)
	return nil
}

// Watch restores launch requests as they arrive until ctx is cancelled.
func (r *Runner) Watch(ctx context.Context) error {
	if err := r.Startup(ctx); err != nil {
		return err
	}
	if err := r.Bridge.WatchHandoffs(ctx, r.HandoffDir, r.printLaunch); err != nil {
		return fmt.Errorf("failed to watch for launch requests: %w", err)
	}
	return nil
}

func (r *Runner) printLaunch(in *intent.Intent, restored bool) {
	if !restored {
		_, _ = fmt.Fprintln(r.Out, "duplicate launch ignored")
		return
	}
	if files, ok := in.Extras.StringList(intent.ExtraAutoStartFiles); ok {
		for _, f := range files {
			_, _ = fmt.Fprintln(r.Out, f)
		}
		return
	}
	if in.Data != nil {
		_, _ = fmt.Fprintln(r.Out, in.Data.String())
	}
}
