package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/Cantus-s-Pipemaker/DolphinXR/internal/telemetry"
	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/cli"
	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/config"
	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/platforms"
	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/platforms/android"
	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/platforms/linux"
	"github.com/Cantus-s-Pipemaker/DolphinXR/pkg/vr"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		telemetry.Close()
		os.Exit(1)
	}
}

func newPlatform(fs afero.Fs, clock clockwork.Clock, dataDir, handoffDir string) platforms.Platform {
	if runtime.GOOS == "android" {
		return android.NewPlatform(android.Options{
			Fs:         fs,
			Clock:      clock,
			DataDir:    dataDir,
			HandoffDir: handoffDir,
		})
	}
	return linux.NewPlatform(linux.Options{
		Fs:         fs,
		Clock:      clock,
		DataDir:    dataDir,
		HandoffDir: handoffDir,
	})
}

func run() error {
	fs := afero.NewOsFs()
	clock := clockwork.NewRealClock()

	pl := newPlatform(fs, clock, "", "")
	flags := cli.SetupFlags()
	flags.Pre(pl)

	var logWriters []io.Writer
	if *flags.Verbose {
		logWriters = []io.Writer{os.Stderr}
	}

	cfg := cli.Setup(pl, config.BaseDefaults, logWriters)
	defer telemetry.Close()

	defer func() {
		if err := recover(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Panic: %s\n", err)
			telemetry.Flush()
			log.Fatal().Msgf("panic: %v", err)
		}
	}()

	settings := pl.Settings()
	userDir := cfg.UserDir(settings.DataDir)
	handoffDir := cfg.HandoffDir(settings.HandoffDir)
	pl = newPlatform(fs, clock, userDir, handoffDir)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bridge := vr.NewBridge(vr.Options{
		Platform:         pl,
		Fs:               fs,
		Loader:           vr.DlopenLoader{Dirs: cfg.LibraryDirs()},
		Host:             vr.HostFunc(func() { log.Info().Msg("duplicate launch, nothing to start") }),
		BeforeExit:       telemetry.Flush,
		CompanionPackage: cfg.CompanionPackage(),
		UserDir:          userDir,
		Capabilities:     vr.DetectCapabilities(ctx, pl),
	})

	runner := &cli.Runner{
		Bridge:     bridge,
		Fs:         fs,
		Clock:      clock,
		Out:        os.Stdout,
		HandoffDir: handoffDir,
	}

	log.Info().
		Str("version", config.AppVersion).
		Str("build", config.BuildType).
		Str("platform", pl.ID()).
		Int("platformVersion", bridge.Capabilities().PlatformVersion).
		Msg("dolphinxr started")

	handled, err := flags.Post(ctx, runner, flag.Args())
	if err != nil {
		log.Error().Err(err).Msg("command failed")
		return err
	}
	if !handled {
		flag.Usage()
		return errors.New("no action given")
	}
	return nil
}
