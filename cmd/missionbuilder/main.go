package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/OCAP2/missionbuilder/internal/builder"
	"github.com/OCAP2/missionbuilder/internal/callsign"
	"github.com/OCAP2/missionbuilder/internal/config"
	"github.com/OCAP2/missionbuilder/internal/logging"
	intOtel "github.com/OCAP2/missionbuilder/internal/otel"
	"github.com/OCAP2/missionbuilder/internal/rand"
	"github.com/OCAP2/missionbuilder/internal/storage"
)

// BuildDate can be set at build time via ldflags
var (
	CurrentVersion string = "0.0.1"
	BuildDate      string = "unknown"

	AppName string = "missionbuilder"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) (err error) {
	fs := flag.NewFlagSet(AppName, flag.ContinueOnError)
	fs.SetOutput(stdout)
	configDir := fs.String("config", ".", "directory containing "+config.ConfigFileName)
	planPath := fs.String("plan", "", "scenario plan file (json, yaml or toml)")
	seed := fs.Int64("seed", 0, "random seed for callsign and onboard number draws, 0 uses the configured seed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *planPath == "" {
		return errors.New("missing -plan")
	}

	if err := config.Load(*configDir); err != nil {
		return err
	}

	logs, err := logging.Setup(config.GetLoggingConfig(), AppName, time.Now(), stdout)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, logs.Close())
	}()
	log := logs.Logger
	log.Info().Str("version", CurrentVersion).Str("buildDate", BuildDate).Msg("Starting up")

	catalogue := callsign.Default()
	if path := config.GetString("callsigns.file"); path != "" {
		if catalogue, err = callsign.Load(path); err != nil {
			return err
		}
		log.Info().Str("path", path).Msg("Callsign catalogue loaded")
	}

	if *seed == 0 {
		*seed = config.GetRandSeed()
	}
	var src rand.Source
	if *seed != 0 {
		src = rand.NewSeeded(*seed)
		log.Debug().Int64("seed", *seed).Msg("Using fixed random seed")
	} else {
		src = rand.New()
	}

	otelCfg := config.GetOTelConfig()
	provider := intOtel.New(intOtel.Config{Enabled: otelCfg.Enabled, ServiceName: otelCfg.ServiceName})

	plan, err := builder.LoadPlan(*planPath)
	if err != nil {
		return err
	}

	scenario, err := builder.Build(plan, builder.Options{
		Rand:      src,
		Callsigns: catalogue,
		Logger:    log,
		Meter:     provider.Meter(),
	})
	if err != nil {
		return fmt.Errorf("failed to build scenario: %w", err)
	}

	backend, err := storage.NewBackend(config.GetStorageConfig(), log)
	if err != nil {
		return err
	}
	if err := backend.Init(); err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() {
		err = errors.Join(err, backend.Close())
	}()

	if err := backend.SaveScenario(scenario); err != nil {
		return fmt.Errorf("failed to save scenario: %w", err)
	}

	ev := log.Info().Str("scenario", scenario.Name).Int("countries", len(scenario.Countries()))
	if exp, ok := backend.(storage.Exporter); ok {
		ev = ev.Str("path", exp.LastExportPath())
	}
	ev.Msg("Scenario saved")
	return nil
}
