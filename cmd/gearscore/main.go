// Command gearscore rates gear items from a YAML file: for every substat it
// reconstructs the roll combinations that could have produced the observed
// amount and prints the evidence per attribute.
//
// Usage:
//
//	gearscore items.yaml
//
// Config is read from config/gearscore.yaml (override with GEARSCORE_CONFIG).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/udisondev/gearscore/internal/config"
	"github.com/udisondev/gearscore/internal/data"
	"github.com/udisondev/gearscore/internal/model"
	"github.com/udisondev/gearscore/internal/rating"
)

const ConfigPath = "config/gearscore.yaml"

// envConfig holds environment overrides of the tool.
type envConfig struct {
	ConfigPath string `env:"GEARSCORE_CONFIG"`
}

// gearFile mirrors the YAML input document.
type gearFile struct {
	Items []gearEntry `yaml:"items"`
}

type gearEntry struct {
	Name       string      `yaml:"name"`
	Attributes []attrEntry `yaml:"attributes"`
}

type attrEntry struct {
	Kind string `yaml:"kind"`
	// Amount приходит как number или string в зависимости от документа;
	// коэрция через rating.ParseAmount.
	Amount any `yaml:"amount"`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, os.Args[1:]); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: gearscore <items.yaml>")
	}

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}
	cfgPath := ConfigPath
	if ec.ConfigPath != "" {
		cfgPath = ec.ConfigPath
	}

	cfg, err := config.LoadRating(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Configure slog. Результаты идут в stdout, логи в stderr.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	if err := data.LoadStatProfiles(); err != nil {
		return fmt.Errorf("loading stat profiles: %w", err)
	}

	profiles, err := cfg.Profiles(data.Profiles())
	if err != nil {
		return fmt.Errorf("merging stat overrides: %w", err)
	}

	estimator, err := rating.NewEstimator(profiles)
	if err != nil {
		return fmt.Errorf("building estimator: %w", err)
	}
	if cfg.Workers > 0 {
		estimator.SetWorkers(cfg.Workers)
	}

	items, err := readGearFile(args[0])
	if err != nil {
		return fmt.Errorf("reading gear file: %w", err)
	}
	slog.Info("gear file loaded", "path", args[0], "items", len(items))

	evidence, err := estimator.EstimateAll(ctx, items)
	if evidence == nil {
		return err
	}
	if err != nil {
		slog.Warn("some attributes could not be rated", "err", err)
	}

	printEvidence(items, evidence)
	return nil
}

// readGearFile parses the items document into validated gear models.
func readGearFile(path string) ([]*model.Gear, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file gearFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	items := make([]*model.Gear, 0, len(file.Items))
	for i, entry := range file.Items {
		attrs := make([]model.Attribute, 0, len(entry.Attributes))
		for _, a := range entry.Attributes {
			amount, err := rating.ParseAmount(a.Amount)
			if err != nil {
				return nil, fmt.Errorf("item %d (%s), attribute %s: %w", i, entry.Name, a.Kind, err)
			}
			attrs = append(attrs, model.Attribute{Kind: model.StatKind(a.Kind), Amount: amount})
		}

		gear, err := model.NewGear(entry.Name, attrs)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, gear)
	}

	return items, nil
}

func printEvidence(items []*model.Gear, evidence [][]rating.AttributeEvidence) {
	for i, item := range items {
		fmt.Printf("%s\n", item.Name())

		for _, ev := range evidence[i] {
			if ev.Err != nil {
				fmt.Printf("  %-16s %10.2f  (no profile for this kind)\n", ev.Kind, ev.Amount)
				continue
			}

			fmt.Printf("  %-16s %10.2f  weight=%.2f rolls=%v\n", ev.Kind, ev.Amount, ev.Weight, ev.RollCounts())
			for _, combo := range ev.Combinations {
				fmt.Printf("    %v\n", combo)
			}
			if len(ev.Combinations) == 0 {
				fmt.Printf("    no combination explains this amount\n")
			}
		}
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
