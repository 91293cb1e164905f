package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kr/pretty"

	"directions-viewer/directions"
	"directions-viewer/mapview"
	"directions-viewer/metrics"
	"directions-viewer/provider"
	"directions-viewer/snapshot"
	"directions-viewer/ui"
	"directions-viewer/utils"
)

func main() {
	configPath := flag.String("config", "", "config file (default ./config.yaml if present)")
	snapshotPath := flag.String("snapshot", "", "fetch once, write a PNG map to this path and print the directions")
	offline := flag.Bool("offline", false, "use the straight-line provider instead of Google")
	flag.Parse()

	if *offline {
		os.Setenv("DIRECTIONS_PROVIDER_NAME", "straight")
	}
	if *snapshotPath != "" {
		os.Setenv("DIRECTIONS_SNAPSHOT_PATH", *snapshotPath)
	}

	cfg, err := utils.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logFile := cfg.Log.File
	if cfg.Snapshot.Path != "" {
		logFile = ""
	}
	closer, err := utils.SetupLogging(cfg.Log.Level, cfg.Log.Format, logFile)
	if err != nil {
		log.Fatalf("setup logging: %v", err)
	}
	defer closer.Close()

	routes, geocoder, err := buildProvider(cfg.Provider)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Metrics.Addr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.Metrics.Addr); err != nil {
				slog.Error("metrics server stopped", "error", err)
			}
		}()
	}

	notifier := utils.NewNotifier(cfg.Notify)
	state := directions.NewState()
	opts := []mapview.Option{mapview.WithObserver(reportResult(cfg.Provider.Name, notifier))}
	if geocoder != nil {
		opts = append(opts, mapview.WithGeocoder(geocoder))
	}
	adapter := mapview.New(cfg.Adapter(), state, routes, opts...)

	if cfg.Snapshot.Path != "" {
		if err := runHeadless(ctx, adapter, state, cfg.Snapshot); err != nil {
			stop()
			log.Fatalf("%v", err)
		}
		return
	}

	slog.Info("starting", "provider", cfg.Provider.Name, "request", adapter.Request())
	p := tea.NewProgram(ui.New(ctx, adapter, state), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		stop()
		log.Fatalf("ui: %v", err)
	}
}

func buildProvider(cfg utils.ProviderConfig) (provider.RouteProvider, provider.Geocoder, error) {
	switch cfg.Name {
	case "straight":
		return provider.StraightLine{}, nil, nil
	case "google":
		g, err := provider.NewGoogle(cfg.APIKey, cfg.BaseURL)
		if err != nil {
			return nil, nil, err
		}
		if !cfg.Geocoding {
			return g, nil, nil
		}
		return g, g, nil
	}
	return nil, nil, fmt.Errorf("unknown provider %q", cfg.Name)
}

// reportResult feeds every applied route result into metrics and ntfy.
func reportResult(providerName string, n *utils.Notifier) func(mapview.Result) {
	return func(res mapview.Result) {
		if res.Err != nil {
			metrics.ObserveFetch(providerName, res.Elapsed, 0, res.Err)
			n.Go(n.FormatErrorNotification(res.Err, "Map Adapter"))
			return
		}
		metrics.ObserveFetch(providerName, res.Elapsed, len(res.Routes[0].Instructions()), nil)
		n.Go(n.FormatInfoNotification(fmt.Sprintf("Route request processed: Origin=%s, Destination=%s, RoutesFound=%d",
			res.Request.Source.Title(), res.Request.Destination.Title(), len(res.Routes)), "Map Adapter"))
	}
}

// runHeadless fetches on the calling goroutine, writes the snapshot and
// prints the instructions.
func runHeadless(ctx context.Context, adapter *mapview.Adapter, state *directions.State, cfg utils.SnapshotConfig) error {
	adapter.Mount()
	res := adapter.Fetch(ctx)
	adapter.Apply(res)
	if state.Status() == directions.StatusFailed {
		return fmt.Errorf("directions request: %w", state.Err())
	}
	slog.Debug("route", "detail", pretty.Sprint(res.Routes[0]))

	if err := snapshot.Write(adapter.Surface(), cfg.Path, cfg.Width, cfg.Height); err != nil {
		return err
	}
	slog.Info("snapshot written", "path", cfg.Path)

	for i, in := range state.Instructions() {
		fmt.Printf("%d. %s\n", i+1, in)
	}
	return nil
}
