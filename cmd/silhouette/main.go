package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/pprof"
	"strconv"

	"github.com/lukaszgryglicki/silhouette/internal/silhouette"
)

func main() {
	silhouette.Debug = os.Getenv("DEBUG") != ""
	level := slog.LevelInfo
	if silhouette.Debug {
		level = slog.LevelDebug
	}
	silhouette.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	if n, err := strconv.Atoi(os.Getenv("WORKERS")); err == nil {
		silhouette.Workers = n
	}
	silhouette.Potrace = os.Getenv("POTRACE")
	watch := os.Getenv("WATCH") != ""
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg := "scenes/config.json"
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		w := silhouette.NewWatcher(cfg, silhouette.WatchDebounce)
		w.OnRun(func(r *silhouette.Report, err error) {
			if r != nil {
				a := r.Analytics
				fmt.Printf("%d cells, centroid (%.2f, %.2f) cm, half-angle %.2f, pitch %.2f, yaw %.2f\n",
					a.PixelCount, a.Centroid.X, a.Centroid.Y, a.ViewingHalfAngleDeg, a.PitchDeg, a.YawDeg)
			}
		})
		if err := w.Run(ctx); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if err := silhouette.Run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
