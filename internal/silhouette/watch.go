package silhouette

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-runs a config whenever the config file or its silhouette image
// changes. Bursts of events (editors often write, chmod and rename in quick
// succession) collapse into one run after the debounce delay.
type Watcher struct {
	cfgPath  string
	debounce time.Duration
	onRun    func(*Report, error)
}

func NewWatcher(cfgPath string, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = WatchDebounce
	}
	return &Watcher{cfgPath: cfgPath, debounce: debounce}
}

// OnRun sets a callback invoked after every run, from the watch goroutine.
func (w *Watcher) OnRun(fn func(*Report, error)) {
	w.onRun = fn
}

// Run performs an initial run and then watches until ctx is done. Run
// errors are reported through OnRun and the log, never returned.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	watched := map[string]bool{}
	watchFile := func(p string) {
		if p == "" {
			return
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return
		}
		if watched[abs] {
			return
		}
		dir := filepath.Dir(abs)
		dirWatched := false
		for f := range watched {
			if filepath.Dir(f) == dir {
				dirWatched = true
				break
			}
		}
		if !dirWatched {
			if err := fw.Add(dir); err != nil {
				Logger().Warn("watch failed", "dir", dir, "err", err)
				return
			}
		}
		watched[abs] = true
	}

	runOnce := func() {
		cfg, err := LoadConfig(w.cfgPath)
		var rep *Report
		if err == nil {
			watchFile(cfg.Image)
			rep, err = RunConfig(ctx, cfg)
		}
		if err != nil {
			Logger().Error("run failed", "config", w.cfgPath, "err", err)
		}
		if w.onRun != nil {
			w.onRun(rep, err)
		}
	}

	watchFile(w.cfgPath)
	runOnce()

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !watched[abs] {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			DebugLog("Change detected: %s %s", ev.Op, ev.Name)
			timer.Reset(w.debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			Logger().Warn("watch error", "err", err)
		case <-timer.C:
			runOnce()
		}
	}
}
