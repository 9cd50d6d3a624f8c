// Package profilewatch registers version profiles appended to the extension file at runtime.
package profilewatch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/turtacn/h5sign/pkg/logger"
)

// Reloader registers the new entries of a profiles file.
type Reloader interface {
	Reload(path string) (int, error)
}

// Watcher re-reads the profiles file when it changes.
// Watcher 监听版本扩展文件，变更后注册新增的版本。
type Watcher struct {
	path     string
	table    Reloader
	debounce time.Duration
	log      logger.Logger
	watcher  *fsnotify.Watcher
	// reloaded receives the result of every reload; used by tests.
	reloaded chan int
}

// New creates a watcher on path. The parent directory is watched so that
// editors replacing the file by rename are still noticed.
func New(path string, table Reloader, log logger.Logger) (*Watcher, error) {
	if log == nil {
		log = logger.NewNoopLogger()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	return &Watcher{
		path:     abs,
		table:    table,
		debounce: 200 * time.Millisecond,
		log:      log.WithComponent("profile_watcher"),
		watcher:  fw,
	}, nil
}

// Run processes events until ctx is done. It closes the underlying watcher on return.
func (w *Watcher) Run(ctx context.Context) {
	defer w.watcher.Close()

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn(ctx, "Profile watcher error", logger.Err(err))
		case <-fire:
			fire = nil
			w.reload(ctx)
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	n, err := w.table.Reload(w.path)
	if err != nil {
		w.log.Error(ctx, "Failed to reload profiles file", err, logger.String("file", w.path))
		n = -1
	} else if n > 0 {
		w.log.Info(ctx, "Registered new version profiles", logger.Int("count", n), logger.String("file", w.path))
	}
	if w.reloaded != nil {
		w.reloaded <- n
	}
}
