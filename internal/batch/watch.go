package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// settle groups the burst of events an editor produces for one save.
const settle = 100 * time.Millisecond

// Watch calls onChange every time the file at path is written or replaced,
// until ctx is done. The parent directory is watched so that editors which
// save by rename are still seen. Errors from onChange are logged, not fatal.
func Watch(ctx context.Context, logger *zap.Logger, path string, onChange func() error) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	logger.Info("watching batch file", zap.String("path", abs))

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				pending = time.After(settle)
			}
		case <-pending:
			pending = nil
			if err := onChange(); err != nil {
				logger.Error("rebuild failed", zap.String("path", abs), zap.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", zap.Error(err))
		}
	}
}
