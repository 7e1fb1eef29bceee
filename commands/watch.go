package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/penwyp/go-codebase-viz/internal/data/loader"
	"github.com/penwyp/go-codebase-viz/internal/generator"
	"github.com/penwyp/go-codebase-viz/internal/util"
)

// watchDataset regenerates the artifacts after every change to path until
// ctx is cancelled or the process is interrupted. A dataset that fails to
// load is reported and the previous artifacts are left in place.
func watchDataset(ctx context.Context, path string, config *generator.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fw, err := loader.NewFileWatcher(path, loader.DefaultDebounce)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	defer fw.Close()

	notify := util.NewNotifier(config.Stdout)
	notify.Plain("")
	notify.Notice(fmt.Sprintf("Watching %s for changes (Ctrl+C to stop)", path))

	for {
		select {
		case <-ctx.Done():
			util.LogInfo("Watch stopped")
			return nil

		case _, ok := <-fw.Events():
			if !ok {
				return nil
			}

			report, err := loader.Load(path)
			if err != nil {
				util.LogWarn("Dataset rejected", util.F("path", path), util.F("error", err.Error()))
				notify.Notice("Dataset rejected: " + err.Error())
				continue
			}
			if err := generator.New(config, report).Run(); err != nil {
				return err
			}
		}
	}
}
