package loader

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/penwyp/go-codebase-viz/internal/util"
)

// DefaultDebounce collapses the bursts of events editors emit on save.
const DefaultDebounce = 200 * time.Millisecond

// FileWatcher reports changes to a single dataset file. The parent directory
// is watched so that editors replacing the file are noticed too.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	events   chan string
	done     chan struct{}
	stopOnce sync.Once
}

func NewFileWatcher(path string, debounce time.Duration) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}

	fw := &FileWatcher{
		watcher:  watcher,
		path:     abs,
		debounce: debounce,
		events:   make(chan string, 1),
		done:     make(chan struct{}),
	}

	go fw.processEvents()

	return fw, nil
}

func (fw *FileWatcher) processEvents() {
	defer close(fw.events)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != fw.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			util.LogDebugf("Dataset event: %s %s", event.Op, event.Name)

			if timer == nil {
				timer = time.NewTimer(fw.debounce)
			} else {
				timer.Reset(fw.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			select {
			case fw.events <- fw.path:
			default:
				// a change is already pending
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			// Log error but continue running
			util.LogError("File monitoring error: " + err.Error())

		case <-fw.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// Events delivers the dataset path after each settled change. The channel is
// closed when the watcher stops.
func (fw *FileWatcher) Events() <-chan string {
	return fw.events
}

func (fw *FileWatcher) Close() error {
	var err error
	fw.stopOnce.Do(func() {
		close(fw.done)
		err = fw.watcher.Close()
	})
	return err
}
