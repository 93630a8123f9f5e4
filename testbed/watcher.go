package testbed

import (
	"errors"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/geom3/core"
)

// SceneWatcher reloads and re-runs a scene whenever its file is
// rewritten on disk. The parent directory is watched rather than the
// file itself so editors that replace the file atomically (rename over
// it) still trigger a reload.
type SceneWatcher struct {
	path     string
	fsnotify *fsnotify.Watcher
	done     chan struct{}
	isClosed bool
}

// NewSceneWatcher starts watching the directory containing path.
func NewSceneWatcher(path string) (*SceneWatcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatch.Add(filepath.Dir(path)); err != nil {
		fsWatch.Close()
		return nil, err
	}
	return &SceneWatcher{
		path:     path,
		fsnotify: fsWatch,
		done:     make(chan struct{}),
	}, nil
}

// Start blocks, reloading and re-running the scene on every write or
// create event for the watched file, until Close is called.
func (sw *SceneWatcher) Start() {
	for {
		select {
		case e := <-sw.fsnotify.Events:
			if filepath.Clean(e.Name) != filepath.Clean(sw.path) {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			core.LogInfo("scene file changed, reloading: %s", sw.path)
			cfg, err := LoadScene(sw.path)
			if err != nil {
				core.LogError("reload failed: %v", err)
				continue
			}
			BuildScene(cfg).Run()

		case e := <-sw.fsnotify.Errors:
			core.LogError(e.Error())

		case <-sw.done:
			sw.fsnotify.Close()
			return
		}
	}
}

// Close stops the watcher. Calling it twice is an error.
func (sw *SceneWatcher) Close() error {
	if sw.isClosed {
		return errors.New("testbed: scene watcher already closed")
	}
	sw.isClosed = true
	close(sw.done)
	return nil
}
