/*
This is an example of application that will use the
geometry package to test things out
*/
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/geom3/core"
	"github.com/spaghettifunk/geom3/testbed"
)

func main() {
	scenePath := flag.String("scene", "scenes/demo.toml", "path to the scene file")
	watch := flag.Bool("watch", false, "re-run the scene whenever the file changes")
	flag.Parse()

	cfg, err := testbed.LoadScene(*scenePath)
	if err != nil {
		core.LogFatal("loading scene: %v", err)
	}
	core.SetVerbose(cfg.Verbose)

	testbed.BuildScene(cfg).Run()

	if !*watch {
		return
	}

	watcher, err := testbed.NewSceneWatcher(*scenePath)
	if err != nil {
		core.LogFatal("starting watcher: %v", err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// start shutdown goroutine
	go func() {
		// capture sigterm and other system call here
		<-sigCh
		_ = watcher.Close()
	}()

	watcher.Start()
}
