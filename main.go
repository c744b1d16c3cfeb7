/*
This is an example of application that will use the
engine package to test things out
*/
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/oriel-sdk/oriel/engine"
	"github.com/oriel-sdk/oriel/engine/core"
	"github.com/oriel-sdk/oriel/testbed"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML configuration file")
	flag.Parse()

	demo, err := testbed.NewDemoApp(*configPath)
	if err != nil {
		panic(err)
	}

	eng, err := engine.New(demo.App)
	if err != nil {
		panic(err)
	}

	if err := eng.Initialize(); err != nil {
		panic(err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// start shutdown goroutine
	go func() {
		// capture sigterm and other system call here
		<-sigCh
		// A signal is just one more producer on the queue.
		eng.Events().PushEvent(core.NewEvent(core.KindQuitRequested, core.HandleNone, nil))
	}()

	// run engine
	if err := eng.Run(); err != nil {
		panic(err)
	}

	if err := eng.Shutdown(); err != nil {
		panic(err)
	}
}
