//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"fbdemo/app"
	"fbdemo/hal"
	"fbdemo/internal/buildinfo"
)

const (
	windowTitle  = "Test - ESC to exit"
	windowWidth  = 500
	windowHeight = 500
)

func main() {
	cfg := hal.HeadlessConfig{Width: windowWidth, Height: windowHeight}
	var appCfg app.Config
	var version bool
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", hal.WindowTPS, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&appCfg.Verbose, "v", false, "Log animation phase changes.")
	flag.BoolVar(&appCfg.Hover, "hover", false, "Highlight the button under the pointer.")
	flag.BoolVar(&version, "version", false, "Print the build version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.Short())
		return
	}

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, appCfg)
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(windowTitle, windowWidth, windowHeight, newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
