package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"go-launchpad/config"
	"go-launchpad/debug"
	"go-launchpad/field"
	"go-launchpad/midi"
	"go-launchpad/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("config:", err)
		os.Exit(1)
	}

	if cfg.Debug {
		if err := debug.Enable(); err != nil {
			fmt.Println("debug log:", err)
		}
		defer debug.Disable()
	}
	defer midi.Shutdown()

	deviceMgr := midi.NewDeviceManager(cfg.DevicePattern)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go deviceMgr.Run(ctx)

	wash := field.New(cfg.FieldSpeed)

	m := tui.NewModel(deviceMgr, wash, time.Duration(cfg.FrameIntervalMs)*time.Millisecond)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
