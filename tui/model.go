package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go-launchpad/debug"
	"go-launchpad/field"
	"go-launchpad/launchpad"
	"go-launchpad/midi"
	"go-launchpad/widgets"
)

// Model is the demo TUI: it mirrors the device's displaying buffer on
// screen, drives the ambient color wash, and maps keys to core commands.
type Model struct {
	DeviceMgr     *midi.DeviceManager
	Field         *field.Field
	FrameInterval time.Duration

	device     *midi.Device
	pressSub   *launchpad.Subscription
	releaseSub *launchpad.Subscription
	start      time.Time
	paused     bool
	quitting   bool
	status     string
}

type frameMsg time.Time

type DeviceEventMsg midi.DeviceEvent

func NewModel(deviceMgr *midi.DeviceManager, f *field.Field, frameInterval time.Duration) Model {
	return Model{
		DeviceMgr:     deviceMgr,
		Field:         f,
		FrameInterval: frameInterval,
		start:         time.Now(),
	}
}

func frameTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func ListenForDevices(deviceMgr *midi.DeviceManager) tea.Cmd {
	return func() tea.Msg {
		event := <-deviceMgr.Events()
		return DeviceEventMsg(event)
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		frameTick(m.FrameInterval),
		ListenForDevices(m.DeviceMgr),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ":
			m.paused = !m.paused

		default:
			if m.device != nil {
				m.status = m.runCommand(msg.String())
			}
		}

	case frameMsg:
		if m.device != nil && !m.paused {
			t := time.Since(m.start).Seconds()
			if err := m.device.Controller().SetLeds(m.Field.Frame(t)); err != nil {
				m.status = err.Error()
				debug.Log("tui", "frame write: %v", err)
			}
		}
		return m, frameTick(m.FrameInterval)

	case DeviceEventMsg:
		event := midi.DeviceEvent(msg)
		if event.Type == midi.DeviceConnected {
			m.device = event.Device
			ctrl := event.Device.Controller()
			m.pressSub = ctrl.OnPress(func(b *launchpad.Button) {
				debug.Log("input", "pressed %s", b.Name)
			})
			m.releaseSub = ctrl.OnRelease(func(b *launchpad.Button) {
				debug.Log("input", "released %s", b.Name)
			})
			m.status = "connected " + event.ID
		} else if m.device != nil && m.device.ID() == event.ID {
			m.pressSub.Cancel()
			m.releaseSub.Cancel()
			m.device = nil
			m.status = "disconnected"
		}
		return m, ListenForDevices(m.DeviceMgr)
	}

	return m, nil
}

// runCommand maps one key press to a core command and returns the status
// line. Commands run to completion here, one at a time; the device protocol
// does not tolerate interleaved commands.
func (m Model) runCommand(key string) string {
	ctrl := m.device.Controller()
	var err error
	switch key {
	case "r":
		err = ctrl.Reset()
	case "a":
		err = ctrl.AllOn(launchpad.BrightnessMedium)
	case "f":
		err = ctrl.SwitchFlash()
	case "d":
		err = ctrl.SwitchDisplayingBuffer()
	case "u":
		err = ctrl.SwitchUpdatingBuffer(false)
	case "c":
		err = ctrl.SwitchUpdatingBuffer(true)
	case "1", "2", "3", "4", "5":
		err = ctrl.SetBrightness(int(key[0] - '0'))
	default:
		return m.status
	}
	if err != nil {
		debug.Log("tui", "command %q: %v", key, err)
		return err.Error()
	}
	return m.status
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#ffaa00"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))

	var out strings.Builder
	out.WriteString("\n")

	if m.device == nil {
		out.WriteString(headerStyle.Render("go-launchpad  waiting for device..."))
		out.WriteString("\n\n")
		out.WriteString(dimStyle.Render("connect a Launchpad any time - it will be detected automatically"))
		out.WriteString("\n\n")
		out.WriteString(dimStyle.Render("space:pause  q:quit"))
		return out.String()
	}

	ctrl := m.device.Controller()
	runState := "RUN"
	if m.paused {
		runState = "PAUSE"
	}
	flash := ""
	if ctrl.Flashing() {
		flash = " flash"
	}
	out.WriteString(headerStyle.Render(fmt.Sprintf("go-launchpad  %s  disp:%d upd:%d%s",
		runState, ctrl.DisplayingBuffer(), ctrl.UpdatingBuffer(), flash)))
	out.WriteString("\n\n")

	out.WriteString(m.renderGrid(ctrl))
	out.WriteString("\n\n")

	if pressed := ctrl.PressedButtons(); len(pressed) > 0 {
		names := make([]string, len(pressed))
		for i, b := range pressed {
			names[i] = b.Name
		}
		out.WriteString("held: " + strings.Join(names, " "))
		out.WriteString("\n")
	}

	out.WriteString(dimStyle.Render("r:reset  a:all-on  f:flash  d/u:buffers  c:copy  1-5:brightness  space:pause  q:quit"))
	if m.status != "" {
		out.WriteString("\n")
		out.WriteString(dimStyle.Render(m.status))
	}
	return out.String()
}

// renderGrid lays the displaying buffer out the way the panel does.
func (m Model) renderGrid(ctrl *launchpad.Controller) string {
	buf := ctrl.BufferContents(ctrl.DisplayingBuffer())
	buttons := launchpad.Buttons(launchpad.OrderPhysical)

	var top, side [8]string
	var grid [8][8]string
	for i, b := range buttons[:8] {
		top[i] = buf[b.Name].Hex
	}
	rest := buttons[8:]
	for y := 0; y < 8; y++ {
		row := rest[y*9 : (y+1)*9]
		for x := 0; x < 8; x++ {
			grid[y][x] = buf[row[x].Name].Hex
		}
		side[y] = buf[row[8].Name].Hex
	}
	return widgets.RenderPadGrid(top, grid, side)
}
