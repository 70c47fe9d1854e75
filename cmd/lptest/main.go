package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"go-launchpad/launchpad"
	"go-launchpad/midi"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}
	defer midi.Shutdown()

	switch os.Args[1] {
	case "list":
		listPorts()
	case "reset":
		withDevice(func(ctrl *launchpad.Controller) error {
			return ctrl.Reset()
		})
	case "allon":
		withDevice(func(ctrl *launchpad.Controller) error {
			return ctrl.AllOn(parseBrightness(arg(2, "medium")))
		})
	case "duty":
		num, den := atoi(arg(2, "1"), 1), atoi(arg(3, "5"), 5)
		withDevice(func(ctrl *launchpad.Controller) error {
			return ctrl.SetDutyCycle(num, den)
		})
	case "leds":
		withDevice(testLEDs)
	case "watch":
		withDevice(watchButtons)
	default:
		usage()
	}
}

func usage() {
	fmt.Println("Launchpad test scripts")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list            - List all MIDI ports")
	fmt.Println("  reset           - Reset the device (all LEDs off)")
	fmt.Println("  allon [low|medium|high]")
	fmt.Println("  duty <num> <den> - Set the LED duty cycle")
	fmt.Println("  leds            - Light a red diagonal")
	fmt.Println("  watch           - Print button presses for 30s")
}

func listPorts() {
	fmt.Println("=== MIDI Input Ports ===")
	for i, p := range gomidi.GetInPorts() {
		fmt.Printf("  %d: %s\n", i, p.String())
	}
	fmt.Println("\n=== MIDI Output Ports ===")
	for i, p := range gomidi.GetOutPorts() {
		fmt.Printf("  %d: %s\n", i, p.String())
	}
}

func withDevice(fn func(*launchpad.Controller) error) {
	dev, err := midi.Find("launchpad")
	if err != nil {
		fmt.Println("no Launchpad found:", err)
		return
	}
	defer dev.Close()
	fmt.Println("using", dev.ID())

	if err := fn(dev.Controller()); err != nil {
		fmt.Println("error:", err)
	}
}

func testLEDs(ctrl *launchpad.Controller) error {
	fmt.Println("lighting the diagonal...")
	for i := 0; i < 8; i++ {
		name := fmt.Sprintf("%d%d", i, i)
		if err := ctrl.SetLed(name, launchpad.Red, false, false); err != nil {
			return err
		}
		time.Sleep(100 * time.Millisecond)
	}

	fmt.Println("press Enter to clear...")
	fmt.Scanln()
	return ctrl.Reset()
}

func watchButtons(ctrl *launchpad.Controller) error {
	sub := ctrl.OnPress(func(b *launchpad.Button) {
		fmt.Println("pressed ", b.Name)
	})
	defer sub.Cancel()
	sub = ctrl.OnRelease(func(b *launchpad.Button) {
		fmt.Println("released", b.Name)
	})
	defer sub.Cancel()

	fmt.Println("watching for 30s, press some buttons...")
	time.Sleep(30 * time.Second)
	return nil
}

func parseBrightness(s string) launchpad.Brightness {
	switch s {
	case "low":
		return launchpad.BrightnessLow
	case "high":
		return launchpad.BrightnessHigh
	default:
		return launchpad.BrightnessMedium
	}
}

func arg(i int, fallback string) string {
	if len(os.Args) > i {
		return os.Args[i]
	}
	return fallback
}

func atoi(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
