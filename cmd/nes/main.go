package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/veandco/go-sdl2/ttf"

	cerrors "github.com/flga/nes/cmd/internal/errors"
	"github.com/flga/nes/cmd/internal/meter"
	"github.com/flga/nes/nes"
	"github.com/veandco/go-sdl2/sdl"
)

const zoom = 4

func init() {
	runtime.LockOSThread()
}

type window interface {
	Handle(sdl.Event, *nes.Console) error
	Render(*nes.Console, time.Duration) error
	Toggle()
	Free() error
	Visible() bool
}

func run(console *nes.Console) error {
	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		return fmt.Errorf("unable to init sdl: %s", err)
	}
	defer sdl.Quit()

	if err := ttf.Init(); err != nil {
		return fmt.Errorf("unable to init sdl ttf: %s", err)
	}

	gameWin, gameId, err := newGameWindow(zoom, "foobar")
	if err != nil {
		return fmt.Errorf("unable to create game window: %s", err)
	}

	patternWin, patternId, err := newPatternWindow(zoom)
	if err != nil {
		return fmt.Errorf("unable to create pattern window: %s", err)
	}

	nametableWin, nametableId, err := newNametableWindow(zoom)
	if err != nil {
		return fmt.Errorf("unable to create nametable window: %s", err)
	}

	windows := map[uint32]window{
		gameId:      gameWin,
		patternId:   patternWin,
		nametableId: nametableWin,
	}

	running := true

	speedTable := [...]time.Duration{16 * time.Millisecond, 200 * time.Microsecond, 1000 * time.Microsecond, 200000 * time.Microsecond, 1 * time.Second}
	ticker := time.NewTicker(speedTable[0])
	defer ticker.Stop()

	tickerChan := ticker.C

	quit := func() {
		running = false
		for _, w := range windows {
			w.Free()
		}
	}

	paused := false
	var controllers []*sdl.GameController
	frameMeter := meter.New(meter.DefaultBufferLen)

Main:
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if event != nil {
				switch evt := event.(type) {
				case *sdl.ControllerDeviceEvent:
					for _, ctrl := range controllers {
						ctrl.Close()
					}
					controllers = controllers[:0]

					for i := 0; i < sdl.NumJoysticks(); i++ {
						controllers = append(controllers, sdl.GameControllerOpen(i))
					}
				case *sdl.QuitEvent:
					quit()
					break Main
				case *sdl.KeyboardEvent:
					if evt.Type == sdl.KEYUP && evt.Keysym.Sym == sdl.K_1 {
						ticker = time.NewTicker(speedTable[0])
						tickerChan = ticker.C
					} else if evt.Type == sdl.KEYUP && evt.Keysym.Sym == sdl.K_2 {
						ticker = time.NewTicker(speedTable[1])
						tickerChan = ticker.C
					} else if evt.Type == sdl.KEYUP && evt.Keysym.Sym == sdl.K_3 {
						ticker = time.NewTicker(speedTable[2])
						tickerChan = ticker.C
					} else if evt.Type == sdl.KEYUP && evt.Keysym.Sym == sdl.K_4 {
						ticker = time.NewTicker(speedTable[3])
						tickerChan = ticker.C
					} else if evt.Type == sdl.KEYUP && evt.Keysym.Sym == sdl.K_5 {
						ticker = time.NewTicker(speedTable[4])
						tickerChan = ticker.C
					} else if evt.Type == sdl.KEYUP && evt.Keysym.Sym == sdl.K_SPACE {
						paused = !paused
					} else if evt.Type == sdl.KEYUP && evt.Keysym.Sym == sdl.K_F1 {
						patternWin.Toggle()
					} else if evt.Type == sdl.KEYUP && evt.Keysym.Sym == sdl.K_F2 {
						nametableWin.Toggle()
					} else {
						windows[evt.WindowID].Handle(evt, console)
					}
				case *sdl.WindowEvent:
					windows[evt.WindowID].Handle(evt, console)
				case *sdl.TextEditingEvent:
					windows[evt.WindowID].Handle(evt, console)
				case *sdl.TextInputEvent:
					windows[evt.WindowID].Handle(evt, console)
				case *sdl.MouseMotionEvent:
					windows[evt.WindowID].Handle(evt, console)
				case *sdl.MouseButtonEvent:
					windows[evt.WindowID].Handle(evt, console)
				case *sdl.MouseWheelEvent:
					windows[evt.WindowID].Handle(evt, console)
				case *sdl.DropEvent:
					windows[evt.WindowID].Handle(evt, console)
				case *sdl.UserEvent:
					windows[evt.WindowID].Handle(evt, console)
				default:
					for _, w := range windows {
						w.Handle(evt, console)
					}
				}
			}
		}

		visible := false
		for _, w := range windows {
			if w.Visible() {
				visible = true
			}
		}
		if !visible || !gameWin.Visible() {
			quit()
			break Main
		}

		start := time.Now()
		select {
		case <-tickerChan:
			if !paused {
				console.StepFrame()
			}
			dur := time.Since(start)
			frameMeter.Record(dur)
			smoothed := time.Duration(frameMeter.Ms() * float64(time.Millisecond))
			for _, w := range windows {
				if !w.Visible() {
					continue
				}
				w.Render(console, smoothed)
			}
			start = time.Now()
		}

	}

	return nil
}

// runTrace drives the console headlessly, one instruction at a time,
// writing a disassembled trace line per instruction to stdout. It
// never touches SDL, so it works in CI/conformance environments with
// no display.
func runTrace(console *nes.Console) error {
	for {
		if console.Step() == 0 {
			return nil
		}
	}
}

func main() {
	trace := flag.Bool("trace", false, "headless execution, one disassembled instruction line per step")
	mapperDebugFlag := flag.Bool("mapper-debug", false, "log mapper register writes to stderr")
	soloFlag := flag.String("solo-channel", "", "mute every APU channel but the named one (pulse1|pulse2|triangle|noise|dmc)")
	wavPath := flag.String("wav", "", "capture the mixed output to a WAV file")
	lowpassHz := flag.Float64("lowpass-hz", 0, "override the lowpass filter cutoffs (Hz)")
	highpass1Hz := flag.Float64("highpass1-hz", 0, "override the first highpass filter cutoff (Hz)")
	highpass2Hz := flag.Float64("highpass2-hz", 0, "override the second highpass filter cutoff (Hz)")
	savePath := flag.String("save", "", "override the battery-RAM side-file location")
	flag.Parse()

	var errs cerrors.List

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: nes [flags] rom.nes")
		os.Exit(2)
	}
	romPath := flag.Arg(0)

	solo, err := nes.ParseSoloChannel(*soloFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var debugOut *os.File
	if *trace {
		debugOut = os.Stdout
	}

	var mapperDebugOut *os.File
	if *mapperDebugFlag {
		mapperDebugOut = os.Stderr
	}

	cfg := nes.Config{
		SampleRate: 44100,
		Filters: nes.FilterConfig{
			LowpassHz:   float32(*lowpassHz),
			Highpass1Hz: float32(*highpass1Hz),
			Highpass2Hz: float32(*highpass2Hz),
		},
		Solo:    solo,
		WavPath: *wavPath,
	}
	if debugOut != nil {
		cfg.DebugOut = debugOut
	}
	if mapperDebugOut != nil {
		cfg.MapperDebug = mapperDebugOut
	}

	console := nes.NewConsole(cfg)
	if err := console.LoadPath(romPath, *savePath); err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("unable to load rom: %s", err))
		os.Exit(2)
	}
	defer console.Close()

	if *wavPath != "" {
		if err := console.StartRecording(); err != nil {
			errs = errs.Add(fmt.Errorf("unable to start wav recording: %s", err))
		}
	}
	if err := errs.Errorf("%s", errs); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	if *trace {
		if err := runTrace(console); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		return
	}

	if err := run(console); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func resize(window *sdl.Window, minWidth, minHeight float64, surface *sdl.Rect) {
	ww, hh := window.GetSize()
	width := float64(ww)
	height := float64(hh)
	var x, y float64 = 0, 0

	ow, oh := width, height
	height = math.Floor(width * (minHeight / minWidth))
	if height > oh {
		width = math.Floor(oh * (minWidth / minHeight))
		height = math.Floor(width * (minHeight / minWidth))
	}

	if width > ow {
		x = (width - ow) / 2
	} else {
		x = (ow - width) / 2
	}
	if height > oh {
		y = (height - oh) / 2
	} else {
		y = (oh - height) / 2
	}

	surface.W = int32(width)
	surface.H = int32(height)
	surface.X = int32(x)
	surface.Y = int32(y)
}
