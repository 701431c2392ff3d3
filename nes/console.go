package nes

import (
	"fmt"
	"image"
	"io"
	"io/ioutil"
	"os"
	"path"
	"strings"
)

// Console is the single exported facade onto the emulation core: a
// host loads a ROM into it, drives it one frame (or one instruction,
// for trace mode) at a time, and reads back the video/audio/battery
// side effects. Nothing else in this package is meant for direct use
// outside it.
type Console struct {
	cartridge   *cartridge
	ram         *ram
	cpu         *cpu
	apu         *apu
	ppu         *ppu
	mapper      mapper
	controller1 *controller
	controller2 *controller

	bus *sysBus

	mapperDebug io.Writer
	romPath     string
	savePath    string

	openFiles []*os.File
}

// Config collects the optional knobs a host may want on construction.
// The zero value is a sane default: no trace output, stock filter
// cutoffs, no solo channel, WAV recording disabled.
type Config struct {
	SampleRate float32
	DebugOut   io.Writer // non-nil enables per-instruction trace logging
	MapperDebug io.Writer // non-nil logs mapper register writes
	Filters    FilterConfig
	Solo       soloChannel
	// WavPath, if set, names the file the combined mix is written to
	// on StartRecording. Per-channel debug recordings (for -solo-style
	// inspection of a single channel) still land in cwd-relative temp
	// files regardless of this setting.
	WavPath string
}

// NewConsole builds a machine with no cartridge loaded. LoadPath or
// LoadRom must be called before StepFrame does anything useful.
func NewConsole(cfg Config) *Console {
	console := &Console{mapperDebug: cfg.MapperDebug}

	makeFile := func(channel string) (io.WriteSeeker, error) {
		if channel == "mix" && cfg.WavPath != "" {
			f, err := os.Create(cfg.WavPath)
			if err != nil {
				return nil, err
			}
			console.openFiles = append(console.openFiles, f)
			return f, nil
		}

		dir, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		f, err := ioutil.TempFile(dir, "nes_"+channel+"_*.wav")
		if err != nil {
			return nil, err
		}
		console.openFiles = append(console.openFiles, f)
		return f, nil
	}

	sampleRate := cfg.SampleRate
	if sampleRate == 0 {
		sampleRate = 44100
	}

	ram := newRAM()
	ctrl1 := &controller{}
	ctrl2 := &controller{}

	ppu := newPPU()
	apu := newApu(4096, sampleRate, makeFile, cfg.Filters)
	apu.setSolo(cfg.Solo)
	cpu := newCpu(cfg.DebugOut, ppu, apu)

	bus := &sysBus{
		ram:   ram,
		cpu:   cpu,
		apu:   apu,
		ppu:   ppu,
		ctrl1: ctrl1,
		ctrl2: ctrl2,
	}
	cpu.bus = bus

	console.ram = ram
	console.cpu = cpu
	console.apu = apu
	console.ppu = ppu
	console.controller1 = ctrl1
	console.controller2 = ctrl2
	console.bus = bus

	return console
}

// Empty reports whether a cartridge has been loaded yet.
func (c *Console) Empty() bool {
	return c.cartridge == nil
}

func (c *Console) load(cart *cartridge, savePath string) error {
	mp, err := newMapper(cart)
	if err != nil {
		return err
	}
	if c.mapperDebug != nil {
		mp = newDebugMapper(mp, c.mapperDebug)
	}

	first := c.cartridge == nil

	c.cartridge = cart
	c.mapper = mp
	c.bus.cartridge = cart
	c.bus.mapper = mp
	c.bus.prgRAM = make([]byte, cart.prgRAMSize)
	c.ppu.mapper = mp

	if cart.battery && savePath != "" {
		if data, err := ioutil.ReadFile(savePath); err == nil {
			n := copy(c.bus.prgRAM, data)
			_ = n
		}
	}

	if first {
		c.cpu.init(c.bus)
		return nil
	}

	c.Reset()
	return nil
}

// savePath returns where battery RAM is persisted: romPath with its
// extension replaced by .sav, unless override is non-empty.
func savePath(romPath, override string) string {
	if override != "" {
		return override
	}
	if romPath == "" {
		return ""
	}
	ext := path.Ext(romPath)
	return strings.TrimSuffix(romPath, ext) + ".sav"
}

// LoadPath opens and loads the iNES ROM at path. save overrides the
// default battery-RAM side-file location; pass "" to use the default.
func (c *Console) LoadPath(romPath, save string) error {
	f, err := os.Open(romPath)
	if err != nil {
		return fmt.Errorf("unable to open rom: %s", err)
	}
	defer f.Close()

	cart, err := loadINES(f)
	if err != nil {
		return err
	}

	c.romPath = romPath
	c.savePath = savePath(romPath, save)
	return c.load(cart, c.savePath)
}

// LoadRom loads an iNES image from an arbitrary reader. Battery RAM
// is not persisted for roms loaded this way unless save is non-empty.
func (c *Console) LoadRom(rom io.Reader, save string) error {
	cart, err := loadINES(rom)
	if err != nil {
		return err
	}

	c.savePath = save
	return c.load(cart, save)
}

// FlushBattery writes PRG-RAM to the battery side-file, if the loaded
// cartridge has one and a save path was resolved.
func (c *Console) FlushBattery() error {
	if c.cartridge == nil || !c.cartridge.battery || c.savePath == "" {
		return nil
	}
	return ioutil.WriteFile(c.savePath, c.bus.prgRAM, 0644)
}

func (c *Console) StartRecording() error {
	return c.apu.mixer.startRecording()
}

func (c *Console) PauseRecording() {
	c.apu.mixer.pauseRecording()
}

func (c *Console) UnpauseRecording() {
	c.apu.mixer.unpauseRecording()
}

func (c *Console) StopRecording() error {
	return c.apu.mixer.stopRecording()
}

// Close flushes battery RAM, stops any in-progress WAV recording and
// closes every file the console opened.
func (c *Console) Close() error {
	flushErr := c.FlushBattery()

	if err := c.StopRecording(); err != nil {
		return err
	}

	var err error
	for _, f := range c.openFiles {
		err = f.Close()
	}
	if flushErr != nil {
		return flushErr
	}
	return err
}

func (c *Console) Reset() {
	c.cpu.reset(c.bus)
	c.apu.reset()
}

// StepFrame runs instructions until the PPU completes one frame.
func (c *Console) StepFrame() {
	if c.Empty() {
		return
	}

	frame := c.ppu.frame
	for frame == c.ppu.frame {
		c.cpu.execute(c.bus)
	}
}

// Step executes exactly one CPU instruction (including any pending
// interrupt dispatch) and returns the cycle count it consumed. Used by
// trace mode, which needs per-instruction granularity rather than
// per-frame.
func (c *Console) Step() uint64 {
	if c.Empty() {
		return 0
	}
	return c.cpu.execute(c.bus)
}

func (c *Console) Press(ctrl int, button Button) {
	switch ctrl {
	case 0:
		c.controller1.press(button)
	case 1:
		c.controller2.press(button)
	}
}

func (c *Console) Release(ctrl int, button Button) {
	switch ctrl {
	case 0:
		c.controller1.release(button)
	case 1:
		c.controller2.release(button)
	}
}

// Buffer returns the current frame. The returned image is reused
// across frames; callers that need to retain a frame must copy it.
func (c *Console) Buffer() *image.RGBA {
	return c.ppu.buffer
}

func (c *Console) AudioChannel() <-chan float32 {
	return c.apu.channel()
}

func (c *Console) DrawNametables(buf *image.RGBA) {
	c.ppu.drawNametables(buf)
}

func (c *Console) DrawPatternTables(buf *image.RGBA, paletteNum byte) {
	c.ppu.drawPatternTables(buf, paletteNum)
}

// Read and Write give trace mode and tests raw bus access.
func (c *Console) Read(addr uint16) byte {
	return c.bus.read(addr)
}

func (c *Console) Write(addr uint16, v byte) {
	c.bus.write(addr, v)
}
