package nes

import (
	"bytes"
	"testing"
)

// buildTestRom assembles a minimal NROM (mapper 0) image: one 16 KiB PRG
// bank running a tiny program, one 8 KiB CHR bank of zeroes. The program
// loads 0x2A into A, stores it at $0000, then loops on itself so Step can
// be called indefinitely without running off the end of the bank.
func buildTestRom() []byte {
	header := []byte{'N', 'E', 'S', 0x1A, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	prg := make([]byte, prgMul)
	prg[0] = 0xA9 // LDA #$2A
	prg[1] = 0x2A
	prg[2] = 0x8D // STA $0000
	prg[3] = 0x00
	prg[4] = 0x00
	prg[5] = 0x4C // JMP $8005
	prg[6] = 0x05
	prg[7] = 0x80

	// reset vector -> $8000. A single 16 KiB bank is mirrored at $C000,
	// so $FFFC lands at offset 0xFFFC-0xC000.
	prg[0x3FFC] = 0x00
	prg[0x3FFD] = 0x80

	chr := make([]byte, chrMul)

	rom := append(header, prg...)
	rom = append(rom, chr...)
	return rom
}

func TestConsole_LoadRomAndStep(t *testing.T) {
	console := NewConsole(Config{})
	if !console.Empty() {
		t.Fatal("NewConsole(): expected a fresh console to be Empty()")
	}

	if err := console.LoadRom(bytes.NewReader(buildTestRom()), ""); err != nil {
		t.Fatalf("LoadRom(): unexpected error: %v", err)
	}
	if console.Empty() {
		t.Fatal("LoadRom(): expected console to no longer be Empty()")
	}

	if console.Step() == 0 {
		t.Fatal("Step(): expected LDA to take at least one cycle")
	}
	if console.cpu.a != 0x2A {
		t.Fatalf("Step(): expected A to be 0x2A after LDA, got %#x", console.cpu.a)
	}

	if console.Step() == 0 {
		t.Fatal("Step(): expected STA to take at least one cycle")
	}
	if got := console.Read(0x0000); got != 0x2A {
		t.Fatalf("Step(): expected $0000 to be 0x2A after STA, got %#x", got)
	}

	for i := 0; i < 8; i++ {
		if console.Step() == 0 {
			t.Fatal("Step(): expected the JMP loop to keep executing")
		}
	}
}

func TestConsole_StepFrame(t *testing.T) {
	console := NewConsole(Config{})
	if err := console.LoadRom(bytes.NewReader(buildTestRom()), ""); err != nil {
		t.Fatalf("LoadRom(): unexpected error: %v", err)
	}

	startFrame := console.ppu.frame
	console.StepFrame()
	if console.ppu.frame != startFrame+1 {
		t.Fatalf("StepFrame(): expected frame to advance by 1, went from %d to %d", startFrame, console.ppu.frame)
	}
}

func TestConsole_PressRelease(t *testing.T) {
	console := NewConsole(Config{})
	if err := console.LoadRom(bytes.NewReader(buildTestRom()), ""); err != nil {
		t.Fatalf("LoadRom(): unexpected error: %v", err)
	}

	console.Press(0, A)
	if console.controller1.buttons[A] == 0 {
		t.Fatal("Press(): expected controller1's A button to be held")
	}

	console.Release(0, A)
	if console.controller1.buttons[A] != 0 {
		t.Fatal("Release(): expected controller1's A button to be released")
	}
}
