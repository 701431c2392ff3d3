package nes

import (
	"bytes"
	"testing"
)

// buildRom assembles a complete iNES image: a 16-byte header, optional
// trainer, prgBanks*16KiB of PRG, and chrBanks*8KiB of CHR (omitted
// entirely when chrBanks is 0, since that means CHR-RAM).
func buildRom(ctrl1, ctrl2 byte, prgBanks, chrBanks byte, trainer bool) []byte {
	header := []byte{'N', 'E', 'S', 0x1A, prgBanks, chrBanks, ctrl1, ctrl2, 0, 0, 0, 0, 0, 0, 0, 0}
	rom := append([]byte{}, header...)
	if trainer {
		rom = append(rom, make([]byte, trainerLen)...)
	}
	rom = append(rom, make([]byte, int(prgBanks)*prgMul)...)
	if chrBanks > 0 {
		rom = append(rom, make([]byte, int(chrBanks)*chrMul)...)
	}
	return rom
}

func TestLoadINES_Errors(t *testing.T) {
	tests := []struct {
		name string
		rom  []byte
	}{
		{name: "empty", rom: []byte{}},
		{name: "truncated header", rom: []byte{'N', 'E', 'S', 0x1A, 0, 0, 0, 0, 0, 0}},
		{name: "bad magic byte 2", rom: append([]byte{'N', 'O', 'S', 0x1A}, make([]byte, 12)...)},
		{name: "bad magic byte 4", rom: append([]byte{'N', 'E', 'S', ' '}, make([]byte, 12)...)},
		{name: "NES 2.0 rejected", rom: buildRom(0, 0x08, 1, 1, false)},
		{name: "truncated trainer", rom: []byte{'N', 'E', 'S', 0x1A, 1, 1, rc1Trainer, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
		{name: "truncated PRG", rom: buildRom(0, 0, 2, 1, false)[:16+prgMul]},
		{name: "truncated CHR", rom: buildRom(0, 0, 1, 2, false)[:16+prgMul+chrMul]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := loadINES(bytes.NewReader(tt.rom))
			if err == nil {
				t.Fatalf("loadINES(): expected an error, got none (cartridge = %+v)", got)
			}
			if got != nil {
				t.Fatalf("loadINES(): expected a nil cartridge on error, got %+v", got)
			}
		})
	}
}

func TestLoadINES_Mirroring(t *testing.T) {
	tests := []struct {
		name  string
		ctrl1 byte
		want  mirrorMode
	}{
		{name: "horizontal", ctrl1: 0, want: mirrorHorizontal},
		{name: "vertical", ctrl1: rc1MirrorVertical, want: mirrorVertical},
		{name: "four screen overrides both", ctrl1: rc1MirrorVertical | rc1FourScreen, want: mirrorFourScreen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := loadINES(bytes.NewReader(buildRom(tt.ctrl1, 0, 1, 1, false)))
			if err != nil {
				t.Fatalf("loadINES(): unexpected error: %v", err)
			}
			if c.mirror != tt.want {
				t.Errorf("loadINES(): mirror = %v, want %v", c.mirror, tt.want)
			}
		})
	}
}

func TestLoadINES_Battery(t *testing.T) {
	tests := []struct {
		name  string
		ctrl1 byte
		want  bool
	}{
		{name: "has battery", ctrl1: rc1Battery, want: true},
		{name: "no battery", ctrl1: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := loadINES(bytes.NewReader(buildRom(tt.ctrl1, 0, 1, 1, false)))
			if err != nil {
				t.Fatalf("loadINES(): unexpected error: %v", err)
			}
			if c.battery != tt.want {
				t.Errorf("loadINES(): battery = %v, want %v", c.battery, tt.want)
			}
		})
	}
}

func TestLoadINES_Trainer(t *testing.T) {
	c, err := loadINES(bytes.NewReader(buildRom(rc1Trainer, 0, 1, 1, true)))
	if err != nil {
		t.Fatalf("loadINES(): unexpected error: %v", err)
	}
	if len(c.trainer) != trainerLen {
		t.Errorf("loadINES(): len(trainer) = %v, want %v", len(c.trainer), trainerLen)
	}

	c, err = loadINES(bytes.NewReader(buildRom(0, 0, 1, 1, false)))
	if err != nil {
		t.Fatalf("loadINES(): unexpected error: %v", err)
	}
	if len(c.trainer) != 0 {
		t.Errorf("loadINES(): len(trainer) = %v, want 0", len(c.trainer))
	}
}

func TestLoadINES_MapperID(t *testing.T) {
	for m := 0; m < 256; m++ {
		lo := byte(m) & 0x0F
		hi := byte(m) & 0xF0
		ctrl1 := lo << 4
		ctrl2 := hi

		c, err := loadINES(bytes.NewReader(buildRom(ctrl1, ctrl2, 1, 1, false)))
		if err != nil {
			t.Fatalf("loadINES(): unexpected error for mapper %d: %v", m, err)
		}
		if c.mapperID != byte(m) {
			t.Errorf("loadINES(): mapperID = %v, want %v", c.mapperID, m)
		}
	}
}

func TestLoadINES_CHRRAM(t *testing.T) {
	c, err := loadINES(bytes.NewReader(buildRom(0, 0, 1, 0, false)))
	if err != nil {
		t.Fatalf("loadINES(): unexpected error: %v", err)
	}
	if !c.chrIsRAM {
		t.Error("loadINES(): expected chrIsRAM to be true when CHR bank count is 0")
	}
	if len(c.chr) != chrMul {
		t.Errorf("loadINES(): len(chr) = %v, want %v", len(c.chr), chrMul)
	}
}

func TestLoadINES_PRGRAMSize(t *testing.T) {
	header := []byte{'N', 'E', 'S', 0x1A, 1, 1, 0, 0, 4, 0, 0, 0, 0, 0, 0, 0}
	rom := append(append([]byte{}, header...), make([]byte, prgMul+chrMul)...)

	c, err := loadINES(bytes.NewReader(rom))
	if err != nil {
		t.Fatalf("loadINES(): unexpected error: %v", err)
	}
	if want := 4 * prgRAMMul; c.prgRAMSize != want {
		t.Errorf("loadINES(): prgRAMSize = %v, want %v", c.prgRAMSize, want)
	}

	// a zero PRG-RAM unit count still gets the default one bank.
	header[8] = 0
	rom = append(append([]byte{}, header...), make([]byte, prgMul+chrMul)...)
	c, err = loadINES(bytes.NewReader(rom))
	if err != nil {
		t.Fatalf("loadINES(): unexpected error: %v", err)
	}
	if c.prgRAMSize != prgRAMMul {
		t.Errorf("loadINES(): prgRAMSize = %v, want %v", c.prgRAMSize, prgRAMMul)
	}
}
