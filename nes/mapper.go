package nes

import (
	"fmt"
	"io"
)

// mapper translates CPU and PPU addresses into bank-relative offsets
// into a cartridge's PRG/CHR memory, and owns whatever bank-select
// registers the physical board carries. newMapper rejects anything
// outside the four boards this module speaks.
type mapper interface {
	cpuRead(addr uint16) byte
	cpuWrite(addr uint16, v byte)
	ppuRead(addr uint16) byte
	ppuWrite(addr uint16, v byte)
	mirror() mirrorMode
	prgRAMEnabled() bool
	// irqPending reports a pending scanline IRQ. The cpu polls it once
	// per instruction; no mapper in this module drives it, so it is
	// always false.
	irqPending() bool
	// step is stamped by the driver once per CPU instruction, so
	// mapper1 can reject writes that land in the same instruction
	// (the real MMC1 ignores back-to-back serial writes).
	step(n uint64)
}

func newMapper(c *cartridge) (mapper, error) {
	switch c.mapperID {
	case 0:
		return newMapper0(c), nil
	case 1:
		return newMapper1(c), nil
	case 2:
		return newMapper2(c), nil
	case 3:
		return newMapper3(c), nil
	default:
		return nil, &unsupportedMapperError{id: c.mapperID}
	}
}

// mapper0 is NROM: no registers. 16 KiB PRG mirrors into $C000 when
// only one bank is present; CHR is fixed (RAM if the cartridge had
// none).
type mapper0 struct {
	c *cartridge
}

func newMapper0(c *cartridge) *mapper0 { return &mapper0{c: c} }

func (m *mapper0) cpuRead(addr uint16) byte {
	return m.c.prg[int(addr-0x8000)%len(m.c.prg)]
}

func (m *mapper0) cpuWrite(addr uint16, v byte) {}

func (m *mapper0) ppuRead(addr uint16) byte   { return m.c.chr[addr%uint16(len(m.c.chr))] }
func (m *mapper0) ppuWrite(addr uint16, v byte) {
	if m.c.chrIsRAM {
		m.c.chr[addr%uint16(len(m.c.chr))] = v
	}
}
func (m *mapper0) mirror() mirrorMode    { return m.c.mirror }
func (m *mapper0) prgRAMEnabled() bool   { return true }
func (m *mapper0) irqPending() bool      { return false }
func (m *mapper0) step(n uint64)         {}

// mapper2 is UxROM: one 8-bit latch selects the switchable 16 KiB
// bank at $8000; $C000 is fixed to the last bank. CHR is RAM.
type mapper2 struct {
	c    *cartridge
	bank byte
}

func newMapper2(c *cartridge) *mapper2 { return &mapper2{c: c} }

func (m *mapper2) cpuRead(addr uint16) byte {
	if addr < 0xC000 {
		off := int(m.bank)*prgMul + int(addr-0x8000)
		return m.c.prg[off%len(m.c.prg)]
	}
	lastBank := len(m.c.prg)/prgMul - 1
	off := lastBank*prgMul + int(addr-0xC000)
	return m.c.prg[off]
}

func (m *mapper2) cpuWrite(addr uint16, v byte) {
	m.bank = v
}

func (m *mapper2) ppuRead(addr uint16) byte { return m.c.chr[addr%uint16(len(m.c.chr))] }
func (m *mapper2) ppuWrite(addr uint16, v byte) {
	m.c.chr[addr%uint16(len(m.c.chr))] = v
}
func (m *mapper2) mirror() mirrorMode  { return m.c.mirror }
func (m *mapper2) prgRAMEnabled() bool { return true }
func (m *mapper2) irqPending() bool    { return false }
func (m *mapper2) step(n uint64)       {}

// mapper3 is CNROM: one latch selects the 8 KiB CHR bank. PRG is
// fixed (16 or 32 KiB, mirrored the same way NROM mirrors it).
type mapper3 struct {
	c    *cartridge
	bank byte
}

func newMapper3(c *cartridge) *mapper3 { return &mapper3{c: c} }

func (m *mapper3) cpuRead(addr uint16) byte {
	return m.c.prg[int(addr-0x8000)%len(m.c.prg)]
}
func (m *mapper3) cpuWrite(addr uint16, v byte) {
	m.bank = v & 0x03
}

func (m *mapper3) ppuRead(addr uint16) byte {
	off := int(m.bank)*chrMul + int(addr)
	return m.c.chr[off%len(m.c.chr)]
}
func (m *mapper3) ppuWrite(addr uint16, v byte) {
	if m.c.chrIsRAM {
		off := int(m.bank)*chrMul + int(addr)
		m.c.chr[off%len(m.c.chr)] = v
	}
}
func (m *mapper3) mirror() mirrorMode  { return m.c.mirror }
func (m *mapper3) prgRAMEnabled() bool { return true }
func (m *mapper3) irqPending() bool    { return false }
func (m *mapper3) step(n uint64)       {}

// mapper1 is MMC1: a 5-bit serial shift register fed one bit per CPU
// write (LSB first). A write with bit 7 set resets the shift register
// and ORs the control register with 0x0C (last-bank-at-$C000, 16 KiB
// PRG mode). On the fifth write the accumulated value commits to one
// of four internal registers selected by address bits 13-14.
type mapper1 struct {
	c *cartridge

	shift    byte
	shiftPos byte
	lastStep  uint64
	lastWrite uint64
	written   bool

	control byte
	chr0    byte
	chr1    byte
	prg     byte
}

func newMapper1(c *cartridge) *mapper1 {
	m := &mapper1{c: c, shift: 0x10}
	m.control = 0x0C
	return m
}

func (m *mapper1) step(n uint64) { m.lastStep = n }

func (m *mapper1) cpuRead(addr uint16) byte {
	if addr < 0xA000 {
		return m.readPRGBank(m.prgBankLow(), addr-0x8000)
	}
	return m.readPRGBank(m.prgBankHigh(), addr-0xC000)
}

func (m *mapper1) readPRGBank(bank int, offset uint16) byte {
	off := bank*prgMul + int(offset)
	if off < 0 || off >= len(m.c.prg) {
		return 0
	}
	return m.c.prg[off]
}

// outerBank accounts for boards larger than 256 KiB, where chr0's bit
// 4 selects which 256 KiB half of PRG is addressable.
func (m *mapper1) outerBank() int {
	if len(m.c.prg) <= 256*1024 {
		return 0
	}
	return int(m.chr0>>4&1) * (256 * 1024 / prgMul)
}

func (m *mapper1) prgBankLow() int {
	mode := (m.control >> 2) & 3
	switch mode {
	case 0, 1:
		return m.outerBank() + int(m.prg&0x0E)
	case 2:
		return m.outerBank()
	default: // 3
		return m.outerBank() + int(m.prg&0x0F)
	}
}

func (m *mapper1) prgBankHigh() int {
	mode := (m.control >> 2) & 3
	banks := len(m.c.prg) / prgMul
	switch mode {
	case 0, 1:
		return m.outerBank() + int(m.prg&0x0E) + 1
	case 2:
		return m.outerBank() + int(m.prg&0x0F)
	default: // 3
		last := banks - 1
		if last > 15 {
			last = 15 // last bank of the selected 256 KiB half
		}
		return m.outerBank() + last
	}
}

func (m *mapper1) cpuWrite(addr uint16, v byte) {
	// $6000-$7FFF is PRG-RAM, owned and gated by the bus; nothing for
	// the mapper to do here but it must not fall into the shift
	// register below.
	if addr < 0x8000 {
		return
	}

	// The real chip ignores a second serial write landing in the same
	// CPU instruction as the first (an RMW's dummy write, notably).
	// The driver stamps step() once per instruction; reject repeats.
	if m.written && m.lastWrite == m.lastStep {
		return
	}
	m.written = true
	m.lastWrite = m.lastStep

	if v&0x80 != 0 {
		m.shift = 0x10
		m.shiftPos = 0
		m.control |= 0x0C
		return
	}

	complete := m.shift&1 != 0
	m.shift = (m.shift >> 1) | ((v & 1) << 4)
	m.shiftPos++

	if m.shiftPos < 5 && !complete {
		return
	}

	value := m.shift
	m.shift = 0x10
	m.shiftPos = 0

	switch {
	case addr < 0xA000:
		m.control = value
	case addr < 0xC000:
		m.chr0 = value
	case addr < 0xE000:
		m.chr1 = value
	default:
		m.prg = value
	}
}

func (m *mapper1) chrBank0() int {
	if m.control&0x10 == 0 {
		return int(m.chr0 >> 1)
	}
	return int(m.chr0)
}

func (m *mapper1) chrBank1() int {
	if m.control&0x10 == 0 {
		return int(m.chr0 >> 1)
	}
	return int(m.chr1)
}

func (m *mapper1) ppuRead(addr uint16) byte {
	if len(m.c.chr) == 0 {
		return 0
	}
	if m.control&0x10 == 0 {
		bankSize := chrMul
		off := m.chrBank0()*bankSize + int(addr)
		return m.c.chr[off%len(m.c.chr)]
	}
	if addr < 0x1000 {
		off := m.chrBank0()*4096 + int(addr)
		return m.c.chr[off%len(m.c.chr)]
	}
	off := m.chrBank1()*4096 + int(addr-0x1000)
	return m.c.chr[off%len(m.c.chr)]
}

func (m *mapper1) ppuWrite(addr uint16, v byte) {
	if !m.c.chrIsRAM || len(m.c.chr) == 0 {
		return
	}
	if m.control&0x10 == 0 {
		off := m.chrBank0()*chrMul + int(addr)
		m.c.chr[off%len(m.c.chr)] = v
		return
	}
	if addr < 0x1000 {
		off := m.chrBank0()*4096 + int(addr)
		m.c.chr[off%len(m.c.chr)] = v
		return
	}
	off := m.chrBank1()*4096 + int(addr-0x1000)
	m.c.chr[off%len(m.c.chr)] = v
}

func (m *mapper1) mirror() mirrorMode {
	switch m.control & 3 {
	case 0:
		return mirrorOneScreenLower
	case 1:
		return mirrorOneScreenUpper
	case 2:
		return mirrorVertical
	default:
		return mirrorHorizontal
	}
}

func (m *mapper1) prgRAMEnabled() bool { return m.prg&0x10 == 0 }
func (m *mapper1) irqPending() bool    { return false }

// debugMapper wraps another mapper and logs every CPU-side register
// write to out, for -mapper-debug.
type debugMapper struct {
	mapper
	out io.Writer
}

func newDebugMapper(m mapper, out io.Writer) *debugMapper {
	return &debugMapper{mapper: m, out: out}
}

func (m *debugMapper) cpuWrite(addr uint16, v byte) {
	fmt.Fprintf(m.out, "mapper write $%04X = $%02X\n", addr, v)
	m.mapper.cpuWrite(addr, v)
}
