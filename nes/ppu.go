package nes

import (
	"fmt"
	"image"
	"image/color"
	"log"
)

// ╔═════════════════╤═══════╤════════════════════════════╤════════════════╗
// ║ Address Range   │ Size  │ Purpose                    │ Kind           ║
// ╠═════════════════╪═══════╪════════════════════════════╪════════════════╣
// ║ 0x0000 - 0x0FFF │ 4096  │ Pattern Table #0           │                ║
// ║╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌┼╌╌╌╌╌╌╌┼╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌┤ Pattern Tables ║
// ║ 0x1000 - 0x1FFF │ 4096  │ Pattern Table #1           │                ║
// ╠═════════════════╪═══════╪════════════════════════════╪════════════════╣
// ║ 0x2000 - 0x23BF │ 960   │ Name Table #0              │                ║
// ║ 0x23C0 - 0x23FF │ 64    │ Attribute Table #0         │                ║
// ║ 0x2400 - 0x2FFF │ 3072  │ Name/Attribute Tables #1-3 │                ║
// ║ 0x3000 - 0x3EFF │ 3840  │ Mirror of 0x2000-0x2EFF    │ Mirror         ║
// ╠═════════════════╪═══════╪════════════════════════════╪════════════════╣
// ║ 0x3F00 - 0x3F1F │ 32    │ Palette RAM                │ Palette Data   ║
// ║ 0x3F20 - 0x3FFF │ 224   │ Mirrors of 0x3F00 - 0x3F1F │ Mirrors        ║
// ║ 0x4000 - 0xFFFF │ 49152 │ Mirrors of 0x0000 - 0x3FFF │                ║
// ╚═════════════════╧═══════╧════════════════════════════╧════════════════╝

var palette [64]color.RGBA = [64]color.RGBA{
	color.RGBA{0x7C, 0x7C, 0x7C, 0xFF}, color.RGBA{0x00, 0x00, 0xFC, 0xFF},
	color.RGBA{0x00, 0x00, 0xBC, 0xFF}, color.RGBA{0x44, 0x28, 0xBC, 0xFF},
	color.RGBA{0x94, 0x00, 0x84, 0xFF}, color.RGBA{0xA8, 0x00, 0x20, 0xFF},
	color.RGBA{0xA8, 0x10, 0x00, 0xFF}, color.RGBA{0x88, 0x14, 0x00, 0xFF},
	color.RGBA{0x50, 0x30, 0x00, 0xFF}, color.RGBA{0x00, 0x78, 0x00, 0xFF},
	color.RGBA{0x00, 0x68, 0x00, 0xFF}, color.RGBA{0x00, 0x58, 0x00, 0xFF},
	color.RGBA{0x00, 0x40, 0x58, 0xFF}, color.RGBA{0x00, 0x00, 0x00, 0xFF},
	color.RGBA{0x00, 0x00, 0x00, 0xFF}, color.RGBA{0x00, 0x00, 0x00, 0xFF},
	color.RGBA{0xBC, 0xBC, 0xBC, 0xFF}, color.RGBA{0x00, 0x78, 0xF8, 0xFF},
	color.RGBA{0x00, 0x58, 0xF8, 0xFF}, color.RGBA{0x68, 0x44, 0xFC, 0xFF},
	color.RGBA{0xD8, 0x00, 0xCC, 0xFF}, color.RGBA{0xE4, 0x00, 0x58, 0xFF},
	color.RGBA{0xF8, 0x38, 0x00, 0xFF}, color.RGBA{0xE4, 0x5C, 0x10, 0xFF},
	color.RGBA{0xAC, 0x7C, 0x00, 0xFF}, color.RGBA{0x00, 0xB8, 0x00, 0xFF},
	color.RGBA{0x00, 0xA8, 0x00, 0xFF}, color.RGBA{0x00, 0xA8, 0x44, 0xFF},
	color.RGBA{0x00, 0x88, 0x88, 0xFF}, color.RGBA{0x00, 0x00, 0x00, 0xFF},
	color.RGBA{0x00, 0x00, 0x00, 0xFF}, color.RGBA{0x00, 0x00, 0x00, 0xFF},
	color.RGBA{0xF8, 0xF8, 0xF8, 0xFF}, color.RGBA{0x3C, 0xBC, 0xFC, 0xFF},
	color.RGBA{0x68, 0x88, 0xFC, 0xFF}, color.RGBA{0x98, 0x78, 0xF8, 0xFF},
	color.RGBA{0xF8, 0x78, 0xF8, 0xFF}, color.RGBA{0xF8, 0x58, 0x98, 0xFF},
	color.RGBA{0xF8, 0x78, 0x58, 0xFF}, color.RGBA{0xFC, 0xA0, 0x44, 0xFF},
	color.RGBA{0xF8, 0xB8, 0x00, 0xFF}, color.RGBA{0xB8, 0xF8, 0x18, 0xFF},
	color.RGBA{0x58, 0xD8, 0x54, 0xFF}, color.RGBA{0x58, 0xF8, 0x98, 0xFF},
	color.RGBA{0x00, 0xE8, 0xD8, 0xFF}, color.RGBA{0x78, 0x78, 0x78, 0xFF},
	color.RGBA{0x00, 0x00, 0x00, 0xFF}, color.RGBA{0x00, 0x00, 0x00, 0xFF},
	color.RGBA{0xFC, 0xFC, 0xFC, 0xFF}, color.RGBA{0xA4, 0xE4, 0xFC, 0xFF},
	color.RGBA{0xB8, 0xB8, 0xF8, 0xFF}, color.RGBA{0xD8, 0xB8, 0xF8, 0xFF},
	color.RGBA{0xF8, 0xB8, 0xF8, 0xFF}, color.RGBA{0xF8, 0xA4, 0xC0, 0xFF},
	color.RGBA{0xF0, 0xD0, 0xB0, 0xFF}, color.RGBA{0xFC, 0xE0, 0xA8, 0xFF},
	color.RGBA{0xF8, 0xD8, 0x78, 0xFF}, color.RGBA{0xD8, 0xF8, 0x78, 0xFF},
	color.RGBA{0xB8, 0xF8, 0xB8, 0xFF}, color.RGBA{0xB8, 0xF8, 0xD8, 0xFF},
	color.RGBA{0x00, 0xFC, 0xFC, 0xFF}, color.RGBA{0xF8, 0xD8, 0xF8, 0xFF},
	color.RGBA{0x00, 0x00, 0x00, 0xFF}, color.RGBA{0x00, 0x00, 0x00, 0xFF},
}

const (
	ppuCtrlAddr   uint16 = 0x2000
	ppuMaskAddr   uint16 = 0x2001
	ppuStatusAddr uint16 = 0x2002
	oamAddrAddr   uint16 = 0x2003
	oamDataAddr   uint16 = 0x2004
	ppuScrollAddr uint16 = 0x2005
	ppuAddrAddr   uint16 = 0x2006
	ppuDataAddr   uint16 = 0x2007
)

// VPHB SINN
// |||| ||||
// |||| ||++- Base nametable address
// |||| |+--- VRAM address increment per CPU read/write of PPUDATA
// |||| +---- Sprite pattern table address for 8x8 sprites (ignored in 8x16 mode)
// |||+------ Background pattern table address
// ||+------- Sprite size (0: 8x8 pixels; 1: 8x16 pixels)
// |+-------- PPU master/slave select
// +--------- Generate an NMI at the start of vertical blank
type ppuCtrl byte

const (
	ctrlNametable ppuCtrl = 3

	ctrlAddressIncrement ppuCtrl = 1 << iota * 2
	ctrlSpriteTable
	ctrlBackgroundTable
	ctrlSpriteSize
	ctrlMasterSlave
	ctrlGenerateNMI
)

// BGRs bMmG
// |||| ||||
// |||| |||+- Greyscale
// |||| ||+-- Show background in leftmost 8 pixels
// |||| |+--- Show sprites in leftmost 8 pixels
// |||| +---- Show background
// |||+------ Show sprites
// ||+------- Emphasize red
// |+-------- Emphasize green
// +--------- Emphasize blue
type ppuMask byte

const (
	maskGreyscale ppuMask = 1 << iota
	maskBackgroundClipping
	maskSpriteClipping
	maskShowBackground
	maskShowSprites
	maskEmphasizeRed
	maskEmphasizeGreen
	maskEmphasizeBlue
)

// VSO. ....
// |||+-++++- Least significant bits previously written into a PPU register
// ||+------- Sprite overflow
// |+-------- Sprite 0 hit
// +--------- Vertical blank
type ppuStatus byte

const (
	statusSpriteOverflow ppuStatus = 0x20 << iota
	statusSprite0Hit
	statusVerticalBlank
)

type ppu struct {
	mapper mapper

	ctrl       ppuCtrl
	mask       ppuMask
	status     ppuStatus
	oamAddress byte
	oamData    [256]byte

	spritesInRange   byte
	secondaryOAMData [32]byte

	readBuffer byte

	dot      int
	scanLine int
	frame    uint64

	paletteData [32]byte
	nametable0  [1024]byte
	nametable1  [1024]byte
	nametable2  [1024]byte
	nametable3  [1024]byte

	// Current VRAM address (15 bits).
	v uint16
	// Temporary VRAM address, also the address of the top-left onscreen tile.
	t uint16
	// Fine X scroll (3 bits).
	x byte
	// First/second write toggle.
	w byte

	addressBus  uint16
	registerBus byte

	nametableByte byte
	attributeByte byte
	lowTileByte   byte
	highTileByte  byte

	lowTileRegister  uint16
	highTileRegister uint16
	lowAttrRegister  uint16
	highAttrRegister uint16

	sprite0Next bool
	nmiLine     bool

	buffer *image.RGBA
}

func newPPU() *ppu {
	p := &ppu{}
	p.init()
	return p
}

func (p *ppu) init() {
	p.buffer = image.NewRGBA(image.Rect(0, 0, 256, 240))
}

func (p *ppu) spritePixel() (pixel, col, priority byte, spriteZero bool) {
	outputX := p.dot - 1
	if p.mask&maskShowSprites == 0 || (outputX < 8 && p.mask&maskSpriteClipping == 0) {
		return 0, 0, 0, false
	}

	tall := p.ctrl&ctrlSpriteSize > 0

	for i := byte(0); i < p.spritesInRange; i++ {
		y := p.secondaryOAMData[i*4] + 1
		pattern := uint16(p.secondaryOAMData[i*4+1])
		attr := p.secondaryOAMData[i*4+2]
		x := p.secondaryOAMData[i*4+3]

		pal := attr & 0x03 << 2
		prio := attr >> 5 & 0x01
		flipH := attr>>6&0x01 > 0
		flipV := attr>>7&0x01 > 0

		if outputX < int(x) || outputX > int(x)+7 {
			continue
		}

		height := 8
		if tall {
			height = 16
		}
		rowOffset := uint16(p.scanLine - int(y))
		if flipV {
			rowOffset = uint16(height-1) - rowOffset
		}
		patternX := byte(outputX) - x

		var table uint16
		var tile uint16
		if tall {
			table = (pattern & 1) * 0x1000
			tile = pattern &^ 1
			if rowOffset >= 8 {
				tile++
				rowOffset -= 8
			}
		} else {
			table = p.spriteTable()
			tile = pattern
		}

		patternLo := p.read(table + tile*16 + rowOffset)
		patternHi := p.read(table + tile*16 + rowOffset + 8)

		pixOffset := patternX
		if !flipH {
			pixOffset = 7 - patternX
		}

		pixLo := patternLo >> pixOffset & 0x01
		pixHi := patternHi >> pixOffset & 0x01 << 1

		pixel = pixLo | pixHi
		col = pixel | 0x10 | pal

		if pixel == 0 {
			continue
		}

		return pixel, col, prio, p.sprite0Next && i == 0
	}

	return 0, 0, 0, false
}

func (p *ppu) bgPixel() (pixel, col byte) {
	x := p.dot - 1

	if p.mask&maskShowBackground == 0 || (x < 8 && p.mask&maskBackgroundClipping == 0) {
		return 0, 0
	}

	bgPixelLo := byte(p.lowTileRegister >> (15 - p.x) & 0x1)
	bgPixelHi := byte(p.highTileRegister >> (15 - p.x) & 0x1)

	bgAttrLo := byte(p.lowAttrRegister >> (15 - p.x) & 0x1)
	bgAttrHi := byte(p.highAttrRegister >> (15 - p.x) & 0x1)
	attr := bgAttrHi<<1 | bgAttrLo

	pixel = bgPixelHi<<1 | bgPixelLo
	col = pixel | attr<<2
	return pixel, col
}

func (p *ppu) render() {
	bgPixel, bgColor := p.bgPixel()
	spPixel, spColor, priority, szero := p.spritePixel()

	// BG pixel	Sprite pixel	Priority	Output
	// 0		0				X			BG ($3F00)
	// 0		1-3				X			Sprite
	// 1-3		0				X			BG
	// 1-3		1-3				0			Sprite
	// 1-3		1-3				1			BG
	var col byte
	switch {
	case bgPixel == 0 && spPixel == 0:
		col = 0
	case bgPixel == 0 && spPixel != 0:
		col = spColor
	case bgPixel != 0 && spPixel == 0:
		col = bgColor
	case priority == 0:
		if szero && p.status&statusSprite0Hit == 0 && p.dot-1 != 255 {
			p.status |= statusSprite0Hit
		}
		col = spColor
	default:
		if szero && p.status&statusSprite0Hit == 0 && p.dot-1 != 255 {
			p.status |= statusSprite0Hit
		}
		col = bgColor
	}

	paletteIdx := p.readPalette(uint16(col))
	if p.mask&maskGreyscale != 0 {
		paletteIdx &= 0x30
	}
	p.buffer.SetRGBA(p.dot-1, p.scanLine, palette[paletteIdx])
}

// tick advances the PPU by one dot. The pre-render line skips dot 0 on odd
// frames when rendering is on, shortening that frame by one PPU cycle.
func (p *ppu) tick(c *cpu) {
	renderingEnabled := p.renderingEnabled()
	preRender := p.scanLine == 261
	visibleFrame := p.scanLine < 240
	visibleDot := p.dot > 0 && p.dot < 257
	invisibleDot := p.dot > 320 && p.dot < 341
	opFrame := preRender || visibleFrame
	doOp := renderingEnabled && opFrame
	fetchDot := visibleDot || invisibleDot
	shiftDot := (p.dot > 0 && p.dot < 257) || (p.dot > 320 && p.dot < 337)

	if preRender && p.dot == 0 && renderingEnabled && p.frame%2 == 1 {
		p.dot = 1
	}

	if renderingEnabled && visibleFrame && visibleDot {
		p.render()
	}

	if doOp && shiftDot {
		p.lowTileRegister <<= 1
		p.highTileRegister <<= 1
		p.lowAttrRegister <<= 1
		p.highAttrRegister <<= 1
	}

	if doOp && fetchDot {
		switch (p.dot - 1) % 8 {
		case 0:
			p.addressBus = 0x2000 | (p.v & 0x0FFF)
		case 1:
			p.nametableByte = p.read(p.addressBus)
		case 2:
			p.addressBus = 0x23C0 | (p.v & 0x0C00) | ((p.v >> 4) & 0x38) | ((p.v >> 2) & 0x07)
		case 3:
			g := p.v & 0x40 >> 5
			b := p.v & 0x02 >> 1
			shift := (g | b) << 1
			p.attributeByte = p.read(p.addressBus) >> shift & 0x03
		case 4:
			fineY := p.v >> 12 & 0x07
			p.addressBus = p.backgroundTable() + uint16(p.nametableByte)*16 + fineY
		case 5:
			p.lowTileByte = p.read(p.addressBus)
		case 6:
			fineY := p.v >> 12 & 0x07
			p.addressBus = p.backgroundTable() + uint16(p.nametableByte)*16 + fineY + 8
		case 7:
			p.highTileByte = p.read(p.addressBus)

			p.highTileRegister = p.highTileRegister&0xFF00 | uint16(p.highTileByte)
			p.lowTileRegister = p.lowTileRegister&0xFF00 | uint16(p.lowTileByte)

			p.highAttrRegister |= uint16(p.attributeByte >> 1 * 0xFF)
			p.lowAttrRegister |= uint16(p.attributeByte & 0x1 * 0xFF)

			p.incrementX()
		}
	}

	switch {
	case doOp && p.dot == 256:
		p.incrementY()
	case doOp && p.dot == 257:
		p.copyX()
	case renderingEnabled && preRender && p.dot >= 280 && p.dot <= 304:
		p.copyY()
	}

	if renderingEnabled && visibleFrame {
		p.evaluateSprites()
	} else {
		p.spritesInRange = 0
	}

	switch {
	case p.scanLine == 241 && p.dot == 1:
		p.status |= statusVerticalBlank
		p.updateNMILine(c)
	case preRender && p.dot == 1:
		p.status &^= statusSpriteOverflow
		p.status &^= statusSprite0Hit
		p.status &^= statusVerticalBlank
		p.updateNMILine(c)
	}

	switch {
	case p.dot == 340 && preRender:
		p.dot = 0
		p.scanLine = 0
		p.frame++
	case p.dot == 340:
		p.dot = 0
		p.scanLine++
	default:
		p.dot++
	}
}

// updateNMILine recomputes the NMI output the PPU asserts and edges the CPU
// on a low-to-high transition, so toggling PPUCTRL's NMI bit mid-vblank
// raises a second NMI exactly like real hardware.
func (p *ppu) updateNMILine(c *cpu) {
	line := p.status&statusVerticalBlank > 0 && p.ctrl&ctrlGenerateNMI > 0
	if line && !p.nmiLine {
		c.trigger(nmi)
	}
	p.nmiLine = line
}

func (p *ppu) evaluateSprites() {
	if p.dot == 257 {
		p.spritesInRange = 0
		p.sprite0Next = false
		secAddress := 0
		tall := p.ctrl&ctrlSpriteSize > 0
		height := 8
		if tall {
			height = 16
		}

		for i := 0; i < 64; i++ {
			y := p.oamData[i*4]
			row := p.scanLine - int(y)

			if row < 0 || row >= height {
				continue
			}

			if p.spritesInRange < 8 {
				p.secondaryOAMData[secAddress*4] = p.oamData[i*4]
				p.secondaryOAMData[secAddress*4+1] = p.oamData[i*4+1]
				p.secondaryOAMData[secAddress*4+2] = p.oamData[i*4+2]
				p.secondaryOAMData[secAddress*4+3] = p.oamData[i*4+3]
				secAddress++
			}
			if i == 0 {
				p.sprite0Next = true
			}
			p.spritesInRange++
		}
		if p.spritesInRange > 8 {
			p.spritesInRange = 8
			p.status |= statusSpriteOverflow
		}
	}
}

func (p *ppu) frameBuffer() *image.RGBA {
	return p.buffer
}

func (p *ppu) readPort(address uint16) byte {
	if address < 0x4000 {
		address = (address-0x2000)%0x08 + 0x2000
	}

	switch address {
	case ppuStatusAddr:
		result := p.registerBus&0x1F | byte(p.status)
		p.status &^= statusVerticalBlank
		p.w = 0
		return result

	case oamDataAddr:
		v := p.oamData[p.oamAddress]
		p.registerBus = v
		return v

	case ppuDataAddr:
		var ret byte
		if p.v >= 0x3F00 && p.v <= 0x3FFF {
			ret = p.read(p.v)
			p.readBuffer = p.read(p.v - 0x1000)
		} else if p.v < 0x3F00 {
			ret = p.readBuffer
			p.readBuffer = p.read(p.v)
		}

		p.incrementV()

		p.registerBus = ret
		return ret
	}

	log.Printf("unexpected ppu port read: 0x%04X", address)
	return byte(p.registerBus)
}

func (p *ppu) writePort(address uint16, value byte, c *cpu) {
	if address < 0x4000 {
		address = (address-0x2000)%0x08 + 0x2000
	}
	p.registerBus = value

	switch address {
	case ppuCtrlAddr:
		p.ctrl = ppuCtrl(value)
		p.updateNMILine(c)

		d := uint16(value)
		p.t = p.t&0xF3FF | d&0x3<<10

	case ppuMaskAddr:
		p.mask = ppuMask(value)

	case oamAddrAddr:
		p.oamAddress = value

	case oamDataAddr:
		if p.currentlyRendering() {
			return
		}
		p.oamData[p.oamAddress] = value
		p.oamAddress++

	case ppuScrollAddr:
		d := uint16(value)
		if p.w == 0 {
			p.t = p.t&0xFFE0 | d>>3
			p.x = value & 0x07
			p.w = 1
		} else {
			fineY := d & 0x07 << 12
			coarseY := d & 0xF8 << 2
			p.t = p.t&0x8C1F | fineY | coarseY
			p.w = 0
		}

	case ppuAddrAddr:
		d := uint16(value)
		if p.w == 0 {
			p.w = 1
			p.t = p.t&0xC0FF | d&0x3F<<8
			p.t &^= 0x4000
		} else {
			p.t = p.t&0xFF00 | d
			p.v = p.t
			p.w = 0
		}

	case ppuDataAddr:
		p.write(p.v, value)
		p.incrementV()

	default:
		log.Printf("unexpected ppu port write: 0x%04X, 0x%02X", address, value)
	}
}

func (p *ppu) read(address uint16) byte {
	address %= 0x4000
	switch {
	case address < 0x2000:
		return p.mapper.ppuRead(address)

	case address < 0x3F00:
		return p.readNametable(address)

	case address < 0x4000:
		return p.readPalette(address)
	}

	panic(fmt.Sprintf("unexpected ppu memory read: 0x%04X", address))
}

func (p *ppu) write(address uint16, value byte) {
	address %= 0x4000
	switch {
	case address < 0x2000:
		p.mapper.ppuWrite(address, value)

	case address < 0x3F00:
		p.writeNametable(address, value)

	case address < 0x4000:
		p.writePalette(address, value)

	default:
		panic(fmt.Sprintf("unexpected ppu memory write: 0x%04X, 0x%02X", address, value))
	}
}

// writeDMA feeds a byte read during OAM DMA straight into OAM at the
// current address, bypassing the rendering-lockout check $2004 writes
// are normally subject to.
func (p *ppu) writeDMA(v byte) {
	p.oamData[p.oamAddress] = v
	p.oamAddress++
}

func (p *ppu) readPalette(address uint16) byte {
	switch address {
	case 0x3F10, 0x3F14, 0x3F18, 0x3F1C:
		address -= 0x10
	}
	return p.paletteData[address%32]
}

func (p *ppu) writePalette(address uint16, value byte) {
	switch address {
	case 0x3F10, 0x3F14, 0x3F18, 0x3F1C:
		address -= 0x10
	}
	p.paletteData[address%32] = value
}

func (p *ppu) nametableSlot(addr uint16) (*[1024]byte, *[1024]byte) {
	addr = 0x2000 + (addr-0x2000)%0x1000 // fold $3000-$3EFF onto $2000-$2EFF
	switch p.mapper.mirror() {
	case mirrorHorizontal:
		if addr < 0x2800 {
			return &p.nametable0, &p.nametable1
		}
		return &p.nametable2, &p.nametable3
	case mirrorVertical:
		if addr < 0x2400 || (addr >= 0x2800 && addr < 0x2C00) {
			return &p.nametable0, &p.nametable2
		}
		return &p.nametable1, &p.nametable3
	case mirrorOneScreenLower:
		return &p.nametable0, &p.nametable0
	case mirrorOneScreenUpper:
		return &p.nametable1, &p.nametable1
	default: // mirrorFourScreen: every quadrant is independent
		switch {
		case addr < 0x2400:
			return &p.nametable0, nil
		case addr < 0x2800:
			return &p.nametable1, nil
		case addr < 0x2C00:
			return &p.nametable2, nil
		default:
			return &p.nametable3, nil
		}
	}
}

func (p *ppu) readNametable(addr uint16) byte {
	primary, _ := p.nametableSlot(addr)
	return primary[addr%1024]
}

func (p *ppu) writeNametable(addr uint16, val byte) {
	primary, secondary := p.nametableSlot(addr)
	primary[addr%1024] = val
	if secondary != nil {
		secondary[addr%1024] = val
	}
}

func (p *ppu) incrementV() {
	if p.ctrl&ctrlAddressIncrement > 0 {
		p.v += 32
	} else {
		p.v += 1
	}
}

// incrementX carries the coarse-X field of v when the next tile is
// reached, toggling the horizontal nametable bit on overflow.
func (p *ppu) incrementX() {
	coarseX := p.v & 0x001F

	if coarseX == 31 {
		p.v &^= 0x001F
		p.v ^= 0x0400
		return
	}

	p.v += 1
}

func (p *ppu) copyX() {
	p.v = p.v&^0x041F | p.t&0x041F
}

// incrementY carries fine Y into coarse Y at dot 256 of each scanline,
// wrapping coarse Y among the nametables vertically.
func (p *ppu) incrementY() {
	if p.v&0x7000 != 0x7000 {
		p.v += 0x1000
		return
	}

	p.v &^= 0x7000

	coarseY := (p.v & 0x03E0) >> 5

	if coarseY == 29 {
		coarseY = 0
		p.v ^= 0x0800
	} else if coarseY == 31 {
		coarseY = 0
	} else {
		coarseY += 1
	}

	p.v = p.v&^0x03E0 | coarseY<<5
}

func (p *ppu) copyY() {
	p.v = p.v&^0x7BE0 | p.t&0x7BE0
}

func (p *ppu) backgroundTable() uint16 {
	if p.ctrl&ctrlBackgroundTable > 0 {
		return 0x1000
	}
	return 0x0000
}

func (p *ppu) spriteTable() uint16 {
	if p.ctrl&ctrlSpriteTable > 0 {
		return 0x1000
	}
	return 0x0000
}

func (p *ppu) renderingEnabled() bool {
	return p.mask&maskShowBackground > 0 || p.mask&maskShowSprites > 0
}

func (p *ppu) currentlyRendering() bool {
	return p.renderingEnabled() && (p.scanLine < 240 || p.scanLine == 261)
}

// drawPatternTables renders both 4KiB pattern tables side by side,
// coloring each 2-bit pixel with the 4-color group paletteNum selects
// (0-7: background groups 0-3 then sprite groups 0-3).
func (p *ppu) drawPatternTables(buf *image.RGBA, paletteNum byte) {
	base := uint16(paletteNum&7) << 2
	draw := func(table uint16, xoffset int) {
		for y := 0; y < 128; y++ {
			coarseY := y / 8
			fineY := uint16(y % 8)
			for tile := 0; tile < 16; tile++ {
				fineX := tile * 8
				patternNum := uint16(coarseY*16 + tile)

				patternLo := p.read(table + patternNum*16 + fineY)
				patternHi := p.read(table + patternNum*16 + fineY + 8)

				for pixel := 0; pixel < 8; pixel++ {
					pixello := patternLo & 0x80 >> 7
					pixelhi := patternHi & 0x80 >> 6
					patternLo <<= 1
					patternHi <<= 1
					paletteIndex := p.paletteData[base+uint16(pixello|pixelhi)]
					buf.SetRGBA(xoffset+fineX+pixel, y, palette[paletteIndex])
				}
			}
		}
	}

	draw(0x0000, 0)
	draw(0x1000, 128)
}

func (p *ppu) drawNametables(buf *image.RGBA) {
	draw := func(nametable, offsetX, offsetY uint16) {
		patternTable := p.backgroundTable()

		for y := uint16(0); y < 240; y++ {
			tileY := uint16(y / 8)

			patternY := uint16(y % 8)
			for tile := uint16(0); tile < 32; tile++ {
				nametableAddr := tileY*32 + tile
				tileX := tile * 8

				patternNum := uint16(p.read(nametable + nametableAddr))

				patternLo := p.read(patternTable + patternNum*16 + patternY)
				patternHi := p.read(patternTable + patternNum*16 + patternY + 8)

				attribute := p.read(nametable + 960 + (tileY/4)*8 + tile/4)

				top := tileY%4/2 == 0
				left := tile%4/2 == 0

				switch {
				case top && left:
					attribute = attribute >> 0 & 0x03 << 2
				case top && !left:
					attribute = attribute >> 2 & 0x03 << 2
				case !top && left:
					attribute = attribute >> 4 & 0x03 << 2
				default:
					attribute = attribute >> 6 & 0x03 << 2
				}

				for pixel := uint16(0); pixel < 8; pixel++ {
					pixello := patternLo & 0x80 >> 7
					pixelhi := patternHi & 0x80 >> 6
					patternLo <<= 1
					patternHi <<= 1
					col := p.paletteData[attribute|pixello|pixelhi]
					buf.SetRGBA(int(offsetX+tileX+pixel), int(offsetY+y), palette[col])
				}
			}
		}
	}

	draw(0x2000, 0, 0)
	draw(0x2400, 256, 0)
	draw(0x2800, 0, 240)
	draw(0x2C00, 256, 240)
}
