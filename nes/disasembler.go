package nes

import (
	"fmt"
	"io"
	"strings"
)

// disassemble renders one instruction in a nestest-log-compatible line:
// address, raw bytes, mnemonic and operand, then register/cycle state.
// Used only when a cpu is constructed with a non-nil debug writer.
func disassemble(out io.Writer, bus *sysBus,
	instPC uint16, a, x, y, p, sp byte,
	inst instruction, intermediateAddr, resolvedAddr uint16, cycles uint64, ppu *ppu) {
	var strlen int

	n, _ := fmt.Fprintf(out, "%04X  ", instPC)
	strlen += n

	switch inst.size {
	case 1:
		n, _ := fmt.Fprintf(out, "%02X      ", inst.opcode)
		strlen += n
	case 2:
		n, _ := fmt.Fprintf(out, "%02X %02X   ", inst.opcode, bus.peek(instPC+1))
		strlen += n
	case 3:
		n, _ := fmt.Fprintf(out, "%02X %02X %02X", inst.opcode, bus.peek(instPC+1), bus.peek(instPC+2))
		strlen += n
	}

	if inst.illegal {
		n, _ := fmt.Fprint(out, " *")
		strlen += n
	} else {
		n, _ := fmt.Fprint(out, "  ")
		strlen += n
	}

	n, _ = fmt.Fprint(out, inst.name, " ")
	strlen += n

	switch inst.mode {
	case accumulator:
		n, _ := fmt.Fprint(out, "A")
		strlen += n
	case implied:
	default:
		var arg uint16
		switch inst.mode {
		case immediate, zeroPage, zeroPageIndexedX, zeroPageIndexedY, preIndexedIndirect, postIndexedIndirect:
			arg = uint16(bus.peek(instPC + 1))
		case absolute, indirect, indexedX, indexedY:
			arg = uint16(bus.peek(instPC+1)) | uint16(bus.peek(instPC+2))<<8
		case relative:
			arg = resolvedAddr
		}

		n, _ := fmt.Fprintf(out, addressingFormats[inst.mode], arg)
		strlen += n
	}

	fmt.Fprint(out, strings.Repeat(" ", max(0, 48-strlen)))
	var col, scanLine int
	if ppu != nil {
		col, scanLine = ppu.dot, ppu.scanLine
	}
	fmt.Fprintf(out, "A:%02X X:%02X Y:%02X P:%02X SP:%02X PPU:%3d,%3d CYC:%d\n", a, x, y, p, sp, col, scanLine, cycles)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

var addressingFormats = map[addressingMode]string{
	immediate:           "#$%02X",    // #aa
	absolute:            "$%04X",     // aaaa
	zeroPage:            "$%02X",     // aa
	implied:             "",          //
	indirect:            "($%04X)",   // (aaaa)
	indexedX:            "$%04X,X",   // aaaa,X
	indexedY:            "$%04X,Y",   // aaaa,Y
	zeroPageIndexedX:    "$%02X,X",   // aa,X
	zeroPageIndexedY:    "$%02X,Y",   // aa,Y
	preIndexedIndirect:  "($%02X,X)", // (aa,X)
	postIndexedIndirect: "($%02X),Y", // (aa),Y
	relative:            "$%04X",     // aaaa
	accumulator:         "A",         // A
}
