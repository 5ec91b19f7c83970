// This file is part of MyMig.
//
// MyMig is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// MyMig is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with MyMig.  If not, see <https://www.gnu.org/licenses/>.

// Package dma implements the DMA sequencer. The sequencer fetches sprite and
// bitplane data from memory and writes it to the sprite and bitplane data
// registers.
//
// Every scanline the sequencer visits each of the eight sprites in turn,
// giving each a fixed slot of two cycles. It then waits for the start of the
// data fetch window and fetches bitplane data until the end of the window.
//
// The sequencer has the highest priority on both the memory bus and the
// register bus. A fetch is always granted and the fetched word is written to
// the register bus in the same cycle.
package dma

import (
	"fmt"
	"strings"

	"github.com/mymig/mymig/hardware/beam"
	"github.com/mymig/mymig/hardware/memory/bus"
	"github.com/mymig/mymig/hardware/memory/chipregs"
)

// the horizontal position at which the sequencer leaves the idle phase
const prepareHPos = 10

// Phase of the sequencer within a scanline.
type Phase int

// List of valid phases.
const (
	Idle Phase = iota
	Prepare
	SpriteDMA0
	SpriteDMA1
	BitplaneArm
	BitplaneRun
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "IDLE"
	case Prepare:
		return "PREPARE"
	case SpriteDMA0:
		return "SPRITE_DMA_0"
	case SpriteDMA1:
		return "SPRITE_DMA_1"
	case BitplaneArm:
		return "BITPLANE_DMA_ARM"
	case BitplaneRun:
		return "BITPLANE_DMA_RUN"
	}
	return "unknown"
}

// SpritePhase is the DMA phase of a single sprite.
type SpritePhase int

// List of valid sprite phases.
const (
	SpriteIdle SpritePhase = iota
	LoadPosCtl
	SpriteWait
	LoadDat
)

func (p SpritePhase) String() string {
	switch p {
	case SpriteIdle:
		return "IDLE"
	case LoadPosCtl:
		return "LOAD_POSCTL"
	case SpriteWait:
		return "WAIT"
	case LoadDat:
		return "LOAD_DAT"
	}
	return "unknown"
}

// Sprites is the view of the sprite engines required by the sequencer.
type Sprites interface {
	VStartMatch(n int, vpos uint16) bool
	VStopMatch(n int, vpos uint16) bool
}

// Fetch is a single DMA transfer from memory to a register.
type Fetch struct {
	Address  uint32
	Register chipregs.Register
}

func (f Fetch) String() string {
	return fmt.Sprintf("%05x -> %s", f.Address, f.Register)
}

// DMA is the DMA sequencer.
type DMA struct {
	sprites Sprites

	phase Phase

	// the sprite being serviced in the SpriteDMA0 and SpriteDMA1 phases
	sprite int

	spritePhase [chipregs.NumSprites]SpritePhase
	spritePtr   [chipregs.NumSprites]uint32

	bitplanePtr [chipregs.NumBitplanes]uint32
	bplcon0     chipregs.Bplcon0
	diw         chipregs.DisplayWindow
	ddf         chipregs.DataFetch

	// counts down through each group of 16 cycles in the BitplaneRun phase.
	// plane n is fetched when the countdown is n
	countdown int

	// the fetch for the current cycle. valid if fetching is true
	fetch    Fetch
	fetching bool

	// the number of words fetched since reset
	Fetched int
}

// NewDMA is the preferred method of initialisation for the DMA type.
func NewDMA(sprites Sprites) *DMA {
	return &DMA{
		sprites: sprites,
	}
}

// Reset the sequencer to its power-on state.
func (dma *DMA) Reset() {
	sprites := dma.sprites
	*dma = DMA{sprites: sprites}
}

func (dma *DMA) String() string {
	s := strings.Builder{}
	s.WriteString(dma.phase.String())
	switch dma.phase {
	case SpriteDMA0, SpriteDMA1:
		s.WriteString(fmt.Sprintf(" sprite=%d", dma.sprite))
	case BitplaneRun:
		s.WriteString(fmt.Sprintf(" countdown=%d", dma.countdown))
	}
	return s.String()
}

// Phase returns the current scanline phase.
func (dma *DMA) Phase() Phase {
	return dma.phase
}

// SpritePhase returns the DMA phase of sprite n.
func (dma *DMA) SpritePhase(n int) SpritePhase {
	return dma.spritePhase[n]
}

// SpritePointer returns the DMA pointer of sprite n.
func (dma *DMA) SpritePointer(n int) uint32 {
	return dma.spritePtr[n]
}

// BitplanePointer returns the DMA pointer of bitplane n (counting from zero).
func (dma *DMA) BitplanePointer(n int) uint32 {
	return dma.bitplanePtr[n]
}

// Request returns the fetch for the current cycle. The boolean is false if
// the sequencer does not require the buses this cycle. Request must be called
// exactly once per cycle, before Commit().
func (dma *DMA) Request() (Fetch, bool) {
	dma.fetching = false

	switch dma.phase {
	case SpriteDMA0:
		switch dma.spritePhase[dma.sprite] {
		case LoadPosCtl:
			dma.spriteFetch(chipregs.SPRxPOS(dma.sprite))
		case LoadDat:
			dma.spriteFetch(chipregs.SPRxDATA(dma.sprite))
		}
	case SpriteDMA1:
		switch dma.spritePhase[dma.sprite] {
		case LoadPosCtl:
			dma.spriteFetch(chipregs.SPRxCTL(dma.sprite))
		case LoadDat:
			dma.spriteFetch(chipregs.SPRxDATB(dma.sprite))
		}
	case BitplaneRun:
		if dma.countdown < dma.bplcon0.BPU && dma.countdown < chipregs.NumBitplanes {
			dma.fetch = Fetch{
				Address:  dma.bitplanePtr[dma.countdown],
				Register: chipregs.BPLxDAT(dma.countdown),
			}
			dma.fetching = true
		}
	}

	return dma.fetch, dma.fetching
}

func (dma *DMA) spriteFetch(reg chipregs.Register) {
	dma.fetch = Fetch{
		Address:  dma.spritePtr[dma.sprite],
		Register: reg,
	}
	dma.fetching = true
}

// Commit the next state of the sequencer. The register write is the write
// granted on the register bus in this cycle, from any master.
func (dma *DMA) Commit(pos beam.Position, vsync bool, wr *bus.RegisterWrite) {
	dma.step(pos)

	if wr != nil {
		dma.Update(wr.Register, wr.Value)
	}

	if vsync {
		dma.phase = Idle
		clear(dma.spritePhase[:])
	}
}

func (dma *DMA) step(pos beam.Position) {
	if dma.fetching {
		dma.Fetched++
	}

	switch dma.phase {
	case Idle:
		if pos.HPos == prepareHPos {
			dma.phase = Prepare
		}

	case Prepare:
		for i := range dma.spritePhase {
			switch dma.spritePhase[i] {
			case SpriteIdle:
				if dma.spritePtr[i] != 0 {
					dma.spritePhase[i] = LoadPosCtl
				}
			case SpriteWait:
				if dma.sprites.VStartMatch(i, pos.VPos) && !dma.sprites.VStopMatch(i, pos.VPos) {
					dma.spritePhase[i] = LoadDat
				}
			case LoadDat:
				if dma.sprites.VStopMatch(i, pos.VPos) {
					dma.spritePhase[i] = LoadPosCtl
				}
			}
		}
		dma.sprite = 0
		dma.phase = SpriteDMA0

	case SpriteDMA0:
		if dma.fetching {
			dma.spritePtr[dma.sprite] = (dma.spritePtr[dma.sprite] + 1) & bus.AddressMask
		}
		dma.phase = SpriteDMA1

	case SpriteDMA1:
		if dma.fetching {
			dma.spritePtr[dma.sprite] = (dma.spritePtr[dma.sprite] + 1) & bus.AddressMask
			if dma.spritePhase[dma.sprite] == LoadPosCtl {
				dma.spritePhase[dma.sprite] = SpriteWait
			}
		}
		dma.sprite++
		if dma.sprite < chipregs.NumSprites {
			dma.phase = SpriteDMA0
		} else {
			dma.sprite = 0
			dma.phase = BitplaneArm
		}

	case BitplaneArm:
		if pos.HPos == 0 {
			dma.phase = Idle
		} else if dma.diw.InVertical(pos.VPos) && pos.HPos == dma.ddf.Start {
			dma.countdown = 15
			dma.phase = BitplaneRun
		}

	case BitplaneRun:
		if dma.fetching {
			dma.bitplanePtr[dma.countdown] = (dma.bitplanePtr[dma.countdown] + 1) & bus.AddressMask
		}
		if pos.HPos == 0 || pos.HPos == dma.ddf.Stop {
			dma.phase = Idle
		} else if dma.countdown == 0 {
			dma.countdown = 15
		} else {
			dma.countdown--
		}
	}
}

// Update checks to see if the register write is of interest to the
// sequencer. Returns true if the write was consumed.
func (dma *DMA) Update(reg chipregs.Register, v uint16) bool {
	switch {
	case reg >= chipregs.SPR0PTH && reg <= chipregs.SPRxPTL(chipregs.NumSprites-1):
		n := int(reg-chipregs.SPR0PTH) >> 2
		dma.spritePtr[n] = writePointer(dma.spritePtr[n], reg&0x02 == 0, v)
	case reg >= chipregs.BPL1PTH && reg <= chipregs.BPLxPTL(chipregs.NumBitplanes-1):
		n := int(reg-chipregs.BPL1PTH) >> 2
		dma.bitplanePtr[n] = writePointer(dma.bitplanePtr[n], reg&0x02 == 0, v)
	case reg == chipregs.BPLCON0:
		dma.bplcon0.Write(v)
	case reg == chipregs.DIWSTRT:
		dma.diw.WriteStart(v)
	case reg == chipregs.DIWSTOP:
		dma.diw.WriteStop(v)
	case reg == chipregs.DDFSTRT:
		dma.ddf.WriteStart(v)
	case reg == chipregs.DDFSTOP:
		dma.ddf.WriteStop(v)
	default:
		return false
	}
	return true
}

// writePointer updates the high or low half of a 20-bit pointer. The high
// half keeps four bits.
func writePointer(ptr uint32, high bool, v uint16) uint32 {
	if high {
		return (ptr & 0x0ffff) | (uint32(v)<<16)&bus.AddressMask
	}
	return (ptr & 0xf0000) | uint32(v)
}
