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

package hardware

import (
	"fmt"
	"strings"

	"github.com/mymig/mymig/govern"
	"github.com/mymig/mymig/hardware/arbiter"
	"github.com/mymig/mymig/hardware/beam"
	"github.com/mymig/mymig/hardware/copper"
	"github.com/mymig/mymig/hardware/dma"
	"github.com/mymig/mymig/hardware/host"
	"github.com/mymig/mymig/hardware/instance"
	"github.com/mymig/mymig/hardware/interrupts"
	"github.com/mymig/mymig/hardware/memory/bus"
	"github.com/mymig/mymig/hardware/memory/chipram"
	"github.com/mymig/mymig/hardware/registers"
	"github.com/mymig/mymig/hardware/television"
	"github.com/mymig/mymig/hardware/television/signal"
	"github.com/mymig/mymig/hardware/video"
	"github.com/mymig/mymig/logger"
	"github.com/mymig/mymig/prefs"
)

// Chipset struct is the root of the emulated chipset.
type Chipset struct {
	Instance *instance.Instance

	// the front end driving the chipset. set by playmode and the monitor
	Mode govern.Mode

	// the television is not part of the chipset but the chipset sends a
	// signal to it every cycle
	TV *television.Television

	Beam   *beam.Beam
	Mem    *chipram.ChipRAM
	Regs   *registers.Registers
	Ints   *interrupts.Interrupts
	Video  *video.Video
	Copper *copper.Copper
	DMA    *dma.DMA
	Host   *host.Host

	MemoryBus   *arbiter.Arbiter
	RegisterBus *arbiter.Arbiter

	// number of cycles since the last reset
	Cycles uint64

	// the signal sent to the television in the most recent cycle
	sig signal.VideoSignal

	// the register write granted in the most recent cycle. only valid if
	// written is true
	lastWrite bus.RegisterWrite
	written   bool

	// the master granted each bus in the most recent cycle
	memWinner bus.Master
	regWinner bus.Master

	// the interrupt level seen by the host in the most recent cycle
	irq bool
}

// NewChipset creates a new chipset and everything associated with the
// hardware. It is used for all aspects of emulation: debugging sessions,
// regression testing and windowed play.
//
// The Television argument can be nil in which case a Television instance is
// created. The Instance argument can also be nil, in which case a headless
// instance with default preferences is used.
func NewChipset(ins *instance.Instance, tv *television.Television) (*Chipset, error) {
	if ins == nil {
		ins = instance.NewInstance(instance.Headless, nil)
	}

	if tv == nil {
		tv = television.NewTelevision()
	}

	cs := &Chipset{
		Instance:    ins,
		TV:          tv,
		Beam:        beam.NewBeam(),
		Mem:         chipram.NewChipRAM(),
		Ints:        interrupts.NewInterrupts(),
		Video:       video.NewVideo(),
		Copper:      copper.NewCopper(ins),
		Host:        host.NewHost(ins),
		MemoryBus:   arbiter.NewArbiter("memory"),
		RegisterBus: arbiter.NewArbiter("register"),
	}

	cs.Regs = registers.NewRegisters(cs.Beam, cs.Ints)
	cs.DMA = dma.NewDMA(cs.Video)

	// headless instances are never limited to the refresh rate. otherwise
	// the limiter follows the preference value
	if ins.Label == instance.Headless {
		cs.TV.SetFPSCap(false)
	} else {
		cs.TV.SetFPSCap(ins.Prefs.FPSCap.Get().(bool))
		ins.Prefs.FPSCap.SetHookPost(func(v prefs.Value) error {
			cs.TV.SetFPSCap(v.(bool))
			return nil
		})
	}

	cs.Reset()

	return cs, nil
}

// Reset emulates the reset line of the chipset. Memory is left untouched and
// any host program remains attached.
func (cs *Chipset) Reset() {
	cs.Beam.Reset()
	cs.Regs.Reset()
	cs.Ints.Reset()
	cs.Video.Reset()
	cs.Copper.Reset()
	cs.DMA.Reset()
	cs.Host.Reset()
	cs.MemoryBus.Reset()
	cs.RegisterBus.Reset()
	cs.TV.Reset()

	cs.Cycles = 0
	cs.sig = signal.NoSignal
	cs.written = false
	cs.memWinner = bus.NoMaster
	cs.regWinner = bus.NoMaster
	cs.irq = false

	logger.Log(cs.Instance, "chipset", "reset")
}

func (cs *Chipset) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s  cycle=%d\n", cs.Beam, cs.Cycles))
	s.WriteString(fmt.Sprintf("%s\n", cs.Copper))
	s.WriteString(fmt.Sprintf("dma: %s\n", cs.DMA))
	s.WriteString(fmt.Sprintf("%s\n", cs.Host))
	s.WriteString(fmt.Sprintf("%s\n", cs.Ints))
	s.WriteString(fmt.Sprintf("%s\n", cs.MemoryBus))
	s.WriteString(cs.RegisterBus.String())
	if cs.written {
		s.WriteString(fmt.Sprintf(" %s", cs.lastWrite))
	}
	return s.String()
}

// Signal returns the video signal sent to the television in the most recent
// cycle.
func (cs *Chipset) Signal() signal.VideoSignal {
	return cs.sig
}

// IRQ returns the interrupt level presented to the host processor in the
// most recent cycle.
func (cs *Chipset) IRQ() bool {
	return cs.irq
}

// LastWrite returns the register write granted in the most recent cycle. The
// boolean is false if there was no register write in the cycle.
func (cs *Chipset) LastWrite() (bus.RegisterWrite, bool) {
	return cs.lastWrite, cs.written
}

// Winners returns the masters granted the memory bus and register bus in the
// most recent cycle.
func (cs *Chipset) Winners() (bus.Master, bus.Master) {
	return cs.memWinner, cs.regWinner
}

// SetProgram attaches a program to the host processor.
func (cs *Chipset) SetProgram(program host.Program) {
	cs.Host.SetProgram(program)
}
