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
	"github.com/mymig/mymig/hardware/arbiter"
	"github.com/mymig/mymig/hardware/memory/bus"
	"github.com/mymig/mymig/hardware/memory/chipregs"
	"github.com/mymig/mymig/hardware/television/signal"
)

// Step advances the chipset by one pixel clock.
func (cs *Chipset) Step() error {
	pos := cs.Beam.Position()
	vsync := cs.Beam.VSync()

	// outputs are a function of the state committed in the previous cycle
	cs.sig = signal.VideoSignal{
		HSync:         cs.Beam.HSync(),
		VSync:         vsync,
		DisplayEnable: cs.Beam.DisplayEnable(),
		Index:         cs.Video.Pixel(),
	}
	if cs.sig.DisplayEnable {
		cs.sig.Red, cs.sig.Green, cs.sig.Blue = cs.Regs.Palette.RGB(cs.sig.Index)
	}
	cs.irq = cs.Ints.IRQ()

	if err := cs.TV.Signal(cs.sig); err != nil {
		return err
	}

	// requests from every bus master
	var memReq arbiter.Requests
	var regReq arbiter.Requests

	if fetch, ok := cs.DMA.Request(); ok {
		memReq[bus.DMA] = bus.Request{
			Active:  true,
			Address: fetch.Address,
		}
		regReq[bus.DMA] = bus.Request{
			Active:  true,
			Write:   true,
			Address: uint32(fetch.Register),
		}
	}
	memReq[bus.Copper], regReq[bus.Copper] = cs.Copper.Request()
	memReq[bus.Processor], regReq[bus.Processor] = cs.Host.Request(cs.irq)

	// memory bus
	var memResp [bus.NumMasters]bus.Response

	cs.memWinner = cs.MemoryBus.Arbitrate(&memReq)
	if cs.memWinner != bus.NoMaster {
		req := memReq[cs.memWinner]
		address := req.Address & bus.AddressMask
		if req.Write {
			cs.Mem.Write(address, req.Data)
			memResp[cs.memWinner] = bus.Response{Ack: true}
		} else {
			memResp[cs.memWinner] = bus.Response{Ack: true, Data: cs.Mem.Read(address)}
		}
	}

	// the word fetched by the DMA sequencer is written to the register in
	// the same cycle
	regReq[bus.DMA].Data = memResp[bus.DMA].Data

	// register bus
	var regResp [bus.NumMasters]bus.Response
	var wr *bus.RegisterWrite

	cs.written = false
	cs.regWinner = cs.RegisterBus.Arbitrate(&regReq)
	if cs.regWinner != bus.NoMaster {
		req := regReq[cs.regWinner]
		reg := chipregs.Register(req.Address) & chipregs.Mask
		if req.Write {
			cs.lastWrite = bus.RegisterWrite{
				Master:   cs.regWinner,
				Register: reg,
				Value:    req.Data,
			}
			cs.written = true
			wr = &cs.lastWrite
			regResp[cs.regWinner] = bus.Response{Ack: true}
		} else {
			regResp[cs.regWinner] = bus.Response{Ack: true, Data: cs.Regs.Read(reg)}
		}
	}

	// commit next state
	if wr != nil {
		cs.Regs.Update(wr.Register, wr.Value)
		cs.Ints.Update(wr.Register, wr.Value)
	}

	cs.Video.Tick(pos.HPos)
	if wr != nil {
		cs.Video.Update(wr.Register, wr.Value)
	}

	cs.Copper.Commit(memResp[bus.Copper], regResp[bus.Copper], pos, vsync, wr)
	cs.DMA.Commit(pos, vsync, wr)
	cs.Host.Commit(memResp[bus.Processor], regResp[bus.Processor])

	cs.Beam.Tick()
	cs.Cycles++

	return nil
}

// StepScanline advances the chipset until the start of the next scanline.
func (cs *Chipset) StepScanline() error {
	for {
		if err := cs.Step(); err != nil {
			return err
		}
		if cs.Beam.Position().HPos == 0 {
			return nil
		}
	}
}

// StepFrame advances the chipset until the start of the next frame.
func (cs *Chipset) StepFrame() error {
	for {
		if err := cs.Step(); err != nil {
			return err
		}
		p := cs.Beam.Position()
		if p.HPos == 0 && p.VPos == 0 {
			return nil
		}
	}
}
