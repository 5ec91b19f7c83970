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

package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/mymig/mymig/hardware/copper"
	"github.com/mymig/mymig/hardware/host"
	"github.com/mymig/mymig/hardware/memory/chipregs"
	"github.com/mymig/mymig/logger"
)

// the first value yielded by a coroutine indicates the kind of bus access
const (
	yieldWrite = "write"
	yieldRead  = "read"
	yieldIdle  = "idle"
)

// register the Go functions and the register constants with the Lua state.
func (s *Script) register() {
	funcs := map[string]lua.LGFunction{
		"write":  luaWrite,
		"read":   luaRead,
		"idle":   luaIdle,
		"bor":    luaBor,
		"band":   luaBand,
		"bxor":   luaBxor,
		"lshift": luaLshift,
		"rshift": luaRshift,
		"cmove":  luaCmove,
		"cwait":  luaCwait,
		"cend":   luaCend,
		"sprite": luaSprite,
		"log": func(L *lua.LState) int {
			logger.Logf(s.env, "script", "%s: %s", s.name, L.CheckString(1))
			return 0
		},
	}

	for k, f := range funcs {
		s.L.SetGlobal(k, s.L.NewFunction(f))
	}

	chipregs.Names(func(r chipregs.Register, n string) {
		s.L.SetGlobal(n, lua.LNumber(r))
	})
	s.L.SetGlobal("CUSTOM", lua.LNumber(host.RegisterBase))
}

func luaWrite(L *lua.LState) int {
	addr := L.CheckInt64(1)
	v := L.CheckInt64(2)
	return L.Yield(lua.LString(yieldWrite), lua.LNumber(addr), lua.LNumber(v&0xffff))
}

func luaRead(L *lua.LState) int {
	addr := L.CheckInt64(1)
	return L.Yield(lua.LString(yieldRead), lua.LNumber(addr))
}

func luaIdle(L *lua.LState) int {
	n := L.OptInt(1, 1)
	if n < 1 {
		return 0
	}
	return L.Yield(lua.LString(yieldIdle), lua.LNumber(n))
}

func luaBor(L *lua.LState) int {
	var v int64
	for i := 1; i <= L.GetTop(); i++ {
		v |= L.CheckInt64(i)
	}
	L.Push(lua.LNumber(v))
	return 1
}

func luaBand(L *lua.LState) int {
	L.Push(lua.LNumber(L.CheckInt64(1) & L.CheckInt64(2)))
	return 1
}

func luaBxor(L *lua.LState) int {
	L.Push(lua.LNumber(L.CheckInt64(1) ^ L.CheckInt64(2)))
	return 1
}

func luaLshift(L *lua.LState) int {
	L.Push(lua.LNumber(L.CheckInt64(1) << uint(L.CheckInt(2))))
	return 1
}

func luaRshift(L *lua.LState) int {
	L.Push(lua.LNumber(L.CheckInt64(1) >> uint(L.CheckInt(2))))
	return 1
}

func pushInstruction(L *lua.LState, ins copper.Instruction) int {
	L.Push(lua.LNumber(ins.Low))
	L.Push(lua.LNumber(ins.High))
	return 2
}

func luaCmove(L *lua.LState) int {
	reg := chipregs.Register(L.CheckInt(1))
	return pushInstruction(L, copper.NewMove(reg, uint16(L.CheckInt(2))))
}

func luaCwait(L *lua.LState) int {
	vp := uint8(L.CheckInt(1))
	hp := uint8(L.CheckInt(2))
	ve := uint8(L.OptInt(3, 0x7f))
	he := uint8(L.OptInt(4, 0x7f))
	return pushInstruction(L, copper.NewMaskedWait(vp, hp, ve, he))
}

func luaCend(L *lua.LState) int {
	return pushInstruction(L, copper.EndOfList)
}

func luaSprite(L *lua.LState) int {
	h := uint16(L.CheckInt(1))
	vstart := uint16(L.CheckInt(2))
	vstop := uint16(L.CheckInt(3))
	attach := L.OptBool(4, false)
	pos, ctl := chipregs.EncodeSprite(h, vstart, vstop, attach)
	L.Push(lua.LNumber(pos))
	L.Push(lua.LNumber(ctl))
	return 2
}
