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
	"context"
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/mymig/mymig/curated"
	"github.com/mymig/mymig/hardware/host"
	"github.com/mymig/mymig/logger"
)

// Sentinal error patterns.
const (
	ScriptError  = "script: %s: %v"
	FileError    = "script: %v"
	UnknownYield = "unknown yield (%s)"
)

// the name of the global function called when the interrupt level is high
const handlerName = "interrupt"

//go:embed prelude.lua
var prelude string

// thread is a coroutine in the Lua state.
type thread struct {
	co     *lua.LState
	cancel context.CancelFunc
	fn     *lua.LFunction
	done   bool

	// the values returned to the coroutine when it is next resumed
	args []lua.LValue
}

// Script is an implementation of the host.Program interface.
type Script struct {
	env  logger.Permission
	name string

	L *lua.LState

	main    *thread
	handler *thread

	// the thread that made the transaction currently in progress
	current *thread

	// number of cycles remaining of an idle() call
	idle int

	err error

	// the number of times the interrupt function has been called
	Interrupts int
}

// NewScript compiles the Lua source. The name is used in error messages and
// log entries. The program does not start until the first call to Next().
func NewScript(env logger.Permission, name string, src string) (*Script, error) {
	s := &Script{
		env:  env,
		name: name,
		L:    lua.NewState(),
	}

	s.register()

	if err := s.L.DoString(prelude); err != nil {
		s.L.Close()
		return nil, curated.Errorf(ScriptError, "prelude", err)
	}

	fn, err := s.L.LoadString(src)
	if err != nil {
		s.L.Close()
		return nil, curated.Errorf(ScriptError, name, err)
	}

	s.main = s.newThread(fn)

	return s, nil
}

// LoadScript reads the Lua program from a file.
func LoadScript(env logger.Permission, path string) (*Script, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, curated.Errorf(FileError, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return NewScript(env, name, string(b))
}

func (s *Script) newThread(fn *lua.LFunction) *thread {
	co, cancel := s.L.NewThread()
	return &thread{
		co:     co,
		cancel: cancel,
		fn:     fn,
	}
}

func (t *thread) close() {
	if t.cancel != nil {
		t.cancel()
	}
	t.co.Close()
}

// Close the Lua state. The Script should not be used after calling Close().
func (s *Script) Close() {
	if s.handler != nil {
		s.handler.close()
	}
	s.main.close()
	s.L.Close()
}

// Name returns the name of the script.
func (s *Script) Name() string {
	return s.name
}

// Err returns the first error encountered by the script. The script makes no
// more bus accesses after an error.
func (s *Script) Err() error {
	return s.err
}

// Done returns true if the main program has finished and no interrupt
// function is running.
func (s *Script) Done() bool {
	return s.main.done && s.handler == nil
}

// Next implements the host.Program interface.
func (s *Script) Next(irq bool) (host.Transaction, bool) {
	if s.err != nil {
		return host.Transaction{}, false
	}

	if s.idle > 0 {
		s.idle--
		return host.Transaction{}, false
	}

	if irq && s.handler == nil {
		if fn, ok := s.L.GetGlobal(handlerName).(*lua.LFunction); ok {
			s.handler = s.newThread(fn)
			s.Interrupts++
		}
	}

	t := s.main
	if s.handler != nil {
		t = s.handler
	}

	if t.done {
		return host.Transaction{}, false
	}

	tr, ok := s.resume(t)

	if t.done && t == s.handler {
		t.close()
		s.handler = nil
	}

	return tr, ok
}

// Complete implements the host.Program interface.
func (s *Script) Complete(tr host.Transaction, data uint16) {
	if s.current == nil {
		return
	}
	if !tr.Write {
		s.current.args = []lua.LValue{lua.LNumber(data)}
	}
	s.current = nil
}

// resume the thread until it yields a bus access or finishes.
func (s *Script) resume(t *thread) (host.Transaction, bool) {
	st, err, values := s.L.Resume(t.co, t.fn, t.args...)
	t.args = nil

	switch st {
	case lua.ResumeError:
		t.done = true
		s.err = curated.Errorf(ScriptError, s.name, err)
		logger.Log(s.env, "script", s.err.Error())
		return host.Transaction{}, false
	case lua.ResumeOK:
		t.done = true
		if t == s.main {
			logger.Logf(s.env, "script", "%s: finished", s.name)
		}
		return host.Transaction{}, false
	}

	if len(values) == 0 {
		return host.Transaction{}, false
	}

	switch kind := values[0].String(); kind {
	case yieldWrite:
		s.current = t
		return host.Transaction{
			Write:   true,
			Address: uint32(int64(lua.LVAsNumber(values[1]))) & host.AddressMask,
			Data:    uint16(int64(lua.LVAsNumber(values[2]))),
		}, true
	case yieldRead:
		s.current = t
		return host.Transaction{
			Address: uint32(int64(lua.LVAsNumber(values[1]))) & host.AddressMask,
		}, true
	case yieldIdle:
		s.idle = int(lua.LVAsNumber(values[1])) - 1
	default:
		t.done = true
		s.err = curated.Errorf(ScriptError, s.name, curated.Errorf(UnknownYield, kind))
		logger.Log(s.env, "script", s.err.Error())
	}

	return host.Transaction{}, false
}
