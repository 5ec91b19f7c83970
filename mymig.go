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

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"golang.org/x/term"

	"github.com/mymig/mymig/curated"
	"github.com/mymig/mymig/digest"
	"github.com/mymig/mymig/gui"
	guiebiten "github.com/mymig/mymig/gui/ebiten"
	"github.com/mymig/mymig/gui/sdlplay"
	"github.com/mymig/mymig/hardware"
	"github.com/mymig/mymig/hardware/instance"
	"github.com/mymig/mymig/hardware/preferences"
	"github.com/mymig/mymig/logger"
	"github.com/mymig/mymig/modalflag"
	"github.com/mymig/mymig/monitor"
	"github.com/mymig/mymig/playmode"
	"github.com/mymig/mymig/screenshot"
	"github.com/mymig/mymig/script"
	"github.com/mymig/mymig/statsview"
	"github.com/mymig/mymig/version"
)

// the demo to run if no program is specified on the command line
const defaultDemo = "bios"

// exit values
const (
	exitOK    = 0
	exitParse = 10
	exitMode  = 20
)

func init() {
	// the SDL and ebiten front ends must run in the main thread
	runtime.LockOSThread()
}

// #mainthread
func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch the application with the arguments and return the exit value.
//
// #mainthread
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "FRAMES", "MONITOR", "SCRIPTS", "VERSION")
	md.AdditionalHelp("programs are Lua files (.lua) or the name of a built-in demo")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParse
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "FRAMES":
		err = frames(md)
	case "MONITOR":
		err = runMonitor(md)
	case "SCRIPTS":
		for _, d := range script.Demos() {
			fmt.Fprintln(output, d)
		}
	case "VERSION":
		v, r, _ := version.Version()
		fmt.Fprintf(output, "%s %s (%s)\n", version.ApplicationName, v, r)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		return exitMode
	}

	return exitOK
}

// echoLog sends log entries to the output as they are added. log entries are
// coloured if the output is a terminal.
func echoLog(output io.Writer) {
	if f, ok := output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		logger.SetEcho(logger.NewColorizer(output), false)
		return
	}
	logger.SetEcho(output, false)
}

// loadProgram returns the program to attach to the chipset. the argument is
// either the path of a Lua file or the name of a built-in demo.
func loadProgram(env logger.Permission, arg string) (*script.Script, error) {
	if arg == "" {
		arg = defaultDemo
	}
	if strings.HasSuffix(strings.ToLower(arg), ".lua") {
		return script.LoadScript(env, arg)
	}
	return script.NewDemo(env, arg)
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	prefsFile := md.AddString("prefs", "", "preferences file (default in user config directory)")
	backend := md.AddString("backend", "", "window backend: sdl, ebiten (default from preferences)")
	scale := md.AddFloat64("scale", 0.0, "window scaling (default from preferences)")
	fpsCap := md.AddBool("fpscap", true, "cap fps to the refresh rate")
	shotBase := md.AddString("shot", "mymig", "base name for screenshots (press F12)")
	log := md.AddBool("log", false, "echo log to stdout")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		echoLog(md.Output)
	}

	if stats != nil && *stats {
		statsview.Launch(md.Output, "")
	}

	prefs, err := preferences.NewPreferences(*prefsFile)
	if err != nil {
		return err
	}

	// command line flags take priority over the preferences file
	var flagErr error
	md.Visit(func(flag string) {
		switch flag {
		case "fpscap":
			flagErr = prefs.FPSCap.Set(*fpsCap)
		case "backend":
			flagErr = prefs.Backend.Set(*backend)
		case "scale":
			flagErr = prefs.Scale.Set(*scale)
		}
	})
	if flagErr != nil {
		return flagErr
	}

	ins := instance.NewInstance(instance.Main, prefs)

	cs, err := hardware.NewChipset(ins, nil)
	if err != nil {
		return err
	}
	defer cs.TV.End()

	prog, err := loadProgram(ins, md.GetArg(0))
	if err != nil {
		return err
	}
	defer prog.Close()
	cs.SetProgram(prog)

	g := gui.NewGUI()
	if _, err := gui.NewRenderer(g, cs.TV); err != nil {
		return err
	}

	scr, err := screenshot.NewScreenshot(cs.TV)
	if err != nil {
		return err
	}

	// the emulation runs in its own goroutine. the GUI must run in the main
	// thread
	endGui := make(chan bool, 1)
	emuErr := make(chan error, 1)
	go func() {
		emuErr <- playmode.Play(cs, g, playmode.Options{
			Screenshot:     scr,
			ScreenshotBase: *shotBase,
		})
		endGui <- true
	}()

	sc := prefs.Scale.Get().(float64)
	switch prefs.Backend.Get().(string) {
	case preferences.BackendEbiten:
		err = guiebiten.Launch(endGui, g, sc)
	default:
		err = sdlplay.Launch(endGui, g, sc)
	}

	if err != nil {
		// stop the emulation if the GUI has failed
		g.PushEvent(gui.Event{ID: gui.EventWindowClose})
		<-emuErr
		return err
	}

	if err := <-emuErr; err != nil {
		return err
	}

	if err := prog.Err(); err != nil {
		return err
	}

	return prefs.Save()
}

func frames(md *modalflag.Modes) error {
	md.NewMode()

	numFrames := md.AddInt("n", 1, "number of frames to run")
	pngFile := md.AddString("png", "", "save the final frame to a PNG file")
	scale := md.AddInt("scale", 1, "scaling of PNG image")
	smooth := md.AddBool("smooth", false, "smooth scaling of PNG image")
	caption := md.AddBool("caption", false, "draw frame number on PNG image")
	overscan := md.AddBool("overscan", false, "include the area outside the display window in PNG image")
	showDigest := md.AddBool("digest", true, "print the video digest of the final frame")
	log := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *numFrames < 1 {
		return curated.Errorf("frames: frame count must be positive (%d)", *numFrames)
	}

	if *log {
		echoLog(md.Output)
	}

	ins := instance.NewInstance(instance.Headless, nil)

	cs, err := hardware.NewChipset(ins, nil)
	if err != nil {
		return err
	}
	defer cs.TV.End()

	prog, err := loadProgram(ins, md.GetArg(0))
	if err != nil {
		return err
	}
	defer prog.Close()
	cs.SetProgram(prog)

	dig, err := digest.NewVideo(cs.TV)
	if err != nil {
		return err
	}

	scr, err := screenshot.NewScreenshot(cs.TV)
	if err != nil {
		return err
	}
	scr.Scale = *scale
	scr.Smooth = *smooth
	scr.Caption = *caption
	scr.Crop = !*overscan

	if err := cs.RunForFrameCount(*numFrames, nil); err != nil {
		return err
	}

	if err := prog.Err(); err != nil {
		return err
	}

	if *showDigest {
		fmt.Fprintf(md.Output, "%s\n", dig.Hash())
	}

	if *pngFile != "" {
		f, err := os.Create(*pngFile)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := scr.Encode(f, false); err != nil {
			return err
		}
	}

	return nil
}

func runMonitor(md *modalflag.Modes) error {
	md.NewMode()

	prefsFile := md.AddString("prefs", "", "preferences file (default in user config directory)")
	log := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		echoLog(md.Output)
	}

	prefs, err := preferences.NewPreferences(*prefsFile)
	if err != nil {
		return err
	}
	ins := instance.NewInstance(instance.Monitor, prefs)

	cs, err := hardware.NewChipset(ins, nil)
	if err != nil {
		return err
	}
	defer cs.TV.End()

	if arg := md.GetArg(0); arg != "" {
		prog, err := loadProgram(ins, arg)
		if err != nil {
			return err
		}
		defer prog.Close()
		cs.SetProgram(prog)
	}

	m, err := monitor.NewMonitor(cs, os.Stdin, md.Output)
	if err != nil {
		return err
	}

	return m.Run()
}
