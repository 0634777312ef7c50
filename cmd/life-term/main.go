// Command life-term runs the simulation in a terminal. Cells are drawn two
// columns wide for a roughly square look; the top row is the status line.
//
// Keys: space start/stop, n step, s randomize, r reset, q/Esc quit.
// Left click toggles a cell while stopped.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/FedExRU/life-the-game/internal/app"
	"github.com/FedExRU/life-the-game/internal/core"
	"github.com/FedExRU/life-the-game/internal/sim"
	"github.com/FedExRU/life-the-game/internal/ui"

	"github.com/gdamore/tcell/v2"
)

// redrawRate caps terminal repaints per second.
const redrawRate = 30

type termUI struct {
	screen tcell.Screen
	ctrl   *sim.Controller
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ctrl := sim.New(time.Duration(cfg.IntervalMS)*time.Millisecond, cfg.Seed)
	if err := ctrl.Generate(cfg.Size); err != nil {
		log.Fatalf("generate: %v", err)
	}
	if cfg.Randomize {
		if err := ctrl.Randomize(); err != nil {
			log.Fatalf("randomize: %v", err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}
	screen.EnableMouse()

	t := &termUI{screen: screen, ctrl: ctrl}
	defer t.cleanup()
	t.run()
}

func (t *termUI) cleanup() {
	t.ctrl.Stop()
	t.screen.Fini()
}

func (t *termUI) run() {
	eventCh := make(chan tcell.Event, 16)
	go func() {
		for {
			eventCh <- t.screen.PollEvent()
		}
	}()

	pacer := core.NewFixedStep(redrawRate)
	poll := time.NewTicker(time.Second / (2 * redrawRate))
	defer poll.Stop()

	t.draw()
	for {
		select {
		case ev := <-eventCh:
			if !t.handleEvent(ev) {
				return
			}
			t.draw()
		case <-poll.C:
			if pacer.ShouldStep() {
				t.draw()
			}
		}
	}
}

func (t *termUI) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			t.toggleRun()
		case 'n':
			_ = t.ctrl.Step()
		case 'r':
			_ = t.ctrl.Reset()
		case 's':
			t.ctrl.Reseed(time.Now().UnixNano())
			_ = t.ctrl.Randomize()
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			mx, my := ev.Position()
			// Controller refuses the toggle while running, and clicks
			// outside the board land out of bounds; both are ignored.
			_ = t.ctrl.Toggle(mx/2, my-1)
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *termUI) toggleRun() {
	if t.ctrl.State() == sim.Running {
		t.ctrl.Stop()
		return
	}
	// Not running and a grid exists, so Start cannot fail here.
	_ = t.ctrl.Start()
}

func (t *termUI) draw() {
	snap := t.ctrl.Snapshot()
	t.screen.Clear()

	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	for i, r := range []rune(ui.StatusLine(snap)) {
		t.screen.SetContent(i, 0, r, nil, statusStyle)
	}

	cellStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for y := 0; y < snap.Size; y++ {
		for x := 0; x < snap.Size; x++ {
			if snap.Cells[y*snap.Size+x] == 0 {
				continue
			}
			t.screen.SetContent(x*2, y+1, '█', nil, cellStyle)
			t.screen.SetContent(x*2+1, y+1, '█', nil, cellStyle)
		}
	}
	t.screen.Show()
}
