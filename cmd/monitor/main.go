// Command monitor is a raw-terminal step debugger for the core: it loads a
// flat binary image at a chosen address, points the reset vector at it, and
// lets the user single-step the CPU while watching GetDebugState() and the
// log tail. It exists purely as a demonstration host harness; nothing in
// hardware/cpu depends on it.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/birchlane-systems/w65c816/hardware/cpu"
	"github.com/birchlane-systems/w65c816/logger"
	"github.com/birchlane-systems/w65c816/memmap"
)

// rawTerminal puts stdin into cbreak mode for the duration of the session,
// so single keystrokes reach the program without waiting on a newline.
// Adapted from the easyterm termios wrapper: Initialise/RawMode/CanonicalMode
// split into enter/restore around the REPL.
type rawTerminal struct {
	fd       uintptr
	original unix.Termios
}

func newRawTerminal(f *os.File) (*rawTerminal, error) {
	t := &rawTerminal{fd: f.Fd()}
	if err := termios.Tcgetattr(t.fd, &t.original); err != nil {
		return nil, fmt.Errorf("monitor: reading terminal attributes: %w", err)
	}
	cbreak := t.original
	termios.Cfmakecbreak(&cbreak)
	if err := termios.Tcsetattr(t.fd, termios.TCIFLUSH, &cbreak); err != nil {
		return nil, fmt.Errorf("monitor: entering cbreak mode: %w", err)
	}
	return t, nil
}

func (t *rawTerminal) restore() {
	_ = termios.Tcsetattr(t.fd, termios.TCIFLUSH, &t.original)
}

func main() {
	image := flag.String("image", "", "path to a flat binary image")
	loadAt := flag.Uint64("at", 0x8000, "address to load the image at")
	resetVector := flag.Uint64("reset", 0x8000, "address stored in the reset vector")
	echo := flag.Bool("echo", false, "echo log entries to stdout as they are recorded")
	flag.Parse()

	logger.SetEcho(*echo)

	bus := memmap.NewFlat()
	if *image != "" {
		data, err := os.ReadFile(*image)
		if err != nil {
			fmt.Fprintln(os.Stderr, "monitor:", err)
			os.Exit(1)
		}
		if err := bus.LoadAt(uint32(*loadAt), data); err != nil {
			fmt.Fprintln(os.Stderr, "monitor:", err)
			os.Exit(1)
		}
	}
	bus.Write(0xfffc, uint8(*resetVector))
	bus.Write(0xfffd, uint8(*resetVector>>8))

	core := cpu.NewCPUFromBus(bus)
	core.Reset(true)

	term, err := newRawTerminal(os.Stdin)
	if err != nil {
		// not every environment has a real tty (CI, piped input); carry on
		// without cbreak mode instead of failing outright. The REPL reads
		// whole lines either way.
		fmt.Fprintln(os.Stderr, "monitor: raw mode unavailable, falling back to line input:", err)
		term = nil
	} else {
		defer term.restore()
	}

	fmt.Println("monitor ready. commands: s(tep) [n], n(mi), i(rq on/off), d(ebug), q(uit)")
	runREPL(core, bus)
}

func runREPL(core *cpu.CPU, bus *memmap.Flat) {
	scanner := bufio.NewScanner(os.Stdin)
	printState(core)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "s", "step":
			n := 1
			if len(fields) > 1 {
				if v, err := strconv.Atoi(fields[1]); err == nil {
					n = v
				}
			}
			for i := 0; i < n; i++ {
				core.RunOpcode()
			}
			printState(core)
		case "n", "nmi":
			core.Nmi()
		case "i", "irq":
			state := len(fields) < 2 || fields[1] != "off"
			core.SetIrq(state)
		case "d", "debug":
			logger.Tail(os.Stdout, 20)
		case "q", "quit":
			return
		default:
			fmt.Println("unrecognised command:", fields[0])
		}
	}
}

func printState(core *cpu.CPU) {
	s := core.GetDebugState()
	upperIfSet := func(set bool, r byte) byte {
		if set {
			return r - 32
		}
		return r
	}
	flags := []byte{
		upperIfSet(s.N, 'n'), upperIfSet(s.V, 'v'), upperIfSet(s.M, 'm'), upperIfSet(s.Xf, 'x'),
		upperIfSet(s.D, 'd'), upperIfSet(s.I, 'i'), upperIfSet(s.Z, 'z'), upperIfSet(s.C, 'c'),
	}
	fmt.Printf("PC=%02x:%04x A=%04x X=%04x Y=%04x SP=%04x DP=%04x DB=%02x flags=%s e=%v\n",
		s.K, s.PC, s.A, s.X, s.Y, s.SP, s.DP, s.DB, flags, s.E)
}
