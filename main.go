// main.go - CLI entry point (SPEC_FULL §0)
//
// Grounded on z80opt/cmd/z80opt/main.go's rootCmd-plus-subcommand shape:
// cobra commands with their own Flags(), no persistent global state beyond
// what each RunE closure captures. "run" drives the machine interactively
// against a host backend; "debug" does the same but drops into the
// bubbletea Machine Monitor instead of free-running; "disasm" lists a
// static disassembly of a loaded image without executing anything.

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ti99",
		Short: "TI-99/4A home computer core: TMS9900 CPU, VDP, PSG, GROM, CRU I/O",
	}

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newDebugCmd())
	rootCmd.AddCommand(newDisasmCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// machineFlags are shared between run and debug.
type machineFlags struct {
	rom      string
	grom     string
	cart     string
	cartHalf string
	cartGrom string
	headless bool
	width    int
	height   int
}

func addMachineFlags(cmd *cobra.Command, f *machineFlags) {
	cmd.Flags().StringVar(&f.rom, "rom", "", "path to the 8 KiB system ROM image (required)")
	cmd.Flags().StringVar(&f.grom, "grom", "", "path to the 24 KiB system GROM image (required)")
	cmd.Flags().StringVar(&f.cart, "cart", "", "path to a cartridge ROM image")
	cmd.Flags().StringVar(&f.cartHalf, "cart-second-half", "", "path to the second half of a split cartridge ROM image")
	cmd.Flags().StringVar(&f.cartGrom, "cart-grom", "", "path to a cartridge GROM image")
	cmd.Flags().BoolVar(&f.headless, "headless", false, "run with no video/audio/keyboard host (discards frames)")
	cmd.Flags().IntVar(&f.width, "width", 256, "visible pixel width for windowed/terminal hosts")
	cmd.Flags().IntVar(&f.height, "height", 192, "visible pixel height for windowed/terminal hosts")
	cmd.Flags().Bool("pal", false, "use PAL field timing (313 lines)")
}

// buildMachine loads images and constructs an Emulator plus Scheduler
// against the host chosen by f.headless. The returned stop func releases
// any host-side resources (terminal raw mode, audio context) and should be
// deferred by the caller.
func buildMachine(f *machineFlags, pal bool) (*Emulator, *Scheduler, HostBoundary, func(), error) {
	if f.rom == "" || f.grom == "" {
		return nil, nil, nil, nil, fmt.Errorf("--rom and --grom are required")
	}

	romImg, err := LoadSystemROM(f.rom)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	gromImg, err := LoadSystemGROM(f.grom)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	var cart Cartridge
	haveCart := f.cart != ""
	if haveCart {
		cart, err = LoadCartridge(f.cart, f.cartHalf)
		if err != nil {
			return nil, nil, nil, nil, err
		}
	}

	var cartGrom ROMImage
	haveCartGrom := f.cartGrom != ""
	if haveCartGrom {
		cartGrom, err = LoadCartridgeGROM(f.cartGrom)
		if err != nil {
			return nil, nil, nil, nil, err
		}
	}

	// NewEmulator needs a non-nil host before the real one exists (the
	// windowed/terminal backends need *Keyboard, which only exists once the
	// Emulator is constructed), so it's built against a placeholder and
	// rewired below.
	e := NewEmulator(noopHostBoundary{})

	var host HostBoundary
	var stop func()
	switch {
	case f.headless:
		host, stop = NewHeadlessHost(), func() {}
	case isTerminalBackend(f):
		th := NewTerminalHost(e.keyboard)
		th.Start()
		host, stop = th, th.Stop
	default:
		host, stop = NewEbitenHost(e.vdp, e.keyboard, f.width, f.height), func() {}
	}
	e.host = host

	copy(e.systemROM, bytesToWordsBE(romImg.Data))
	if err := e.grom.LoadSystem(gromImg.Data); err != nil {
		return nil, nil, nil, nil, err
	}
	if haveCart {
		*e.cart = cart
		e.mm.remap(CartridgeROMBase, CartridgeWindow, e.cart.currentBank())
	}
	if haveCartGrom {
		e.grom.LoadCartridge(cartGrom.Data)
	}

	audioSink, audioErr := attachAudio(e, f.headless)
	if audioErr != nil {
		e.logf("audio: %v (continuing without sound output)", audioErr)
	}

	e.Reset()

	standard := StandardNTSC
	if pal {
		standard = StandardPAL
	}
	sched := newScheduler(e, standard)

	prevStop := stop
	stop = func() {
		if prevStop != nil {
			prevStop()
		}
		if audioSink != nil {
			audioSink.Stop()
		}
	}

	return e, sched, host, stop, nil
}

// noopHostBoundary is a placeholder used only for the brief window between
// NewEmulator (which needs a non-nil host) and the real host's construction,
// which itself needs the Emulator's keyboard. It is never stepped against.
type noopHostBoundary struct{}

func (noopHostBoundary) Video() VideoSink               { return nil }
func (noopHostBoundary) Audio() AudioSink               { return nil }
func (noopHostBoundary) RequestReset() bool             { return false }
func (noopHostBoundary) LoadROM(string) ([]byte, error) { return nil, fmt.Errorf("no host attached") }

// isTerminalBackend decides terminal-vs-windowed for the non-headless case:
// a real windowed backend needs an attached display, which a CLI can't
// detect portably, so this keys off an explicit environment convention
// instead of guessing.
func isTerminalBackend(f *machineFlags) bool {
	return os.Getenv("TI99_TERMINAL") != ""
}

// attachAudio wires an OtoAudioSink to the sound chip unless running
// headless, where there is no audio device to open.
func attachAudio(e *Emulator, headless bool) (*OtoAudioSink, error) {
	if headless {
		return nil, nil
	}
	sink, err := NewOtoAudioSink(SoundSampleRate)
	if err != nil {
		return nil, err
	}
	sink.Start()
	e.sound.AttachSink(sink)
	return sink, nil
}

func newRunCmd() *cobra.Command {
	f := &machineFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the machine against a live host",
		RunE: func(cmd *cobra.Command, args []string) error {
			pal, _ := cmd.Flags().GetBool("pal")
			e, sched, host, stop, err := buildMachine(f, pal)
			if err != nil {
				return err
			}
			defer stop()

			if eh, ok := host.(*EbitenHost); ok {
				go runFrameLoop(e, sched, host)
				return eh.Run("TI-99/4A")
			}

			runFrameLoop(e, sched, host)
			return nil
		},
	}
	addMachineFlags(cmd, f)
	return cmd
}

// runFrameLoop paces scanline groups at roughly the field rate and handles
// host-requested resets, running until the process is terminated.
func runFrameLoop(e *Emulator, sched *Scheduler, host HostBoundary) {
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()
	for range ticker.C {
		if host.RequestReset() {
			e.Reset()
		}
		sched.RunFrame(func(y int, line []byte) {
			if v := host.Video(); v != nil {
				v.PixelLine(y, line)
			}
		})
	}
}

func newDebugCmd() *cobra.Command {
	f := &machineFlags{}
	var breakpoints []string
	cmd := &cobra.Command{
		Use:   "debug",
		Short: "Run the machine under the interactive Machine Monitor",
		RunE: func(cmd *cobra.Command, args []string) error {
			pal, _ := cmd.Flags().GetBool("pal")
			f.headless = true // the TUI owns the terminal; no separate video host
			e, sched, _, stop, err := buildMachine(f, pal)
			if err != nil {
				return err
			}
			defer stop()
			e.undo.Enabled = true // the TUI's "u" key steps backward through it

			cpu := NewTMS9900Debuggable(e, sched)
			for _, bp := range breakpoints {
				addr, err := strconv.ParseUint(strings.TrimPrefix(bp, "0x"), 16, 16)
				if err != nil {
					return fmt.Errorf("invalid --breakpoint %q: %w", bp, err)
				}
				cpu.SetBreakpoint(addr)
			}

			mon := NewMachineMonitor(cpu)
			mon.StartBreakpointListener()
			return RunDebugTUI(mon, cpu)
		},
	}
	addMachineFlags(cmd, f)
	cmd.Flags().StringSliceVar(&breakpoints, "breakpoint", nil, "hex address to break at (repeatable), e.g. --breakpoint 0x0100")
	return cmd
}

func newDisasmCmd() *cobra.Command {
	var romPath string
	var addrStr string
	var count int
	cmd := &cobra.Command{
		Use:   "disasm",
		Short: "Disassemble a raw ROM image without executing it",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := loadROMBytes(romPath)
			if err != nil {
				return err
			}
			addr, err := strconv.ParseUint(strings.TrimPrefix(addrStr, "0x"), 16, 16)
			if err != nil {
				return fmt.Errorf("invalid --addr %q: %w", addrStr, err)
			}
			readMem := func(a uint64, size int) []byte {
				out := make([]byte, 0, size)
				for i := 0; i < size && int(a)+i < len(data); i++ {
					out = append(out, data[int(a)+i])
				}
				return out
			}
			for _, line := range disassembleTMS9900(readMem, addr, count) {
				fmt.Printf("%04X  %-11s %s\n", line.Address, line.HexBytes, line.Mnemonic)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&romPath, "rom", "", "path to a raw ROM image (required)")
	cmd.Flags().StringVar(&addrStr, "addr", "0x0000", "starting address to disassemble from")
	cmd.Flags().IntVar(&count, "count", 32, "number of instructions to disassemble")
	cmd.MarkFlagRequired("rom")
	return cmd
}
