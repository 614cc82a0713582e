package driver

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/evgenyagantaev/binary-rstdp/corelog"
)

// CommandSource is the host boundary's incoming line-oriented command
// stream — normally process stdin, a plain io.Reader in production and a
// strings.Reader in tests.
type CommandSource interface {
	io.Reader
}

// ReadCommands parses newline-terminated command tokens from source and
// applies them to ctrl, one line at a time, until the stream closes or the
// running flag clears — whichever comes first. It is meant to run on its
// own goroutine; ctrl's atomic fields are the only state it shares with the
// simulation loop.
func ReadCommands(source CommandSource, ctrl *Control, log *corelog.Sink) {
	scanner := bufio.NewScanner(source)
	for ctrl.Running() && scanner.Scan() {
		applyCommand(strings.TrimSpace(scanner.Text()), ctrl, log)
	}
	// Input-stream closure is treated as stop, per §7's transient I/O
	// fault policy.
	ctrl.Stop()
}

func applyCommand(line string, ctrl *Control, log *corelog.Sink) {
	if line == "" {
		return
	}
	fields := strings.Fields(line)
	switch fields[0] {
	case "start", "resume":
		ctrl.Resume()
	case "pause":
		ctrl.Pause()
	case "stop":
		ctrl.Stop()
	case "reset":
		ctrl.RequestReset()
	case "speed":
		applySpeed(fields, line, ctrl, log)
	default:
		log.Warnf("driver: unrecognized command %q", line)
	}
}

func applySpeed(fields []string, line string, ctrl *Control, log *corelog.Sink) {
	if len(fields) != 2 {
		log.Warnf("driver: malformed speed command %q", line)
		return
	}
	ms, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		log.Warnf("driver: speed command %q is not a decimal integer: %v", line, err)
		return
	}
	ctrl.SetDelay(ms)
}
