package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// clipboardSink writes the final payload to a clipboard mechanism.
type clipboardSink func(data string) error

func runClipboardCommand(name string, args []string, data string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(data)
	cmd.Stdout = io.Discard
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("%s failed: %s", name, msg)
		}
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}

// detectClipboard probes for a clipboard backend in a fixed priority
// order and returns its name plus a sink bound to it. Probing happens
// once at startup; a missing backend is a dependency error that aborts
// the run before any target processing.
func detectClipboard() (string, clipboardSink, error) {
	command := func(name string, args ...string) clipboardSink {
		return func(data string) error {
			return runClipboardCommand(name, args, data)
		}
	}
	switch runtime.GOOS {
	case "darwin":
		if _, err := exec.LookPath("pbcopy"); err != nil {
			return "", nil, fmt.Errorf("pbcopy not found in PATH")
		}
		return "pbcopy", command("pbcopy"), nil
	case "windows":
		if _, err := exec.LookPath("clip"); err != nil {
			return "", nil, fmt.Errorf("clip not found in PATH")
		}
		return "clip", command("clip"), nil
	default:
		if path, _ := exec.LookPath("wl-copy"); path != "" {
			return "wl-copy", command(path), nil
		}
		if path, _ := exec.LookPath("xclip"); path != "" {
			return "xclip", command(path, "-selection", "clipboard"), nil
		}
		if path, _ := exec.LookPath("xsel"); path != "" {
			return "xsel", command(path, "--clipboard", "--input"), nil
		}
		if path, _ := exec.LookPath("clip.exe"); path != "" {
			return "clip.exe", command(path), nil
		}
		return "", nil, fmt.Errorf("no clipboard utility found (tried wl-copy, xclip, xsel, clip.exe)")
	}
}

// osc52Sequence wraps data in an OSC 52 escape sequence, additionally
// wrapped for tmux and screen so it reaches the outer terminal.
func osc52Sequence(data string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(data))
	seq := fmt.Sprintf("\x1b]52;c;%s\x07", encoded)
	if os.Getenv("TMUX") != "" {
		return "\x1bPtmux;" + seq + "\x1b\\"
	}
	if strings.HasPrefix(os.Getenv("TERM"), "screen") {
		return "\x1bP" + seq + "\x1b\\"
	}
	return seq
}

// copyOSC52 writes the payload as an OSC 52 sequence, letting the
// terminal emulator set the clipboard. Useful over SSH where no
// clipboard command can reach the local machine.
func copyOSC52(w io.Writer, data string) error {
	if _, err := io.WriteString(w, osc52Sequence(data)); err != nil {
		return fmt.Errorf("failed to write OSC 52 sequence: %w", err)
	}
	return nil
}
