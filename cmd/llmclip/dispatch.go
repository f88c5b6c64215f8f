package main

import (
	"fmt"
	"io"
)

// dispatch sends the payload to the clipboard sink, echoes it to
// stdout when print mode or tree-only mode asks for visible output,
// and reports the copy count on the diagnostic stream. Tree-only mode
// always echoes and suppresses the summary line.
func dispatch(payload string, fileCount int, cfg runConfig, sink clipboardSink, stdout, stderr io.Writer) error {
	if err := sink(payload); err != nil {
		return fmt.Errorf("clipboard write failed: %w", err)
	}
	if cfg.echo == echoPrint || cfg.treeOnly {
		if _, err := io.WriteString(stdout, payload); err != nil {
			return fmt.Errorf("stdout write failed: %w", err)
		}
	}
	if !cfg.treeOnly {
		fmt.Fprintf(stderr, "Copied %d file(s) to clipboard\n", fileCount)
	}
	return nil
}
