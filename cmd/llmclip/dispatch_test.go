package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type fakeSink struct {
	written []string
	err     error
}

func (s *fakeSink) write(data string) error {
	if s.err != nil {
		return s.err
	}
	s.written = append(s.written, data)
	return nil
}

func TestDispatchQuietMode(t *testing.T) {
	var stdout, stderr bytes.Buffer
	sink := &fakeSink{}

	cfg := runConfig{echo: echoQuiet}
	if err := dispatch("payload", 2, cfg, sink.write, &stdout, &stderr); err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}

	if stdout.Len() != 0 {
		t.Errorf("quiet mode echoed to stdout: %q", stdout.String())
	}
	if len(sink.written) != 1 || sink.written[0] != "payload" {
		t.Errorf("clipboard did not receive the payload: %v", sink.written)
	}
	if !strings.Contains(stderr.String(), "Copied 2 file(s) to clipboard") {
		t.Errorf("summary line missing: %q", stderr.String())
	}
}

func TestDispatchPrintMode(t *testing.T) {
	var stdout, stderr bytes.Buffer
	sink := &fakeSink{}

	cfg := runConfig{echo: echoPrint}
	if err := dispatch("payload", 1, cfg, sink.write, &stdout, &stderr); err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}

	if stdout.String() != "payload" {
		t.Errorf("print mode stdout = %q, want the payload", stdout.String())
	}
	if len(sink.written) != 1 || sink.written[0] != stdout.String() {
		t.Errorf("stdout echo and clipboard content differ")
	}
}

func TestDispatchTreeOnlyMode(t *testing.T) {
	var stdout, stderr bytes.Buffer
	sink := &fakeSink{}

	// Tree-only forces visible output even in quiet mode and
	// suppresses the summary line.
	cfg := runConfig{echo: echoQuiet, treeOnly: true}
	if err := dispatch("tree\n", 0, cfg, sink.write, &stdout, &stderr); err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}

	if stdout.String() != "tree\n" {
		t.Errorf("tree-only mode did not echo: %q", stdout.String())
	}
	if strings.Contains(stderr.String(), "Copied") {
		t.Errorf("tree-only mode emitted the summary line: %q", stderr.String())
	}
}

func TestDispatchEmptyPayloadStillWritesClipboard(t *testing.T) {
	var stdout, stderr bytes.Buffer
	sink := &fakeSink{}

	cfg := runConfig{echo: echoQuiet}
	if err := dispatch("", 0, cfg, sink.write, &stdout, &stderr); err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if len(sink.written) != 1 || sink.written[0] != "" {
		t.Errorf("clipboard should receive an empty string, got %v", sink.written)
	}
	if !strings.Contains(stderr.String(), "Copied 0 file(s) to clipboard") {
		t.Errorf("summary line missing: %q", stderr.String())
	}
}

func TestDispatchSinkErrorPropagates(t *testing.T) {
	var stdout, stderr bytes.Buffer
	sink := &fakeSink{err: errors.New("backend gone")}

	cfg := runConfig{echo: echoQuiet}
	err := dispatch("payload", 1, cfg, sink.write, &stdout, &stderr)
	if err == nil || !strings.Contains(err.Error(), "backend gone") {
		t.Fatalf("expected wrapped sink error, got %v", err)
	}
}
