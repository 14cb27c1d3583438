package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunDemo(t *testing.T) {
	tests := []struct {
		backend string
		magic   []byte
	}{
		{"raster", []byte("\x89PNG")},
		{"pdf", []byte("%PDF-")},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "chart")
			var stderr bytes.Buffer
			err := run([]string{"-backend", tt.backend, "-output", out, "-width", "200", "-height", "120", "-stroke", "mitered"}, &stderr)
			if err != nil {
				t.Fatalf("run() = %v; stderr: %s", err, stderr.String())
			}
			data, err := os.ReadFile(out)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.HasPrefix(data, tt.magic) {
				t.Errorf("output starts with %q", data[:min(8, len(data))])
			}
			if !strings.Contains(stderr.String(), "chart saved") {
				t.Errorf("stderr = %q, want a save message", stderr.String())
			}
		})
	}
}

func TestRunScene(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "scene.yaml")
	doc := "width: 64\nheight: 32\nops:\n  - kind: rect\n    points: [[0, 0], [64, 32]]\n    color: \"#0000ff\"\n    filled: true\n"
	if err := os.WriteFile(scenePath, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out.png")
	logFile := filepath.Join(dir, "demo.log")

	var stderr bytes.Buffer
	if err := run([]string{"-scene", scenePath, "-output", out, "-log-level", "debug", "-log-format", "json", "-log-file", logFile}, &stderr); err != nil {
		t.Fatalf("run() = %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output missing: %v", err)
	}
	logged, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(logged), `"msg":"recorded scene"`) {
		t.Errorf("log file = %q", logged)
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("width: -1\nheight: 10\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown backend", []string{"-backend", "svg", "-output", filepath.Join(dir, "x")}, "unknown backend"},
		{"invalid scene", []string{"-scene", bad}, "invalid document"},
		{"missing scene", []string{"-scene", filepath.Join(dir, "nope.yaml")}, "no such file"},
		{"bad size", []string{"-width", "0"}, "invalid size"},
		{"bad stroke mode", []string{"-stroke", "round"}, "unknown stroke mode"},
		{"bad flag", []string{"-nope"}, "flag provided but not defined"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args, &bytes.Buffer{})
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("run() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}
