package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestParseFlags_Defaults(t *testing.T) {
	cfg, exit, code := parseFlags([]string{})
	if exit {
		t.Fatalf("unexpected exit with code %d", code)
	}
	if cfg != defaultConfig() {
		t.Errorf("cfg = %+v, want %+v", cfg, defaultConfig())
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"-mode", "ntt",
		"-count", "7",
		"-width", "3",
		"-workers", "2",
		"-difficulty", "4.5",
		"-size", "512",
		"-seed", "0x2a",
		"-loglevel", "warn",
		"-metrics",
	}
	cfg, exit, _ := parseFlags(args)
	if exit {
		t.Fatal("unexpected exit")
	}
	want := config{
		Mode: "ntt", Count: 7, Width: 3, Workers: 2, Difficulty: 4.5,
		Size: 512, Seed: 42, LogLevel: "warn", Metrics: true,
	}
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	for _, args := range [][]string{
		{"-seed", "-1"},
		{"-count", "many"},
		{"-unknown"},
	} {
		_, exit, code := parseFlags(args)
		if !exit || code != 2 {
			t.Errorf("parseFlags(%v) = exit %v code %d, want exit with 2", args, exit, code)
		}
	}
}

func TestParseFlags_Version(t *testing.T) {
	_, exit, code := parseFlags([]string{"-version"})
	if !exit || code != 0 {
		t.Errorf("exit %v code %d, want exit with 0", exit, code)
	}
}

func runArgs(t *testing.T, args ...string) (int, string) {
	t.Helper()
	var out bytes.Buffer
	code := run(context.Background(), append(args, "-loglevel", "error"), &out)
	return code, out.String()
}

func TestRun_Compress(t *testing.T) {
	for _, width := range []string{"1", "3", "4"} {
		code, out := runArgs(t, "-mode", "compress", "-count", "9", "-width", width)
		if code != 0 {
			t.Fatalf("width %s: exit code %d", width, code)
		}
		if !strings.Contains(out, "compressed 9 pairs") {
			t.Errorf("width %s: output %q", width, out)
		}
	}
	// The last hash does not depend on the batch width.
	_, a := runArgs(t, "-count", "5", "-width", "1")
	_, b := runArgs(t, "-count", "5", "-width", "4")
	if strings.SplitN(a, "\n", 2)[0] != strings.SplitN(b, "\n", 2)[0] {
		t.Errorf("hash differs across widths:\n%s\n%s", a, b)
	}
}

func TestRun_Pow(t *testing.T) {
	code, out := runArgs(t, "-mode", "pow", "-difficulty", "3", "-workers", "2")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.Contains(out, "nonce: ") {
		t.Errorf("output %q", out)
	}
}

func TestRun_NTT(t *testing.T) {
	for _, size := range []string{"512", "1024", "2048"} {
		code, out := runArgs(t, "-mode", "ntt", "-size", size, "-workers", "2")
		if code != 0 {
			t.Fatalf("size %s: exit code %d", size, code)
		}
		if !strings.Contains(out, "round trip ok") {
			t.Errorf("size %s: output %q", size, out)
		}
	}
}

func TestRun_Metrics(t *testing.T) {
	code, out := runArgs(t, "-count", "3", "-metrics")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	var snap map[string]any
	if err := json.Unmarshal([]byte(out[strings.Index(out, "{"):]), &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if _, ok := snap["skyscraper.compressions"]; !ok {
		t.Errorf("snapshot lacks skyscraper.compressions: %v", snap)
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"unknown mode", []string{"-mode", "sha"}, 2},
		{"bad log level", []string{"-loglevel", "loud"}, 2},
		{"bad width", []string{"-width", "2"}, 1},
		{"bad size", []string{"-mode", "ntt", "-size", "1000"}, 1},
		{"bad difficulty", []string{"-mode", "pow", "-difficulty", "90"}, 1},
		{"difficulty at bound", []string{"-mode", "pow", "-difficulty", "80"}, 1},
		{"negative difficulty", []string{"-mode", "pow", "-difficulty", "-2"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			var out bytes.Buffer
			args := append([]string{"-loglevel", "error"}, tt.args...)
			if code := run(ctx, args, &out); code != tt.code {
				t.Errorf("exit code %d, want %d", code, tt.code)
			}
		})
	}
}
