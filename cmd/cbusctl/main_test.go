package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/danmuck/cbusctl/internal/config"
	"github.com/danmuck/cbusctl/internal/protocol"
	"github.com/danmuck/cbusctl/internal/protocol/schema"
	"github.com/danmuck/cbusctl/internal/testutil/testlog"
	"github.com/danmuck/cbusctl/internal/transport"
	"github.com/rs/zerolog"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDecodeArgs(t *testing.T) {
	testlog.Start(t)
	out, err := execute(t, "", "decode", ":SB780N400003;", ":SB780N0B;")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines: %q", len(lines), out)
	}
	if lines[0] != ":SB780N400003;\tRLOC AddrHigh_AddrLow=3" {
		t.Fatalf("line0 got=%q", lines[0])
	}
	if !strings.Contains(lines[1], "UNKNOWN(0B)") {
		t.Fatalf("line1 got=%q", lines[1])
	}
}

func TestDecodeStdinJSON(t *testing.T) {
	testlog.Start(t)
	out, err := execute(t, "noise :SB780N400003;\n:XB780N0A;\n", "decode", "--json")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines: %q", len(lines), out)
	}
	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	msg, _ := first["message"].(map[string]any)
	if msg["opcode"] != "RLOC" || msg["AddrHigh_AddrLow"] != float64(3) {
		t.Fatalf("unexpected first record: %v", first)
	}
	var second map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if second["kind"] != "unsupported_frame_type" {
		t.Fatalf("unexpected second record: %v", second)
	}
}

func TestEncodeCommands(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"encode", "alloc", "3", "--long", "--can-id", "60"}, ":SA780N40C003;"},
		{[]string{"encode", "speed", "1", "0x10", "--can-id", "60"}, ":SA780N470191;"},
		{[]string{"encode", "speed", "1", "16", "--reverse", "--can-id", "60"}, ":SA780N470111;"},
		{[]string{"encode", "track-on", "--can-id", "60"}, ":S8780N09;"},
	}
	for _, tc := range cases {
		out, err := execute(t, "", tc.args...)
		if err != nil {
			t.Fatalf("%v: %v", tc.args, err)
		}
		if got := strings.TrimSpace(out); got != tc.want {
			t.Fatalf("%v got=%q want=%q", tc.args, got, tc.want)
		}
	}
}

func TestEncodeErrors(t *testing.T) {
	testlog.Start(t)
	if _, err := execute(t, "", "encode", "alloc", "150"); !errors.Is(err, protocol.ErrInvalidAddress) {
		t.Fatalf("short address got err=%v", err)
	}
	if _, err := execute(t, "", "encode", "warp", "9"); !errors.Is(err, errUsage) {
		t.Fatalf("unknown command got err=%v", err)
	}
	if _, err := execute(t, "", "encode", "speed", "1"); !errors.Is(err, errUsage) {
		t.Fatalf("missing argument got err=%v", err)
	}
	if _, err := execute(t, "", "encode", "release", "300"); !errors.Is(err, errUsage) {
		t.Fatalf("overflowing argument got err=%v", err)
	}
}

func TestEncoderOutputsDecode(t *testing.T) {
	testlog.Start(t)
	b := config.Default().Builder()
	samples := map[string][]string{
		"discover": nil,
		"param":    {"256", "1"},
		"steal":    {"3"},
		"fgroup":   {"1", "1", "0x1F"},
		"fon":      {"1", "28"},
		"acc-on":   {"0x00010002"},
		"acc-off":  {"7"},
	}
	for name, args := range samples {
		raw, err := encodeCommand(b, encodeFlags{}, name, args)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		msg, err := protocol.DecodeFrame(raw)
		if err != nil || msg.Outcome != protocol.OutcomeComplete {
			t.Fatalf("%s: frame %q decoded to %+v err=%v", name, raw, msg, err)
		}
	}
}

func TestOpcodesLookup(t *testing.T) {
	testlog.Start(t)
	out, err := execute(t, "", "opcodes", "rloc")
	if err != nil {
		t.Fatalf("opcodes: %v", err)
	}
	if !strings.Contains(out, "40") || !strings.Contains(out, "RLOC") || !strings.Contains(out, "AddrHigh_AddrLow") {
		t.Fatalf("unexpected output: %q", out)
	}
	if _, err := execute(t, "", "opcodes", "nope"); !errors.Is(err, protocol.ErrUnknownOpcode) {
		t.Fatalf("got err=%v", err)
	}
	out, err = execute(t, "", "opcodes")
	if err != nil {
		t.Fatalf("opcodes: %v", err)
	}
	if n := strings.Count(out, "\n"); n != len(schema.Entries())+1 {
		t.Fatalf("listed %d lines", n)
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "cbusctl.toml")
	if _, err := execute(t, "", "config", "init", "--config", path); err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := execute(t, "", "config", "init", "--config", path); err == nil {
		t.Fatalf("expected init to refuse overwrite")
	}
	if _, err := execute(t, "", "config", "init", "--force", "--config", path); err != nil {
		t.Fatalf("forced init: %v", err)
	}
	out, err := execute(t, "", "config", "validate", "--config", path)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out, "port=/dev/ttyACM0") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestExampleConfigLoads(t *testing.T) {
	testlog.Start(t)
	cfg, err := config.Load("ex.config.toml")
	if err != nil {
		t.Fatalf("load example: %v", err)
	}
	if cfg.Node.CANID != 124 || cfg.Node.NodeNumber != 3001 || cfg.Metrics.Addr == "" {
		t.Fatalf("unexpected example config: %+v", cfg)
	}
}

func TestMonitorConfigPortOverride(t *testing.T) {
	testlog.Start(t)
	missing := filepath.Join(t.TempDir(), "absent.toml")
	if _, err := monitorConfig(missing, ""); err == nil {
		t.Fatalf("expected error without config or port")
	}
	cfg, err := monitorConfig(missing, "/dev/ttyUSB1")
	if err != nil {
		t.Fatalf("monitorConfig: %v", err)
	}
	if cfg.Serial.Port != "/dev/ttyUSB1" || cfg.Serial.Baud != 115200 {
		t.Fatalf("unexpected config: %+v", cfg.Serial)
	}
	broken := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(broken, []byte("[serial\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := monitorConfig(broken, "/dev/ttyUSB1"); err == nil {
		t.Fatalf("expected a broken file to fail even with --port")
	}
}

type loopPort struct {
	mu   sync.Mutex
	data []byte
}

func (p *loopPort) Read(buf []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := copy(buf, p.data)
	p.data = p.data[n:]
	return n, nil
}

func (p *loopPort) Write(buf []byte) (int, error) { return len(buf), nil }
func (p *loopPort) Close() error                  { return nil }

func TestRunMonitorLogsFrames(t *testing.T) {
	testlog.Start(t)
	cfg := config.Default()
	cfg.Serial.Port = "fake"
	port := &loopPort{data: []byte(":SB780N400003;:SB780N0B;")}
	var logs bytes.Buffer
	logger := zerolog.New(&logs)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	err := runMonitor(ctx, cfg, func() (transport.Port, error) { return port, nil }, logger)
	if err != nil {
		t.Fatalf("runMonitor: %v", err)
	}
	out := logs.String()
	if !strings.Contains(out, `"message":"RLOC"`) || !strings.Contains(out, `"AddrHigh_AddrLow":3`) {
		t.Fatalf("missing RLOC line: %s", out)
	}
	if !strings.Contains(out, `"opcode":"UNKNOWN"`) {
		t.Fatalf("missing unknown opcode line: %s", out)
	}
}

func TestRootConfiguresLoggingBeforeSubcommands(t *testing.T) {
	testlog.Start(t)
	calls := 0
	prev := configureLogging
	configureLogging = func() { calls++ }
	defer func() { configureLogging = prev }()

	for _, args := range [][]string{
		{"decode", ":SB780N0B;"},
		{"encode", "discover"},
		{"opcodes", "rloc"},
	} {
		before := calls
		if _, err := execute(t, "", args...); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		if calls != before+1 {
			t.Fatalf("%v: logging configured %d times want=1", args, calls-before)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, os.ErrClosed }

func TestDecodeReportsWriteErrors(t *testing.T) {
	testlog.Start(t)
	for _, asJSON := range []bool{false, true} {
		if err := writeDecoded(failingWriter{}, ":SB780N400003;", asJSON); !errors.Is(err, os.ErrClosed) {
			t.Fatalf("json=%v valid frame got err=%v want=%v", asJSON, err, os.ErrClosed)
		}
		if err := writeDecoded(failingWriter{}, ":XB780N0A;", asJSON); !errors.Is(err, os.ErrClosed) {
			t.Fatalf("json=%v bad frame got err=%v want=%v", asJSON, err, os.ErrClosed)
		}
	}
	if err := decodeStream(strings.NewReader(":SB780N400003;"), failingWriter{}, true); !errors.Is(err, os.ErrClosed) {
		t.Fatalf("stream got err=%v want=%v", err, os.ErrClosed)
	}
}
