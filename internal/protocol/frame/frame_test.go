package frame

import (
	"errors"
	"testing"

	"github.com/danmuck/cbusctl/internal/protocol/header"
	"github.com/danmuck/cbusctl/internal/testutil/testlog"
)

func TestParseStandardFrame(t *testing.T) {
	testlog.Start(t)
	f, err := Parse(":SB780N400003;")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f.Header != (header.Header{Major: 2, Minor: 3, CANID: 60}) {
		t.Fatalf("unexpected header: %+v", f.Header)
	}
	if f.Body != "400003" {
		t.Fatalf("unexpected body: %q", f.Body)
	}
	if f.Flag != FlagNormal || f.Remote() {
		t.Fatalf("unexpected flag: %q", f.Flag)
	}
	if f.Raw != ":SB780N400003;" {
		t.Fatalf("unexpected raw: %q", f.Raw)
	}
}

func TestParseRemoteFlag(t *testing.T) {
	testlog.Start(t)
	f, err := Parse(":SB780R0D;")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !f.Remote() {
		t.Fatalf("expected remote flag")
	}
}

func TestParseTooShort(t *testing.T) {
	testlog.Start(t)
	for _, in := range []string{"", ":", ":SB780N;", ":SB78N0;"} {
		if _, err := Parse(in); !errors.Is(err, ErrTooShort) {
			t.Fatalf("parse %q: expected ErrTooShort, got %v", in, err)
		}
	}
}

func TestParseMissingMarkers(t *testing.T) {
	testlog.Start(t)
	for _, in := range []string{"SB780N0D;", ":SB780N0D", "xSB780N0Dx"} {
		if _, err := Parse(in); !errors.Is(err, ErrMissingMarker) {
			t.Fatalf("parse %q: expected ErrMissingMarker, got %v", in, err)
		}
	}
}

func TestParseUnsupportedFrameType(t *testing.T) {
	testlog.Start(t)
	if _, err := Parse(":X00080004N0D;"); !errors.Is(err, ErrUnsupportedFrameType) {
		t.Fatalf("expected ErrUnsupportedFrameType, got %v", err)
	}
}

func TestParseMalformedHeader(t *testing.T) {
	testlog.Start(t)
	if _, err := Parse(":SB7G0N0D;"); !errors.Is(err, header.ErrMalformedHeader) {
		t.Fatalf("expected ErrMalformedHeader, got %v", err)
	}
}

func TestParseMalformedBody(t *testing.T) {
	testlog.Start(t)
	for _, in := range []string{":SB780N0D1;", ":SB780N4G0003;", ":SB780NE1010203040506070809;"} {
		if _, err := Parse(in); !errors.Is(err, ErrMalformedBody) {
			t.Fatalf("parse %q: expected ErrMalformedBody, got %v", in, err)
		}
	}
}

func TestPrefixAndBuild(t *testing.T) {
	testlog.Start(t)
	h := header.Header{Major: 2, Minor: 3, CANID: 60}
	prefix, err := Prefix(h)
	if err != nil {
		t.Fatalf("prefix: %v", err)
	}
	if prefix != ":SB780N" {
		t.Fatalf("unexpected prefix: %q", prefix)
	}
	raw, err := Build(h, "400003")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if raw != ":SB780N400003;" {
		t.Fatalf("unexpected frame: %q", raw)
	}
	f, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse built frame: %v", err)
	}
	if f.Header != h || f.Body != "400003" {
		t.Fatalf("built frame mismatch: %+v", f)
	}
}

func TestBuildRejectsInvalidInput(t *testing.T) {
	testlog.Start(t)
	if _, err := Build(header.Header{}, ""); !errors.Is(err, ErrTooShort) {
		t.Fatalf("expected ErrTooShort, got %v", err)
	}
	if _, err := Build(header.Header{}, "0"); !errors.Is(err, ErrTooShort) {
		t.Fatalf("expected ErrTooShort, got %v", err)
	}
	if _, err := Build(header.Header{}, "0D0"); !errors.Is(err, ErrMalformedBody) {
		t.Fatalf("expected ErrMalformedBody, got %v", err)
	}
	if _, err := Build(header.Header{CANID: 200}, "0D"); !errors.Is(err, header.ErrInvalidCANID) {
		t.Fatalf("expected ErrInvalidCANID, got %v", err)
	}
}
