package observability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danmuck/cbusctl/internal/testutil/testlog"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
)

func TestRegisterMetricsIsIdempotent(t *testing.T) {
	testlog.Start(t)
	RegisterMetrics()
	RegisterMetrics()
}

func TestRecordersIncrementCounters(t *testing.T) {
	testlog.Start(t)
	beforeBytes := testutil.ToFloat64(bytesRead)
	beforeFrames := testutil.ToFloat64(framesTokenized)
	RecordRead(24, 2)
	RecordRead(0, 0)
	if got := testutil.ToFloat64(bytesRead) - beforeBytes; got != 24 {
		t.Fatalf("bytes got=%v want=24", got)
	}
	if got := testutil.ToFloat64(framesTokenized) - beforeFrames; got != 2 {
		t.Fatalf("frames got=%v want=2", got)
	}

	decoded := decodedMessages.WithLabelValues("RLOC", "complete")
	before := testutil.ToFloat64(decoded)
	RecordDecoded("RLOC", "complete")
	if got := testutil.ToFloat64(decoded) - before; got != 1 {
		t.Fatalf("decoded got=%v want=1", got)
	}

	failures := decodeFailures.WithLabelValues("too_short")
	before = testutil.ToFloat64(failures)
	RecordDecodeFailure("too_short")
	RecordDecodeFailure("too_short")
	if got := testutil.ToFloat64(failures) - before; got != 2 {
		t.Fatalf("failures got=%v want=2", got)
	}

	sent := framesSent.WithLabelValues("DSPD")
	before = testutil.ToFloat64(sent)
	RecordFrameSent("DSPD")
	if got := testutil.ToFloat64(sent) - before; got != 1 {
		t.Fatalf("sent got=%v want=1", got)
	}

	lost := transportErrors.WithLabelValues("lost")
	before = testutil.ToFloat64(lost)
	RecordTransportError("lost")
	if got := testutil.ToFloat64(lost) - before; got != 1 {
		t.Fatalf("transport errors got=%v want=1", got)
	}
}

func TestServerHealth(t *testing.T) {
	testlog.Start(t)
	up := true
	s := NewServer("127.0.0.1:0", zerolog.Nop(), func() bool { return up })

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status got=%d want=%d", rec.Code, http.StatusOK)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" || body["connected"] != true {
		t.Fatalf("unexpected body: %v", body)
	}

	up = false
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status got=%d want=%d", rec.Code, http.StatusServiceUnavailable)
	}
}

func TestServerMetricsEndpoint(t *testing.T) {
	testlog.Start(t)
	s := NewServer("127.0.0.1:0", zerolog.Nop(), nil)
	RecordDecoded("ACON", "complete")

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status got=%d want=%d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), `cbusctl_decode_messages_total{opcode="ACON",outcome="complete"}`) {
		t.Fatalf("metrics output missing decode counter")
	}
}

func TestRequestMetricsUseRoutePath(t *testing.T) {
	testlog.Start(t)
	s := NewServer("127.0.0.1:0", zerolog.Nop(), nil)
	miss := httpRequests.WithLabelValues(http.MethodGet, "unmatched", "404")
	before := testutil.ToFloat64(miss)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope/123", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status got=%d want=%d", rec.Code, http.StatusNotFound)
	}
	if got := testutil.ToFloat64(miss) - before; got != 1 {
		t.Fatalf("unmatched requests got=%v want=1", got)
	}
}

func TestServerRunStopsOnCancel(t *testing.T) {
	testlog.Start(t)
	s := NewServer("127.0.0.1:0", zerolog.Nop(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	time.Sleep(20 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("server did not stop")
	}
}
