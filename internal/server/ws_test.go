package server

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/nguyentantai21042004/tubescribe/internal/processor"
)

func dialStream(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/transcribe/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// streamEvent decodes any message of the stream; raw keeps the exact JSON.
type streamEvent struct {
	Stage      processor.Stage `json:"stage"`
	Transcript string          `json:"transcript"`
	Summary    string          `json:"summary"`
	Error      string          `json:"error"`
	raw        string
}

// readEvents collects events until the server sends a terminal stage
func readEvents(t *testing.T, conn *websocket.Conn) []streamEvent {
	t.Helper()
	var events []streamEvent
	for {
		conn.SetReadDeadline(time.Now().Add(5 * time.Second))
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read event after %v: %v", events, err)
		}
		var ev streamEvent
		if err := json.Unmarshal(data, &ev); err != nil {
			t.Fatalf("decode event %q: %v", data, err)
		}
		ev.raw = string(data)
		events = append(events, ev)
		if ev.Stage == processor.StageDone || ev.Stage == processor.StageFailed {
			return events
		}
	}
}

func stagesOf(events []streamEvent) []processor.Stage {
	out := make([]processor.Stage, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.Stage)
	}
	return out
}

func TestTranscribeStream_Success(t *testing.T) {
	proc := &fakeProcessor{fn: func(ctx context.Context, req processor.Request) (*processor.Result, error) {
		for _, s := range []processor.Stage{processor.StageDownloading, processor.StageTranscribing, processor.StageSummarizing, processor.StageDone} {
			req.OnStage(s)
		}
		return &processor.Result{Transcript: "hello world", Summary: "A greeting."}, nil
	}}
	srv := httptest.NewServer(newTestRouter(proc, &fakeExporter{}))
	defer srv.Close()

	conn := dialStream(t, srv)
	if err := conn.WriteJSON(TranscribeRequest{URL: "https://youtu.be/x"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	events := readEvents(t, conn)
	want := []processor.Stage{processor.StageDownloading, processor.StageTranscribing, processor.StageSummarizing, processor.StageDone}
	if got := stagesOf(events); !reflect.DeepEqual(got, want) {
		t.Fatalf("stages = %v, want %v", got, want)
	}
	last := events[len(events)-1]
	if last.Transcript != "hello world" || last.Summary != "A greeting." {
		t.Errorf("final event = %+v", last)
	}
}

func TestTranscribeStream_EmptyTranscriptKeepsFields(t *testing.T) {
	proc := &fakeProcessor{fn: func(ctx context.Context, req processor.Request) (*processor.Result, error) {
		return &processor.Result{Transcript: "", Summary: "Nothing was said."}, nil
	}}
	srv := httptest.NewServer(newTestRouter(proc, &fakeExporter{}))
	defer srv.Close()

	conn := dialStream(t, srv)
	if err := conn.WriteJSON(TranscribeRequest{URL: "u"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	events := readEvents(t, conn)
	last := events[len(events)-1]
	if last.Stage != processor.StageDone {
		t.Fatalf("final event = %+v", last)
	}
	if !strings.Contains(last.raw, `"transcript":""`) {
		t.Errorf("done event dropped the empty transcript: %s", last.raw)
	}
	if strings.Contains(last.raw, `"error"`) {
		t.Errorf("done event carries an error field: %s", last.raw)
	}
}

func TestTranscribeStream_FailureHasNoResultFields(t *testing.T) {
	proc := &fakeProcessor{fn: func(ctx context.Context, req processor.Request) (*processor.Result, error) {
		return nil, &processor.Error{Kind: processor.KindSummarizationFailed, Message: processor.MsgSummarizationFailed}
	}}
	srv := httptest.NewServer(newTestRouter(proc, &fakeExporter{}))
	defer srv.Close()

	conn := dialStream(t, srv)
	if err := conn.WriteJSON(TranscribeRequest{URL: "u"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	last := readEvents(t, conn)
	raw := last[len(last)-1].raw
	if strings.Contains(raw, `"transcript":`) || strings.Contains(raw, `"summary":`) {
		t.Errorf("failed event carries result fields: %s", raw)
	}
}

func TestTranscribeStream_Failure(t *testing.T) {
	proc := &fakeProcessor{fn: func(ctx context.Context, req processor.Request) (*processor.Result, error) {
		req.OnStage(processor.StageDownloading)
		req.OnStage(processor.StageFailed)
		return nil, &processor.Error{Kind: processor.KindDownloadFailed, Message: processor.MsgDownloadFailed}
	}}
	srv := httptest.NewServer(newTestRouter(proc, &fakeExporter{}))
	defer srv.Close()

	conn := dialStream(t, srv)
	if err := conn.WriteJSON(TranscribeRequest{URL: "u"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	events := readEvents(t, conn)
	want := []processor.Stage{processor.StageDownloading, processor.StageFailed}
	if got := stagesOf(events); !reflect.DeepEqual(got, want) {
		t.Fatalf("stages = %v, want %v", got, want)
	}
	last := events[len(events)-1]
	if last.Error != processor.MsgDownloadFailed || last.Transcript != "" || last.Summary != "" {
		t.Errorf("final event = %+v", last)
	}
}

func TestTranscribeStream_MalformedRequest(t *testing.T) {
	proc := &fakeProcessor{}
	srv := httptest.NewServer(newTestRouter(proc, &fakeExporter{}))
	defer srv.Close()

	conn := dialStream(t, srv)
	if err := conn.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
		t.Fatalf("write: %v", err)
	}

	events := readEvents(t, conn)
	if len(events) != 1 || events[0].Error != processor.MsgMissingURL {
		t.Errorf("events = %+v", events)
	}
	if proc.calls != 0 {
		t.Errorf("processor called %d times", proc.calls)
	}
}

func TestCheckOrigin(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    bool
	}{
		{name: "wildcard", allowed: []string{"*"}, origin: "http://evil.test", want: true},
		{name: "listed", allowed: []string{"http://localhost:3000"}, origin: "http://localhost:3000", want: true},
		{name: "not listed", allowed: []string{"http://localhost:3000"}, origin: "http://evil.test", want: false},
		{name: "no origin header", allowed: []string{"http://localhost:3000"}, origin: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{origins: tt.allowed}
			r := httptest.NewRequest("GET", "/api/transcribe/ws", nil)
			if tt.origin != "" {
				r.Header.Set("Origin", tt.origin)
			}
			if got := h.checkOrigin(r); got != tt.want {
				t.Errorf("checkOrigin = %v, want %v", got, tt.want)
			}
		})
	}
}
