package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/nguyentantai21042004/tubescribe/internal/processor"
)

const (
	wsReadTimeout  = 30 * time.Second
	wsWriteTimeout = 10 * time.Second
)

func (h *Handler) upgrader() *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
}

func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range h.origins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}

// TranscribeStream runs the same pipeline as Transcribe but reports each stage as it starts.
// The client sends one {"url"} message and receives stage events, then a done or failed event.
func (h *Handler) TranscribeStream(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader().Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn(r.Context(), "Websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	var req TranscribeRequest
	conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
	if err := conn.ReadJSON(&req); err != nil {
		h.logger.Warn(ctx, "Invalid websocket request: %v", err)
		h.writeEvent(conn, StageEvent{Stage: processor.StageFailed, Error: processor.MsgMissingURL})
		return
	}
	conn.SetReadDeadline(time.Time{})

	// A closed connection cancels the pipeline. Only this goroutine reads.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	res, err := h.processor.Handle(ctx, processor.Request{
		URL: req.URL,
		OnStage: func(stage processor.Stage) {
			if stage == processor.StageDone || stage == processor.StageFailed {
				return
			}
			h.writeEvent(conn, StageEvent{Stage: stage})
		},
	})
	if err != nil {
		h.writeEvent(conn, StageEvent{Stage: processor.StageFailed, Error: processor.MessageOf(err)})
	} else {
		h.writeEvent(conn, DoneEvent{Stage: processor.StageDone, Transcript: res.Transcript, Summary: res.Summary})
	}

	conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func (h *Handler) writeEvent(conn *websocket.Conn, ev any) {
	conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	if err := conn.WriteJSON(ev); err != nil {
		h.logger.Debug(context.Background(), "Websocket write failed: %v", err)
	}
}
