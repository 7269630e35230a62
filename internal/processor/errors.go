package processor

import (
	"errors"
	"fmt"
)

// Kind classifies where a request failed.
type Kind string

const (
	KindInvalidInput        Kind = "invalid_input"
	KindDownloadFailed      Kind = "download_failed"
	KindTranscriptionFailed Kind = "transcription_failed"
	KindSummarizationFailed Kind = "summarization_failed"
	KindCleanupFailed       Kind = "cleanup_failed"
	KindInternal            Kind = "internal"
)

// Client-facing messages
const (
	MsgMissingURL          = "Missing YouTube URL"
	MsgDownloadFailed      = "Failed to download audio from the provided URL."
	MsgTranscriptionFailed = "Whisper CLI failed. Make sure it is installed and working."
	MsgTranscriptMissing   = "Transcription finished but no transcript file was produced."
	MsgSummarizationFailed = "Failed to summarize the transcript."
	MsgWorkspaceFailed     = "Failed to prepare a working directory."
	MsgDefault             = "Transcription failed"
)

// Error is the tagged failure returned by Handle.
// Message is safe to show a client; Err keeps the collaborator detail for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = MsgDefault
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// KindOf reports the Kind of err, or KindInternal when err is not an *Error
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the client-facing message of err, falling back to MsgDefault
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return MsgDefault
}
