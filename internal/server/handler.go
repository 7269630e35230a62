package server

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/nguyentantai21042004/tubescribe/internal/export"
	"github.com/nguyentantai21042004/tubescribe/internal/logger"
	"github.com/nguyentantai21042004/tubescribe/internal/processor"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

var reUnsafeFilename = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

type Handler struct {
	processor processor.Processor
	exporter  export.Exporter
	logger    logger.Logger
	origins   []string
}

func NewHandler(proc processor.Processor, exp export.Exporter, log logger.Logger, origins []string) *Handler {
	return &Handler{
		processor: proc,
		exporter:  exp,
		logger:    log,
		origins:   origins,
	}
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, StatusResponse{Status: statusRunning})
}

// Transcribe answers with the full result or a single error; stage failures all map to 500.
func (h *Handler) Transcribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req TranscribeRequest
	if err := ParseJSON(w, r, &req); err != nil {
		h.logger.Warn(ctx, "Invalid transcribe body: %v", err)
		WriteError(w, http.StatusBadRequest, processor.MsgMissingURL)
		return
	}

	res, err := h.processor.Handle(ctx, processor.Request{URL: req.URL})
	if err != nil {
		if processor.KindOf(err) == processor.KindInvalidInput {
			WriteError(w, http.StatusBadRequest, processor.MsgMissingURL)
			return
		}
		WriteError(w, http.StatusInternalServerError, processor.MessageOf(err))
		return
	}

	h.logger.Info(ctx, "Sending response to client")
	WriteJSON(w, http.StatusOK, TranscribeResponse{
		Transcript: res.Transcript,
		Summary:    res.Summary,
	})
}

func (h *Handler) ExportDOCX(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var doc export.Document
	if err := ParseJSON(w, r, &doc); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	data, err := h.exporter.DOCX(ctx, doc)
	if err != nil {
		if errors.Is(err, export.ErrEmptyDocument) {
			WriteError(w, http.StatusBadRequest, "Nothing to export")
			return
		}
		h.logger.Error(ctx, "Export failed: %v", err)
		WriteError(w, http.StatusInternalServerError, "Export failed")
		return
	}

	w.Header().Set("Content-Type", docxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename(doc.Title)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Warn(ctx, "Failed to write export: %v", err)
	}
}

// exportFilename turns a free-form title into a safe attachment name
func exportFilename(title string) string {
	name := reUnsafeFilename.ReplaceAllString(strings.TrimSpace(title), "-")
	name = strings.Trim(name, "-.")
	if len(name) > 50 {
		name = strings.TrimRight(name[:50], "-.")
	}
	if name == "" {
		name = "transcript"
	}
	return name + ".docx"
}
