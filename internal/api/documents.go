package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/creditvision/riskd/internal/borrower"
	"github.com/creditvision/riskd/internal/events"
	"github.com/creditvision/riskd/internal/extract"
	"github.com/creditvision/riskd/internal/ocr"
)

type DocumentsHandler struct {
	recognizer   ocr.Recognizer
	timeout      time.Duration
	maxFileBytes int64
	allowedTypes []string
	events       events.Client
	logger       *slog.Logger
}

func NewDocumentsHandler(recognizer ocr.Recognizer, timeout time.Duration, maxFileBytes int64, allowedTypes []string, ev events.Client, logger *slog.Logger) *DocumentsHandler {
	return &DocumentsHandler{
		recognizer:   recognizer,
		timeout:      timeout,
		maxFileBytes: maxFileBytes,
		allowedTypes: allowedTypes,
		events:       ev,
		logger:       logger,
	}
}

type ExtractResponse struct {
	Success       bool            `json:"success"`
	ExtractedData borrower.Record `json:"extractedData"`
	RawText       string          `json:"rawText"`
	Message       string          `json:"message"`
}

func (h *DocumentsHandler) Extract(w http.ResponseWriter, r *http.Request) {
	// Form parsing overhead allowance on top of the file limit.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileBytes+64*1024)

	if err := r.ParseMultipartForm(h.maxFileBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "File size must be less than 10MB"})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No file provided"})
		return
	}
	defer file.Close()

	if header.Size > h.maxFileBytes {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "File size must be less than 10MB"})
		return
	}
	if !h.typeAllowed(header.Header.Get("Content-Type")) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Unsupported file format"})
		return
	}

	image, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to process document"})
		return
	}

	docID := uuid.New().String()

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	text, err := h.recognizer.RecognizeText(ctx, image)
	if err != nil {
		h.logger.Error("text recognition failed", "error", err, "document", docID)
		documentScansTotal.WithLabelValues("failed").Inc()
		if h.events != nil {
			_ = h.events.Publish(events.SubjectDocumentFailed(docID), map[string]string{"document": docID})
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to process document"})
		return
	}

	data := extract.Fields(text)

	resp := ExtractResponse{
		Success:       true,
		ExtractedData: data,
		RawText:       text,
		Message:       "Document processed successfully",
	}

	documentScansTotal.WithLabelValues("ok").Inc()
	if h.events != nil {
		_ = h.events.Publish(events.SubjectDocumentExtracted(docID), resp)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *DocumentsHandler) typeAllowed(contentType string) bool {
	for _, t := range h.allowedTypes {
		if t == contentType {
			return true
		}
	}
	return false
}
