package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	svcerr "github.com/indictext/lipi/internal/errors"
	"github.com/indictext/lipi/internal/ocr"
	"github.com/indictext/lipi/internal/phrasebook"
	"github.com/indictext/lipi/internal/script"
	"github.com/indictext/lipi/internal/translit"
)

// listTextLimit truncates phrase text in list responses, matching the
// original API.
const listTextLimit = 400

// Handlers holds the request handlers and their collaborators.
type Handlers struct {
	Classifier     *script.Classifier
	Selector       *ocr.Selector
	Resolver       *translit.Resolver
	Store          phrasebook.Store
	MaxUploadBytes int64
	Log            zerolog.Logger
}

type detectRequest struct {
	Text string `json:"text"`
}

type transliterateRequest struct {
	Text string `json:"text"`
	Src  string `json:"src"`
	Tgt  string `json:"tgt"`
}

type phraseSaveRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	Src   string `json:"src"`
	Tgt   string `json:"tgt"`
}

// Detect classifies posted text by script.
func (h *Handlers) Detect(w http.ResponseWriter, r *http.Request) {
	var req detectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeFail(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON body: %v", err))
		return
	}

	det := h.Classifier.Detect(req.Text)
	h.writeOK(w, map[string]any{
		"script":        det.Script,
		"top_count":     det.TopCount,
		"total_matched": det.TotalMatched,
		"breakdown":     det.Breakdown,
		"confidence":    det.Confidence,
	})
}

// OCR extracts text from an uploaded image using the two-pass language
// selection strategy.
func (h *Handlers) OCR(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)

	file, _, err := r.FormFile("image")
	if err != nil {
		h.writeFail(w, http.StatusBadRequest, "no image uploaded")
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		h.writeFail(w, http.StatusBadRequest, fmt.Sprintf("failed to read image: %v", err))
		return
	}

	att, err := h.Selector.Extract(r.Context(), image)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeOK(w, map[string]any{
		"text":            att.Text,
		"used_lang":       att.UsedLanguage,
		"detected_script": att.DetectedScript,
		"breakdown":       att.Breakdown,
		"confidence":      att.Confidence,
	})
}

// Transliterate converts text between scripts, resolving an ambiguous
// source hint first.
func (h *Handlers) Transliterate(w http.ResponseWriter, r *http.Request) {
	var req transliterateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeFail(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON body: %v", err))
		return
	}
	if req.Text == "" {
		h.writeError(w, svcerr.NewEmptyInput("text"))
		return
	}

	result, err := h.Resolver.Resolve(r.Context(), req.Src, req.Tgt, req.Text)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeOK(w, map[string]any{"result": result})
}

// PhrasebookSave stores a phrase.
func (h *Handlers) PhrasebookSave(w http.ResponseWriter, r *http.Request) {
	var req phraseSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeFail(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON body: %v", err))
		return
	}
	if req.Text == "" {
		h.writeError(w, svcerr.NewEmptyInput("text"))
		return
	}
	if req.Title == "" {
		req.Title = "Untitled"
	}
	if req.Src == "" {
		req.Src = script.ISO
	}
	if req.Tgt == "" {
		req.Tgt = script.ISO
	}

	entry, err := h.Store.Save(r.Context(), req.Title, req.Text, req.Src, req.Tgt)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeOK(w, map[string]any{"item": entry})
}

// PhrasebookList returns saved phrases, newest first, with text truncated
// for display.
func (h *Handlers) PhrasebookList(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Store.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	items := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		items = append(items, map[string]any{
			"id":    e.ID,
			"title": e.Title,
			"src":   e.Src,
			"tgt":   e.Tgt,
			"text":  truncateRunes(e.Text, listTextLimit),
		})
	}
	h.writeOK(w, map[string]any{"items": items})
}

// PhrasebookGet returns one full phrase.
func (h *Handlers) PhrasebookGet(w http.ResponseWriter, r *http.Request) {
	entry, err := h.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeOK(w, map[string]any{"item": entry})
}

// PhrasebookDelete removes a phrase.
func (h *Handlers) PhrasebookDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeOK(w, nil)
}

// PhrasebookDownload streams one phrase as a JSON attachment.
func (h *Handlers) PhrasebookDownload(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	entry, err := h.Store.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeAttachment(w, fmt.Sprintf("phrase_%s.json", id), entry)
}

// PhrasebookDownloadAll streams the whole phrasebook as a JSON attachment.
func (h *Handlers) PhrasebookDownloadAll(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Store.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeAttachment(w, "phrasebooks_all.json", entries)
}

// writeOK writes the {"ok": true, ...} envelope.
func (h *Handlers) writeOK(w http.ResponseWriter, fields map[string]any) {
	body := map[string]any{"ok": true}
	for k, v := range fields {
		body[k] = v
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.Log.Error().Err(err).Msg("failed to encode response")
	}
}

// writeFail writes the {"ok": false, "error": ...} envelope with an
// explicit status.
func (h *Handlers) writeFail(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": msg}); err != nil {
		h.Log.Error().Err(err).Msg("failed to encode error response")
	}
}

// writeError maps a service error code to an HTTP status.
func (h *Handlers) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch svcerr.CodeOf(err) {
	case svcerr.CodeEmptyInput:
		status = http.StatusBadRequest
	case svcerr.CodeNotFound:
		status = http.StatusNotFound
	case svcerr.CodeOCRUnavailable, svcerr.CodeTranslitUnavailable:
		status = http.StatusServiceUnavailable
	}
	if status == http.StatusInternalServerError {
		h.Log.Error().Err(err).Msg("request failed")
	}
	h.writeFail(w, status, err.Error())
}

// writeAttachment streams v as a downloadable JSON file.
func (h *Handlers) writeAttachment(w http.ResponseWriter, filename string, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		h.Log.Error().Err(err).Msg("failed to encode attachment")
	}
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
