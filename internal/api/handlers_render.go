package api

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/zeebo/blake3"

	"github.com/dgallion1/lessonmark/internal/doctree"
	"github.com/dgallion1/lessonmark/internal/engine"
	"github.com/dgallion1/lessonmark/internal/sections"
)

type splitRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleSplit(w http.ResponseWriter, r *http.Request) {
	var req splitRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	parts := sections.Split(req.Text)
	resp := map[string]any{
		"primary":       parts.Primary,
		"has_secondary": parts.HasSecondary,
	}
	if parts.HasSecondary {
		resp["secondary"] = parts.Secondary
	}
	writeJSON(w, http.StatusOK, resp)
}

type renderRequest struct {
	Text string `json:"text"`
	Mode string `json:"mode"`
	View string `json:"view"`
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, ok := s.prepare(w, req)
	if !ok {
		return
	}

	etag := contentETag("render", string(p.Mode), string(p.View), req.Text)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	writeJSON(w, http.StatusOK, map[string]any{
		"mode":           p.Mode,
		"view":           p.View,
		"has_answer_key": p.HasAnswerKey,
		"document":       p.Interactive(),
	})
}

// prepare resolves mode and view and runs the engine. It writes the error
// response itself when it returns false.
func (s *Server) prepare(w http.ResponseWriter, req renderRequest) (engine.Prepared, bool) {
	mode, err := doctree.ParseMode(req.Mode, s.cfg.DefaultMode)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return engine.Prepared{}, false
	}
	view, err := sections.ParseView(req.View)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return engine.Prepared{}, false
	}
	p, err := engine.Prepare(engine.Request{Text: req.Text, Mode: mode, View: view})
	if errors.Is(err, engine.ErrNoAnswerKey) {
		jsonError(w, err.Error(), http.StatusConflict)
		return engine.Prepared{}, false
	}
	if err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return engine.Prepared{}, false
	}
	return p, true
}

// contentETag hashes the inputs of a deterministic render.
func contentETag(parts ...string) string {
	h := blake3.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return `"` + hex.EncodeToString(h.Sum(nil)[:16]) + `"`
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, "request body too large", http.StatusRequestEntityTooLarge)
			return false
		}
		jsonError(w, "invalid json body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
