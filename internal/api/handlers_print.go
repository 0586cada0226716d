package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dgallion1/lessonmark/internal/engine"
	"github.com/dgallion1/lessonmark/internal/render/printdoc"
)

type printRequest struct {
	renderRequest
	Title     string `json:"title"`
	Heading   string `json:"heading"`
	Topic     string `json:"topic"`
	Recipient string `json:"recipient"`
	Date      string `json:"date"` // YYYY-MM-DD; today when empty
}

func (s *Server) handleCreatePrint(w http.ResponseWriter, r *http.Request) {
	var req printRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, ok := s.prepare(w, req.renderRequest)
	if !ok {
		return
	}

	date := engine.Today(s.now())
	if d := strings.TrimSpace(req.Date); d != "" {
		parsed, err := time.Parse(time.DateOnly, d)
		if err != nil {
			jsonError(w, fmt.Sprintf("date must be YYYY-MM-DD, got %q", req.Date), http.StatusBadRequest)
			return
		}
		date = parsed
	}

	meta := p.ResolveMeta(printdoc.Meta{
		Title:     req.Title,
		Heading:   req.Heading,
		Topic:     req.Topic,
		Recipient: req.Recipient,
		Date:      date,
	})
	page, err := p.Print(meta)
	if err != nil {
		s.log.Error("render print document", "error", err)
		jsonError(w, "failed to render print document", http.StatusInternalServerError)
		return
	}
	doc := s.prints.Put(meta.Title, page, contentETag("print", page))

	s.log.Info("print document created",
		"print_id", doc.ID,
		"mode", p.Mode,
		"view", p.View,
		"bytes", len(page),
	)

	writeJSON(w, http.StatusCreated, map[string]any{
		"print_id": doc.ID,
		"url":      "/print/" + doc.ID,
	})
}

func (s *Server) handleGetPrint(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "printID")
	doc := s.prints.Get(id)
	if doc == nil {
		jsonError(w, "print document not found", http.StatusNotFound)
		return
	}
	if r.Header.Get("If-None-Match") == doc.ETag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("ETag", doc.ETag)
	w.Header().Set("Cache-Control", "private, no-store")
	w.Write([]byte(doc.HTML))
}
