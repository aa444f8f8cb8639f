// Package server exposes note generation over a small JSON API.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/yuin/goldmark"

	"github.com/uclh-criu/synthetic-llm-medical-text/generator"
)

type Server struct {
	agent *generator.Agent
	store *sessionStore
}

type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*generator.Session
}

func newStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*generator.Session)}
}

func (s *sessionStore) set(id string, sess *generator.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = sess
}

func (s *sessionStore) get(id string) (*generator.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func New(agent *generator.Agent) (*Server, error) {
	if agent == nil {
		return nil, errors.New("generator agent required")
	}
	return &Server{
		agent: agent,
		store: newStore(),
	}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/sessions", s.handleSessionCreate)
	mux.HandleFunc("/api/sessions/", s.handleSessionByID)
	mux.HandleFunc("/api/notes", s.handleBatch)
	return logMiddleware(mux)
}

// --- Handlers ---

type noteSpecReq struct {
	Prompt        string   `json:"prompt"`
	SystemPrompt  string   `json:"system_prompt,omitempty"`
	Instructions  []string `json:"instructions,omitempty"`
	StatsGuidance string   `json:"stats_guidance,omitempty"`
	EntityTypes   []string `json:"entity_types,omitempty"`
	Relation      string   `json:"relation,omitempty"`
	Temperature   float64  `json:"temperature,omitempty"`
}

func (r noteSpecReq) spec() (generator.NoteSpec, error) {
	if strings.TrimSpace(r.Prompt) == "" {
		return generator.NoteSpec{}, errors.New("prompt is required")
	}
	spec := generator.NoteSpec{
		Prompt:        r.Prompt,
		SystemPrompt:  r.SystemPrompt,
		Instructions:  r.Instructions,
		StatsGuidance: r.StatsGuidance,
		Temperature:   r.Temperature,
	}
	if len(r.EntityTypes) > 0 {
		spec.Markup = &generator.MarkupOptions{
			EntityTypes:  r.EntityTypes,
			RelationName: r.Relation,
		}
	}
	return spec, nil
}

type sessionResp struct {
	SessionID string           `json:"session_id"`
	Note      generator.Note   `json:"note"`
	History   []generator.Turn `json:"history"`
}

type reviseReq struct {
	Comment string `json:"comment"`
}

type batchReq struct {
	noteSpecReq
	Count int `json:"count"`
}

type batchResp struct {
	Notes []generator.Note `json:"notes"`
}

func (s *Server) handleSessionCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req noteSpecReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	spec, err := req.spec()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id := ulid.Make().String()
	sess := generator.NewSession(id, spec, s.agent)
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()
	note, err := sess.Propose(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	s.store.set(id, sess)
	writeJSON(w, sessionResp{SessionID: id, Note: note, History: sess.History})
}

func (s *Server) handleSessionByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/sessions/")
	id, sub, _ := strings.Cut(rest, "/")
	if id == "" {
		http.NotFound(w, r)
		return
	}
	sess, ok := s.store.get(id)
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	if sub == "preview" {
		s.handlePreview(w, r, sess)
		return
	}
	if sub != "" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, sessionResp{SessionID: id, Note: sess.Note, History: sess.History})
	case http.MethodPost:
		var req reviseReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
		defer cancel()
		note, err := sess.Revise(ctx, req.Comment)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		writeJSON(w, sessionResp{SessionID: id, Note: note, History: sess.History})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handlePreview renders the current note as HTML for a quick look in the
// browser. Model output is treated as markdown.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request, sess *generator.Session) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(sess.Note.Text), &buf); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req batchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	spec, err := req.spec()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	n := req.Count
	if n < 1 {
		n = 1
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(n)*60*time.Second)
	defer cancel()
	notes, err := s.agent.GenerateBatch(ctx, spec, n)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, batchResp{Notes: notes})
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[http] %s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}
