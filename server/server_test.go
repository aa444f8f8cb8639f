package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/uclh-criu/synthetic-llm-medical-text/generator"
)

type stubLLM struct {
	out string
	err error
}

func (s *stubLLM) Complete(_ context.Context, _ generator.Prompt) (string, error) {
	return s.out, s.err
}

func newTestServer(t *testing.T, llm generator.LLMClient) *httptest.Server {
	t.Helper()
	agent, err := generator.NewAgent(llm)
	if err != nil {
		t.Fatalf("NewAgent: %v", err)
	}
	srv, err := New(agent)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	b, _ := json.Marshal(body)
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestSessionLifecycle(t *testing.T) {
	llm := &stubLLM{out: "# Clinic Letter\n\nPatient seen today.\n"}
	ts := newTestServer(t, llm)

	// Create
	resp := postJSON(t, ts.URL+"/api/sessions", map[string]any{"prompt": "Write a clinic letter."})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create status = %d", resp.StatusCode)
	}
	created := decode[sessionResp](t, resp)
	if created.SessionID == "" {
		t.Fatal("missing session id")
	}
	if !strings.Contains(created.Note.Text, "Patient seen today.") {
		t.Errorf("unexpected note: %q", created.Note.Text)
	}
	if len(created.History) != 1 {
		t.Errorf("expected 1 history turn, got %d", len(created.History))
	}

	// Get
	getResp, err := http.Get(ts.URL + "/api/sessions/" + created.SessionID)
	if err != nil {
		t.Fatalf("GET session: %v", err)
	}
	got := decode[sessionResp](t, getResp)
	if got.Note.Text != created.Note.Text {
		t.Errorf("GET returned different note: %q", got.Note.Text)
	}

	// Revise
	llm.out = "# Clinic Letter\n\nPatient seen today. Bloods normal.\n"
	revResp := postJSON(t, ts.URL+"/api/sessions/"+created.SessionID, map[string]any{"comment": "mention bloods"})
	if revResp.StatusCode != http.StatusOK {
		t.Fatalf("revise status = %d", revResp.StatusCode)
	}
	revised := decode[sessionResp](t, revResp)
	if !strings.Contains(revised.Note.Text, "Bloods normal.") {
		t.Errorf("revision not applied: %q", revised.Note.Text)
	}
	if len(revised.History) != 2 {
		t.Errorf("expected 2 history turns, got %d", len(revised.History))
	}

	// Preview
	prevResp, err := http.Get(ts.URL + "/api/sessions/" + created.SessionID + "/preview")
	if err != nil {
		t.Fatalf("GET preview: %v", err)
	}
	defer prevResp.Body.Close()
	if ct := prevResp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("preview content type = %q", ct)
	}
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(prevResp.Body)
	if !strings.Contains(buf.String(), "<h1") {
		t.Errorf("preview should render markdown heading: %s", buf.String())
	}
}

func TestSessionCreate_Validation(t *testing.T) {
	ts := newTestServer(t, &stubLLM{out: "x"})

	resp := postJSON(t, ts.URL+"/api/sessions", map[string]any{"prompt": "  "})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("blank prompt status = %d, want 400", resp.StatusCode)
	}
	resp.Body.Close()

	getResp, _ := http.Get(ts.URL + "/api/sessions/unknown")
	if getResp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown session status = %d, want 404", getResp.StatusCode)
	}
	getResp.Body.Close()
}

func TestSessionCreate_UpstreamError(t *testing.T) {
	ts := newTestServer(t, &stubLLM{err: errors.New("rate limited")})

	resp := postJSON(t, ts.URL+"/api/sessions", map[string]any{"prompt": "Write a note."})
	if resp.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestBatch(t *testing.T) {
	ts := newTestServer(t, &stubLLM{out: "Takes [E]aspirin[/E]."})

	resp := postJSON(t, ts.URL+"/api/notes", map[string]any{
		"prompt":       "Write a note.",
		"count":        3,
		"entity_types": []string{"medication"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("batch status = %d", resp.StatusCode)
	}
	batch := decode[batchResp](t, resp)
	if len(batch.Notes) != 3 {
		t.Fatalf("expected 3 notes, got %d", len(batch.Notes))
	}
	for _, n := range batch.Notes {
		if n.Text != "Takes aspirin." {
			t.Errorf("tags not stripped: %q", n.Text)
		}
		if len(n.Entities) != 1 || n.Entities[0].Type != "medication" {
			t.Errorf("unexpected entities: %+v", n.Entities)
		}
	}
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t, &stubLLM{out: "x"})

	resp, _ := http.Get(ts.URL + "/api/sessions")
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("GET /api/sessions status = %d, want 405", resp.StatusCode)
	}
	resp.Body.Close()

	resp2, _ := http.Get(ts.URL + "/api/notes")
	if resp2.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("GET /api/notes status = %d, want 405", resp2.StatusCode)
	}
	resp2.Body.Close()
}
