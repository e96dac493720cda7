package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	contractx "github.com/tanpawarit/evo-commerce-agent/agent/contract"
)

type fakeAgent struct {
	result contractx.Result
	calls  []string
}

func (f *fakeAgent) HandleMessage(ctx context.Context, text string) contractx.Result {
	f.calls = append(f.calls, text)
	return f.result
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	s := New(&fakeAgent{}, Config{Port: "8080"})

	req := httptest.NewRequest("GET", "/healthz", nil)
	resp, err := s.App().Test(req)
	if err != nil {
		t.Fatalf("Test() error = %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestChatReturnsResultEnvelope(t *testing.T) {
	t.Parallel()

	trace := contractx.NewTrace()
	trace.Intent = contractx.IntentProductAssist
	trace.FinalMessage = "two options"
	agent := &fakeAgent{
		result: contractx.Result{Message: "two options", Trace: trace},
	}
	s := New(agent, Config{Port: "8080"})

	body := strings.NewReader(`{"message":"midi dress under $120"}`)
	req := httptest.NewRequest("POST", "/api/chat", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.App().Test(req)
	if err != nil {
		t.Fatalf("Test() error = %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var decoded struct {
		Message string `json:"message"`
		Trace   struct {
			Intent      string            `json:"intent"`
			ToolsCalled []string          `json:"tools_called"`
			Evidence    []json.RawMessage `json:"evidence"`
		} `json:"trace"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if decoded.Message != "two options" {
		t.Fatalf("message = %q", decoded.Message)
	}
	if decoded.Trace.Intent != "product_assist" {
		t.Fatalf("trace intent = %q", decoded.Trace.Intent)
	}
	if decoded.Trace.ToolsCalled == nil || decoded.Trace.Evidence == nil {
		t.Fatal("trace collections must serialize as arrays")
	}

	if len(agent.calls) != 1 || agent.calls[0] != "midi dress under $120" {
		t.Fatalf("unexpected agent calls: %v", agent.calls)
	}
}

func TestChatRejectsMalformedBody(t *testing.T) {
	t.Parallel()

	s := New(&fakeAgent{}, Config{Port: "8080"})

	req := httptest.NewRequest("POST", "/api/chat", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.App().Test(req)
	if err != nil {
		t.Fatalf("Test() error = %v", err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	t.Parallel()

	agent := &fakeAgent{}
	s := New(agent, Config{Port: "8080"})

	req := httptest.NewRequest("POST", "/api/chat", strings.NewReader(`{"message":"   "}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.App().Test(req)
	if err != nil {
		t.Fatalf("Test() error = %v", err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if len(agent.calls) != 0 {
		t.Fatalf("agent must not be called, got %v", agent.calls)
	}
}
