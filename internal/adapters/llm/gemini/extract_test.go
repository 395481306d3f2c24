package gemini

import (
	"encoding/json"
	"testing"
)

func parse(t *testing.T, raw string) any {
	t.Helper()
	var root any
	if err := json.Unmarshal([]byte(raw), &root); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return root
}

func TestExtractText_CandidatesWithParts(t *testing.T) {
	root := parse(t, `{
		"candidates": [
			{"content": {"parts": [{"text": "Texto de la primera familia."}]}, "finishReason": "STOP"}
		]
	}`)

	text, reason, ok := extractText(root)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if text != "Texto de la primera familia." {
		t.Errorf("unexpected text: %q", text)
	}
	if reason != "STOP" {
		t.Errorf("unexpected finish reason: %q", reason)
	}
}

func TestExtractText_OutputsWithContentArray(t *testing.T) {
	root := parse(t, `{
		"outputs": [
			{"content": [{"text": "Primera parte."}, {"text": "Segunda parte."}], "finishReason": "MAX_TOKENS"}
		]
	}`)

	text, reason, ok := extractText(root)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if text != "Primera parte.\nSegunda parte." {
		t.Errorf("unexpected text: %q", text)
	}
	if reason != "MAX_TOKENS" {
		t.Errorf("unexpected finish reason: %q", reason)
	}
}

func TestExtractText_TopLevelOutputString(t *testing.T) {
	root := parse(t, `{"output": "Texto plano de la familia antigua."}`)

	text, _, ok := extractText(root)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if text != "Texto plano de la familia antigua." {
		t.Errorf("unexpected text: %q", text)
	}
}

func TestExtractText_TopLevelContent(t *testing.T) {
	root := parse(t, `{"content": {"text": "Contenido directo."}}`)

	text, _, ok := extractText(root)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if text != "Contenido directo." {
		t.Errorf("unexpected text: %q", text)
	}
}

func TestExtractText_CandidateDirectText(t *testing.T) {
	root := parse(t, `{"candidates": [{"content": {"text": "Sin parts."}}]}`)

	text, _, ok := extractText(root)
	if !ok || text != "Sin parts." {
		t.Errorf("unexpected result: %q, ok=%v", text, ok)
	}
}

func TestExtractText_UnknownShape(t *testing.T) {
	root := parse(t, `{"status": "ok", "detail": 42}`)

	if _, _, ok := extractText(root); ok {
		t.Error("expected extraction to fail for an unknown shape")
	}
}

func TestExtractText_BlankTextIsNotUsable(t *testing.T) {
	root := parse(t, `{"candidates": [{"content": {"parts": [{"text": "   "}]}}]}`)

	if _, _, ok := extractText(root); ok {
		t.Error("blank text must not count as a successful extraction")
	}
}
