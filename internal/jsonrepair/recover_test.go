package jsonrepair

import (
	"errors"
	"testing"
)

func mustObject(t *testing.T, v any) map[string]any {
	t.Helper()
	obj, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("expected object, got %T", v)
	}
	return obj
}

func TestRecover_ValidDocumentPassesThrough(t *testing.T) {
	v, err := Recover(`{"a":1,"b":"text"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj := mustObject(t, v)
	if obj["b"] != "text" {
		t.Fatalf("unexpected value: %v", obj["b"])
	}
}

func TestRecover_RawNewlineInsideString(t *testing.T) {
	v, err := Recover("{\"reason\":\"first\nsecond\"}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj := mustObject(t, v)
	if obj["reason"] != "first\nsecond" {
		t.Fatalf("newline not preserved: %q", obj["reason"])
	}
}

func TestRecover_FencedBlock(t *testing.T) {
	for _, in := range []string{
		"```json\n{\"a\":1}\n```",
		"```\n{\"a\":1}\n```",
		"Here you go:\n```json\n{\"a\":1}\n```\nHope that helps!",
	} {
		v, err := Recover(in)
		if err != nil {
			t.Fatalf("Recover(%q): %v", in, err)
		}
		obj := mustObject(t, v)
		if obj["a"] != float64(1) {
			t.Fatalf("Recover(%q): unexpected value %v", in, obj["a"])
		}
	}
}

func TestRecover_ProseAroundBraces(t *testing.T) {
	v, err := Recover(`Sure! The result is {"a": 1} as requested.`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj := mustObject(t, v)
	if obj["a"] != float64(1) {
		t.Fatalf("unexpected value: %v", obj["a"])
	}
}

func TestRecover_TrailingComma(t *testing.T) {
	v, err := Recover(`{"a":1,}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj := mustObject(t, v)
	if len(obj) != 1 || obj["a"] != float64(1) {
		t.Fatalf("unexpected object: %v", obj)
	}
}

func TestRecover_SmartQuotes(t *testing.T) {
	v, err := Recover("{“a”: “b”}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj := mustObject(t, v)
	if obj["a"] != "b" {
		t.Fatalf("unexpected value: %v", obj["a"])
	}
}

func TestRecover_NoStructuredContent(t *testing.T) {
	_, err := Recover("Sorry, I cannot help with that.")
	if err == nil {
		t.Fatal("expected error")
	}
	var exhausted *ErrExhausted
	if !errors.As(err, &exhausted) {
		t.Fatalf("expected *ErrExhausted, got %T", err)
	}
	if exhausted.Unwrap() == nil {
		t.Fatal("final parse error not propagated")
	}
}

func TestRecover_EmptyInput(t *testing.T) {
	_, err := Recover("")
	if err == nil {
		t.Fatal("expected error")
	}
	var exhausted *ErrExhausted
	if !errors.As(err, &exhausted) {
		t.Fatalf("expected *ErrExhausted, got %T", err)
	}
}

func TestStripTrailingCommas_Nested(t *testing.T) {
	in := `{"a":[1,2,],"b":{"c":3,},}`
	want := `{"a":[1,2],"b":{"c":3}}`
	if got := stripTrailingCommas(in); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSliceBraces(t *testing.T) {
	got, ok := sliceBraces(`noise {"a":1} more noise`)
	if !ok || got != `{"a":1}` {
		t.Fatalf("got %q, ok=%v", got, ok)
	}

	if _, ok := sliceBraces("no braces here"); ok {
		t.Fatal("expected no match")
	}
}

func TestStripFence_NoClosingFence(t *testing.T) {
	got, ok := stripFence("```json\n{\"a\":1}")
	if !ok || got != `{"a":1}` {
		t.Fatalf("got %q, ok=%v", got, ok)
	}
}
