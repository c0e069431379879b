package jsonrepair

import "testing"

func TestEscapeStringBreaks_InsideString(t *testing.T) {
	in := "{\"a\":\"line one\nline two\"}"
	want := `{"a":"line one\nline two"}`
	if got := escapeStringBreaks(in); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEscapeStringBreaks_OutsideStringUntouched(t *testing.T) {
	in := "{\n\"a\": 1\n}"
	if got := escapeStringBreaks(in); got != in {
		t.Fatalf("structural newlines were modified: %q", got)
	}
}

func TestEscapeStringBreaks_CRLFCollapsesToOne(t *testing.T) {
	in := "{\"a\":\"x\r\ny\"}"
	want := `{"a":"x\ny"}`
	if got := escapeStringBreaks(in); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEscapeStringBreaks_BareCR(t *testing.T) {
	in := "{\"a\":\"x\ry\"}"
	want := `{"a":"x\ny"}`
	if got := escapeStringBreaks(in); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEscapeStringBreaks_EscapedQuoteStaysInString(t *testing.T) {
	in := "{\"a\":\"he said \\\"hi\\\"\nbye\"}"
	want := `{"a":"he said \"hi\"\nbye"}`
	if got := escapeStringBreaks(in); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEscapeStringBreaks_AlreadyEscapedUntouched(t *testing.T) {
	in := `{"a":"one\ntwo"}`
	if got := escapeStringBreaks(in); got != in {
		t.Fatalf("already-escaped input was modified: %q", got)
	}
}
