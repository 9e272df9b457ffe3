package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

type fakeResult struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

func (r fakeResult) MarshalTextOutput() string {
	return r.Output + "\n"
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"text", FormatText, false},
		{"", FormatText, false},
		{"json", FormatJSON, false},
		{"yaml", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseFormat(%q) should fail", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTextFormatter_UsesTextMarshaler(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatText)

	if err := f.FormatTo(&buf, fakeResult{Input: "+ 1 0", Output: "1"}); err != nil {
		t.Fatalf("FormatTo() failed: %v", err)
	}
	if buf.String() != "1\n" {
		t.Errorf("FormatTo() = %q, want %q", buf.String(), "1\n")
	}
}

func TestTextFormatter_PlainValue(t *testing.T) {
	var buf bytes.Buffer
	f := &TextFormatter{}

	if err := f.FormatTo(&buf, 42); err != nil {
		t.Fatalf("FormatTo() failed: %v", err)
	}
	if buf.String() != "42\n" {
		t.Errorf("FormatTo() = %q, want %q", buf.String(), "42\n")
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatJSON)

	if err := f.FormatTo(&buf, fakeResult{Input: "+ 1 0", Output: "1"}); err != nil {
		t.Fatalf("FormatTo() failed: %v", err)
	}

	var decoded fakeResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Output != "1" {
		t.Errorf("decoded output = %q, want %q", decoded.Output, "1")
	}
	if !strings.Contains(buf.String(), "  ") {
		t.Error("JSON output should be indented")
	}
}
