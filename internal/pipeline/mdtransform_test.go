package pipeline

import (
	"context"
	"testing"
)

func TestLinePreprocessor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "unchanged", input: "a\n\n\n\nb  \n", want: "a\n\n\n\nb  \n"},
		{name: "crlf", input: "a\r\nb\r\n", want: "a\nb\n"},
		{name: "lone cr", input: "a\rb", want: "a\nb"},
		{name: "mixed", input: "a\r\n\rb\n", want: "a\n\nb\n"},
		{name: "byte order mark", input: "\uFEFF# Title", want: "# Title"},
		{name: "empty", input: "", want: ""},
	}

	p := &LinePreprocessor{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := p.PreprocessMarkdown(context.Background(), tt.input); got != tt.want {
				t.Errorf("PreprocessMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLinePreprocessor_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := "a\r\nb"
	if got := (&LinePreprocessor{}).PreprocessMarkdown(ctx, in); got != in {
		t.Errorf("PreprocessMarkdown() = %q, want input unchanged", got)
	}
}
