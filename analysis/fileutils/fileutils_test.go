package fileutils

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecodeModelJSON(t *testing.T) {
	t.Parallel()

	type out struct {
		A string `json:"a"`
	}

	cases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "plain", in: `{"a":"x"}`, want: "x"},
		{name: "whitespace", in: "\n  {\"a\":\"y\"}  \n", want: "y"},
		{name: "fenced", in: "```json\n{\"a\":\"z\"}\n```", want: "z"},
		{name: "prose", in: "Here you go: {\"a\":\"w\"} hope it helps", want: "w"},
		{name: "no object", in: "sorry, I cannot help", wantErr: true},
		{name: "broken", in: `{"a":`, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var got out
			err := DecodeModelJSON(tc.in, &got)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got.A != tc.want {
				t.Fatalf("A=%q want %q", got.A, tc.want)
			}
		})
	}
}

func TestDecodeModelJSON_EmptyAndNoObject(t *testing.T) {
	t.Parallel()

	var v map[string]any
	if err := DecodeModelJSON("   ", &v); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("err=%v", err)
	}
	if err := DecodeModelJSON("nope", &v); !errors.Is(err, ErrNoJSONObject) {
		t.Fatalf("err=%v", err)
	}
}

func TestCollectReviewFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"b.json", "a.json", "notes.txt", filepath.Join("nested", "c.json"), "a.analysis.json"} {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(p, []byte("{}"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	files, err := CollectReviewFiles(dir)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "b.json"),
		filepath.Join(dir, "nested", "c.json"),
	}
	if strings.Join(files, ",") != strings.Join(want, ",") {
		t.Fatalf("files=%v want %v", files, want)
	}

	single, err := CollectReviewFiles(filepath.Join(dir, "b.json"))
	if err != nil || len(single) != 1 {
		t.Fatalf("single=%v err=%v", single, err)
	}
	if _, err := CollectReviewFiles(filepath.Join(dir, "notes.txt")); err == nil {
		t.Fatalf("expected error for non-json input")
	}
}

func TestAnalysisOutPath(t *testing.T) {
	t.Parallel()

	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")

	got := AnalysisOutPath(in, out, filepath.Join(in, "2024", "demian.json"))
	want := filepath.Join(out, "2024", "demian.analysis.json")
	if got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}

	file := filepath.Join(in, "single.json")
	if err := os.WriteFile(file, []byte("{}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := AnalysisOutPath(file, out, file); got != filepath.Join(out, "single.analysis.json") {
		t.Fatalf("single got=%q", got)
	}
}

func TestWriteJSONFileAtomic(t *testing.T) {
	t.Parallel()

	p := filepath.Join(t.TempDir(), "x", "r.analysis.json")
	if err := WriteJSONFileAtomic(p, map[string]string{"k": "v"}, false, false); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "{\"k\":\"v\"}\n" {
		t.Fatalf("content=%q", string(b))
	}

	err = WriteJSONFileAtomic(p, map[string]string{"k": "w"}, false, false)
	if !errors.Is(err, ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}
	if err := WriteJSONFileAtomic(p, map[string]string{"k": "w"}, true, true); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	b, _ = os.ReadFile(p)
	if !strings.Contains(string(b), "\"w\"") || !strings.Contains(string(b), "\n  ") {
		t.Fatalf("expected pretty overwrite, got %q", string(b))
	}
}
