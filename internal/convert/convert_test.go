package convert

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeConverter implements Converter for testing. It writes canned output
// or fails, depending on configuration.
type fakeConverter struct {
	output  string
	failFor map[string]error
	calls   []string
}

func (f *fakeConverter) Convert(inputPath, outputPath, format, filter string) error {
	f.calls = append(f.calls, inputPath)
	if err, ok := f.failFor[inputPath]; ok {
		return err
	}
	return os.WriteFile(outputPath, []byte(f.output), 0o644)
}

func TestConvertAll(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")

	fake := &fakeConverter{
		output:  "%PDF-fake",
		failFor: map[string]error{"/in/bad.odt": errors.New("load failed")},
	}

	var buf bytes.Buffer
	inputs := []string{"/in/a.odt", "/in/bad.odt", "/in/c.docx"}
	res, err := ConvertAll(fake, inputs, outDir, "pdf", "", false, &buf)
	if err != nil {
		t.Fatal(err)
	}

	if res.Converted != 2 || res.Failed != 1 || res.Skipped != 0 {
		t.Fatalf("result = %+v", res)
	}
	if res.Total() != 3 {
		t.Fatalf("Total() = %d", res.Total())
	}
	if !res.HasFailures() {
		t.Fatal("HasFailures() = false")
	}

	out := buf.String()
	if !strings.Contains(out, "failed:  /in/bad.odt") {
		t.Fatalf("progress output = %q", out)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "a.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "%PDF-fake" {
		t.Fatalf("output content = %q", data)
	}
}

func TestConvertAllSkipsExistingOutput(t *testing.T) {
	outDir := t.TempDir()
	existing := filepath.Join(outDir, "a.pdf")
	if err := os.WriteFile(existing, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	fake := &fakeConverter{output: "new"}
	var buf bytes.Buffer
	res, err := ConvertAll(fake, []string{"/in/a.odt"}, outDir, "pdf", "", false, &buf)
	if err != nil {
		t.Fatal(err)
	}

	if res.Skipped != 1 || res.Converted != 0 {
		t.Fatalf("result = %+v", res)
	}
	if len(fake.calls) != 0 {
		t.Fatalf("converter called for skipped input: %v", fake.calls)
	}

	data, _ := os.ReadFile(existing)
	if string(data) != "old" {
		t.Fatal("existing output overwritten despite skip")
	}
}

func TestConvertAllForceOverwrites(t *testing.T) {
	outDir := t.TempDir()
	existing := filepath.Join(outDir, "a.pdf")
	if err := os.WriteFile(existing, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	fake := &fakeConverter{output: "new"}
	var buf bytes.Buffer
	res, err := ConvertAll(fake, []string{"/in/a.odt"}, outDir, "pdf", "", true, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if res.Converted != 1 {
		t.Fatalf("result = %+v", res)
	}

	data, _ := os.ReadFile(existing)
	if string(data) != "new" {
		t.Fatalf("output = %q, want overwrite", data)
	}
}

func TestOutputPath(t *testing.T) {
	got := OutputPath("/papers/raw/report.docx", "/papers/pdf", "pdf")
	want := filepath.Join("/papers/pdf", "report.pdf")
	if got != want {
		t.Fatalf("OutputPath = %q, want %q", got, want)
	}
}
