// Package convert implements batch document conversion on top of the lokit
// wrapper, with per-file accounting suitable for CLI reporting. The
// Converter interface keeps the batch driver testable without a LibreOffice
// installation.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Converter converts one document into outputPath using the given export
// format and native filter options string.
type Converter interface {
	Convert(inputPath, outputPath, format, filter string) error
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of inputs processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any input failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// OutputPath derives the destination for input under outDir with the
// format's extension.
func OutputPath(input, outDir, format string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(outDir, base+"."+format)
}

// ConvertAll converts every input into outDir sequentially. Existing outputs
// are skipped unless force is set; a failed input is reported and does not
// stop the batch. Progress lines go to w.
func ConvertAll(c Converter, inputs []string, outDir, format, filter string, force bool, w io.Writer) (BatchResult, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return BatchResult{}, fmt.Errorf("creating %s: %w", outDir, err)
	}

	var res BatchResult
	for _, input := range inputs {
		out := OutputPath(input, outDir, format)

		if !force {
			if _, err := os.Stat(out); err == nil {
				fmt.Fprintf(w, "skipped: %s (output exists)\n", input)
				res.Skipped++
				continue
			}
		}

		if err := c.Convert(input, out, format, filter); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", input, err)
			res.Failed++
			continue
		}
		fmt.Fprintf(w, "converted: %s -> %s\n", input, out)
		res.Converted++
	}
	return res, nil
}
