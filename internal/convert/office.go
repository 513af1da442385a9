package convert

import (
	"fmt"

	"github.com/lokit-go/lokit/pkg/lokit"
	"github.com/lokit-go/lokit/pkg/lokit/urls"
)

// OfficeConverter converts documents through one lokit Office instance.
// Conversions run strictly sequentially; the native library is not
// reentrant.
type OfficeConverter struct {
	office      *lokit.Office
	loadOptions string
}

// NewOfficeConverter initializes the native library at installPath.
// loadOptions is passed to every document load when non-empty (import
// filter options such as "Language=en-US").
func NewOfficeConverter(installPath, loadOptions string, opts ...lokit.Option) (*OfficeConverter, error) {
	office, err := lokit.New(installPath, opts...)
	if err != nil {
		return nil, fmt.Errorf("initializing office: %w", err)
	}
	return &OfficeConverter{office: office, loadOptions: loadOptions}, nil
}

// Convert loads inputPath and exports it to outputPath. Each document is
// closed before the next load; a failed conversion leaves the office usable.
func (c *OfficeConverter) Convert(inputPath, outputPath, format, filter string) error {
	u, err := urls.LocalIntoAbs(inputPath)
	if err != nil {
		return err
	}

	var doc *lokit.Document
	if c.loadOptions != "" {
		doc, err = c.office.DocumentLoadWithOptions(u, c.loadOptions)
	} else {
		doc, err = c.office.DocumentLoad(u)
	}
	if err != nil {
		return err
	}
	defer doc.Close()

	return doc.SaveAs(outputPath, format, filter)
}

// Office exposes the underlying instance for queries (version, filter
// types). The caller must not close it directly.
func (c *OfficeConverter) Office() *lokit.Office {
	return c.office
}

// Close releases the native office instance.
func (c *OfficeConverter) Close() error {
	return c.office.Close()
}
