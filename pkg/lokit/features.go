package lokit

import (
	"strings"

	"github.com/lokit-go/lokit/internal/bindings"
)

// OptionalFeature is a set of capability bits negotiated once per Office.
// Registration is idempotent per bit; bits unknown to the installed library
// version are ignored by it, not rejected here.
type OptionalFeature uint64

const (
	// FeatureDocumentPassword makes the library report password-protected
	// documents through the callback channel instead of failing the load.
	FeatureDocumentPassword = OptionalFeature(bindings.FeatureDocumentPassword)

	// FeatureDocumentPasswordToModify is the edit-password variant of
	// FeatureDocumentPassword.
	FeatureDocumentPasswordToModify = OptionalFeature(bindings.FeatureDocumentPasswordToModify)

	// FeaturePartInInvalidationCallback includes the part number in tile
	// invalidation callback payloads.
	FeaturePartInInvalidationCallback = OptionalFeature(bindings.FeaturePartInInvalidationCallback)

	// FeatureNoTiledAnnotations turns off annotation rendering inside tiles.
	FeatureNoTiledAnnotations = OptionalFeature(bindings.FeatureNoTiledAnnotations)

	// FeatureRangeHeaders enables row/column header data in callbacks.
	FeatureRangeHeaders = OptionalFeature(bindings.FeatureRangeHeaders)

	// FeatureViewIDInVisCursorInvalidationCallback includes the view id in
	// visible-cursor invalidation payloads.
	FeatureViewIDInVisCursorInvalidationCallback = OptionalFeature(bindings.FeatureViewIDInVisCursorInvalidationCallback)
)

var featureNames = []struct {
	bit  OptionalFeature
	name string
}{
	{FeatureDocumentPassword, "document-password"},
	{FeatureDocumentPasswordToModify, "document-password-to-modify"},
	{FeaturePartInInvalidationCallback, "part-in-invalidation-callback"},
	{FeatureNoTiledAnnotations, "no-tiled-annotations"},
	{FeatureRangeHeaders, "range-headers"},
	{FeatureViewIDInVisCursorInvalidationCallback, "viewid-in-viscursor-invalidation-callback"},
}

func (f OptionalFeature) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	rest := f
	for _, fn := range featureNames {
		if f&fn.bit != 0 {
			parts = append(parts, fn.name)
			rest &^= fn.bit
		}
	}
	if rest != 0 {
		parts = append(parts, "unknown")
	}
	return strings.Join(parts, "|")
}

// Has reports whether every bit in mask is set.
func (f OptionalFeature) Has(mask OptionalFeature) bool {
	return f&mask == mask
}
