package bindings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallbackRegistry(t *testing.T) {
	var got []int
	h := putCallback(func(event int, payload string) {
		got = append(got, event)
	})

	cb, ok := getCallback(h)
	require.True(t, ok, "freshly registered callback must be retrievable")
	cb(7, "payload")
	assert.Equal(t, []int{7}, got)

	delCallback(h)
	_, ok = getCallback(h)
	assert.False(t, ok, "deleted callback must not be retrievable")
}

func TestCallbackRegistryHandlesAreUnique(t *testing.T) {
	h1 := putCallback(func(int, string) {})
	h2 := putCallback(func(int, string) {})
	defer delCallback(h1)
	defer delCallback(h2)

	assert.NotEqual(t, h1, h2)
}

func TestFeatureBitsMatchUpstream(t *testing.T) {
	// The bit values are part of the native ABI and must never drift.
	assert.Equal(t, uint64(1), FeatureDocumentPassword)
	assert.Equal(t, uint64(2), FeatureDocumentPasswordToModify)
	assert.Equal(t, uint64(4), FeaturePartInInvalidationCallback)
	assert.Equal(t, uint64(8), FeatureNoTiledAnnotations)
	assert.Equal(t, uint64(16), FeatureRangeHeaders)
	assert.Equal(t, uint64(32), FeatureViewIDInVisCursorInvalidationCallback)
}
