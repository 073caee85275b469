package runid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefix(t *testing.T) {
	assert.Equal(t, "run", New("run").Prefix())
}

func TestStringFormat(t *testing.T) {
	id := New("run")
	assert.Regexp(t, "^run_[a-zA-Z0-9]{24}$", id.String())
	assert.Equal(t, id.String(), id.String())
}

func TestUnique(t *testing.T) {
	assert.NotEqual(t, New("run").String(), New("run").String())
}

func TestRoundTrip(t *testing.T) {
	for i := 0; i < 500; i++ {
		id := New("run")
		slug, err := decodeSlug(id.Slug())
		require.NoError(t, err)
		assert.Equal(t, id.value[:slugNumBytes], slug)
		assert.Equal(t, id.value[slugNumBytes:], decodeSuffix(encodeSuffix(id.value[slugNumBytes:])))
	}
}
