package ulid

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	id := Generate()
	assert.Empty(t, id.Prefix())
	assert.Len(t, id.String(), 26)
	assert.Equal(t, id.String(), id.RawString())
}

func TestGenerateWithPrefix(t *testing.T) {
	id := GenerateWithPrefix(PrefixRun)
	assert.Equal(t, PrefixRun, id.Prefix())
	assert.True(t, strings.HasPrefix(id.String(), "run-"))
	assert.Len(t, id.RawString(), 26)
}

func TestParse(t *testing.T) {
	t.Run("plain ULID", func(t *testing.T) {
		original := Generate()

		parsed, err := Parse(original.String())
		require.NoError(t, err)
		assert.Equal(t, original.RawString(), parsed.RawString())
		assert.Empty(t, parsed.Prefix())
	})

	t.Run("prefixed ULID", func(t *testing.T) {
		original := GenerateWithPrefix(PrefixFile)

		parsed, err := Parse(original.String())
		require.NoError(t, err)
		assert.Equal(t, PrefixFile, parsed.Prefix())
		assert.Equal(t, original.RawString(), parsed.RawString())
		assert.Equal(t, original.String(), parsed.String())
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := Parse("not-a-ulid")
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	assert.True(t, Validate(Generate().String()))
	assert.True(t, Validate(RunID()))
	assert.False(t, Validate("definitely not valid"))
	assert.False(t, Validate(""))
}

func TestNewWithTime(t *testing.T) {
	ts := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	id := NewWithTime(ts)
	assert.Equal(t, ts.UnixMilli(), id.Time().UnixMilli())
}

func TestMonotonicOrdering(t *testing.T) {
	a := Generate()
	b := Generate()
	assert.True(t, a.RawString() < b.RawString(), "later IDs should sort after earlier ones")
}

func TestRunID(t *testing.T) {
	id := RunID()
	assert.True(t, strings.HasPrefix(id, "run-"))
	assert.True(t, Validate(id))
}

func TestFileID(t *testing.T) {
	id := FileID()
	assert.True(t, strings.HasPrefix(id, "file-"))
	assert.True(t, Validate(id))
}
