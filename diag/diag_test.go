package diag

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Message(t *testing.T) {
	err := Newf(KindParse, "parse", "3bogus", "unknown unit %q", "bogus")

	assert.Contains(t, err.Error(), "parse")
	assert.Contains(t, err.Error(), `unknown unit "bogus"`)
	assert.Contains(t, err.Error(), `"3bogus"`)
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(KindConfiguration, "define", "km", cause)

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "boom")
}

func TestIsKind(t *testing.T) {
	inner := Newf(KindLookup, "resolve", "parsec", "undefined unit")
	outer := fmt.Errorf("while parsing: %w", Wrap(KindParse, "parse", "1parsec", inner))

	assert.True(t, IsKind(outer, KindParse))
	assert.True(t, IsKind(outer, KindLookup))
	assert.False(t, IsKind(outer, KindTypeMismatch))
	assert.False(t, IsKind(errors.New("plain"), KindParse))
	assert.False(t, IsKind(nil, KindParse))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "configuration", KindConfiguration.String())
	assert.Equal(t, "type mismatch", KindTypeMismatch.String())
}
