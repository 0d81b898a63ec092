package sqlite

import (
	"testing"

	"navshortcut/internal/domain/repository"
	"navshortcut/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReference_RoundTrip(t *testing.T) {
	ref := FormatReference(42)
	assert.Equal(t, "content://contacts/data/42", ref)

	id, err := ParseReference(ref)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestParseReference_Invalid(t *testing.T) {
	tests := []string{
		"",
		"content://contacts/data/",
		"content://contacts/data/abc",
		"content://contacts/data/-1",
		"content://contacts/people/1",
		"http://contacts/data/1",
		"%zz",
	}

	for _, ref := range tests {
		t.Run(ref, func(t *testing.T) {
			_, err := ParseReference(ref)
			assert.True(t, errors.Is(err, repository.ErrInvalidReference))
		})
	}
}
