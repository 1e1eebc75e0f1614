package folder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchURI(t *testing.T) {
	fixtures := []struct {
		base     string
		query    string
		expected string
	}{
		{"content://mail/account/1/search", "invoice", "content://mail/account/1/search?query=invoice"},
		{"content://mail/account/1/search", "a b&c", "content://mail/account/1/search?query=a+b%26c"},
		{"content://mail/account/1/search?limit=10", "été", "content://mail/account/1/search?limit=10&query=%C3%A9t%C3%A9"},
	}
	for _, fixture := range fixtures {
		t.Run(fixture.query, func(t *testing.T) {
			uri, err := SearchURI(ParseURI(fixture.base), fixture.query)
			require.NoError(t, err)
			assert.Equal(t, fixture.expected, uri.String())
		})
	}
}

func TestSearchURIWithoutAccountSearch(t *testing.T) {
	uri, err := SearchURI(NoURI, "invoice")
	require.NoError(t, err)
	assert.True(t, uri.IsZero())
}

func TestSearchURIInvalid(t *testing.T) {
	_, err := SearchURI(ParseURI("content://mail/%zz"), "invoice")
	assert.Error(t, err)
}
