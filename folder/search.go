package folder

import (
	"fmt"
	"net/url"
)

// SearchQueryParameter carries the user query in a search URI
const SearchQueryParameter = "query"

// SearchURI returns the locator of the search results for the query, built on the account search URI.
// An account without search URI returns an absent URI.
func SearchURI(accountSearchURI URI, query string) (URI, error) {
	if accountSearchURI.IsZero() {
		return NoURI, nil
	}
	u, err := url.Parse(accountSearchURI.String())
	if err != nil {
		return NoURI, fmt.Errorf("invalid search URI %q: %w", accountSearchURI.String(), err)
	}
	values := u.Query()
	values.Add(SearchQueryParameter, query)
	u.RawQuery = values.Encode()
	return ParseURI(u.String()), nil
}
