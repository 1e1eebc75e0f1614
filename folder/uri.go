package folder

import (
	"encoding/json"
	"fmt"

	"github.com/creativeprojects/folders/parcel"
)

const uriParcelName = "folders.URI"

// NoURI is the absent URI
var NoURI URI

// URI is an opaque resource locator. The zero value is an absent URI,
// which is different from a present URI with an empty string.
type URI struct {
	raw   string
	valid bool
}

// ParseURI always returns a present URI
func ParseURI(raw string) URI {
	return URI{
		raw:   raw,
		valid: true,
	}
}

// optionalURI returns an absent URI for an empty string
func optionalURI(raw string) URI {
	if raw == "" {
		return NoURI
	}
	return ParseURI(raw)
}

func (u URI) IsZero() bool {
	return !u.valid
}

// String returns the raw form of the URI, or an empty string when absent
func (u URI) String() string {
	return u.raw
}

func (u URI) MarshalJSON() ([]byte, error) {
	if !u.valid {
		return []byte("null"), nil
	}
	return json.Marshal(u.raw)
}

func (u *URI) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*u = NoURI
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*u = ParseURI(raw)
	return nil
}

func (u URI) ParcelName() string {
	return uriParcelName
}

func (u URI) WriteToParcel(p *parcel.Parcel) error {
	return p.WriteString(u.raw)
}

func writeURI(p *parcel.Parcel, u URI) error {
	if !u.valid {
		return p.WriteParcelable(nil)
	}
	return p.WriteParcelable(u)
}

func readURI(p *parcel.Parcel, registry *parcel.Registry) (URI, error) {
	value, err := p.ReadParcelable(registry)
	if err != nil || value == nil {
		return NoURI, err
	}
	u, ok := value.(URI)
	if !ok {
		return NoURI, fmt.Errorf("expected %s but found %s", uriParcelName, value.ParcelName())
	}
	return u, nil
}

func createURIFromParcel(p *parcel.Parcel, _ *parcel.Registry) (parcel.Parcelable, error) {
	raw, err := p.ReadString()
	if err != nil {
		return nil, err
	}
	return ParseURI(raw), nil
}
