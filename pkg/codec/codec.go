// Package codec is the serialize/deserialize boundary for the mod list
// file format. The backing file is a YAML sequence of records in display
// order; decoding and encoding round-trip the list exactly, including
// fields modstack itself never inspects.
package codec

import (
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/modstack/pkg/errors"
	"github.com/arthur-debert/modstack/pkg/types"
)

// EmptyListBytes is the payload a freshly created backing file holds.
var EmptyListBytes = []byte("[]\n")

// Decode parses a backing-file payload into an ordered mod list.
// profileName is only used to enrich the error on malformed input.
func Decode(data []byte, profileName string) (types.ModList, error) {
	var list types.ModList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, errors.Wrapf(err, errors.ErrParse,
			"mod list for profile %q is not valid YAML", profileName).
			WithDetail("profile", profileName)
	}
	if list == nil {
		list = types.ModList{}
	}
	return list, nil
}

// Encode serializes a mod list back to the backing-file format,
// preserving order.
func Encode(list types.ModList) ([]byte, error) {
	if list == nil {
		list = types.ModList{}
	}
	data, err := yaml.Marshal(list)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConvert, "mod list could not be serialized")
	}
	return data, nil
}
