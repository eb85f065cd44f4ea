// pkg/types/record_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test Record construction and ModList lookups

package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/modstack/pkg/types"
)

func TestNewRecordLiftsName(t *testing.T) {
	rec := types.NewRecord(map[string]interface{}{
		"name":    "quality-tweaks",
		"version": "1.2.0",
		"enabled": true,
	})

	assert.Equal(t, "quality-tweaks", rec.Name)

	_, hasName := rec.Field("name")
	assert.False(t, hasName, "name must not be duplicated into the opaque fields")

	v, ok := rec.Field("version")
	assert.True(t, ok)
	assert.Equal(t, "1.2.0", v)
}

func TestSetFieldAllocates(t *testing.T) {
	var rec types.Record
	rec.SetField("enabled", false)

	v, ok := rec.Field("enabled")
	assert.True(t, ok)
	assert.Equal(t, false, v)
}

func TestIndexOfFirstMatch(t *testing.T) {
	list := types.ModList{
		{Name: "alpha"},
		{Name: "beta"},
		{Name: "beta"},
	}

	assert.Equal(t, 1, list.IndexOf("beta"), "lookup uses first-match semantics")
	assert.Equal(t, -1, list.IndexOf("ghost"))
}

func TestNames(t *testing.T) {
	list := types.ModList{{Name: "alpha"}, {Name: "beta"}}
	assert.Equal(t, []string{"alpha", "beta"}, list.Names())
}
