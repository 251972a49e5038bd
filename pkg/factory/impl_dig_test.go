/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package factory

import (
	"testing"

	"github.com/stretchr/testify/require"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

func Test_Dig(t *testing.T) {
	require := require.New(t)

	address := MustNew([]string{"city", "zip"}, WithName("Address"))
	person := MustNew([]string{"name", "address", "meta", "tags", "opts"}, WithName("Person"))

	opts := orderedmap.New[string, any]()
	opts.Set("color", "green")

	r := person.MustNew(
		"Ann",
		address.MustNew("Riga", "LV-1010"),
		map[string]any{"level": map[string]any{"deep": 42}},
		[]any{"a", map[string]any{"b": "c"}},
		opts,
	)

	tests := []struct {
		name string
		path []Key
		want any
	}{
		{"field", []Key{Name("name")}, "Ann"},
		{"nested record", []Key{Name("address"), Name("city")}, "Riga"},
		{"nested map", []Key{Name("meta"), Name("level"), Name("deep")}, 42},
		{"nested slice", []Key{Name("tags"), Position(0)}, "a"},
		{"nested slice from end", []Key{Name("tags"), Position(-1), Name("b")}, "c"},
		{"nested ordered map", []Key{Name("opts"), Name("color")}, "green"},
		// misses
		{"no path", nil, nil},
		{"missing field", []Key{Name("missing")}, nil},
		{"position as first key", []Key{Position(0)}, nil},
		{"missing nested field", []Key{Name("address"), Name("street")}, nil},
		{"missing nested map key", []Key{Name("meta"), Name("nothing"), Name("deep")}, nil},
		{"slice out of range", []Key{Name("tags"), Position(2)}, nil},
		{"slice by name", []Key{Name("tags"), Name("a")}, nil},
		{"map by position", []Key{Name("meta"), Position(0)}, nil},
		{"scalar is not diggable", []Key{Name("name"), Name("first")}, nil},
		{"null key", []Key{{}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(tt.want, r.Dig(tt.path...))
		})
	}

	t.Run("should dig nil field without error", func(t *testing.T) {
		r := person.MustNew("Bob")
		require.Nil(r.Dig(Name("address"), Name("city")))
		require.Nil(r.Dig(Name("address")))
	})
}
