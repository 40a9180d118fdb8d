package subiso_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/subiso/subiso"
)

func TestVerify(t *testing.T) {
	t.Parallel()

	target := graphOf(t, [][2]string{{"1", "2"}, {"2", "3"}, {"3", "1"}, {"3", "4"}, {"4", "4"}})
	pattern := graphOf(t, [][2]string{{"a", "b"}, {"b", "c"}})
	loopy := graphOf(t, [][2]string{{"x", "x"}})

	tests := []struct {
		name    string
		pattern subiso.View
		m       subiso.Mapping
		want    error
	}{
		{"valid", pattern, subiso.Mapping{"a": "1", "b": "2", "c": "3"}, nil},
		{"valid non-induced", pattern, subiso.Mapping{"a": "2", "b": "3", "c": "1"}, nil},
		{"missing image", pattern, subiso.Mapping{"a": "1", "b": "2"}, subiso.ErrIncompleteMapping},
		{"nil mapping", pattern, nil, subiso.ErrIncompleteMapping},
		{"extra key", pattern, subiso.Mapping{"a": "1", "b": "2", "c": "3", "q": "4"}, subiso.ErrUnknownVertex},
		{"unknown image", pattern, subiso.Mapping{"a": "1", "b": "2", "c": "9"}, subiso.ErrUnknownVertex},
		{"not injective", pattern, subiso.Mapping{"a": "1", "b": "2", "c": "1"}, subiso.ErrNotInjective},
		{"edge lost", pattern, subiso.Mapping{"a": "1", "b": "4", "c": "3"}, subiso.ErrEdgeNotPreserved},
		{"loop kept", loopy, subiso.Mapping{"x": "4"}, nil},
		{"loop lost", loopy, subiso.Mapping{"x": "1"}, subiso.ErrEdgeNotPreserved},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := subiso.Verify(target, tc.pattern, tc.m)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, subiso.ErrInvalidMapping)
		})
	}
}

func TestVerify_EmptyPatternAndNil(t *testing.T) {
	t.Parallel()

	target := graphOf(t, [][2]string{{"1", "2"}})
	empty := graphOf(t, nil)

	assert.NoError(t, subiso.Verify(target, empty, subiso.Mapping{}))
	assert.NoError(t, subiso.Verify(target, empty, nil))
	assert.ErrorIs(t, subiso.Verify(nil, empty, nil), subiso.ErrGraphNil)
}
