package strokes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/tuitrace/internal/alphabet"
)

func TestBuiltinCoversAlphabets(t *testing.T) {
	reg := Default()
	for _, lang := range alphabet.Languages() {
		letters, err := alphabet.Letters(lang)
		require.NoError(t, err)
		for _, id := range letters {
			assert.True(t, reg.Has(id), "missing stroke data for %s letter %q", lang, id)
		}
	}
}

func TestBuiltinCheckpointsNormalized(t *testing.T) {
	for _, l := range Builtin() {
		require.NotEmpty(t, l.Strokes, "letter %q has no strokes", l.ID)
		for si, s := range l.Strokes {
			require.NotEmpty(t, s, "letter %q stroke %d is empty", l.ID, si)
			for ci, c := range s {
				assert.True(t, c.X >= 0 && c.X <= 1 && c.Y >= 0 && c.Y <= 1,
					"letter %q stroke %d checkpoint %d out of range: %+v", l.ID, si, ci, c)
			}
		}
		assert.NoError(t, l.Validate(), "letter %q", l.ID)
	}
}

func TestLookupUnknownLetter(t *testing.T) {
	_, ok := Lookup("★")
	assert.False(t, ok)
	assert.False(t, Has(""))
}

func TestLookupNormalizesAndCopies(t *testing.T) {
	l, ok := Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "A", l.ID)

	l.Strokes[0][0].X = 0.99
	again, ok := Lookup("A")
	require.True(t, ok)
	assert.NotEqual(t, 0.99, again.Strokes[0][0].X, "lookup must not expose registry storage")
}

func TestLookupRejectsEmptyGeometry(t *testing.T) {
	reg := NewRegistry([]LetterStrokeData{{ID: "A"}, {ID: "B", Strokes: []Stroke{{}}}})
	assert.False(t, reg.Has("A"))
	assert.False(t, reg.Has("B"))
	assert.Equal(t, 2, reg.Len())
}

func TestRegistryOverride(t *testing.T) {
	custom := letter("A", dot(.5, .5))
	reg := NewRegistry(Builtin(), []LetterStrokeData{custom})
	l, ok := reg.Lookup("A")
	require.True(t, ok)
	assert.Equal(t, 1, l.TotalCheckpoints())
	assert.Equal(t, Default().Len(), reg.Len())
}

func TestGeometryHelpers(t *testing.T) {
	l := LetterStrokeData{ID: "X", Strokes: []Stroke{
		path(.1, .2, .3, .4),
		{},
		path(.5, .9),
	}}
	assert.Equal(t, 3, l.TotalCheckpoints())
	assert.Equal(t, 2, l.CheckpointsBefore(1))
	assert.Equal(t, 2, l.CheckpointsBefore(2))
	assert.Equal(t, []int{0, 2}, l.NonEmptyStrokes())

	minX, minY, maxX, maxY, ok := l.Bounds()
	require.True(t, ok)
	assert.Equal(t, []float64{.1, .2, .5, .9}, []float64{minX, minY, maxX, maxY})

	_, _, _, _, ok = LetterStrokeData{}.Bounds()
	assert.False(t, ok)
}

func TestJoinDropsRepeatedCheckpoint(t *testing.T) {
	s := join(line(0, 0, 1, 0), line(1, 0, 1, 1))
	assert.Len(t, s, 5)
}
