package mendeleev

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid()
	require.NoError(t, err)
	assert.Equal(t, Slots, g.Len())
	assert.Equal(t, 162, g.Len())
}

func TestGridLookup(t *testing.T) {
	g, err := NewGrid()
	require.NoError(t, err)

	tests := []struct {
		name string
		slot int
		want Element
	}{
		{"hydrogen first cell", 1, H},
		{"period one gap", 2, NoCabinet},
		{"helium last column", 18, He},
		{"lithium", 19, Li},
		{"boron after transition gap", 31, B},
		{"potassium starts full row", 55, K},
		{"yttrium", 75, Y},
		{"lutetium under yttrium", 93, Lu},
		{"oganesson end of period seven", 126, Og},
		{"lanthanide row blank", 127, NoCabinet},
		{"lanthanide row second blank", 128, NoCabinet},
		{"lanthanum", 129, La},
		{"ytterbium", 142, Yb},
		{"lanthanide row trailing blank", 143, NoCabinet},
		{"actinium", 147, Ac},
		{"nobelium", 160, No},
		{"last slot", 162, NoCabinet},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.Lookup(tt.slot)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGridLookupOutOfRange(t *testing.T) {
	g, err := NewGrid()
	require.NoError(t, err)

	for _, slot := range []int{-1, 0, Slots + 1, 1000} {
		e, err := g.Lookup(slot)
		assert.ErrorIs(t, err, ErrSlotOutOfRange, "slot %d", slot)
		assert.Equal(t, NoCabinet, e)
	}
}

func TestGridLookupDeterministic(t *testing.T) {
	a, err := NewGrid()
	require.NoError(t, err)
	b, err := NewGrid()
	require.NoError(t, err)

	for slot := 1; slot <= Slots; slot++ {
		first, err := a.Lookup(slot)
		require.NoError(t, err)
		again, err := a.Lookup(slot)
		require.NoError(t, err)
		other, err := b.Lookup(slot)
		require.NoError(t, err)

		assert.Equal(t, first, again)
		assert.Equal(t, first, other)
	}
}

func TestGridHoldsEveryElementOnce(t *testing.T) {
	g, err := NewGrid()
	require.NoError(t, err)

	seen := map[Element]int{}
	gaps := 0
	for slot := 1; slot <= g.Len(); slot++ {
		e, err := g.Lookup(slot)
		require.NoError(t, err)
		if e == NoCabinet {
			gaps++
			continue
		}
		prev, dup := seen[e]
		assert.False(t, dup, "%s at slots %d and %d", e, prev, slot)
		seen[e] = slot
	}

	assert.Len(t, seen, int(MaxElement))
	assert.Equal(t, Slots-int(MaxElement), gaps)
}

func TestGridGapRows(t *testing.T) {
	g, err := NewGrid()
	require.NoError(t, err)

	// Period 1 holds only H and He; periods 2 and 3 skip the d-block.
	for pos := 1; pos < 17; pos++ {
		e, _ := g.Lookup(pos + 1)
		assert.Equal(t, NoCabinet, e, "period 1 position %d", pos)
	}
	for _, row := range []int{1, 2} {
		for col := 2; col < 12; col++ {
			e, _ := g.Lookup(row*Cols + col + 1)
			assert.Equal(t, NoCabinet, e, "row %d col %d", row, col)
		}
	}
	for _, row := range []int{7, 8} {
		for _, col := range []int{0, 1, 16, 17} {
			e, _ := g.Lookup(row*Cols + col + 1)
			assert.Equal(t, NoCabinet, e, "row %d col %d", row, col)
		}
	}
}

func TestPosition(t *testing.T) {
	row, col := Position(0)
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)

	row, col = Position(Slots - 1)
	assert.Equal(t, Rows-1, row)
	assert.Equal(t, Cols-1, col)
}

func TestElementNames(t *testing.T) {
	assert.Equal(t, "He", He.Symbol())
	assert.Equal(t, "Helium", He.Name())
	assert.Equal(t, "Og", Og.String())
	assert.Equal(t, "", NoCabinet.Symbol())
	assert.Equal(t, "Element(0)", NoCabinet.String())
	assert.False(t, Element(119).Valid())

	for e := H; e <= MaxElement; e++ {
		assert.NotEmpty(t, e.Symbol(), "element %d", int(e))
		assert.NotEmpty(t, e.Name(), "element %d", int(e))
	}
}

func TestTopics(t *testing.T) {
	assert.Equal(t, "mendeleev/1/setcolor", Topics{}.SetColor(H))
	assert.Equal(t, "mendeleev/118/setcolor", Topics{Prefix: "mendeleev"}.SetColor(Og))
	assert.Equal(t, "wall/26/setcolor", Topics{Prefix: "wall"}.SetColor(Fe))
	assert.Equal(t, "mendeleev/bridge/status", Topics{}.Status())
}
