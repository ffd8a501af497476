package mendeleev

import (
	"errors"
	"fmt"
)

// Grid dimensions: seven periods plus the lanthanide and actinide rows.
const (
	Rows  = 9
	Cols  = 18
	Slots = Rows * Cols
)

// ErrSlotOutOfRange is returned by Lookup for slots outside [1, Slots].
var ErrSlotOutOfRange = errors.New("slot out of range")

const gap = NoCabinet

// layout is the cabinet wall in reading order. The footnote rows start with
// two blank cells so that La and Ac line up under the third column.
var layout = [Slots]Element{
	H, gap, gap, gap, gap, gap, gap, gap, gap, gap, gap, gap, gap, gap, gap, gap, gap, He,
	Li, Be, gap, gap, gap, gap, gap, gap, gap, gap, gap, gap, B, C, N, O, F, Ne,
	Na, Mg, gap, gap, gap, gap, gap, gap, gap, gap, gap, gap, Al, Si, P, S, Cl, Ar,
	K, Ca, Sc, Ti, V, Cr, Mn, Fe, Co, Ni, Cu, Zn, Ga, Ge, As, Se, Br, Kr,
	Rb, Sr, Y, Zr, Nb, Mo, Tc, Ru, Rh, Pd, Ag, Cd, In, Sn, Sb, Te, I, Xe,
	Cs, Ba, Lu, Hf, Ta, W, Re, Os, Ir, Pt, Au, Hg, Tl, Pb, Bi, Po, At, Rn,
	Fr, Ra, Lr, Rf, Db, Sg, Bh, Hs, Mt, Ds, Rg, Cn, Nh, Fl, Mc, Lv, Ts, Og,
	gap, gap, La, Ce, Pr, Nd, Pm, Sm, Eu, Gd, Tb, Dy, Ho, Er, Tm, Yb, gap, gap,
	gap, gap, Ac, Th, Pa, U, Np, Pu, Am, Cm, Bk, Cf, Es, Fm, Md, No, gap, gap,
}

// Grid maps 1-based slot indexes onto cabinets. It is immutable once built
// and safe for concurrent readers.
type Grid struct {
	cells [Slots]Element
}

// NewGrid builds the grid from the periodic table layout.
func NewGrid() (*Grid, error) {
	g := &Grid{cells: layout}
	seen := make(map[Element]int, MaxElement)
	for pos, e := range g.cells {
		if e == NoCabinet {
			continue
		}
		if !e.Valid() {
			return nil, fmt.Errorf("grid position %d: invalid element %d", pos, e)
		}
		if prev, ok := seen[e]; ok {
			return nil, fmt.Errorf("grid positions %d and %d both hold %s", prev, pos, e)
		}
		seen[e] = pos
	}
	return g, nil
}

// Len returns the number of slots.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Lookup returns the cabinet at the given slot or NoCabinet for a gap.
// Slot 1 is grid position 0.
func (g *Grid) Lookup(slot int) (Element, error) {
	if slot < 1 || slot > len(g.cells) {
		return NoCabinet, fmt.Errorf("%w: %d not in [1, %d]", ErrSlotOutOfRange, slot, len(g.cells))
	}
	return g.cells[slot-1], nil
}

// Position returns the row and column of a 0-based grid position.
func Position(pos int) (row, col int) {
	return pos / Cols, pos % Cols
}
