package game

import "image/color"

// Archetype is the visual style of an invader, selected by its grid row.
type Archetype int

const (
	ArchetypeBlock   Archetype = iota // filled square
	ArchetypeChevron                  // upward triangle
	ArchetypeOrb                      // circle
	ArchetypeDart                     // downward triangle
	ArchetypeSpire                    // upward triangle, second palette
	archetypeCount
)

func (a Archetype) String() string {
	switch a {
	case ArchetypeBlock:
		return "block"
	case ArchetypeChevron:
		return "chevron"
	case ArchetypeOrb:
		return "orb"
	case ArchetypeDart:
		return "dart"
	case ArchetypeSpire:
		return "spire"
	default:
		return "unknown"
	}
}

func archetypeForRow(row int) Archetype {
	if row < 0 || row >= int(archetypeCount) {
		return ArchetypeBlock
	}
	return Archetype(row)
}

// drawInvaderFunc renders one archetype centred on (x,y).
type drawInvaderFunc func(c Canvas, x, y float64, clr color.RGBA)

const invaderHalf = invaderSize / 2

var invaderDrawers = [archetypeCount]drawInvaderFunc{
	ArchetypeBlock: func(c Canvas, x, y float64, clr color.RGBA) {
		c.FillRect(x-invaderHalf, y-invaderHalf, invaderSize, invaderSize, clr)
	},
	ArchetypeChevron: func(c Canvas, x, y float64, clr color.RGBA) {
		c.FillTriangle(x, y-invaderHalf, x-invaderHalf, y+invaderHalf, x+invaderHalf, y+invaderHalf, clr)
	},
	ArchetypeOrb: func(c Canvas, x, y float64, clr color.RGBA) {
		c.FillCircle(x, y, invaderHalf, clr)
	},
	ArchetypeDart: func(c Canvas, x, y float64, clr color.RGBA) {
		c.FillTriangle(x-invaderHalf, y-invaderHalf, x+invaderHalf, y-invaderHalf, x, y+invaderHalf, clr)
	},
	ArchetypeSpire: func(c Canvas, x, y float64, clr color.RGBA) {
		c.FillTriangle(x-invaderHalf, y+invaderHalf, x+invaderHalf, y+invaderHalf, x, y-invaderHalf, clr)
	},
}

// Color returns the archetype's fill colour.
func (a Archetype) Color() color.RGBA {
	switch a {
	case ArchetypeBlock, ArchetypeDart:
		return colorCyan
	case ArchetypeChevron, ArchetypeSpire:
		return colorMagenta
	default:
		return colorWhite
	}
}
