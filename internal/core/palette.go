package core

// chartPalette is the fixed legend palette. Colors are assigned by entry
// position, so a breakdown computed twice from the same input colors
// identically; the old behavior of rolling random colors per render made
// chart output untestable.
var chartPalette = []string{
	"#4E79A7",
	"#F28E2B",
	"#E15759",
	"#76B7B2",
	"#59A14F",
	"#EDC948",
	"#B07AA1",
	"#FF9DA7",
	"#9C755F",
	"#BAB0AC",
}

// ColorAt returns the palette color for entry position i, wrapping around
// when the palette is exhausted. Negative positions get the first color.
func ColorAt(i int) string {
	if i < 0 {
		i = 0
	}
	return chartPalette[i%len(chartPalette)]
}

// PaletteSize returns the number of distinct colors before wraparound.
func PaletteSize() int {
	return len(chartPalette)
}
