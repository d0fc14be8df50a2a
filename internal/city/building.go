package city

// Building is one placed tower. Footprint and Height never change after
// construction; window state does, and every such change bumps Revision so a
// renderer holding compiled geometry for ID knows to rebuild it.
type Building struct {
	ID        uint64
	Footprint Footprint
	Height    float64
	Windows   []Window

	lights   []Color
	layout   WindowLayout
	rng      *Rand
	revision uint64
}

// NewBuilding lays out the windows for fp and height using lights.
func NewBuilding(id uint64, fp Footprint, height float64, lights []Color, layout WindowLayout, r *Rand) *Building {
	return &Building{
		ID:        id,
		Footprint: fp,
		Height:    height,
		Windows:   BuildWindows(fp, height, lights, layout, r),
		lights:    lights,
		layout:    layout,
		rng:       r,
	}
}

// Revision increases every time window state changes.
func (b *Building) Revision() uint64 { return b.revision }

// Lights returns the light set windows are currently coloured from.
func (b *Building) Lights() []Color { return b.lights }

// Flicker toggles one uniformly chosen window and returns its index, or -1
// when the building has no windows.
func (b *Building) Flicker() int {
	if len(b.Windows) == 0 {
		return -1
	}
	i := b.rng.Intn(len(b.Windows))
	b.Windows[i].Lit = !b.Windows[i].Lit
	b.revision++
	return i
}

// RecolorForTheme swaps in a new light set and re-rolls every window colour
// from it. Lit state is kept.
func (b *Building) RecolorForTheme(lights []Color) {
	mustLights(lights)
	b.lights = lights
	for i := range b.Windows {
		b.Windows[i].Color = lights[b.rng.Intn(len(lights))]
	}
	b.revision++
}

// LitCount returns how many windows are currently lit.
func (b *Building) LitCount() int {
	n := 0
	for _, w := range b.Windows {
		if w.Lit {
			n++
		}
	}
	return n
}

// Roof returns the world-space centre of the roof.
func (b *Building) Roof() (x, y, z float64) {
	cx, cz := b.Footprint.Center()
	return cx, b.Height, cz
}
