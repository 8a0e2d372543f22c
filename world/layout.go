package world

// Layout describes the scrollable world: a GridWidth x GridHeight grid of
// cells, each exactly one viewport in size.
type Layout struct {
	ViewportWidth  float64
	ViewportHeight float64
	BufferWidth    float64
	BufferHeight   float64
	GridWidth      int
	GridHeight     int
}

// WorldOffset is the camera offset the host reads every frame. It is only
// ever produced by the player update.
type WorldOffset struct {
	X, Y       float64
	GridWidth  int
	GridHeight int
}

func (l Layout) Viewport() Vector {
	return Vector{X: l.ViewportWidth, Y: l.ViewportHeight}
}

// Extent is the size of the whole world in world units.
func (l Layout) Extent() Vector {
	return Vector{
		X: float64(l.GridWidth) * l.ViewportWidth,
		Y: float64(l.GridHeight) * l.ViewportHeight,
	}
}

// Contains reports whether p lies in [0, extent) on both axes.
func (l Layout) Contains(p Vector) bool {
	e := l.Extent()
	return p.X >= 0 && p.X < e.X && p.Y >= 0 && p.Y < e.Y
}

// ToScreen converts a world position into render space, which is centred
// on the viewport with y pointing up.
func (l Layout) ToScreen(p Vector, offset WorldOffset) Vector {
	return Vector{
		X: p.X - offset.X - l.ViewportWidth/2,
		Y: p.Y - offset.Y - l.ViewportHeight/2,
	}
}

// TrackPointer converts a pointer position in window pixels (origin top
// left, y down) into render space.
func (l Layout) TrackPointer(pointer Vector) Vector {
	return Vector{
		X: pointer.X - l.ViewportWidth/2,
		Y: -(pointer.Y - l.ViewportHeight/2),
	}
}

// PointerFor is the inverse of TrackPointer.
func (l Layout) PointerFor(render Vector) Vector {
	return Vector{
		X: render.X + l.ViewportWidth/2,
		Y: l.ViewportHeight/2 - render.Y,
	}
}

// TileScreenPos is where the background cell (x, y) is drawn for offset.
func (l Layout) TileScreenPos(x, y int, offset WorldOffset) Vector {
	return Vector{
		X: float64(x)*l.ViewportWidth - offset.X,
		Y: float64(y)*l.ViewportHeight - offset.Y,
	}
}

// clampToWorld keeps p inside the buffered world bounds.
func (l Layout) clampToWorld(p Vector) Vector {
	e := l.Extent()
	p.X = clamp(p.X, l.BufferWidth, e.X-l.BufferWidth)
	p.Y = clamp(p.Y, l.BufferHeight, e.Y-l.BufferHeight)
	return p
}

// cameraAxis applies the three zone camera rule on one axis and returns the
// offset for a player at pos in a world of the given extent.
func cameraAxis(pos, extent, viewport float64) float64 {
	switch {
	case pos <= viewport/2:
		return 0
	case pos >= extent-viewport/2:
		return extent - viewport
	default:
		return pos - viewport/2
	}
}

func (l Layout) offsetFor(p Vector) WorldOffset {
	e := l.Extent()
	return WorldOffset{
		X:          cameraAxis(p.X, e.X, l.ViewportWidth),
		Y:          cameraAxis(p.Y, e.Y, l.ViewportHeight),
		GridWidth:  l.GridWidth,
		GridHeight: l.GridHeight,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
