package sdf

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// GenerateTexture rasterizes the field over bounds into a
// resolution^3 occupancy buffer: one byte per cell, 1 when the cell
// may contain the surface by the same inclusion test GenerateBoxes
// uses. The layout is row-major with x outermost, y middle and z
// innermost; GPU upload code relies on that ordering byte for byte.
func (o Object) GenerateTexture(resolution int, bounds AABB) ([]byte, error) {
	if resolution <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidResolution, resolution)
	}
	boxSize := bounds.MaxExtent() / float32(resolution)
	if boxSize <= 0 {
		// Degenerate bounds: nothing is surface-adjacent.
		return make([]byte, resolution*resolution*resolution), nil
	}
	texels := make([]byte, 0, resolution*resolution*resolution)
	halfBoxSize := boxSize / 2
	for x := 0; x < resolution; x++ {
		px := bounds.Min.X() + float32(x)*boxSize + halfBoxSize
		for y := 0; y < resolution; y++ {
			py := bounds.Min.Y() + float32(y)*boxSize + halfBoxSize
			for z := 0; z < resolution; z++ {
				pz := bounds.Min.Z() + float32(z)*boxSize + halfBoxSize
				if o.surfaceAdjacent(mgl32.Vec3{px, py, pz}, boxSize) {
					texels = append(texels, 1)
				} else {
					texels = append(texels, 0)
				}
			}
		}
	}
	return texels, nil
}
