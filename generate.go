package sdf

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidResolution is returned when a grid resolution is zero or
// negative.
var ErrInvalidResolution = errors.New("grid resolution must be positive")

// GenerateConfig controls LOD box generation.
type GenerateConfig struct {
	// Resolution is the per-axis grid subdivision applied at every
	// refinement level.
	Resolution int
	// MaxLODs caps the number of levels produced.
	MaxLODs int
	// MinBoxSize stops refinement once the previous level's cell size
	// falls below it.
	MinBoxSize float32
	// Logger receives per-level progress. Nil disables logging.
	Logger Logger
}

func (cfg GenerateConfig) Validate() error {
	if cfg.Resolution <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidResolution, cfg.Resolution)
	}
	return nil
}

// LODLevel is one refinement level: the cell edge length and the
// retained cell centers, grouped by the parent cell that produced
// them. Level 0 is a single group.
type LODLevel struct {
	CellSize float32
	Groups   [][]mgl32.Vec3
}

// Count returns the total number of centers across all groups.
func (l LODLevel) Count() int {
	n := 0
	for _, g := range l.Groups {
		n += len(g)
	}
	return n
}

// GenerateBoxes evaluates the field on a resolution^3 grid over bounds
// and returns the cell edge length together with the centers of cells
// that may contain the surface. The grid is cubic: the edge comes from
// the largest bounds extent, so on shorter axes it reaches past the
// box. Degenerate bounds short-circuit to an empty result.
func (o Object) GenerateBoxes(resolution int, bounds AABB) (float32, []mgl32.Vec3, error) {
	if resolution <= 0 {
		return 0, nil, fmt.Errorf("%w, got %d", ErrInvalidResolution, resolution)
	}
	boxSize := bounds.MaxExtent() / float32(resolution)
	if boxSize <= 0 {
		return 0, nil, nil
	}
	halfBoxSize := boxSize / 2
	var boxes []mgl32.Vec3
	for x := 0; x < resolution; x++ {
		px := bounds.Min.X() + float32(x)*boxSize + halfBoxSize
		for y := 0; y < resolution; y++ {
			py := bounds.Min.Y() + float32(y)*boxSize + halfBoxSize
			for z := 0; z < resolution; z++ {
				pz := bounds.Min.Z() + float32(z)*boxSize + halfBoxSize
				point := mgl32.Vec3{px, py, pz}
				if o.surfaceAdjacent(point, boxSize) {
					boxes = append(boxes, point)
				}
			}
		}
	}
	return boxSize, boxes, nil
}

// surfaceAdjacent reports whether a cell centered at point with the
// given edge length may contain the surface. A well-formed SDF is
// 1-Lipschitz, so a cell whose |value| exceeds its edge length cannot
// touch it. Comparing against the full edge rather than the half cell
// diagonal over-selects candidates; downstream consumers depend on
// exactly this inclusion test.
func (o Object) surfaceAdjacent(point mgl32.Vec3, edge float32) bool {
	value := o.ValueAtPoint(point)
	return value <= edge && value >= -edge
}

// GenerateLODBoxes adaptively refines the grid around the surface and
// returns one LODLevel per pass, coarse to fine. Level 0 grids the
// whole object bounds; level k halves the previous cell size and
// re-grids a local bounds around every retained center, emitting one
// group per parent so children stay associated with their parent cell.
// Refinement stops at MaxLODs or when the previous level's cell size
// drops below MinBoxSize.
func (o Object) GenerateLODBoxes(cfg GenerateConfig) ([]LODLevel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = NewNopLogger()
	}

	bounds := o.Bounds()
	var lods []LODLevel
	for len(lods) < cfg.MaxLODs {
		logger.Infof("generating box data for LOD %d, max is %d", len(lods), cfg.MaxLODs)
		if len(lods) == 0 {
			size, boxes, err := o.GenerateBoxes(cfg.Resolution, bounds)
			if err != nil {
				return nil, err
			}
			lods = append(lods, LODLevel{CellSize: size, Groups: [][]mgl32.Vec3{boxes}})
			continue
		}

		last := lods[len(lods)-1]
		if last.CellSize < cfg.MinBoxSize {
			break
		}
		halfSpan := last.CellSize / 2
		next := LODLevel{CellSize: halfSpan / float32(cfg.Resolution)}
		for _, group := range last.Groups {
			for _, center := range group {
				local := AABB{
					Min: center.Sub(splat(halfSpan)),
					Max: center.Add(splat(halfSpan)),
				}
				size, boxes, err := o.GenerateBoxes(cfg.Resolution, local)
				if err != nil {
					return nil, err
				}
				next.CellSize = size
				next.Groups = append(next.Groups, boxes)
			}
		}
		logger.Debugf("LOD %d: cell size %f, %d boxes", len(lods), next.CellSize, next.Count())
		lods = append(lods, next)
	}
	return lods, nil
}
