package sdf

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// SurfaceGrid is a spatial hash over generated surface cell centers.
// LOD levels are flat lists grouped by parent; neighbor context beyond
// that grouping has to be recomputed, and this index answers those
// queries. Results are indices into the insertion order, stable across
// identical inputs.
type SurfaceGrid struct {
	cellSize float32
	cells    map[uint64][]int
	centers  []mgl32.Vec3
}

func NewSurfaceGrid(cellSize float32) *SurfaceGrid {
	return &SurfaceGrid{
		cellSize: cellSize,
		cells:    make(map[uint64][]int),
	}
}

// InsertLevel indexes every center of a level in group order.
func (grid *SurfaceGrid) InsertLevel(level LODLevel) {
	for _, group := range level.Groups {
		for _, center := range group {
			grid.Insert(center)
		}
	}
}

func (grid *SurfaceGrid) Insert(center mgl32.Vec3) int {
	idx := len(grid.centers)
	grid.centers = append(grid.centers, center)
	key := grid.hashKey(
		grid.getCellIndex(center.X()),
		grid.getCellIndex(center.Y()),
		grid.getCellIndex(center.Z()),
	)
	grid.cells[key] = append(grid.cells[key], idx)
	return idx
}

func (grid *SurfaceGrid) Len() int {
	return len(grid.centers)
}

func (grid *SurfaceGrid) Center(idx int) mgl32.Vec3 {
	return grid.centers[idx]
}

// QueryAABB returns the indices of centers inside bounds, inclusive on
// all faces.
func (grid *SurfaceGrid) QueryAABB(bounds AABB) []int {
	minX, maxX := grid.getCellIndex(bounds.Min.X()), grid.getCellIndex(bounds.Max.X())
	minY, maxY := grid.getCellIndex(bounds.Min.Y()), grid.getCellIndex(bounds.Max.Y())
	minZ, maxZ := grid.getCellIndex(bounds.Min.Z()), grid.getCellIndex(bounds.Max.Z())

	seen := make(map[int]struct{})
	var results []int
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				for _, idx := range grid.cells[grid.hashKey(x, y, z)] {
					if _, ok := seen[idx]; ok {
						continue
					}
					seen[idx] = struct{}{}
					if containsPoint(bounds, grid.centers[idx]) {
						results = append(results, idx)
					}
				}
			}
		}
	}
	return results
}

// QueryRadius returns the indices of centers within radius of center.
func (grid *SurfaceGrid) QueryRadius(center mgl32.Vec3, radius float32) []int {
	bounds := AABB{Min: center.Sub(splat(radius)), Max: center.Add(splat(radius))}
	candidates := grid.QueryAABB(bounds)
	var results []int
	for _, idx := range candidates {
		if grid.centers[idx].Sub(center).Len() <= radius {
			results = append(results, idx)
		}
	}
	return results
}

func containsPoint(bounds AABB, p mgl32.Vec3) bool {
	return p.X() >= bounds.Min.X() && p.X() <= bounds.Max.X() &&
		p.Y() >= bounds.Min.Y() && p.Y() <= bounds.Max.Y() &&
		p.Z() >= bounds.Min.Z() && p.Z() <= bounds.Max.Z()
}

func (grid *SurfaceGrid) getCellIndex(pos float32) int {
	return int(math.Floor(float64(pos / grid.cellSize)))
}

// Simple hash function for 3D coordinates
func (grid *SurfaceGrid) hashKey(x, y, z int) uint64 {
	// large primes for mixing
	const p1 = 73856093
	const p2 = 19349663
	const p3 = 83492791
	return uint64(x*p1 ^ y*p2 ^ z*p3)
}
