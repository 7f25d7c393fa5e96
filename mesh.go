package sdf

import (
	"github.com/go-gl/mathgl/mgl32"
)

// MeshData is a triangle-list mesh with parallel per-vertex attribute
// arrays, ready for upload by the rendering layer.
type MeshData struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []uint32
}

// boxFaceIndices is the index pattern of one cube: two triangles per
// face, referencing the 24 face-local vertices appendBox emits.
var boxFaceIndices = [36]uint32{
	0, 1, 2, 2, 3, 0, // +z
	4, 5, 6, 6, 7, 4, // -z
	8, 9, 10, 10, 11, 8, // +x
	12, 13, 14, 14, 15, 12, // -x
	16, 17, 18, 18, 19, 16, // +y
	20, 21, 22, 22, 23, 20, // -y
}

// appendBox appends one axis-aligned cube centered at center with the
// given edge length: 24 vertices (4 per face, so normals stay flat)
// and 36 indices offset past the vertices already in the mesh. Cubes
// never share vertices, deliberately; the result is a voxel soup, not
// topology-optimized geometry.
func (m *MeshData) appendBox(center mgl32.Vec3, size float32) {
	half := size / 2
	min := center.Sub(splat(half))
	max := center.Add(splat(half))

	type vertex struct {
		position mgl32.Vec3
		normal   mgl32.Vec3
		uv       mgl32.Vec2
	}
	vertices := [24]vertex{
		// +z
		{mgl32.Vec3{min.X(), min.Y(), max.Z()}, mgl32.Vec3{0, 0, 1}, mgl32.Vec2{0, 0}},
		{mgl32.Vec3{max.X(), min.Y(), max.Z()}, mgl32.Vec3{0, 0, 1}, mgl32.Vec2{1, 0}},
		{mgl32.Vec3{max.X(), max.Y(), max.Z()}, mgl32.Vec3{0, 0, 1}, mgl32.Vec2{1, 1}},
		{mgl32.Vec3{min.X(), max.Y(), max.Z()}, mgl32.Vec3{0, 0, 1}, mgl32.Vec2{0, 1}},
		// -z
		{mgl32.Vec3{min.X(), max.Y(), min.Z()}, mgl32.Vec3{0, 0, -1}, mgl32.Vec2{1, 0}},
		{mgl32.Vec3{max.X(), max.Y(), min.Z()}, mgl32.Vec3{0, 0, -1}, mgl32.Vec2{0, 0}},
		{mgl32.Vec3{max.X(), min.Y(), min.Z()}, mgl32.Vec3{0, 0, -1}, mgl32.Vec2{0, 1}},
		{mgl32.Vec3{min.X(), min.Y(), min.Z()}, mgl32.Vec3{0, 0, -1}, mgl32.Vec2{1, 1}},
		// +x
		{mgl32.Vec3{max.X(), min.Y(), min.Z()}, mgl32.Vec3{1, 0, 0}, mgl32.Vec2{0, 0}},
		{mgl32.Vec3{max.X(), max.Y(), min.Z()}, mgl32.Vec3{1, 0, 0}, mgl32.Vec2{1, 0}},
		{mgl32.Vec3{max.X(), max.Y(), max.Z()}, mgl32.Vec3{1, 0, 0}, mgl32.Vec2{1, 1}},
		{mgl32.Vec3{max.X(), min.Y(), max.Z()}, mgl32.Vec3{1, 0, 0}, mgl32.Vec2{0, 1}},
		// -x
		{mgl32.Vec3{min.X(), min.Y(), max.Z()}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec2{1, 0}},
		{mgl32.Vec3{min.X(), max.Y(), max.Z()}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec2{0, 0}},
		{mgl32.Vec3{min.X(), max.Y(), min.Z()}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec2{0, 1}},
		{mgl32.Vec3{min.X(), min.Y(), min.Z()}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec2{1, 1}},
		// +y
		{mgl32.Vec3{max.X(), max.Y(), min.Z()}, mgl32.Vec3{0, 1, 0}, mgl32.Vec2{1, 0}},
		{mgl32.Vec3{min.X(), max.Y(), min.Z()}, mgl32.Vec3{0, 1, 0}, mgl32.Vec2{0, 0}},
		{mgl32.Vec3{min.X(), max.Y(), max.Z()}, mgl32.Vec3{0, 1, 0}, mgl32.Vec2{0, 1}},
		{mgl32.Vec3{max.X(), max.Y(), max.Z()}, mgl32.Vec3{0, 1, 0}, mgl32.Vec2{1, 1}},
		// -y
		{mgl32.Vec3{max.X(), min.Y(), max.Z()}, mgl32.Vec3{0, -1, 0}, mgl32.Vec2{0, 0}},
		{mgl32.Vec3{min.X(), min.Y(), max.Z()}, mgl32.Vec3{0, -1, 0}, mgl32.Vec2{1, 0}},
		{mgl32.Vec3{min.X(), min.Y(), min.Z()}, mgl32.Vec3{0, -1, 0}, mgl32.Vec2{1, 1}},
		{mgl32.Vec3{max.X(), min.Y(), min.Z()}, mgl32.Vec3{0, -1, 0}, mgl32.Vec2{0, 1}},
	}

	base := uint32(len(m.Positions))
	for _, v := range vertices {
		m.Positions = append(m.Positions, v.position)
		m.Normals = append(m.Normals, v.normal)
		m.UVs = append(m.UVs, v.uv)
	}
	for _, idx := range boxFaceIndices {
		m.Indices = append(m.Indices, base+idx)
	}
}

// GenerateBoxMesh meshes the deepest LOD level as one independent cube
// per surviving cell, sized to that level's cell edge. When generation
// yields no boxes at all the result falls back to a unit cube at the
// origin so consumers always receive valid geometry.
func (o Object) GenerateBoxMesh(cfg GenerateConfig) (MeshData, error) {
	lods, err := o.GenerateLODBoxes(cfg)
	if err != nil {
		return MeshData{}, err
	}

	var mesh MeshData
	if len(lods) > 0 {
		last := lods[len(lods)-1]
		for _, group := range last.Groups {
			for _, center := range group {
				mesh.appendBox(center, last.CellSize)
			}
		}
	}
	if len(mesh.Positions) == 0 {
		mesh.appendBox(mgl32.Vec3{}, 1)
	}
	return mesh, nil
}
