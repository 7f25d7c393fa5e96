package sdf

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type AssetId string

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}

// ErrNotReady signals that an asset's inputs are not available yet.
// The request is retryable: callers should ask again on a later
// update rather than treat this as fatal.
var ErrNotReady = errors.New("asset not ready")

// InstanceData positions one surface cell for an instanced draw.
type InstanceData struct {
	Position mgl32.Vec3
}

// RenderAsset is the prepared, renderer-facing form of an object: one
// instance per surface cell at the deepest LOD, each paired with an
// occupancy texture of the cell's neighborhood. Textures[i] belongs to
// InstanceData[i].
type RenderAsset struct {
	CellSize     float32
	InstanceData []InstanceData
	Textures     [][]byte
}

// Preparation parameters for render assets. The occupancy textures use
// the same resolution as the box grid.
const (
	prepareResolution = 8
	prepareMaxLODs    = 4
	prepareMinBoxSize = 0.5
)

// AssetServer owns registered objects and the assets derived from
// them. Not safe for concurrent mutation; the surrounding application
// drives it from its update loop.
type AssetServer struct {
	logger   Logger
	objects  map[AssetId]Object
	meshes   map[AssetId]MeshData
	prepared map[AssetId]RenderAsset
}

func NewAssetServer(logger Logger) *AssetServer {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &AssetServer{
		logger:   logger,
		objects:  map[AssetId]Object{},
		meshes:   map[AssetId]MeshData{},
		prepared: map[AssetId]RenderAsset{},
	}
}

// AddObject registers an object and returns its handle.
func (server *AssetServer) AddObject(object Object) AssetId {
	id := makeAssetId()
	server.objects[id] = object
	return id
}

func (server *AssetServer) Object(id AssetId) (Object, bool) {
	object, ok := server.objects[id]
	return object, ok
}

func (server *AssetServer) Mesh(id AssetId) (MeshData, bool) {
	mesh, ok := server.meshes[id]
	return mesh, ok
}

// PrepareRenderAsset generates instance data and per-instance
// occupancy textures for a registered object. Prepared assets are
// cached: objects are immutable once registered. Returns ErrNotReady
// when the object is unknown or refinement produced no levels yet.
func (server *AssetServer) PrepareRenderAsset(id AssetId) (RenderAsset, error) {
	if asset, ok := server.prepared[id]; ok {
		return asset, nil
	}
	object, ok := server.objects[id]
	if !ok {
		return RenderAsset{}, ErrNotReady
	}

	server.logger.Infof("preparing render asset %s", id)
	lods, err := object.GenerateLODBoxes(GenerateConfig{
		Resolution: prepareResolution,
		MaxLODs:    prepareMaxLODs,
		MinBoxSize: prepareMinBoxSize,
		Logger:     server.logger,
	})
	if err != nil {
		return RenderAsset{}, err
	}
	if len(lods) == 0 {
		return RenderAsset{}, ErrNotReady
	}

	last := lods[len(lods)-1]
	half := last.CellSize / 2
	asset := RenderAsset{CellSize: last.CellSize}
	for _, group := range last.Groups {
		for _, center := range group {
			local := AABB{Min: center.Sub(splat(half)), Max: center.Add(splat(half))}
			texture, err := object.GenerateTexture(prepareResolution, local)
			if err != nil {
				return RenderAsset{}, err
			}
			asset.InstanceData = append(asset.InstanceData, InstanceData{Position: center})
			asset.Textures = append(asset.Textures, texture)
		}
	}
	server.prepared[id] = asset
	return asset, nil
}

// CreateBoxMesh meshes a registered object and stores the result as a
// mesh asset, returning the mesh handle.
func (server *AssetServer) CreateBoxMesh(id AssetId, cfg GenerateConfig) (AssetId, error) {
	object, ok := server.objects[id]
	if !ok {
		return "", ErrNotReady
	}
	mesh, err := object.GenerateBoxMesh(cfg)
	if err != nil {
		return "", err
	}
	meshId := makeAssetId()
	server.meshes[meshId] = mesh
	return meshId, nil
}
