package objmesh

import "math"

// Absent is the distinguished index value marking an omitted texture or
// normal slot in a FaceVertex. OBJ indices are 1-based in the source file
// and 0-based once normalized; normalizeIndex never yields the maximum
// uint32 value for a real index, so it cannot occur legitimately.
const Absent uint32 = math.MaxUint32

// Position is a vertex position (v line).
type Position struct {
	X, Y, Z float32
}

// TexCoord is a texture coordinate (vt line). V defaults to 0 when the
// source line omits it.
type TexCoord struct {
	U, V float32
}

// Normal is a vertex normal (vn line).
type Normal struct {
	X, Y, Z float32
}

// FaceVertex references one corner of a face: a position index and
// optional texture/normal indices. All indices are 0-based absolute into
// the assembled Mesh once normalized; Absent marks an omitted slot.
type FaceVertex struct {
	Position uint32
	Texture  uint32
	Normal   uint32
}

// Mesh is the assembled result of an import, or the input to an export.
// Faces are stored as a flat tape of FaceVertex entries sliced by a
// parallel sequence of per-face lengths, avoiding one heap allocation per
// face and preserving arbitrary face arity.
type Mesh struct {
	Positions   []Position
	TexCoords   []TexCoord
	Normals     []Normal
	FaceTape    []FaceVertex
	FaceLengths []uint32
}

// Clear resets the mesh to its zero-length state while retaining backing
// storage, matching the import failure policy: on failure the Mesh is left
// in its pre-call (cleared) state.
func (m *Mesh) Clear() {
	m.Positions = m.Positions[:0]
	m.TexCoords = m.TexCoords[:0]
	m.Normals = m.Normals[:0]
	m.FaceTape = m.FaceTape[:0]
	m.FaceLengths = m.FaceLengths[:0]
}

// NumFaces reports the number of faces recorded in FaceLengths.
func (m *Mesh) NumFaces() int {
	return len(m.FaceLengths)
}

// Face returns the FaceVertex slice for the face at index i, computed by
// walking FaceLengths. Callers iterating every face should prefer walking
// FaceTape directly with a running offset; this is a convenience for
// random access (tests, tooling).
func (m *Mesh) Face(i int) []FaceVertex {
	off := 0
	for j := 0; j < i; j++ {
		off += int(m.FaceLengths[j])
	}
	return m.FaceTape[off : off+int(m.FaceLengths[i])]
}

// localStore is the per-consumer owned accumulator. Same shape as Mesh; only
// the owning consumer goroutine appends to it during the parse phase.
type localStore struct {
	positions   []Position
	texcoords   []TexCoord
	normals     []Normal
	faceTape    []FaceVertex
	faceLengths []uint32
}

// span captures the [begin, end) sizes of a localStore before and after
// processing one batch.
type span struct {
	positionsBegin, positionsEnd     uint32
	texcoordsBegin, texcoordsEnd     uint32
	normalsBegin, normalsEnd         uint32
	faceTapeBegin, faceTapeEnd       uint32
	faceLengthsBegin, faceLengthsEnd uint32
}

// batchArtifact records where one batch's parsed output landed in its
// owning consumer's localStore. Written exactly once by that consumer;
// read only after every worker has joined.
type batchArtifact struct {
	consumerID int
	ranges     span
}
