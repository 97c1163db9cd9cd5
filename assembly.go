package objmesh

// assemble concatenates per-consumer store ranges into a single Mesh,
// walking artifacts in batch-id order. The result is deterministic and
// independent of how batches were distributed among consumers: batch ids
// reflect the producer's cutting order, which reflects file order.
func assemble(artifacts []batchArtifact, stores []localStore, out *Mesh) {
	out.Clear()

	var numPositions, numTexcoords, numNormals, numFaceTape, numFaces int
	for _, a := range artifacts {
		r := a.ranges
		numPositions += int(r.positionsEnd - r.positionsBegin)
		numTexcoords += int(r.texcoordsEnd - r.texcoordsBegin)
		numNormals += int(r.normalsEnd - r.normalsBegin)
		numFaceTape += int(r.faceTapeEnd - r.faceTapeBegin)
		numFaces += int(r.faceLengthsEnd - r.faceLengthsBegin)
	}

	out.Positions = growTo(out.Positions, numPositions)
	out.TexCoords = growTo(out.TexCoords, numTexcoords)
	out.Normals = growTo(out.Normals, numNormals)
	out.FaceTape = growTo(out.FaceTape, numFaceTape)
	out.FaceLengths = growTo(out.FaceLengths, numFaces)

	for _, a := range artifacts {
		src := &stores[a.consumerID]
		r := a.ranges

		out.Positions = append(out.Positions, src.positions[r.positionsBegin:r.positionsEnd]...)
		out.TexCoords = append(out.TexCoords, src.texcoords[r.texcoordsBegin:r.texcoordsEnd]...)
		out.Normals = append(out.Normals, src.normals[r.normalsBegin:r.normalsEnd]...)
		out.FaceTape = append(out.FaceTape, src.faceTape[r.faceTapeBegin:r.faceTapeEnd]...)
		out.FaceLengths = append(out.FaceLengths, src.faceLengths[r.faceLengthsBegin:r.faceLengthsEnd]...)
	}
}

func growTo[T any](s []T, n int) []T {
	if cap(s) >= n {
		return s[:0]
	}
	return make([]T, 0, n)
}
