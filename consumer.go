package objmesh

import (
	"bytes"

	"github.com/calvinalkan/objmesh/internal/ring"
)

// runConsumer drains r until it receives a sentinel (nil), parsing each
// batch into store and recording the resulting range at
// artifacts[batch.ID]. No synchronization guards artifacts: each slot is
// written by exactly one consumer, and the facade only reads the slice
// after every consumer goroutine has returned.
func runConsumer(id int, r *ring.Ring[*Batch], store *localStore, artifacts []batchArtifact) {
	var bo ring.Backoff
	for {
		b, ok := r.TryPop()
		if !ok {
			bo.Spin()
			continue
		}
		bo.Reset()

		if b == nil {
			return // sentinel
		}

		ranges := parseBatch(b, store)
		artifacts[b.ID] = batchArtifact{consumerID: id, ranges: ranges}
	}
}

// parseBatch walks one batch's lines, appending to store, and returns the
// [begin, end) ranges of everything it appended. b.VSeen, b.TSeen and
// b.NSeen carry the running (v, t, n) totals observed by the producer
// strictly before this batch;
// within the batch, normalizeIndex uses base plus whatever this same
// consumer has appended so far in this same batch, matching OBJ's
// position-dependent negative-index semantics.
func parseBatch(b *Batch, store *localStore) span {
	s := span{
		positionsBegin:   uint32(len(store.positions)),
		texcoordsBegin:   uint32(len(store.texcoords)),
		normalsBegin:     uint32(len(store.normals)),
		faceTapeBegin:    uint32(len(store.faceTape)),
		faceLengthsBegin: uint32(len(store.faceLengths)),
	}

	localV, localT, localN := uint32(0), uint32(0), uint32(0)
	data := b.Data

	for len(data) > 0 {
		nl := bytes.IndexByte(data, '\n')
		var line []byte
		if nl >= 0 {
			line, data = data[:nl], data[nl+1:]
		} else {
			line, data = data, nil
		}

		kind, tail := classifyLine(line)
		switch kind {
		case linePosition:
			store.positions = append(store.positions, parsePosition(tail))
			localV++
		case lineTexture:
			store.texcoords = append(store.texcoords, parseTexCoord(tail))
			localT++
		case lineNormal:
			store.normals = append(store.normals, parseNormal(tail))
			localN++
		case lineFace:
			n := parseFace(tail, b.VSeen+localV, b.TSeen+localT, b.NSeen+localN, store)
			if n > 0 {
				store.faceLengths = append(store.faceLengths, n)
			}
		}
	}

	s.positionsEnd = uint32(len(store.positions))
	s.texcoordsEnd = uint32(len(store.texcoords))
	s.normalsEnd = uint32(len(store.normals))
	s.faceTapeEnd = uint32(len(store.faceTape))
	s.faceLengthsEnd = uint32(len(store.faceLengths))
	return s
}

// parsePosition parses up to three floats; missing trailing components
// default to 0.0. A position is always appended, regardless of how many
// numbers were present, so prefix counts stay aligned with raw line counts.
func parsePosition(tail []byte) Position {
	sc := newTokenScanner(tail)
	var p Position
	if tok, ok := sc.next(); ok {
		p.X = parseFloat32(tok)
	}
	if tok, ok := sc.next(); ok {
		p.Y = parseFloat32(tok)
	}
	if tok, ok := sc.next(); ok {
		p.Z = parseFloat32(tok)
	}
	return p
}

// parseTexCoord parses one to three floats; V defaults to 0 when absent.
// A third component (w) is accepted but ignored.
func parseTexCoord(tail []byte) TexCoord {
	sc := newTokenScanner(tail)
	var t TexCoord
	if tok, ok := sc.next(); ok {
		t.U = parseFloat32(tok)
	}
	if tok, ok := sc.next(); ok {
		t.V = parseFloat32(tok)
	}
	return t
}

func parseNormal(tail []byte) Normal {
	sc := newTokenScanner(tail)
	var n Normal
	if tok, ok := sc.next(); ok {
		n.X = parseFloat32(tok)
	}
	if tok, ok := sc.next(); ok {
		n.Y = parseFloat32(tok)
	}
	if tok, ok := sc.next(); ok {
		n.Z = parseFloat32(tok)
	}
	return n
}

// parseFace tokenizes the face line's tail and appends one FaceVertex per
// token to store.faceTape. It returns the face's arity (0 for an empty
// face, which contributes nothing to the tape or face-lengths).
func parseFace(tail []byte, vSeen, tSeen, nSeen uint32, store *localStore) uint32 {
	sc := newTokenScanner(tail)
	var arity uint32

	for {
		tok, ok := sc.next()
		if !ok {
			break
		}

		fv := FaceVertex{Texture: Absent, Normal: Absent}

		first, rest, hasSlash := bytes.Cut(tok, []byte{'/'})
		if rawV, ok := parseInt64(first); ok {
			fv.Position = normalizeIndex(rawV, vSeen)
		} else {
			fv.Position = Absent
		}

		if hasSlash {
			vtTok, rest2, hasSlash2 := bytes.Cut(rest, []byte{'/'})
			if len(vtTok) > 0 {
				if rawT, ok := parseInt64(vtTok); ok {
					fv.Texture = normalizeIndex(rawT, tSeen)
				}
			}
			if hasSlash2 && len(rest2) > 0 {
				if rawN, ok := parseInt64(rest2); ok {
					fv.Normal = normalizeIndex(rawN, nSeen)
				}
			}
		}

		store.faceTape = append(store.faceTape, fv)
		arity++
	}

	return arity
}
