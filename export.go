package objmesh

import (
	"bufio"
	"os"
	"strconv"
)

// exportMesh writes mesh to path in canonical OBJ form: all v lines, then
// all vt, then all vn, then all f, using the shortest round-trip decimal
// form for each float32 and 1-based face indices with the minimal slash
// form for each FaceVertex.
func exportMesh(path string, mesh *Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return &ExportError{Path: path, Kind: AcquisitionFailed, Err: err}
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	for _, p := range mesh.Positions {
		if err := writeLine(w, 'v', p.X, p.Y, p.Z); err != nil {
			return &ExportError{Path: path, Kind: WriteShort, Err: err}
		}
	}
	for _, t := range mesh.TexCoords {
		if err := writeLine(w, 't', t.U, t.V); err != nil {
			return &ExportError{Path: path, Kind: WriteShort, Err: err}
		}
	}
	for _, n := range mesh.Normals {
		if err := writeLine(w, 'n', n.X, n.Y, n.Z); err != nil {
			return &ExportError{Path: path, Kind: WriteShort, Err: err}
		}
	}

	off := 0
	for _, length := range mesh.FaceLengths {
		face := mesh.FaceTape[off : off+int(length)]
		off += int(length)
		if err := writeFace(w, face); err != nil {
			return &ExportError{Path: path, Kind: WriteShort, Err: err}
		}
	}

	if err := w.Flush(); err != nil {
		return &ExportError{Path: path, Kind: WriteShort, Err: err}
	}
	return nil
}

func writeLine(w *bufio.Writer, kind byte, a float32, rest ...float32) error {
	var prefix string
	switch kind {
	case 'v':
		prefix = "v "
	case 't':
		prefix = "vt "
	case 'n':
		prefix = "vn "
	}
	if _, err := w.WriteString(prefix); err != nil {
		return err
	}
	if err := writeFloat(w, a); err != nil {
		return err
	}
	for _, v := range rest {
		if err := w.WriteByte(' '); err != nil {
			return err
		}
		if err := writeFloat(w, v); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}

func writeFloat(w *bufio.Writer, v float32) error {
	_, err := w.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
	return err
}

// writeFace emits "f " followed by each FaceVertex in the minimal slash
// form (a, a/b, a//c, or a/b/c) depending on which of texture/normal are
// present, with 1-based indices.
func writeFace(w *bufio.Writer, face []FaceVertex) error {
	if _, err := w.WriteString("f"); err != nil {
		return err
	}
	for _, fv := range face {
		if err := w.WriteByte(' '); err != nil {
			return err
		}
		if err := writeFaceVertex(w, fv); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}

func writeFaceVertex(w *bufio.Writer, fv FaceVertex) error {
	if err := writeIndex1Based(w, fv.Position); err != nil {
		return err
	}
	hasT := fv.Texture != Absent
	hasN := fv.Normal != Absent

	switch {
	case hasT && hasN:
		if err := w.WriteByte('/'); err != nil {
			return err
		}
		if err := writeIndex1Based(w, fv.Texture); err != nil {
			return err
		}
		if err := w.WriteByte('/'); err != nil {
			return err
		}
		return writeIndex1Based(w, fv.Normal)
	case hasT:
		if err := w.WriteByte('/'); err != nil {
			return err
		}
		return writeIndex1Based(w, fv.Texture)
	case hasN:
		if _, err := w.WriteString("//"); err != nil {
			return err
		}
		return writeIndex1Based(w, fv.Normal)
	default:
		return nil
	}
}

func writeIndex1Based(w *bufio.Writer, idx uint32) error {
	if idx == Absent {
		return nil
	}
	_, err := w.WriteString(strconv.FormatUint(uint64(idx)+1, 10))
	return err
}
