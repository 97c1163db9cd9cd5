package objmesh

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempOBJ(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "in.obj")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestImport_S1_MinimalTriangle(t *testing.T) {
	path := writeTempOBJ(t, "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n")

	var mesh Mesh
	if _, err := Import(path, &mesh); err != nil {
		t.Fatalf("Import: %v", err)
	}

	if len(mesh.Positions) != 3 {
		t.Fatalf("positions = %d, want 3", len(mesh.Positions))
	}
	if len(mesh.TexCoords) != 0 || len(mesh.Normals) != 0 {
		t.Fatalf("expected no texcoords/normals")
	}
	if mesh.NumFaces() != 1 || mesh.FaceLengths[0] != 3 {
		t.Fatalf("expected 1 face of arity 3, got %v", mesh.FaceLengths)
	}

	want := []FaceVertex{
		{Position: 0, Texture: Absent, Normal: Absent},
		{Position: 1, Texture: Absent, Normal: Absent},
		{Position: 2, Texture: Absent, Normal: Absent},
	}
	for i, fv := range mesh.Face(0) {
		if fv != want[i] {
			t.Fatalf("face[%d] = %+v, want %+v", i, fv, want[i])
		}
	}
}

func TestImport_S2_QuadWithNegatives(t *testing.T) {
	path := writeTempOBJ(t, "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf -4 -3 -2 -1\n")

	var mesh Mesh
	if _, err := Import(path, &mesh); err != nil {
		t.Fatalf("Import: %v", err)
	}

	if len(mesh.Positions) != 4 {
		t.Fatalf("positions = %d, want 4", len(mesh.Positions))
	}
	if mesh.NumFaces() != 1 || mesh.FaceLengths[0] != 4 {
		t.Fatalf("expected 1 face of arity 4")
	}

	wantPos := []uint32{0, 1, 2, 3}
	for i, fv := range mesh.Face(0) {
		if fv.Position != wantPos[i] {
			t.Fatalf("face[%d].Position = %d, want %d", i, fv.Position, wantPos[i])
		}
		if fv.Texture != Absent || fv.Normal != Absent {
			t.Fatalf("face[%d]: expected texture/normal absent", i)
		}
	}
}

func TestImport_S3_MixedSlashForms(t *testing.T) {
	path := writeTempOBJ(t,
		"v 0 0 0\nv 1 0 0\nv 0 1 0\nvt 0 0\nvt 1 0\nvn 0 0 1\nf 1/1/1 2/2/1 3//1\n")

	var mesh Mesh
	if _, err := Import(path, &mesh); err != nil {
		t.Fatalf("Import: %v", err)
	}

	want := []FaceVertex{
		{Position: 0, Texture: 0, Normal: 0},
		{Position: 1, Texture: 1, Normal: 0},
		{Position: 2, Texture: Absent, Normal: 0},
	}
	got := mesh.Face(0)
	if len(got) != len(want) {
		t.Fatalf("face arity = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("face[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestImport_S4_CommentsAndBlanks(t *testing.T) {
	path := writeTempOBJ(t, "# hi\n\nv 1 2 3 # trailing\nf 1 1 1\n")

	var mesh Mesh
	if _, err := Import(path, &mesh); err != nil {
		t.Fatalf("Import: %v", err)
	}

	if len(mesh.Positions) != 1 {
		t.Fatalf("positions = %d, want 1", len(mesh.Positions))
	}
	p := mesh.Positions[0]
	if p != (Position{1, 2, 3}) {
		t.Fatalf("position = %+v, want {1 2 3}", p)
	}
	if mesh.NumFaces() != 1 || mesh.FaceLengths[0] != 3 {
		t.Fatalf("expected 1 face of arity 3")
	}
	for _, fv := range mesh.Face(0) {
		if fv.Position != 0 {
			t.Fatalf("face vertex position = %d, want 0", fv.Position)
		}
	}
}

func TestImport_S5_BatchBoundaryInsideLine(t *testing.T) {
	path := writeTempOBJ(t, "v 1 1 1\nv 2 2 2\nv 3 3 3\nf 1 2 3\n")

	var mesh Mesh
	if _, err := Import(path, &mesh, WithBatchSize(8), WithNumConsumers(2)); err != nil {
		t.Fatalf("Import: %v", err)
	}

	if len(mesh.Positions) != 3 {
		t.Fatalf("positions = %d, want 3", len(mesh.Positions))
	}
	if mesh.NumFaces() != 1 || mesh.FaceLengths[0] != 3 {
		t.Fatalf("expected 1 face of arity 3")
	}
}

func TestImport_S6_NegativeIndexSpanningBatches(t *testing.T) {
	// First batch: "v 1 1 1\nv 2 2 2\n" (16 bytes). Second batch begins at
	// "v 9 9 9\nf -1 -2 -3\n".
	content := "v 1 1 1\nv 2 2 2\nv 9 9 9\nf -1 -2 -3\n"
	path := writeTempOBJ(t, content)

	var mesh Mesh
	if _, err := Import(path, &mesh, WithBatchSize(8), WithNumConsumers(2)); err != nil {
		t.Fatalf("Import: %v", err)
	}

	if mesh.NumFaces() != 1 {
		t.Fatalf("expected 1 face")
	}
	want := []uint32{2, 1, 0}
	for i, fv := range mesh.Face(0) {
		if fv.Position != want[i] {
			t.Fatalf("face[%d].Position = %d, want %d", i, fv.Position, want[i])
		}
	}
}

func TestImport_EmptyFileIsAnError(t *testing.T) {
	path := writeTempOBJ(t, "")

	var mesh Mesh
	if _, err := Import(path, &mesh); err == nil {
		t.Fatalf("expected EmptyInput error")
	}
	if len(mesh.Positions) != 0 {
		t.Fatalf("mesh must be cleared on failure")
	}
}

func TestImport_MissingFileIsAcquisitionFailed(t *testing.T) {
	var mesh Mesh
	_, err := Import(filepath.Join(t.TempDir(), "nope.obj"), &mesh)
	if err == nil {
		t.Fatalf("expected AcquisitionFailed error")
	}
}

func TestImport_ParallelMatchesSequential(t *testing.T) {
	var b []byte
	for i := 0; i < 30000; i++ {
		b = append(b, []byte("v 1 2 3\nvt 0.5 0.5\nvn 0 0 1\nf -1/-1/-1 -1 -1\n")...)
	}
	path := writeTempOBJ(t, string(b))

	var seq, par Mesh
	importSequential(b, defaultBatchSize, &seq)

	if _, err := Import(path, &par, WithBatchSize(4096), WithNumConsumers(4)); err != nil {
		t.Fatalf("Import: %v", err)
	}

	if len(seq.Positions) != len(par.Positions) {
		t.Fatalf("positions mismatch: %d vs %d", len(seq.Positions), len(par.Positions))
	}
	for i := range seq.Positions {
		if seq.Positions[i] != par.Positions[i] {
			t.Fatalf("position[%d] mismatch: %+v vs %+v", i, seq.Positions[i], par.Positions[i])
		}
	}
	if len(seq.FaceTape) != len(par.FaceTape) {
		t.Fatalf("face tape length mismatch: %d vs %d", len(seq.FaceTape), len(par.FaceTape))
	}
	for i := range seq.FaceTape {
		if seq.FaceTape[i] != par.FaceTape[i] {
			t.Fatalf("face tape[%d] mismatch: %+v vs %+v", i, seq.FaceTape[i], par.FaceTape[i])
		}
	}
}
