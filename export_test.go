package objmesh

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExport_MinimalTriangle(t *testing.T) {
	mesh := Mesh{
		Positions:   []Position{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		FaceTape:    []FaceVertex{{0, Absent, Absent}, {1, Absent, Absent}, {2, Absent, Absent}},
		FaceLengths: []uint32{3},
	}

	path := filepath.Join(t.TempDir(), "out.obj")
	if err := Export(path, &mesh); err != nil {
		t.Fatalf("Export: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading exported file: %v", err)
	}

	want := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	if string(data) != want {
		t.Fatalf("exported = %q, want %q", data, want)
	}
}

func TestExport_MinimalSlashForms(t *testing.T) {
	mesh := Mesh{
		Positions: []Position{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		TexCoords: []TexCoord{{0, 0}, {1, 0}},
		Normals:   []Normal{{0, 0, 1}},
		FaceTape: []FaceVertex{
			{0, 0, 0},
			{1, 1, 0},
			{2, Absent, 0},
		},
		FaceLengths: []uint32{3},
	}

	path := filepath.Join(t.TempDir(), "out.obj")
	if err := Export(path, &mesh); err != nil {
		t.Fatalf("Export: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading exported file: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	wantFaceLine := "f 1/1/1 2/2/1 3//1"
	if lines[len(lines)-1] != wantFaceLine {
		t.Fatalf("face line = %q, want %q", lines[len(lines)-1], wantFaceLine)
	}
}

func TestExport_RoundTrip(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nvt 0 0\nvt 1 1\nvn 0 0 1\nf -4/1/1 -3/2/1 -2 -1\n"

	in := filepath.Join(t.TempDir(), "in.obj")
	if err := os.WriteFile(in, []byte(src), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	var mesh Mesh
	if _, err := Import(in, &mesh); err != nil {
		t.Fatalf("Import: %v", err)
	}

	out := filepath.Join(t.TempDir(), "out.obj")
	if err := Export(out, &mesh); err != nil {
		t.Fatalf("Export: %v", err)
	}

	var reimported Mesh
	if _, err := Import(out, &reimported); err != nil {
		t.Fatalf("re-Import: %v", err)
	}

	if len(mesh.Positions) != len(reimported.Positions) {
		t.Fatalf("position count mismatch after round-trip")
	}
	for i := range mesh.Positions {
		if mesh.Positions[i] != reimported.Positions[i] {
			t.Fatalf("position[%d] mismatch: %+v vs %+v", i, mesh.Positions[i], reimported.Positions[i])
		}
	}
	if len(mesh.FaceTape) != len(reimported.FaceTape) {
		t.Fatalf("face tape length mismatch after round-trip")
	}
	for i := range mesh.FaceTape {
		if mesh.FaceTape[i] != reimported.FaceTape[i] {
			t.Fatalf("face tape[%d] mismatch: %+v vs %+v", i, mesh.FaceTape[i], reimported.FaceTape[i])
		}
	}
}
