package loader_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/dataquery-cli/internal/dataset"
	"github.com/KaramelBytes/dataquery-cli/internal/loader"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestLoadFileCSV(t *testing.T) {
	p := writeFile(t, "hop_harvest.csv", "date,plot,moisture\n2024-08-10,A1,74\n2024-08-12,A1,71\n")
	tbl, err := loader.LoadFile(p, dataset.DefaultOptions())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tbl.Name != "hop_harvest.csv" {
		t.Fatalf("name = %q", tbl.Name)
	}
	if tbl.RowCount() != 2 || len(tbl.Headers) != 3 {
		t.Fatalf("unexpected shape: %d rows, %d headers", tbl.RowCount(), len(tbl.Headers))
	}
}

func TestLoadFileUppercaseExtension(t *testing.T) {
	p := writeFile(t, "DATA.CSV", "a,b\n1,2\n")
	if _, err := loader.LoadFile(p, dataset.DefaultOptions()); err != nil {
		t.Fatalf("load: %v", err)
	}
}

func TestLoadFileRejections(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    error
	}{
		{"notes.txt", "a,b\n1,2\n", loader.ErrUnsupported},
		{"data.xlsx", "a,b\n1,2\n", loader.ErrUnsupported},
		{"one.csv", "only\n1\n2\n", loader.ErrTooFewColumns},
		{"header.csv", "a,b\n", loader.ErrNoRows},
		{"ragged.csv", "a,b\n1\n2,3,4\n", loader.ErrNoRows},
		{"empty.csv", "  \n", dataset.ErrEmptyInput},
	}
	for _, c := range cases {
		p := writeFile(t, c.name, c.content)
		_, err := loader.LoadFile(p, dataset.DefaultOptions())
		if !errors.Is(err, c.want) {
			t.Fatalf("%s: expected %v, got %v", c.name, c.want, err)
		}
	}
}

func TestLoadFileSizeLimit(t *testing.T) {
	p := writeFile(t, "big.csv", "a,b\n1,2\n3,4\n")
	_, err := loader.LoadFile(p, dataset.Options{MaxInputBytes: 5})
	if !errors.Is(err, dataset.ErrInputTooLarge) {
		t.Fatalf("expected ErrInputTooLarge, got %v", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := loader.LoadFile(filepath.Join(t.TempDir(), "nope.csv"), dataset.DefaultOptions())
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoadBytes(t *testing.T) {
	tbl, err := loader.LoadBytes("inline.csv", []byte("x,y\n1,2\n"), dataset.DefaultOptions())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tbl.Name != "inline.csv" {
		t.Fatalf("name = %q", tbl.Name)
	}
}
