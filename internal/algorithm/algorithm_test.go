package algorithm

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeScript(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("pass\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestNormalizeName(t *testing.T) {
	cases := map[string]string{
		"mytool": "mytool",
		"3dview": "_3dview",
		"_priv":  "__priv",
		"":       "",
	}
	for in, want := range cases {
		if got := NormalizeName(in); got != want {
			t.Errorf("NormalizeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDir_UsesNormalizedBaseName(t *testing.T) {
	got := Dir(filepath.Join("/opt", "scripts", "3dview"))
	want := filepath.Join("/opt", "scripts", "src", "_3dview")
	if got != want {
		t.Fatalf("Dir = %q, want %q", got, want)
	}
}

func TestList_FiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "mytool")
	algoDir := filepath.Join(dir, "src", "mytool")
	writeScript(t, filepath.Join(algoDir, "b.py"))
	writeScript(t, filepath.Join(algoDir, "a.py"))
	writeScript(t, filepath.Join(algoDir, "__init__.py"))
	writeScript(t, filepath.Join(algoDir, "c.other"))

	got, err := List(script)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("List = %v, want %v", got, want)
	}
}

func TestList_SkipsNamesWithExtraDots(t *testing.T) {
	dir := t.TempDir()
	algoDir := filepath.Join(dir, "src", "tool")
	writeScript(t, filepath.Join(algoDir, "ok.py"))
	writeScript(t, filepath.Join(algoDir, "not.a.module.py"))

	got, err := List(filepath.Join(dir, "tool"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"ok"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("List = %v, want %v", got, want)
	}
}

func TestList_MissingDirectoryFails(t *testing.T) {
	if _, err := List(filepath.Join(t.TempDir(), "ghost")); err == nil {
		t.Fatal("expected an error for a missing algorithm directory")
	}
}
