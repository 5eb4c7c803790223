// SPDX-License-Identifier: GPL-2.0-or-later

package calc

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	want := Config{Precision: -1, ShowDegrees: true}
	if c != want {
		t.Errorf("DefaultConfig() = %+v want %+v", c, want)
	}
}

func TestLoadConfig(t *testing.T) {
	c, err := LoadConfig("")
	if err != nil || c != DefaultConfig() {
		t.Errorf("LoadConfig(\"\") = %+v, %v", c, err)
	}
	path := filepath.Join(t.TempDir(), "calc.yaml")
	if err := os.WriteFile(path, []byte("precision: 40\nnormalize_print: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err = LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig(%s) = %v", path, err)
	}
	want := Config{Precision: maxPrecision, ShowDegrees: true, NormalizePrint: true}
	if c != want {
		t.Errorf("LoadConfig(%s) = %+v want %+v", path, c, want)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("LoadConfig(missing) had no error")
	}
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("precision: [1, 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Errorf("LoadConfig(bad) had no error")
	}
}
