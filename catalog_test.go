package hasilbumi

import (
	"errors"
	"slices"
	"testing"
)

func TestCatalogAdd(t *testing.T) {
	c := NewCatalog(DefaultItems...)

	got, err := c.Add("  kopi luwak ")
	if err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}
	if got != "KOPI LUWAK" {
		t.Errorf("Add() = %q, want %q", got, "KOPI LUWAK")
	}

	if _, err := c.Add("Lada"); !errors.Is(err, ErrDuplicateItem) {
		t.Errorf("Add(Lada) error = %v, want %v", err, ErrDuplicateItem)
	}
	if _, err := c.Add("   "); !errors.Is(err, ErrEmptyItem) {
		t.Errorf("Add(blank) error = %v, want %v", err, ErrEmptyItem)
	}

	want := []string{"CENGKEH", "KAPULAGA", "LADA", "KOPI", "KOPI LUWAK"}
	if !slices.Equal(c.Names(), want) {
		t.Errorf("Names() = %v, want %v", c.Names(), want)
	}
}

func TestCatalogDelete(t *testing.T) {
	c := NewCatalog("LADA", "KOPI")
	if err := c.Delete("LADA"); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}
	if err := c.Delete("LADA"); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("Delete() twice error = %v, want %v", err, ErrUnknownItem)
	}
	if !slices.Equal(c.Names(), []string{"KOPI"}) {
		t.Errorf("Names() = %v, want [KOPI]", c.Names())
	}
}

func TestCatalogDeleteIgnoresCase(t *testing.T) {
	c := NewCatalog("LADA", "KOPI LUWAK")
	if err := c.Delete(" kopi luwak"); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}
	if c.Contains("KOPI LUWAK") {
		t.Errorf("Contains(KOPI LUWAK) = true after Delete(kopi luwak)")
	}
	if !slices.Equal(c.Names(), []string{"LADA"}) {
		t.Errorf("Names() = %v, want [LADA]", c.Names())
	}
}

func TestCatalogMerge(t *testing.T) {
	c := NewCatalog("LADA")
	if n := c.Merge("lada", "LADA HITAM", "", "lada hitam", "KOPI"); n != 2 {
		t.Errorf("Merge() = %d, want 2", n)
	}
	if want := []string{"LADA", "LADA HITAM", "KOPI"}; !slices.Equal(c.Names(), want) {
		t.Errorf("Names() = %v, want %v", c.Names(), want)
	}
}

func TestCatalogNamesIsACopy(t *testing.T) {
	c := NewCatalog("LADA")
	names := c.Names()
	names[0] = "KOPI"
	if !c.Contains("LADA") {
		t.Errorf("Names() exposes the catalog internals")
	}
}
