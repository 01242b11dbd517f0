package hasilbumi

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// DefaultItems is the catalog of a brand new ledger.
var DefaultItems = []string{"CENGKEH", "KAPULAGA", "LADA", "KOPI"}

var (
	ErrEmptyItem     = errors.New("empty item name")
	ErrDuplicateItem = errors.New("item already exists")
	ErrUnknownItem   = errors.New("unknown item")
)

// Catalog is the ordered list of item names that can be traded.
//
// Names are stored upper-cased and are unique regardless of case.
type Catalog struct {
	names []string
}

// NewCatalog returns a catalog holding names, in order. Names are normalized
// and duplicates are silently dropped.
func NewCatalog(names ...string) *Catalog {
	c := &Catalog{names: make([]string, 0, len(names))}
	c.Merge(names...)
	return c
}

// NormalizeItem returns the canonical form of an item name.
func NormalizeItem(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Add appends a new item to the catalog and returns its canonical name.
func (c *Catalog) Add(name string) (string, error) {
	n := NormalizeItem(name)
	if n == "" {
		return "", ErrEmptyItem
	}
	if c.Contains(n) {
		return "", fmt.Errorf("%w: %q", ErrDuplicateItem, n)
	}
	c.names = append(c.names, n)
	return n, nil
}

// Merge adds every name not already present, it never fails.
// It returns the number of names actually added.
func (c *Catalog) Merge(names ...string) int {
	added := 0
	for _, name := range names {
		if _, err := c.Add(name); err == nil {
			added++
		}
	}
	return added
}

// Delete removes the item with this name, ignoring case.
//
// Transactions on that item are not affected.
func (c *Catalog) Delete(name string) error {
	n := NormalizeItem(name)
	i := slices.IndexFunc(c.names, func(s string) bool { return strings.EqualFold(s, n) })
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownItem, name)
	}
	c.names = slices.Delete(c.names, i, i+1)
	return nil
}

// Contains reports whether name is in the catalog, ignoring case.
func (c *Catalog) Contains(name string) bool {
	n := NormalizeItem(name)
	return slices.ContainsFunc(c.names, func(s string) bool { return strings.EqualFold(s, n) })
}

// Names returns a copy of the item names in catalog order.
func (c *Catalog) Names() []string { return slices.Clone(c.names) }

// Len returns the number of items.
func (c *Catalog) Len() int { return len(c.names) }

func (c *Catalog) clone() *Catalog { return &Catalog{names: slices.Clone(c.names)} }
