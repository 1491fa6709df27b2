// Package tzdb exposes the IANA time zone catalog and civil time resolution against it
package tzdb

import (
	"bufio"
	"bytes"
	_ "embed"
	"sync"
	"time"

	// bundle the zone database so lookups do not depend on the host
	_ "time/tzdata"
)

//go:embed zones.txt
var embedded []byte

// Catalog is an immutable set of loadable zone identifiers
type Catalog struct {
	names []string
	locs  map[string]*time.Location
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the process-wide catalog, built on first use.
// Concurrent first callers block until the single build completes
func Default() *Catalog {
	defaultOnce.Do(func() { defaultCat = build(embedded) })
	return defaultCat
}

// build keeps the identifiers the runtime can load, in file order
func build(src []byte) *Catalog {
	c := &Catalog{locs: make(map[string]*time.Location, 600)}
	sc := bufio.NewScanner(bytes.NewReader(src))
	for sc.Scan() {
		name := string(bytes.TrimSpace(sc.Bytes()))
		if name == "" || name[0] == '#' {
			continue
		}
		if _, dup := c.locs[name]; dup {
			continue
		}
		loc, err := time.LoadLocation(name)
		if err != nil {
			continue
		}
		c.locs[name] = loc
		c.names = append(c.names, name)
	}
	return c
}

// Lookup resolves an exact, case-sensitive identifier such as "America/New_York"
func (c *Catalog) Lookup(name string) (*time.Location, bool) {
	loc, ok := c.locs[name]
	return loc, ok
}

// Names returns the identifiers; callers must not modify the slice
func (c *Catalog) Names() []string { return c.names }

// Len is the number of identifiers
func (c *Catalog) Len() int { return len(c.names) }
