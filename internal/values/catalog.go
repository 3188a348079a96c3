package values

import "sync"

// Catalog is the process-wide table of built-in class descriptors,
// initialized exactly once rather than as mutable package-level globals
// (spec.md §7/§9, grounded on catalog.rs's TypeLibrary and its OnceCell-backed
// per-type static_cell()).
type Catalog struct {
	// Exception is the built-in class descriptor named "Exception". sox has
	// no user-level `raise`/`catch`, and Exception values (NewException) do
	// not refer to it: their TypeName and Render work without it.
	Exception *Class
}

var (
	catalogOnce sync.Once
	catalog     *Catalog
)

// Builtins returns the process-wide built-in class catalog, constructing it
// on first use and reusing it for the lifetime of the process thereafter.
func Builtins() *Catalog {
	catalogOnce.Do(func() {
		catalog = &Catalog{
			Exception: &Class{Name: "Exception", Methods: map[string]*Function{}},
		}
	})
	return catalog
}
