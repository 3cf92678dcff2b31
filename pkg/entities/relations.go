package entities

import "strings"

// RelationPath names a navigable relation (possibly a relation of a relation)
// that the resolver should populate alongside an entity, e.g.
// "defaultAlias.language" or "releaseEventSet.releaseEvents". Paths are
// declarative requests; only the store knows how to satisfy them.
type RelationPath string

// PathSet is an ordered collection of relation paths. Sets are value types
// and safe to share between route bindings; two sets may overlap in paths.
type PathSet struct {
	paths []RelationPath
}

func NewPathSet(paths ...RelationPath) PathSet {
	s := PathSet{}
	return s.Union(PathSet{paths: paths})
}

// Union returns a new set with the paths of s followed by any paths in the
// other sets that s does not already contain. Order is preserved.
func (s PathSet) Union(others ...PathSet) PathSet {
	merged := make([]RelationPath, 0, len(s.paths))
	merged = append(merged, s.paths...)

	for _, other := range others {
		for _, p := range other.paths {
			if !contains(merged, p) {
				merged = append(merged, p)
			}
		}
	}

	return PathSet{paths: merged}
}

func (s PathSet) Contains(p RelationPath) bool {
	return contains(s.paths, p)
}

func (s PathSet) ContainsAll(other PathSet) bool {
	for _, p := range other.paths {
		if !s.Contains(p) {
			return false
		}
	}
	return true
}

// Paths returns the paths in request order. The returned slice is a copy.
func (s PathSet) Paths() []RelationPath {
	paths := make([]RelationPath, len(s.paths))
	copy(paths, s.paths)
	return paths
}

func (s PathSet) Len() int {
	return len(s.paths)
}

func (s PathSet) String() string {
	names := make([]string, 0, len(s.paths))
	for _, p := range s.paths {
		names = append(names, string(p))
	}
	return strings.Join(names, ",")
}

func contains(paths []RelationPath, p RelationPath) bool {
	for _, existing := range paths {
		if existing == p {
			return true
		}
	}
	return false
}
