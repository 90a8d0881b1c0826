// Package material defines the closed set of construction material
// categories tracked by the RASMI material-intensity dataset.
//
// Every component of the estimation pipeline is parameterized by this
// catalog: the two populations are stored per material, sample matrices
// carry one column per material, and the combination step iterates the
// catalog in order. The ordering here is the column ordering everywhere.
package material

// Material identifies one construction material category.
type Material string

// The eight RASMI material categories, in canonical column order.
const (
	Concrete Material = "concrete"
	Brick    Material = "brick"
	Wood     Material = "wood"
	Steel    Material = "steel"
	Glass    Material = "glass"
	Plastics Material = "plastics"
	Aluminum Material = "aluminum"
	Copper   Material = "copper"
)

// Count is the number of materials in the catalog.
const Count = 8

var all = [Count]Material{Concrete, Brick, Wood, Steel, Glass, Plastics, Aluminum, Copper}

// All returns the catalog in canonical order. The returned slice is a
// fresh copy; callers may not assume it aliases internal state.
func All() []Material {
	out := make([]Material, Count)
	copy(out, all[:])
	return out
}

// Valid reports whether m is one of the catalog materials.
func Valid(m Material) bool {
	for _, v := range all {
		if v == m {
			return true
		}
	}
	return false
}

// Index returns m's column position in the canonical order, or -1 if m
// is not a catalog material.
func Index(m Material) int {
	for i, v := range all {
		if v == m {
			return i
		}
	}
	return -1
}
