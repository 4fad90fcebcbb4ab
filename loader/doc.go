// Package loader reads graph documents from TOML or YAML.
//
// A document lists weighted edges and, optionally, a goal with a heuristic
// table and planar coordinates:
//
//	directed = false
//	goal = "G"
//
//	[[edges]]
//	from = "S"
//	to = "G"
//	weight = 4
//
//	[heuristic]
//	S = 3
//	G = 0
//
//	[coords]
//	S = [0.0, 0.0]
//	G = [3.0, 0.0]
//
// The YAML form uses the same keys.
package loader
