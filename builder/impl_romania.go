// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_romania.go - the Romania road map and its straight-line distances to
// Bucharest, the classic local-search benchmark.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/heuristic"
)

// RomaniaGoal is the vertex RomaniaHeuristic estimates toward.
const RomaniaGoal = "Bucharest"

// RomaniaOptimum is the cheapest Arad→Bucharest cost
// (Arad, Sibiu, Rimnicu Vilcea, Pitesti, Bucharest).
const RomaniaOptimum = 418.0

var romaniaRoads = []EdgeSpec{
	{"Oradea", "Zerind", 71},
	{"Oradea", "Sibiu", 151},
	{"Zerind", "Arad", 75},
	{"Arad", "Sibiu", 140},
	{"Arad", "Timisoara", 118},
	{"Timisoara", "Lugoj", 111},
	{"Lugoj", "Mehadia", 70},
	{"Mehadia", "Dobreta", 75},
	{"Dobreta", "Craiova", 120},
	{"Craiova", "Pitesti", 138},
	{"Craiova", "Rimnicu Vilcea", 146},
	{"Craiova", "Giurgiu", 101},
	{"Rimnicu Vilcea", "Pitesti", 97},
	{"Rimnicu Vilcea", "Sibiu", 80},
	{"Sibiu", "Fagaras", 99},
	{"Fagaras", "Bucharest", 211},
	{"Pitesti", "Bucharest", 101},
	{"Giurgiu", "Bucharest", 90},
	{"Bucharest", "Urziceni", 85},
	{"Urziceni", "Hirsova", 98},
	{"Urziceni", "Vaslui", 142},
	{"Hirsova", "Eforie", 86},
	{"Vaslui", "Iasi", 92},
	{"Iasi", "Neamt", 87},
}

var romaniaStraightLine = map[string]float64{
	"Arad":           366,
	"Bucharest":      0,
	"Craiova":        160,
	"Dobreta":        242,
	"Eforie":         161,
	"Fagaras":        176,
	"Giurgiu":        77,
	"Hirsova":        151,
	"Iasi":           226,
	"Lugoj":          244,
	"Mehadia":        241,
	"Neamt":          234,
	"Oradea":         380,
	"Pitesti":        100,
	"Rimnicu Vilcea": 193,
	"Sibiu":          253,
	"Timisoara":      329,
	"Urziceni":       80,
	"Vaslui":         199,
	"Zerind":         374,
}

// Romania returns a Constructor that adds the 20-city road map.
// Use it on an undirected graph.
func Romania() Constructor {
	add := Edges(RomaniaRoads())
	return func(g *core.Graph, cfg builderConfig) error {
		if err := add(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", MethodRomania, err)
		}
		return nil
	}
}

// RomaniaRoads returns a copy of the road list in insertion order.
func RomaniaRoads() []EdgeSpec {
	out := make([]EdgeSpec, len(romaniaRoads))
	copy(out, romaniaRoads)

	return out
}

// RomaniaHeuristic returns the straight-line distances to Bucharest as a
// table bound to RomaniaGoal.
func RomaniaHeuristic() (*heuristic.Table, error) {
	return heuristic.NewTable(RomaniaGoal, romaniaStraightLine)
}
