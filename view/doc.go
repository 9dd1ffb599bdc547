// Package view is the terminal presentation layer for the wavefront
// engine: a Bubble Tea program that renders the proximity graph as a
// character canvas, advances the search by one Step per animation frame,
// and turns mouse clicks into Retarget calls.
//
// The split follows the engine's contract: the engine only ever sees
// resolved node IDs. Everything pointer-shaped — projecting world
// coordinates onto terminal cells, rasterizing edges, hit-testing a
// click to its nearest node — lives here.
//
// Controls
//
//   - left click:  set the search source to the nearest node
//   - right click: set the search target to the nearest node
//   - r:           regenerate the graph with a fresh seed
//   - space:       pause / resume the stepping clock
//   - q / ctrl+c:  quit
//
// Colors follow the original sketch's palette: source red, target blue,
// wavefront-touched edges red, the found path teal, everything else a
// neutral grey.
package view
