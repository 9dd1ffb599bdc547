// SPDX-License-Identifier: MIT
// Package: wavefront/view
//
// styles.go — lipgloss styles for the canvas glyphs and the status bar.
// Palette mirrors the original sketch: red source and wavefront, blue
// target, teal path, grey idle structure.

package view

import "github.com/charmbracelet/lipgloss"

// paint identifies the style a canvas cell is rendered with. Higher
// values win when several drawings touch the same cell, mirroring the
// original's z-ordering (idle structure < wavefront < path < endpoints).
type paint uint8

const (
	paintNone paint = iota
	paintEdge
	paintVisited
	paintPath
	paintNode
	paintTarget
	paintSource
)

var (
	edgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	visitedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555"))

	pathStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00AAAA"))

	nodeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	sourceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF0000"))

	targetStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5555FF"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FFFF")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

// styleFor returns the style and glyph for a paint class.
func styleFor(p paint) (lipgloss.Style, rune) {
	switch p {
	case paintEdge:
		return edgeStyle, '·'
	case paintVisited:
		return visitedStyle, '·'
	case paintPath:
		return pathStyle, '•'
	case paintNode:
		return nodeStyle, '●'
	case paintTarget:
		return targetStyle, '◆'
	case paintSource:
		return sourceStyle, '◆'
	default:
		return edgeStyle, ' '
	}
}
