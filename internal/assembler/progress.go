// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package assembler

import (
	"github.com/charmbracelet/lipgloss"
)

// ANSI colours used by the progress bar format.
const (
	colorGreen   = lipgloss.Color("2")
	colorMagenta = lipgloss.Color("5")
	colorCyan    = lipgloss.Color("6")
)

// ProgressFormat returns the progress bar template with the renderer's
// colour profile applied. ":bar", ":percent" and ":elapsed" are expanded by
// the plugin at build time. A renderer without colour support produces
// plain text.
func ProgressFormat(r *lipgloss.Renderer) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	title := r.NewStyle().Foreground(colorCyan).Bold(true)
	bar := r.NewStyle().Foreground(colorMagenta).Bold(true)
	percent := r.NewStyle().Foreground(colorGreen).Bold(true)

	return title.Render("  Webpack building in progress: ") +
		" " + bar.Render("[:bar]") +
		" " + percent.Render(":percent") +
		" ( :elapsed seconds )"
}
