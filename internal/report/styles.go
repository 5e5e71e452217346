// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package report

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	help    lipgloss.Style
	box     lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Bold(true),
		label:   r.NewStyle().Faint(true).Width(14),
		success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		help:    r.NewStyle().Faint(true),
		box:     r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}
