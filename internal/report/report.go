// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package report renders the console output of the share tools: build
// information, the final status of a run and failures.
//
// Output written to something other than a terminal carries no ANSI
// styling.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-pass-share/internal/app"
	"github.com/MKhiriev/go-pass-share/internal/service"
	"github.com/MKhiriev/go-pass-share/models"
)

// Printer writes styled reports to one writer.
type Printer struct {
	out    io.Writer
	styles styles
}

// NewPrinter returns a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out:    out,
		styles: newStyles(lipgloss.NewRenderer(out)),
	}
}

// BuildInfo prints the build metadata of tool.
func (p *Printer) BuildInfo(tool string, info models.AppBuildInfo) {
	p.print(p.styles.title.Render(tool),
		p.row("Build version", info.BuildVersion()),
		p.row("Build date", info.BuildDate()),
		p.row("Build commit", info.BuildCommit()),
	)
}

// Imported prints the outcome of a successful import.
func (p *Printer) Imported(result models.ImportResult) {
	status := p.styles.success.Render(app.MsgImportSucceeded)
	if !result.Saved {
		status = p.styles.help.Render(app.MsgImportDryRun)
	}

	p.print(status,
		p.row("Signer", valueOrNA(result.Signer)),
		p.row("Fingerprint", valueOrNA(result.KeyFingerprint)),
		p.row("Imported", strconv.Itoa(result.EntriesImported)+" entries"),
	)
}

// Exported prints the outcome of a successful export to output.
func (p *Printer) Exported(output string, result models.ExportResult) {
	p.print(p.styles.success.Render(app.MsgExportSucceeded),
		p.row("Output", output),
		p.row("Fingerprint", result.KeyFingerprint),
		p.row("Exported", strconv.Itoa(result.EntriesExported)+" entries"),
		p.row("Size", strconv.Itoa(result.Bytes)+" bytes"),
	)
}

// Failure prints err with its user-facing description and the failed
// stage, if known.
func (p *Printer) Failure(err error) {
	lines := []string{p.styles.failure.Render("Error: " + Describe(err))}
	if stage, ok := service.StageOf(err); ok {
		lines = append(lines, p.row("Stage", string(stage)))
	}
	lines = append(lines, p.styles.help.Render(err.Error()))

	p.print(lines...)
}

func (p *Printer) row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, p.styles.label.Render(label+":"), value)
}

func (p *Printer) print(lines ...string) {
	fmt.Fprintln(p.out, p.styles.box.Render(strings.Join(lines, "\n")))
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return models.NotAvailable
	}
	return v
}
