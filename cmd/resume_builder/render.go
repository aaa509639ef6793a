package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/form"
	"github.com/jonathan/resume-builder/internal/locale"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/preview"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a résumé document to HTML or PDF",
	Long: `Validates a résumé document JSON file against the document schema and renders
it in its template. HTML is written as-is; PDF goes through the same export
path as the server, which requires Chrome or Chromium.`,
	RunE: runRender,
}

var (
	renderInput      string
	renderOutput     string
	renderFormat     string
	renderLocale     string
	renderType       string
	renderZoom       int
	renderChromePath string
)

func init() {
	renderCmd.Flags().StringVarP(&renderInput, "in", "i", "", "Path to résumé document JSON file (required)")
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Output path (default: derived from the name, or stdout for html)")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "html", "Output format: html or pdf")
	renderCmd.Flags().StringVarP(&renderLocale, "locale", "l", string(locale.Default), "Display locale: ko, ja or en")
	renderCmd.Flags().StringVarP(&renderType, "type", "t", "", "Override the document's template: standard, original, career or free-form")
	renderCmd.Flags().IntVar(&renderZoom, "zoom", preview.DefaultZoom, "Preview zoom percent for html output")
	renderCmd.Flags().StringVar(&renderChromePath, "chrome", "", "Path to the Chrome/Chromium binary used for PDF export")

	_ = renderCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	format := strings.ToLower(renderFormat)
	if format != "html" && format != "pdf" {
		return fmt.Errorf("unsupported format %q: must be html or pdf", renderFormat)
	}
	l, err := locale.Parse(renderLocale)
	if err != nil {
		return err
	}

	doc, err := loadDocument(renderInput, renderType)
	if err != nil {
		return err
	}

	if verbose {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		printer.PrintDocument(doc)
		printer.PrintValidation(doc.BasicInfo.Issues(), doc.SelfIntro.LengthHints())
	}

	formatter := locale.NewFormatter(l)
	html, err := preview.NewRenderer(formatter).RenderString(doc, preview.NewZoom(renderZoom))
	if err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}

	if format == "html" {
		if renderOutput == "" {
			_, err := fmt.Fprint(cmd.OutOrStdout(), html)
			return err
		}
		return writeOutput(renderOutput, []byte(html))
	}

	cfg, err := resolveConfig(config.Config{ChromePath: renderChromePath})
	if err != nil {
		return err
	}
	exporter := export.NewExporter(export.NewChromePrinter(cfg.ChromePath, cfg.Verbose), cfg.ExportTimeout())
	res, err := exporter.Export(context.Background(), export.Request{
		HTML:     html,
		Filename: defaultPDFName(doc.BasicInfo.Name, formatter),
	})
	if err != nil {
		return err
	}

	out := renderOutput
	if out == "" {
		out = res.Filename
	}
	if err := writeOutput(out, res.Data); err != nil {
		return err
	}
	if verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintExport(res)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d pages)\n", out, res.Pages)
	return nil
}

// loadDocument reads and schema-checks a document file. Empty sections are
// seeded with one default entry, as in the wizard.
func loadDocument(path, typeOverride string) (types.ResumeDocument, error) {
	data, err := schemas.ValidateFile(path)
	if err != nil {
		return types.ResumeDocument{}, err
	}
	var doc types.ResumeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return types.ResumeDocument{}, fmt.Errorf("failed to parse document: %w", err)
	}
	if typeOverride != "" {
		rt, err := types.ParseResumeType(typeOverride)
		if err != nil {
			return types.ResumeDocument{}, err
		}
		doc.Type = rt
	}
	return form.FromSnapshot(doc).Snapshot(), nil
}

func defaultPDFName(name string, f *locale.Formatter) string {
	title := f.Text(locale.MsgResumeTitle)
	if name = strings.TrimSpace(name); name == "" {
		return title
	}
	return name + "_" + title
}

func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
