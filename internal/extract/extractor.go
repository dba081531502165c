// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/rs/zerolog/log"

	"actscan/internal/sections"
)

// Result holds the output of the extraction stage.
type Result struct {
	Document sections.DocumentInfo
	Sections []sections.Section
}

// Run extracts per-page text from the PDF at pdfPath, aggregates the pages
// in order, splits the aggregate into titled sections, and persists the
// sections file to outPath. A page whose extraction fails contributes an
// empty string and is logged; it never aborts the run.
func Run(pdfPath, outPath string) (*Result, error) {
	if _, err := os.Stat(pdfPath); err != nil {
		return nil, fmt.Errorf("PDF not found: %s: %w", pdfPath, err)
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if err := api.ValidateFile(pdfPath, conf); err != nil {
		return nil, fmt.Errorf("PDF validation failed for %s: %w", pdfPath, err)
	}

	info := sections.DocumentInfo{SourceFile: filepath.ToSlash(pdfPath)}
	if ctx, err := api.ReadContextFile(pdfPath); err != nil {
		log.Warn().Err(err).Str("file", pdfPath).Msg("could not read PDF document info")
	} else {
		info.PageCount = ctx.PageCount
		if ctx.HeaderVersion != nil {
			info.PDFVersion = ctx.HeaderVersion.String()
		}
	}

	whole, err := extractText(pdfPath)
	if err != nil {
		return nil, err
	}

	secs := sections.Split(whole)
	log.Info().Int("sections", len(secs)).Str("file", pdfPath).Msg("extracted sections")

	result := &Result{Document: info, Sections: secs}
	if err := sections.Save(outPath, &sections.File{Document: &result.Document, Sections: secs}); err != nil {
		return nil, err
	}
	return result, nil
}

// extractText reads every page in order and joins the page texts with a
// single newline.
func extractText(pdfPath string) (string, error) {
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("error opening PDF: %w", err)
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			log.Warn().Int("page", i).Msg("null PDF page, skipping")
			pages = append(pages, "")
			continue
		}
		text, err := extractPageText(p)
		if err != nil {
			log.Warn().Err(err).Int("page", i).Msg("page text extraction failed")
			text = ""
		}
		pages = append(pages, text)
	}
	return strings.Join(pages, "\n"), nil
}

// extractPageText extracts text using row-based positioning so heading
// lines survive as lines. Falls back to plain extraction when row data is
// unavailable.
func extractPageText(p pdf.Page) (string, error) {
	rows, err := p.GetTextByRow()
	if err != nil {
		return p.GetPlainText(nil)
	}

	sortedRows := make([]*pdf.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil && len(row.Content) > 0 {
			sortedRows = append(sortedRows, row)
		}
	}
	// Y ascending gives top-to-bottom reading order
	sort.Slice(sortedRows, func(i, j int) bool {
		return averageY(sortedRows[i].Content) < averageY(sortedRows[j].Content)
	})

	var buf bytes.Buffer
	for _, row := range sortedRows {
		rowText := reconstructRowText(row.Content)
		if strings.TrimSpace(rowText) != "" {
			buf.WriteString(rowText)
			buf.WriteString("\n")
		}
	}
	return buf.String(), nil
}

func averageY(textElements []pdf.Text) float64 {
	if len(textElements) == 0 {
		return 0
	}
	var total float64
	for _, element := range textElements {
		total += element.Y
	}
	return total / float64(len(textElements))
}

// reconstructRowText joins a row's text elements left to right, inserting
// a space wherever the horizontal gap between elements exceeds 20% of the
// font size.
func reconstructRowText(textElements []pdf.Text) string {
	if len(textElements) == 0 {
		return ""
	}

	sorted := make([]pdf.Text, len(textElements))
	copy(sorted, textElements)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	var buf bytes.Buffer
	for i, element := range sorted {
		buf.WriteString(element.S)
		if i < len(sorted)-1 {
			gap := sorted[i+1].X - (element.X + element.W)
			fontSize := element.FontSize
			if fontSize <= 0 {
				fontSize = 12
			}
			if gap > fontSize*0.2 {
				buf.WriteString(" ")
			}
		}
	}
	return buf.String()
}
