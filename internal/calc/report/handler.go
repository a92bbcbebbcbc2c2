package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/phpdave11/gofpdf"
)

// Input carries project metadata plus the already-computed result records
// of whatever engines the client ran. Aggregation happens here, at the
// caller side; the engines themselves stay independent.
type Input struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`

	HVAC       map[string]any `json:"hvac,omitempty"`
	Electrical map[string]any `json:"electrical,omitempty"`
	Plumbing   map[string]any `json:"plumbing,omitempty"`
	Fire       map[string]any `json:"fire,omitempty"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "MEP Design Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	writeSection(pdf, "HVAC", input.HVAC)
	writeSection(pdf, "Electrical", input.Electrical)
	writeSection(pdf, "Plumbing", input.Plumbing)
	writeSection(pdf, "Fire Protection", input.Fire)

	if input.Notes != "" {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Notes")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5,
		"Simplified educational estimates. Not a substitute for code-certified design calculations.",
		"", "L", false)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"mep-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func writeSection(pdf *gofpdf.Fpdf, title string, values map[string]any) {
	if len(values) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		pdf.Cell(0, 6, fmt.Sprintf("%s: %v", key, values[key]))
		pdf.Ln(6)
	}
	pdf.Ln(4)
}
