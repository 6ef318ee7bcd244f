package pdfexport

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"
)

// GenerateInterviewReport собирает PDF-отчёт по интервью кандидата
func GenerateInterviewReport(roleTitle, candidateName string, rec pipelineapimodels.InterviewView) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateInterviewReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Interview Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Role: %s", roleTitle), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Candidate: %s", candidateName), "", 1, "L", false, 0, "")
	if rec.FitScore != nil {
		pdf.CellFormat(0, 8, fmt.Sprintf("Fit score: %d", *rec.FitScore), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 8, fmt.Sprintf("Recommendation: %s", rec.Recommendation), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	writeSection(pdf, "Summary", rec.Summary)
	writeListSection(pdf, "Key points", rec.KeyPoints)
	writeListSection(pdf, "Strengths", rec.Strengths)
	writeListSection(pdf, "Concerns", rec.Concerns)
	writeSection(pdf, "Transcription", rec.Transcription)

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSection(pdf *fpdf.Fpdf, title, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, body, "", "L", false)
	pdf.Ln(2)
}

func writeListSection(pdf *fpdf.Fpdf, title string, items []string) {
	if len(items) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, item := range items {
		pdf.MultiCell(0, 6, fmt.Sprintf("- %s", item), "", "L", false)
	}
	pdf.Ln(2)
}
