package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"touradmin/internal/domain/models"
	"touradmin/internal/repositories"
	"touradmin/internal/utils"
)

// ReportService renders the costume catalogue as a PDF for export from the
// dashboard. Loader lets tests feed rows without a database.
type ReportService struct {
	CostumeRepo repositories.CostumeRepository
	RequestID   string
	Loader      func() ([]models.Costume, error)
}

func (s ReportService) GenerateCostumeCatalogue() ([]byte, string, error) {
	costumes, err := s.loadCostumes()
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "report", "costume_catalogue", fmt.Sprintf("rows=%d", len(costumes)))
	return buildCostumeCataloguePDF(costumes)
}

func (s ReportService) loadCostumes() ([]models.Costume, error) {
	if s.Loader != nil {
		return s.Loader()
	}
	return s.CostumeRepo.ListAll()
}

func buildCostumeCataloguePDF(costumes []models.Costume) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Costume Catalogue", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "COSTUME CATALOGUE")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated: "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(10, 8, "#", "1", 0, "C", false, 0, "")
	pdf.CellFormat(60, 8, "Name", "1", 0, "", false, 0, "")
	pdf.CellFormat(45, 8, "Scope", "1", 0, "", false, 0, "")
	pdf.CellFormat(75, 8, "Description", "1", 1, "", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for i, c := range costumes {
		scopeName := ""
		if c.Scope != nil {
			scopeName = c.Scope.Name
		}
		pdf.CellFormat(10, 7, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(60, 7, truncate(c.Name, 38), "1", 0, "", false, 0, "")
		pdf.CellFormat(45, 7, truncate(scopeName, 28), "1", 0, "", false, 0, "")
		pdf.CellFormat(75, 7, truncate(c.Description, 48), "1", 1, "", false, 0, "")
	}

	if len(costumes) == 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.Cell(0, 6, "No costumes recorded.")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("COSTUMES_%s.pdf", time.Now().Format("20060102"))
	return buf.Bytes(), filename, nil
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
