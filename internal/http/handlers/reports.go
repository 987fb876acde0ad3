package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"touradmin/internal/http/middleware"
	"touradmin/internal/services"
)

// GET /api/reports/costumes — the costume catalogue as a PDF (inline).
func GetCostumeCataloguePDF(c *gin.Context) {
	svc := services.ReportService{RequestID: middleware.GetRequestID(c)}

	pdfBytes, filename, err := svc.GenerateCostumeCatalogue()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
