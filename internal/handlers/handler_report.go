package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pres_finance_portal/internal/core/ports/services"
	"github.com/SscSPs/pres_finance_portal/internal/dto"
	"github.com/SscSPs/pres_finance_portal/internal/middleware"
	"github.com/SscSPs/pres_finance_portal/internal/utils/reportexport"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// reportHandler serves the generate -> preview/print -> submit workflow
// for the session's selected wallet.
type reportHandler struct {
	reportService portssvc.ReportSvcFacade
}

func newReportHandler(rs portssvc.ReportSvcFacade) *reportHandler {
	return &reportHandler{reportService: rs}
}

// registerReportRoutes registers the report routes under a session group.
func registerReportRoutes(session *gin.RouterGroup, reportService portssvc.ReportSvcFacade) {
	h := newReportHandler(reportService)

	report := session.Group("/report")
	{
		report.GET("", h.getStatus)
		report.POST("/generate", h.generate)
		report.GET("/preview", h.preview)
		report.GET("/print", h.print)
		report.POST("/submit", h.submit)
	}
}

// getStatus godoc
// @Summary Get the selected wallet's report status
// @Description Tells the UI which of preview, print and submit are available
// @Tags reports
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} dto.ReportStatusResponse
// @Failure 409 {object} map[string]string "No wallet selected"
// @Router /sessions/{sessionID}/report [get]
func (h *reportHandler) getStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	walletID, status, err := h.reportService.Status(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondWithError(c, logger, err, "get report status")
		return
	}
	c.JSON(http.StatusOK, dto.ToReportStatusResponse(walletID, status))
}

// generate godoc
// @Summary Generate the selected wallet's report
// @Tags reports
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} dto.ReportActionResponse
// @Failure 409 {object} map[string]string "No wallet selected, already submitted or in progress"
// @Router /sessions/{sessionID}/report/generate [post]
func (h *reportHandler) generate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportService.Generate(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondWithError(c, logger, err, "generate report")
		return
	}

	logger.Info("Report generated", slog.String("wallet_id", report.WalletID))
	c.JSON(http.StatusOK, dto.ReportActionResponse{
		Message: fmt.Sprintf("Report for %s generated successfully.", report.WalletName),
		Status:  dto.ToReportStatusResponse(report.WalletID, report.Status),
	})
}

// preview godoc
// @Summary Preview the generated report
// @Description Returns the report as JSON, or as a plain-text table with format=text
// @Tags reports
// @Produce json,plain
// @Param sessionID path string true "Session ID"
// @Param format query string false "json or text" default(json)
// @Success 200 {object} dto.ReportResponse
// @Failure 409 {object} map[string]string "Report not generated"
// @Router /sessions/{sessionID}/report/preview [get]
func (h *reportHandler) preview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportService.Preview(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondWithError(c, logger, err, "preview report")
		return
	}

	switch c.DefaultQuery("format", "json") {
	case "text":
		c.String(http.StatusOK, reportexport.RenderText(report))
	case "json":
		c.JSON(http.StatusOK, dto.ToReportResponse(report))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be json or text"})
	}
}

// print godoc
// @Summary Print the generated report
// @Description Downloads the report as an XLSX workbook
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param sessionID path string true "Session ID"
// @Success 200 {file} file
// @Failure 409 {object} map[string]string "Report not generated"
// @Router /sessions/{sessionID}/report/print [get]
func (h *reportHandler) print(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, data, err := h.reportService.Print(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondWithError(c, logger, err, "print report")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="report-%s.xlsx"`, report.YearMonth))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// submit godoc
// @Summary Submit the generated report
// @Tags reports
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} dto.ReportActionResponse
// @Failure 409 {object} map[string]string "Report not generated, already submitted or in progress"
// @Router /sessions/{sessionID}/report/submit [post]
func (h *reportHandler) submit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportService.Submit(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondWithError(c, logger, err, "submit report")
		return
	}

	logger.Info("Report submitted", slog.String("wallet_id", report.WalletID))
	c.JSON(http.StatusOK, dto.ReportActionResponse{
		Message: fmt.Sprintf("Report for %s submitted successfully.", report.WalletName),
		Status:  dto.ToReportStatusResponse(report.WalletID, report.Status),
	})
}
