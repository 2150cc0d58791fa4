package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/export"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/repository"
	apierrors "github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ExportHandler struct {
	logger *zap.Logger
	store  *repository.InventoryStore
}

func NewExportHandler(logger *zap.Logger, store *repository.InventoryStore) *ExportHandler {
	return &ExportHandler{logger: logger, store: store}
}

func (h *ExportHandler) rows(c *gin.Context) []export.Row {
	ctx := c.Request.Context()
	return export.BuildRows(h.store.ListItems(ctx), h.store.ListLocations(ctx))
}

func attachment(c *gin.Context, fileName, contentType string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
	c.Data(http.StatusOK, contentType, body)
}

// ExportSpreadsheet handles GET /api/v1/export/xlsx
// @Summary      Export inventory as Excel
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    file  "home-inventory.xlsx"
// @Failure      500  {object}  ErrorResponse
// @Router       /export/xlsx [get]
func (h *ExportHandler) ExportSpreadsheet(c *gin.Context) {
	rows := h.rows(c)

	var buf bytes.Buffer
	if err := export.WriteSpreadsheet(&buf, rows); err != nil {
		h.logger.Error("Failed to export spreadsheet", zap.Error(err))
		abortWithError(c, apierrors.NewExportError("xlsx", err))
		return
	}

	h.logger.Info("Inventory exported", zap.String("format", "xlsx"), zap.Int("rows", len(rows)))
	attachment(c, export.SpreadsheetFileName, export.SpreadsheetContentType, buf.Bytes())
}

// ExportPDF handles GET /api/v1/export/pdf
// @Summary      Export inventory as PDF
// @Tags         export
// @Produce      application/pdf
// @Success      200  {file}    file  "home-inventory.pdf"
// @Failure      500  {object}  ErrorResponse
// @Router       /export/pdf [get]
func (h *ExportHandler) ExportPDF(c *gin.Context) {
	rows := h.rows(c)

	var buf bytes.Buffer
	if err := export.WritePDF(&buf, rows, h.store.Now()); err != nil {
		h.logger.Error("Failed to export PDF", zap.Error(err))
		abortWithError(c, apierrors.NewExportError("pdf", err))
		return
	}

	h.logger.Info("Inventory exported", zap.String("format", "pdf"), zap.Int("rows", len(rows)))
	attachment(c, export.PDFFileName, export.PDFContentType, buf.Bytes())
}
