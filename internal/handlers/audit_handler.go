package handlers

import (
	"net/http"

	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/listener"

	"github.com/gin-gonic/gin"
)

// AuditSource exposes the running totals of the event listener
type AuditSource interface {
	Summary() listener.Summary
}

type AuditHandler struct {
	source AuditSource
}

func NewAuditHandler(source AuditSource) *AuditHandler {
	return &AuditHandler{source: source}
}

// Summary godoc
// @Summary      Event audit summary
// @Description  Totales calculados por el listener a partir de los eventos publicados en Kafka
// @Tags         audit
// @Produce      json
// @Success      200  {object}  listener.Summary
// @Router       /audit/summary [get]
func (h *AuditHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.source.Summary())
}
