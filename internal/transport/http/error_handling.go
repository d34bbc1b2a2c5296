package httpt

import (
	"context"
	"errors"
	"net/http"

	"github.com/trixiemotil-commits/Joshoeixi-Vape/internal/entity"
	"github.com/trixiemotil-commits/Joshoeixi-Vape/pkg/logger"

	"github.com/gin-gonic/gin"
)

func (h *InventoryHandler) handleServiceError(c *gin.Context, err error, op string) {
	log := h.log.Ctx(c.Request.Context())

	switch {
	case entity.IsValidation(err):
		log.LogAttrs(c.Request.Context(), logger.WarnLevel, "request rejected",
			logger.String("op", op),
			logger.Any("error", err),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, entity.ErrNotFound):
		log.LogAttrs(c.Request.Context(), logger.WarnLevel, "item not found",
			logger.String("op", op),
			logger.String("id", c.Param("id")),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Item not found"})
	case errors.Is(err, context.DeadlineExceeded):
		log.LogAttrs(c.Request.Context(), logger.WarnLevel, "request timeout",
			logger.String("op", op),
			logger.String("path", c.Request.URL.Path),
		)
		c.JSON(http.StatusGatewayTimeout, ErrorResponse{Error: "Request timed out"})
	default:
		log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "internal server error",
			logger.String("op", op),
			logger.Any("error", err),
			logger.String("path", c.Request.URL.Path),
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal service error"})
	}
}

func (h *InventoryHandler) handleBindError(c *gin.Context, op string, err error) {
	log := h.log.Ctx(c.Request.Context())

	log.LogAttrs(c.Request.Context(), logger.WarnLevel, "malformed request body",
		logger.String("op", op),
		logger.Any("error", err),
		logger.String("client_ip", c.ClientIP()),
	)

	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
}

func (h *InventoryHandler) handleInvalidID(c *gin.Context, op, value string) {
	log := h.log.Ctx(c.Request.Context())

	log.LogAttrs(c.Request.Context(), logger.WarnLevel, "invalid item id",
		logger.String("op", op),
		logger.String("value", value),
		logger.String("client_ip", c.ClientIP()),
	)

	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid item id"})
}
