package handlers

import (
	"net/http"

	"production_scheduler/internal/adapter/http/dto/request"
	"production_scheduler/internal/adapter/http/dto/response"
	"production_scheduler/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AdminHandler is the operator surface. Routes are mounted behind an admin session.
type AdminHandler struct {
	usecase usecase.IAdminUseCase
}

func NewAdminHandler(uc usecase.IAdminUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

// ListOrders godoc
// @Summary      Full order book, including rows with unparseable dates
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.AdminOrdersResponse
// @Router       /admin/orders [get]
func (h *AdminHandler) ListOrders(c *gin.Context) {
	out, err := h.usecase.ListOrders(c.Request.Context())
	if err != nil {
		abortWith(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAdminOrders(out))
}

// SaveOrder godoc
// @Summary      Create or overwrite one order
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.OrderRequest  true  "order"
// @Success      200   {object}  response.OrderResponse
// @Failure      422   {object}  pkg.HTTPError
// @Router       /admin/orders [put]
func (h *AdminHandler) SaveOrder(c *gin.Context) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	saved, err := h.usecase.SaveOrder(c.Request.Context(), payload.ToEntity())
	if err != nil {
		abortWith(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(saved))
}

// SaveOrders godoc
// @Summary      Write a batch of orders
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.OrderBatchRequest  true  "batch"
// @Success      200   {object}  response.BatchResponse
// @Failure      422   {object}  pkg.HTTPError
// @Failure      503   {object}  response.BatchResponse
// @Router       /admin/orders/batch [post]
func (h *AdminHandler) SaveOrders(c *gin.Context) {
	var payload request.OrderBatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	written, err := h.usecase.SaveOrders(c.Request.Context(), payload.ToEntities())
	if err != nil && len(written) == 0 {
		abortWith(c, mapOrderError(err))
		return
	}
	body := response.BatchResponse{Written: len(written), Orders: response.FromOrders(written)}
	if err != nil {
		_ = c.Error(err)
		c.JSON(mapOrderError(err).HTTPStatus, body)
		return
	}
	c.JSON(http.StatusOK, body)
}

// InvalidateCache godoc
// @Summary      Force the next read to hit the store
// @Tags         admin
// @Security     Bearer
// @Success      204
// @Router       /admin/cache/invalidate [post]
func (h *AdminHandler) InvalidateCache(c *gin.Context) {
	h.usecase.InvalidateCache(c.Request.Context())
	c.Status(http.StatusNoContent)
}
