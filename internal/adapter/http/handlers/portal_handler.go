package handlers

import (
	"fmt"
	"net/http"
	"time"

	"production_scheduler/internal/adapter/export"
	"production_scheduler/internal/adapter/http/dto/request"
	"production_scheduler/internal/adapter/http/dto/response"
	"production_scheduler/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PortalHandler serves a customer session. The permitted-customer set always
// comes from the verified session, never from the request.
type PortalHandler struct {
	usecase usecase.IPortalUseCase
}

func NewPortalHandler(uc usecase.IPortalUseCase) *PortalHandler {
	return &PortalHandler{usecase: uc}
}

// Events godoc
// @Summary      Calendar feed with SOLD placeholders for other customers
// @Tags         portal
// @Produce      json
// @Security     Bearer
// @Success      200  {array}   response.CalendarEventResponse
// @Failure      401  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /portal/events [get]
func (h *PortalHandler) Events(c *gin.Context) {
	s, ok := sessionFrom(c)
	if !ok {
		abortWith(c, errUnauthenticated)
		return
	}
	events, err := h.usecase.Calendar(c.Request.Context(), s.Customers)
	if err != nil {
		abortWith(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCalendarEvents(events))
}

// Orders godoc
// @Summary      Owned orders as table rows
// @Tags         portal
// @Produce      json
// @Security     Bearer
// @Param        quote        query  string  false  "quote filter"
// @Param        quote_mode   query  string  false  "contains or exact"
// @Param        po           query  string  false  "PO number filter"
// @Param        po_mode      query  string  false  "contains or exact"
// @Param        status       query  string  false  "status filter"
// @Param        status_mode  query  string  false  "contains or exact"
// @Param        model        query  string  false  "model filter"
// @Param        model_mode   query  string  false  "contains or exact"
// @Param        customer     query  string  false  "one of the session customers"
// @Param        date         query  string  false  "YYYY-MM-DD"
// @Param        month        query  string  false  "YYYY-MM"
// @Success      200  {array}   response.OwnedOrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /portal/orders [get]
func (h *PortalHandler) Orders(c *gin.Context) {
	s, ok := sessionFrom(c)
	if !ok {
		abortWith(c, errUnauthenticated)
		return
	}
	var q request.OrderFilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		abortWith(c, mapOrderError(err))
		return
	}
	events, err := h.usecase.Orders(c.Request.Context(), s.Customers, filter)
	if err != nil {
		abortWith(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOwnedEvents(events))
}

// Summary godoc
// @Summary      Owned order count and total value
// @Tags         portal
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.SummaryResponse
// @Router       /portal/summary [get]
func (h *PortalHandler) Summary(c *gin.Context) {
	s, ok := sessionFrom(c)
	if !ok {
		abortWith(c, errUnauthenticated)
		return
	}
	sum, err := h.usecase.Summary(c.Request.Context(), s.Customers)
	if err != nil {
		abortWith(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSummary(sum))
}

// Export godoc
// @Summary      Owned orders as an xlsx workbook
// @Tags         portal
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     Bearer
// @Success      200
// @Router       /portal/export [get]
func (h *PortalHandler) Export(c *gin.Context) {
	s, ok := sessionFrom(c)
	if !ok {
		abortWith(c, errUnauthenticated)
		return
	}
	data, err := h.usecase.Export(c.Request.Context(), s.Customers)
	if err != nil {
		abortWith(c, mapOrderError(err))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="my_orders.xlsx"`)
	c.Data(http.StatusOK, export.SpreadsheetMIME, data)
}

// Print godoc
// @Summary      Printable monthly calendar
// @Tags         portal
// @Produce      html
// @Security     Bearer
// @Param        year   query  int  true  "year"
// @Param        month  query  int  true  "month 1-12"
// @Success      200
// @Failure      400  {object}  pkg.HTTPError
// @Router       /portal/print [get]
func (h *PortalHandler) Print(c *gin.Context) {
	s, ok := sessionFrom(c)
	if !ok {
		abortWith(c, errUnauthenticated)
		return
	}
	var q request.PrintQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	data, err := h.usecase.Print(c.Request.Context(), s.Customers, q.Year, time.Month(q.Month))
	if err != nil {
		abortWith(c, mapOrderError(err))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="schedule_%04d_%02d.html"`, q.Year, q.Month))
	c.Data(http.StatusOK, export.PrintMIME, data)
}
