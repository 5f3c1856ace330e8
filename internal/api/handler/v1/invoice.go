package v1

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/eventdesk/eventdesk-api/internal/api/handler/v1/request"
	"github.com/eventdesk/eventdesk-api/internal/api/handler/v1/response"
	"github.com/eventdesk/eventdesk-api/internal/domain"
	"github.com/eventdesk/eventdesk-api/internal/service"
	"github.com/eventdesk/eventdesk-api/internal/viewcache"
)

type InvoiceService interface {
	ListInvoices(ctx context.Context, query service.InvoiceListQuery) (domain.Page[domain.Invoice], error)
	GetInvoice(ctx context.Context, id uint) (domain.Invoice, error)
	CreateInvoice(ctx context.Context, invoice domain.Invoice) (domain.Invoice, error)
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) (domain.Invoice, error)
	DeleteInvoice(ctx context.Context, id uint) error
}

type InvoiceHandler struct {
	svc   InvoiceService
	cache *viewcache.Cache
}

func NewInvoiceHandler(svc InvoiceService, cache *viewcache.Cache) *InvoiceHandler {
	return &InvoiceHandler{
		svc:   svc,
		cache: cache,
	}
}

func (h *InvoiceHandler) invalidateViews() {
	h.cache.Invalidate("/api/v1/events", "/api/v1/invoices", "/api/v1/dashboard")
}

// HandleListInvoices godoc
// @Summary      List an event's invoices
// @Tags         invoices
// @Produce      json
// @Param        eventID  path      int     true   "event ID"
// @Param        page     query     int     false  "page number"
// @Param        limit    query     int     false  "page size"
// @Param        status   query     string  false  "invoice status filter"
// @Success      200      {object}  response.Envelope
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/invoices [get]
// @Security BearerAuth
func (h *InvoiceHandler) HandleListInvoices(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	page, err := h.svc.ListInvoices(ctx.Request.Context(), service.InvoiceListQuery{
		Page:    parsePageRequest(ctx),
		EventID: eventID,
		Status:  domain.InvoiceStatus(ctx.Query("status")),
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleListInvoices -> h.svc.ListInvoices -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderOK(ctx, page)
}

// HandleGetInvoice godoc
// @Summary      Get one invoice with its line items
// @Tags         invoices
// @Produce      json
// @Param        invoiceID  path      int  true  "invoice ID"
// @Success      200        {object}  response.Envelope
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /invoices/{invoiceID} [get]
// @Security BearerAuth
func (h *InvoiceHandler) HandleGetInvoice(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "invoiceID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	invoice, err := h.svc.GetInvoice(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrInvoiceNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("invoice", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetInvoice -> h.svc.GetInvoice -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderOK(ctx, invoice)
}

// HandleCreateInvoice godoc
// @Summary      Create an invoice under an event
// @Description  A number is generated when none is given; the amount is computed from the line items.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                           true  "event ID"
// @Param        request  body      request.CreateInvoiceRequest  true  "request body"
// @Success      201      {object}  response.Envelope
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/invoices [post]
// @Security BearerAuth
func (h *InvoiceHandler) HandleCreateInvoice(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.CreateInvoiceRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	invoice := invoiceFromRequest(req)
	invoice.EventID = eventID

	created, err := h.svc.CreateInvoice(ctx.Request.Context(), invoice)
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateInvoice -> h.svc.CreateInvoice -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.invalidateViews()
	response.RenderCreated(ctx, created)
}

// HandleUpdateInvoice godoc
// @Summary      Update an invoice
// @Description  Line items are replaced; the amount is recomputed. The number and owning event never change.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        invoiceID  path      int                           true  "invoice ID"
// @Param        request    body      request.UpdateInvoiceRequest  true  "request body"
// @Success      200        {object}  response.Envelope
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /invoices/{invoiceID} [put]
// @Security BearerAuth
func (h *InvoiceHandler) HandleUpdateInvoice(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "invoiceID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateInvoiceRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	invoice := invoiceFromRequest(req.CreateInvoiceRequest)
	invoice.ID = id

	updated, err := h.svc.UpdateInvoice(ctx.Request.Context(), invoice)
	if err != nil {
		if errors.Is(err, service.ErrInvoiceNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("invoice", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateInvoice -> h.svc.UpdateInvoice -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.invalidateViews()
	response.RenderOK(ctx, updated)
}

// HandleDeleteInvoice godoc
// @Summary      Delete an invoice
// @Tags         invoices
// @Produce      json
// @Param        invoiceID  path      int  true  "invoice ID"
// @Success      200        {object}  response.Envelope
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /invoices/{invoiceID} [delete]
// @Security BearerAuth
func (h *InvoiceHandler) HandleDeleteInvoice(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "invoiceID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteInvoice(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrInvoiceNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("invoice", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteInvoice -> h.svc.DeleteInvoice -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.invalidateViews()
	response.RenderOK(ctx, gin.H{"deleted": id})
}

func invoiceFromRequest(req request.CreateInvoiceRequest) domain.Invoice {
	date, _ := request.ParseDate(req.Date)
	dueDate, _ := request.ParseDate(req.DueDate)

	items := make([]domain.InvoiceItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = domain.InvoiceItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       float64(item.Quantity) * item.UnitPrice,
		}
	}

	return domain.Invoice{
		Number:    req.Number,
		ContactID: req.ContactID,
		Status:    domain.InvoiceStatus(req.Status),
		Date:      date,
		DueDate:   dueDate,
		Items:     items,
	}
}
