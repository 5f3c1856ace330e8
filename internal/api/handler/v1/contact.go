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

type ContactService interface {
	ListContacts(ctx context.Context, query service.ContactListQuery) (domain.Page[domain.Contact], error)
	GetContact(ctx context.Context, id uint) (domain.Contact, error)
	CreateContact(ctx context.Context, contact domain.Contact, countryName, countryCode string) (domain.Contact, error)
	UpdateContact(ctx context.Context, contact domain.Contact) (domain.Contact, error)
	ApproveContact(ctx context.Context, id uint) (domain.Contact, error)
	RejectContact(ctx context.Context, id uint) (domain.Contact, error)
	DeleteContact(ctx context.Context, id uint) error
	GetCountryBreakdown(ctx context.Context, eventID uint) ([]domain.CountryCount, error)
}

type ContactHandler struct {
	svc   ContactService
	cache *viewcache.Cache
}

func NewContactHandler(svc ContactService, cache *viewcache.Cache) *ContactHandler {
	return &ContactHandler{
		svc:   svc,
		cache: cache,
	}
}

func (h *ContactHandler) invalidateViews() {
	h.cache.Invalidate("/api/v1/events", "/api/v1/contacts", "/api/v1/countries", "/api/v1/dashboard")
}

// HandleListContacts godoc
// @Summary      List an event's contacts
// @Description  Paginated contacts of one event, filterable by type and status.
// @Tags         contacts
// @Produce      json
// @Param        eventID  path      int     true   "event ID"
// @Param        page     query     int     false  "page number"
// @Param        limit    query     int     false  "page size"
// @Param        search   query     string  false  "search term"
// @Param        type     query     string  false  "contact type filter"
// @Param        status   query     string  false  "contact status filter"
// @Success      200      {object}  response.Envelope
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/contacts [get]
// @Security BearerAuth
func (h *ContactHandler) HandleListContacts(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	page, err := h.svc.ListContacts(ctx.Request.Context(), service.ContactListQuery{
		Page:    parsePageRequest(ctx),
		Search:  ctx.Query("search"),
		SortBy:  ctx.Query("sort"),
		Order:   ctx.Query("order"),
		EventID: eventID,
		Type:    domain.ContactType(ctx.Query("type")),
		Status:  domain.ContactStatus(ctx.Query("status")),
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleListContacts -> h.svc.ListContacts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderOK(ctx, page)
}

// HandleGetContact godoc
// @Summary      Get one contact
// @Tags         contacts
// @Produce      json
// @Param        contactID  path      int  true  "contact ID"
// @Success      200        {object}  response.Envelope
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /contacts/{contactID} [get]
// @Security BearerAuth
func (h *ContactHandler) HandleGetContact(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "contactID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	contact, err := h.svc.GetContact(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("contact", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetContact -> h.svc.GetContact -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderOK(ctx, contact)
}

// HandleCreateContact godoc
// @Summary      Create a contact under an event
// @Description  Resolves the country by name, creating it on first use. Invite contacts with an email receive a notification.
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                           true  "event ID"
// @Param        request  body      request.CreateContactRequest  true  "request body"
// @Success      201      {object}  response.Envelope
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/contacts [post]
// @Security BearerAuth
func (h *ContactHandler) HandleCreateContact(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.CreateContactRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	contact := contactFromRequest(req)
	contact.EventID = eventID

	created, err := h.svc.CreateContact(ctx.Request.Context(), contact, req.Country, req.CountryCode)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}

		err = fmt.Errorf("v1.HandleCreateContact -> h.svc.CreateContact -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.invalidateViews()
	response.RenderCreated(ctx, created)
}

// HandleUpdateContact godoc
// @Summary      Update a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        contactID  path      int                           true  "contact ID"
// @Param        request    body      request.UpdateContactRequest  true  "request body"
// @Success      200        {object}  response.Envelope
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /contacts/{contactID} [put]
// @Security BearerAuth
func (h *ContactHandler) HandleUpdateContact(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "contactID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateContactRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	contact := contactFromRequest(req.CreateContactRequest)
	contact.ID = id

	updated, err := h.svc.UpdateContact(ctx.Request.Context(), contact)
	if err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("contact", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateContact -> h.svc.UpdateContact -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.invalidateViews()
	response.RenderOK(ctx, updated)
}

// HandleApproveContact godoc
// @Summary      Approve a pending contact
// @Description  Only PENDING contacts change state; approving an already resolved contact is a no-op.
// @Tags         contacts
// @Produce      json
// @Param        contactID  path      int  true  "contact ID"
// @Success      200        {object}  response.Envelope
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /contacts/{contactID}/approve [post]
// @Security BearerAuth
func (h *ContactHandler) HandleApproveContact(ctx *gin.Context) {
	h.resolveContact(ctx, h.svc.ApproveContact, "v1.HandleApproveContact -> h.svc.ApproveContact")
}

// HandleRejectContact godoc
// @Summary      Reject a pending contact
// @Tags         contacts
// @Produce      json
// @Param        contactID  path      int  true  "contact ID"
// @Success      200        {object}  response.Envelope
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /contacts/{contactID}/reject [post]
// @Security BearerAuth
func (h *ContactHandler) HandleRejectContact(ctx *gin.Context) {
	h.resolveContact(ctx, h.svc.RejectContact, "v1.HandleRejectContact -> h.svc.RejectContact")
}

func (h *ContactHandler) resolveContact(ctx *gin.Context, apply func(context.Context, uint) (domain.Contact, error), caller string) {
	id, err := parseIDParam(ctx, "contactID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := apply(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("contact", "ID", id))
			return
		}

		err = fmt.Errorf("%v -> %w", caller, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.invalidateViews()
	response.RenderOK(ctx, updated)
}

// HandleDeleteContact godoc
// @Summary      Delete a contact
// @Tags         contacts
// @Produce      json
// @Param        contactID  path      int  true  "contact ID"
// @Success      200        {object}  response.Envelope
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /contacts/{contactID} [delete]
// @Security BearerAuth
func (h *ContactHandler) HandleDeleteContact(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "contactID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteContact(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("contact", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteContact -> h.svc.DeleteContact -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.invalidateViews()
	response.RenderOK(ctx, gin.H{"deleted": id})
}

// HandleGetCountryBreakdown godoc
// @Summary      Count an event's contacts by country
// @Tags         contacts
// @Produce      json
// @Param        eventID  path      int  true  "event ID"
// @Success      200      {object}  response.Envelope
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/contacts/countries [get]
// @Security BearerAuth
func (h *ContactHandler) HandleGetCountryBreakdown(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	counts, err := h.svc.GetCountryBreakdown(ctx.Request.Context(), eventID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetCountryBreakdown -> h.svc.GetCountryBreakdown -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderOK(ctx, counts)
}

func contactFromRequest(req request.CreateContactRequest) domain.Contact {
	return domain.Contact{
		Type:         domain.ContactType(req.Type),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Organization: req.Organization,
		Website:      req.Website,
		Status:       domain.ContactStatus(req.Status),
		Notes:        req.Notes,
		Tier:         req.Tier,
	}
}
