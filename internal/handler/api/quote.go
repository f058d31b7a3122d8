package api

import (
	"net/http"
	"strconv"

	"workshop-quotes/internal/domain/quote"
	"workshop-quotes/internal/domain/staff"
	reqdto "workshop-quotes/internal/handler/dto/request"
	resdto "workshop-quotes/internal/handler/dto/response"
	"workshop-quotes/internal/handler/httperr"
	"workshop-quotes/internal/handler/middleware"
	"workshop-quotes/internal/pkg/errs"
	"workshop-quotes/internal/usecase/commands"
	"workshop-quotes/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QuoteHandler struct {
	quotes     commands.QuoteCommands
	assignment commands.AssignmentCommands
	diagnosis  commands.DiagnosisCommands
	approval   commands.ApprovalCommands
	conversion commands.ConversionCommands
	q          queries.QuoteQueries
	orders     queries.ServiceOrderQueries
}

func NewQuoteHandler(
	quotes commands.QuoteCommands,
	assignment commands.AssignmentCommands,
	diagnosis commands.DiagnosisCommands,
	approval commands.ApprovalCommands,
	conversion commands.ConversionCommands,
	q queries.QuoteQueries,
	orders queries.ServiceOrderQueries,
) *QuoteHandler {
	return &QuoteHandler{
		quotes:     quotes,
		assignment: assignment,
		diagnosis:  diagnosis,
		approval:   approval,
		conversion: conversion,
		q:          q,
		orders:     orders,
	}
}

var errMissingActor = errs.New("authenticated actor missing from context")

// actorAndID extracts the caller and the :id path parameter, aborting on failure.
func actorAndID(c *gin.Context) (staff.Actor, uuid.UUID, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingActor, "Unauthorized", nil)
		return staff.Actor{}, uuid.Nil, false
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid id")
		return staff.Actor{}, uuid.Nil, false
	}
	return actor, id, true
}

func (h *QuoteHandler) respondQuote(c *gin.Context, status int, q *quote.Quote) {
	c.JSON(status, h.q.View(q))
}

// @Summary Create quote
// @Description Create a DRAFT quote for a customer vehicle
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateQuoteRequest true "Create quote request"
// @Success 201 {object} queries.QuoteView
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingActor, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	q, err := h.quotes.Create(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	h.respondQuote(c, http.StatusCreated, q)
}

// @Summary List quotes
// @Description List tenant quotes newest first. unassigned=true lists the mechanic pool.
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param status query string false "Observed status, EXPIRED included"
// @Param mechanic_id query string false "Assigned mechanic"
// @Param unassigned query bool false "Only quotes without a mechanic"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.QuoteListResponse
// @Failure 400 {object} httperr.Response
// @Router /quotes [get]
func (h *QuoteHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingActor, "Unauthorized", nil)
		return
	}
	var query reqdto.ListQuotesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortBadRequest(c, err, "Invalid query")
		return
	}
	filters, err := query.ToFilters()
	if err != nil {
		abortBadRequest(c, err, "Invalid filter")
		return
	}
	limit := queries.ValidateLimit(query.Limit)
	var cursor *queries.Cursor
	if query.After != "" {
		cursor = &queries.Cursor{After: query.After}
	}
	items, next, err := h.q.List(c.Request.Context(), actor.TenantID, filters, cursor, limit)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteList(items, next))
}

// @Summary Get quote
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Success 200 {object} queries.QuoteView
// @Failure 404 {object} httperr.Response
// @Router /quotes/{id} [get]
func (h *QuoteHandler) Get(c *gin.Context) {
	actor, id, ok := actorAndID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor.TenantID, id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Update items and costs
// @Description Replace the item list and cost breakdown while the quote is in preparation
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Param request body reqdto.UpdateItemsRequest true "Items and costs"
// @Success 200 {object} queries.QuoteView
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /quotes/{id}/items [put]
func (h *QuoteHandler) UpdateItems(c *gin.Context) {
	actor, id, ok := actorAndID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	items, costs := req.ToInput()
	q, err := h.quotes.UpdateItems(c.Request.Context(), actor, id, items, costs)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	h.respondQuote(c, http.StatusOK, q)
}

// @Summary Send for diagnosis
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Success 200 {object} queries.QuoteView
// @Failure 409 {object} httperr.Response
// @Router /quotes/{id}/send-for-diagnosis [post]
func (h *QuoteHandler) SendForDiagnosis(c *gin.Context) {
	actor, id, ok := actorAndID(c)
	if !ok {
		return
	}
	q, err := h.quotes.SendForDiagnosis(c.Request.Context(), actor, id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	h.respondQuote(c, http.StatusOK, q)
}

// @Summary Assign mechanic
// @Description Set or clear the assigned mechanic. A null mechanic_id returns the quote to the pool.
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Param request body reqdto.AssignMechanicRequest true "Assignment"
// @Success 200 {object} queries.QuoteView
// @Failure 409 {object} httperr.Response
// @Router /quotes/{id}/assignee [put]
func (h *QuoteHandler) Assign(c *gin.Context) {
	actor, id, ok := actorAndID(c)
	if !ok {
		return
	}
	var req reqdto.AssignMechanicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	q, err := h.assignment.Assign(c.Request.Context(), actor, id, req.MechanicID, req.Reason)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	h.respondQuote(c, http.StatusOK, q)
}

// @Summary Claim quote
// @Description Take an unassigned quote for the calling mechanic. Losing a race returns 409.
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Success 200 {object} queries.QuoteView
// @Failure 409 {object} httperr.Response
// @Router /quotes/{id}/claim [post]
func (h *QuoteHandler) Claim(c *gin.Context) {
	actor, id, ok := actorAndID(c)
	if !ok {
		return
	}
	q, err := h.assignment.Claim(c.Request.Context(), actor, id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	h.respondQuote(c, http.StatusOK, q)
}

// @Summary Complete diagnosis
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Param request body reqdto.CompleteDiagnosisRequest true "Diagnosis"
// @Success 200 {object} queries.QuoteView
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /quotes/{id}/diagnosis [post]
func (h *QuoteHandler) CompleteDiagnosis(c *gin.Context) {
	actor, id, ok := actorAndID(c)
	if !ok {
		return
	}
	var req reqdto.CompleteDiagnosisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	q, err := h.diagnosis.Complete(c.Request.Context(), actor, id, req.ToInput())
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	h.respondQuote(c, http.StatusOK, q)
}

// @Summary Send to customer
// @Description Issue (or reuse) the public approval link and mark the quote SENT
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Success 200 {object} resdto.SendQuoteResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /quotes/{id}/send [post]
func (h *QuoteHandler) SendToCustomer(c *gin.Context) {
	actor, id, ok := actorAndID(c)
	if !ok {
		return
	}
	res, err := h.quotes.SendToCustomer(c.Request.Context(), actor, id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSend(h.q.View(res.Quote), res.PublicURL, res.Reused))
}

// @Summary Regenerate public link
// @Description Replace the approval token; the previous link stops working
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Success 200 {object} resdto.SendQuoteResponse
// @Failure 409 {object} httperr.Response
// @Router /quotes/{id}/regenerate-token [post]
func (h *QuoteHandler) RegenerateToken(c *gin.Context) {
	actor, id, ok := actorAndID(c)
	if !ok {
		return
	}
	res, err := h.quotes.RegenerateToken(c.Request.Context(), actor, id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSend(h.q.View(res.Quote), res.PublicURL, res.Reused))
}

// @Summary Approve manually
// @Description Record an in-person approval and convert the quote into a service order
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Param request body reqdto.ApproveQuoteRequest false "Signature and notes"
// @Success 200 {object} resdto.ApprovalResponse
// @Failure 402 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /quotes/{id}/approve [post]
func (h *QuoteHandler) Approve(c *gin.Context) {
	actor, id, ok := actorAndID(c)
	if !ok {
		return
	}
	var req reqdto.ApproveQuoteRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortBadRequest(c, err, "Invalid request")
			return
		}
	}
	res, err := h.approval.ApproveManually(c.Request.Context(), actor, id, req.CustomerSignature, req.Notes)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.approvalResponse(res))
}

func (h *QuoteHandler) approvalResponse(res *commands.ApprovalResult) *resdto.ApprovalResponse {
	resp := &resdto.ApprovalResponse{
		Quote:           h.q.View(res.Quote),
		AlreadyApproved: res.AlreadyApproved,
	}
	if res.ServiceOrder != nil {
		resp.ServiceOrder = queries.NewServiceOrderView(res.ServiceOrder)
	}
	return resp
}

// @Summary Reject manually
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Param request body reqdto.RejectQuoteRequest false "Reason"
// @Success 200 {object} queries.QuoteView
// @Failure 409 {object} httperr.Response
// @Router /quotes/{id}/reject [post]
func (h *QuoteHandler) Reject(c *gin.Context) {
	actor, id, ok := actorAndID(c)
	if !ok {
		return
	}
	var req reqdto.RejectQuoteRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortBadRequest(c, err, "Invalid request")
			return
		}
	}
	q, err := h.approval.RejectManually(c.Request.Context(), actor, id, req.Reason)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	h.respondQuote(c, http.StatusOK, q)
}

// @Summary Convert to service order
// @Description Create the service order for an ACCEPTED quote. Repeating the call returns the same order.
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Success 200 {object} resdto.ConversionResponse
// @Success 201 {object} resdto.ConversionResponse
// @Failure 409 {object} httperr.Response
// @Router /quotes/{id}/convert [post]
func (h *QuoteHandler) Convert(c *gin.Context) {
	actor, id, ok := actorAndID(c)
	if !ok {
		return
	}
	res, err := h.conversion.Convert(c.Request.Context(), actor.TenantID, id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	status := http.StatusCreated
	if res.AlreadyConverted {
		status = http.StatusOK
	}
	c.JSON(status, &resdto.ConversionResponse{
		Quote:            h.q.View(res.Quote),
		ServiceOrder:     queries.NewServiceOrderView(res.ServiceOrder),
		AlreadyConverted: res.AlreadyConverted,
	})
}

// @Summary Create revision
// @Description Start a new DRAFT version of a sent, rejected or expired quote
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Success 201 {object} queries.QuoteView
// @Failure 409 {object} httperr.Response
// @Router /quotes/{id}/revisions [post]
func (h *QuoteHandler) CreateRevision(c *gin.Context) {
	actor, id, ok := actorAndID(c)
	if !ok {
		return
	}
	q, err := h.quotes.CreateRevision(c.Request.Context(), actor, id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	h.respondQuote(c, http.StatusCreated, q)
}

// @Summary Quote PDF
// @Tags quotes
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Success 200 {file} binary
// @Failure 503 {object} httperr.Response
// @Router /quotes/{id}/pdf [get]
func (h *QuoteHandler) PDF(c *gin.Context) {
	actor, id, ok := actorAndID(c)
	if !ok {
		return
	}
	doc, err := h.quotes.GeneratePDF(c.Request.Context(), actor, id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	c.Header("Content-Length", strconv.Itoa(len(doc.Body)))
	c.Data(http.StatusOK, doc.ContentType, doc.Body)
}

// @Summary Get service order
// @Tags service-orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service order ID"
// @Success 200 {object} queries.ServiceOrderView
// @Failure 404 {object} httperr.Response
// @Router /service-orders/{id} [get]
func (h *QuoteHandler) GetServiceOrder(c *gin.Context) {
	actor, id, ok := actorAndID(c)
	if !ok {
		return
	}
	view, err := h.orders.GetByID(c.Request.Context(), actor.TenantID, id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
