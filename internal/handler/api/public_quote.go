package api

import (
	"net/http"

	"workshop-quotes/internal/domain/quote"
	reqdto "workshop-quotes/internal/handler/dto/request"
	resdto "workshop-quotes/internal/handler/dto/response"
	"workshop-quotes/internal/handler/httperr"
	"workshop-quotes/internal/usecase/commands"
	"workshop-quotes/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PublicQuoteHandler serves the customer approval link. Every failure to resolve
// the link reads the same, whatever the cause.
type PublicQuoteHandler struct {
	approval commands.ApprovalCommands
	q        queries.QuoteQueries
}

func NewPublicQuoteHandler(approval commands.ApprovalCommands, q queries.QuoteQueries) *PublicQuoteHandler {
	return &PublicQuoteHandler{approval: approval, q: q}
}

func linkParams(c *gin.Context) (uuid.UUID, string, bool) {
	tenantID, err := uuid.Parse(c.Param("tenantId"))
	token := c.Param("token")
	if err != nil || token == "" {
		httperr.AbortWithCode(c, http.StatusNotFound, quote.ErrTokenInvalid, CodeTokenInvalid, quote.ErrTokenInvalid.Error(), nil)
		return uuid.Nil, "", false
	}
	return tenantID, token, true
}

// @Summary View quote by link
// @Description Customer view of a sent quote. The first view marks it VIEWED.
// @Tags public
// @Produce json
// @Param tenantId path string true "Tenant ID"
// @Param token path string true "Public token"
// @Success 200 {object} resdto.PublicQuoteResponse
// @Failure 404 {object} httperr.Response
// @Router /public/{tenantId}/quotes/{token} [get]
func (h *PublicQuoteHandler) View(c *gin.Context) {
	tenantID, token, ok := linkParams(c)
	if !ok {
		return
	}
	q, err := h.approval.ViewByToken(c.Request.Context(), tenantID, token)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPublicQuote(h.q.View(q)))
}

// @Summary Approve quote by link
// @Tags public
// @Accept json
// @Produce json
// @Param tenantId path string true "Tenant ID"
// @Param token path string true "Public token"
// @Param request body reqdto.PublicApproveRequest false "Signature"
// @Success 200 {object} resdto.PublicApprovalResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /public/{tenantId}/quotes/{token}/approve [post]
func (h *PublicQuoteHandler) Approve(c *gin.Context) {
	tenantID, token, ok := linkParams(c)
	if !ok {
		return
	}
	var req reqdto.PublicApproveRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortBadRequest(c, err, "Invalid request")
			return
		}
	}
	res, err := h.approval.ApproveByToken(c.Request.Context(), tenantID, token, req.CustomerSignature)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	resp := &resdto.PublicApprovalResponse{Quote: resdto.FromPublicQuote(h.q.View(res.Quote))}
	if res.ServiceOrder != nil {
		resp.ServiceOrderNumber = res.ServiceOrder.Number
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Reject quote by link
// @Tags public
// @Accept json
// @Produce json
// @Param tenantId path string true "Tenant ID"
// @Param token path string true "Public token"
// @Param request body reqdto.RejectQuoteRequest false "Reason"
// @Success 200 {object} resdto.PublicQuoteResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /public/{tenantId}/quotes/{token}/reject [post]
func (h *PublicQuoteHandler) Reject(c *gin.Context) {
	tenantID, token, ok := linkParams(c)
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
	q, err := h.approval.RejectByToken(c.Request.Context(), tenantID, token, req.Reason)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPublicQuote(h.q.View(q)))
}
