//go:build e2e

package quote_test

import (
	"fmt"
	"net/http"
	"testing"

	"workshop-quotes/internal/domain/quote"
	"workshop-quotes/internal/domain/staff"
	resdto "workshop-quotes/internal/handler/dto/response"
	"workshop-quotes/internal/usecase/commands"
	"workshop-quotes/internal/usecase/queries"
	"workshop-quotes/tests/common/authtest"
	"workshop-quotes/tests/common/builder"
	"workshop-quotes/tests/common/dbtest"
	"workshop-quotes/tests/common/httptest"
	"workshop-quotes/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	quotesURL       = "/api/quotes"
	quoteURL        = "/api/quotes/%s"
	serviceOrderURL = "/api/service-orders/%s"
	publicQuoteURL  = "/api/public/%s/quotes/%s"
)

type QuoteSuite struct {
	e2e.SharedSuite
}

func TestQuoteSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(QuoteSuite))
}

type tenantStaff struct {
	tenantID      uuid.UUID
	manager       staff.Actor
	mechanic      staff.Actor
	managerToken  string
	mechanicToken string
}

func (s *QuoteSuite) newTenant(t *testing.T) tenantStaff {
	t.Helper()
	jwtHelper := authtest.NewJWTHelper(s.Config.JWT)
	tenantID := uuid.New()
	ts := tenantStaff{
		tenantID: tenantID,
		manager:  authtest.Staff(tenantID, staff.RoleManager),
		mechanic: authtest.Staff(tenantID, staff.RoleMechanic),
	}
	ts.managerToken = jwtHelper.GenerateToken(t, ts.manager)
	ts.mechanicToken = jwtHelper.GenerateToken(t, ts.mechanic)
	return ts
}

func (s *QuoteSuite) post(t *testing.T, path string, body any, token string, wantStatus int, target any) {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, path, body, token)
	require.Equal(t, wantStatus, w.Code, w.Body.String())
	if target != nil {
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, target))
	}
}

// createDiagnosed drives a fresh quote through preparation and diagnosis.
func (s *QuoteSuite) createDiagnosed(t *testing.T, ts tenantStaff) *queries.QuoteView {
	t.Helper()
	reqBody := builder.NewQuoteBuilder().BuildCreateRequestDTO()

	var created queries.QuoteView
	s.post(t, quotesURL, reqBody, ts.managerToken, http.StatusCreated, &created)
	require.Equal(t, quote.StatusDraft, created.Status)
	require.Equal(t, "ORC-000001", created.Number)

	url := fmt.Sprintf(quoteURL, created.ID)
	s.post(t, url+"/send-for-diagnosis", nil, ts.managerToken, http.StatusOK, nil)

	var claimed queries.QuoteView
	s.post(t, url+"/claim", nil, ts.mechanicToken, http.StatusOK, &claimed)
	require.NotNil(t, claimed.AssignedMechanicID)
	require.Equal(t, ts.mechanic.UserID, *claimed.AssignedMechanicID)

	var diagnosed queries.QuoteView
	s.post(t, url+"/diagnosis", map[string]any{
		"problem_category":    "engine",
		"problem_description": "Junta do cabeçote vazando",
		"recommendations":     "Trocar junta",
		"estimated_hours":     3,
	}, ts.mechanicToken, http.StatusOK, &diagnosed)
	require.Equal(t, quote.StatusDiagnosed, diagnosed.Status)
	return &diagnosed
}

// =============================================================================
// TestQuoteLifecycle
// =============================================================================

func (s *QuoteSuite) TestQuoteLifecycle() {
	s.Run("success: customer approval converts exactly once", func() {
		t := s.T()
		ts := s.newTenant(t)
		diagnosed := s.createDiagnosed(t, ts)
		url := fmt.Sprintf(quoteURL, diagnosed.ID)

		var sent resdto.SendQuoteResponse
		s.post(t, url+"/send", nil, ts.managerToken, http.StatusOK, &sent)
		require.False(t, sent.Reused)
		require.Equal(t, quote.StatusSent, sent.Quote.Status)
		require.NotNil(t, sent.Quote.PublicToken)
		token := *sent.Quote.PublicToken

		// A resend while the link is live keeps the same token.
		var resent resdto.SendQuoteResponse
		s.post(t, url+"/send", nil, ts.managerToken, http.StatusOK, &resent)
		require.True(t, resent.Reused)
		require.Equal(t, token, *resent.Quote.PublicToken)

		publicURL := fmt.Sprintf(publicQuoteURL, ts.tenantID, token)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, publicURL, nil, "")
		var viewed resdto.PublicQuoteResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &viewed)
		require.Equal(t, "VIEWED", viewed.Status)
		require.Equal(t, 150.0, viewed.Total)

		var approved resdto.PublicApprovalResponse
		s.post(t, publicURL+"/approve", map[string]any{"customer_signature": "data:image/png;base64,AAAA"}, "", http.StatusOK, &approved)
		require.Equal(t, "CONVERTED", approved.Quote.Status)
		require.Equal(t, "OS-000001", approved.ServiceOrderNumber)

		// Approving again and converting again return the existing order.
		s.post(t, publicURL+"/approve", nil, "", http.StatusOK, &approved)
		require.Equal(t, "OS-000001", approved.ServiceOrderNumber)

		var conv resdto.ConversionResponse
		s.post(t, url+"/convert", nil, ts.managerToken, http.StatusOK, &conv)
		require.True(t, conv.AlreadyConverted)
		require.Equal(t, "OS-000001", conv.ServiceOrder.Number)
		require.Equal(t, 1, dbtest.CountServiceOrders(t, s.DB, diagnosed.ID))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(serviceOrderURL, conv.ServiceOrder.ID), nil, ts.managerToken)
		var order queries.ServiceOrderView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &order)
		require.Equal(t, diagnosed.ID, order.QuoteID)
		require.Len(t, order.Items, 2)
		require.NotNil(t, order.MechanicID)
		require.Equal(t, ts.mechanic.UserID, *order.MechanicID)

		require.Equal(t, 1, dbtest.CountNotificationJobs(t, s.DB, ts.tenantID, commands.EventConverted))
		require.Equal(t, 1, dbtest.CountNotificationJobs(t, s.DB, ts.tenantID, commands.EventClaimed))
	})

	s.Run("success: rejected quote is revised into a new draft", func() {
		t := s.T()
		ts := s.newTenant(t)
		diagnosed := s.createDiagnosed(t, ts)
		url := fmt.Sprintf(quoteURL, diagnosed.ID)

		var sent resdto.SendQuoteResponse
		s.post(t, url+"/send", nil, ts.managerToken, http.StatusOK, &sent)

		var rejected queries.QuoteView
		s.post(t, url+"/reject", map[string]any{"reason": "caro demais"}, ts.managerToken, http.StatusOK, &rejected)
		require.Equal(t, quote.StatusRejected, rejected.Status)

		var revision queries.QuoteView
		s.post(t, url+"/revisions", nil, ts.managerToken, http.StatusCreated, &revision)
		require.Equal(t, quote.StatusDraft, revision.Status)
		require.Equal(t, 2, revision.Version)
		require.Equal(t, diagnosed.Number, revision.Number)
		require.NotNil(t, revision.ParentQuoteID)
		require.Equal(t, diagnosed.ID, *revision.ParentQuoteID)
		require.Nil(t, revision.PublicToken)
	})

	s.Run("error: superseded quote stays closed", func() {
		t := s.T()
		ts := s.newTenant(t)
		diagnosed := s.createDiagnosed(t, ts)
		url := fmt.Sprintf(quoteURL, diagnosed.ID)

		var sent resdto.SendQuoteResponse
		s.post(t, url+"/send", nil, ts.managerToken, http.StatusOK, &sent)
		token := *sent.Quote.PublicToken

		var revision queries.QuoteView
		s.post(t, url+"/revisions", nil, ts.managerToken, http.StatusCreated, &revision)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url+"/revisions", nil, ts.managerToken)
		httptest.AssertErrorCode(t, w, http.StatusConflict, "INVALID_TRANSITION")

		publicURL := fmt.Sprintf(publicQuoteURL, ts.tenantID, token)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, publicURL+"/approve", nil, "")
		httptest.AssertErrorCode(t, w, http.StatusNotFound, "TOKEN_INVALID")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url+"/approve", nil, ts.managerToken)
		httptest.AssertErrorCode(t, w, http.StatusConflict, "INVALID_TRANSITION")

		require.Equal(t, 0, dbtest.CountServiceOrders(t, s.DB, diagnosed.ID))
		require.Equal(t, 0, dbtest.CountServiceOrders(t, s.DB, revision.ID))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, ts.managerToken)
		var parent queries.QuoteView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &parent)
		require.Equal(t, quote.StatusSent, parent.Status)
	})
}

// =============================================================================
// TestPublicLinks
// =============================================================================

func (s *QuoteSuite) TestPublicLinks() {
	s.Run("error: expired link reads as EXPIRED and rejects approval", func() {
		t := s.T()
		ts := s.newTenant(t)
		diagnosed := s.createDiagnosed(t, ts)
		url := fmt.Sprintf(quoteURL, diagnosed.ID)

		var sent resdto.SendQuoteResponse
		s.post(t, url+"/send", nil, ts.managerToken, http.StatusOK, &sent)
		token := *sent.Quote.PublicToken
		dbtest.ExpireLink(t, s.DB, diagnosed.ID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, ts.managerToken)
		var view queries.QuoteView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
		require.Equal(t, quote.StatusExpired, view.Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(publicQuoteURL, ts.tenantID, token)+"/approve", nil, "")
		httptest.AssertErrorCode(t, w, http.StatusNotFound, "TOKEN_INVALID")
		require.Equal(t, 0, dbtest.CountServiceOrders(t, s.DB, diagnosed.ID))

		// Resending a lapsed link issues a new token.
		var resent resdto.SendQuoteResponse
		s.post(t, url+"/send", nil, ts.managerToken, http.StatusOK, &resent)
		require.False(t, resent.Reused)
		require.NotEqual(t, token, *resent.Quote.PublicToken)
	})

	s.Run("error: token from another tenant is not found", func() {
		t := s.T()
		ts := s.newTenant(t)
		diagnosed := s.createDiagnosed(t, ts)

		var sent resdto.SendQuoteResponse
		s.post(t, fmt.Sprintf(quoteURL, diagnosed.ID)+"/send", nil, ts.managerToken, http.StatusOK, &sent)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(publicQuoteURL, uuid.New(), *sent.Quote.PublicToken), nil, "")
		httptest.AssertErrorCode(t, w, http.StatusNotFound, "TOKEN_INVALID")
	})

	s.Run("error: second claim loses", func() {
		t := s.T()
		ts := s.newTenant(t)
		jwtHelper := authtest.NewJWTHelper(s.Config.JWT)
		other := jwtHelper.GenerateToken(t, authtest.Staff(ts.tenantID, staff.RoleMechanic))

		var created queries.QuoteView
		s.post(t, quotesURL, builder.NewQuoteBuilder().BuildCreateRequestDTO(), ts.managerToken, http.StatusCreated, &created)
		url := fmt.Sprintf(quoteURL, created.ID)
		s.post(t, url+"/send-for-diagnosis", nil, ts.managerToken, http.StatusOK, nil)
		s.post(t, url+"/claim", nil, ts.mechanicToken, http.StatusOK, nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url+"/claim", nil, other)
		httptest.AssertErrorCode(t, w, http.StatusConflict, "ALREADY_CLAIMED")
	})

	s.Run("error: mechanics cannot send quotes", func() {
		t := s.T()
		ts := s.newTenant(t)
		diagnosed := s.createDiagnosed(t, ts)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(quoteURL, diagnosed.ID)+"/send", nil, ts.mechanicToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}
