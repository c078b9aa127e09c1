//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"mindcare-booking/internal/domain/consultation"
	"mindcare-booking/internal/domain/reservation"
	"mindcare-booking/internal/domain/user"
	"mindcare-booking/internal/handler/api"
	resdto "mindcare-booking/internal/handler/dto/response"
	"mindcare-booking/internal/usecase/commands"
	"mindcare-booking/internal/usecase/queries"
	"mindcare-booking/tests/common/builder"
	"mindcare-booking/tests/common/httptest"
	commandsmock "mindcare-booking/tests/mock/commands"
	queriesmock "mindcare-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockCtrl          *gomock.Controller
	mockCommands      *commandsmock.MockReservationCommands
	mockPayments      *commandsmock.MockPaymentCommands
	mockConsultations *commandsmock.MockConsultationCommands
	mockQueries       *queriesmock.MockReservationQueries
	pro               user.Actor
	client            user.Actor
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockPayments = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.mockConsultations = commandsmock.NewMockConsultationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	h := api.NewReservationHandler(s.mockCommands, s.mockPayments, s.mockConsultations, s.mockQueries)
	s.pro = user.NewActor(uuid.New(), user.RoleProfessional)
	s.client = user.NewActor(uuid.New(), user.RoleClient)

	s.router.Use(fakeAuth)
	s.router.GET("/reservations", h.List)
	s.router.GET("/reservations/:id", h.Get)
	s.router.POST("/reservations/:id/validate", h.Validate)
	s.router.POST("/reservations/:id/refuse", h.Refuse)
	s.router.POST("/reservations/:id/cancel", h.Cancel)
	s.router.POST("/reservations/:id/payment", h.InitiatePayment)
	s.router.GET("/reservations/:id/consultation", h.GetConsultation)
	s.router.PUT("/reservations/:id/consultation/video-link", h.SetVideoLink)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// Read side
// ================================================================================

func (s *ReservationHandlerTestSuite) TestList() {
	s.Run("success: passes cursor and limit, returns next cursor", func() {
		views := []*queries.ReservationView{builder.NewReservationBuilder().BuildView()}
		next := &queries.Cursor{After: "next-page"}
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.client, &queries.Cursor{After: "abc"}, 10).
			Return(views, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?cursor=abc&limit=10", nil, tokenFor(s.client))

		var body resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 1)
		s.Require().NotNil(body.NextCursor)
		s.Equal("next-page", *body.NextCursor)
	})

	s.Run("error: 400 on out-of-range limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?limit=500", nil, tokenFor(s.client))
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "validation")
	})

	s.Run("error: 401 without actor", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusUnauthorized, "unauthorized")
	})
}

func (s *ReservationHandlerTestSuite) TestGet() {
	b := builder.NewReservationBuilder().WithStatus(reservation.StatusPaid)
	view := b.BuildView()
	url := "/reservations/" + view.ID.String()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetReservation(gomock.Any(), s.client, view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, tokenFor(s.client))

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("paid", body.Status)
		s.Require().NotNil(body.PaymentRef)
		s.Equal(b.PaymentRef, *body.PaymentRef)
		s.Require().NotNil(body.ProfessionalID)
		s.Equal(view.ProfessionalID, *body.ProfessionalID)
		s.Equal(view.Date.String(), body.Date)
	})

	s.Run("error: 403 for strangers", func() {
		s.mockQueries.EXPECT().GetReservation(gomock.Any(), gomock.Any(), view.ID).Return(nil, queries.ErrReservationAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, tokenFor(s.client))
		httptest.AssertErrorCode(s.T(), rec, http.StatusForbidden, "forbidden")
	})
}

// ================================================================================
// Lifecycle
// ================================================================================

func (s *ReservationHandlerTestSuite) TestValidate() {
	b := builder.NewReservationBuilder().WithStatus(reservation.StatusValidated)
	result := &commands.ValidateResult{
		Reservation:  b.BuildReconstructed(),
		Consultation: b.BuildConsultation(consultation.StatusActive),
	}
	url := "/reservations/" + b.ID.String() + "/validate"

	s.Run("success: returns reservation and consultation", func() {
		s.mockCommands.EXPECT().Validate(gomock.Any(), s.pro, b.ID).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, tokenFor(s.pro))

		var body resdto.ValidateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("validated", body.Reservation.Status)
		s.Equal(b.ID, body.Consultation.ReservationID)
		s.Equal("active", body.Consultation.Status)
		s.Equal(45, body.Consultation.DurationMinutes)
	})

	s.Run("error: 409 on a refused reservation", func() {
		s.mockCommands.EXPECT().Validate(gomock.Any(), s.pro, b.ID).Return(nil, reservation.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, tokenFor(s.pro))
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "conflict")
	})

	s.Run("error: 403 for another professional", func() {
		s.mockCommands.EXPECT().Validate(gomock.Any(), gomock.Any(), b.ID).Return(nil, commands.ErrNotWindowOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, tokenFor(s.pro))
		httptest.AssertErrorCode(s.T(), rec, http.StatusForbidden, "forbidden")
	})
}

func (s *ReservationHandlerTestSuite) TestRefuseAndCancel() {
	s.Run("refuse", func() {
		r := builder.NewReservationBuilder().WithStatus(reservation.StatusRefused).BuildReconstructed()
		s.mockCommands.EXPECT().Refuse(gomock.Any(), s.pro, r.ID()).Return(r, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+r.ID().String()+"/refuse", nil, tokenFor(s.pro))

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("refused", body.Status)
	})

	s.Run("cancel", func() {
		r := builder.NewReservationBuilder().WithStatus(reservation.StatusCancelled).BuildReconstructed()
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.client, r.ID()).Return(r, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+r.ID().String()+"/cancel", nil, tokenFor(s.client))

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
	})

	s.Run("cancel: 500 hides internal errors", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.client, id).Return(nil, errors.New("pq: connection reset")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/cancel", nil, tokenFor(s.client))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "connection reset")
	})
}

// ================================================================================
// Payment and consultation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestInitiatePayment() {
	id := uuid.New()
	url := "/reservations/" + id.String() + "/payment"

	s.Run("success: 201 with checkout url", func() {
		session := &commands.CheckoutSession{SessionID: "cs_test_1", CheckoutURL: "https://checkout.stripe.com/c/pay/cs_test_1"}
		s.mockPayments.EXPECT().InitiatePayment(gomock.Any(), s.client, id).Return(session, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, tokenFor(s.client))

		var body resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(session.SessionID, body.SessionID)
		s.Equal(session.CheckoutURL, body.CheckoutURL)
	})

	s.Run("error: 409 when not validated", func() {
		s.mockPayments.EXPECT().InitiatePayment(gomock.Any(), s.client, id).Return(nil, commands.ErrNotPayable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, tokenFor(s.client))
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "conflict")
	})
}

func (s *ReservationHandlerTestSuite) TestConsultation() {
	b := builder.NewReservationBuilder().WithStatus(reservation.StatusValidated)
	base := "/reservations/" + b.ID.String() + "/consultation"

	s.Run("get", func() {
		view := b.BuildConsultationView()
		s.mockQueries.EXPECT().GetConsultation(gomock.Any(), s.client, b.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base, nil, tokenFor(s.client))

		var body resdto.ConsultationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("09:45", body.Time)
	})

	s.Run("get: 404 before validation", func() {
		s.mockQueries.EXPECT().GetConsultation(gomock.Any(), s.client, b.ID).Return(nil, queries.ErrConsultationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base, nil, tokenFor(s.client))
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "not_found")
	})

	s.Run("set video link", func() {
		link := "https://meet.example.com/r/1"
		c := b.BuildConsultation(consultation.StatusActive)
		s.Require().NoError(c.SetVideoLink(link, builder.DefaultNow))
		s.mockConsultations.EXPECT().SetVideoLink(gomock.Any(), s.pro, b.ID, link).Return(c, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, base+"/video-link", map[string]any{"video_link": link}, tokenFor(s.pro))

		var body resdto.ConsultationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(link, body.VideoLink)
	})

	s.Run("set video link: 400 when too long", func() {
		link := "https://meet.example.com/" + strings.Repeat("a", 2048)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, base+"/video-link", map[string]any{"video_link": link}, tokenFor(s.pro))
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "validation")
	})
}
