package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"hotline/internal/message"
	"hotline/internal/notify/handler/mocks"
	"hotline/internal/notify/models"
	"hotline/internal/notify/service"
	"hotline/internal/routing"
	dErrors "hotline/pkg/domain-errors"
	"hotline/pkg/testutil"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

type FollowUpHandlerSuite struct {
	suite.Suite
	service *mocks.MockService
	router  chi.Router
}

func TestFollowUpHandlerSuite(t *testing.T) {
	suite.Run(t, new(FollowUpHandlerSuite))
}

func (s *FollowUpHandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.service = mocks.NewMockService(ctrl)
	s.router = chi.NewRouter()
	New(s.service, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(s.router)
}

func (s *FollowUpHandlerSuite) post(body any) *http.Request {
	return testutil.NewJSONRequest(s.T(), http.MethodPost, "/v1/sms/follow-up", body)
}

func (s *FollowUpHandlerSuite) TestSends() {
	sentAt := time.Date(2025, 1, 15, 18, 0, 0, 0, time.UTC)
	s.service.EXPECT().SendFollowUp(gomock.Any(), service.FollowUpRequest{
		CallSID:  "CA123",
		To:       "+15095550188",
		Criteria: routing.Criteria{County: "Whitman", RabiesVector: true},
	}).Return(&models.FollowUp{
		CallSID:    "CA123",
		MessageSID: "SM1",
		Status:     "queued",
		Reference:  "CA123",
		Contact:    "WSU Veterinary Teaching Hospital",
		Stage:      routing.StageStrict,
		Segments:   message.Segments{Count: 2, Length: 190, Encoding: message.EncodingGSM7},
		SentAt:     sentAt,
	}, nil)

	rr := testutil.DoRequest(s.router, s.post(map[string]any{
		"call_sid":      " CA123 ",
		"to":            "+15095550188",
		"county":        "Whitman",
		"rabies_vector": true,
	}))
	testutil.AssertStatus(s.T(), rr, http.StatusCreated)

	got := testutil.UnmarshalResponse[FollowUpResponse](s.T(), rr)
	s.Equal("SM1", got.MessageSID)
	s.Equal(routing.StageStrict, got.Stage)
	s.Equal(2, got.Segments.Count)
	s.Equal(sentAt, got.SentAt)
}

func (s *FollowUpHandlerSuite) TestRejectsBeforeCallingTheService() {
	cases := []struct {
		name  string
		body  map[string]any
		field string
	}{
		{"missing call", map[string]any{"to": "+15095550188"}, "call_sid"},
		{"missing recipient", map[string]any{"call_sid": "CA1"}, "to"},
		{"bad urgency", map[string]any{"call_sid": "CA1", "to": "+15095550188", "urgency": "whenever"}, "urgency"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			rr := testutil.DoRequest(s.router, s.post(tc.body))
			testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "validation_error", tc.field)
		})
	}
}

func (s *FollowUpHandlerSuite) TestMapsServiceErrors() {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"already sent", dErrors.New(dErrors.CodeConflict, "follow-up already sent for this call"), http.StatusConflict, "conflict"},
		{"throttled", dErrors.New(dErrors.CodeRateLimited, "too many texts to this number"), http.StatusTooManyRequests, "rate_limited"},
		{"breaker open", dErrors.New(dErrors.CodeUnavailable, "sms provider temporarily unavailable"), http.StatusServiceUnavailable, "service_unavailable"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.service.EXPECT().SendFollowUp(gomock.Any(), gomock.Any()).Return(nil, tc.err)
			rr := testutil.DoRequest(s.router, s.post(map[string]any{"call_sid": "CA1", "to": "+15095550188"}))
			testutil.AssertStatusAndError(s.T(), rr, tc.status, tc.code)
		})
	}
}
