package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	dirModels "hotline/internal/directory/models"
	"hotline/internal/message"
	"hotline/internal/notify/metrics"
	"hotline/internal/notify/models"
	"hotline/internal/notify/service/mocks"
	"hotline/internal/routing"
	sessionModels "hotline/internal/session/models"
	dErrors "hotline/pkg/domain-errors"
	"hotline/pkg/platform/circuit"
	"hotline/pkg/platform/sentinel"
	"hotline/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Sender,SessionStore,DirectorySource

const (
	callSID = "CA1234567890abcdef"
	caller  = "+15095550188"
	hotline = "+15095550100"
)

type staticDirectory struct{ dir *dirModels.Directory }

func (s staticDirectory) Current() *dirModels.Directory { return s.dir }

func whitmanDirectory() *dirModels.Directory {
	wsu := &dirModels.Contact{
		Name:                       "WSU Veterinary Teaching Hospital",
		Phone:                      "509-335-0711",
		Hours:                      "24/7",
		Schedule:                   dirModels.ParseSchedule("24/7"),
		Coverage:                   []string{"Whitman County"},
		Services:                   []dirModels.ServiceKind{dirModels.ServiceEmergencyWildlifeMedical},
		AnimalTypes:                []dirModels.AnimalType{dirModels.AnimalRaptors},
		HandlesRabiesVectorSpecies: true,
		Address:                    "205 Ott Rd, Pullman, WA 99164",
	}
	return dirModels.NewDirectory([]*dirModels.Contact{wsu}, "test", time.Time{})
}

type FollowUpSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	sender   *mocks.MockSender
	sessions *mocks.MockSessionStore
	breaker  *circuit.Breaker
	service  *Service
	ctx      context.Context
	now      time.Time
}

func TestFollowUpSuite(t *testing.T) {
	suite.Run(t, new(FollowUpSuite))
}

func (s *FollowUpSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.sender = mocks.NewMockSender(s.ctrl)
	s.sessions = mocks.NewMockSessionStore(s.ctrl)
	s.now = time.Date(2025, 1, 15, 18, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
	s.breaker = circuit.New("sms",
		circuit.WithFailureThreshold(1),
		circuit.WithCooldown(time.Minute),
		circuit.WithClock(func() time.Time { return s.now }),
	)
	s.service = New(s.sender, s.sessions, staticDirectory{whitmanDirectory()},
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithMetrics(metrics.NewWith(prometheus.NewRegistry())),
		WithBreaker(s.breaker),
		WithLimiter(NewRecipientLimiter(1)),
		WithFromNumber(hotline),
	)
}

func (s *FollowUpSuite) request() FollowUpRequest {
	return FollowUpRequest{
		CallSID:  callSID,
		To:       "(509) 555-0188",
		Criteria: routing.Criteria{County: "Whitman"},
	}
}

func (s *FollowUpSuite) TestSendsOnceAndRecordsTheSession() {
	var sent models.Message
	s.sessions.EXPECT().Get(gomock.Any(), callSID).Return(nil, sentinel.ErrNotFound)
	s.sessions.EXPECT().ClaimSMS(gomock.Any(), callSID).Return(nil)
	s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg models.Message) (*models.Receipt, error) {
			sent = msg
			return &models.Receipt{SID: "SM1", Status: "queued"}, nil
		})
	s.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, session *sessionModels.Session) error {
			s.True(session.SMSSent)
			s.Equal(s.now, *session.SMSSentAt)
			s.Equal([]string{"WSU Veterinary Teaching Hospital"}, session.OfferedContacts)
			return nil
		})

	got, err := s.service.SendFollowUp(s.ctx, s.request())
	s.Require().NoError(err)

	s.Equal(caller, sent.To)
	s.Equal(hotline, sent.From)
	s.Contains(sent.Body, "WSU Veterinary Teaching Hospital (24/7)")
	s.Contains(sent.Body, "509-335-0711")
	s.Contains(sent.Body, "Pullman - Call first")
	s.Contains(sent.Body, "Ref: #BCDEF")
	s.LessOrEqual(len([]rune(sent.Body)), message.MaxSMSLength)

	s.Equal("SM1", got.MessageSID)
	s.Equal("BCDEF", got.Reference)
	s.Equal(routing.StageStrict, got.Stage)
	s.Equal("WSU Veterinary Teaching Hospital", got.Contact)
	s.Equal(message.EncodingGSM7, got.Segments.Encoding)
}

func (s *FollowUpSuite) TestFillsCriteriaFromTheSession() {
	session := sessionModels.New(callSID, s.now)
	session.County = "Whitman"
	session.RabiesVector = true

	var sent models.Message
	s.sessions.EXPECT().Get(gomock.Any(), callSID).Return(session, nil)
	s.sessions.EXPECT().ClaimSMS(gomock.Any(), callSID).Return(nil)
	s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg models.Message) (*models.Receipt, error) {
			sent = msg
			return &models.Receipt{SID: "SM2", Status: "queued"}, nil
		})
	s.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	req := s.request()
	req.Criteria = routing.Criteria{}
	_, err := s.service.SendFollowUp(s.ctx, req)
	s.Require().NoError(err)
	s.Contains(sent.Body, "SAFETY: Do NOT touch animal!")
	s.Contains(sent.Body, "800-231-4476")
}

func (s *FollowUpSuite) TestAlreadySentForTheCall() {
	session := sessionModels.New(callSID, s.now)
	session.MarkSMSSent(s.now)
	s.sessions.EXPECT().Get(gomock.Any(), callSID).Return(session, nil)

	_, err := s.service.SendFollowUp(s.ctx, s.request())
	s.True(dErrors.Is(err, dErrors.CodeConflict))
}

func (s *FollowUpSuite) TestLosesTheClaimRace() {
	s.sessions.EXPECT().Get(gomock.Any(), callSID).Return(nil, sentinel.ErrNotFound)
	s.sessions.EXPECT().ClaimSMS(gomock.Any(), callSID).Return(sentinel.ErrAlreadyUsed)

	_, err := s.service.SendFollowUp(s.ctx, s.request())
	s.True(dErrors.Is(err, dErrors.CodeConflict))
}

func (s *FollowUpSuite) TestProviderOutageReleasesTheClaimAndOpensTheBreaker() {
	s.sessions.EXPECT().Get(gomock.Any(), callSID).Return(nil, sentinel.ErrNotFound).Times(2)
	s.sessions.EXPECT().ClaimSMS(gomock.Any(), callSID).Return(nil).Times(2)
	s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("twilio: %w", sentinel.ErrUnavailable))
	s.sessions.EXPECT().ReleaseSMS(gomock.Any(), callSID).Return(nil).Times(2)

	_, err := s.service.SendFollowUp(s.ctx, s.request())
	s.True(dErrors.Is(err, dErrors.CodeUnavailable))
	s.True(s.breaker.IsOpen())

	retry := s.request()
	retry.To = "(509) 555-0199"
	_, err = s.service.SendFollowUp(s.ctx, retry)
	s.True(dErrors.Is(err, dErrors.CodeUnavailable))
}

func (s *FollowUpSuite) TestRejectedRequestsLeaveTheRecoveryAttempt() {
	s.breaker = circuit.New("sms",
		circuit.WithFailureThreshold(1),
		circuit.WithCooldown(30*time.Second),
		circuit.WithClock(func() time.Time { return s.now }),
	)
	s.service = New(s.sender, s.sessions, staticDirectory{whitmanDirectory()},
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithBreaker(s.breaker),
		WithLimiter(NewRecipientLimiter(1)),
		WithFromNumber(hotline),
	)
	s.sessions.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, sentinel.ErrNotFound).AnyTimes()

	// outage opens the breaker and spends the first caller's token
	s.sessions.EXPECT().ClaimSMS(gomock.Any(), callSID).Return(nil)
	s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("twilio: %w", sentinel.ErrUnavailable))
	s.sessions.EXPECT().ReleaseSMS(gomock.Any(), callSID).Return(nil)
	_, err := s.service.SendFollowUp(s.ctx, s.request())
	s.True(dErrors.Is(err, dErrors.CodeUnavailable))
	s.Require().True(s.breaker.IsOpen())

	s.now = s.now.Add(31 * time.Second)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)

	throttled := s.request()
	throttled.CallSID = "CA-throttled"
	_, err = s.service.SendFollowUp(s.ctx, throttled)
	s.True(dErrors.Is(err, dErrors.CodeRateLimited))

	duplicate := s.request()
	duplicate.CallSID = "CA-duplicate"
	duplicate.To = "(509) 555-0177"
	s.sessions.EXPECT().ClaimSMS(gomock.Any(), "CA-duplicate").Return(sentinel.ErrAlreadyUsed)
	_, err = s.service.SendFollowUp(s.ctx, duplicate)
	s.True(dErrors.Is(err, dErrors.CodeConflict))

	recovered := s.request()
	recovered.CallSID = "CA-recovered"
	recovered.To = "(509) 555-0199"
	s.sessions.EXPECT().ClaimSMS(gomock.Any(), "CA-recovered").Return(nil)
	s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(&models.Receipt{SID: "SM5"}, nil)
	s.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	got, err := s.service.SendFollowUp(s.ctx, recovered)
	s.Require().NoError(err)
	s.Equal("SM5", got.MessageSID)
}

func (s *FollowUpSuite) TestProviderRejectionDoesNotTripTheBreaker() {
	s.sessions.EXPECT().Get(gomock.Any(), callSID).Return(nil, sentinel.ErrNotFound)
	s.sessions.EXPECT().ClaimSMS(gomock.Any(), callSID).Return(nil)
	s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil, errors.New("21610: unsubscribed recipient"))
	s.sessions.EXPECT().ReleaseSMS(gomock.Any(), callSID).Return(nil)

	_, err := s.service.SendFollowUp(s.ctx, s.request())
	s.True(dErrors.Is(err, dErrors.CodeInvalidInput))
	s.False(s.breaker.IsOpen())
}

func (s *FollowUpSuite) TestThrottlesRepeatTextsToOneNumber() {
	s.sessions.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, sentinel.ErrNotFound).Times(2)
	s.sessions.EXPECT().ClaimSMS(gomock.Any(), callSID).Return(nil)
	s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(&models.Receipt{SID: "SM3"}, nil)
	s.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.service.SendFollowUp(s.ctx, s.request())
	s.Require().NoError(err)

	second := s.request()
	second.CallSID = "CA999"
	_, err = s.service.SendFollowUp(s.ctx, second)
	s.True(dErrors.Is(err, dErrors.CodeRateLimited))
}

func (s *FollowUpSuite) TestNoMatchSendsTheStatewidePointer() {
	var sent models.Message
	s.sessions.EXPECT().Get(gomock.Any(), callSID).Return(nil, sentinel.ErrNotFound)
	s.sessions.EXPECT().ClaimSMS(gomock.Any(), callSID).Return(nil)
	s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg models.Message) (*models.Receipt, error) {
			sent = msg
			return &models.Receipt{SID: "SM4"}, nil
		})
	s.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	req := s.request()
	req.Criteria.County = "Island"
	got, err := s.service.SendFollowUp(s.ctx, req)
	s.Require().NoError(err)
	s.Equal(routing.StageNone, got.Stage)
	s.Empty(got.Contact)
	s.Contains(sent.Body, message.StatewideDirectoryURL)
}

func (s *FollowUpSuite) TestValidation() {
	cases := []struct {
		name  string
		edit  func(*FollowUpRequest)
		field string
	}{
		{"missing call", func(r *FollowUpRequest) { r.CallSID = "" }, "call_sid"},
		{"short number", func(r *FollowUpRequest) { r.To = "555-0188" }, "to"},
		{"bad area code", func(r *FollowUpRequest) { r.To = "+11095550188" }, "to"},
		{"bad from", func(r *FollowUpRequest) { r.From = "12" }, "from"},
		{"bad urgency", func(r *FollowUpRequest) { r.Criteria.Urgency = "soon" }, "urgency"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			req := s.request()
			tc.edit(&req)
			_, err := s.service.SendFollowUp(s.ctx, req)
			s.Require().Error(err)
			s.True(dErrors.Is(err, dErrors.CodeValidation))
			var de *dErrors.Error
			s.Require().ErrorAs(err, &de)
			s.Equal(tc.field, de.Field)
		})
	}
}
