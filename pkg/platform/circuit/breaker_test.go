package circuit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type BreakerSuite struct {
	suite.Suite
	now time.Time
}

func TestBreakerSuite(t *testing.T) {
	suite.Run(t, new(BreakerSuite))
}

func (s *BreakerSuite) SetupTest() {
	s.now = time.Date(2025, 1, 15, 18, 0, 0, 0, time.UTC)
}

func (s *BreakerSuite) breaker(opts ...Option) *Breaker {
	opts = append(opts, WithClock(func() time.Time { return s.now }))
	return New("twilio", opts...)
}

func (s *BreakerSuite) TestStartsClosed() {
	b := s.breaker()
	s.Equal("twilio", b.Name())
	s.Equal(StateClosed, b.State())
	s.True(b.Allow())
}

func (s *BreakerSuite) TestProviderOutageOpensAfterConsecutiveFailures() {
	b := s.breaker(WithFailureThreshold(3))

	for i := 0; i < 2; i++ {
		open, change := b.RecordFailure()
		s.False(open)
		s.False(change.Opened)
	}

	open, change := b.RecordFailure()
	s.True(open)
	s.True(change.Opened)
	s.False(b.Allow(), "open breaker rejects inside cooldown")
}

func (s *BreakerSuite) TestDeliveredMessageResetsFailureRun() {
	b := s.breaker(WithFailureThreshold(3))

	b.RecordFailure()
	b.RecordFailure()
	b.RecordSuccess()
	b.RecordFailure()
	b.RecordFailure()
	s.False(b.IsOpen())

	b.RecordFailure()
	s.True(b.IsOpen())
}

func (s *BreakerSuite) TestRecoveryNeedsConsecutiveProbeSuccesses() {
	b := s.breaker(WithFailureThreshold(1), WithSuccessThreshold(2))
	b.RecordFailure()

	usable, change := b.RecordSuccess()
	s.False(usable)
	s.False(change.Closed)

	// a failed probe restarts the recovery count without re-opening
	open, change := b.RecordFailure()
	s.True(open)
	s.False(change.Opened)

	b.RecordSuccess()
	s.True(b.IsOpen())
	usable, change = b.RecordSuccess()
	s.True(usable)
	s.True(change.Closed)
	s.Equal(StateClosed, b.State())
}

func (s *BreakerSuite) TestOneProbePerCooldownWindow() {
	b := s.breaker(WithFailureThreshold(1), WithCooldown(time.Minute))
	b.RecordFailure()

	s.now = s.now.Add(30 * time.Second)
	s.False(b.Allow())

	s.now = s.now.Add(31 * time.Second)
	s.True(b.Allow(), "probe after cooldown")
	s.False(b.Allow(), "next probe waits a full window")

	s.now = s.now.Add(time.Minute)
	s.True(b.Allow())
}

func (s *BreakerSuite) TestResetCloses() {
	b := s.breaker(WithFailureThreshold(1))
	b.RecordFailure()
	s.True(b.IsOpen())

	b.Reset()
	s.Equal(StateClosed, b.State())
	s.True(b.Allow())
}
