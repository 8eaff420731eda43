package redisrepo

import (
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"
)

type OTPLimiterTestSuite struct {
	suite.Suite
	mock    redismock.ClientMock
	limiter *OTPLimiter
	today   time.Time
}

func TestOTPLimiterSuite(t *testing.T) {
	suite.Run(t, new(OTPLimiterTestSuite))
}

func (s *OTPLimiterTestSuite) SetupTest() {
	db, mock := redismock.NewClientMock()
	s.mock = mock
	s.today = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	s.limiter = NewOTPLimiter(db, 3).SetClock(func() time.Time { return s.today })
}

func (s *OTPLimiterTestSuite) TearDownTest() {
	s.Require().NoError(s.mock.ExpectationsWereMet())
}

func (s *OTPLimiterTestSuite) expectAttempt(key string, count int64) {
	s.mock.ExpectTxPipeline()
	s.mock.ExpectIncr(key).SetVal(count)
	s.mock.ExpectExpire(key, otpLimitTTL).SetVal(true)
	s.mock.ExpectTxPipelineExec()
}

func (s *OTPLimiterTestSuite) TestAllow() {
	key := "otp_limit:998901234567:2025-03-14"

	cases := []struct {
		name  string
		count int64
		want  bool
	}{
		{name: "first attempt", count: 1, want: true},
		{name: "last allowed attempt", count: 3, want: true},
		{name: "over limit", count: 4, want: false},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.expectAttempt(key, tc.count)
			ok, err := s.limiter.Allow(s.T().Context(), "998901234567")
			s.Require().NoError(err)
			s.Equal(tc.want, ok)
		})
	}
}

// Каждый запрос получает свое значение счетчика после INCR, поэтому из пяти проходят ровно три.
func (s *OTPLimiterTestSuite) TestAllow_StopsAtLimit() {
	key := "otp_limit:998901234567:2025-03-14"
	for i := int64(1); i <= 5; i++ {
		s.expectAttempt(key, i)
	}

	var allowed int
	for range 5 {
		ok, err := s.limiter.Allow(s.T().Context(), "998901234567")
		s.Require().NoError(err)
		if ok {
			allowed++
		}
	}
	s.Equal(3, allowed)
}

func (s *OTPLimiterTestSuite) TestRecordAttempt() {
	key := "otp_limit:10.0.0.1:2025-03-14"

	s.expectAttempt(key, 4)

	count, err := s.limiter.RecordAttempt(s.T().Context(), "10.0.0.1")
	s.Require().NoError(err)
	s.Equal(int64(4), count)
}

func (s *OTPLimiterTestSuite) TestKeyRollsOverWithDate() {
	s.expectAttempt("otp_limit:998901234567:2025-03-15", 1)

	s.today = s.today.Add(24 * time.Hour)
	ok, err := s.limiter.Allow(s.T().Context(), "998901234567")
	s.Require().NoError(err)
	s.True(ok)
}
