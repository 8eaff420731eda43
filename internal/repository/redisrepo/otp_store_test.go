package redisrepo

import (
	"testing"
	"time"

	"github.com/fsdevblog/ecoledger/internal/domain"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"
)

type OTPStoreTestSuite struct {
	suite.Suite
	mock  redismock.ClientMock
	store *OTPStore
}

func TestOTPStoreSuite(t *testing.T) {
	suite.Run(t, new(OTPStoreTestSuite))
}

func (s *OTPStoreTestSuite) SetupTest() {
	db, mock := redismock.NewClientMock()
	s.mock = mock
	s.store = NewOTPStore(db)
}

func (s *OTPStoreTestSuite) TearDownTest() {
	s.Require().NoError(s.mock.ExpectationsWereMet())
}

func (s *OTPStoreTestSuite) TestSaveGetDelete() {
	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("otp:998901234567", "hash", 5*time.Minute).SetVal("OK")
	s.mock.ExpectDel("otp_fail:998901234567").SetVal(0)
	s.mock.ExpectTxPipelineExec()
	s.mock.ExpectGet("otp:998901234567").SetVal("hash")
	s.mock.ExpectDel("otp:998901234567", "otp_fail:998901234567").SetVal(1)

	s.Require().NoError(s.store.Save(s.T().Context(), "998901234567", "hash", 5*time.Minute))

	hash, err := s.store.Get(s.T().Context(), "998901234567")
	s.Require().NoError(err)
	s.Equal("hash", hash)

	s.Require().NoError(s.store.Delete(s.T().Context(), "998901234567"))
}

func (s *OTPStoreTestSuite) TestGetExpired() {
	s.mock.ExpectGet("otp:998901234567").RedisNil()

	_, err := s.store.Get(s.T().Context(), "998901234567")
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *OTPStoreTestSuite) TestRecordFailure() {
	for i := int64(1); i <= 2; i++ {
		s.mock.ExpectTxPipeline()
		s.mock.ExpectIncr("otp_fail:998901234567").SetVal(i)
		s.mock.ExpectExpire("otp_fail:998901234567", 5*time.Minute).SetVal(true)
		s.mock.ExpectTxPipelineExec()
	}

	first, err := s.store.RecordFailure(s.T().Context(), "998901234567", 5*time.Minute)
	s.Require().NoError(err)
	s.Equal(int64(1), first)

	second, err := s.store.RecordFailure(s.T().Context(), "998901234567", 5*time.Minute)
	s.Require().NoError(err)
	s.Equal(int64(2), second)
}
