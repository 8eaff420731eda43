package service

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/ecoledger/internal/domain"
	"github.com/fsdevblog/ecoledger/internal/repository/repoargs"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type WithdrawalServiceTestSuite struct {
	suite.Suite
	m       *repoMocks
	now     time.Time
	service *WithdrawalService
}

func TestWithdrawalServiceSuite(t *testing.T) {
	suite.Run(t, new(WithdrawalServiceTestSuite))
}

func (s *WithdrawalServiceTestSuite) SetupTest() {
	s.m = newRepoMocks(s.T())
	s.now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	s.service = NewWithdrawalService(s.m.uow).SetClock(func() time.Time { return s.now })
}

func (s *WithdrawalServiceTestSuite) TearDownTest() {
	s.m.ctrl.Finish()
}

func (s *WithdrawalServiceTestSuite) TestPayOut() {
	card := gofakeit.CreditCardNumber(nil)
	s.m.accounts.EXPECT().GetOrCreate(gomock.Any(), int64(5)).Return(&domain.Account{ID: 50, Balance: 100}, nil)
	s.m.accounts.EXPECT().Debit(gomock.Any(), int64(50), int64(60)).Return(&domain.Account{ID: 50, Balance: 40}, nil)
	s.m.withdrawals.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.WithdrawalCreate) (*domain.WithdrawalRequest, error) {
			s.Equal(domain.WithdrawalKindPayOut, args.Kind)
			s.Equal(domain.WithdrawalStatePaid, args.State)
			s.Equal(card, args.Card)
			s.Equal(int64(1), *args.AdminUserID)
			return &domain.WithdrawalRequest{ID: 1, Kind: args.Kind, State: args.State, Amount: args.Amount}, nil
		})

	request, err := s.service.PayOut(context.Background(), PayOutArgs{
		AdminUserID: 1,
		UserID:      5,
		Amount:      60,
		Card:        card,
	})
	s.Require().NoError(err)
	s.Equal(domain.WithdrawalStatePaid, request.State)
}

func (s *WithdrawalServiceTestSuite) TestPayOut_InsufficientFunds() {
	s.m.accounts.EXPECT().GetOrCreate(gomock.Any(), int64(5)).Return(&domain.Account{ID: 50, Balance: 100}, nil)
	s.m.accounts.EXPECT().Debit(gomock.Any(), int64(50), int64(150)).Return(nil, domain.ErrInsufficientFunds)

	_, err := s.service.PayOut(context.Background(), PayOutArgs{AdminUserID: 1, UserID: 5, Amount: 150})
	s.Require().ErrorIs(err, domain.ErrInsufficientFunds)
}

func (s *WithdrawalServiceTestSuite) TestNonPositiveAmount() {
	_, err := s.service.PayOut(context.Background(), PayOutArgs{UserID: 5, Amount: 0})
	s.Require().ErrorIs(err, domain.ErrValidation)

	_, err = s.service.RequestPayMe(context.Background(), PayMeArgs{UserID: 5, Amount: -1, Card: "8600"})
	s.Require().ErrorIs(err, domain.ErrValidation)

	_, err = s.service.CreateApplication(context.Background(), CreateApplicationArgs{
		AgentUserID: 5,
		Amount:      0,
		PaymentType: domain.PaymentTypeCash,
	})
	s.Require().ErrorIs(err, domain.ErrValidation)
}

func (s *WithdrawalServiceTestSuite) TestRequestPayMe() {
	s.m.accounts.EXPECT().GetOrCreate(gomock.Any(), int64(5)).Return(&domain.Account{ID: 50}, nil)
	s.m.accounts.EXPECT().LockByID(gomock.Any(), int64(50)).Return(&domain.Account{ID: 50, Balance: 100}, nil)
	s.m.withdrawals.EXPECT().LastByAccount(gomock.Any(), int64(50), domain.WithdrawalKindPayMe).
		Return(&domain.WithdrawalRequest{ID: 1, CreatedAt: s.now.Add(-25 * time.Hour)}, nil)
	s.m.accounts.EXPECT().Debit(gomock.Any(), int64(50), int64(70)).Return(&domain.Account{ID: 50, Balance: 30}, nil)
	s.m.withdrawals.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.WithdrawalCreate) (*domain.WithdrawalRequest, error) {
			s.Equal(domain.WithdrawalStatePending, args.State)
			s.Equal(domain.WithdrawalKindPayMe, args.Kind)
			return &domain.WithdrawalRequest{ID: 2, State: args.State}, nil
		})

	result, err := s.service.RequestPayMe(context.Background(), PayMeArgs{UserID: 5, Amount: 70, Card: "8600123412341234"})
	s.Require().NoError(err)
	s.False(result.AlreadyProcessing)
	s.Equal(int64(2), result.Request.ID)
}

func (s *WithdrawalServiceTestSuite) TestRequestPayMe_Cooldown() {
	last := &domain.WithdrawalRequest{ID: 1, CreatedAt: s.now.Add(-2 * time.Hour)}
	s.m.accounts.EXPECT().GetOrCreate(gomock.Any(), int64(5)).Return(&domain.Account{ID: 50}, nil)
	s.m.accounts.EXPECT().LockByID(gomock.Any(), int64(50)).Return(&domain.Account{ID: 50, Balance: 100}, nil)
	s.m.withdrawals.EXPECT().LastByAccount(gomock.Any(), int64(50), domain.WithdrawalKindPayMe).Return(last, nil)

	// Debit и Create не ожидаются: баланс не меняется.
	result, err := s.service.RequestPayMe(context.Background(), PayMeArgs{UserID: 5, Amount: 70, Card: "8600123412341234"})
	s.Require().NoError(err)
	s.True(result.AlreadyProcessing)
	s.Equal(last, result.Request)
}

func (s *WithdrawalServiceTestSuite) TestRequestPayMe_FirstRequest() {
	s.m.accounts.EXPECT().GetOrCreate(gomock.Any(), int64(5)).Return(&domain.Account{ID: 50}, nil)
	s.m.accounts.EXPECT().LockByID(gomock.Any(), int64(50)).Return(&domain.Account{ID: 50, Balance: 100}, nil)
	s.m.withdrawals.EXPECT().LastByAccount(gomock.Any(), int64(50), domain.WithdrawalKindPayMe).
		Return(nil, domain.ErrRecordNotFound)
	s.m.accounts.EXPECT().Debit(gomock.Any(), int64(50), int64(150)).Return(nil, domain.ErrInsufficientFunds)

	_, err := s.service.RequestPayMe(context.Background(), PayMeArgs{UserID: 5, Amount: 150, Card: "8600123412341234"})
	s.Require().ErrorIs(err, domain.ErrInsufficientFunds)
}

func (s *WithdrawalServiceTestSuite) TestReject_Refunds() {
	s.m.withdrawals.EXPECT().LockByID(gomock.Any(), int64(2)).Return(&domain.WithdrawalRequest{
		ID:        2,
		AccountID: 50,
		Amount:    70,
		State:     domain.WithdrawalStatePending,
	}, nil)
	s.m.accounts.EXPECT().Credit(gomock.Any(), int64(50), int64(70)).Return(&domain.Account{ID: 50, Balance: 100}, nil)
	s.m.withdrawals.EXPECT().UpdateState(gomock.Any(), repoargs.WithdrawalStateUpdate{
		ID:          2,
		State:       domain.WithdrawalStateRejected,
		AdminUserID: ptr(int64(1)),
	}).Return(&domain.WithdrawalRequest{ID: 2, State: domain.WithdrawalStateRejected}, nil)

	request, err := s.service.Reject(context.Background(), 2, 1)
	s.Require().NoError(err)
	s.Equal(domain.WithdrawalStateRejected, request.State)
}

func (s *WithdrawalServiceTestSuite) TestMarkPaid() {
	s.m.withdrawals.EXPECT().LockByID(gomock.Any(), int64(2)).
		Return(&domain.WithdrawalRequest{ID: 2, State: domain.WithdrawalStatePending}, nil)
	s.m.withdrawals.EXPECT().UpdateState(gomock.Any(), gomock.Any()).
		Return(&domain.WithdrawalRequest{ID: 2, State: domain.WithdrawalStatePaid}, nil)

	request, err := s.service.MarkPaid(context.Background(), 2, 1)
	s.Require().NoError(err)
	s.Equal(domain.WithdrawalStatePaid, request.State)
}

func (s *WithdrawalServiceTestSuite) TestTerminalStateIsFinal() {
	s.m.withdrawals.EXPECT().LockByID(gomock.Any(), int64(3)).
		Return(&domain.WithdrawalRequest{ID: 3, State: domain.WithdrawalStatePaid}, nil).Times(2)

	_, err := s.service.MarkPaid(context.Background(), 3, 1)
	s.Require().ErrorIs(err, domain.ErrInvalidTransition)

	_, err = s.service.Reject(context.Background(), 3, 1)
	s.Require().ErrorIs(err, domain.ErrInvalidTransition)
}
