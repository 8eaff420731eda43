package service

import (
	"context"
	"testing"

	"github.com/fsdevblog/ecoledger/internal/domain"
	"github.com/fsdevblog/ecoledger/internal/repository/repoargs"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type ApplicationServiceTestSuite struct {
	suite.Suite
	m       *repoMocks
	service *WithdrawalService
}

func TestApplicationServiceSuite(t *testing.T) {
	suite.Run(t, new(ApplicationServiceTestSuite))
}

func (s *ApplicationServiceTestSuite) SetupTest() {
	s.m = newRepoMocks(s.T())
	s.service = NewWithdrawalService(s.m.uow)
}

func (s *ApplicationServiceTestSuite) TearDownTest() {
	s.m.ctrl.Finish()
}

func pendingApplication() *domain.Application {
	return &domain.Application{
		ID:                11,
		AgentUserID:       5,
		CollectionPointID: 1,
		Amount:            300,
		PaymentType:       domain.PaymentTypeCash,
		Status:            domain.ApplicationStatusPending,
	}
}

func (s *ApplicationServiceTestSuite) TestCreateApplication() {
	s.m.users.EXPECT().FindByID(gomock.Any(), int64(5)).Return(&domain.User{ID: 5, Role: domain.RoleAgent}, nil)
	s.m.points.EXPECT().GetBySimModule(gomock.Any(), "SIM-1").Return(&domain.CollectionPoint{ID: 1}, nil)
	s.m.applications.EXPECT().Create(gomock.Any(), repoargs.ApplicationCreate{
		AgentUserID:       5,
		CollectionPointID: 1,
		Amount:            300,
		PaymentType:       domain.PaymentTypeCard,
		ContainersCount:   4,
	}).Return(&domain.Application{ID: 11, Status: domain.ApplicationStatusPending}, nil)

	application, err := s.service.CreateApplication(context.Background(), CreateApplicationArgs{
		AgentUserID:     5,
		SimModule:       "SIM-1",
		Amount:          300,
		PaymentType:     domain.PaymentTypeCard,
		ContainersCount: 4,
	})
	s.Require().NoError(err)
	s.Equal(domain.ApplicationStatusPending, application.Status)
}

func (s *ApplicationServiceTestSuite) TestCreateApplication_NotAgent() {
	s.m.users.EXPECT().FindByID(gomock.Any(), int64(5)).Return(&domain.User{ID: 5, Role: domain.RolePopulation}, nil)

	_, err := s.service.CreateApplication(context.Background(), CreateApplicationArgs{
		AgentUserID: 5,
		SimModule:   "SIM-1",
		Amount:      300,
		PaymentType: domain.PaymentTypeCash,
	})
	s.Require().ErrorIs(err, domain.ErrValidation)
}

func (s *ApplicationServiceTestSuite) TestApproveApplication() {
	s.m.applications.EXPECT().LockByID(gomock.Any(), int64(11)).Return(pendingApplication(), nil)
	s.m.points.EXPECT().ReserveAdvanceCapacity(gomock.Any(), int64(1), int64(300)).Return(nil)
	s.m.accounts.EXPECT().GetOrCreate(gomock.Any(), int64(5)).Return(&domain.Account{ID: 50}, nil)
	s.m.accounts.EXPECT().Debit(gomock.Any(), int64(50), int64(300)).Return(&domain.Account{ID: 50}, nil)
	s.m.withdrawals.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.WithdrawalCreate) (*domain.WithdrawalRequest, error) {
			s.Equal(domain.WithdrawalKindApplication, args.Kind)
			s.Equal(domain.WithdrawalStateApproved, args.State)
			s.Equal(int64(11), *args.ApplicationID)
			return &domain.WithdrawalRequest{ID: 7, Kind: args.Kind, State: args.State}, nil
		})
	s.m.applications.EXPECT().UpdateStatus(gomock.Any(), repoargs.ApplicationStatusUpdate{
		ID:         11,
		Status:     domain.ApplicationStatusApproved,
		ReviewedBy: ptr(int64(1)),
	}).Return(&domain.Application{ID: 11, Status: domain.ApplicationStatusApproved}, nil)

	application, request, err := s.service.ApproveApplication(context.Background(), 11, 1)
	s.Require().NoError(err)
	s.Equal(domain.ApplicationStatusApproved, application.Status)
	s.Equal(domain.WithdrawalStateApproved, request.State)
}

func (s *ApplicationServiceTestSuite) TestApproveApplication_CapacityExceeded() {
	s.m.applications.EXPECT().LockByID(gomock.Any(), int64(11)).Return(pendingApplication(), nil)
	s.m.points.EXPECT().ReserveAdvanceCapacity(gomock.Any(), int64(1), int64(300)).
		Return(domain.NewValidationError("amount", "exceeds advance capacity"))

	_, _, err := s.service.ApproveApplication(context.Background(), 11, 1)
	s.Require().ErrorIs(err, domain.ErrValidation)
}

func (s *ApplicationServiceTestSuite) TestApproveApplication_InsufficientFunds() {
	s.m.applications.EXPECT().LockByID(gomock.Any(), int64(11)).Return(pendingApplication(), nil)
	s.m.points.EXPECT().ReserveAdvanceCapacity(gomock.Any(), int64(1), int64(300)).Return(nil)
	s.m.accounts.EXPECT().GetOrCreate(gomock.Any(), int64(5)).Return(&domain.Account{ID: 50}, nil)
	s.m.accounts.EXPECT().Debit(gomock.Any(), int64(50), int64(300)).Return(nil, domain.ErrInsufficientFunds)

	_, _, err := s.service.ApproveApplication(context.Background(), 11, 1)
	s.Require().ErrorIs(err, domain.ErrInsufficientFunds)
}

func (s *ApplicationServiceTestSuite) TestApproveApplication_NotPending() {
	application := pendingApplication()
	application.Status = domain.ApplicationStatusRejected
	s.m.applications.EXPECT().LockByID(gomock.Any(), int64(11)).Return(application, nil)

	_, _, err := s.service.ApproveApplication(context.Background(), 11, 1)
	s.Require().ErrorIs(err, domain.ErrInvalidTransition)
}

func (s *ApplicationServiceTestSuite) TestRejectApplication() {
	s.m.applications.EXPECT().LockByID(gomock.Any(), int64(11)).Return(pendingApplication(), nil)
	s.m.applications.EXPECT().UpdateStatus(gomock.Any(), repoargs.ApplicationStatusUpdate{
		ID:             11,
		Status:         domain.ApplicationStatusRejected,
		RejectedReason: "duplicate",
		ReviewedBy:     ptr(int64(1)),
	}).Return(&domain.Application{ID: 11, Status: domain.ApplicationStatusRejected}, nil)

	application, err := s.service.RejectApplication(context.Background(), 11, 1, "duplicate")
	s.Require().NoError(err)
	s.Equal(domain.ApplicationStatusRejected, application.Status)
}

func (s *ApplicationServiceTestSuite) TestAdvanceApplication() {
	approved := pendingApplication()
	approved.Status = domain.ApplicationStatusApproved

	s.m.applications.EXPECT().LockByID(gomock.Any(), int64(11)).Return(approved, nil).Times(2)
	s.m.applications.EXPECT().UpdateStatus(gomock.Any(), repoargs.ApplicationStatusUpdate{
		ID:     11,
		Status: domain.ApplicationStatusInWay,
	}).Return(&domain.Application{ID: 11, Status: domain.ApplicationStatusInWay}, nil)

	application, err := s.service.AdvanceApplication(context.Background(), 11, domain.ApplicationStatusInWay)
	s.Require().NoError(err)
	s.Equal(domain.ApplicationStatusInWay, application.Status)

	_, err = s.service.AdvanceApplication(context.Background(), 11, domain.ApplicationStatusDelivered)
	s.Require().ErrorIs(err, domain.ErrInvalidTransition)
}
