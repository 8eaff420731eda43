package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fsdevblog/ecoledger/internal/domain"
	"github.com/fsdevblog/ecoledger/internal/repository/repoargs"
	"github.com/fsdevblog/ecoledger/internal/service/mocks"
	"github.com/fsdevblog/ecoledger/pkg/uow"
	uowmocks "github.com/fsdevblog/ecoledger/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type SettlementServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockUOW          *uowmocks.MockUOW
	mockTX           *uowmocks.MockTX
	mockUserRepo     *mocks.MockUserRepository
	mockAccountRepo  *mocks.MockAccountRepository
	mockCategoryRepo *mocks.MockCategoryRepository
	mockPointRepo    *mocks.MockCollectionPointRepository
	mockCodeRepo     *mocks.MockScanCodeRepository
	mockPostingRepo  *mocks.MockPostingRepository
	service          *SettlementService
}

func TestSettlementServiceSuite(t *testing.T) {
	suite.Run(t, new(SettlementServiceTestSuite))
}

func (s *SettlementServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockAccountRepo = mocks.NewMockAccountRepository(s.mockCtrl)
	s.mockCategoryRepo = mocks.NewMockCategoryRepository(s.mockCtrl)
	s.mockPointRepo = mocks.NewMockCollectionPointRepository(s.mockCtrl)
	s.mockCodeRepo = mocks.NewMockScanCodeRepository(s.mockCtrl)
	s.mockPostingRepo = mocks.NewMockPostingRepository(s.mockCtrl)

	// Мок получения репозитория из uow. Выполняется в инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.ScanCodeRepoName)).
		Return(s.mockCodeRepo, nil).AnyTimes()

	txRepos := map[repoargs.RepositoryName]any{
		repoargs.UserRepoName:            s.mockUserRepo,
		repoargs.AccountRepoName:         s.mockAccountRepo,
		repoargs.CategoryRepoName:        s.mockCategoryRepo,
		repoargs.CollectionPointRepoName: s.mockPointRepo,
		repoargs.ScanCodeRepoName:        s.mockCodeRepo,
		repoargs.PostingRepoName:         s.mockPostingRepo,
	}
	for name, repo := range txRepos {
		s.mockTX.EXPECT().Get(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
	}

	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()

	service, err := NewSettlementService(s.mockUOW)
	s.Require().NoError(err)
	s.service = service
}

func (s *SettlementServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func ptr[T any](v T) *T { return &v }

func (s *SettlementServiceTestSuite) point(operatorID *int64, percent int64, fandomat bool) *domain.CollectionPoint {
	return &domain.CollectionPoint{
		ID:                1,
		Name:              "Point #1",
		SimModule:         "SIM-1",
		OperatorUserID:    operatorID,
		CommissionPercent: percent,
		IsFandomat:        fandomat,
	}
}

func consumedCode(family domain.CodeFamily, code string, owner *int64) *domain.ScanCode {
	return &domain.ScanCode{
		ID:                100,
		Family:            family,
		Code:              code,
		CategoryID:        ptr(int64(3)),
		OwnerUserID:       owner,
		CollectionPointID: ptr(int64(1)),
		ConsumedAt:        ptr(time.Now()),
	}
}

func (s *SettlementServiceTestSuite) TestSettleEcopacket_SplitWithOperator() {
	var ownerID, operatorID int64 = 5, 7
	point := s.point(&operatorID, 30, false)
	category := &domain.Category{ID: 3, Name: "PET", PayoutAmount: 100}

	s.mockPointRepo.EXPECT().GetBySimModule(gomock.Any(), "SIM-1").Return(point, nil)
	s.mockCodeRepo.EXPECT().Consume(gomock.Any(), domain.CodeFamilyEcopacket, "ECO-1", point.ID).
		Return(consumedCode(domain.CodeFamilyEcopacket, "ECO-1", &ownerID), nil)
	s.mockCategoryRepo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(category, nil)

	// Счет оператора имеет меньший id, поэтому зачисляется первым.
	s.mockAccountRepo.EXPECT().GetOrCreate(gomock.Any(), ownerID).Return(&domain.Account{ID: 20, UserID: ownerID}, nil)
	s.mockAccountRepo.EXPECT().GetOrCreate(gomock.Any(), operatorID).
		Return(&domain.Account{ID: 10, UserID: operatorID}, nil)
	// доля оператора точки обновляется до зачислений на счета.
	gomock.InOrder(
		s.mockPointRepo.EXPECT().AddOperatorShare(gomock.Any(), point.ID, int64(30)).Return(nil),
		s.mockAccountRepo.EXPECT().Credit(gomock.Any(), int64(10), int64(30)).Return(&domain.Account{ID: 10}, nil),
		s.mockPostingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, args repoargs.PostingCreate) (*domain.Posting, error) {
				s.Equal(int64(10), args.AccountID)
				s.Equal(int64(30), args.Amount)
				s.Equal("PET", args.Label)
				return &domain.Posting{ID: 2, AccountID: args.AccountID, Amount: args.Amount}, nil
			}),
		s.mockAccountRepo.EXPECT().Credit(gomock.Any(), int64(20), int64(70)).Return(&domain.Account{ID: 20}, nil),
		s.mockPostingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, args repoargs.PostingCreate) (*domain.Posting, error) {
				s.Equal(int64(20), args.AccountID)
				s.Equal(int64(70), args.Amount)
				s.Equal(int64(100), *args.ScanCodeID)
				return &domain.Posting{ID: 3, AccountID: args.AccountID, Amount: args.Amount}, nil
			}),
	)

	result, err := s.service.SettleEcopacket(context.Background(), SettleArgs{Code: "ECO-1", SimModule: "SIM-1"})
	s.Require().NoError(err)
	s.Equal(int64(70), result.ClientAmount)
	s.Equal(int64(30), result.OperatorAmount)
	s.Equal("PET", result.CategoryLabel)
	s.Equal(int64(20), result.ClientPosting.AccountID)
	s.Equal(int64(10), result.OperatorPosting.AccountID)
}

func (s *SettlementServiceTestSuite) TestSettleEcopacket_FullAmountToDepositor() {
	var ownerID, operatorID int64 = 5, 7

	cases := []struct {
		name     string
		point    *domain.CollectionPoint
		category *domain.Category
	}{
		{
			name:     "category ignores operator split",
			point:    s.point(&operatorID, 30, false),
			category: &domain.Category{ID: 3, Name: "Glass", PayoutAmount: 250, IgnoreOperatorSplit: true},
		},
		{
			name:     "point without operator",
			point:    s.point(nil, 30, false),
			category: &domain.Category{ID: 3, Name: "Glass", PayoutAmount: 250},
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockPointRepo.EXPECT().GetBySimModule(gomock.Any(), "SIM-1").Return(tc.point, nil)
			s.mockCodeRepo.EXPECT().Consume(gomock.Any(), domain.CodeFamilyEcopacket, "ECO-2", tc.point.ID).
				Return(consumedCode(domain.CodeFamilyEcopacket, "ECO-2", &ownerID), nil)
			s.mockCategoryRepo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(tc.category, nil)
			s.mockAccountRepo.EXPECT().GetOrCreate(gomock.Any(), ownerID).Return(&domain.Account{ID: 20}, nil)
			s.mockAccountRepo.EXPECT().Credit(gomock.Any(), int64(20), int64(250)).Return(&domain.Account{ID: 20}, nil)
			s.mockPostingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Posting{ID: 1}, nil)

			result, err := s.service.SettleEcopacket(context.Background(), SettleArgs{Code: "ECO-2", SimModule: "SIM-1"})
			s.Require().NoError(err)
			s.Equal(int64(250), result.ClientAmount)
			s.Zero(result.OperatorAmount)
			s.Nil(result.OperatorPosting)
		})
	}
}

func (s *SettlementServiceTestSuite) TestSettleEcopacket_ConsumeFailures() {
	point := s.point(nil, 0, false)
	s.mockPointRepo.EXPECT().GetBySimModule(gomock.Any(), "SIM-1").Return(point, nil).Times(2)

	// Код уже погашен.
	s.mockCodeRepo.EXPECT().Consume(gomock.Any(), domain.CodeFamilyEcopacket, "USED", point.ID).
		Return(nil, domain.ErrRecordNotFound)
	s.mockCodeRepo.EXPECT().FindByCode(gomock.Any(), domain.CodeFamilyEcopacket, "USED").
		Return(consumedCode(domain.CodeFamilyEcopacket, "USED", ptr(int64(5))), nil)

	// Кода не существует.
	s.mockCodeRepo.EXPECT().Consume(gomock.Any(), domain.CodeFamilyEcopacket, "MISSING", point.ID).
		Return(nil, domain.ErrRecordNotFound)
	s.mockCodeRepo.EXPECT().FindByCode(gomock.Any(), domain.CodeFamilyEcopacket, "MISSING").
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.SettleEcopacket(context.Background(), SettleArgs{Code: "USED", SimModule: "SIM-1"})
	s.Require().ErrorIs(err, domain.ErrAlreadyUsed)

	_, err = s.service.SettleEcopacket(context.Background(), SettleArgs{Code: "MISSING", SimModule: "SIM-1"})
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *SettlementServiceTestSuite) TestSettleEcopacket_NotClaimed() {
	point := s.point(nil, 0, false)
	s.mockPointRepo.EXPECT().GetBySimModule(gomock.Any(), "SIM-1").Return(point, nil)
	s.mockCodeRepo.EXPECT().Consume(gomock.Any(), domain.CodeFamilyEcopacket, "FREE", point.ID).
		Return(consumedCode(domain.CodeFamilyEcopacket, "FREE", nil), nil)

	_, err := s.service.SettleEcopacket(context.Background(), SettleArgs{Code: "FREE", SimModule: "SIM-1"})
	s.Require().ErrorIs(err, domain.ErrCodeNotClaimed)
	s.Require().ErrorIs(err, domain.ErrValidation)
}

func (s *SettlementServiceTestSuite) TestSettleBarcode() {
	phone := "998901234567"

	s.Run("phone is required", func() {
		_, err := s.service.SettleBarcode(context.Background(), SettleArgs{Code: "4600000000001", SimModule: "SIM-1"})
		s.Require().ErrorIs(err, domain.ErrValidation)
	})

	s.Run("point is not a fandomat", func() {
		s.mockPointRepo.EXPECT().GetBySimModule(gomock.Any(), "SIM-1").Return(s.point(nil, 0, false), nil)
		_, err := s.service.SettleBarcode(context.Background(),
			SettleArgs{Code: "4600000000001", SimModule: "SIM-1", Phone: phone})
		s.Require().ErrorIs(err, domain.ErrRecordNotFound)
	})

	s.Run("depositor resolved by phone", func() {
		point := s.point(nil, 0, true)
		s.mockPointRepo.EXPECT().GetBySimModule(gomock.Any(), "SIM-1").Return(point, nil)
		s.mockCodeRepo.EXPECT().Consume(gomock.Any(), domain.CodeFamilyBarcode, "4600000000001", point.ID).
			Return(consumedCode(domain.CodeFamilyBarcode, "4600000000001", nil), nil)
		s.mockUserRepo.EXPECT().GetOrCreateByPhone(gomock.Any(), phone).Return(&domain.User{ID: 9}, nil)
		s.mockCategoryRepo.EXPECT().GetByID(gomock.Any(), int64(3)).
			Return(&domain.Category{ID: 3, Name: "Can", PayoutAmount: 40}, nil)
		s.mockAccountRepo.EXPECT().GetOrCreate(gomock.Any(), int64(9)).Return(&domain.Account{ID: 90}, nil)
		s.mockAccountRepo.EXPECT().Credit(gomock.Any(), int64(90), int64(40)).Return(&domain.Account{ID: 90}, nil)
		s.mockPostingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Posting{ID: 1}, nil)

		result, err := s.service.SettleBarcode(context.Background(),
			SettleArgs{Code: "4600000000001", SimModule: "SIM-1", Phone: phone})
		s.Require().NoError(err)
		s.Equal(domain.CodeFamilyBarcode, result.Family)
		s.Equal(int64(40), result.ClientAmount)
	})
}

func (s *SettlementServiceTestSuite) TestSettleAny_UnknownCode() {
	s.mockCodeRepo.EXPECT().FindAnyFamily(gomock.Any(), "NOPE").Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.SettleAny(context.Background(), SettleArgs{Code: "NOPE", SimModule: "SIM-1"})
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *SettlementServiceTestSuite) TestSettleAny_DispatchesBarcode() {
	s.mockCodeRepo.EXPECT().FindAnyFamily(gomock.Any(), "4600000000002").
		Return(&domain.ScanCode{Family: domain.CodeFamilyBarcode, Code: "4600000000002"}, nil)

	// Штрихкод без телефона отклоняется до обращения к базе.
	_, err := s.service.SettleAny(context.Background(), SettleArgs{Code: "4600000000002", SimModule: "SIM-1"})
	s.Require().ErrorIs(err, domain.ErrValidation)
}

func (s *SettlementServiceTestSuite) TestSettleBatch_Validation() {
	tooMany := make([]string, MaxBatchCodes+1)
	for i := range tooMany {
		tooMany[i] = fmt.Sprintf("C%d", i)
	}

	cases := []struct {
		name string
		args BatchSettleArgs
	}{
		{name: "empty", args: BatchSettleArgs{Family: domain.CodeFamilyEcopacket, SimModule: "SIM-1"}},
		{name: "too many", args: BatchSettleArgs{Family: domain.CodeFamilyEcopacket, Codes: tooMany}},
		{name: "unknown family", args: BatchSettleArgs{Family: "box", Codes: []string{"A"}}},
		{name: "barcode without phone", args: BatchSettleArgs{Family: domain.CodeFamilyBarcode, Codes: []string{"A"}}},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.service.SettleBatch(context.Background(), tc.args)
			s.Require().ErrorIs(err, domain.ErrValidation)
		})
	}
}

func (s *SettlementServiceTestSuite) TestSettleBatch_IsolatesFailures() {
	var ownerID int64 = 5
	point := s.point(nil, 0, false)
	category := &domain.Category{ID: 3, Name: "PET", PayoutAmount: 100}

	s.mockPointRepo.EXPECT().GetBySimModule(gomock.Any(), "SIM-1").Return(point, nil).Times(3)
	for _, code := range []string{"A", "C"} {
		s.mockCodeRepo.EXPECT().Consume(gomock.Any(), domain.CodeFamilyEcopacket, code, point.ID).
			Return(consumedCode(domain.CodeFamilyEcopacket, code, &ownerID), nil)
	}
	s.mockCodeRepo.EXPECT().Consume(gomock.Any(), domain.CodeFamilyEcopacket, "B", point.ID).
		Return(nil, domain.ErrRecordNotFound)
	s.mockCodeRepo.EXPECT().FindByCode(gomock.Any(), domain.CodeFamilyEcopacket, "B").
		Return(consumedCode(domain.CodeFamilyEcopacket, "B", &ownerID), nil)

	s.mockCategoryRepo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(category, nil).Times(2)
	s.mockAccountRepo.EXPECT().GetOrCreate(gomock.Any(), ownerID).Return(&domain.Account{ID: 20}, nil).Times(2)
	s.mockAccountRepo.EXPECT().Credit(gomock.Any(), int64(20), int64(100)).Return(&domain.Account{ID: 20}, nil).Times(2)
	s.mockPostingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Posting{ID: 1}, nil).Times(2)

	s.service.SetBatchWorkers(2)
	batch, err := s.service.SettleBatch(context.Background(), BatchSettleArgs{
		Family:    domain.CodeFamilyEcopacket,
		Codes:     []string{"A", "B", "C"},
		SimModule: "SIM-1",
	})
	s.Require().NoError(err)
	s.Equal(int64(200), batch.TotalAmount)
	s.Equal(2, batch.SuccessCount)
	s.Equal(1, batch.ErrorCount)

	s.Require().Len(batch.Results, 3)
	s.Equal("A", batch.Results[0].Code)
	s.Equal("B", batch.Results[1].Code)
	s.Equal("C", batch.Results[2].Code)
	s.NoError(batch.Results[0].Err)
	s.ErrorIs(batch.Results[1].Err, domain.ErrAlreadyUsed)
	s.Nil(batch.Results[1].Settlement)
	s.NoError(batch.Results[2].Err)
}

func TestSplitPayout(t *testing.T) {
	var operatorID int64 = 1
	for payout := int64(0); payout <= 1000; payout += 7 {
		for pct := int64(0); pct <= 100; pct++ {
			point := &domain.CollectionPoint{OperatorUserID: &operatorID, CommissionPercent: pct}
			client, operator := SplitPayout(&domain.Category{PayoutAmount: payout}, point)

			assert.Equal(t, payout, client+operator, "payout=%d pct=%d", payout, pct)
			assert.Equal(t, payout*pct/100, operator, "payout=%d pct=%d", payout, pct)
			assert.GreaterOrEqual(t, client, int64(0))
		}
	}

	client, operator := SplitPayout(&domain.Category{PayoutAmount: 99}, &domain.CollectionPoint{
		OperatorUserID:    &operatorID,
		CommissionPercent: 50,
	})
	assert.Equal(t, int64(50), client)
	assert.Equal(t, int64(49), operator)
}
