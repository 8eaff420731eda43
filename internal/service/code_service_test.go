package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/fsdevblog/ecoledger/internal/domain"
	"github.com/fsdevblog/ecoledger/internal/repository/repoargs"
	"github.com/fsdevblog/ecoledger/internal/service/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type CodeServiceTestSuite struct {
	suite.Suite
	m         *repoMocks
	generator *mocks.MockCodeGenerator
	service   *CodeService
}

func TestCodeServiceSuite(t *testing.T) {
	suite.Run(t, new(CodeServiceTestSuite))
}

func (s *CodeServiceTestSuite) SetupTest() {
	s.m = newRepoMocks(s.T())
	s.generator = mocks.NewMockCodeGenerator(s.m.ctrl)
	service, err := NewCodeService(s.m.uow, s.generator)
	s.Require().NoError(err)
	s.service = service
}

func (s *CodeServiceTestSuite) TearDownTest() {
	s.m.ctrl.Finish()
}

func (s *CodeServiceTestSuite) TestClaim() {
	var userID int64 = 5
	s.m.codes.EXPECT().Claim(gomock.Any(), domain.CodeFamilyEcopacket, "FREE", userID).
		Return(&domain.ScanCode{Code: "FREE", OwnerUserID: &userID}, nil)

	code, err := s.service.Claim(context.Background(), "FREE", userID)
	s.Require().NoError(err)
	s.Equal(userID, *code.OwnerUserID)
}

func (s *CodeServiceTestSuite) TestClaim_Conflicts() {
	var userID, otherID int64 = 5, 6

	cases := []struct {
		name     string
		existing *domain.ScanCode
		findErr  error
		wantErr  error
	}{
		{
			name:     "same owner is idempotent",
			existing: &domain.ScanCode{Code: "X", OwnerUserID: &userID},
		},
		{
			name:     "other owner",
			existing: &domain.ScanCode{Code: "X", OwnerUserID: &otherID},
			wantErr:  domain.ErrOwnerConflict,
		},
		{
			name:     "consumed",
			existing: consumedCode(domain.CodeFamilyEcopacket, "X", &userID),
			wantErr:  domain.ErrAlreadyUsed,
		},
		{
			name:    "unknown code",
			findErr: domain.ErrRecordNotFound,
			wantErr: domain.ErrRecordNotFound,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.m.codes.EXPECT().Claim(gomock.Any(), domain.CodeFamilyEcopacket, "X", userID).
				Return(nil, domain.ErrRecordNotFound)
			s.m.codes.EXPECT().FindByCode(gomock.Any(), domain.CodeFamilyEcopacket, "X").Return(tc.existing, tc.findErr)

			code, err := s.service.Claim(context.Background(), "X", userID)
			if tc.wantErr != nil {
				s.Require().ErrorIs(err, tc.wantErr)
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.existing, code)
		})
	}
}

func (s *CodeServiceTestSuite) TestCreateBatch() {
	var n int
	s.generator.EXPECT().Generate().DoAndReturn(func() string {
		n++
		return fmt.Sprintf("CODE-%d", n)
	}).Times(3)
	s.m.categories.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&domain.Category{ID: 3}, nil)
	s.m.codes.EXPECT().BulkCreate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rows []repoargs.ScanCodeCreate) (int64, error) {
			s.Len(rows, 3)
			for _, row := range rows {
				s.Equal(domain.CodeFamilyBarcode, row.Family)
				s.Equal(int64(3), row.CategoryID)
			}
			return int64(len(rows)), nil
		})

	codes, err := s.service.CreateBatch(context.Background(), CreateCodesArgs{
		Family:     domain.CodeFamilyBarcode,
		CategoryID: 3,
		Count:      3,
	})
	s.Require().NoError(err)
	s.Equal([]string{"CODE-1", "CODE-2", "CODE-3"}, codes)
}

func (s *CodeServiceTestSuite) TestCreateBatch_Validation() {
	for _, count := range []int{0, MaxCodesBatch + 1} {
		_, err := s.service.CreateBatch(context.Background(), CreateCodesArgs{
			Family:     domain.CodeFamilyEcopacket,
			CategoryID: 3,
			Count:      count,
		})
		s.Require().ErrorIs(err, domain.ErrValidation, "count=%d", count)
	}
}

func (s *CodeServiceTestSuite) TestCreateBatch_UnknownCategory() {
	s.generator.EXPECT().Generate().Return("CODE").Times(1)
	s.m.categories.EXPECT().GetByID(gomock.Any(), int64(404)).Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.CreateBatch(context.Background(), CreateCodesArgs{
		Family:     domain.CodeFamilyEcopacket,
		CategoryID: 404,
		Count:      1,
	})
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *CodeServiceTestSuite) TestCheck() {
	s.m.codes.EXPECT().FindAnyFamily(gomock.Any(), "ECO-1").
		Return(&domain.ScanCode{Family: domain.CodeFamilyEcopacket, Code: "ECO-1"}, nil)
	s.m.codes.EXPECT().FindAnyFamily(gomock.Any(), "NOPE").Return(nil, domain.ErrRecordNotFound)

	s.m.logs.EXPECT().Create(gomock.Any(), repoargs.ScanLogCreate{
		Code:      "ECO-1",
		IP:        "10.0.0.1",
		UserAgent: "curl",
		Result:    domain.CheckResultEcopacket,
		Exists:    true,
	}).Return(nil)
	s.m.logs.EXPECT().Create(gomock.Any(), repoargs.ScanLogCreate{
		Code:      "NOPE",
		IP:        "10.0.0.1",
		UserAgent: "curl",
		Result:    domain.CheckResultNotFound,
	}).Return(nil)

	check, err := s.service.Check(context.Background(), CheckArgs{Code: "ECO-1", IP: "10.0.0.1", UserAgent: "curl"})
	s.Require().NoError(err)
	s.True(check.Exists)
	s.False(check.Consumed)
	s.Equal(domain.CheckResultEcopacket, check.Result)

	check, err = s.service.Check(context.Background(), CheckArgs{Code: "NOPE", IP: "10.0.0.1", UserAgent: "curl"})
	s.Require().NoError(err)
	s.False(check.Exists)
	s.Equal(domain.CheckResultNotFound, check.Result)
}
