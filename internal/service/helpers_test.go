package service

import (
	"context"
	"testing"

	"github.com/fsdevblog/ecoledger/internal/repository/repoargs"
	"github.com/fsdevblog/ecoledger/internal/service/mocks"
	"github.com/fsdevblog/ecoledger/pkg/uow"
	uowmocks "github.com/fsdevblog/ecoledger/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
)

// repoMocks набор моков репозиториев, доступных и из uow, и из транзакции.
type repoMocks struct {
	ctrl         *gomock.Controller
	uow          *uowmocks.MockUOW
	tx           *uowmocks.MockTX
	users        *mocks.MockUserRepository
	accounts     *mocks.MockAccountRepository
	categories   *mocks.MockCategoryRepository
	points       *mocks.MockCollectionPointRepository
	codes        *mocks.MockScanCodeRepository
	logs         *mocks.MockScanLogRepository
	postings     *mocks.MockPostingRepository
	withdrawals  *mocks.MockWithdrawalRepository
	applications *mocks.MockApplicationRepository
}

func newRepoMocks(t *testing.T) *repoMocks {
	ctrl := gomock.NewController(t)
	m := &repoMocks{
		ctrl:         ctrl,
		uow:          uowmocks.NewMockUOW(ctrl),
		tx:           uowmocks.NewMockTX(ctrl),
		users:        mocks.NewMockUserRepository(ctrl),
		accounts:     mocks.NewMockAccountRepository(ctrl),
		categories:   mocks.NewMockCategoryRepository(ctrl),
		points:       mocks.NewMockCollectionPointRepository(ctrl),
		codes:        mocks.NewMockScanCodeRepository(ctrl),
		logs:         mocks.NewMockScanLogRepository(ctrl),
		postings:     mocks.NewMockPostingRepository(ctrl),
		withdrawals:  mocks.NewMockWithdrawalRepository(ctrl),
		applications: mocks.NewMockApplicationRepository(ctrl),
	}

	repos := map[repoargs.RepositoryName]any{
		repoargs.UserRepoName:            m.users,
		repoargs.AccountRepoName:         m.accounts,
		repoargs.CategoryRepoName:        m.categories,
		repoargs.CollectionPointRepoName: m.points,
		repoargs.ScanCodeRepoName:        m.codes,
		repoargs.ScanLogRepoName:         m.logs,
		repoargs.PostingRepoName:         m.postings,
		repoargs.WithdrawalRepoName:      m.withdrawals,
		repoargs.ApplicationRepoName:     m.applications,
	}
	for name, repo := range repos {
		m.uow.EXPECT().GetRepository(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
		m.tx.EXPECT().Get(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
	}

	m.uow.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()

	return m
}
