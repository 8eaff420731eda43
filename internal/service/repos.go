package service

import (
	"github.com/fsdevblog/ecoledger/internal/repository/repoargs"
	"github.com/fsdevblog/ecoledger/pkg/uow"
)

// settlementRepos репозитории, привязанные к одной транзакции.
type settlementRepos struct {
	users      UserRepository
	accounts   AccountRepository
	categories CategoryRepository
	points     CollectionPointRepository
	codes      ScanCodeRepository
	postings   PostingRepository
}

func settlementReposFromTX(tx uow.TX) (*settlementRepos, error) {
	users, err := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	accounts, err := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	categories, err := uow.GetAs[CategoryRepository](tx, uow.RepositoryName(repoargs.CategoryRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	points, err := uow.GetAs[CollectionPointRepository](tx, uow.RepositoryName(repoargs.CollectionPointRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	codes, err := uow.GetAs[ScanCodeRepository](tx, uow.RepositoryName(repoargs.ScanCodeRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	postings, err := uow.GetAs[PostingRepository](tx, uow.RepositoryName(repoargs.PostingRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &settlementRepos{
		users:      users,
		accounts:   accounts,
		categories: categories,
		points:     points,
		codes:      codes,
		postings:   postings,
	}, nil
}
