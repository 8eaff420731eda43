package pgrepo

import (
	"testing"
	"time"

	"github.com/fsdevblog/ecoledger/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/suite"
)

type AccountRepositoryTestSuite struct {
	suite.Suite
	mock pgxmock.PgxPoolIface
	repo *AccountRepository
}

func TestAccountRepositorySuite(t *testing.T) {
	suite.Run(t, new(AccountRepositoryTestSuite))
}

func (s *AccountRepositoryTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	s.Require().NoError(err)
	s.mock = mock
	s.repo = NewAccountRepository(mock)
}

func (s *AccountRepositoryTestSuite) TearDownTest() {
	s.Require().NoError(s.mock.ExpectationsWereMet())
	s.mock.Close()
}

func accountRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "created_at", "updated_at", "user_id", "balance"})
}

func (s *AccountRepositoryTestSuite) TestDebit() {
	now := time.Now()
	s.mock.ExpectQuery(`UPDATE accounts SET balance = balance - \$2`).
		WithArgs(int64(1), int64(40)).
		WillReturnRows(accountRows().AddRow(int64(1), now, now, int64(7), int64(60)))

	account, err := s.repo.Debit(s.T().Context(), 1, 40)
	s.Require().NoError(err)
	s.Equal(int64(60), account.Balance)
	s.Equal(int64(7), account.UserID)
}

func (s *AccountRepositoryTestSuite) TestDebitInsufficientFunds() {
	// условие balance >= $2 не выполнено - строка не обновлена.
	s.mock.ExpectQuery(`UPDATE accounts SET balance = balance - \$2`).
		WithArgs(int64(1), int64(150)).
		WillReturnRows(accountRows())

	account, err := s.repo.Debit(s.T().Context(), 1, 150)
	s.Require().ErrorIs(err, domain.ErrInsufficientFunds)
	s.Nil(account)
}

func (s *AccountRepositoryTestSuite) TestCredit() {
	now := time.Now()
	s.mock.ExpectQuery(`UPDATE accounts SET balance = balance \+ \$2`).
		WithArgs(int64(3), int64(70)).
		WillReturnRows(accountRows().AddRow(int64(3), now, now, int64(9), int64(170)))

	account, err := s.repo.Credit(s.T().Context(), 3, 70)
	s.Require().NoError(err)
	s.Equal(int64(170), account.Balance)
}

func (s *AccountRepositoryTestSuite) TestGetOrCreate() {
	now := time.Now()
	s.mock.ExpectExec(`INSERT INTO accounts`).
		WithArgs(int64(9)).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	s.mock.ExpectQuery(`SELECT (.+) FROM accounts WHERE user_id = \$1`).
		WithArgs(int64(9)).
		WillReturnRows(accountRows().AddRow(int64(3), now, now, int64(9), int64(0)))

	account, err := s.repo.GetOrCreate(s.T().Context(), 9)
	s.Require().NoError(err)
	s.Equal(int64(3), account.ID)
}

func (s *AccountRepositoryTestSuite) TestGetByUserIDNotFound() {
	s.mock.ExpectQuery(`SELECT (.+) FROM accounts WHERE user_id = \$1`).
		WithArgs(int64(404)).
		WillReturnRows(accountRows())

	_, err := s.repo.GetByUserID(s.T().Context(), 404)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}
