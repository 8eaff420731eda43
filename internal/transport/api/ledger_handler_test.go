package api

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/fsdevblog/ecoledger/internal/domain"
	"github.com/fsdevblog/ecoledger/internal/repository/repoargs"
	"github.com/fsdevblog/ecoledger/internal/service"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type LedgerHandlerTestSuite struct {
	handlerSuite
}

func TestLedgerHandlerSuite(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}

func (s *LedgerHandlerTestSuite) TestBalance() {
	var userID int64 = 5
	s.ledgerService.EXPECT().
		Balance(gomock.Any(), userID).
		Return(&domain.Account{ID: 11, UserID: userID, Balance: 1250}, nil).Times(1)

	status, _, body := s.do(http.MethodGet, BalanceRoute, nil, withBearer(s.token(userID, domain.RolePopulation)))
	s.Require().Equal(http.StatusOK, status)

	var res BalanceResponse
	s.decode(body, &res)
	s.Equal(BalanceResponse{AccountID: 11, Balance: 1250}, res)
}

func (s *LedgerHandlerTestSuite) TestPostings() {
	var userID int64 = 5
	token := s.token(userID, domain.RolePopulation)

	s.ledgerService.EXPECT().
		Postings(gomock.Any(), userID, uint(10)).
		Return([]domain.Posting{
			{ID: 2, Amount: 300, Label: "Стекло", CreatedAt: time.Now()},
			{ID: 1, Amount: 500, Label: "Пластик", IsPenalty: true, PenaltyAmount: 100, CreatedAt: time.Now()},
		}, nil).Times(1)
	s.ledgerService.EXPECT().
		Postings(gomock.Any(), userID, uint(0)).
		Return([]domain.Posting{}, nil).Times(1)

	s.Run("with limit", func() {
		status, _, body := s.do(http.MethodGet, PostingsRoute+"?limit=10", nil, withBearer(token))
		s.Require().Equal(http.StatusOK, status)

		var res []PostingResponse
		s.decode(body, &res)
		s.Require().Len(res, 2)
		s.Equal(int64(2), res[0].ID)
		s.True(res[1].IsPenalty)
		s.Equal(int64(100), res[1].PenaltyAmount)
	})

	s.Run("default limit", func() {
		status, _, body := s.do(http.MethodGet, PostingsRoute, nil, withBearer(token))
		s.Require().Equal(http.StatusOK, status)
		s.JSONEq("[]", string(body))
	})

	s.Run("invalid limit", func() {
		status, _, _ := s.do(http.MethodGet, PostingsRoute+"?limit=abc", nil, withBearer(token))
		s.Equal(http.StatusBadRequest, status)
	})
}

func (s *LedgerHandlerTestSuite) TestWithdrawals() {
	var userID int64 = 5
	s.ledgerService.EXPECT().
		Withdrawals(gomock.Any(), userID).
		Return([]domain.WithdrawalRequest{
			{ID: 4, Kind: domain.WithdrawalKindPayMe, Amount: 700, State: domain.WithdrawalStatePending},
		}, nil).Times(1)

	status, _, body := s.do(http.MethodGet, WithdrawalsRoute, nil, withBearer(s.token(userID, domain.RolePopulation)))
	s.Require().Equal(http.StatusOK, status)

	var res []WithdrawalResponse
	s.decode(body, &res)
	s.Require().Len(res, 1)
	s.Equal(int64(4), res[0].RequestID)
	s.Equal("pending", res[0].State)
}

func (s *LedgerHandlerTestSuite) TestReconcile() {
	s.ledgerService.EXPECT().
		Reconcile(gomock.Any(), int64(11)).
		Return(&service.ReconciliationReport{
			Reconciliation: repoargs.Reconciliation{
				AccountID:      11,
				Balance:        900,
				PostingsTotal:  1500,
				WithdrawnTotal: 500,
				PenaltiesTotal: 100,
			},
			Expected:   900,
			Consistent: true,
		}, nil).Times(1)
	s.ledgerService.EXPECT().
		Reconcile(gomock.Any(), int64(12)).
		Return(nil, fmt.Errorf("reconcile: %w", domain.ErrRecordNotFound)).Times(1)

	admin := s.token(1, domain.RoleAdmin)

	s.Run("consistent", func() {
		status, _, body := s.do(http.MethodGet, "/admin/accounts/11/reconcile", nil, withBearer(admin))
		s.Require().Equal(http.StatusOK, status)

		var res ReconcileResponse
		s.decode(body, &res)
		s.True(res.Consistent)
		s.Equal(int64(900), res.Expected)
	})

	s.Run("account not found", func() {
		status, _, _ := s.do(http.MethodGet, "/admin/accounts/12/reconcile", nil, withBearer(admin))
		s.Equal(http.StatusNotFound, status)
	})

	s.Run("not admin", func() {
		status, _, _ := s.do(http.MethodGet, "/admin/accounts/11/reconcile", nil,
			withBearer(s.token(2, domain.RolePopulation)))
		s.Equal(http.StatusForbidden, status)
	})
}
