package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/ecoledger/internal/domain"
	"github.com/fsdevblog/ecoledger/internal/repository/repoargs"
	"github.com/fsdevblog/ecoledger/internal/service"
)

type AuthServicer interface {
	RequestOTP(ctx context.Context, phone, ip string) error
	VerifyOTP(ctx context.Context, phone, otp string) (*domain.User, string, error)
}

type SettlementServicer interface {
	SettleEcopacket(ctx context.Context, args service.SettleArgs) (*service.Settlement, error)
	SettleBarcode(ctx context.Context, args service.SettleArgs) (*service.Settlement, error)
	SettleAny(ctx context.Context, args service.SettleArgs) (*service.Settlement, error)
	SettleBatch(ctx context.Context, args service.BatchSettleArgs) (*service.BatchSettlement, error)
}

type LedgerServicer interface {
	Balance(ctx context.Context, userID int64) (*domain.Account, error)
	Postings(ctx context.Context, userID int64, limit uint) ([]domain.Posting, error)
	Withdrawals(ctx context.Context, userID int64) ([]domain.WithdrawalRequest, error)
	Reconcile(ctx context.Context, accountID int64) (*service.ReconciliationReport, error)
}

type WithdrawalServicer interface {
	PayOut(ctx context.Context, args service.PayOutArgs) (*domain.WithdrawalRequest, error)
	RequestPayMe(ctx context.Context, args service.PayMeArgs) (*service.PayMeResult, error)
	MarkPaid(ctx context.Context, requestID, adminUserID int64) (*domain.WithdrawalRequest, error)
	Reject(ctx context.Context, requestID, adminUserID int64) (*domain.WithdrawalRequest, error)
	CreateApplication(ctx context.Context, args service.CreateApplicationArgs) (*domain.Application, error)
	ApproveApplication(ctx context.Context, applicationID, adminUserID int64) (*domain.Application, *domain.WithdrawalRequest, error)
	RejectApplication(ctx context.Context, applicationID, adminUserID int64, reason string) (*domain.Application, error)
	AdvanceApplication(ctx context.Context, applicationID int64, next domain.ApplicationStatus) (*domain.Application, error)
}

type PenaltyServicer interface {
	Apply(ctx context.Context, args service.PenaltyArgs) (*domain.Posting, error)
}

type CodeServicer interface {
	Claim(ctx context.Context, code string, userID int64) (*domain.ScanCode, error)
	CreateBatch(ctx context.Context, args service.CreateCodesArgs) ([]string, error)
	Check(ctx context.Context, args service.CheckArgs) (*service.CodeCheck, error)
}

type CatalogServicer interface {
	CreateCategory(ctx context.Context, args repoargs.CategoryCreate) (*domain.Category, error)
	CreateCollectionPoint(ctx context.Context, args repoargs.CollectionPointCreate) (*domain.CollectionPoint, error)
}
