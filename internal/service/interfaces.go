package service

import (
	"context"
	"time"

	"github.com/fsdevblog/ecoledger/internal/domain"
	"github.com/fsdevblog/ecoledger/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UserRepository interface {
	GetOrCreateByPhone(ctx context.Context, phone string) (*domain.User, error)
	FindByPhone(ctx context.Context, phone string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Activate(ctx context.Context, id int64) (*domain.User, error)
}

type AccountRepository interface {
	GetOrCreate(ctx context.Context, userID int64) (*domain.Account, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Account, error)
	LockByID(ctx context.Context, id int64) (*domain.Account, error)
	Credit(ctx context.Context, id int64, amount int64) (*domain.Account, error)
	Debit(ctx context.Context, id int64, amount int64) (*domain.Account, error)
	Reconciliation(ctx context.Context, id int64) (*repoargs.Reconciliation, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, args repoargs.CategoryCreate) (*domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
}

type CollectionPointRepository interface {
	Create(ctx context.Context, args repoargs.CollectionPointCreate) (*domain.CollectionPoint, error)
	GetBySimModule(ctx context.Context, simModule string) (*domain.CollectionPoint, error)
	GetByID(ctx context.Context, id int64) (*domain.CollectionPoint, error)
	AddOperatorShare(ctx context.Context, id int64, amount int64) error
	ReserveAdvanceCapacity(ctx context.Context, id int64, amount int64) error
}

type ScanCodeRepository interface {
	Consume(ctx context.Context, family domain.CodeFamily, code string, collectionPointID int64) (*domain.ScanCode, error)
	Claim(ctx context.Context, family domain.CodeFamily, code string, userID int64) (*domain.ScanCode, error)
	FindByCode(ctx context.Context, family domain.CodeFamily, code string) (*domain.ScanCode, error)
	FindAnyFamily(ctx context.Context, code string) (*domain.ScanCode, error)
	BulkCreate(ctx context.Context, codes []repoargs.ScanCodeCreate) (int64, error)
}

type ScanLogRepository interface {
	Create(ctx context.Context, args repoargs.ScanLogCreate) error
}

type PostingRepository interface {
	Create(ctx context.Context, args repoargs.PostingCreate) (*domain.Posting, error)
	LockByID(ctx context.Context, id int64) (*domain.Posting, error)
	MarkPenalty(ctx context.Context, args repoargs.PenaltyApply) (*domain.Posting, error)
	GetByAccountID(ctx context.Context, accountID int64, limit uint) ([]domain.Posting, error)
}

type WithdrawalRepository interface {
	Create(ctx context.Context, args repoargs.WithdrawalCreate) (*domain.WithdrawalRequest, error)
	LastByAccount(ctx context.Context, accountID int64, kind domain.WithdrawalKind) (*domain.WithdrawalRequest, error)
	LockByID(ctx context.Context, id int64) (*domain.WithdrawalRequest, error)
	UpdateState(ctx context.Context, args repoargs.WithdrawalStateUpdate) (*domain.WithdrawalRequest, error)
	GetByAccountID(ctx context.Context, accountID int64) ([]domain.WithdrawalRequest, error)
}

type ApplicationRepository interface {
	Create(ctx context.Context, args repoargs.ApplicationCreate) (*domain.Application, error)
	LockByID(ctx context.Context, id int64) (*domain.Application, error)
	UpdateStatus(ctx context.Context, args repoargs.ApplicationStatusUpdate) (*domain.Application, error)
}

// OTPLimiter счетчик попыток запроса OTP на идентификатор в сутки.
type OTPLimiter interface {
	// Allow учитывает попытку и сообщает, укладывается ли она в суточный лимит.
	Allow(ctx context.Context, identity string) (bool, error)
}

type OTPStore interface {
	Save(ctx context.Context, phone, hash string, ttl time.Duration) error
	Get(ctx context.Context, phone string) (string, error)
	Delete(ctx context.Context, phone string) error
	// RecordFailure увеличивает счетчик неверных вводов кода и возвращает его значение.
	RecordFailure(ctx context.Context, phone string, ttl time.Duration) (int64, error)
}

// SMSSender доставка сообщений через внешний SMS шлюз.
type SMSSender interface {
	Send(ctx context.Context, phone, message string) error
}

type Hasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

// CodeGenerator генератор уникальных строк для массового выпуска кодов.
type CodeGenerator interface {
	Generate() string
}
