package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/ecoledger/internal/domain"
	"github.com/fsdevblog/ecoledger/internal/repository/repoargs"
	"github.com/fsdevblog/ecoledger/pkg/uow"
)

const (
	MinCodesBatch = 1
	MaxCodesBatch = 10000
)

// CodeService реестр кодов: привязка экопакетов, массовый выпуск и проверка кода.
type CodeService struct {
	uow       uow.UOW
	codeRepo  ScanCodeRepository
	logRepo   ScanLogRepository
	generator CodeGenerator
}

func NewCodeService(u uow.UOW, generator CodeGenerator) (*CodeService, error) {
	codeRepo, err := uow.GetRepositoryAs[ScanCodeRepository](u, uow.RepositoryName(repoargs.ScanCodeRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	logRepo, err := uow.GetRepositoryAs[ScanLogRepository](u, uow.RepositoryName(repoargs.ScanLogRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &CodeService{
		uow:       u,
		codeRepo:  codeRepo,
		logRepo:   logRepo,
		generator: generator,
	}, nil
}

// Claim привязывает код экопакета к пользователю. Повторная привязка тем же пользователем возвращает код без
// изменений. Код другого владельца - domain.ErrOwnerConflict, погашенный код - domain.ErrAlreadyUsed.
func (s *CodeService) Claim(ctx context.Context, code string, userID int64) (*domain.ScanCode, error) {
	scanCode, err := s.codeRepo.Claim(ctx, domain.CodeFamilyEcopacket, code, userID)
	if err == nil {
		return scanCode, nil
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, fmt.Errorf("claiming code %s: %w", code, err)
	}

	existing, findErr := s.codeRepo.FindByCode(ctx, domain.CodeFamilyEcopacket, code)
	if findErr != nil {
		return nil, fmt.Errorf("claiming code %s: %w", code, findErr)
	}
	switch {
	case existing.IsConsumed():
		return nil, fmt.Errorf("claiming code %s: %w", code, domain.ErrAlreadyUsed)
	case existing.OwnerUserID != nil && *existing.OwnerUserID == userID:
		return existing, nil
	default:
		return nil, fmt.Errorf("claiming code %s: %w", code, domain.ErrOwnerConflict)
	}
}

type CreateCodesArgs struct {
	Family     domain.CodeFamily
	CategoryID int64
	Count      int
}

// CreateBatch выпускает Count новых кодов категории и возвращает их значения.
func (s *CodeService) CreateBatch(ctx context.Context, args CreateCodesArgs) ([]string, error) {
	switch {
	case !args.Family.Valid():
		return nil, domain.NewValidationError("family", "unknown code family")
	case args.Count < MinCodesBatch || args.Count > MaxCodesBatch:
		return nil, domain.NewValidationError("count",
			fmt.Sprintf("must be between %d and %d", MinCodesBatch, MaxCodesBatch))
	}

	codes := make([]string, args.Count)
	rows := make([]repoargs.ScanCodeCreate, args.Count)
	for i := range codes {
		codes[i] = s.generator.Generate()
		rows[i] = repoargs.ScanCodeCreate{Family: args.Family, Code: codes[i], CategoryID: args.CategoryID}
	}

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		categoryRepo, err := uow.GetAs[CategoryRepository](tx, uow.RepositoryName(repoargs.CategoryRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		codeRepo, err := uow.GetAs[ScanCodeRepository](tx, uow.RepositoryName(repoargs.ScanCodeRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		if _, err = categoryRepo.GetByID(c, args.CategoryID); err != nil {
			return err //nolint:wrapcheck
		}
		inserted, err := codeRepo.BulkCreate(c, rows)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if inserted != int64(len(rows)) {
			return fmt.Errorf("inserted %d of %d codes: %w", inserted, len(rows), domain.ErrUnknown)
		}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("creating %d %s codes: %w", args.Count, args.Family, txErr)
	}
	return codes, nil
}

type CheckArgs struct {
	Code      string
	IP        string
	UserAgent string
}

type CodeCheck struct {
	Code     string
	Result   domain.CheckResult
	Exists   bool
	Consumed bool
}

// Check определяет семейство кода и пишет запись в журнал проверок.
func (s *CodeService) Check(ctx context.Context, args CheckArgs) (*CodeCheck, error) {
	check := CodeCheck{Code: args.Code, Result: domain.CheckResultNotFound}

	scanCode, err := s.codeRepo.FindAnyFamily(ctx, args.Code)
	switch {
	case err == nil:
		check.Exists = true
		check.Consumed = scanCode.IsConsumed()
		check.Result = domain.CheckResult(scanCode.Family)
	case !errors.Is(err, domain.ErrRecordNotFound):
		return nil, fmt.Errorf("checking code %s: %w", args.Code, err)
	}

	if logErr := s.logRepo.Create(ctx, repoargs.ScanLogCreate{
		Code:      args.Code,
		IP:        args.IP,
		UserAgent: args.UserAgent,
		Result:    check.Result,
		Exists:    check.Exists,
	}); logErr != nil {
		return nil, fmt.Errorf("checking code %s: %w", args.Code, logErr)
	}
	return &check, nil
}
