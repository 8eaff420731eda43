package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/fsdevblog/ecoledger/internal/domain"
	"github.com/fsdevblog/ecoledger/internal/metrics"
	"github.com/fsdevblog/ecoledger/internal/repository/repoargs"
	"github.com/fsdevblog/ecoledger/pkg/uow"
)

const (
	MaxBatchCodes            = 1000
	defaultBatchWorkers uint = 4
)

// SettlementService погашает коды и проводит начисления по леджеру.
type SettlementService struct {
	uow          uow.UOW
	codeRepo     ScanCodeRepository
	batchWorkers uint
}

func NewSettlementService(u uow.UOW) (*SettlementService, error) {
	codeRepo, err := uow.GetRepositoryAs[ScanCodeRepository](u, uow.RepositoryName(repoargs.ScanCodeRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &SettlementService{
		uow:          u,
		codeRepo:     codeRepo,
		batchWorkers: defaultBatchWorkers,
	}, nil
}

// SetBatchWorkers устанавливает кол-во воркеров, параллельно погашающих коды пакета.
func (s *SettlementService) SetBatchWorkers(workers uint) *SettlementService {
	if workers > 0 {
		s.batchWorkers = workers
	}
	return s
}

type SettleArgs struct {
	Code      string
	SimModule string
	// Phone номер телефона сдавшего. Обязателен для штрихкодов, для экопакетов не используется.
	Phone string
}

// Settlement результат погашения одного кода.
type Settlement struct {
	Code            string
	Family          domain.CodeFamily
	CategoryLabel   string
	PayoutAmount    int64
	ClientAmount    int64
	OperatorAmount  int64
	ClientPosting   *domain.Posting
	OperatorPosting *domain.Posting
}

// SplitPayout делит стоимость категории между сдавшим и оператором точки. Доля оператора считается в целых
// единицах с отбрасыванием дробной части, доля сдавшего - вычитанием, поэтому client + operator всегда
// равно payout. Если категория игнорирует оператора или оператор у точки не назначен, все уходит сдавшему.
func SplitPayout(category *domain.Category, point *domain.CollectionPoint) (int64, int64) {
	if category.IgnoreOperatorSplit || !point.HasOperator() {
		return category.PayoutAmount, 0
	}
	operatorAmount := category.PayoutAmount * point.CommissionPercent / 100 //nolint:mnd
	return category.PayoutAmount - operatorAmount, operatorAmount
}

// SettleEcopacket погашает код экопакета. Сдавшим считается пользователь, заранее привязавший код к себе.
func (s *SettlementService) SettleEcopacket(ctx context.Context, args SettleArgs) (*Settlement, error) {
	return s.settle(ctx, domain.CodeFamilyEcopacket, args)
}

// SettleBarcode погашает штрихкод тары на фандомате. Сдавший определяется по номеру телефона и создается при
// первом обращении.
func (s *SettlementService) SettleBarcode(ctx context.Context, args SettleArgs) (*Settlement, error) {
	if args.Phone == "" {
		return nil, domain.NewValidationError("phone_number", "is required")
	}
	return s.settle(ctx, domain.CodeFamilyBarcode, args)
}

// SettleAny определяет семейство кода (сначала экопакеты, затем штрихкоды) и погашает его соответствующим
// способом.
func (s *SettlementService) SettleAny(ctx context.Context, args SettleArgs) (*Settlement, error) {
	scanCode, err := s.codeRepo.FindAnyFamily(ctx, args.Code)
	if err != nil {
		return nil, fmt.Errorf("settle code %s: %w", args.Code, err)
	}
	if scanCode.Family == domain.CodeFamilyBarcode {
		return s.SettleBarcode(ctx, args)
	}
	return s.SettleEcopacket(ctx, args)
}

func (s *SettlementService) settle(
	ctx context.Context,
	family domain.CodeFamily,
	args SettleArgs,
) (*Settlement, error) {
	var result *Settlement
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		var err error
		result, err = s.settleTx(c, tx, family, args)
		return err
	})
	if txErr != nil {
		metrics.ObserveSettlement(family, 0, 0, txErr)
		return nil, fmt.Errorf("settle %s code %s: %w", family, args.Code, txErr)
	}
	metrics.ObserveSettlement(family, result.ClientAmount, result.OperatorAmount, nil)
	return result, nil
}

// ledgerEntry одна сторона проводки.
type ledgerEntry struct {
	userID    int64
	accountID int64
	amount    int64
	operator  bool
}

// settleTx выполняет погашение внутри транзакции tx.
//
// Алгоритм работы:
//  1. Находит точку сбора. Для штрихкодов точка обязана быть фандоматом.
//  2. Атомарно помечает код погашенным. Повторное погашение дает domain.ErrAlreadyUsed.
//  3. Определяет сдавшего и категорию, делит стоимость через SplitPayout.
//  4. Увеличивает накопленную долю оператора точки.
//  5. Зачисляет суммы на счета в порядке возрастания id счета и создает записи леджера.
//
// Порядок блокировок: точка сбора, затем счета по возрастанию id.
//
// Любая ошибка откатывает транзакцию целиком, включая отметку о погашении кода.
func (s *SettlementService) settleTx(
	ctx context.Context,
	tx uow.TX,
	family domain.CodeFamily,
	args SettleArgs,
) (*Settlement, error) {
	r, err := settlementReposFromTX(tx)
	if err != nil {
		return nil, err
	}

	point, err := r.points.GetBySimModule(ctx, args.SimModule)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if family == domain.CodeFamilyBarcode && !point.IsFandomat {
		return nil, fmt.Errorf("collection point %s is not a fandomat: %w", args.SimModule, domain.ErrRecordNotFound)
	}

	scanCode, err := consumeCode(ctx, r.codes, family, args.Code, point.ID)
	if err != nil {
		return nil, err
	}

	depositorID, err := s.resolveDepositor(ctx, r.users, family, scanCode, args.Phone)
	if err != nil {
		return nil, err
	}

	if scanCode.CategoryID == nil {
		return nil, fmt.Errorf("category of code %s: %w", args.Code, domain.ErrRecordNotFound)
	}
	category, err := r.categories.GetByID(ctx, *scanCode.CategoryID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	clientAmount, operatorAmount := SplitPayout(category, point)

	entries := []ledgerEntry{{userID: depositorID, amount: clientAmount}}
	if operatorAmount > 0 {
		// строка точки блокируется раньше строк счетов, как и при одобрении авансовой заявки.
		if shareErr := r.points.AddOperatorShare(ctx, point.ID, operatorAmount); shareErr != nil {
			return nil, shareErr //nolint:wrapcheck
		}
		entries = append(entries, ledgerEntry{userID: *point.OperatorUserID, amount: operatorAmount, operator: true})
	}

	postings, err := postEntries(ctx, r, entries, repoargs.PostingCreate{
		Label:             category.Name,
		CollectionPointID: &point.ID,
		ScanCodeID:        &scanCode.ID,
	})
	if err != nil {
		return nil, err
	}

	result := &Settlement{
		Code:           scanCode.Code,
		Family:         family,
		CategoryLabel:  category.Name,
		PayoutAmount:   category.PayoutAmount,
		ClientAmount:   clientAmount,
		OperatorAmount: operatorAmount,
	}
	for i, entry := range entries {
		if entry.operator {
			result.OperatorPosting = postings[i]
		} else {
			result.ClientPosting = postings[i]
		}
	}
	return result, nil
}

func (s *SettlementService) resolveDepositor(
	ctx context.Context,
	users UserRepository,
	family domain.CodeFamily,
	scanCode *domain.ScanCode,
	phone string,
) (int64, error) {
	if family == domain.CodeFamilyEcopacket {
		if scanCode.OwnerUserID == nil {
			return 0, fmt.Errorf("ecopacket code %s: %w", scanCode.Code, domain.ErrCodeNotClaimed)
		}
		return *scanCode.OwnerUserID, nil
	}
	user, err := users.GetOrCreateByPhone(ctx, phone)
	if err != nil {
		return 0, err //nolint:wrapcheck
	}
	return user.ID, nil
}

// consumeCode погашает код и различает случаи "кода нет" и "код уже погашен".
func consumeCode(
	ctx context.Context,
	codes ScanCodeRepository,
	family domain.CodeFamily,
	code string,
	pointID int64,
) (*domain.ScanCode, error) {
	scanCode, err := codes.Consume(ctx, family, code, pointID)
	if err == nil {
		return scanCode, nil
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, err //nolint:wrapcheck
	}
	if _, findErr := codes.FindByCode(ctx, family, code); findErr != nil {
		return nil, findErr //nolint:wrapcheck
	}
	return nil, fmt.Errorf("%s code %s: %w", family, code, domain.ErrAlreadyUsed)
}

// postEntries зачисляет суммы на счета и создает записи леджера. Счета обновляются в порядке возрастания id,
// чтобы параллельные погашения не блокировали друг друга взаимно. Возвращает записи в порядке entries.
func postEntries(
	ctx context.Context,
	r *settlementRepos,
	entries []ledgerEntry,
	template repoargs.PostingCreate,
) ([]*domain.Posting, error) {
	for i := range entries {
		account, err := r.accounts.GetOrCreate(ctx, entries[i].userID)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}
		entries[i].accountID = account.ID
	}

	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		switch {
		case entries[a].accountID < entries[b].accountID:
			return -1
		case entries[a].accountID > entries[b].accountID:
			return 1
		default:
			return 0
		}
	})

	postings := make([]*domain.Posting, len(entries))
	for _, i := range order {
		entry := entries[i]
		if _, err := r.accounts.Credit(ctx, entry.accountID, entry.amount); err != nil {
			return nil, err //nolint:wrapcheck
		}
		args := template
		args.AccountID = entry.accountID
		args.Amount = entry.amount
		posting, err := r.postings.Create(ctx, args)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}
		postings[i] = posting
	}
	return postings, nil
}

type BatchSettleArgs struct {
	Family    domain.CodeFamily
	Codes     []string
	SimModule string
	Phone     string
}

type BatchItemResult struct {
	Code       string
	Settlement *Settlement
	Err        error
}

type BatchSettlement struct {
	TotalAmount  int64
	Results      []BatchItemResult
	SuccessCount int
	ErrorCount   int
}

// SettleBatch погашает список кодов одного семейства. Каждый код погашается в собственной транзакции,
// ошибка одного кода не прерывает обработку остальных. Порядок результатов совпадает с порядком кодов.
// TotalAmount - сумма, зачисленная сдавшим.
func (s *SettlementService) SettleBatch(ctx context.Context, args BatchSettleArgs) (*BatchSettlement, error) {
	if err := validateBatch(args); err != nil {
		return nil, err
	}

	results := s.runBatchWorkers(ctx, args)

	batch := &BatchSettlement{Results: results}
	for _, result := range results {
		if result.Err != nil {
			batch.ErrorCount++
			continue
		}
		batch.SuccessCount++
		batch.TotalAmount += result.Settlement.ClientAmount
	}
	return batch, nil
}

func validateBatch(args BatchSettleArgs) error {
	switch {
	case !args.Family.Valid():
		return domain.NewValidationError("family", "unknown code family")
	case len(args.Codes) == 0:
		return domain.NewValidationError("codes", "must not be empty")
	case len(args.Codes) > MaxBatchCodes:
		return domain.NewValidationError("codes", fmt.Sprintf("must contain at most %d codes", MaxBatchCodes))
	case args.Family == domain.CodeFamilyBarcode && args.Phone == "":
		return domain.NewValidationError("phone_number", "is required")
	}
	return nil
}

type batchTaskResult struct {
	index  int
	result BatchItemResult
}

// runBatchWorkers раздает коды воркерам и собирает результаты (fan-out/fan-in).
func (s *SettlementService) runBatchWorkers(ctx context.Context, args BatchSettleArgs) []BatchItemResult {
	taskCh := make(chan int, len(args.Codes))
	for i := range args.Codes {
		taskCh <- i
	}
	close(taskCh)

	workers := min(s.batchWorkers, uint(len(args.Codes)))
	resultCh := make(chan batchTaskResult, len(args.Codes))

	wg := new(sync.WaitGroup)
	wg.Add(int(workers)) //nolint:gosec
	for range workers {
		go s.batchWorker(ctx, wg, args, taskCh, resultCh)
	}
	wg.Wait()
	close(resultCh)

	results := make([]BatchItemResult, len(args.Codes))
	for r := range resultCh {
		results[r.index] = r.result
	}
	return results
}

func (s *SettlementService) batchWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	args BatchSettleArgs,
	taskCh <-chan int,
	resultCh chan<- batchTaskResult,
) {
	defer wg.Done()

	for i := range taskCh {
		settleArgs := SettleArgs{Code: args.Codes[i], SimModule: args.SimModule, Phone: args.Phone}
		settlement, err := s.settle(ctx, args.Family, settleArgs)
		resultCh <- batchTaskResult{
			index:  i,
			result: BatchItemResult{Code: args.Codes[i], Settlement: settlement, Err: err},
		}
	}
}
