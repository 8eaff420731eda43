package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/fsdevblog/ecoledger/internal/domain"
	"github.com/fsdevblog/ecoledger/internal/metrics"
	"github.com/fsdevblog/ecoledger/internal/repository/repoargs"
	"github.com/fsdevblog/ecoledger/internal/service/tokens"
	"github.com/fsdevblog/ecoledger/pkg/uow"
)

const (
	JWTTokenExpire = 24 * time.Hour
	OTPTTL         = 5 * time.Minute
	// MaxOTPFailures после стольких неверных вводов код аннулируется.
	MaxOTPFailures = 5
	otpDigits      = 6
	otpMessage     = "Ваш код подтверждения: %s"
)

// AuthDeps внешние зависимости AuthService.
type AuthDeps struct {
	Limiter        OTPLimiter
	Store          OTPStore
	SMS            SMSSender
	Hasher         Hasher
	JWTTokenSecret []byte
}

// AuthService вход по одноразовому коду из SMS.
type AuthService struct {
	uow     uow.UOW
	deps    AuthDeps
	genCode func() (string, error)
}

func NewAuthService(u uow.UOW, deps AuthDeps) *AuthService {
	return &AuthService{uow: u, deps: deps, genCode: generateOTP}
}

// SetCodeGenerator подменяет генератор одноразовых кодов.
func (a *AuthService) SetCodeGenerator(gen func() (string, error)) *AuthService {
	a.genCode = gen
	return a
}

func phoneIdentity(phone string) string { return "phone:" + phone }
func ipIdentity(ip string) string       { return "ip:" + ip }

// RequestOTP отправляет одноразовый код на телефон. Лимит запросов в сутки проверяется отдельно для номера
// телефона и для IP клиента, превышение любого - domain.ErrOTPLimitExceeded.
// Попытка учитывается в счетчике до отправки кода, решение принимается по значению счетчика после инкремента.
func (a *AuthService) RequestOTP(ctx context.Context, phone, ip string) error {
	if phone == "" {
		return domain.NewValidationError("phone_number", "is required")
	}

	identities := []string{phoneIdentity(phone)}
	if ip != "" {
		identities = append(identities, ipIdentity(ip))
	}
	for _, identity := range identities {
		ok, err := a.deps.Limiter.Allow(ctx, identity)
		if err != nil {
			metrics.ObserveOTPRequest("error")
			return fmt.Errorf("requesting otp: %w", err)
		}
		if !ok {
			metrics.ObserveOTPRequest("limited")
			return fmt.Errorf("requesting otp for %s: %w", identity, domain.ErrOTPLimitExceeded)
		}
	}

	if err := a.issueOTP(ctx, phone); err != nil {
		metrics.ObserveOTPRequest("error")
		return fmt.Errorf("requesting otp: %w", err)
	}
	metrics.ObserveOTPRequest("sent")
	return nil
}

func (a *AuthService) issueOTP(ctx context.Context, phone string) error {
	code, err := a.genCode()
	if err != nil {
		return err
	}
	hash, err := a.deps.Hasher.HashPassword(code)
	if err != nil {
		return err //nolint:wrapcheck
	}
	if err = a.deps.Store.Save(ctx, phone, hash, OTPTTL); err != nil {
		return err //nolint:wrapcheck
	}
	return a.deps.SMS.Send(ctx, phone, fmt.Sprintf(otpMessage, code)) //nolint:wrapcheck
}

// VerifyOTP проверяет код, активирует пользователя (создавая его при первом входе) и выпускает jwt токен.
// Неверный или истекший код - domain.ErrOTPMismatch. После MaxOTPFailures неверных вводов код удаляется.
func (a *AuthService) VerifyOTP(ctx context.Context, phone, otp string) (*domain.User, string, error) {
	hash, err := a.deps.Store.Get(ctx, phone)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, "", fmt.Errorf("verifying otp: %w", domain.ErrOTPMismatch)
		}
		return nil, "", fmt.Errorf("verifying otp: %w", err)
	}
	if !a.deps.Hasher.ComparePassword(otp, hash) {
		if failErr := a.registerFailure(ctx, phone); failErr != nil {
			return nil, "", fmt.Errorf("verifying otp: %w", failErr)
		}
		return nil, "", fmt.Errorf("verifying otp: %w", domain.ErrOTPMismatch)
	}
	if err = a.deps.Store.Delete(ctx, phone); err != nil {
		return nil, "", fmt.Errorf("verifying otp: %w", err)
	}

	var user *domain.User
	var token string
	txErr := a.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, repoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		accountRepo, repoErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		created, userErr := userRepo.GetOrCreateByPhone(c, phone)
		if userErr != nil {
			return userErr //nolint:wrapcheck
		}
		if user, userErr = userRepo.Activate(c, created.ID); userErr != nil {
			return userErr //nolint:wrapcheck
		}
		if _, accErr := accountRepo.GetOrCreate(c, user.ID); accErr != nil {
			return accErr //nolint:wrapcheck
		}

		var tokenErr error
		token, tokenErr = tokens.GenerateUserJWT(user.ID, user.Role, JWTTokenExpire, a.deps.JWTTokenSecret)
		return tokenErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, "", fmt.Errorf("verifying otp: %w", txErr)
	}
	return user, token, nil
}

func (a *AuthService) registerFailure(ctx context.Context, phone string) error {
	failures, err := a.deps.Store.RecordFailure(ctx, phone, OTPTTL)
	if err != nil {
		return err //nolint:wrapcheck
	}
	if failures < MaxOTPFailures {
		return nil
	}
	return a.deps.Store.Delete(ctx, phone) //nolint:wrapcheck
}

// generateOTP возвращает случайный код из otpDigits цифр.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000)) //nolint:mnd
	if err != nil {
		return "", fmt.Errorf("generating otp: %w", err)
	}
	return fmt.Sprintf("%0*d", otpDigits, n.Int64()), nil
}
