package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/fsdevblog/ecoledger/internal/domain"
	"github.com/fsdevblog/ecoledger/internal/logger"
	"github.com/fsdevblog/ecoledger/internal/service/tokens"
	"github.com/fsdevblog/ecoledger/internal/transport/api/middlewares"
	"github.com/fsdevblog/ecoledger/internal/transport/api/mocks"
	"github.com/fsdevblog/ecoledger/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

const testDeviceKey = "device-secret"

// handlerSuite общая часть тестов хендлеров: роутер со всеми моками сервисов.
type handlerSuite struct {
	suite.Suite
	router    *gin.Engine
	jwtSecret []byte

	authService       *mocks.MockAuthServicer
	settlementService *mocks.MockSettlementServicer
	ledgerService     *mocks.MockLedgerServicer
	withdrawalService *mocks.MockWithdrawalServicer
	penaltyService    *mocks.MockPenaltyServicer
	codeService       *mocks.MockCodeServicer
	catalogService    *mocks.MockCatalogServicer
}

func (s *handlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	mockCtrl := gomock.NewController(s.T())

	s.jwtSecret = []byte("super secret key")
	s.authService = mocks.NewMockAuthServicer(mockCtrl)
	s.settlementService = mocks.NewMockSettlementServicer(mockCtrl)
	s.ledgerService = mocks.NewMockLedgerServicer(mockCtrl)
	s.withdrawalService = mocks.NewMockWithdrawalServicer(mockCtrl)
	s.penaltyService = mocks.NewMockPenaltyServicer(mockCtrl)
	s.codeService = mocks.NewMockCodeServicer(mockCtrl)
	s.catalogService = mocks.NewMockCatalogServicer(mockCtrl)

	router, err := New(RouterArgs{
		Logger:            logger.New(os.Stdout),
		AuthService:       s.authService,
		SettlementService: s.settlementService,
		LedgerService:     s.ledgerService,
		WithdrawalService: s.withdrawalService,
		PenaltyService:    s.penaltyService,
		CodeService:       s.codeService,
		CatalogService:    s.catalogService,
		JWTSecretKey:      s.jwtSecret,
		DeviceAPIKey:      testDeviceKey,
	})
	s.Require().NoError(err)
	s.router = router
}

func (s *handlerSuite) token(userID int64, role domain.RoleType) string {
	token, err := tokens.GenerateUserJWT(userID, role, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	return token
}

func withBearer(token string) func(*testutils.RequestOptions) {
	return testutils.WithHeader("Authorization", "Bearer "+token)
}

func withDeviceKey(key string) func(*testutils.RequestOptions) {
	return testutils.WithHeader(middlewares.DeviceKeyHeader, key)
}

// do выполняет запрос и возвращает статус и тело ответа. body может быть []byte или любым значением для json.
func (s *handlerSuite) do(
	method, url string,
	body any,
	opts ...func(*testutils.RequestOptions),
) (int, http.Header, []byte) {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case []byte:
		reader = bytes.NewReader(b)
	default:
		payload, err := json.Marshal(b)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	}

	opts = append([]func(*testutils.RequestOptions){
		testutils.WithHeader("Content-Type", "application/json"),
	}, opts...)
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    RouteGroup + url,
		Body:   reader,
	}, opts...)
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	resBody, readErr := io.ReadAll(res.Body)
	s.Require().NoError(readErr)
	return res.StatusCode, res.Header, resBody
}

func (s *handlerSuite) decode(body []byte, v any) {
	s.Require().NoError(json.Unmarshal(body, v), string(body))
}

func (s *handlerSuite) errorText(body []byte) string {
	var res struct {
		Error string `json:"error"`
	}
	s.decode(body, &res)
	return res.Error
}
