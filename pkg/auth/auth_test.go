package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/BeerHall/configs"
	"droscher.com/BeerHall/pkg/auth"
)

type AuthTestSuite struct {
	suite.Suite
	conf         configs.Auth
	manager      *auth.Manager
	handler      http.Handler
	observedLogs *observer.ObservedLogs
	seenEmail    string
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}

func (suite *AuthTestSuite) SetupTest() {
	suite.conf = configs.Auth{SecretKey: "sssht", Audience: "beerhall-admin", Domain: "beerhall.test", TokenTTL: time.Hour}
	suite.seenEmail = ""
	suite.manager, suite.handler = suite.newManager(suite.conf)
}

func (suite *AuthTestSuite) newManager(conf configs.Auth) (*auth.Manager, http.Handler) {
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs

	manager := auth.NewAuthManager(conf, zap.New(observedZapCore))
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		suite.seenEmail, _ = auth.UserFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	return manager, manager.Middleware(next)
}

func (suite *AuthTestSuite) token(now time.Time) string {
	token, err := suite.manager.IssueToken("admin@beerhall.test", now)
	suite.Require().NoError(err)

	return token
}

func (suite *AuthTestSuite) serve(request *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	suite.handler.ServeHTTP(recorder, request)

	return recorder
}

func (suite *AuthTestSuite) TestBearerToken() {
	request := httptest.NewRequest(http.MethodGet, "/Brewer", nil)
	request.Header.Set("Authorization", "Bearer "+suite.token(time.Now()))

	recorder := suite.serve(request)

	suite.Equal(http.StatusNoContent, recorder.Code)
	suite.Equal("admin@beerhall.test", suite.seenEmail)
}

func (suite *AuthTestSuite) TestCookieToken() {
	request := httptest.NewRequest(http.MethodGet, "/Brewer", nil)
	request.AddCookie(&http.Cookie{Name: auth.TokenCookie, Value: suite.token(time.Now())})

	suite.Equal(http.StatusNoContent, suite.serve(request).Code)
	suite.Equal("admin@beerhall.test", suite.seenEmail)
}

func (suite *AuthTestSuite) TestQueryTokenMovesIntoCookie() {
	token := suite.token(time.Now())

	recorder := suite.serve(httptest.NewRequest(http.MethodGet, "/Brewer/Edit/1?token="+token+"&tab=beers", nil))

	suite.Equal(http.StatusSeeOther, recorder.Code)
	suite.Equal("/Brewer/Edit/1?tab=beers", recorder.Header().Get("Location"))
	suite.Empty(suite.seenEmail)

	cookies := recorder.Result().Cookies()
	suite.Require().Len(cookies, 1)
	suite.Equal(auth.TokenCookie, cookies[0].Name)
	suite.Equal(token, cookies[0].Value)
	suite.True(cookies[0].HttpOnly)
}

func (suite *AuthTestSuite) TestMissingToken() {
	recorder := suite.serve(httptest.NewRequest(http.MethodGet, "/Brewer", nil))

	suite.Equal(http.StatusUnauthorized, recorder.Code)
	suite.NotEmpty(recorder.Header().Get("WWW-Authenticate"))
	suite.Empty(suite.seenEmail)
}

func (suite *AuthTestSuite) TestMalformedAuthorizationHeader() {
	request := httptest.NewRequest(http.MethodGet, "/Brewer", nil)
	request.Header.Set("Authorization", "Basic YWRtaW46YWRtaW4=")

	suite.Equal(http.StatusUnauthorized, suite.serve(request).Code)
}

func (suite *AuthTestSuite) TestExpiredToken() {
	request := httptest.NewRequest(http.MethodGet, "/Brewer", nil)
	request.Header.Set("Authorization", "Bearer "+suite.token(time.Now().Add(-2*time.Hour)))

	suite.Equal(http.StatusUnauthorized, suite.serve(request).Code)
	suite.Equal(1, suite.observedLogs.FilterMessage("error parsing token").Len())
}

func (suite *AuthTestSuite) TestWrongSecret() {
	other, _ := suite.newManager(configs.Auth{SecretKey: "other", Audience: "beerhall-admin", Domain: "beerhall.test", TokenTTL: time.Hour})
	token, err := other.IssueToken("admin@beerhall.test", time.Now())
	suite.Require().NoError(err)

	_, suite.handler = suite.newManager(suite.conf)

	request := httptest.NewRequest(http.MethodGet, "/Brewer", nil)
	request.Header.Set("Authorization", "Bearer "+token)

	suite.Equal(http.StatusUnauthorized, suite.serve(request).Code)
}

func (suite *AuthTestSuite) TestWrongAudience() {
	other, _ := suite.newManager(configs.Auth{SecretKey: "sssht", Audience: "cellar", Domain: "beerhall.test", TokenTTL: time.Hour})
	token, err := other.IssueToken("admin@beerhall.test", time.Now())
	suite.Require().NoError(err)

	_, suite.handler = suite.newManager(suite.conf)

	request := httptest.NewRequest(http.MethodGet, "/Brewer", nil)
	request.Header.Set("Authorization", "Bearer "+token)

	suite.Equal(http.StatusUnauthorized, suite.serve(request).Code)
}

func (suite *AuthTestSuite) TestUnsignedTokenIsRejected() {
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, auth.Claims{Email: "admin@beerhall.test"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	suite.Require().NoError(err)

	request := httptest.NewRequest(http.MethodGet, "/Brewer", nil)
	request.Header.Set("Authorization", "Bearer "+token)

	suite.Equal(http.StatusUnauthorized, suite.serve(request).Code)
}

func (suite *AuthTestSuite) TestTokenWithoutEmail() {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{"beerhall-admin"},
			Issuer:    "beerhall.test",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("sssht"))
	suite.Require().NoError(err)

	request := httptest.NewRequest(http.MethodGet, "/Brewer", nil)
	request.Header.Set("Authorization", "Bearer "+token)

	suite.Equal(http.StatusUnauthorized, suite.serve(request).Code)
}

func (suite *AuthTestSuite) TestDisabledWithoutSecret() {
	manager, handler := suite.newManager(configs.Auth{})
	suite.handler = handler

	suite.Equal(http.StatusNoContent, suite.serve(httptest.NewRequest(http.MethodGet, "/Brewer", nil)).Code)
	suite.Equal(1, suite.observedLogs.FilterMessage("authentication disabled, no secret key configured").Len())

	_, err := manager.IssueToken("admin@beerhall.test", time.Now())
	suite.Require().ErrorIs(err, configs.ErrConfiguration)
}
