package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/gamescorehq/gamescore_app/internal/apperrors"
	"github.com/gamescorehq/gamescore_app/internal/core/domain"
	portssvc "github.com/gamescorehq/gamescore_app/internal/core/ports/services"
	"github.com/gamescorehq/gamescore_app/internal/core/services"
	"github.com/gamescorehq/gamescore_app/internal/dto"
	"github.com/gamescorehq/gamescore_app/internal/platform/config"
	"github.com/gamescorehq/gamescore_app/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PlayerRepository (based on PlayerService usage) ---
type MockPlayerRepository struct {
	mock.Mock
}

func (m *MockPlayerRepository) SavePlayer(ctx context.Context, player domain.Player) error {
	args := m.Called(ctx, player)
	return args.Error(0)
}

func (m *MockPlayerRepository) FindPlayerByID(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	var player *domain.Player
	if args.Get(0) != nil {
		player = args.Get(0).(*domain.Player)
	}
	return player, args.Error(1)
}

func (m *MockPlayerRepository) FindPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	args := m.Called(ctx, username)
	var player *domain.Player
	if args.Get(0) != nil {
		player = args.Get(0).(*domain.Player)
	}
	return player, args.Error(1)
}

func (m *MockPlayerRepository) FindPlayerByResetToken(ctx context.Context, token string) (*domain.Player, error) {
	args := m.Called(ctx, token)
	var player *domain.Player
	if args.Get(0) != nil {
		player = args.Get(0).(*domain.Player)
	}
	return player, args.Error(1)
}

func (m *MockPlayerRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlayerRepository) FindPlayers(ctx context.Context, limit int, offset int) ([]domain.Player, error) {
	args := m.Called(ctx, limit, offset)
	var players []domain.Player
	if args.Get(0) != nil {
		players = args.Get(0).([]domain.Player)
	}
	return players, args.Error(1)
}

func (m *MockPlayerRepository) UpdatePassword(ctx context.Context, playerID string, passwordHash string, updatedAt time.Time) error {
	args := m.Called(ctx, playerID, passwordHash, updatedAt)
	return args.Error(0)
}

func (m *MockPlayerRepository) UpdateResetToken(ctx context.Context, playerID string, token string, expiresAt time.Time) error {
	args := m.Called(ctx, playerID, token, expiresAt)
	return args.Error(0)
}

// --- Mock MailSender ---
type MockMailSender struct {
	mock.Mock
}

func (m *MockMailSender) Send(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:                "test-secret",
		JWTIssuer:                "gamescore-app",
		JWTExpiryDuration:        time.Hour,
		ResetTokenExpiryDuration: 30 * time.Minute,
		ResetTokenLengthBytes:    32,
	}
}

// --- Test Suite ---
type PlayerServiceTestSuite struct {
	suite.Suite
	mockPlayerRepo *MockPlayerRepository
	mockMailer     *MockMailSender
	tokenSvc       portssvc.TokenSvcFacade
	service        portssvc.PlayerSvcFacade
}

func (suite *PlayerServiceTestSuite) SetupTest() {
	cfg := testConfig()
	suite.mockPlayerRepo = new(MockPlayerRepository)
	suite.mockMailer = new(MockMailSender)
	suite.tokenSvc = services.NewTokenService(cfg)
	resetSvc := services.NewResetTokenService(cfg, suite.mockPlayerRepo)
	suite.service = services.NewPlayerService(suite.mockPlayerRepo, suite.tokenSvc, resetSvc, suite.mockMailer)
}

// --- Register Tests ---

func (suite *PlayerServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	username := "testplayer"
	password := "password123"
	email := "testplayer@example.com"

	req := dto.RegisterRequest{
		Username: username,
		Password: password,
		Email:    email,
	}

	suite.mockPlayerRepo.On("ExistsByUsername", ctx, username).Return(false, nil).Once()
	suite.mockPlayerRepo.On("SavePlayer", ctx, mock.MatchedBy(func(player domain.Player) bool {
		return player.Username == username && player.Email == email && player.PasswordHash != password
	})).Return(nil).Once()

	createdPlayer, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(createdPlayer)
	suite.Equal(username, createdPlayer.Username)
	suite.Equal(email, createdPlayer.Email)
	suite.NotEmpty(createdPlayer.PlayerID)
	suite.True(utils.CheckPasswordHash(password, createdPlayer.PasswordHash))

	suite.mockPlayerRepo.AssertExpectations(suite.T())
}

func (suite *PlayerServiceTestSuite) TestRegister_DuplicateUsername() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Username: "taken",
		Password: "password123",
		Email:    "taken@example.com",
	}

	suite.mockPlayerRepo.On("ExistsByUsername", ctx, "taken").Return(true, nil).Once()

	createdPlayer, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdPlayer)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockPlayerRepo.AssertNotCalled(suite.T(), "SavePlayer", mock.Anything, mock.Anything)
	suite.mockPlayerRepo.AssertExpectations(suite.T())
}

func (suite *PlayerServiceTestSuite) TestRegister_EmptyUsername() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Username: "   ",
		Password: "password123",
		Email:    "someone@example.com",
	}

	createdPlayer, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdPlayer)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPlayerRepo.AssertNotCalled(suite.T(), "SavePlayer", mock.Anything, mock.Anything)
}

func (suite *PlayerServiceTestSuite) TestRegister_RaceLostOnSave() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Username: "racer",
		Password: "password123",
		Email:    "racer@example.com",
	}

	// The existence check passes but a concurrent registration wins the
	// race; the store reports the unique violation as a duplicate.
	suite.mockPlayerRepo.On("ExistsByUsername", ctx, "racer").Return(false, nil).Once()
	suite.mockPlayerRepo.On("SavePlayer", ctx, mock.AnythingOfType("domain.Player")).Return(apperrors.ErrDuplicate).Once()

	createdPlayer, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdPlayer)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockPlayerRepo.AssertExpectations(suite.T())
}

// --- Login Tests ---

func (suite *PlayerServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	username := "testplayer"
	password := "password123"

	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	player := &domain.Player{
		PlayerID:     uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
	}

	suite.mockPlayerRepo.On("FindPlayerByUsername", ctx, username).Return(player, nil).Once()

	token, err := suite.service.Login(ctx, dto.LoginRequest{Username: username, Password: password})

	suite.Require().NoError(err)
	suite.Require().NotEmpty(token)

	// The token must resolve back to the same username.
	identity, err := suite.tokenSvc.ResolveIdentity(token)
	suite.Require().NoError(err)
	suite.Equal(username, identity.Username)

	suite.mockPlayerRepo.AssertExpectations(suite.T())
}

func (suite *PlayerServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	username := "testplayer"

	hash, err := utils.HashPassword("the-real-password")
	suite.Require().NoError(err)

	player := &domain.Player{
		PlayerID:     uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
	}

	suite.mockPlayerRepo.On("FindPlayerByUsername", ctx, username).Return(player, nil).Once()

	token, err := suite.service.Login(ctx, dto.LoginRequest{Username: username, Password: "not-the-password"})

	suite.Require().Error(err)
	suite.Empty(token)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockPlayerRepo.AssertExpectations(suite.T())
}

func (suite *PlayerServiceTestSuite) TestLogin_UnknownUsername() {
	ctx := context.Background()

	suite.mockPlayerRepo.On("FindPlayerByUsername", ctx, "nobody").Return(nil, apperrors.ErrNotFound).Once()

	token, err := suite.service.Login(ctx, dto.LoginRequest{Username: "nobody", Password: "whatever"})

	suite.Require().Error(err)
	suite.Empty(token)
	// Unknown username and wrong password are indistinguishable.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
	suite.mockPlayerRepo.AssertExpectations(suite.T())
}

// --- GetPlayerID Tests ---

func (suite *PlayerServiceTestSuite) TestGetPlayerID_Success() {
	ctx := context.Background()
	playerID := uuid.NewString()
	player := &domain.Player{PlayerID: playerID, Username: "testplayer"}

	suite.mockPlayerRepo.On("FindPlayerByUsername", ctx, "testplayer").Return(player, nil).Once()

	gotID, err := suite.service.GetPlayerID(ctx, "testplayer")

	suite.Require().NoError(err)
	suite.Equal(playerID, gotID)
	suite.mockPlayerRepo.AssertExpectations(suite.T())
}

func (suite *PlayerServiceTestSuite) TestGetPlayerID_NotFound() {
	ctx := context.Background()

	suite.mockPlayerRepo.On("FindPlayerByUsername", ctx, "nobody").Return(nil, apperrors.ErrNotFound).Once()

	gotID, err := suite.service.GetPlayerID(ctx, "nobody")

	suite.Require().Error(err)
	suite.Empty(gotID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPlayerRepo.AssertExpectations(suite.T())
}

// --- UpdatePlayer Tests ---

func (suite *PlayerServiceTestSuite) TestUpdatePlayer_Success() {
	ctx := context.Background()
	playerID := uuid.NewString()
	newPassword := "new-password"

	suite.mockPlayerRepo.On("UpdatePassword", ctx, playerID, mock.MatchedBy(func(hash string) bool {
		return utils.CheckPasswordHash(newPassword, hash)
	}), mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.UpdatePlayer(ctx, playerID, newPassword)

	suite.Require().NoError(err)
	suite.mockPlayerRepo.AssertExpectations(suite.T())
}

func (suite *PlayerServiceTestSuite) TestUpdatePlayer_NotFound() {
	ctx := context.Background()
	playerID := uuid.NewString()

	suite.mockPlayerRepo.On("UpdatePassword", ctx, playerID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrNotFound).Once()

	err := suite.service.UpdatePlayer(ctx, playerID, "new-password")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPlayerRepo.AssertExpectations(suite.T())
}

func (suite *PlayerServiceTestSuite) TestUpdatePlayer_EmptyPassword() {
	ctx := context.Background()

	err := suite.service.UpdatePlayer(ctx, uuid.NewString(), "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPlayerRepo.AssertNotCalled(suite.T(), "UpdatePassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- ForgotPassword Tests ---

func (suite *PlayerServiceTestSuite) TestForgotPassword_Success() {
	ctx := context.Background()
	username := "testplayer"
	email := "testplayer@example.com"
	player := &domain.Player{
		PlayerID: uuid.NewString(),
		Username: username,
		Email:    email,
	}

	var issuedToken string

	// Looked up once by the player service for the email check and once by
	// the reset token service when issuing.
	suite.mockPlayerRepo.On("FindPlayerByUsername", ctx, username).Return(player, nil).Twice()
	suite.mockPlayerRepo.On("UpdateResetToken", ctx, player.PlayerID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			issuedToken = args.String(2)
		}).Return(nil).Once()
	suite.mockMailer.On("Send", ctx, email, mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return(nil).Once()

	sessionToken, err := suite.service.ForgotPassword(ctx, dto.ForgotPasswordRequest{Username: username, Email: email})

	suite.Require().NoError(err)
	suite.Require().NotEmpty(sessionToken)
	suite.NotEmpty(issuedToken)

	// The mailed token and the session token are different artifacts.
	suite.NotEqual(issuedToken, sessionToken)

	identity, err := suite.tokenSvc.ResolveIdentity(sessionToken)
	suite.Require().NoError(err)
	suite.Equal(username, identity.Username)

	suite.mockPlayerRepo.AssertExpectations(suite.T())
	suite.mockMailer.AssertExpectations(suite.T())
}

func (suite *PlayerServiceTestSuite) TestForgotPassword_EmailMismatch() {
	ctx := context.Background()
	player := &domain.Player{
		PlayerID: uuid.NewString(),
		Username: "testplayer",
		Email:    "real@example.com",
	}

	suite.mockPlayerRepo.On("FindPlayerByUsername", ctx, "testplayer").Return(player, nil).Once()

	sessionToken, err := suite.service.ForgotPassword(ctx, dto.ForgotPasswordRequest{
		Username: "testplayer",
		Email:    "attacker@example.com",
	})

	suite.Require().Error(err)
	suite.Empty(sessionToken)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	// No token may be issued and no mail sent on a mismatch.
	suite.mockPlayerRepo.AssertNotCalled(suite.T(), "UpdateResetToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockMailer.AssertNotCalled(suite.T(), "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockPlayerRepo.AssertExpectations(suite.T())
}

func (suite *PlayerServiceTestSuite) TestForgotPassword_UnknownUsername() {
	ctx := context.Background()

	suite.mockPlayerRepo.On("FindPlayerByUsername", ctx, "nobody").Return(nil, apperrors.ErrNotFound).Once()

	sessionToken, err := suite.service.ForgotPassword(ctx, dto.ForgotPasswordRequest{
		Username: "nobody",
		Email:    "nobody@example.com",
	})

	suite.Require().Error(err)
	suite.Empty(sessionToken)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockMailer.AssertNotCalled(suite.T(), "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockPlayerRepo.AssertExpectations(suite.T())
}

func (suite *PlayerServiceTestSuite) TestForgotPassword_MailDeliveryFails() {
	ctx := context.Background()
	username := "testplayer"
	email := "testplayer@example.com"
	player := &domain.Player{
		PlayerID: uuid.NewString(),
		Username: username,
		Email:    email,
	}

	suite.mockPlayerRepo.On("FindPlayerByUsername", ctx, username).Return(player, nil).Twice()
	suite.mockPlayerRepo.On("UpdateResetToken", ctx, player.PlayerID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	suite.mockMailer.On("Send", ctx, email, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(assert.AnError).Once()

	sessionToken, err := suite.service.ForgotPassword(ctx, dto.ForgotPasswordRequest{Username: username, Email: email})

	suite.Require().Error(err)
	suite.Empty(sessionToken)
	suite.ErrorIs(err, apperrors.ErrDependency)
	suite.mockPlayerRepo.AssertExpectations(suite.T())
	suite.mockMailer.AssertExpectations(suite.T())
}

// --- ResetPassword Tests ---

func (suite *PlayerServiceTestSuite) TestResetPassword_Success() {
	ctx := context.Background()
	username := "testplayer"
	resetToken := "valid-reset-token"
	newPassword := "brand-new-password"
	expiresAt := time.Now().Add(10 * time.Minute)
	player := &domain.Player{
		PlayerID:            uuid.NewString(),
		Username:            username,
		ResetToken:          &resetToken,
		ResetTokenExpiresAt: &expiresAt,
	}

	suite.mockPlayerRepo.On("FindPlayerByResetToken", ctx, resetToken).Return(player, nil).Once()
	suite.mockPlayerRepo.On("UpdatePassword", ctx, player.PlayerID, mock.MatchedBy(func(hash string) bool {
		return utils.CheckPasswordHash(newPassword, hash)
	}), mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.ResetPassword(ctx, dto.ResetPasswordRequest{
		Username:    username,
		ResetToken:  resetToken,
		NewPassword: newPassword,
	})

	suite.Require().NoError(err)
	suite.mockPlayerRepo.AssertExpectations(suite.T())
}

func (suite *PlayerServiceTestSuite) TestResetPassword_UnknownToken() {
	ctx := context.Background()

	suite.mockPlayerRepo.On("FindPlayerByResetToken", ctx, "bogus-token").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.ResetPassword(ctx, dto.ResetPasswordRequest{
		Username:    "testplayer",
		ResetToken:  "bogus-token",
		NewPassword: "new-password",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockPlayerRepo.AssertNotCalled(suite.T(), "UpdatePassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockPlayerRepo.AssertExpectations(suite.T())
}

func (suite *PlayerServiceTestSuite) TestResetPassword_UsernameMismatch() {
	ctx := context.Background()
	resetToken := "someone-elses-token"
	expiresAt := time.Now().Add(10 * time.Minute)
	player := &domain.Player{
		PlayerID:            uuid.NewString(),
		Username:            "other-player",
		ResetToken:          &resetToken,
		ResetTokenExpiresAt: &expiresAt,
	}

	suite.mockPlayerRepo.On("FindPlayerByResetToken", ctx, resetToken).Return(player, nil).Once()

	err := suite.service.ResetPassword(ctx, dto.ResetPasswordRequest{
		Username:    "testplayer",
		ResetToken:  resetToken,
		NewPassword: "new-password",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockPlayerRepo.AssertNotCalled(suite.T(), "UpdatePassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockPlayerRepo.AssertExpectations(suite.T())
}

func (suite *PlayerServiceTestSuite) TestResetPassword_ExpiredToken() {
	ctx := context.Background()
	resetToken := "stale-token"
	expiresAt := time.Now().Add(-time.Minute)
	player := &domain.Player{
		PlayerID:            uuid.NewString(),
		Username:            "testplayer",
		ResetToken:          &resetToken,
		ResetTokenExpiresAt: &expiresAt,
	}

	suite.mockPlayerRepo.On("FindPlayerByResetToken", ctx, resetToken).Return(player, nil).Once()

	err := suite.service.ResetPassword(ctx, dto.ResetPasswordRequest{
		Username:    "testplayer",
		ResetToken:  resetToken,
		NewPassword: "new-password",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockPlayerRepo.AssertNotCalled(suite.T(), "UpdatePassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockPlayerRepo.AssertExpectations(suite.T())
}

func TestPlayerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerServiceTestSuite))
}
