package authenticating

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/budget-optimizer-api/infrastructure/repository/mocks"
	"github.com/vfg2006/budget-optimizer-api/internal/config"
	"github.com/vfg2006/budget-optimizer-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testSecretKey = "chave-secreta-de-teste"

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newAuthService(ctrl *gomock.Controller) (Authenticator, *mocks.MockUserRepository) {
	userRepo := mocks.NewMockUserRepository(ctrl)
	cfg := &config.Config{SecretKey: testSecretKey}
	return NewService(userRepo, cfg), userRepo
}

func TestLoginUser_SucessoGeraTokenValido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, userRepo := newAuthService(ctrl)

	user := &domain.User{
		ID:           7,
		Name:         "Maria Souza",
		Email:        "maria@empresa.com",
		PasswordHash: hashPassword(t, "senha-forte"),
		Active:       true,
		RoleID:       2,
	}

	// o email é normalizado antes da consulta
	userRepo.EXPECT().GetUserByEmail("maria@empresa.com").Return(user, nil)

	token, err := service.LoginUser("  Maria@Empresa.com ", "senha-forte")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "Maria Souza", claims.UserName)
	assert.Equal(t, "maria@empresa.com", claims.UserEmail)
	assert.Equal(t, 2, claims.UserRoleID)
	assert.True(t, claims.UserActive)
}

func TestLoginUser_Falhas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name        string
		email       string
		password    string
		setup       func(userRepo *mocks.MockUserRepository)
		expectedErr error
	}{
		{
			name:        "Email vazio",
			email:       "",
			password:    "senha",
			setup:       func(userRepo *mocks.MockUserRepository) {},
			expectedErr: ErrMissingRequiredData,
		},
		{
			name:     "Usuário não encontrado",
			email:    "nao-existe@empresa.com",
			password: "senha",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("nao-existe@empresa.com").Return(nil, nil)
			},
			expectedErr: ErrUserNotFound,
		},
		{
			name:     "Conta desativada",
			email:    "inativa@empresa.com",
			password: "senha",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("inativa@empresa.com").Return(&domain.User{
					ID:           3,
					Email:        "inativa@empresa.com",
					PasswordHash: hashPassword(t, "senha"),
					Active:       false,
				}, nil)
			},
			expectedErr: ErrUserDisabled,
		},
		{
			name:     "Senha incorreta",
			email:    "maria@empresa.com",
			password: "senha-errada",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("maria@empresa.com").Return(&domain.User{
					ID:           7,
					Email:        "maria@empresa.com",
					PasswordHash: hashPassword(t, "senha-certa"),
					Active:       true,
				}, nil)
			},
			expectedErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo := newAuthService(ctrl)
			tt.setup(userRepo)

			token, err := service.LoginUser(tt.email, tt.password)

			assert.Empty(t, token)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestValidateToken_TokenAssinadoComOutraChaveEhRejeitado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	issuer := NewService(userRepo, &config.Config{SecretKey: "outra-chave"})
	validator := NewService(userRepo, &config.Config{SecretKey: testSecretKey})

	user := &domain.User{
		ID:           7,
		Email:        "maria@empresa.com",
		PasswordHash: hashPassword(t, "senha"),
		Active:       true,
	}
	userRepo.EXPECT().GetUserByEmail("maria@empresa.com").Return(user, nil)

	token, err := issuer.LoginUser("maria@empresa.com", "senha")
	require.NoError(t, err)

	claims, err := validator.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestGetUserProfile_NuncaExpoeOHashDeSenha(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, userRepo := newAuthService(ctrl)

	userRepo.EXPECT().GetUserByID(7).Return(&domain.User{
		ID:           7,
		Name:         "Maria Souza",
		PasswordHash: hashPassword(t, "senha"),
		Active:       true,
	}, nil)

	profile, err := service.GetUserProfile(7)
	require.NoError(t, err)
	assert.Empty(t, profile.PasswordHash)
}

func TestGetUserProfile_UsuarioInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, userRepo := newAuthService(ctrl)
	userRepo.EXPECT().GetUserByID(99).Return(nil, nil)

	profile, err := service.GetUserProfile(99)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUserProfile_ErroDeBancoEhPropagado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, userRepo := newAuthService(ctrl)
	dbErr := errors.New("conexão recusada")
	userRepo.EXPECT().GetUserByID(7).Return(nil, dbErr)

	profile, err := service.GetUserProfile(7)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, dbErr)
}
