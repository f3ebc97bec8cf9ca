package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-eventos/internal/application/dto"
	"github.com/tu-usuario/crm-eventos/internal/application/usecase"
	"github.com/tu-usuario/crm-eventos/internal/domain"
	"github.com/tu-usuario/crm-eventos/pkg/password"
)

func TestUserList_SoloGestion(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo(gestionUser(), commercialUser()), nil)

	list, err := uc.List(gestionUser())
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = uc.List(commercialUser())
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = uc.List(supportUser())
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = uc.List(nil)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestUserCreate_HasheaElPassword(t *testing.T) {
	repo := newFakeUserRepo()
	sink := &recordingAudit{}
	uc := usecase.NewUserUseCase(repo, sink)

	out, err := uc.Create(gestionUser(), dto.CreateUserRequest{
		Email:    "nuevo@crm.test",
		Password: "secreto123",
		FullName: "Nuevo Usuario",
		Role:     "SUPPORT",
	})
	require.NoError(t, err)

	stored, err := repo.GetByEmail("nuevo@crm.test")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.PasswordHash, "el password nunca se persiste en claro")
	assert.True(t, password.Verify("secreto123", stored.PasswordHash))
	assert.Equal(t, "SUPPORT", out.Role)
	assert.Contains(t, sink.events, "user_created")
}

func TestUserCreate_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, nil)

	in := dto.CreateUserRequest{
		Email:    "ana@crm.test",
		Password: "secreto123",
		FullName: "Ana",
		Role:     "COMMERCIAL",
	}
	_, err := uc.Create(gestionUser(), in)
	require.NoError(t, err)

	_, err = uc.Create(gestionUser(), in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserCreate_SoloGestion(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo(), nil)
	in := dto.CreateUserRequest{Email: "x@crm.test", Password: "secreto123", FullName: "X", Role: "SUPPORT"}

	_, err := uc.Create(commercialUser(), in)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = uc.Create(supportUser(), in)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUserCreate_RolInvalido(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo(), nil)

	_, err := uc.Create(gestionUser(), dto.CreateUserRequest{
		Email:    "x@crm.test",
		Password: "secreto123",
		FullName: "X",
		Role:     "ADMIN", // fuera del conjunto cerrado
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
