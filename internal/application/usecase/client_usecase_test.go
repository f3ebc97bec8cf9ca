package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-eventos/internal/application/dto"
	"github.com/tu-usuario/crm-eventos/internal/application/usecase"
	"github.com/tu-usuario/crm-eventos/internal/domain"
	"github.com/tu-usuario/crm-eventos/internal/domain/entity"
)

func clientOwnedBy(commercialID string) *entity.Client {
	return &entity.Client{
		ID:                  "client-1",
		FullName:            "Cliente Uno",
		Email:               "cliente@empresa.test",
		Phone:               "+34600000000",
		CommercialContactID: commercialID,
	}
}

func TestClientCreate_ElCallerQuedaComoPropietario(t *testing.T) {
	repo := newFakeClientRepo()
	sink := &recordingAudit{}
	uc := usecase.NewClientUseCase(repo, sink)

	out, err := uc.Create(commercialUser(), dto.CreateClientRequest{
		FullName: "Cliente Nuevo",
		Email:    "nuevo@empresa.test",
		Phone:    "+34611111111",
	})
	require.NoError(t, err)
	assert.Equal(t, commercialUser().ID, out.CommercialContactID)
	assert.Contains(t, sink.events, "client_created")
}

func TestClientCreate_SoloCommercial(t *testing.T) {
	uc := usecase.NewClientUseCase(newFakeClientRepo(), nil)
	in := dto.CreateClientRequest{FullName: "C", Email: "c@e.test", Phone: "1"}

	_, err := uc.Create(gestionUser(), in)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = uc.Create(supportUser(), in)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = uc.Create(nil, in)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestClientListMine_FiltraPorComercial(t *testing.T) {
	mine := clientOwnedBy(commercialUser().ID)
	other := &entity.Client{ID: "client-2", FullName: "Otro", Email: "o@e.test", Phone: "2", CommercialContactID: "commercial-2"}
	uc := usecase.NewClientUseCase(newFakeClientRepo(mine, other), nil)

	list, err := uc.ListMine(commercialUser())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, mine.ID, list[0].ID)

	// "mis clientes" es una vista exclusiva de COMMERCIAL
	_, err = uc.ListMine(gestionUser())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestClientUpdate_SupportBloqueadoExplicitamente(t *testing.T) {
	uc := usecase.NewClientUseCase(newFakeClientRepo(clientOwnedBy(commercialUser().ID)), nil)

	_, err := uc.Update(supportUser(), "client-1", dto.UpdateClientRequest{Phone: "+34622222222"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestClientUpdate_ComercialNoPropietarioBloqueado(t *testing.T) {
	uc := usecase.NewClientUseCase(newFakeClientRepo(clientOwnedBy("commercial-2")), nil)

	_, err := uc.Update(commercialUser(), "client-1", dto.UpdateClientRequest{Phone: "+34622222222"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestClientUpdate_ActualizacionParcial(t *testing.T) {
	repo := newFakeClientRepo(clientOwnedBy(commercialUser().ID))
	sink := &recordingAudit{}
	uc := usecase.NewClientUseCase(repo, sink)

	// Solo phone: el resto de campos no se toca.
	out, err := uc.Update(commercialUser(), "client-1", dto.UpdateClientRequest{Phone: "+34633333333"})
	require.NoError(t, err)
	assert.Equal(t, "+34633333333", out.Phone)
	assert.Equal(t, "Cliente Uno", out.FullName)
	assert.Equal(t, "cliente@empresa.test", out.Email)
	assert.Contains(t, sink.events, "client_updated")
}

func TestClientUpdate_GestionPuedeSinSerPropietario(t *testing.T) {
	uc := usecase.NewClientUseCase(newFakeClientRepo(clientOwnedBy(commercialUser().ID)), nil)

	out, err := uc.Update(gestionUser(), "client-1", dto.UpdateClientRequest{FullName: "Renombrado"})
	require.NoError(t, err)
	assert.Equal(t, "Renombrado", out.FullName)
}

func TestClientUpdate_NoExiste(t *testing.T) {
	uc := usecase.NewClientUseCase(newFakeClientRepo(), nil)

	_, err := uc.Update(gestionUser(), "no-existe", dto.UpdateClientRequest{FullName: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClientList_RequiereAutenticacion(t *testing.T) {
	uc := usecase.NewClientUseCase(newFakeClientRepo(clientOwnedBy("c1")), nil)

	_, err := uc.List(nil)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	// Cualquier rol autenticado puede listar todos los clientes.
	list, err := uc.List(supportUser())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
