package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-eventos/internal/application/dto"
	"github.com/tu-usuario/crm-eventos/internal/application/usecase"
	"github.com/tu-usuario/crm-eventos/internal/domain"
	"github.com/tu-usuario/crm-eventos/internal/domain/entity"
)

func contractOwnedBy(commercialID string, signed bool) *entity.Contract {
	return &entity.Contract{
		ID:                  "contract-1",
		ClientID:            "client-1",
		CommercialContactID: commercialID,
		TotalAmount:         decimal.NewFromInt(10000),
		RemainingAmount:     decimal.NewFromInt(2500),
		IsSigned:            signed,
	}
}

func TestContractCreate_SoloGestion(t *testing.T) {
	uc := usecase.NewContractUseCase(newFakeContractRepo(), newFakeClientRepo(clientOwnedBy("commercial-1")), nil)
	in := dto.CreateContractRequest{ClientID: "client-1", TotalAmount: decimal.NewFromInt(100)}

	_, err := uc.Create(commercialUser(), in)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = uc.Create(supportUser(), in)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestContractCreate_ClienteInexistente(t *testing.T) {
	uc := usecase.NewContractUseCase(newFakeContractRepo(), newFakeClientRepo(), nil)

	_, err := uc.Create(gestionUser(), dto.CreateContractRequest{
		ClientID:    "no-existe",
		TotalAmount: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContractCreate_RemainingPorDefectoEsTotal(t *testing.T) {
	sink := &recordingAudit{}
	uc := usecase.NewContractUseCase(newFakeContractRepo(), newFakeClientRepo(clientOwnedBy("commercial-1")), sink)

	out, err := uc.Create(gestionUser(), dto.CreateContractRequest{
		ClientID:    "client-1",
		TotalAmount: decimal.NewFromInt(15000),
	})
	require.NoError(t, err)
	assert.True(t, out.RemainingAmount.Equal(decimal.NewFromInt(15000)),
		"remaining_amount sin especificar debe igualar total_amount")
	assert.False(t, out.IsSigned, "un contrato nuevo nunca nace firmado")
	// El propietario es el comercial actual del cliente (snapshot).
	assert.Equal(t, "commercial-1", out.CommercialContactID)
	assert.Contains(t, sink.events, "contract_created")
}

func TestContractCreate_ImporteNoPositivo(t *testing.T) {
	uc := usecase.NewContractUseCase(newFakeContractRepo(), newFakeClientRepo(clientOwnedBy("commercial-1")), nil)

	_, err := uc.Create(gestionUser(), dto.CreateContractRequest{
		ClientID:    "client-1",
		TotalAmount: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestContractSign_PropietarioFirma(t *testing.T) {
	repo := newFakeContractRepo(contractOwnedBy(commercialUser().ID, false))
	sink := &recordingAudit{}
	uc := usecase.NewContractUseCase(repo, newFakeClientRepo(), sink)

	out, err := uc.Sign(commercialUser(), "contract-1")
	require.NoError(t, err)
	assert.True(t, out.IsSigned)
	assert.Contains(t, sink.events, "contract_signed")
}

// La firma es monótona: false -> true exactamente una vez.
func TestContractSign_SegundaFirmaFalla(t *testing.T) {
	repo := newFakeContractRepo(contractOwnedBy(commercialUser().ID, false))
	uc := usecase.NewContractUseCase(repo, newFakeClientRepo(), nil)

	_, err := uc.Sign(commercialUser(), "contract-1")
	require.NoError(t, err)

	_, err = uc.Sign(commercialUser(), "contract-1")
	assert.ErrorIs(t, err, domain.ErrAlreadySigned)

	stored, err := repo.GetByID("contract-1")
	require.NoError(t, err)
	assert.True(t, stored.IsSigned, "la firma nunca se revierte")
}

// Guard explícito: SUPPORT nunca firma, antes incluso del chequeo de propiedad.
func TestContractSign_SupportBloqueado(t *testing.T) {
	uc := usecase.NewContractUseCase(newFakeContractRepo(contractOwnedBy(commercialUser().ID, false)), newFakeClientRepo(), nil)

	_, err := uc.Sign(supportUser(), "contract-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestContractSign_ComercialNoPropietarioBloqueado(t *testing.T) {
	uc := usecase.NewContractUseCase(newFakeContractRepo(contractOwnedBy("commercial-2", false)), newFakeClientRepo(), nil)

	_, err := uc.Sign(commercialUser(), "contract-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestContractSign_GestionFirmaSinSerPropietario(t *testing.T) {
	uc := usecase.NewContractUseCase(newFakeContractRepo(contractOwnedBy("commercial-2", false)), newFakeClientRepo(), nil)

	out, err := uc.Sign(gestionUser(), "contract-1")
	require.NoError(t, err)
	assert.True(t, out.IsSigned)
}

func TestContractListUnsignedYUnpaid(t *testing.T) {
	unsigned := contractOwnedBy("commercial-1", false)
	paid := &entity.Contract{
		ID: "contract-2", ClientID: "client-1", CommercialContactID: "commercial-1",
		TotalAmount: decimal.NewFromInt(500), RemainingAmount: decimal.Zero, IsSigned: true,
	}
	uc := usecase.NewContractUseCase(newFakeContractRepo(unsigned, paid), newFakeClientRepo(), nil)

	unsignedList, err := uc.ListUnsigned(supportUser())
	require.NoError(t, err)
	require.Len(t, unsignedList, 1)
	assert.Equal(t, "contract-1", unsignedList[0].ID)

	unpaidList, err := uc.ListUnpaid(supportUser())
	require.NoError(t, err)
	require.Len(t, unpaidList, 1)
	assert.Equal(t, "contract-1", unpaidList[0].ID)

	_, err = uc.List(nil)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
