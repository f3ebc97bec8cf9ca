package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/crm-eventos/internal/application/audit"
	"github.com/tu-usuario/crm-eventos/internal/application/dto"
	"github.com/tu-usuario/crm-eventos/internal/domain"
	"github.com/tu-usuario/crm-eventos/internal/domain/entity"
	"github.com/tu-usuario/crm-eventos/internal/domain/permission"
	"github.com/tu-usuario/crm-eventos/internal/domain/repository"
)

// ContractUseCase operaciones sobre contratos.
type ContractUseCase struct {
	repo       repository.ContractRepository
	clientRepo repository.ClientRepository
	recorder   audit.Recorder
}

// NewContractUseCase construye el caso de uso con los puertos de persistencia.
func NewContractUseCase(repo repository.ContractRepository, clientRepo repository.ClientRepository, recorder audit.Recorder) *ContractUseCase {
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}
	return &ContractUseCase{repo: repo, clientRepo: clientRepo, recorder: recorder}
}

// List devuelve todos los contratos (cualquier usuario autenticado).
func (uc *ContractUseCase) List(caller *entity.User) ([]*dto.ContractResponse, error) {
	if err := permission.RequireAuthenticated(caller); err != nil {
		return nil, err
	}
	contracts, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toContractResponses(contracts), nil
}

// ListUnsigned devuelve los contratos sin firmar.
func (uc *ContractUseCase) ListUnsigned(caller *entity.User) ([]*dto.ContractResponse, error) {
	if err := permission.RequireAuthenticated(caller); err != nil {
		return nil, err
	}
	contracts, err := uc.repo.ListUnsigned()
	if err != nil {
		return nil, err
	}
	return toContractResponses(contracts), nil
}

// ListUnpaid devuelve los contratos con importe pendiente (> 0).
func (uc *ContractUseCase) ListUnpaid(caller *entity.User) ([]*dto.ContractResponse, error) {
	if err := permission.RequireAuthenticated(caller); err != nil {
		return nil, err
	}
	contracts, err := uc.repo.ListUnpaid()
	if err != nil {
		return nil, err
	}
	return toContractResponses(contracts), nil
}

// Create crea un contrato (GESTION únicamente). El propietario es el comercial
// actual del cliente, copiado como snapshot: si el cliente cambiara de
// comercial más adelante, el contrato conserva el original.
func (uc *ContractUseCase) Create(caller *entity.User, in dto.CreateContractRequest) (*dto.ContractResponse, error) {
	if err := permission.RequireRole(caller, entity.RoleGestion); err != nil {
		return nil, err
	}
	if in.TotalAmount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrValidation
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	remaining := in.TotalAmount
	if in.RemainingAmount != nil {
		remaining = *in.RemainingAmount
	}
	now := time.Now()
	contract := &entity.Contract{
		ID:                  uuid.New().String(),
		ClientID:            client.ID,
		CommercialContactID: client.CommercialContactID,
		TotalAmount:         in.TotalAmount,
		RemainingAmount:     remaining,
		IsSigned:            false,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.repo.Create(contract); err != nil {
		uc.recorder.RecordError(err, map[string]interface{}{"action": "create_contract", "client_id": in.ClientID})
		return nil, err
	}
	uc.recorder.RecordEvent("contract_created", map[string]interface{}{
		"contract_id": contract.ID,
		"client_id":   contract.ClientID,
		"created_by":  caller.ID,
	})
	return toContractResponse(contract), nil
}

// Sign firma un contrato. SUPPORT está bloqueado explícitamente; después
// aplica propietario-o-GESTION. La firma es monótona: un contrato ya firmado
// devuelve ErrAlreadySigned, nunca se re-firma ni se revierte.
func (uc *ContractUseCase) Sign(caller *entity.User, id string) (*dto.ContractResponse, error) {
	if err := permission.RequireAuthenticated(caller); err != nil {
		return nil, err
	}
	contract, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, domain.ErrNotFound
	}
	// Guard explícito además del chequeo de propiedad: SUPPORT nunca firma.
	if caller.Role == entity.RoleSupport {
		return nil, domain.ErrForbidden
	}
	if err := permission.RequireOwnerOrGestion(caller, contract.CommercialContactID); err != nil {
		return nil, err
	}
	if contract.IsSigned {
		return nil, domain.ErrAlreadySigned
	}
	contract.IsSigned = true
	contract.UpdatedAt = time.Now()
	if err := uc.repo.Update(contract); err != nil {
		uc.recorder.RecordError(err, map[string]interface{}{"action": "sign_contract", "contract_id": id})
		return nil, err
	}
	uc.recorder.RecordEvent("contract_signed", map[string]interface{}{
		"contract_id": contract.ID,
		"signed_by":   caller.ID,
	})
	return toContractResponse(contract), nil
}

// GetByID obtiene un contrato por id (cualquier usuario autenticado).
func (uc *ContractUseCase) GetByID(caller *entity.User, id string) (*dto.ContractResponse, error) {
	if err := permission.RequireAuthenticated(caller); err != nil {
		return nil, err
	}
	contract, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, domain.ErrNotFound
	}
	return toContractResponse(contract), nil
}

func toContractResponse(c *entity.Contract) *dto.ContractResponse {
	if c == nil {
		return nil
	}
	return &dto.ContractResponse{
		ID:                  c.ID,
		ClientID:            c.ClientID,
		CommercialContactID: c.CommercialContactID,
		TotalAmount:         c.TotalAmount,
		RemainingAmount:     c.RemainingAmount,
		IsSigned:            c.IsSigned,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func toContractResponses(contracts []*entity.Contract) []*dto.ContractResponse {
	out := make([]*dto.ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		out = append(out, toContractResponse(c))
	}
	return out
}
