package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-eventos/internal/application/audit"
	"github.com/tu-usuario/crm-eventos/internal/application/dto"
	"github.com/tu-usuario/crm-eventos/internal/domain"
	"github.com/tu-usuario/crm-eventos/internal/domain/entity"
	"github.com/tu-usuario/crm-eventos/internal/domain/permission"
	"github.com/tu-usuario/crm-eventos/internal/domain/repository"
)

// ClientUseCase operaciones sobre clientes de la cartera.
type ClientUseCase struct {
	repo     repository.ClientRepository
	recorder audit.Recorder
}

// NewClientUseCase construye el caso de uso con el puerto de persistencia.
func NewClientUseCase(repo repository.ClientRepository, recorder audit.Recorder) *ClientUseCase {
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}
	return &ClientUseCase{repo: repo, recorder: recorder}
}

// List devuelve todos los clientes (cualquier usuario autenticado).
func (uc *ClientUseCase) List(caller *entity.User) ([]*dto.ClientResponse, error) {
	if err := permission.RequireAuthenticated(caller); err != nil {
		return nil, err
	}
	clients, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toClientResponses(clients), nil
}

// ListMine devuelve los clientes del comercial que llama (COMMERCIAL únicamente).
func (uc *ClientUseCase) ListMine(caller *entity.User) ([]*dto.ClientResponse, error) {
	if err := permission.RequireRole(caller, entity.RoleCommercial); err != nil {
		return nil, err
	}
	clients, err := uc.repo.ListByCommercial(caller.ID)
	if err != nil {
		return nil, err
	}
	return toClientResponses(clients), nil
}

// Create crea un cliente (COMMERCIAL únicamente); el caller queda como propietario.
func (uc *ClientUseCase) Create(caller *entity.User, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if err := permission.RequireRole(caller, entity.RoleCommercial); err != nil {
		return nil, err
	}
	if in.FullName == "" || in.Email == "" || in.Phone == "" {
		return nil, domain.ErrValidation
	}
	now := time.Now()
	client := &entity.Client{
		ID:                  uuid.New().String(),
		FullName:            in.FullName,
		Email:               in.Email,
		Phone:               in.Phone,
		CompanyName:         in.CompanyName,
		CommercialContactID: caller.ID,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.repo.Create(client); err != nil {
		uc.recorder.RecordError(err, map[string]interface{}{"action": "create_client", "email": in.Email})
		return nil, err
	}
	uc.recorder.RecordEvent("client_created", map[string]interface{}{
		"client_id":  client.ID,
		"created_by": caller.ID,
	})
	return toClientResponse(client), nil
}

// Update actualiza parcialmente un cliente: solo los campos no vacíos
// sobreescriben. SUPPORT está bloqueado explícitamente; después aplica
// propietario-o-GESTION sobre el comercial del cliente.
func (uc *ClientUseCase) Update(caller *entity.User, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if err := permission.RequireAuthenticated(caller); err != nil {
		return nil, err
	}
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	// Guard explícito: SUPPORT nunca modifica clientes, aunque un cambio de
	// esquema futuro hiciera pasar el chequeo de propiedad.
	if caller.Role == entity.RoleSupport {
		return nil, domain.ErrForbidden
	}
	if err := permission.RequireOwnerOrGestion(caller, client.CommercialContactID); err != nil {
		return nil, err
	}
	// Validar y aplicar después de todos los chequeos: ninguna mutación
	// parcial llega al repo si algo falla antes.
	if in.FullName != "" {
		client.FullName = in.FullName
	}
	if in.Email != "" {
		client.Email = in.Email
	}
	if in.Phone != "" {
		client.Phone = in.Phone
	}
	if in.CompanyName != "" {
		client.CompanyName = in.CompanyName
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		uc.recorder.RecordError(err, map[string]interface{}{"action": "update_client", "client_id": id})
		return nil, err
	}
	uc.recorder.RecordEvent("client_updated", map[string]interface{}{
		"client_id":  client.ID,
		"updated_by": caller.ID,
	})
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente por id (cualquier usuario autenticado).
func (uc *ClientUseCase) GetByID(caller *entity.User, id string) (*dto.ClientResponse, error) {
	if err := permission.RequireAuthenticated(caller); err != nil {
		return nil, err
	}
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:                  c.ID,
		FullName:            c.FullName,
		Email:               c.Email,
		Phone:               c.Phone,
		CompanyName:         c.CompanyName,
		CommercialContactID: c.CommercialContactID,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func toClientResponses(clients []*entity.Client) []*dto.ClientResponse {
	out := make([]*dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, toClientResponse(c))
	}
	return out
}
