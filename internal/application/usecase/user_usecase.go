package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/realtime"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
	"github.com/tu-usuario/almacen-api/internal/domain/role"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase reglas de negocio para usuarios: registro, actualización con
// control de cambio de rol, soft delete y cambio de contraseña.
type UserUseCase struct {
	repo     repository.UserRepository
	notifier realtime.Notifier
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, notifier realtime.Notifier) *UserUseCase {
	if notifier == nil {
		notifier = realtime.NopNotifier{}
	}
	return &UserUseCase{repo: repo, notifier: notifier}
}

// List lista los usuarios activos (los desactivados se excluyen del índice).
func (uc *UserUseCase) List(ctx context.Context) ([]*dto.UserResponse, error) {
	users, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.ToUserResponse(u))
	}
	return out, nil
}

// Get obtiene un usuario por id; incluye desactivados (consultables por id directo).
// Devuelve (nil, nil) si no existe.
func (uc *UserUseCase) Get(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}

// Create registra un usuario. callerRole es el rol del llamador autenticado, o
// vacío para registro público. Un admin no puede crear admins ni superadmins
// (ErrForbidden -> 403); sin rol solicitado se asigna "user".
func (uc *UserUseCase) Create(ctx context.Context, callerRole role.Role, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "es requerido")
	}
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		return nil, domain.NewValidationError("email", "es requerido y debe ser válido")
	}
	if len(in.Password) < 8 {
		return nil, domain.NewValidationError("password", "debe tener al menos 8 caracteres")
	}

	requested := role.Role(in.Role)
	if requested == "" {
		requested = role.User
	}
	if !requested.Valid() {
		return nil, domain.NewValidationError("role", "rol desconocido")
	}
	if !role.CanAssignAtCreate(callerRole, requested) {
		return nil, domain.ErrForbidden
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         string(requested),
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	out := dto.ToUserResponse(user)
	uc.notifier.Saved("user", out)
	return out, nil
}

// Update aplica un merge superficial sobre el usuario. El payload no puede
// tocar id ni password (la forma del DTO los excluye). Si incluye un cambio
// de rol, la tabla de decisión role.CanChange gobierna el permiso: la
// negación corta antes de cualquier persistencia (ErrUnauthorized -> 401).
func (uc *UserUseCase) Update(ctx context.Context, callerRole role.Role, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	if in.Role != nil && *in.Role != user.Role {
		requested := role.Role(*in.Role)
		if !requested.Valid() {
			return nil, domain.NewValidationError("role", "rol desconocido")
		}
		if !role.CanChange(callerRole, role.Role(user.Role), requested) {
			return nil, domain.ErrUnauthorized
		}
		user.Role = string(requested)
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.NewValidationError("name", "no puede quedar vacío")
		}
		user.Name = *in.Name
	}
	if in.Email != nil {
		if !strings.Contains(*in.Email, "@") {
			return nil, domain.NewValidationError("email", "debe ser válido")
		}
		user.Email = *in.Email
	}
	if in.Active != nil {
		user.Active = *in.Active
	}
	user.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	out := dto.ToUserResponse(user)
	uc.notifier.Saved("user", out)
	return out, nil
}

// Destroy desactiva un usuario (soft delete: active=false). El registro sigue
// siendo consultable por id; desaparece del índice. Un admin no puede
// desactivar admins ni superadmins (ErrForbidden -> 403).
func (uc *UserUseCase) Destroy(ctx context.Context, callerRole role.Role, id string) error {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if !role.CanDestroy(callerRole, role.Role(user.Role)) {
		return domain.ErrForbidden
	}
	user.Active = false
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return err
	}
	uc.notifier.Removed("user", user.ID)
	return nil
}

// ChangePassword verifica la contraseña anterior y persiste la nueva (re-hash
// bcrypt). Contraseña anterior incorrecta -> ErrForbidden (403) sin mutación.
func (uc *UserUseCase) ChangePassword(ctx context.Context, id string, in dto.ChangePasswordRequest) error {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.OldPassword)); err != nil {
		return domain.ErrForbidden
	}
	if len(in.NewPassword) < 8 {
		return domain.NewValidationError("newPassword", "debe tener al menos 8 caracteres")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, user)
}
