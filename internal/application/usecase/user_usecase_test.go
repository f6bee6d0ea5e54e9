package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/role"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeUserRepo repositorio en memoria para los tests del caso de uso.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) ListActive(_ context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.Active {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeNotifier registra los eventos publicados.
type fakeNotifier struct {
	saved   []string
	removed []string
}

func (n *fakeNotifier) Saved(entity string, _ any) { n.saved = append(n.saved, entity) }
func (n *fakeNotifier) Removed(entity, _ string)   { n.removed = append(n.removed, entity) }

func seedUser(t *testing.T, repo *fakeUserRepo, id, email, userRole, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	repo.users[id] = &entity.User{
		ID:           id,
		Name:         "Usuario " + id,
		Email:        email,
		PasswordHash: string(hash),
		Role:         userRole,
		Active:       true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_RegistroPublicoAsignaRolUser(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, nil)

	out, err := uc.Create(context.Background(), "", dto.CreateUserRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "contraseña-segura",
	})
	require.NoError(t, err)
	assert.Equal(t, "user", out.Role, "sin rol solicitado se asigna user")
	assert.True(t, out.Active)
	assert.NotEmpty(t, out.ID)
}

func TestCreate_AnonimoNoPuedeElevarse(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, nil)

	for _, requested := range []string{"admin", "superadmin"} {
		_, err := uc.Create(context.Background(), "", dto.CreateUserRequest{
			Name:     "Intruso",
			Email:    "intruso+" + requested + "@example.com",
			Password: "contraseña-segura",
			Role:     requested,
		})
		assert.ErrorIs(t, err, domain.ErrForbidden,
			"registro público no puede pedir rol %s", requested)
	}
	assert.Empty(t, repo.users, "ninguna creación debe haberse persistido")
}

func TestCreate_AdminNoPuedeCrearAdminsNiSuperadmins(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, nil)

	for _, requested := range []string{"admin", "superadmin"} {
		_, err := uc.Create(context.Background(), role.Admin, dto.CreateUserRequest{
			Name:     "Nuevo",
			Email:    "nuevo+" + requested + "@example.com",
			Password: "contraseña-segura",
			Role:     requested,
		})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	}
}

func TestCreate_SuperadminPuedeCrearCualquierRol(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, nil)

	for _, requested := range []string{"user", "admin", "superadmin"} {
		out, err := uc.Create(context.Background(), role.Superadmin, dto.CreateUserRequest{
			Name:     "Nuevo",
			Email:    "nuevo+" + requested + "@example.com",
			Password: "contraseña-segura",
			Role:     requested,
		})
		require.NoError(t, err)
		assert.Equal(t, requested, out.Role)
	}
}

func TestCreate_ValidacionesDeCampos(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, nil)

	cases := []struct {
		name string
		in   dto.CreateUserRequest
	}{
		{"sin nombre", dto.CreateUserRequest{Email: "a@b.com", Password: "12345678"}},
		{"email inválido", dto.CreateUserRequest{Name: "A", Email: "sin-arroba", Password: "12345678"}},
		{"password corta", dto.CreateUserRequest{Name: "A", Email: "a@b.com", Password: "corta"}},
		{"rol desconocido", dto.CreateUserRequest{Name: "A", Email: "a@b.com", Password: "12345678", Role: "gerente"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), role.Superadmin, tc.in)
			assert.True(t, domain.IsValidation(err), "debe ser error de validación, fue: %v", err)
		})
	}
}

func TestCreate_NoExponeElHashEnLaRespuesta(t *testing.T) {
	repo := newFakeUserRepo()
	notifier := &fakeNotifier{}
	uc := usecase.NewUserUseCase(repo, notifier)

	out, err := uc.Create(context.Background(), "", dto.CreateUserRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "contraseña-segura",
	})
	require.NoError(t, err)
	assert.NotContains(t, []string{out.Name, out.Email, out.Role}, "contraseña-segura")
	assert.Equal(t, []string{"user"}, notifier.saved, "debe publicarse user:save")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update — cambio de rol gobernado por la tabla de decisión
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_AdminPuedeBajarUserPeroNoElevarlo(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, nil)
	seedUser(t, repo, "u1", "u1@example.com", "user", "12345678")

	// user -> user (sin cambio real, permitido trivialmente)
	elevado := "admin"
	_, err := uc.Update(context.Background(), role.Admin, "u1", dto.UpdateUserRequest{Role: &elevado})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"admin no puede elevar un user a admin")

	got, _ := repo.GetByID(context.Background(), "u1")
	assert.Equal(t, "user", got.Role, "la negación no debe dejar mutación")
}

func TestUpdate_SuperadminPuedeCambiarCualquierRol(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, nil)
	seedUser(t, repo, "u1", "u1@example.com", "user", "12345678")

	nuevo := "superadmin"
	out, err := uc.Update(context.Background(), role.Superadmin, "u1", dto.UpdateUserRequest{Role: &nuevo})
	require.NoError(t, err)
	assert.Equal(t, "superadmin", out.Role)
}

func TestUpdate_MergeSuperficialSoloCamposPresentes(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, nil)
	seedUser(t, repo, "u1", "u1@example.com", "user", "12345678")

	nombre := "Renombrada"
	out, err := uc.Update(context.Background(), role.Superadmin, "u1", dto.UpdateUserRequest{Name: &nombre})
	require.NoError(t, err)
	assert.Equal(t, "Renombrada", out.Name)
	assert.Equal(t, "u1@example.com", out.Email, "los campos ausentes no cambian")
	assert.Equal(t, "user", out.Role)
}

func TestUpdate_NoExisteRetornaNotFound(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, nil)

	nombre := "X"
	_, err := uc.Update(context.Background(), role.Superadmin, "no-existe", dto.UpdateUserRequest{Name: &nombre})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Destroy — soft delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDestroy_SoftDelete_DesapareceDelIndicePeroSigueConsultable(t *testing.T) {
	repo := newFakeUserRepo()
	notifier := &fakeNotifier{}
	uc := usecase.NewUserUseCase(repo, notifier)
	seedUser(t, repo, "u1", "u1@example.com", "user", "12345678")

	require.NoError(t, uc.Destroy(context.Background(), role.Admin, "u1"))

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list, "el usuario desactivado no aparece en el índice")

	got, err := uc.Get(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, got, "el usuario desactivado sigue consultable por id")
	assert.False(t, got.Active)

	assert.Equal(t, []string{"user"}, notifier.removed, "debe publicarse user:remove")
}

func TestDestroy_AdminNoPuedeDesactivarAdminsNiSuperadmins(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, nil)
	seedUser(t, repo, "a1", "a1@example.com", "admin", "12345678")
	seedUser(t, repo, "s1", "s1@example.com", "superadmin", "12345678")

	assert.ErrorIs(t, uc.Destroy(context.Background(), role.Admin, "a1"), domain.ErrForbidden)
	assert.ErrorIs(t, uc.Destroy(context.Background(), role.Admin, "s1"), domain.ErrForbidden)

	a1, _ := repo.GetByID(context.Background(), "a1")
	assert.True(t, a1.Active, "la negación no debe desactivar al usuario")
}

func TestDestroy_SuperadminPuedeDesactivarAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, nil)
	seedUser(t, repo, "a1", "a1@example.com", "admin", "12345678")

	require.NoError(t, uc.Destroy(context.Background(), role.Superadmin, "a1"))
	a1, _ := repo.GetByID(context.Background(), "a1")
	assert.False(t, a1.Active)
}

func TestDestroy_NoExisteRetornaNotFound(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, nil)

	err := uc.Destroy(context.Background(), role.Superadmin, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// ChangePassword
// ──────────────────────────────────────────────────────────────────────────────

func TestChangePassword_VerificaLaAnterior(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, nil)
	seedUser(t, repo, "u1", "u1@example.com", "user", "anterior-123")

	err := uc.ChangePassword(context.Background(), "u1", dto.ChangePasswordRequest{
		OldPassword: "anterior-123",
		NewPassword: "nueva-contraseña",
	})
	require.NoError(t, err)

	got, _ := repo.GetByID(context.Background(), "u1")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.PasswordHash), []byte("nueva-contraseña")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(got.PasswordHash), []byte("anterior-123")))
}

func TestChangePassword_AnteriorIncorrectaEsForbiddenSinMutacion(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, nil)
	seedUser(t, repo, "u1", "u1@example.com", "user", "anterior-123")
	before, _ := repo.GetByID(context.Background(), "u1")

	err := uc.ChangePassword(context.Background(), "u1", dto.ChangePasswordRequest{
		OldPassword: "equivocada",
		NewPassword: "nueva-contraseña",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	after, _ := repo.GetByID(context.Background(), "u1")
	assert.Equal(t, before.PasswordHash, after.PasswordHash, "el hash no debe cambiar")
}

func TestChangePassword_NuevaMuyCortaEsValidacion(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, nil)
	seedUser(t, repo, "u1", "u1@example.com", "user", "anterior-123")

	err := uc.ChangePassword(context.Background(), "u1", dto.ChangePasswordRequest{
		OldPassword: "anterior-123",
		NewPassword: "corta",
	})
	assert.True(t, domain.IsValidation(err))

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "newPassword", verr.Field)
}
