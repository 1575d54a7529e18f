package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
	"github.com/jhoicas/Empleos-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users         []*entity.User
	getByEmailErr error
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	f.users = append(f.users, &cp)
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if f.getByEmailErr != nil {
		return nil, f.getByEmailErr
	}
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeRoleRepo struct {
	roles map[string]string // userID -> role
	err   error
}

func (f *fakeRoleRepo) Create(_ context.Context, a *entity.RoleAssignment) error {
	if f.roles == nil {
		f.roles = map[string]string{}
	}
	if _, ok := f.roles[a.UserID]; ok {
		return domain.ErrConflict
	}
	f.roles[a.UserID] = a.Role
	return nil
}

func (f *fakeRoleRepo) GetRoleByUserID(_ context.Context, userID string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.roles[userID], nil
}

type fakeProfileRepo struct {
	profiles []*entity.Profile
}

func (f *fakeProfileRepo) Create(_ context.Context, p *entity.Profile) error {
	cp := *p
	f.profiles = append(f.profiles, &cp)
	return nil
}

func (f *fakeProfileRepo) GetByUserID(_ context.Context, _ string) (*entity.Profile, error) {
	return nil, nil
}
func (f *fakeProfileRepo) Update(_ context.Context, _ *entity.Profile) error { return nil }
func (f *fakeProfileRepo) ListWithRole(_ context.Context) ([]repository.ProfileWithRole, error) {
	return nil, nil
}

// fakeTxRunner ejecuta el alta sin transacción real, contra los mismos fakes.
type fakeTxRunner struct {
	users    *fakeUserRepo
	roles    *fakeRoleRepo
	profiles *fakeProfileRepo
}

func (f *fakeTxRunner) RunRegistration(_ context.Context, fn func(
	users repository.UserRepository,
	roles repository.RoleRepository,
	profiles repository.ProfileRepository,
) error) error {
	return fn(f.users, f.roles, f.profiles)
}

func newAuthFixture() (*AuthUseCase, *fakeUserRepo, *fakeRoleRepo, *fakeProfileRepo) {
	users := &fakeUserRepo{}
	roles := &fakeRoleRepo{roles: map[string]string{}}
	profiles := &fakeProfileRepo{}
	resolver := NewRoleResolver(roles, logger.Nop())
	uc := NewAuthUseCase(users, resolver, &fakeTxRunner{users, roles, profiles}, JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "empleos-api-test",
	})
	return uc, users, roles, profiles
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterCreaUsuarioRolYPerfil(t *testing.T) {
	uc, users, roles, profiles := newAuthFixture()

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "ana@mail.com",
		Password: "supersecreta",
		FullName: "Ana Gómez",
		Role:     entity.RoleApplicant,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "ana@mail.com", out.User.Email)
	assert.Equal(t, entity.RoleApplicant, out.Role)

	require.Len(t, users.users, 1)
	assert.NotEqual(t, "supersecreta", users.users[0].PasswordHash, "el password nunca se guarda en claro")
	assert.Equal(t, entity.RoleApplicant, roles.roles[users.users[0].ID])
	require.Len(t, profiles.profiles, 1)
	assert.Equal(t, "Ana Gómez", profiles.profiles[0].FullName)
}

func TestRegisterRolInvalidoFalla(t *testing.T) {
	uc, users, _, _ := newAuthFixture()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "x@mail.com", Password: "supersecreta", FullName: "X", Role: "superuser",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
	assert.Empty(t, users.users)
}

func TestRegisterEmailDuplicadoFalla(t *testing.T) {
	uc, _, _, _ := newAuthFixture()

	in := dto.RegisterRequest{Email: "ana@mail.com", Password: "supersecreta", FullName: "Ana", Role: entity.RoleCompany}
	_, err := uc.Register(context.Background(), in)
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Una falla transitoria al consultar el email no debe leerse como "email
// libre": el registro se aborta y no se crea ningún usuario.
func TestRegisterFallaDeLecturaAbortaRegistro(t *testing.T) {
	uc, users, _, _ := newAuthFixture()
	users.getByEmailErr = assert.AnError

	in := dto.RegisterRequest{Email: "ana@mail.com", Password: "supersecreta", FullName: "Ana", Role: entity.RoleApplicant}
	_, err := uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, users.users, "no debe llegar al Create")
}

// ──────────────────────────────────────────────────────────────────────────────
// Login / Me
// ──────────────────────────────────────────────────────────────────────────────

func seedUser(t *testing.T, users *fakeUserRepo, roles *fakeRoleRepo, email, password, role string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{ID: "user-" + email, Email: email, PasswordHash: string(hash), Status: "active"}
	users.users = append(users.users, u)
	if role != "" {
		roles.roles[u.ID] = role
	}
	return u
}

func TestLoginResuelveRol(t *testing.T) {
	uc, users, roles, _ := newAuthFixture()
	seedUser(t, users, roles, "ana@mail.com", "supersecreta", entity.RoleCompany)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@mail.com", Password: "supersecreta"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleCompany, out.Role)
}

func TestLoginPasswordIncorrecto(t *testing.T) {
	uc, users, roles, _ := newAuthFixture()
	seedUser(t, users, roles, "ana@mail.com", "supersecreta", entity.RoleCompany)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@mail.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLoginUsuarioInexistente(t *testing.T) {
	uc, _, _, _ := newAuthFixture()

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@mail.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLoginCuentaInactiva(t *testing.T) {
	uc, users, roles, _ := newAuthFixture()
	u := seedUser(t, users, roles, "ana@mail.com", "supersecreta", entity.RoleCompany)
	u.Status = "suspended"

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@mail.com", Password: "supersecreta"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestMeDegradaASinRolCuandoLaConsultaFalla(t *testing.T) {
	uc, users, roles, _ := newAuthFixture()
	u := seedUser(t, users, roles, "ana@mail.com", "supersecreta", entity.RoleAdmin)
	roles.err = assert.AnError

	out, err := uc.Me(context.Background(), u.ID)
	require.NoError(t, err, "el fallo de rol no tumba la sesión")
	assert.Empty(t, out.Role, "fallo de resolución degrada a sin rol, nunca hereda uno previo")
}

func TestMeUsuarioInexistente(t *testing.T) {
	uc, _, _, _ := newAuthFixture()

	_, err := uc.Me(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
