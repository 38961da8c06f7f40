package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Planta-api/internal/application/auth"
	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Planta-api/pkg/jwt"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func buildUseCase() (*auth.UseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		ExpMinutes: 60,
		Issuer:     "planta-api-test",
	})
	return uc, repo
}

func TestRegister_HasheaElPassword(t *testing.T) {
	uc, repo := buildUseCase()

	user, err := uc.Register(dto.RegisterRequest{
		Email:    "operador@planta.local",
		FullName: "Ana Pérez",
		Password: "secreto-largo",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)

	stored := repo.byEmail["operador@planta.local"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto-largo", stored.PasswordHash, "el password nunca se guarda plano")
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := buildUseCase()

	in := dto.RegisterRequest{Email: "a@planta.local", FullName: "A", Password: "secreto-largo"}
	_, err := uc.Register(in)
	require.NoError(t, err)

	_, err = uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_PasswordCorto(t *testing.T) {
	uc, _ := buildUseCase()

	_, err := uc.Register(dto.RegisterRequest{Email: "a@planta.local", FullName: "A", Password: "corto"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_EmiteTokenConIdentidad(t *testing.T) {
	uc, _ := buildUseCase()

	registered, err := uc.Register(dto.RegisterRequest{
		Email:    "operador@planta.local",
		FullName: "Ana Pérez",
		Password: "secreto-largo",
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "operador@planta.local", Password: "secreto-largo"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, out.User.ID)

	userID, fullName, err := pkgjwt.Parse("test-secret-key-for-unit-tests", out.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
	assert.Equal(t, "Ana Pérez", fullName)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _ := buildUseCase()

	_, err := uc.Register(dto.RegisterRequest{Email: "a@planta.local", FullName: "A", Password: "secreto-largo"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "a@planta.local", Password: "equivocado"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@planta.local", Password: "secreto-largo"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
