package postgres

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleos-api/internal/domain/entity"
)

var companyRowColumns = []string{
	"id", "user_id", "company_name", "industry", "company_size", "website",
	"description", "address", "city", "state", "country", "logo_url",
	"created_at", "updated_at",
}

// Round-trip: lo que se inserta es exactamente lo que se lee de vuelta.
func TestCompanyRepoCreateYGetByUserID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCompanyRepository(mock)

	now := time.Now()
	c := &entity.Company{
		ID: "comp-1", UserID: "user-1", CompanyName: "Acme", Industry: "Tecnología",
		CompanySize: "11-50", Website: "https://acme.test", Description: "Hacemos software",
		Address: "Cra 7 # 1-23", City: "Bogotá", State: "Cundinamarca", Country: "Colombia",
		LogoURL: "https://acme.test/logo.png", CreatedAt: now, UpdatedAt: now,
	}

	mock.ExpectExec(`INSERT INTO companies`).
		WithArgs(c.ID, c.UserID, c.CompanyName, c.Industry, c.CompanySize, c.Website,
			c.Description, c.Address, c.City, c.State, c.Country, c.LogoURL,
			c.CreatedAt, c.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	mock.ExpectQuery(`FROM companies WHERE user_id`).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows(companyRowColumns).AddRow(
			c.ID, c.UserID, c.CompanyName, c.Industry, c.CompanySize, c.Website,
			c.Description, c.Address, c.City, c.State, c.Country, c.LogoURL,
			c.CreatedAt, c.UpdatedAt,
		))

	require.NoError(t, repo.Create(context.Background(), c))

	got, err := repo.GetByUserID(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, c, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepoGetByUserIDSinPerfilDevuelveNil(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCompanyRepository(mock)

	mock.ExpectQuery(`FROM companies WHERE user_id`).
		WithArgs("user-sin-perfil").
		WillReturnRows(pgxmock.NewRows(companyRowColumns))

	got, err := repo.GetByUserID(context.Background(), "user-sin-perfil")
	require.NoError(t, err)
	assert.Nil(t, got, "sin perfil se devuelve nil sin error: es el gate de crear-perfil-primero")
	assert.NoError(t, mock.ExpectationsWereMet())
}
