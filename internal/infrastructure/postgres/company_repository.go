package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	db Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(db Querier) *CompanyRepo {
	return &CompanyRepo{db: db}
}

const companyColumns = `id, user_id, company_name, industry, company_size, website,
	description, address, city, state, country, logo_url, created_at, updated_at`

// Create persiste un nuevo perfil de empresa. El UNIQUE sobre user_id
// garantiza un perfil por usuario.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.UserID, c.CompanyName, c.Industry, c.CompanySize, c.Website,
		c.Description, c.Address, c.City, c.State, c.Country, c.LogoURL,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	return scanCompany(r.db.QueryRow(ctx, query, id), "get company by id")
}

// GetByUserID obtiene el perfil de empresa de un usuario.
func (r *CompanyRepo) GetByUserID(ctx context.Context, userID string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE user_id = $1`
	return scanCompany(r.db.QueryRow(ctx, query, userID), "get company by user")
}

// Update actualiza el perfil de empresa (solo llega aquí el dueño).
func (r *CompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	query := `
		UPDATE companies SET company_name = $2, industry = $3, company_size = $4,
			website = $5, description = $6, address = $7, city = $8, state = $9,
			country = $10, logo_url = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.CompanyName, c.Industry, c.CompanySize, c.Website, c.Description,
		c.Address, c.City, c.State, c.Country, c.LogoURL, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// List lista todas las empresas (vista de administración).
func (r *CompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.CompanyName, &c.Industry, &c.CompanySize, &c.Website,
			&c.Description, &c.Address, &c.City, &c.State, &c.Country, &c.LogoURL,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func scanCompany(row pgx.Row, op string) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(
		&c.ID, &c.UserID, &c.CompanyName, &c.Industry, &c.CompanySize, &c.Website,
		&c.Description, &c.Address, &c.City, &c.State, &c.Country, &c.LogoURL,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}
