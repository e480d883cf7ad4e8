package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/wb-dev/mayoreo-api/internal/domain/entity"
	"github.com/wb-dev/mayoreo-api/internal/domain/repository"
)

var _ repository.TeamRepository = (*TeamRepo)(nil)

// TeamRepo implementación de TeamRepository.
type TeamRepo struct {
	q Querier
}

// NewTeamRepository construye el adaptador.
func NewTeamRepository(q Querier) *TeamRepo {
	return &TeamRepo{q: q}
}

func scanTeam(row pgx.Row) (*entity.SalesTeam, error) {
	var t entity.SalesTeam
	err := row.Scan(&t.ID, &t.CompanyID, &t.Name, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetByID obtiene un equipo de ventas por ID.
func (r *TeamRepo) GetByID(id string) (*entity.SalesTeam, error) {
	query := `SELECT id, company_id, name, created_at, updated_at FROM sales_teams WHERE id = $1`
	t, err := scanTeam(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales_team: %w", err)
	}
	return t, nil
}

// FindByName busca el equipo por nombre dentro de la empresa.
func (r *TeamRepo) FindByName(companyID, name string) (*entity.SalesTeam, error) {
	query := `SELECT id, company_id, name, created_at, updated_at
		FROM sales_teams WHERE company_id = $1 AND name = $2`
	t, err := scanTeam(r.q.QueryRow(context.Background(), query, companyID, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find sales_team: %w", err)
	}
	return t, nil
}
