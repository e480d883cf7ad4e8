package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/wb-dev/mayoreo-api/internal/domain"
	"github.com/wb-dev/mayoreo-api/internal/domain/entity"
	"github.com/wb-dev/mayoreo-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository. Los grupos de permisos viven en
// la tabla user_groups (una fila por usuario/grupo) y se agregan con array_agg.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userSelect = `
	SELECT u.id, u.company_id, u.email, u.password_hash, u.name, u.status,
	       u.created_at, u.updated_at,
	       COALESCE(array_agg(g.group_name) FILTER (WHERE g.group_name IS NOT NULL), '{}')
	FROM users u
	LEFT JOIN user_groups g ON g.user_id = u.id`

const userGroupBy = ` GROUP BY u.id`

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.CompanyID, &u.Email, &u.PasswordHash, &u.Name, &u.Status,
		&u.CreatedAt, &u.UpdatedAt, &u.Groups,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste el usuario y sus membresías de grupo.
func (r *UserRepo) Create(user *entity.User) error {
	ctx := context.Background()
	query := `
		INSERT INTO users (id, company_id, email, password_hash, name, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.CompanyID, user.Email, user.PasswordHash, user.Name, user.Status,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	for _, group := range user.Groups {
		_, err := r.q.Exec(ctx,
			`INSERT INTO user_groups (user_id, group_name) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			user.ID, group,
		)
		if err != nil {
			return fmt.Errorf("insert user group %s: %w", group, err)
		}
	}
	return nil
}

// GetByID obtiene un usuario por ID con sus grupos.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := userSelect + ` WHERE u.id = $1` + userGroupBy
	u, err := scanUser(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// FindByEmail busca por email en todas las empresas.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	query := userSelect + ` WHERE u.email = $1` + userGroupBy
	u, err := scanUser(r.q.QueryRow(context.Background(), query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

// GetByEmailAndCompany busca por email dentro de una empresa.
func (r *UserRepo) GetByEmailAndCompany(email, companyID string) (*entity.User, error) {
	query := userSelect + ` WHERE u.email = $1 AND u.company_id = $2` + userGroupBy
	u, err := scanUser(r.q.QueryRow(context.Background(), query, email, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email/company: %w", err)
	}
	return u, nil
}

// ListByGroup enumera los usuarios activos que pertenecen al grupo dado.
func (r *UserRepo) ListByGroup(group string) ([]*entity.User, error) {
	query := userSelect + `
	WHERE u.status = 'active'
	  AND u.id IN (SELECT user_id FROM user_groups WHERE group_name = $1)` +
		userGroupBy + ` ORDER BY u.created_at`
	rows, err := r.q.Query(context.Background(), query, group)
	if err != nil {
		return nil, fmt.Errorf("list users by group: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}
