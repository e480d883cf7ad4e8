// seed puebla los datos base del flujo de mayoreo: la empresa, el equipo
// Team_Mayoreo, la bodega por defecto y un usuario por grupo de permisos.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que el servidor (DATABASE_URL o DB_*).
// Idempotente: las filas existentes se conservan (ON CONFLICT DO NOTHING).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/wb-dev/mayoreo-api/internal/infrastructure/postgres"
	"github.com/wb-dev/mayoreo-api/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	companyID := uuid.New().String()
	tag, err := pool.Exec(ctx, `
		INSERT INTO companies (id, name, tax_id, currency_code)
		VALUES ($1, 'WB Mayorista', 'WBM010101XXX', 'MXN')
		ON CONFLICT DO NOTHING`, companyID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sembrar empresa: %v\n", err)
		os.Exit(1)
	}
	if tag.RowsAffected() == 0 {
		// Ya hay una empresa sembrada; reutilizarla para el resto de filas.
		if err := pool.QueryRow(ctx,
			`SELECT id FROM companies WHERE name = 'WB Mayorista'`).Scan(&companyID); err != nil {
			fmt.Fprintf(os.Stderr, "resolver empresa existente: %v\n", err)
			os.Exit(1)
		}
	}

	if _, err := pool.Exec(ctx, `
		INSERT INTO sales_teams (id, company_id, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (company_id, name) DO NOTHING`,
		uuid.New().String(), companyID, cfg.Wholesale.TeamName); err != nil {
		fmt.Fprintf(os.Stderr, "sembrar equipo de mayoreo: %v\n", err)
		os.Exit(1)
	}

	if _, err := pool.Exec(ctx, `
		INSERT INTO warehouses (id, company_id, name, address)
		VALUES ($1, $2, $3, 'Av. Central 100, CDMX')
		ON CONFLICT (company_id, name) DO NOTHING`,
		uuid.New().String(), companyID, cfg.Wholesale.WarehouseName); err != nil {
		fmt.Fprintf(os.Stderr, "sembrar bodega: %v\n", err)
		os.Exit(1)
	}

	// Un usuario por grupo, password inicial "cambiame123" (rotar en el primer login).
	users := []struct {
		email, name, group string
	}{
		{"admin@wb.mx", "Administrador", "admin"},
		{"finanzas@wb.mx", "Analista Finanzas", "finanzas"},
		{"mayoreo@wb.mx", "Vendedor Mayoreo", "ventas_mayoreo"},
		{"comercial@wb.mx", "Vendedor Comercial", "ventas_comercial"},
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("cambiame123"), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashear password inicial: %v\n", err)
		os.Exit(1)
	}
	for _, u := range users {
		userID := uuid.New().String()
		tag, err := pool.Exec(ctx, `
			INSERT INTO users (id, company_id, email, password_hash, name, status)
			VALUES ($1, $2, $3, $4, $5, 'active')
			ON CONFLICT (company_id, email) DO NOTHING`,
			userID, companyID, u.email, string(hash), u.name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sembrar usuario %s: %v\n", u.email, err)
			os.Exit(1)
		}
		if tag.RowsAffected() == 0 {
			continue // ya existía, no tocar sus grupos
		}
		if _, err := pool.Exec(ctx, `
			INSERT INTO user_groups (user_id, group_name)
			VALUES ($1, $2) ON CONFLICT DO NOTHING`, userID, u.group); err != nil {
			fmt.Fprintf(os.Stderr, "sembrar grupo de %s: %v\n", u.email, err)
			os.Exit(1)
		}
	}

	fmt.Println("datos base sembrados: empresa, equipo de mayoreo, bodega y usuarios por grupo")
}
