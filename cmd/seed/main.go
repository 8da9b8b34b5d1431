// seed puebla la base con un usuario admin y un catálogo inicial de
// categorías y libros. Es idempotente: corre sobre ON CONFLICT y solo
// inserta lo que falta.
//
// Uso: go run ./cmd/seed
// Credenciales del admin vía SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD
// (por defecto admin@booktree.local / cambiame-ya).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/Michaeloduah/BookTree-Backend/internal/domain/entity"
	"github.com/Michaeloduah/BookTree-Backend/internal/infrastructure/postgres"
	"github.com/Michaeloduah/BookTree-Backend/pkg/config"
)

type seedBook struct {
	title, author, description, category string
	price                                string
	stock                                int
}

var seedCategories = []struct{ name, description string }{
	{"Ficción", "Novela y relato"},
	{"No ficción", "Ensayo, historia y divulgación"},
	{"Técnico", "Programación e ingeniería"},
}

var seedBooks = []seedBook{
	{"Cien años de soledad", "Gabriel García Márquez", "Edición conmemorativa", "Ficción", "65000", 12},
	{"El amor en los tiempos del cólera", "Gabriel García Márquez", "", "Ficción", "58000", 8},
	{"Sapiens", "Yuval Noah Harari", "De animales a dioses", "No ficción", "72000", 15},
	{"The Go Programming Language", "Alan A. A. Donovan", "Donovan & Kernighan", "Técnico", "145000", 5},
	{"Designing Data-Intensive Applications", "Martin Kleppmann", "", "Técnico", "160000", 4},
}

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

	// Admin
	adminEmail := envOr("SEED_ADMIN_EMAIL", "admin@booktree.local")
	adminPassword := envOr("SEED_ADMIN_PASSWORD", "cambiame-ya")
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash de password: %v\n", err)
		os.Exit(1)
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, role)
		VALUES ($1, 'Administrador', lower($2), $3, $4)
		ON CONFLICT (email) DO NOTHING`,
		uuid.New().String(), adminEmail, string(hash), entity.RoleAdmin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "insertar admin: %v\n", err)
		os.Exit(1)
	}

	// Categorías
	categoryIDs := make(map[string]string, len(seedCategories))
	for _, c := range seedCategories {
		id := uuid.New().String()
		err := pool.QueryRow(ctx, `
			INSERT INTO categories (id, name, description)
			VALUES ($1, $2, $3)
			ON CONFLICT (lower(name)) DO UPDATE SET description = EXCLUDED.description
			RETURNING id`,
			id, c.name, c.description).Scan(&id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "insertar categoría %q: %v\n", c.name, err)
			os.Exit(1)
		}
		categoryIDs[c.name] = id
	}

	// Libros
	inserted := 0
	for _, b := range seedBooks {
		price, err := decimal.NewFromString(b.price)
		if err != nil {
			fmt.Fprintf(os.Stderr, "precio de %q: %v\n", b.title, err)
			os.Exit(1)
		}
		tag, err := pool.Exec(ctx, `
			INSERT INTO books (id, title, author, description, price, category_id, stock)
			SELECT $1, $2, $3, $4, $5, $6, $7
			WHERE NOT EXISTS (SELECT 1 FROM books WHERE lower(title) = lower($2))`,
			uuid.New().String(), b.title, b.author, b.description,
			price, categoryIDs[b.category], b.stock)
		if err != nil {
			fmt.Fprintf(os.Stderr, "insertar libro %q: %v\n", b.title, err)
			os.Exit(1)
		}
		inserted += int(tag.RowsAffected())
	}

	fmt.Printf("Seed completo: admin %s, %d categorías, %d libros nuevos\n",
		adminEmail, len(seedCategories), inserted)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
