package main

import (
	"context"
	"flag"
	"log"
	"time"

	"maestria/internal/config"
	"maestria/internal/domain/models"
	"maestria/internal/repository/postgres"
	"maestria/internal/seed"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	dropTables := flag.Bool("drop-tables", false, "Drop the courses table before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed demo courses")
	flag.Parse()

	// Load .env file (silently ignore if it doesn't exist)
	_ = godotenv.Load()

	cfg := config.Load()

	// SAFETY: never drop tables in production
	if cfg.Environment == "prod" && *dropTables {
		log.Fatalf("BLOCKED: cannot run --drop-tables in production environment")
	}

	log.Printf("seeding database (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)

	if *dropTables {
		log.Println("dropping courses table...")
		if _, err := pool.Exec(ctx, "DROP TABLE IF EXISTS "+tables.Courses); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
	}

	log.Println("ensuring database schema is up to date...")
	if err := runSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}

	if *schemaOnly {
		log.Println("schema setup complete (schema-only mode)")
		return
	}

	catalog, err := seed.LoadCatalog()
	if err != nil {
		log.Fatalf("Failed to load seed catalog: %v", err)
	}

	repo := postgres.NewCourseRepository(&postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
	})

	total := 0
	for _, tenant := range catalog.Tenants {
		for _, entry := range tenant.Courses {
			now := time.Now()
			course := &models.Course{
				ID:          uuid.NewString(),
				Title:       entry.Title,
				Description: entry.Description,
				Price:       entry.Price,
				OwnerID:     entry.OwnerID,
				TenantID:    tenant.TenantID,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := repo.Create(ctx, course); err != nil {
				log.Printf("Failed to create course '%s': %v", entry.Title, err)
				continue
			}
			total++
			log.Printf("created course: %s (ID: %s, tenant: %s)", course.Title, course.ID, course.TenantID)
		}
	}

	log.Printf("seeding complete: %d courses", total)
}

// runSchema creates the courses table if it doesn't exist
func runSchema(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	if _, err := pool.Exec(ctx, `CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`); err != nil {
		return err
	}

	createCourses := `
		CREATE TABLE IF NOT EXISTS ` + tables.Courses + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			title VARCHAR(255) NOT NULL,
			description TEXT NOT NULL,
			price NUMERIC(10,2),
			owner_id UUID NOT NULL,
			tenant_id UUID NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createCourses); err != nil {
		return err
	}

	// Speeds up per-decision owner lookups
	createOwnerIndex := `
		CREATE INDEX IF NOT EXISTS ` + tables.Courses + `_owner_id_idx
		ON ` + tables.Courses + ` (owner_id)
	`
	if _, err := pool.Exec(ctx, createOwnerIndex); err != nil {
		return err
	}

	return nil
}
