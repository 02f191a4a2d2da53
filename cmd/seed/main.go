package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"lipi/internal/config"
	"lipi/internal/domain/models"
	"lipi/internal/repository/postgres"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	// Parse command-line flags
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed demo data")
	clearData := flag.Bool("clear-data", false, "Clear all folders and files (keep schema)")
	ownerID := flag.String("owner", "00000000-0000-0000-0000-000000000001", "Owner user ID for the demo workspace")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && (*dropTables || *clearData) {
		log.Fatalf("BLOCKED: Cannot run destructive operations (--drop-tables or --clear-data) in production environment")
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if *clearData {
		log.Printf("Clearing data only (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	} else if *schemaOnly {
		log.Printf("Setting up schema only (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	} else {
		log.Printf("Seeding database (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	}

	// Create database connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Create table names
	tables := postgres.NewTableNames(cfg.TablePrefix)

	// Drop tables if requested
	if *dropTables {
		log.Println("Dropping all tables...")
		if err := dropAllTables(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Println("Tables dropped")
	}

	// Run schema to ensure tables exist
	log.Println("Ensuring database schema is up to date...")
	if err := runSchema(ctx, pool, tables, cfg.TablePrefix); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	log.Println("Schema ready")

	if *schemaOnly {
		log.Println("Schema setup complete (schema-only mode)")
		return
	}

	if *clearData {
		log.Println("Clearing existing folders and files...")
		if err := clearWorkspaceData(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to clear data: %v", err)
		}
		log.Println("Data cleared successfully")
		return
	}

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	workspaceRepo := postgres.NewWorkspaceRepository(repoConfig)
	folderRepo := postgres.NewFolderRepository(repoConfig)
	fileRepo := postgres.NewFileRepository(repoConfig)

	// Seed a demo workspace with a small folder tree
	log.Println("Seeding demo workspace...")
	now := time.Now().UTC()

	workspace, err := workspaceRepo.Create(ctx, &models.Workspace{
		ID:        uuid.NewString(),
		Title:     "Getting Started",
		IconID:    "💼",
		OwnerID:   *ownerID,
		CreatedAt: now,
	})
	if err != nil {
		log.Fatalf("Failed to create demo workspace: %v", err)
	}
	log.Printf("Created workspace %s (%s)", workspace.Title, workspace.ID)

	folderSpecs := []struct {
		title  string
		iconID string
		files  []string
	}{
		{"Personal", "📓", []string{"Welcome", "Daily Journal"}},
		{"Projects", "🚀", []string{"Roadmap"}},
	}

	for _, fs := range folderSpecs {
		folder, err := folderRepo.Create(ctx, &models.Folder{
			ID:          uuid.NewString(),
			Title:       fs.title,
			IconID:      fs.iconID,
			WorkspaceID: workspace.ID,
			CreatedAt:   now,
		})
		if err != nil {
			log.Fatalf("Failed to create folder %q: %v", fs.title, err)
		}
		log.Printf("Created folder %s (%s)", folder.Title, folder.ID)

		for _, title := range fs.files {
			file, err := fileRepo.Create(ctx, &models.File{
				ID:          uuid.NewString(),
				Title:       title,
				IconID:      "📄",
				WorkspaceID: workspace.ID,
				FolderID:    folder.ID,
				CreatedAt:   now,
			})
			if err != nil {
				log.Fatalf("Failed to create file %q: %v", title, err)
			}
			log.Printf("Created file %s (%s)", file.Title, file.ID)
		}
	}

	log.Println("Seeding complete!")
}

// runSchema creates tables if they don't exist
func runSchema(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames, tablePrefix string) error {
	// Enable UUID extension
	_, err := pool.Exec(ctx, "CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"")
	if err != nil {
		return err
	}

	// Create workspaces table
	createWorkspaces := `
		CREATE TABLE IF NOT EXISTS ` + tables.Workspaces + ` (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			icon_id TEXT NOT NULL DEFAULT '',
			data TEXT,
			logo TEXT,
			banner_url TEXT,
			owner_id UUID NOT NULL,
			in_trash BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createWorkspaces); err != nil {
		return err
	}

	// Create folders table
	createFolders := `
		CREATE TABLE IF NOT EXISTS ` + tables.Folders + ` (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			icon_id TEXT NOT NULL DEFAULT '',
			data TEXT,
			banner_url TEXT,
			workspace_id UUID NOT NULL REFERENCES ` + tables.Workspaces + `(id) ON DELETE CASCADE,
			in_trash BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createFolders); err != nil {
		return err
	}

	// Create files table
	createFiles := `
		CREATE TABLE IF NOT EXISTS ` + tables.Files + ` (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			icon_id TEXT NOT NULL DEFAULT '',
			data TEXT,
			banner_url TEXT,
			workspace_id UUID NOT NULL REFERENCES ` + tables.Workspaces + `(id) ON DELETE CASCADE,
			folder_id UUID NOT NULL REFERENCES ` + tables.Folders + `(id) ON DELETE CASCADE,
			in_trash BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createFiles); err != nil {
		return err
	}

	// Create subscriptions table
	createSubscriptions := `
		CREATE TABLE IF NOT EXISTS ` + tables.Subscriptions + ` (
			id TEXT PRIMARY KEY,
			user_id UUID NOT NULL,
			status TEXT NOT NULL,
			price_id TEXT,
			quantity INTEGER NOT NULL DEFAULT 1,
			cancel_at_period_end BOOLEAN NOT NULL DEFAULT FALSE,
			created TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			current_period_start TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			current_period_end TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createSubscriptions); err != nil {
		return err
	}

	// Create indexes
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `workspaces_owner ON ` + tables.Workspaces + `(owner_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `folders_workspace ON ` + tables.Folders + `(workspace_id, in_trash)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `files_workspace ON ` + tables.Files + `(workspace_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `files_folder ON ` + tables.Files + `(folder_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `subscriptions_user ON ` + tables.Subscriptions + `(user_id, created)`,
	}

	for _, indexSQL := range indexes {
		if _, err := pool.Exec(ctx, indexSQL); err != nil {
			return err
		}
	}

	return nil
}

// dropAllTables removes every table this service owns
func dropAllTables(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	// Drop in dependency order
	drops := []string{
		`DROP TABLE IF EXISTS ` + tables.Files + ` CASCADE`,
		`DROP TABLE IF EXISTS ` + tables.Folders + ` CASCADE`,
		`DROP TABLE IF EXISTS ` + tables.Workspaces + ` CASCADE`,
		`DROP TABLE IF EXISTS ` + tables.Subscriptions + ` CASCADE`,
	}

	for _, dropSQL := range drops {
		if _, err := pool.Exec(ctx, dropSQL); err != nil {
			return err
		}
	}

	return nil
}

// clearWorkspaceData deletes folders and files but keeps workspaces and schema
func clearWorkspaceData(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	clears := []string{
		`DELETE FROM ` + tables.Files,
		`DELETE FROM ` + tables.Folders,
	}

	for _, clearSQL := range clears {
		if _, err := pool.Exec(ctx, clearSQL); err != nil {
			return err
		}
	}

	return nil
}
