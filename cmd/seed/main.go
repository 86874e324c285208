package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/samber/lo"

	"github.com/oksasatya/go-catalog-admin/config"
	"github.com/oksasatya/go-catalog-admin/internal/application/category"
	"github.com/oksasatya/go-catalog-admin/internal/application/genre"
	pginfra "github.com/oksasatya/go-catalog-admin/internal/infrastructure/postgres"
	"github.com/oksasatya/go-catalog-admin/pkg/helpers"
)

var seedCategories = []struct {
	name, description string
	genres            []string
}{
	{"Movies", "Feature films", []string{"Action", "Drama"}},
	{"Series", "Episodic shows", []string{"Drama", "Comedy"}},
	{"Documentaries", "Non-fiction", []string{"Biography"}},
}

// seed inserts a small demo catalog through the same use cases the API uses.
func main() {
	_ = godotenv.Load()
	cfg := config.MustLoad()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env, cfg.LogLevel)
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	if err := pginfra.Migrate(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		logger.Fatalf("migration failed: %v", err)
	}

	categories := pginfra.NewCategoryGateway(pool)
	genres := pginfra.NewGenreGateway(pool)
	createCategory := category.NewCreateUseCase(categories, logger)
	createGenre := genre.NewCreateUseCase(genres, categories, logger)

	genreCategories := map[string][]string{}
	var genreOrder []string
	for _, c := range seedCategories {
		out, n := createCategory.Execute(ctx, category.NewCreateCommand(lo.ToPtr(c.name), c.description, true)).Get()
		if n != nil {
			logger.Fatalf("seed category %s: %s", c.name, n)
		}
		fmt.Printf("seeded category: id=%s name=%s\n", out.ID, c.name)
		for _, g := range c.genres {
			if _, ok := genreCategories[g]; !ok {
				genreOrder = append(genreOrder, g)
			}
			genreCategories[g] = append(genreCategories[g], out.ID)
		}
	}

	for _, name := range genreOrder {
		out, n := createGenre.Execute(ctx, genre.NewCreateCommand(lo.ToPtr(name), true, genreCategories[name])).Get()
		if n != nil {
			logger.Fatalf("seed genre %s: %s", name, n)
		}
		fmt.Printf("seeded genre: id=%s name=%s categories=%d\n", out.ID, name, len(genreCategories[name]))
	}
}
