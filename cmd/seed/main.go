// seed aplica las migraciones, carga los topes de contratación vigentes y
// crea el primer usuario administrador.
//
// Uso: go run ./cmd/seed
// Requiere SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD para crear el administrador.
package main

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestor-irrigacion/internal/application/auth"
	"github.com/jhoicas/gestor-irrigacion/internal/application/dto"
	"github.com/jhoicas/gestor-irrigacion/internal/domain"
	"github.com/jhoicas/gestor-irrigacion/internal/domain/entity"
	"github.com/jhoicas/gestor-irrigacion/internal/infrastructure/postgres"
	"github.com/jhoicas/gestor-irrigacion/pkg/config"
	"github.com/jhoicas/gestor-irrigacion/pkg/logger"
)

// Topes de contratación por defecto (ARS 2026).
var defaultThresholds = []struct {
	label   string
	ceiling string
}{
	{"Contratación directa", "5000000.00"},
	{"Contratación directa con publicación", "15000000.00"},
	{"Licitación pública de menor monto", "50000000.00"},
	{"Licitación pública de mayor monto", "999999999.99"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	applied, err := postgres.ApplyMigrations(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Strs("migraciones", applied).Msg("esquema al día")

	thresholds := postgres.NewThresholdRepository(pool)
	for _, t := range defaultThresholds {
		if err := thresholds.Upsert(ctx, t.label, decimal.RequireFromString(t.ceiling)); err != nil {
			log.Fatal().Err(err).Str("tipo_contratacion", t.label).Msg("tope de contratación")
		}
	}
	log.Info().Int("topes", len(defaultThresholds)).Msg("topes de contratación cargados")

	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		log.Warn().Msg("SEED_ADMIN_EMAIL/SEED_ADMIN_PASSWORD vacíos: no se crea administrador")
		return
	}
	authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	user, err := authUC.RegisterUser(dto.RegisterRequest{
		Email:    cfg.Seed.AdminEmail,
		Password: cfg.Seed.AdminPassword,
		Name:     "Administrador",
		Role:     entity.RoleAdmin,
	})
	switch {
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		log.Info().Str("email", cfg.Seed.AdminEmail).Msg("el administrador ya existe")
	case err != nil:
		log.Fatal().Err(err).Msg("crear administrador")
	default:
		log.Info().Str("email", user.Email).Str("id", user.ID).Msg("administrador creado")
	}
}
