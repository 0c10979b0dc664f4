package infra

import (
	"fmt"
	"time"

	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/config"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the Postgres connection pool and runs migrations.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormLogLevel := logger.Warn
	if cfg.Env == "development" {
		gormLogLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("conectando ao postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("executando migrações: %w", err)
	}
	return db, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Usuario{},
		&model.Cliente{},
		&model.Fornecedor{},
		&model.Categoria{},
		&model.Produto{},
		&model.ImagemProduto{},
		&model.ProdutoVariacao{},
		&model.ProdutoCategoria{},
		&model.Venda{},
		&model.ItemVenda{},
		&model.MovimentacaoEstoque{},
		&model.Financeiro{},
	)
}
