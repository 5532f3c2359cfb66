package db

import (
	"context"
	"fmt"

	dbmodels "github.com/dkravets/layoffpulse/internal/layoffs/db/models"
	domain "github.com/dkravets/layoffpulse/internal/layoffs/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func NewRepository(cfg *Config) (*Repository, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&dbmodels.LayoffRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{db: db}, nil
}

// InsertRecords appends records to the corpus, assigning positions after the
// current maximum so list order stays stable.
func (r *Repository) InsertRecords(ctx context.Context, records []domain.LayoffRecord) error {
	if len(records) == 0 {
		return nil
	}
	var maxPos int
	row := r.db.WithContext(ctx).Model(&dbmodels.LayoffRecord{}).
		Select("COALESCE(MAX(position), -1)").Row()
	if err := row.Scan(&maxPos); err != nil {
		return fmt.Errorf("failed to read corpus position: %w", err)
	}

	rows := make([]dbmodels.LayoffRecord, 0, len(records))
	for i, rec := range records {
		rows = append(rows, dbmodels.FromDomain(rec, maxPos+1+i))
	}
	result := r.db.WithContext(ctx).CreateInBatches(rows, 200)
	return result.Error
}

// ListRecords returns the full corpus in load order.
func (r *Repository) ListRecords(ctx context.Context) ([]domain.LayoffRecord, error) {
	var rows []dbmodels.LayoffRecord
	result := r.db.WithContext(ctx).Order("position ASC").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	out := make([]domain.LayoffRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToDomain())
	}
	return out, nil
}

// CountRecords reports the corpus size.
func (r *Repository) CountRecords(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&dbmodels.LayoffRecord{}).Count(&count)
	return count, result.Error
}

// SeedIfEmpty loads the given records only when the corpus is empty,
// reporting whether it did.
func (r *Repository) SeedIfEmpty(ctx context.Context, records []domain.LayoffRecord) (bool, error) {
	seeded := false
	err := r.WithTransaction(ctx, func(tx *Repository) error {
		count, err := tx.CountRecords(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		seeded = true
		return tx.InsertRecords(ctx, records)
	})
	return seeded, err
}

func (r *Repository) WithTransaction(ctx context.Context, fn func(repo *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx})
	})
}

func (r *Repository) Close() error {
	db, err := r.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
