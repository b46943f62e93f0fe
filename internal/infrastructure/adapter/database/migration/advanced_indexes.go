package migration

import (
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
)

// AdvancedIndexManager manages PostgreSQL-specific advanced indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes creates advanced PostgreSQL indexes for better performance
func (m *AdvancedIndexManager) CreateAdvancedIndexes() error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	// Composite index speeds up type-filtered listings
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_transactions_user_type
		ON transactions (user_id, transaction_type)
	`).Error; err != nil {
		m.logger.Error("Failed to create user_type composite index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Composite index keeps per-user listings in insertion order without a sort
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_transactions_user_created_at
		ON transactions (user_id, created_at)
	`).Error; err != nil {
		m.logger.Error("Failed to create user_created_at composite index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Partial index makes reset-code lookups cheap while most rows have no code
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_users_reset_code
		ON users (email, reset_code)
		WHERE reset_code <> ''
	`).Error; err != nil {
		m.logger.Error("Failed to create reset_code partial index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// BRIN index for created_at (more efficient for temporal data)
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin
		ON transactions USING BRIN (created_at)
		WITH (pages_per_range = 32)
	`).Error; err != nil {
		m.logger.Error("Failed to create BRIN index on created_at", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}
