package repositories

import (
	"fmt"

	"github.com/SanmaySarada/CardGeniusMVP/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BankConnectionRepository persists the (mocked) bank link flag.
type BankConnectionRepository interface {
	Upsert(conn *models.BankConnection) error
	GetByUser(userID uint) (*models.BankConnection, error)
}

type bankConnectionRepository struct {
	db *gorm.DB
}

func NewBankConnectionRepository(db *gorm.DB) BankConnectionRepository {
	return &bankConnectionRepository{db: db}
}

func (r *bankConnectionRepository) Upsert(conn *models.BankConnection) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"bank_name", "connected", "updated_at"}),
	}).Create(conn).Error
	if err != nil {
		return fmt.Errorf("failed to upsert bank connection: %w", err)
	}
	return nil
}

func (r *bankConnectionRepository) GetByUser(userID uint) (*models.BankConnection, error) {
	var conn models.BankConnection
	if err := r.db.Where("user_id = ?", userID).First(&conn).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get bank connection: %w", err)
	}
	return &conn, nil
}
