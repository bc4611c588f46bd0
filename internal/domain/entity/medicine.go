package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Medicine is a catalog entry prescriptions reference
type Medicine struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name                 string          `gorm:"type:varchar(200);not null;index" json:"name"`
	Description          string          `gorm:"type:text" json:"description,omitempty"`
	Price                decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	PrescriptionRequired bool            `gorm:"not null;default:false" json:"prescription_required"`
	SideEffects          string          `gorm:"type:text" json:"side_effects,omitempty"`
	Contraindications    string          `gorm:"type:text" json:"contraindications,omitempty"`
	CreatedAt            time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Medicine) TableName() string {
	return "medicines"
}
