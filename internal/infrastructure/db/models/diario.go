package models

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Diario is one attendance row of public.diario. Field order is the column
// order of generated inserts; the surrogate id is left to the database.
type Diario struct {
	IDAluno          uuid.UUID          `gorm:"column:id_aluno;type:uuid;not null"`
	IDTurma          uuid.UUID          `gorm:"column:id_turma;type:uuid;not null"`
	IDItemSharepoint string             `gorm:"column:id_item_sharepoint;type:text;index"`
	Data             pgtype.Timestamptz `gorm:"column:data;type:timestamptz;not null"`
	P1               pgtype.Text        `gorm:"column:p1;type:text"`
	P2               pgtype.Text        `gorm:"column:p2;type:text"`
	P3               pgtype.Text        `gorm:"column:p3;type:text"`
	P4               pgtype.Text        `gorm:"column:p4;type:text"`
	SyncSharepoint   bool               `gorm:"column:sync_sharepoint;not null;default:false"`
	Atualizado       bool               `gorm:"column:atualizado;not null;default:false"`
}

func (Diario) TableName() string {
	return "public.diario"
}
