package sqldb

import (
	"context"

	"gorm.io/gorm"

	"bde-backend/internal/domain/bde"
)

type MachineRepository struct{ db *gorm.DB }

func NewMachineRepository(db *gorm.DB) *MachineRepository { return &MachineRepository{db: db} }

func (r *MachineRepository) List(ctx context.Context) ([]bde.Machine, error) {
	var out []bde.Machine
	err := r.db.WithContext(ctx).Order("code").Find(&out).Error
	return out, err
}

func (r *MachineRepository) Get(ctx context.Context, id uint) (*bde.Machine, error) {
	var out bde.Machine
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *MachineRepository) GetByCode(ctx context.Context, code string) (*bde.Machine, error) {
	var out bde.Machine
	res := r.db.WithContext(ctx).Where("code = ?", code).First(&out)
	return &out, res.Error
}

func (r *MachineRepository) Create(ctx context.Context, m *bde.Machine) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MachineRepository) Update(ctx context.Context, m *bde.Machine, patch bde.MachineUpdate) (*bde.Machine, error) {
	ch := patch.Changes()
	if len(ch) == 0 {
		return m, nil
	}
	if err := r.db.WithContext(ctx).Model(m).Updates(ch).Error; err != nil {
		return nil, err
	}
	return r.Get(ctx, m.ID)
}

// Delete removes the machine together with its operations and, transitively,
// the activity records captured against those operations.
func (r *MachineRepository) Delete(ctx context.Context, m *bde.Machine) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		opIDs := tx.Model(&bde.Operation{}).Select("id").Where("machine_id = ?", m.ID)
		if err := tx.Where("operation_id IN (?)", opIDs).Delete(&bde.ActivityRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("machine_id = ?", m.ID).Delete(&bde.Operation{}).Error; err != nil {
			return err
		}
		return tx.Delete(m).Error
	})
}
