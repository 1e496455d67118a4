package sqldb

import (
	"context"

	"gorm.io/gorm"

	"bde-backend/internal/domain/bde"
)

type OperationRepository struct{ db *gorm.DB }

func NewOperationRepository(db *gorm.DB) *OperationRepository { return &OperationRepository{db: db} }

func (r *OperationRepository) List(ctx context.Context) ([]bde.Operation, error) {
	var out []bde.Operation
	err := r.db.WithContext(ctx).Order("code").Find(&out).Error
	return out, err
}

func (r *OperationRepository) Get(ctx context.Context, id uint) (*bde.Operation, error) {
	var out bde.Operation
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *OperationRepository) GetByCode(ctx context.Context, code string) (*bde.Operation, error) {
	var out bde.Operation
	res := r.db.WithContext(ctx).Where("code = ?", code).First(&out)
	return &out, res.Error
}

func (r *OperationRepository) Create(ctx context.Context, o *bde.Operation) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OperationRepository) Update(ctx context.Context, o *bde.Operation, patch bde.OperationUpdate) (*bde.Operation, error) {
	ch := patch.Changes()
	if len(ch) == 0 {
		return o, nil
	}
	if err := r.db.WithContext(ctx).Model(o).Updates(ch).Error; err != nil {
		return nil, err
	}
	return r.Get(ctx, o.ID)
}

func (r *OperationRepository) Delete(ctx context.Context, o *bde.Operation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("operation_id = ?", o.ID).Delete(&bde.ActivityRecord{}).Error; err != nil {
			return err
		}
		return tx.Delete(o).Error
	})
}
