package sqldb

import (
	"context"

	"gorm.io/gorm"

	"bde-backend/internal/domain/bde"
)

type WorkOrderRepository struct{ db *gorm.DB }

func NewWorkOrderRepository(db *gorm.DB) *WorkOrderRepository { return &WorkOrderRepository{db: db} }

func (r *WorkOrderRepository) List(ctx context.Context) ([]bde.WorkOrder, error) {
	var out []bde.WorkOrder
	err := r.db.WithContext(ctx).Order("order_number").Find(&out).Error
	return out, err
}

func (r *WorkOrderRepository) Get(ctx context.Context, id uint) (*bde.WorkOrder, error) {
	var out bde.WorkOrder
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *WorkOrderRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (*bde.WorkOrder, error) {
	var out bde.WorkOrder
	res := r.db.WithContext(ctx).Where("order_number = ?", orderNumber).First(&out)
	return &out, res.Error
}

func (r *WorkOrderRepository) Create(ctx context.Context, w *bde.WorkOrder) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *WorkOrderRepository) Update(ctx context.Context, w *bde.WorkOrder, patch bde.WorkOrderUpdate) (*bde.WorkOrder, error) {
	ch := patch.Changes()
	if len(ch) == 0 {
		return w, nil
	}
	if err := r.db.WithContext(ctx).Model(w).Updates(ch).Error; err != nil {
		return nil, err
	}
	return r.Get(ctx, w.ID)
}

// Delete cascades over two levels: operations of the order, then activity
// records of those operations.
func (r *WorkOrderRepository) Delete(ctx context.Context, w *bde.WorkOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		opIDs := tx.Model(&bde.Operation{}).Select("id").Where("work_order_id = ?", w.ID)
		if err := tx.Where("operation_id IN (?)", opIDs).Delete(&bde.ActivityRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("work_order_id = ?", w.ID).Delete(&bde.Operation{}).Error; err != nil {
			return err
		}
		return tx.Delete(w).Error
	})
}
