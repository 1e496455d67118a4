package sqldb

import (
	"context"

	"gorm.io/gorm"

	"bde-backend/internal/domain/bde"
)

type ActivityRecordRepository struct{ db *gorm.DB }

func NewActivityRecordRepository(db *gorm.DB) *ActivityRecordRepository {
	return &ActivityRecordRepository{db: db}
}

// List orders newest first; the CSV export relies on this.
func (r *ActivityRecordRepository) List(ctx context.Context) ([]bde.ActivityRecord, error) {
	var out []bde.ActivityRecord
	err := r.db.WithContext(ctx).Order("start_time DESC").Find(&out).Error
	return out, err
}

func (r *ActivityRecordRepository) Get(ctx context.Context, id uint) (*bde.ActivityRecord, error) {
	var out bde.ActivityRecord
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *ActivityRecordRepository) Create(ctx context.Context, a *bde.ActivityRecord) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ActivityRecordRepository) Update(ctx context.Context, a *bde.ActivityRecord, patch bde.ActivityRecordUpdate) (*bde.ActivityRecord, error) {
	ch := patch.Changes()
	if len(ch) == 0 {
		return a, nil
	}
	if err := r.db.WithContext(ctx).Model(a).Updates(ch).Error; err != nil {
		return nil, err
	}
	return r.Get(ctx, a.ID)
}

func (r *ActivityRecordRepository) Delete(ctx context.Context, a *bde.ActivityRecord) error {
	return r.db.WithContext(ctx).Delete(a).Error
}
