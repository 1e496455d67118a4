package sqldb

import (
	"context"

	"gorm.io/gorm"

	"bde-backend/internal/domain/bde"
)

type EmployeeRepository struct{ db *gorm.DB }

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository { return &EmployeeRepository{db: db} }

func (r *EmployeeRepository) List(ctx context.Context) ([]bde.Employee, error) {
	var out []bde.Employee
	err := r.db.WithContext(ctx).Order("personnel_number").Find(&out).Error
	return out, err
}

func (r *EmployeeRepository) Get(ctx context.Context, id uint) (*bde.Employee, error) {
	var out bde.Employee
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *EmployeeRepository) GetByPersonnelNumber(ctx context.Context, personnelNumber string) (*bde.Employee, error) {
	var out bde.Employee
	res := r.db.WithContext(ctx).Where("personnel_number = ?", personnelNumber).First(&out)
	return &out, res.Error
}

func (r *EmployeeRepository) Create(ctx context.Context, e *bde.Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EmployeeRepository) Update(ctx context.Context, e *bde.Employee, patch bde.EmployeeUpdate) (*bde.Employee, error) {
	ch := patch.Changes()
	if len(ch) == 0 {
		return e, nil
	}
	if err := r.db.WithContext(ctx).Model(e).Updates(ch).Error; err != nil {
		return nil, err
	}
	return r.Get(ctx, e.ID)
}

func (r *EmployeeRepository) Delete(ctx context.Context, e *bde.Employee) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", e.ID).Delete(&bde.ActivityRecord{}).Error; err != nil {
			return err
		}
		return tx.Delete(e).Error
	})
}
