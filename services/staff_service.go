package services

import (
	"errors"

	"gorm.io/gorm"

	"work-arrangement-api/models"
)

// StaffService is the read-only staff directory consumed by the core.
type StaffService struct {
	db *gorm.DB
}

func NewStaffService(db *gorm.DB) *StaffService {
	return &StaffService{db: db}
}

func (s *StaffService) GetStaffByID(id int) (*models.Staff, error) {
	var staff models.Staff
	err := s.db.Preload("Role").
		Where("staff_id = ? AND delete_at IS NULL", id).
		First(&staff).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}
	return &staff, nil
}

// GetStaffIDsByDepartment maps staff ids to display names for one
// department.
func (s *StaffService) GetStaffIDsByDepartment(department string) (map[int]string, error) {
	var rows []models.Staff
	if err := s.db.
		Where("department = ? AND delete_at IS NULL", department).
		Order("staff_id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	names := make(map[int]string, len(rows))
	for i := range rows {
		names[rows[i].StaffID] = rows[i].DisplayName()
	}
	return names, nil
}
