package repositoryImp

import (
	"gorm.io/gorm"

	"cropadvisor/entities"
	"cropadvisor/pkg/catalog/repository"
)

type catalogRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CatalogRepository { return &catalogRepo{db} }

func (r *catalogRepo) Count() (int64, error) {
	var n int64
	return n, r.db.Model(&entities.CropRecord{}).Count(&n).Error
}

func (r *catalogRepo) AllCrops() ([]entities.CropRecord, error) {
	var out []entities.CropRecord
	return out, r.db.Order("ord ASC, crop_id ASC").Find(&out).Error
}

func (r *catalogRepo) AllRegionCrops() ([]entities.RegionCrop, error) {
	var out []entities.RegionCrop
	return out, r.db.Order("region ASC, ord ASC").Find(&out).Error
}

// Replace swaps the whole stored catalog in one transaction.
func (r *catalogRepo) Replace(crops []entities.CropRecord, lists []entities.RegionCrop) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entities.RegionCrop{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entities.CropRecord{}).Error; err != nil {
			return err
		}
		if len(crops) > 0 {
			if err := tx.Create(&crops).Error; err != nil {
				return err
			}
		}
		if len(lists) > 0 {
			if err := tx.Create(&lists).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
