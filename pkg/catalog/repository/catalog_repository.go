package repository

import "cropadvisor/entities"

type CatalogRepository interface {
	Count() (int64, error)
	AllCrops() ([]entities.CropRecord, error)
	AllRegionCrops() ([]entities.RegionCrop, error)
	Replace(crops []entities.CropRecord, lists []entities.RegionCrop) error
}
