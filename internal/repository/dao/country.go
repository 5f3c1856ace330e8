package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrCountryNotFound = errors.New("country not found")

type Country struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"unique;not null"`
	Code string
}

type CountryDAO struct {
	*CRUD[Country]
	db *gorm.DB
}

func NewCountryDAO(db *gorm.DB) *CountryDAO {
	return &CountryDAO{
		CRUD: NewCRUD[Country](db, ErrCountryNotFound, []string{"name", "code"}, "name", "code"),
		db:   db,
	}
}

// FindOrCreateByName looks a country up by name and creates it when missing.
func (d *CountryDAO) FindOrCreateByName(ctx context.Context, name, code string) (Country, error) {
	var country Country

	result := d.db.WithContext(ctx).Where("name = ?", name).First(&country)
	if result.Error == nil {
		return country, nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return Country{}, result.Error
	}

	country = Country{Name: name, Code: code}
	if result = d.db.WithContext(ctx).Create(&country); result.Error != nil {
		return Country{}, result.Error
	}

	return country, nil
}
