package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Country{},
		&Event{},
		&Speaker{},
		&Session{},
		&Contact{},
		&QRCode{},
		&Invoice{},
		&InvoiceItem{},
	)
}
