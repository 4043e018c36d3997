package migrations

import (
	"github.com/launchbase/launchbase/app/models"
	"github.com/launchbase/launchbase/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20260101000000_create_users_table", &CreateUsersTable{})
	migration.Register("20260101000001_create_products_table", &CreateProductsTable{})
	migration.Register("20260101000002_create_orders_table", &CreateOrdersTable{})
	migration.Register("20260101000003_create_files_table", &CreateFilesTable{})
}

// -------- 0001: users --------

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

// -------- 0002: products --------

type CreateProductsTable struct{}

func (m *CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (m *CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products")
}

// -------- 0003: orders --------

type CreateOrdersTable struct{}

func (m *CreateOrdersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{})
}

func (m *CreateOrdersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("orders")
}

// -------- 0004: files --------

type CreateFilesTable struct{}

func (m *CreateFilesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.File{})
}

func (m *CreateFilesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("files")
}
