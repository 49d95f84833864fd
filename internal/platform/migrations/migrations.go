package migrations

import (
	"time"

	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Clients come first so orders can join them.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&clientRecord{},
		&productRecord{},
		&orderRecord{},
	)
}

// Client schema mirrors the clients Postgres adapter.
type clientRecord struct {
	ID        string    `gorm:"primaryKey;column:id;size:64"`
	Name      string    `gorm:"column:name"`
	CPF       string    `gorm:"column:cpf;size:14;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (clientRecord) TableName() string { return "clients" }

// Product schema mirrors the products Postgres adapter.
type productRecord struct {
	ID          string    `gorm:"primaryKey;column:id;size:64"`
	Name        string    `gorm:"column:name"`
	Description string    `gorm:"column:description"`
	Price       float64   `gorm:"column:price"`
	Category    string    `gorm:"column:category;type:varchar(32);index"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }

// Order schema mirrors the orders Postgres adapter.
type orderRecord struct {
	ID            string    `gorm:"primaryKey;column:id;size:64"`
	ClientID      string    `gorm:"column:client_id;size:64;index"`
	Total         float64   `gorm:"column:total"`
	Status        string    `gorm:"column:status;type:varchar(32);index"`
	PaymentStatus string    `gorm:"column:payment_status;type:varchar(32)"`
	Products      string    `gorm:"column:products;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at;index"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }
