package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/selfservice/fastfood-api/internal/domains/clients/domain"
	"github.com/selfservice/fastfood-api/internal/domains/clients/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists clients in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&clientRecord{})
	}
	return repo
}

type clientRecord struct {
	ID        string    `gorm:"primaryKey;column:id;size:64"`
	Name      string    `gorm:"column:name"`
	CPF       string    `gorm:"column:cpf;size:14;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (clientRecord) TableName() string { return "clients" }

// Insert stores a new client. Duplicate ids or cpfs yield ErrAlreadyExists.
func (r *Repository) Insert(ctx context.Context, client *domain.Client) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	if client == nil {
		return errors.New("client is nil")
	}
	record := toRecord(client)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ports.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// FindByID fetches a client by identifier.
func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Client, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record clientRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// FindAll returns every client ordered by name.
func (r *Repository) FindAll(ctx context.Context) ([]*domain.Client, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []clientRecord
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	clients := make([]*domain.Client, 0, len(records))
	for i := range records {
		clients = append(clients, records[i].toDomain())
	}
	return clients, nil
}

// Update overwrites a stored client.
func (r *Repository) Update(ctx context.Context, client *domain.Client) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	if client == nil {
		return errors.New("client is nil")
	}
	result := r.db.WithContext(ctx).
		Model(&clientRecord{}).
		Where("id = ?", client.ID).
		Updates(map[string]any{
			"name":       client.Name,
			"cpf":        client.CPF,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// Delete removes a client by identifier.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&clientRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// CpfExists reports whether a client with cpf is stored.
func (r *Repository) CpfExists(ctx context.Context, cpf string) (bool, error) {
	if err := r.ensureDB(); err != nil {
		return false, err
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&clientRecord{}).Where("cpf = ?", cpf).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres client repository not configured")
	}
	return nil
}

func toRecord(client *domain.Client) clientRecord {
	return clientRecord{ID: client.ID, Name: client.Name, CPF: client.CPF}
}

func (r clientRecord) toDomain() *domain.Client {
	return domain.NewClient(r.ID, r.Name, r.CPF)
}
