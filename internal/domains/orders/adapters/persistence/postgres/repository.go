package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/selfservice/fastfood-api/internal/domains/orders/domain"
	"github.com/selfservice/fastfood-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&orderRecord{})
	}
	return repo
}

// orderRecord maps the order aggregate to a relational table. Product snapshots are stored as JSON.
type orderRecord struct {
	ID            string        `gorm:"primaryKey;column:id;size:64"`
	ClientID      string        `gorm:"column:client_id;size:64;index"`
	Total         float64       `gorm:"column:total"`
	Status        string        `gorm:"column:status;type:varchar(32);index"`
	PaymentStatus string        `gorm:"column:payment_status;type:varchar(32)"`
	Products      []productItem `gorm:"column:products;type:text;serializer:json"`
	CreatedAt     time.Time     `gorm:"column:created_at;index"`
	UpdatedAt     time.Time     `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

type productItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

// clientRow is the read-only projection of the clients table attached to loaded orders.
type clientRow struct {
	ID   string `gorm:"column:id"`
	Name string `gorm:"column:name"`
	CPF  string `gorm:"column:cpf"`
}

func (clientRow) TableName() string { return "clients" }

type paymentStatusRow struct {
	ID            string `gorm:"column:id"`
	PaymentStatus string `gorm:"column:payment_status"`
}

// Insert stores a new order.
func (r *Repository) Insert(ctx context.Context, order *domain.Order) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	if order == nil {
		return errors.New("order is nil")
	}
	record := toRecord(order)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ports.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// FindByID fetches an order and its client snapshot.
func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	clients, err := r.loadClients(ctx, []orderRecord{record})
	if err != nil {
		return nil, err
	}
	return record.toDomain(clients), nil
}

// FindAll returns the approved orders in a kitchen status, in insertion time order.
func (r *Repository) FindAll(ctx context.Context) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	statuses := make([]string, 0, len(domain.KitchenStatuses))
	for _, s := range domain.KitchenStatuses {
		statuses = append(statuses, string(s))
	}
	var records []orderRecord
	err := r.db.WithContext(ctx).
		Where("payment_status = ?", string(domain.PaymentApproved)).
		Where("status IN ?", statuses).
		Order("created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	clients, err := r.loadClients(ctx, records)
	if err != nil {
		return nil, err
	}
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain(clients))
	}
	return orders, nil
}

// Update overwrites the mutable columns of an existing order.
func (r *Repository) Update(ctx context.Context, order *domain.Order) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	if order == nil {
		return errors.New("order is nil")
	}
	record := toRecord(order)
	result := r.db.WithContext(ctx).
		Model(&orderRecord{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{
			"client_id":      record.ClientID,
			"total":          record.Total,
			"status":         record.Status,
			"payment_status": record.PaymentStatus,
			"updated_at":     time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// Delete removes an order by identifier.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&orderRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// GetPaymentStatus reads only the payment columns of an order.
func (r *Repository) GetPaymentStatus(ctx context.Context, id string) (*ports.PaymentStatusView, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var row paymentStatusRow
	err := r.db.WithContext(ctx).
		Model(&orderRecord{}).
		Select("id", "payment_status").
		Where("id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return &ports.PaymentStatusView{ID: row.ID, PaymentStatus: domain.PaymentStatus(row.PaymentStatus)}, nil
}

func (r *Repository) loadClients(ctx context.Context, records []orderRecord) (map[string]clientRow, error) {
	ids := make([]string, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if rec.ClientID == "" {
			continue
		}
		if _, ok := seen[rec.ClientID]; ok {
			continue
		}
		seen[rec.ClientID] = struct{}{}
		ids = append(ids, rec.ClientID)
	}
	clients := make(map[string]clientRow, len(ids))
	if len(ids) == 0 {
		return clients, nil
	}
	var rows []clientRow
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		clients[row.ID] = row
	}
	return clients, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toRecord(order *domain.Order) orderRecord {
	items := make([]productItem, 0, len(order.Products))
	for _, p := range order.Products {
		items = append(items, productItem{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Category:    p.Category,
		})
	}
	return orderRecord{
		ID:            order.ID,
		ClientID:      order.ClientID,
		Total:         order.Total,
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
		Products:      items,
		CreatedAt:     order.CreatedAt,
	}
}

func (r orderRecord) toDomain(clients map[string]clientRow) *domain.Order {
	products := make([]domain.ProductSnapshot, 0, len(r.Products))
	for _, p := range r.Products {
		products = append(products, domain.ProductSnapshot{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Category:    p.Category,
		})
	}
	props := domain.Props{
		ID:            r.ID,
		ClientID:      r.ClientID,
		Total:         r.Total,
		Status:        domain.Status(r.Status),
		PaymentStatus: domain.PaymentStatus(r.PaymentStatus),
		Products:      products,
		CreatedAt:     r.CreatedAt,
	}
	if c, ok := clients[r.ClientID]; ok {
		props.Client = &domain.ClientSnapshot{ID: c.ID, Name: c.Name, CPF: c.CPF}
	}
	return domain.RehydrateOrder(props)
}
