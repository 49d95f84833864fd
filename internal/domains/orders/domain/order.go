package domain

import "time"

// Status enumerates the kitchen progression of an order.
type Status string

const (
	StatusReceived      Status = "RECEIVED"
	StatusInPreparation Status = "IN_PREPARATION"
	StatusReady         Status = "READY"
)

// Rank orders statuses for the kitchen board: READY first, RECEIVED last. Unknown values rank 0.
func (s Status) Rank() int {
	switch s {
	case StatusReady:
		return 3
	case StatusInPreparation:
		return 2
	case StatusReceived:
		return 1
	default:
		return 0
	}
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s.Rank() > 0
}

// PaymentStatus tracks whether the order has been paid.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentApproved PaymentStatus = "APPROVED"
)

// Valid reports whether p is a known payment status.
func (p PaymentStatus) Valid() bool {
	return p == PaymentPending || p == PaymentApproved
}

// KitchenStatuses lists the statuses shown on the kitchen board.
var KitchenStatuses = []Status{StatusReceived, StatusInPreparation, StatusReady}

// ProductSnapshot is the copy of a product taken when the order is placed.
type ProductSnapshot struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    string
}

// ClientSnapshot is the copy of the client attached to a loaded order.
type ClientSnapshot struct {
	ID   string
	Name string
	CPF  string
}

// Props carries the values an Order is built from. Zero values mean "not supplied".
type Props struct {
	ID            string
	ClientID      string
	Total         float64
	Status        Status
	PaymentStatus PaymentStatus
	Products      []ProductSnapshot
	CreatedAt     time.Time
	Client        *ClientSnapshot
}

// Order is the purchase aggregate.
type Order struct {
	ID            string
	ClientID      string
	Total         float64
	Status        Status
	PaymentStatus PaymentStatus
	Products      []ProductSnapshot
	CreatedAt     time.Time
	Client        *ClientSnapshot
}

// NewOrder builds a freshly placed order. CreatedAt is always the current time; a supplied
// props.CreatedAt is ignored. Use RehydrateOrder for orders loaded from storage.
func NewOrder(props Props) *Order {
	o := build(props)
	o.CreatedAt = time.Now().UTC()
	return o
}

// RehydrateOrder rebuilds a stored order, keeping its recorded CreatedAt.
func RehydrateOrder(props Props) *Order {
	o := build(props)
	o.CreatedAt = props.CreatedAt
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	return o
}

func build(props Props) *Order {
	o := &Order{
		ID:            props.ID,
		ClientID:      props.ClientID,
		Total:         props.Total,
		Status:        props.Status,
		PaymentStatus: props.PaymentStatus,
		Products:      append([]ProductSnapshot{}, props.Products...),
	}
	if o.Status == "" {
		o.Status = StatusReceived
	}
	if o.PaymentStatus == "" {
		o.PaymentStatus = PaymentPending
	}
	// A zero total counts as not supplied, one unit per listed product.
	if o.Total == 0 {
		o.Total = SumPrices(o.Products)
	}
	if props.Client != nil {
		client := *props.Client
		o.Client = &client
	}
	return o
}

// SumPrices adds up the price of every product.
func SumPrices(products []ProductSnapshot) float64 {
	var total float64
	for _, p := range products {
		total += p.Price
	}
	return total
}

// Patch lists the fields Update may overwrite. A nil field was not supplied.
type Patch struct {
	PaymentStatus *PaymentStatus
	Status        *Status
	Total         *float64
	ClientID      *string
}

// Update overwrites the supplied fields of the order. A field only takes effect when it is
// present and non-zero: an explicit "" or 0 leaves the current value untouched. Total is not
// recomputed from products.
func (o *Order) Update(patch Patch) {
	if patch.PaymentStatus != nil && *patch.PaymentStatus != "" {
		o.PaymentStatus = *patch.PaymentStatus
	}
	if patch.Status != nil && *patch.Status != "" {
		o.Status = *patch.Status
	}
	if patch.Total != nil && *patch.Total != 0 {
		o.Total = *patch.Total
	}
	if patch.ClientID != nil && *patch.ClientID != "" {
		o.ClientID = *patch.ClientID
	}
}

// OnKitchenBoard reports whether the order is paid and in a known kitchen status.
func (o *Order) OnKitchenBoard() bool {
	return o.PaymentStatus == PaymentApproved && o.Status.Valid()
}

// Clone returns a deep copy so adapters never share slices with callers.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	clone := *o
	clone.Products = append([]ProductSnapshot{}, o.Products...)
	if o.Client != nil {
		client := *o.Client
		clone.Client = &client
	}
	return &clone
}
