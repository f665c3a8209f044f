package domain

import "time"

// OrderStatus enumerates the lifecycle states of an order.
type OrderStatus string

const (
	OrderCart     OrderStatus = "cart"
	OrderPaid     OrderStatus = "paid"
	OrderCanceled OrderStatus = "canceled"
	OrderShipped  OrderStatus = "shipped"
)

// Line-item limits for a single order.
const (
	MaxDistinctProducts = 5
	MaxUnitsPerProduct  = 2
)

// OrderLine is one product entry in an order. The unit price is snapshotted
// when the product is added, so later catalog price changes never move an
// order's total.
type OrderLine struct {
	ProductID      string `json:"productId"`
	UnitPriceCents int    `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
}

// OrderProps is the persisted state of an Order aggregate.
type OrderProps struct {
	ID         string      `json:"id"`
	CreatedAt  time.Time   `json:"createdAt"`
	Status     OrderStatus `json:"status"`
	Lines      []OrderLine `json:"lines"`
	PayedAt    *time.Time  `json:"payedAt"`
	CanceledAt *time.Time  `json:"canceledAt"`
}

// OrderSnapshot is OrderProps plus the derived total, computed on read.
type OrderSnapshot struct {
	OrderProps
	TotalPriceCents int `json:"totalPriceCents"`
}

// Order is the cart/checkout aggregate. It exclusively owns its lines; the
// state machine is cart -> paid -> shipped, with cart -> canceled as the only
// other exit. Failed transitions leave the aggregate unmutated.
type Order struct {
	props OrderProps
}

// NewOrder creates an empty order in cart status.
func NewOrder(id string) *Order {
	return &Order{props: OrderProps{
		ID:        id,
		CreatedAt: time.Now().UTC(),
		Status:    OrderCart,
		Lines:     nil,
	}}
}

// RehydrateOrder rebuilds an Order from persisted state.
func RehydrateOrder(props OrderProps) *Order {
	return &Order{props: props}
}

// AddProduct adds one unit of the product to the order, appending a new line
// or incrementing an existing one. Stock is checked against the caller's
// snapshot value only; nothing is reserved.
func (o *Order) AddProduct(productID string, unitPriceCents, availableStock int) error {
	if o.props.Status != OrderCart {
		return NewInvalidStatusError("products can only be added to an order in %q status", OrderCart)
	}
	if availableStock <= 0 {
		return NewValidationError("insufficient stock for this product")
	}

	for i := range o.props.Lines {
		if o.props.Lines[i].ProductID != productID {
			continue
		}
		if o.props.Lines[i].Quantity >= MaxUnitsPerProduct {
			return NewValidationError("cannot add more than %d units of the same product", MaxUnitsPerProduct)
		}
		if availableStock < o.props.Lines[i].Quantity+1 {
			return NewValidationError("insufficient stock for one more unit")
		}
		o.props.Lines[i].Quantity++
		return nil
	}

	if len(o.props.Lines) >= MaxDistinctProducts {
		return NewValidationError("cannot add more than %d distinct products to an order", MaxDistinctProducts)
	}
	o.props.Lines = append(o.props.Lines, OrderLine{
		ProductID:      productID,
		UnitPriceCents: unitPriceCents,
		Quantity:       1,
	})
	return nil
}

// Pay transitions the order from cart to paid and records the payment time.
func (o *Order) Pay() error {
	if o.props.Status != OrderCart {
		return NewInvalidStatusError("only an order in %q status can be paid", OrderCart)
	}
	if len(o.props.Lines) == 0 {
		return NewValidationError("cannot pay an empty order")
	}
	now := time.Now().UTC()
	o.props.Status = OrderPaid
	o.props.PayedAt = &now
	return nil
}

// Cancel transitions the order from cart to canceled. Stock was never
// reserved, so there is nothing to give back.
func (o *Order) Cancel() error {
	if o.props.Status != OrderCart {
		return NewInvalidStatusError("only an order in %q status can be canceled", OrderCart)
	}
	now := time.Now().UTC()
	o.props.Status = OrderCanceled
	o.props.CanceledAt = &now
	return nil
}

// Ship transitions the order from paid to shipped.
func (o *Order) Ship() error {
	if o.props.Status != OrderPaid {
		return NewInvalidStatusError("only an order in %q status can be shipped", OrderPaid)
	}
	o.props.Status = OrderShipped
	return nil
}

// Snapshot returns the current state plus the computed total.
func (o *Order) Snapshot() OrderSnapshot {
	lines := make([]OrderLine, len(o.props.Lines))
	copy(lines, o.props.Lines)

	total := 0
	for _, l := range lines {
		total += l.UnitPriceCents * l.Quantity
	}

	props := o.props
	props.Lines = lines
	return OrderSnapshot{OrderProps: props, TotalPriceCents: total}
}

// ID returns the order id.
func (o *Order) ID() string { return o.props.ID }

// Status returns the current order status.
func (o *Order) Status() OrderStatus { return o.props.Status }
