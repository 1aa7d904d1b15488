package order

import (
	"context"
	"encoding/json"

	"github.com/ahinestrog/bookstore-console/Backend/src/money"
)

// Routing keys published at checkout.
const (
	RKOrderCreated   = "order.created"
	RKPointsCredited = "customer.points.credited"
)

type OrderCreatedPayload struct {
	OrderID     string         `json:"order_id"`
	CustomerID  string         `json:"customer_id"`
	Tier        string         `json:"tier"`
	Items       []OrderItemEvt `json:"items"`
	GrandTotal  money.Amount   `json:"grand_total"`
	VIPDiscount money.Amount   `json:"vip_discount"`
	CreatedUnix int64          `json:"created_unix"`
}

type OrderItemEvt struct {
	BookID    string       `json:"book_id"`
	Title     string       `json:"title"`
	Kind      string       `json:"kind"`
	Qty       int          `json:"qty"`
	UnitPrice money.Amount `json:"unit_price"`
	LineTotal money.Amount `json:"line_total"`
}

type PointsCreditedPayload struct {
	OrderID    string `json:"order_id"`
	CustomerID string `json:"customer_id"`
	Points     int    `json:"points"`
	Balance    int    `json:"balance"`
}

// NewOrderCreated builds the order.created payload with settled amounts.
func NewOrderCreated(o *Order) OrderCreatedPayload {
	p := OrderCreatedPayload{
		OrderID:     o.ID(),
		CustomerID:  o.customer.ID(),
		Tier:        o.customer.Tier().String(),
		GrandTotal:  o.GrandTotal(),
		VIPDiscount: o.VIPDiscountApplied(),
		CreatedUnix: o.createdAt.Unix(),
	}
	for _, s := range o.Summary() {
		p.Items = append(p.Items, OrderItemEvt{
			BookID:    s.BookID,
			Title:     s.Title,
			Kind:      s.Kind,
			Qty:       s.Quantity,
			UnitPrice: s.FinalUnit.Settle(),
			LineTotal: s.LineTotal.Settle(),
		})
	}
	return p
}

// Publisher delivers an encoded event under a routing key.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

// PublishJSON encodes v and hands it to p. A nil publisher drops the event.
func PublishJSON(ctx context.Context, p Publisher, routingKey string, v any) error {
	if p == nil {
		return nil
	}
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return p.Publish(ctx, routingKey, body)
}
