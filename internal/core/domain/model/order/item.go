package order

import (
	"errors"
	"fmt"
	"math"

	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/pkg/errs"
	"martdelivery/internal/pkg/guard"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line of an order. The price is captured when the order is placed.
type Item struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	quantity  int
	price     float64

	guard guard.ConstructorGuard
}

func NewItem(productID kernel.UUID, quantity int, price float64) (Item, error) {
	item := Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) ProductID() kernel.UUID {
	return i.productID
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) Price() float64 {
	return i.price
}

// Subtotal is price × quantity.
func (i Item) Subtotal() float64 {
	return i.price * float64(i.quantity)
}

func (i *Item) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	i.productID = id
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is not a non-negative amount", price))
	}
	i.price = price
	return nil
}

// Total sums the subtotals of items, rounded to cents.
func Total(items []Item) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Subtotal()
	}
	return math.Round(sum*100) / 100
}
