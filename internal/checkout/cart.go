package checkout

import "github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/entities"

// Cart keeps items in the order they were first added.
type Cart struct {
	items []entities.CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem adds quantity of product, merging with an existing entry for the same product.
func (c *Cart) AddItem(p entities.Product, quantity int) {
	if quantity <= 0 {
		return
	}
	if i := c.index(p.ID); i >= 0 {
		c.items[i].Quantity += quantity
		return
	}
	c.items = append(c.items, entities.CartItemFromProduct(p, quantity))
}

// UpdateQuantity changes the quantity by delta; an entry that drops to zero is removed.
func (c *Cart) UpdateQuantity(productID, delta int) {
	i := c.index(productID)
	if i < 0 {
		return
	}
	qty := c.items[i].Quantity + delta
	if qty <= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
		return
	}
	c.items[i].Quantity = qty
}

func (c *Cart) RemoveItem(productID int) {
	if i := c.index(productID); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) Items() []entities.CartItem {
	out := make([]entities.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Count is the total number of units in the cart.
func (c *Cart) Count() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) Subtotal() int {
	return entities.Subtotal(c.items)
}

func (c *Cart) index(productID int) int {
	for i, it := range c.items {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}
