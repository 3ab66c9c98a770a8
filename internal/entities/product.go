package entities

type Product struct {
	ID                   int
	Name                 Text
	Category             Text
	Price                int
	Image                string
	RequiresPrescription bool
}

// CartItem always has Quantity > 0.
type CartItem struct {
	ProductID int
	Name      Text
	Price     int
	Image     string
	Quantity  int
}

func (i CartItem) Total() int {
	return i.Price * i.Quantity
}

func CartItemFromProduct(p Product, quantity int) CartItem {
	return CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  quantity,
	}
}
