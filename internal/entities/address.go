package entities

// Text is a bilingual string.
type Text struct {
	Ar string
	En string
}

// In returns the text in the given language, falling back to the other one when empty.
func (t Text) In(lang string) string {
	if lang == "ar" && t.Ar != "" {
		return t.Ar
	}
	if t.En != "" {
		return t.En
	}
	return t.Ar
}

type Coordinates struct {
	Lat float64
	Lng float64
}

type Address struct {
	ID       string
	Title    Text
	Street   Text
	District Text
	City     Text

	Coordinates  *Coordinates
	Phone        string
	IsDefault    bool
	Instructions *Text
}

// AddressFields are the user editable parts of an address.
type AddressFields struct {
	Title    Text
	Street   Text
	District Text
	City     Text

	Coordinates  *Coordinates
	Phone        string
	IsDefault    bool
	Instructions *Text
}

func (f AddressFields) Apply(a *Address) {
	a.Title = f.Title
	a.Street = f.Street
	a.District = f.District
	a.City = f.City
	a.Coordinates = f.Coordinates
	a.Phone = f.Phone
	a.Instructions = f.Instructions
}
