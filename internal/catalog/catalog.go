// Package catalog holds the static reference data the service starts with:
// delivery options, the medicine catalog and the sample address book.
package catalog

import (
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/entities"
)

var deliveryOptions = []entities.DeliveryOption{
	{
		ID:            entities.DeliverySameDay,
		Name:          entities.Text{Ar: "توصيل في نفس اليوم", En: "Same-day delivery"},
		Description:   entities.Text{Ar: "استلم طلبك اليوم", En: "Get your order today"},
		EstimatedTime: entities.Text{Ar: "٤-٦ ساعات", En: "4-6 hours"},
		Price:         25,
		Available:     true,
	},
	{
		ID:            entities.DeliveryExpress,
		Name:          entities.Text{Ar: "توصيل سريع", En: "Express delivery"},
		Description:   entities.Text{Ar: "توصيل خلال ساعتين", En: "Delivered within two hours"},
		EstimatedTime: entities.Text{Ar: "١-٢ ساعة", En: "1-2 hours"},
		Price:         35,
		Available:     true,
	},
	{
		ID:            entities.DeliveryScheduled,
		Name:          entities.Text{Ar: "توصيل مجدول", En: "Scheduled delivery"},
		Description:   entities.Text{Ar: "اختر الوقت المناسب لك", En: "Pick a time that suits you"},
		EstimatedTime: entities.Text{Ar: "حسب الموعد", En: "At the chosen slot"},
		Price:         15,
		Available:     true,
	},
	{
		ID:            entities.DeliveryPickup,
		Name:          entities.Text{Ar: "استلام من الصيدلية", En: "Pharmacy pickup"},
		Description:   entities.Text{Ar: "استلم طلبك من أقرب فرع", En: "Collect from the nearest branch"},
		EstimatedTime: entities.Text{Ar: "٣٠ دقيقة", En: "30 minutes"},
		Price:         0,
		Available:     true,
	},
}

var products = []entities.Product{
	{ID: 1, Name: entities.Text{Ar: "بانادول إكسترا", En: "Panadol Extra"}, Category: entities.Text{Ar: "مسكنات", En: "Pain relief"}, Price: 15, Image: "/images/panadol-extra.png"},
	{ID: 2, Name: entities.Text{Ar: "فيتامين سي ١٠٠٠", En: "Vitamin C 1000"}, Category: entities.Text{Ar: "فيتامينات", En: "Vitamins"}, Price: 45, Image: "/images/vitamin-c.png"},
	{ID: 3, Name: entities.Text{Ar: "أموكسيسيلين ٥٠٠", En: "Amoxicillin 500"}, Category: entities.Text{Ar: "مضادات حيوية", En: "Antibiotics"}, Price: 32, Image: "/images/amoxicillin.png", RequiresPrescription: true},
	{ID: 4, Name: entities.Text{Ar: "شراب الكحة", En: "Cough syrup"}, Category: entities.Text{Ar: "البرد والإنفلونزا", En: "Cold & flu"}, Price: 22, Image: "/images/cough-syrup.png"},
	{ID: 5, Name: entities.Text{Ar: "جهاز قياس الضغط", En: "Blood pressure monitor"}, Category: entities.Text{Ar: "أجهزة طبية", En: "Medical devices"}, Price: 180, Image: "/images/bp-monitor.png"},
	{ID: 6, Name: entities.Text{Ar: "كريم مرطب", En: "Moisturizing cream"}, Category: entities.Text{Ar: "العناية بالبشرة", En: "Skin care"}, Price: 38, Image: "/images/moisturizer.png"},
}

var seedAddresses = []entities.Address{
	{
		ID:       "addr_001",
		Title:    entities.Text{Ar: "المنزل", En: "Home"},
		Street:   entities.Text{Ar: "شارع الملك فهد", En: "King Fahd Road"},
		District: entities.Text{Ar: "العليا", En: "Al Olaya"},
		City:     entities.Text{Ar: "الرياض", En: "Riyadh"},
		Coordinates: &entities.Coordinates{
			Lat: 24.7136,
			Lng: 46.6753,
		},
		Phone:     "+966501234567",
		IsDefault: true,
		Instructions: &entities.Text{
			Ar: "البوابة الثانية",
			En: "Second gate",
		},
	},
	{
		ID:        "addr_002",
		Title:     entities.Text{Ar: "العمل", En: "Work"},
		Street:    entities.Text{Ar: "طريق العروبة", En: "Al Urubah Road"},
		District:  entities.Text{Ar: "الورود", En: "Al Wurud"},
		City:      entities.Text{Ar: "الرياض", En: "Riyadh"},
		Phone:     "+966507654321",
		IsDefault: false,
	},
}

func DeliveryOptions() []entities.DeliveryOption {
	out := make([]entities.DeliveryOption, len(deliveryOptions))
	copy(out, deliveryOptions)
	return out
}

func DeliveryOption(id string) (entities.DeliveryOption, error) {
	for _, o := range deliveryOptions {
		if o.ID == id {
			return o, nil
		}
	}
	return entities.DeliveryOption{}, entities.ErrDeliveryOptionNotFound
}

func Products() []entities.Product {
	out := make([]entities.Product, len(products))
	copy(out, products)
	return out
}

func Product(id int) (entities.Product, error) {
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return entities.Product{}, entities.ErrProductNotFound
}

// SeedAddresses returns a fresh copy of the sample address book.
func SeedAddresses() []entities.Address {
	out := make([]entities.Address, len(seedAddresses))
	for i, a := range seedAddresses {
		if a.Coordinates != nil {
			c := *a.Coordinates
			a.Coordinates = &c
		}
		if a.Instructions != nil {
			in := *a.Instructions
			a.Instructions = &in
		}
		out[i] = a
	}
	return out
}

// Static serves the built-in product catalog to components that take it as a dependency.
type Static struct{}

func (Static) Products() []entities.Product {
	return Products()
}

func (Static) Product(id int) (entities.Product, error) {
	return Product(id)
}
