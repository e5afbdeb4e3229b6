package catalog

import "tailoring/internal/core/domain/model/kernel"

func inches(id, label string) MeasurementField {
	return MeasurementField{ID: id, Label: label, Unit: "inches"}
}

func design(id, name string, price int64) Design {
	return Design{ID: id, Name: name, Price: kernel.MustMoney(price)}
}

// Default returns the catalog the shop currently sells.
func Default() Catalog {
	return New(
		[]Category{
			{
				ID: "blouse", Name: "Blouse", BasePrice: kernel.MustMoney(800),
				Designs: []Design{
					design("boat-neck", "Boat Neck", 0),
					design("high-neck", "High Neck", 100),
					design("backless", "Backless", 200),
					design("puff-sleeve", "Puff Sleeve", 150),
					design("sleeveless", "Sleeveless", 50),
				},
				MeasurementFields: []MeasurementField{
					inches("bust", "Bust"),
					inches("waist", "Waist"),
					inches("shoulder", "Shoulder"),
					inches("sleeve-length", "Sleeve Length"),
					inches("blouse-length", "Blouse Length"),
				},
			},
			{
				ID: "shirt", Name: "Shirt", BasePrice: kernel.MustMoney(600),
				Designs: []Design{
					design("formal", "Formal", 0),
					design("casual", "Casual", 50),
					design("party-wear", "Party Wear", 200),
					design("ethnic", "Ethnic", 150),
				},
				MeasurementFields: []MeasurementField{
					inches("chest", "Chest"),
					inches("waist", "Waist"),
					inches("shoulder", "Shoulder"),
					inches("sleeve-length", "Sleeve Length"),
					inches("shirt-length", "Shirt Length"),
				},
			},
			{
				ID: "kurti", Name: "Kurti", BasePrice: kernel.MustMoney(700),
				Designs: []Design{
					design("straight", "Straight Cut", 0),
					design("anarkali", "Anarkali", 300),
					design("a-line", "A-Line", 150),
					design("palazzo", "Palazzo Set", 400),
				},
				MeasurementFields: []MeasurementField{
					inches("bust", "Bust"),
					inches("waist", "Waist"),
					inches("hip", "Hip"),
					inches("shoulder", "Shoulder"),
					inches("kurti-length", "Kurti Length"),
				},
			},
			{
				ID: "lehenga", Name: "Lehenga", BasePrice: kernel.MustMoney(2000),
				Designs: []Design{
					design("traditional", "Traditional", 0),
					design("modern", "Modern", 500),
					design("bridal", "Bridal", 1500),
					design("party", "Party Wear", 800),
				},
				MeasurementFields: []MeasurementField{
					inches("bust", "Bust"),
					inches("waist", "Waist"),
					inches("hip", "Hip"),
					inches("skirt-length", "Skirt Length"),
					inches("blouse-length", "Blouse Length"),
				},
			},
			{
				ID: "kidswear", Name: "Kidswear", BasePrice: kernel.MustMoney(400),
				Designs: []Design{
					design("frock", "Frock", 0),
					design("shirt-pant", "Shirt & Pant", 100),
					design("ethnic-kids", "Ethnic Wear", 150),
					design("party-kids", "Party Wear", 200),
				},
				MeasurementFields: []MeasurementField{
					inches("chest", "Chest"),
					inches("waist", "Waist"),
					inches("length", "Length"),
					inches("sleeve-length", "Sleeve Length"),
				},
			},
		},
		[]AddOn{
			{ID: "computer-embroidery", Name: "Computer Embroidery", Price: kernel.MustMoney(300)},
			{ID: "handloom-work", Name: "Handloom Work", Price: kernel.MustMoney(500)},
			{ID: "mirror-work", Name: "Mirror Work", Price: kernel.MustMoney(400)},
			{ID: "lacework", Name: "Lacework", Price: kernel.MustMoney(250)},
			{ID: "sequin-work", Name: "Sequin Work", Price: kernel.MustMoney(600)},
			{ID: "thread-work", Name: "Thread Work", Price: kernel.MustMoney(350)},
		},
	)
}
