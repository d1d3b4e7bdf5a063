package services

import "persianas-backend/internal/models"

// defaultCatalog is the starter set of roller blinds used on cold start.
// Prices are per square meter, distributor and client tiers.
func defaultCatalog() []models.Product {
	return []models.Product{
		{
			Name:             "Persiana Enrollable Blackout",
			Description:      "Bloqueo total de luz, ideal para recámaras. Tela de alta densidad con respaldo térmico.",
			DistributorPrice: 450.0,
			ClientPrice:      585.0,
			Colors: models.ColorList{
				{Name: "Blanco", Code: "#FFFFFF"},
				{Name: "Beige", Code: "#F5F5DC"},
				{Name: "Gris", Code: "#808080"},
				{Name: "Negro", Code: "#000000"},
				{Name: "Azul Marino", Code: "#000080"},
			},
		},
		{
			Name:             "Persiana Enrollable Traslúcida",
			Description:      "Permite el paso de luz difusa, perfecta para salas y comedores. Disponible en múltiples colores.",
			DistributorPrice: 350.0,
			ClientPrice:      455.0,
			Colors: models.ColorList{
				{Name: "Blanco", Code: "#FFFFFF"},
				{Name: "Crema", Code: "#FFFDD0"},
				{Name: "Arena", Code: "#C2B280"},
				{Name: "Gris Claro", Code: "#D3D3D3"},
			},
		},
		{
			Name:             "Persiana Screen 5%",
			Description:      "Visibilidad hacia el exterior con protección solar. Reduce el calor y rayos UV.",
			DistributorPrice: 520.0,
			ClientPrice:      676.0,
			Colors: models.ColorList{
				{Name: "Blanco/Gris", Code: "#E8E8E8"},
				{Name: "Gris/Negro", Code: "#4A4A4A"},
				{Name: "Beige/Bronce", Code: "#C4A484"},
				{Name: "Charcoal", Code: "#36454F"},
			},
		},
		{
			Name:             "Persiana Día/Noche",
			Description:      "Sistema dual con franjas alternas para control preciso de luz y privacidad.",
			DistributorPrice: 480.0,
			ClientPrice:      624.0,
			Colors: models.ColorList{
				{Name: "Blanco", Code: "#FFFFFF"},
				{Name: "Marfil", Code: "#FFFFF0"},
				{Name: "Gris", Code: "#808080"},
				{Name: "Chocolate", Code: "#7B3F00"},
			},
		},
		{
			Name:             "Persiana Decorativa Premium",
			Description:      "Diseños exclusivos con texturas y patrones. Acabado de lujo para espacios elegantes.",
			DistributorPrice: 400.0,
			ClientPrice:      520.0,
			Colors: models.ColorList{
				{Name: "Lino Natural", Code: "#FAF0E6"},
				{Name: "Textura Gris", Code: "#A9A9A9"},
				{Name: "Damasco", Code: "#FFCBA4"},
				{Name: "Perla", Code: "#EAE0C8"},
			},
		},
	}
}
