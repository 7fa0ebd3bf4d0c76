package catalog

import "antshop/models"

func defaultItems() []models.CatalogItem {
	return []models.CatalogItem{
		{
			ID:           GelID,
			Name:         "Gel Antiformigues XYZ (tub 10 g)",
			PriceMinor:   590,
			Pros:         []string{"Alta efectivitat al niu", "Fàcil d'aplicar", "Actua 24–48 h"},
			Cons:         []string{"Pot fer una mica de brutícia", "Cal reaplicar si plou molt"},
			BestFor:      []string{"eliminar colònia", "exterior", "interior"},
			KidsPetsNote: "Mantenir fora de l'abast; evita zones on juguin nens i mascotes.",
		},
		{
			ID:           TrapID,
			Name:         "Trampes Antiformigues ABC (pack 2)",
			PriceMinor:   950,
			Pros:         []string{"Més net i segur", "Sense contacte directe amb el gel", "Durada ~3 setmanes"},
			Cons:         []string{"Una mica més car", "Triga 48–72 h en eliminar la colònia"},
			BestFor:      []string{"amb nens", "amb mascotes", "exterior", "interior"},
			KidsPetsNote: "Disseny tancat; col·locar en zones discretes, no a l'abast directe.",
		},
		{
			ID:           SprayID,
			Name:         "Spray Contacte 123 (500 ml)",
			PriceMinor:   675,
			Pros:         []string{"Efecte immediat", "Ideal per a focus visibles"},
			Cons:         []string{"No arriba al niu", "No elimina la colònia"},
			BestFor:      []string{"acció ràpida", "interior"},
			KidsPetsNote: "Ventila l'estança i segueix les instruccions de seguretat.",
		},
	}
}

func defaultSlots() []models.DeliverySlot {
	return []models.DeliverySlot{
		"Demà 8–10h",
		"Demà 10–12h",
		"Demà 16–18h",
		"Passat demà 8–10h",
		"Passat demà 10–12h",
	}
}
