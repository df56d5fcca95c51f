package catalog

// Seed data for the catalog. The base locale is French; other locales
// override display fields through translation bundles at read time.
// Category declaration order drives the grouped catalog view.

var seedCategories = []Category{
	{
		Slug:        "crevettes-crustaces",
		Name:        "Crevettes & crustacés",
		Icon:        "shrimp",
		Description: "Crevettes blanches, rouges, gambas et crustacés de qualité premium méditerranéenne.",
		Image:       "/giant-prawns-shrimp-on-ice-premium.jpg",
	},
	{
		Slug:        "calamars-poulpes",
		Name:        "Calamars & poulpes",
		Icon:        "octopus",
		Description: "Calamars tubes, tentacules et poulpes entiers pêchés en Méditerranée.",
		Image:       "/fresh-calamari-squid-mediterranean-seafood-ice.jpg",
	},
	{
		Slug:        "mollusques",
		Name:        "Mollusques",
		Icon:        "shell",
		Description: "Moules, huîtres, palourdes et coquillages frais ou surgelés de nos côtes.",
		Image:       "/fresh-mussels-shellfish-seafood-ice-premium.jpg",
	},
	{
		Slug:        "poissons-mediterranee",
		Name:        "Poissons Méditerranée",
		Icon:        "fish",
		Description: "Bar, dorade, merlan, sardines et poissons nobles de la Méditerranée.",
		Image:       "/fresh-sea-bream-dorade-fish-on-ice.jpg",
	},
	{
		Slug:        "saumon-thon",
		Name:        "Saumon & thon",
		Icon:        "fish",
		Description: "Filets, pavés et blocs de saumon atlantique et thon de qualité export.",
		Image:       "/fresh-salmon-fillet-premium-seafood-ice.jpg",
	},
	{
		Slug:        "caviar-haute-gastronomie",
		Name:        "Caviar & haute gastronomie",
		Icon:        "sparkles",
		Description: "Caviar d'exception et produits de luxe pour les établissements prestigieux.",
		Image:       "/luxury-caviar-premium-gourmet-seafood.jpg",
	},
	{
		Slug:        "oeufs-de-poisson-boutargue",
		Name:        "Œufs de poisson & Boutargue",
		Icon:        "egg",
		Description: "Œufs de poisson frais, congelés et séchés (boutargue), destinés aux professionnels et à l’export.",
		Image:       "/fish-roe-boutargue-premium-seafood.jpg",
	},
}

var seedProducts = []Product{
	// Poissons Méditerranée
	{
		ID:           "1",
		Slug:         "merou-rouge",
		Name:         "Mérou Rouge",
		LatinName:    "Epinephelus marginatus",
		Category:     "Poissons Méditerranée",
		CategorySlug: "poissons-mediterranee",
		Description:  "Mérou rouge (Hammour) sauvage de Méditerranée, à la chair dense et raffinée, idéal pour des plats signatures au four, à la plancha ou en cuisson lente.",
		Image:        "/products/Merou_Rouge.jpg",
		Tags:         []string{"Premium", "Poisson noble", "HORECA"},
		Origin:       "Méditerranée",
		Type:         "Frais / Congelé",
		Usage:        []string{"Restaurants gastronomiques", "Hôtels", "Traiteurs haut de gamme"},
		Formats:      []string{"Poisson entier", "Tronçons sur commande"},
		Variants:     []Variant{{Kind: "size", Value: "G"}, {Kind: "size", Value: "M"}},
	},
	{
		ID:           "2",
		Slug:         "merou-blanc",
		Name:         "Mérou Blanc",
		LatinName:    "Epinephelus spp.",
		Category:     "Poissons Méditerranée",
		CategorySlug: "poissons-mediterranee",
		Description:  "Mérou blanc de Méditerranée, poisson noble à la chair délicate et savoureuse, parfait pour les cuissons au four, au grill ou en sauce.",
		Image:        "/products/Merou_Blanc.jpg",
		Tags:         []string{"Premium", "Poisson noble", "Export"},
		Origin:       "Méditerranée",
		Type:         "Frais / Congelé",
		Usage:        []string{"Restaurants de spécialités", "Hôtels", "Poissonneries haut de gamme"},
		Formats:      []string{"Entier en caisse glacée", "Tronçonné sur demande"},
		Variants:     []Variant{{Kind: "size", Value: "G"}, {Kind: "size", Value: "M"}},
	},
	{
		ID:           "3",
		Slug:         "pagre",
		Name:         "Pagre",
		LatinName:    "Pagrus pagrus",
		Category:     "Poissons Méditerranée",
		CategorySlug: "poissons-mediterranee",
		Description:  "Pagre (Merjan) frais de Méditerranée, poisson à la chair blanche et ferme, très apprécié pour les grillades et les recettes traditionnelles tunisiennes.",
		Image:        "/products/Pagre.jpg",
		Tags:         []string{"Poisson blanc", "Traditionnel"},
		Origin:       "Méditerranée",
		Type:         "Frais",
		Usage:        []string{"Poissonneries", "Restaurants", "Cuisine familiale"},
		Formats:      []string{"Caisse vrac", "Conditionnement export"},
		Variants:     []Variant{{Kind: "size", Value: "G"}, {Kind: "size", Value: "M"}},
	},
	{
		ID:           "5",
		Slug:         "dorade",
		Name:         "Dorade",
		LatinName:    "Sparus aurata",
		Category:     "Poissons Méditerranée",
		CategorySlug: "poissons-mediterranee",
		Description:  "Dorade entière de Méditerranée, au profil fin et élégant, idéale pour une cuisson au four, en croûte de sel ou à la grillade entière.",
		Image:        "/products/Daurade.jpg",
		Tags:         []string{"Poisson emblématique", "HORECA"},
		Origin:       "Méditerranée",
		Type:         "Frais",
		Usage:        []string{"Restaurants", "Hôtels", "Poissonneries"},
		Formats:      []string{"Entière en caisse glacée"},
		Variants:     []Variant{{Kind: "size", Value: "G"}, {Kind: "size", Value: "P"}},
	},
	{
		ID:           "7",
		Slug:         "loup",
		Name:         "Loup entier",
		LatinName:    "Dicentrarchus labrax",
		Category:     "Poissons Méditerranée",
		CategorySlug: "poissons-mediterranee",
		Description:  "Loup de mer (bar) entier de Méditerranée, à la chair fine et délicate, parfait pour les cuissons en croûte, au four ou à la plancha.",
		Image:        "/products/loup.jpg",
		Tags:         []string{"Poisson blanc", "HORECA"},
		Origin:       "Méditerranée",
		Type:         "Frais",
		Usage:        []string{"Restaurants", "Poissonneries", "Cuisine familiale"},
		Formats:      []string{"Caisse vrac", "Conditionnement HORECA"},
		Variants:     []Variant{{Kind: "size", Value: "P"}, {Kind: "size", Value: "G"}},
	},
	{
		ID:           "8",
		Slug:         "rouget-de-roche",
		Name:         "Rouget de Roche",
		LatinName:    "Mullus surmuletus",
		Category:     "Poissons Méditerranée",
		CategorySlug: "poissons-mediterranee",
		Description:  "Rouget de roche, poisson coloré au goût prononcé et iodé, très recherché pour les assiettes gastronomiques et les recettes méditerranéennes.",
		Image:        "/products/Rouget_de_Roche.jpg",
		Tags:         []string{"Gastronomie", "Poisson coloré"},
		Origin:       "Méditerranée",
		Type:         "Frais",
		Usage:        []string{"Restaurants gastronomiques", "Bistrots de mer"},
		Formats:      []string{"Caisse vrac"},
		IsBestSeller: true,
	},
	{
		ID:           "9",
		Slug:         "merlu",
		Name:         "Merlu",
		LatinName:    "Merluccius merluccius",
		Category:     "Poissons Méditerranée",
		CategorySlug: "poissons-mediterranee",
		Description:  "Merlu de Méditerranée, à la chair tendre et légère, idéal pour fritures, cuissons à la vapeur, en sauce ou en brandade.",
		Image:        "/products/Merlu.jpg",
		Tags:         []string{"Poisson blanc", "Polyvalent"},
		Origin:       "Méditerranée",
		Type:         "Frais / Congelé",
		Usage:        []string{"Restauration collective", "Poissonneries", "Transformation"},
		Formats:      []string{"Caisse vrac 5–10 kg"},
		Variants:     []Variant{{Kind: "size", Value: "M"}, {Kind: "size", Value: "G"}},
	},
	{
		ID:           "10",
		Slug:         "tilapia-du-nil",
		Name:         "Tilapia du Nil",
		LatinName:    "Oreochromis niloticus",
		Category:     "Poissons Méditerranée",
		CategorySlug: "poissons-mediterranee",
		Description:  "Tilapia du Nil issu d’aquaculture contrôlée, poisson à la chair douce et neutre, apprécié pour les fritures, poêlées et préparations épicées.",
		Image:        "/products/Tilapia_du_Nil.jpg",
		Tags:         []string{"Aquaculture", "Poisson économique"},
		Origin:       "Élevage contrôlé",
		Type:         "Frais / Congelé",
		Usage:        []string{"Restaurants", "Restauration rapide", "Poissonneries"},
		Formats:      []string{"Caisse vrac", "Sachets selon grammage"},
	},
	{
		ID:           "11",
		Slug:         "tilapia-rouge",
		Name:         "Tilapia rouge",
		LatinName:    "Oreochromis spp.",
		Category:     "Poissons Méditerranée",
		CategorySlug: "poissons-mediterranee",
		Description:  "Tilapia rouge, poisson d’élevage à la chair tendre et moelleuse, idéal pour fritures entières, grillades et plats familiaux.",
		Image:        "/products/tilapia-rouge.jpg",
		Tags:         []string{"Aquaculture", "Coloré"},
		Origin:       "Élevage",
		Type:         "Frais / Congelé",
		Usage:        []string{"Poissonneries", "Restauration familiale"},
		Formats:      []string{"Caisse vrac", "Conditionnement au poids"},
	},
	{
		ID:           "12",
		Slug:         "filets-de-tilapia",
		Name:         "Filets de tilapia",
		LatinName:    "Oreochromis niloticus",
		Category:     "Poissons Méditerranée",
		CategorySlug: "poissons-mediterranee",
		Description:  "Filets de tilapia désarêtés, prêts à cuire, parfaits pour fritures, panures, plats diététiques et restauration rapide.",
		Image:        "/products/tilapia-fillet.jpg",
		Tags:         []string{"Prêt à cuire", "Filets"},
		Origin:       "Élevage",
		Type:         "Congelé",
		Usage:        []string{"Restaurants", "Restauration rapide", "Collectivités"},
		Formats:      []string{"Sachets 1 kg", "Cartons 5–10 kg"},
		IsBestSeller: true,
	},
	{
		ID:           "13",
		Slug:         "carpe",
		Name:         "Carpe",
		LatinName:    "Cyprinus carpio",
		Category:     "Poissons Méditerranée",
		CategorySlug: "poissons-mediterranee",
		Description:  "Carpe d’eau douce, poisson traditionnel à la chair ferme, adapté aux recettes mijotées, grillades et spécialités régionales.",
		Image:        "/products/Carpe.jpg",
		Tags:         []string{"Poisson d'eau douce", "Traditionnel"},
		Origin:       "Élevage / Eau douce",
		Type:         "Frais",
		Usage:        []string{"Restaurants traditionnels", "Poissonneries"},
		Formats:      []string{"Caisse vrac"},
		Variants:     []Variant{{Kind: "size", Value: "M"}, {Kind: "size", Value: "G"}},
	},
	{
		ID:           "14",
		Slug:         "filets-de-carpe",
		Name:         "Filets de Carpe",
		LatinName:    "Cyprinus carpio",
		Category:     "Poissons Méditerranée",
		CategorySlug: "poissons-mediterranee",
		Description:  "Filets de carpe préparés et désarêtés, pratiques pour une utilisation directe en cuisine, en friture, sauce ou cuisson au four.",
		Image:        "/products/Filets_de_Carpe.jpg",
		Tags:         []string{"Prêt à cuire", "Filets"},
		Origin:       "Élevage / Eau douce",
		Type:         "Frais / Congelé",
		Usage:        []string{"Restaurants", "Poissonneries", "Traiteurs"},
		Formats:      []string{"Barquettes sous-vide", "Sachets congélation"},
	},
	{
		ID:           "15",
		Slug:         "sole",
		Name:         "Sole",
		LatinName:    "Solea solea",
		Category:     "Poissons Méditerranée",
		CategorySlug: "poissons-mediterranee",
		Description:  "Sole de Méditerranée, poisson plat à la chair fine et délicate, incontournable pour les cartes gastronomiques.",
		Image:        "/products/soll.jpg",
		Tags:         []string{"Poisson plat", "Gastronomie"},
		Origin:       "Méditerranée",
		Type:         "Frais",
		Usage:        []string{"Restaurants gastronomiques", "Hôtels", "Poissonneries premium"},
		Formats:      []string{"Caisse vrac", "Calibrée HORECA"},
		Variants:     []Variant{{Kind: "size", Value: "M"}, {Kind: "size", Value: "G"}},
	},
	{
		ID:           "16",
		Slug:         "mulet",
		Name:         "Mulet",
		LatinName:    "Mugil cephalus",
		Category:     "Poissons Méditerranée",
		CategorySlug: "poissons-mediterranee",
		Description:  "Mulet de Méditerranée, poisson à la chair savoureuse souvent utilisé pour grillades, tajines et préparation de boutargue.",
		Image:        "/products/Mulet.jpg",
		Tags:         []string{"Poisson traditionnel", "Pour boutargue"},
		Origin:       "Méditerranée",
		Type:         "Frais",
		Usage:        []string{"Poissonneries", "Restaurants", "Transformation en boutargue"},
		Formats:      []string{"Caisse vrac"},
		Variants:     []Variant{{Kind: "size", Value: "M"}},
	},

	// Saumon & thon
	{
		ID:           "19",
		Slug:         "filets-de-saumon-avec-peau",
		Name:         "Filets de saumon (avec peau)",
		LatinName:    "Salmo salar",
		Category:     "Saumon & thon",
		CategorySlug: "saumon-thon",
		Description:  "Filets de saumon Atlantique avec peau, riches en oméga-3, parfaits pour grillades, cuisson au four ou plancha.",
		Image:        "/products/Filets_de_saumon_avec_peau.jpg",
		Tags:         []string{"Filets", "Oméga-3", "Premium"},
		Origin:       "Norvège / Élevage contrôlé",
		Type:         "Frais / Congelé",
		Usage:        []string{"Restaurants", "Hôtels", "Distribution retail"},
		Formats:      []string{"Filets calibrés", "Cartons 5–10 kg"},
		Variants:     []Variant{{Kind: "preparation", Value: "Avec peau"}},
	},
	{
		ID:           "20",
		Slug:         "filets-de-saumon-sans-peau",
		Name:         "Filets de saumon (sans peau)",
		LatinName:    "Salmo salar",
		Category:     "Saumon & thon",
		CategorySlug: "saumon-thon",
		Description:  "Filets de saumon sans peau, prêts à portionner ou à cuisiner, adaptés aux restaurants, snacking premium et plats préparés.",
		Image:        "/products/Filets_de_saumon_sans_peau.jpg",
		Tags:         []string{"Prêt à portionner", "Filets"},
		Origin:       "Norvège / Élevage contrôlé",
		Type:         "Congelé",
		Usage:        []string{"Restauration", "Industrie agroalimentaire", "Traiteurs"},
		Formats:      []string{"Blocs ou filets sous-vide", "Carton export"},
		Variants:     []Variant{{Kind: "preparation", Value: "Sans peau"}},
	},
	{
		ID:           "21",
		Slug:         "tranches-de-saumon-fume",
		Name:         "Tranches de saumon fumé",
		LatinName:    "Salmo salar",
		Category:     "Saumon & thon",
		CategorySlug: "saumon-thon",
		Description:  "Tranches de saumon fumé délicatement, prêtes à être dressées sur toasts, plateaux traiteur ou buffets froids.",
		Image:        "/products/Tranches_de_saumon_fumé.jpg",
		Tags:         []string{"Fumé", "Traiteur", "Premium"},
		Origin:       "Norvège",
		Type:         "Frais / Sous-vide",
		Usage:        []string{"Traiteurs", "Hôtels", "Événementiel"},
		Formats:      []string{"Plaques tranchées sous-vide"},
		IsBestSeller: true,
	},

	// Calamars & poulpes
	{
		ID:           "22",
		Slug:         "encornet",
		Name:         "Encornet",
		LatinName:    "Loligo vulgaris",
		Category:     "Calamars & poulpes",
		CategorySlug: "calamars-poulpes",
		Description:  "Encornet (h’bar) tendre et savoureux, idéal pour fritures, farcis, sauces ou préparations à la plancha.",
		Image:        "/products/Encornet.jpg",
		Tags:         []string{"Cuisine méditerranéenne", "Friture"},
		Origin:       "Méditerranée",
		Type:         "Frais / Congelé",
		Usage:        []string{"Restaurants", "Poissonneries", "Snacking de mer"},
		Formats:      []string{"Caisse vrac", "Sachets IQF"},
	},
	{
		ID:           "23",
		Slug:         "poulpe",
		Name:         "Poulpe",
		LatinName:    "Octopus vulgaris",
		Category:     "Calamars & poulpes",
		CategorySlug: "calamars-poulpes",
		Description:  "Poulpe de Méditerranée, idéal pour grillades, salades tièdes, tapas et plats traditionnels longuement mijotés.",
		Image:        "/products/Poulpe.jpg",
		Tags:         []string{"Tapas", "Grillade", "HORECA"},
		Origin:       "Méditerranée",
		Type:         "Congelé",
		Usage:        []string{"Restaurants", "Bars à tapas", "Traiteurs"},
		Formats:      []string{"Vrac IQF", "Pièces entières"},
		Variants: []Variant{
			{Kind: "type", Value: "Vrac"},
			{Kind: "size", Value: "G"},
			{Kind: "size", Value: "GG"},
			{Kind: "preparation", Value: "Découpée"},
		},
	},
	{
		ID:           "24",
		Slug:         "calamar-tube-100-300",
		Name:         "Calamar",
		LatinName:    "Loligo vulgaris",
		Category:     "Calamars & poulpes",
		CategorySlug: "calamars-poulpes",
		Description:  "Tubes de calamar calibrés 100/300, parfaitement nettoyés, prêts à être farcis, coupés en anneaux ou poêlés.",
		Image:        "/products/Calamar_Tube.jpg",
		Tags:         []string{"Prêt à farcir", "Standardisé"},
		Origin:       "Méditerranée",
		Type:         "Congelé IQF",
		Usage:        []string{"Restaurants", "Industrie", "Traiteurs"},
		Formats:      []string{"Cartons 10 kg IQF"},
		Variants:     []Variant{{Kind: "caliber", Value: "100/300"}},
	},

	// Crevettes & crustacés
	{
		ID:           "28",
		Slug:         "langouste",
		Name:         "Langouste",
		LatinName:    "Palinurus elephas",
		Category:     "Crevettes & crustacés",
		CategorySlug: "crevettes-crustaces",
		Description:  "Langouste de roche, crustacé d’exception pour plateaux de fruits de mer, menus gastronomiques et événements haut de gamme.",
		Image:        "/products/Langouste.jpg",
		Tags:         []string{"Prestige", "Gastronomie", "Fruits de mer"},
		Origin:       "Méditerranée / Atlantique",
		Type:         "Congelé",
		Usage:        []string{"Restaurants gastronomiques", "Hôtels de luxe", "Traiteurs événementiels"},
		Formats:      []string{"Pièce entière congelée", "Carton export"},
	},
	{
		ID:           "29",
		Slug:         "crevette-blanche",
		Name:         "Crevette Blanche",
		LatinName:    "Penaeus spp.",
		Category:     "Crevettes & crustacés",
		CategorySlug: "crevettes-crustaces",
		Description:  "Crevette blanche polyvalente, idéale pour grillades, sautés, plats en sauce, paellas ou garnitures de pâtes.",
		Image:        "/products/Crevette_Blanche.jpg",
		Tags:         []string{"Polyvalente", "HORECA"},
		Origin:       "Méditerranée / Aquaculture",
		Type:         "Congelé",
		Usage:        []string{"Restaurants", "Restauration rapide", "Traiteurs"},
		Formats:      []string{"Vrac IQF", "Sachets 1–2 kg"},
		Variants: []Variant{
			{Kind: "pieces", Value: "60p"},
			{Kind: "preparation", Value: "Décortiquée"},
			{Kind: "type", Value: "Vrac"},
		},
	},
	{
		ID:           "30",
		Slug:         "chevrette",
		Name:         "Chevrette",
		LatinName:    "Penaeus kerathurus",
		Category:     "Crevettes & crustacés",
		CategorySlug: "crevettes-crustaces",
		Description:  "Chevrette (caramote) locale, à la saveur fine et sucrée, très appréciée pour les fritures, grillades et plats méditerranéens.",
		Image:        "/products/chevrette.jpg",
		Tags:         []string{"Locale", "Frais", "Gastronomie"},
		Origin:       "Tunisie / Méditerranée",
		Type:         "Frais / Congelé",
		Usage:        []string{"Bistrots de mer", "Restaurants", "Épiceries fines"},
		Formats:      []string{"Vrac", "Barquette"},
		Variants:     []Variant{{Kind: "preparation", Value: "Entière"}, {Kind: "preparation", Value: "Décortiquée"}},
	},
	{
		ID:           "31",
		Slug:         "crabe-bleu-decoupe",
		Name:         "Crab Bleu (Découpé)",
		LatinName:    "Callinectes sapidus",
		Category:     "Crevettes & crustacés",
		CategorySlug: "crevettes-crustaces",
		Description:  "Crabe bleu découpé, à la chair parfumée, idéal pour bisques, sauces, pâtes, paellas et buffets de fruits de mer.",
		Image:        "/products/Crab_Bleu.jpg",
		Tags:         []string{"Crabe bleu", "Cuisine créative"},
		Origin:       "Méditerranée",
		Type:         "Congelé",
		Usage:        []string{"Restaurants", "Traiteurs", "Cuisine fusion"},
		Formats:      []string{"Sachets 1 kg", "Cartons 5–10 kg"},
		Variants:     []Variant{{Kind: "preparation", Value: "Découpé"}},
	},
	{
		ID:           "32",
		Slug:         "crevette-rouge",
		Name:         "Crevette Rouge",
		LatinName:    "Aristeus antennatus",
		Category:     "Crevettes & crustacés",
		CategorySlug: "crevettes-crustaces",
		Description:  "Crevette rouge de profondeur, très recherchée pour sa couleur vive et sa chair fine, parfaite pour plats signatures et dressages raffinés.",
		Image:        "/products/red-shrimp.jpg",
		Tags:         []string{"Premium", "Profondeur", "Gastronomie"},
		Origin:       "Méditerranée",
		Type:         "Frais / Congelé",
		Usage:        []string{"Restaurants gastronomiques", "Bars à tapas haut de gamme"},
		Formats:      []string{"Vrac IQF", "Cartons export"},
		Variants: []Variant{
			{Kind: "pieces", Value: "15"},
			{Kind: "pieces", Value: "50"},
			{Kind: "pieces", Value: "10"},
			{Kind: "preparation", Value: "Sans tête"},
		},
	},
	{
		ID:           "40",
		Slug:         "crevette-blanche-sans-tete",
		Name:         "Crevette Blanche (Sans tête)",
		LatinName:    "Penaeus vannamei",
		Category:     "Crevettes & crustacés",
		CategorySlug: "crevettes-crustaces",
		Description:  "Crevette blanche préparée sans tête, pratique et régulière, idéale pour wok, sautés, plats mijotés, buffets et restauration rapide.",
		Image:        "/products/Crevette_Blanche_sans_tete.jpg",
		Tags:         []string{"Sans tête", "Pratique", "Standardisée"},
		Origin:       "Aquaculture contrôlée",
		Type:         "Congelé",
		Usage:        []string{"Restauration", "Cuisine asiatique", "Plats préparés"},
		Formats:      []string{"Blocs surgelés", "Sachets 1–2 kg"},
		Variants: []Variant{
			{Kind: "size", Value: "30/40"},
			{Kind: "size", Value: "40/50"},
			{Kind: "size", Value: "50/60"},
		},
	},
	{
		ID:           "42",
		Slug:         "crevette-rose",
		Name:         "Crevette Rose",
		LatinName:    "Parapenaeus longirostris",
		Category:     "Crevettes & crustacés",
		CategorySlug: "crevettes-crustaces",
		Description:  "Crevette rose de Méditerranée, appréciée pour sa chair tendre et savoureuse. Polyvalente en cuisine, idéale pour plats chauds, salades, pâtes et préparations gastronomiques.",
		Image:        "/products/crevette_rose.png",
		Tags:         []string{"Frais", "Polyvalent", "Gastronomie"},
		Origin:       "Méditerranée",
		Type:         "Frais / Congelé",
		Usage:        []string{"Restaurants", "Traiteurs", "Poissonneries"},
		Formats:      []string{"Vrac IQF", "Cartons export"},
		Variants: []Variant{
			{Kind: "caliber", Value: "10/20"},
			{Kind: "caliber", Value: "20/30"},
			{Kind: "preparation", Value: "Entière"},
			{Kind: "preparation", Value: "Décortiquée"},
		},
	},

	// Mollusques
	{
		ID:           "33",
		Slug:         "mixte-fruits-de-mer",
		Name:         "Mixte fruits de mer",
		Category:     "Mollusques",
		CategorySlug: "mollusques",
		Description:  "Mélange de fruits de mer prêt à l’emploi, idéal pour paellas, risottos, pizzas, pâtes et woks de la mer.",
		Image:        "/products/fruit_de_mer_mixte.jpg",
		Tags:         []string{"Mixte", "Prêt à cuisiner"},
		Origin:       "Sélection Méditerranée / Atlantique",
		Type:         "Congelé",
		Usage:        []string{"Restauration rapide", "Collectivités", "Traiteurs"},
		Formats:      []string{"Sachets 1–2,5 kg", "Cartons 10 kg"},
	},

	// Caviar & haute gastronomie
	{
		ID:           "34",
		Slug:         "caviar-beluga",
		Name:         "Caviar Beluga",
		LatinName:    "Huso huso",
		Category:     "Caviar & haute gastronomie",
		CategorySlug: "caviar-haute-gastronomie",
		Description:  "Caviar Beluga, perles larges et fondantes, produit d’exception pour tables gastronomiques, réceptions VIP et accords mets & champagne.",
		Image:        "/products/beluga.jpeg",
		Tags:         []string{"Luxe", "Ultra-premium", "Gastronomie"},
		Origin:       "Élevage contrôlé",
		Type:         "Frais",
		Usage:        []string{"Restaurants étoilés", "Hôtels de luxe", "Événementiel haut de gamme"},
		Formats:      []string{"Boîtes 30 g", "50 g", "100 g", "250 g"},
	},
	{
		ID:           "35",
		Slug:         "caviar-impérial",
		Name:         "Caviar Impérial",
		LatinName:    "Acipenser spp.",
		Category:     "Caviar & haute gastronomie",
		CategorySlug: "caviar-haute-gastronomie",
		Description:  "Caviar Impérial, grains équilibrés et aromatiques, idéal pour room service, plateaux premium et dégustations raffinées.",
		Image:        "/products/imperial-caviar.jpeg",
		Tags:         []string{"Premium", "Luxe"},
		Origin:       "Élevage contrôlé",
		Type:         "Frais",
		Usage:        []string{"Hôtels", "Épiceries fines", "Traiteurs de prestige"},
		Formats:      []string{"Boîtes 30 g", "50 g", "100 g"},
	},
	{
		ID:           "36",
		Slug:         "caviar-osetra",
		Name:         "Caviar Osetra",
		LatinName:    "Acipenser gueldenstaedtii",
		Category:     "Caviar & haute gastronomie",
		CategorySlug: "caviar-haute-gastronomie",
		Description:  "Caviar Osetra, grains dorés à ambrés, aux notes de noisette, parfait pour les cartes gastronomiques et accords mets & vodka.",
		Image:        "/products/ossetra-caviar.jpeg",
		Tags:         []string{"Luxe", "Haute gastronomie"},
		Origin:       "Élevage contrôlé",
		Type:         "Frais",
		Usage:        []string{"Restaurants gastronomiques", "Bars à caviar", "Événements privés"},
		Formats:      []string{"Boîtes 30 g", "50 g", "100 g"},
	},

	// Œufs de poisson & Boutargue
	{
		ID:           "37",
		Slug:         "boutargue-poudre",
		Name:         "Boutargue en poudre",
		LatinName:    "Mugil cephalus",
		Category:     "Caviar & haute gastronomie",
		CategorySlug: "oeufs-de-poisson-boutargue",
		Description:  "Boutargue de mulet finement moulue, issue de poches d’œufs séchées et affinées. Condiment d’exception au goût marin intense, idéale pour sublimer pâtes, risottos, œufs, salades et créations gastronomiques.",
		Image:        "/products/50g.jpg",
		Tags:         []string{"Poudre", "Produit premium", "Gastronomie"},
		Origin:       "Méditerranée",
		Type:         "Sec",
		Usage:        []string{"Restaurants gastronomiques", "Épiceries fines", "Traiteurs"},
		Formats:      []string{"Pot 50g", "Pot 100g"},
		Variants: []Variant{
			{Kind: "size", Value: "50g"},
			{Kind: "size", Value: "100g"},
			{Kind: "size", Value: "250g"},
		},
	},
	{
		ID:           "38",
		Slug:         "boutargue-congelee",
		Name:         "Boutargue congelée",
		LatinName:    "Mugil cephalus",
		Category:     "Caviar & haute gastronomie",
		CategorySlug: "oeufs-de-poisson-boutargue",
		Description:  "Boutargue congelée, idéale pour le stockage longue durée tout en préservant la qualité, la texture et le potentiel aromatique.",
		Image:        "/products/bottarga-frozen.jpg",
		Tags:         []string{"Congelé", "Stockage longue durée"},
		Origin:       "Méditerranée",
		Type:         "Congelé",
		Usage:        []string{"Grossistes", "Export", "Industrie agroalimentaire"},
		Formats:      []string{"Pièce entière sous-vide", "Cartons export"},
	},
	{
		ID:           "39",
		Slug:         "boutargue-sechee",
		Name:         "Boutargue séchée",
		LatinName:    "Mugil cephalus",
		Category:     "Caviar & haute gastronomie",
		CategorySlug: "oeufs-de-poisson-boutargue",
		Description:  "Boutargue séchée traditionnelle, affinée pour une saveur intense et saline, parfaite râpée sur pâtes, risottos ou servie en fines tranches.",
		Image:        "/products/dried-bouttarga.jpg",
		Tags:         []string{"Séché", "Produit premium", "Artisanal"},
		Origin:       "Méditerranée",
		Type:         "Sec",
		Usage:        []string{"Restaurants gastronomiques", "Épiceries fines"},
		Formats:      []string{"Pièce entière", "Tranchée sous-vide"},
		Variants:     []Variant{{Kind: "size", Value: "1kg"}},
		IsBestSeller: true,
	},
	{
		ID:           "41",
		Slug:         "boutargue-calmar",
		Name:         "Boutargue de calmar",
		LatinName:    "Loligo vulgaris",
		Category:     "Caviar & haute gastronomie",
		CategorySlug: "oeufs-de-poisson-boutargue",
		Description:  "Boutargue de calmar séchée, délicatement salée et affinée pour offrir une texture fondante et une saveur marine intense. Parfaite râpée sur pâtes, risottos, œufs ou dégustée en fines tranches.",
		Image:        "/products/squid_eggs.jpg",
		Tags:         []string{"Séché", "Produit premium", "Gastronomie"},
		Origin:       "Méditerranée",
		Type:         "Sec",
		Usage:        []string{"Restaurants gastronomiques", "Épiceries fines"},
		Formats:      []string{"Pièce entière", "Tranchée sous-vide"},
		Variants: []Variant{
			{Kind: "size", Value: "500g"},
			{Kind: "size", Value: "1kg"},
		},
		IsBestSeller: true,
	},
}
