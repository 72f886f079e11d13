package domain

// ContentSection is read-only educational content. The engine only reads
// ID and XPReward; Data is an opaque display payload.
type ContentSection struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	XPReward    int    `json:"xpReward"`
	ContentType string `json:"contentType"`
	Data        any    `json:"data"`
}

type Recipe struct {
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
	Preparation []string `json:"preparation"`
	Benefits    string   `json:"benefits,omitempty"`
}

var ContentSections = []ContentSection{
	{
		ID: "teas", Title: "Chás para Emagrecer",
		Description: "Acelere seu metabolismo com estas receitas potentes.",
		Icon:        "Coffee", Color: "bg-green-500", XPReward: 100, ContentType: "recipe-list",
		Data: []Recipe{
			{
				Name:        "Chá de Hibisco com Canela",
				Ingredients: []string{"1 colher de sopa de hibisco seco", "1 pau de canela", "500ml de água"},
				Preparation: []string{"Ferva a água", "Adicione o hibisco e a canela", "Tampe e deixe descansar por 10 min", "Coe e beba"},
				Benefits:    "Reduz a retenção de líquidos e controla picos de insulina.",
			},
			{
				Name:        "Chá Verde com Limão e Gengibre",
				Ingredients: []string{"1 sachê ou colher de chá verde", "Suco de meio limão", "2 rodelas de gengibre", "300ml de água"},
				Preparation: []string{"Aqueça a água (não deixe ferver)", "Adicione o chá e o gengibre", "Abafe por 5 min", "Adicione o limão antes de beber"},
				Benefits:    "Termogênico natural que acelera a queima de gordura.",
			},
			{
				Name:        "Chá de Dente-de-leão",
				Ingredients: []string{"1 colher de raiz de dente-de-leão", "300ml de água"},
				Preparation: []string{"Ferva a água com a raiz por 3 min", "Desligue e deixe repousar por 5 min", "Coe e sirva"},
				Benefits:    "Melhora a digestão e combate o inchaço abdominal.",
			},
		},
	},
	{
		ID: "quick-recipes", Title: "Receitas Rápidas",
		Description: "Refeições saudáveis em menos de 20 minutos.",
		Icon:        "Utensils", Color: "bg-orange-500", XPReward: 150, ContentType: "recipe-list",
		Data: []Recipe{
			{
				Name:        "Omelete de Espinafre",
				Ingredients: []string{"2 ovos", "1 xícara de espinafre", "Sal e pimenta a gosto"},
				Preparation: []string{"Bata os ovos", "Refogue o espinafre", "Despeje os ovos e cozinhe em fogo baixo"},
			},
			{
				Name:        "Frango Grelhado com Legumes",
				Ingredients: []string{"1 filé de frango", "Abobrinha e cenoura em tiras", "Azeite e ervas"},
				Preparation: []string{"Tempere o frango", "Grelhe 5 min de cada lado", "Salteie os legumes no azeite"},
			},
		},
	},
	{
		ID: "foods-to-eat", Title: "10 Super Alimentos",
		Description: "Os melhores aliados da sua dieta.",
		Icon:        "Salad", Color: "bg-emerald-500", XPReward: 80, ContentType: "text-list",
		Data: []string{
			"Ovos", "Aveia", "Batata-doce", "Frango", "Peixes", "Folhas verdes",
			"Frutas vermelhas", "Iogurte natural", "Castanhas", "Leguminosas",
		},
	},
	{
		ID: "hydration", Title: "Guia da Água",
		Description: "Quanto beber e como criar o hábito.",
		Icon:        "GlassWater", Color: "bg-blue-500", XPReward: 50, ContentType: "guide",
		Data: []string{
			"Beba 35ml por quilo de peso corporal por dia",
			"Comece o dia com um copo de água em jejum",
			"Beba um copo antes de cada refeição",
		},
	},
	{
		ID: "breakfast", Title: "Café da Manhã",
		Description: "Comece o dia com energia e saciedade.",
		Icon:        "Zap", Color: "bg-yellow-500", XPReward: 100, ContentType: "recipe-list",
		Data: []Recipe{
			{
				Name:        "Panqueca de Banana e Aveia",
				Ingredients: []string{"1 banana", "1 ovo", "2 colheres de aveia"},
				Preparation: []string{"Amasse a banana", "Misture com ovo e aveia", "Doure dos dois lados em fogo baixo"},
			},
		},
	},
	{
		ID: "daily-guidelines", Title: "Orientações Diárias",
		Description: "Checklist do dia para manter o foco.",
		Icon:        "ClipboardList", Color: "bg-cyan-600", XPReward: 110, ContentType: "daily-guidelines",
		Data: []string{
			"Beba água ao acordar", "Proteína em todas as refeições",
			"Caminhe pelo menos 20 minutos", "Evite açúcar refinado",
			"Durma 7 a 8 horas",
		},
	},
	{
		ID: "foods-to-avoid", Title: "Alimentos para evitar",
		Description: "Sabote menos, emagreça mais.",
		Icon:        "Ban", Color: "bg-red-500", XPReward: 50, ContentType: "avoid-list",
		Data: []string{
			"Refrigerantes e sucos de caixinha", "Frituras", "Embutidos",
			"Doces industrializados", "Álcool em excesso",
		},
	},
	{
		ID: "sleep", Title: "Sono Saudável",
		Description: "Dormir bem também emagrece.",
		Icon:        "Moon", Color: "bg-indigo-500", XPReward: 70, ContentType: "guide",
		Data: []string{
			"Desligue as telas 1 hora antes de dormir",
			"Mantenha horários regulares",
			"Evite cafeína após as 16h",
		},
	},
	{
		ID: "tabata", Title: "Treino Tabata",
		Description: "4 minutos de alta intensidade: 20s de esforço, 10s de descanso, 8 rodadas.",
		Icon:        "Dumbbell", Color: "bg-purple-600", XPReward: 200, ContentType: "guide",
		Data: []string{
			"Polichinelos", "Agachamentos", "Corrida parada", "Prancha",
		},
	},
	{
		ID: "valuable-tips", Title: "Dicas Valiosas",
		Description: "Pequenas mudanças, grandes resultados.",
		Icon:        "Sparkles", Color: "bg-pink-500", XPReward: 120, ContentType: "valuable-tips",
		Data: []string{
			"Coma devagar e mastigue bem",
			"Monte o prato com metade de vegetais",
			"Planeje as refeições da semana",
			"Não vá ao mercado com fome",
		},
	},
}

// FindSection resolves a content section by id.
func FindSection(id string) (ContentSection, bool) {
	for _, s := range ContentSections {
		if s.ID == id {
			return s, true
		}
	}
	return ContentSection{}, false
}
