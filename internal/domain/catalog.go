package domain

// LevelThresholds is the ascending XP table; level is the largest index i
// (1-based) with xp >= LevelThresholds[i-1]. Never indexed directly by
// callers, use the engine's ComputeLevel.
var LevelThresholds = []int{0, 100, 300, 600, 1000, 1500, 2100, 2800, 3600, 5000}

// ComputeLevel derives the level for a cumulative XP total: the largest
// 1-based index i with xp >= LevelThresholds[i-1]. Total for any xp >= 0.
func ComputeLevel(xp int) int {
	level := 1
	for i, threshold := range LevelThresholds {
		if xp >= threshold {
			level = i + 1
		}
	}
	return level
}

const (
	DefaultThemeID    = "theme_default"
	DefaultConfettiID = "confetti_default"
	DefaultFrameID    = "frame_none"
	DefaultAvatarID   = "woman_blonde"
	DefaultWaterGoal  = 8
)

// DefaultInventory is owned by every account from registration on; all
// three entries are price-0 catalog items.
var DefaultInventory = []string{DefaultThemeID, DefaultConfettiID, DefaultFrameID}

// DefaultConfettiColors is the built-in palette used when the equipped
// confetti item cannot be resolved in the catalog.
var DefaultConfettiColors = []string{"#00B4D8", "#FFD60A", "#48CAE4"}

type ItemType string

const (
	ItemTheme    ItemType = "theme"
	ItemConfetti ItemType = "confetti"
	ItemFrame    ItemType = "frame"
	ItemEffect   ItemType = "effect"
)

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// ShopItem is static catalog data. The engine only reads ID, Type and
// Price; Value is an opaque display payload interpreted by the
// presentation layer (gradient config for themes, color list for
// confetti, ring class for frames).
type ShopItem struct {
	ID          string   `json:"id"`
	Type        ItemType `json:"type"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Rarity      Rarity   `json:"rarity"`
	Value       any      `json:"value"`
}

type ThemeValue struct {
	From string `json:"from"`
	To   string `json:"to"`
	Text string `json:"text"`
	BG   string `json:"bg"`
}

var ShopItems = []ShopItem{
	{
		ID: DefaultThemeID, Type: ItemTheme, Name: "Padrão Aqua",
		Description: "O visual clássico do app.", Price: 0, Rarity: RarityCommon,
		Value: ThemeValue{From: "#00B4D8", To: "#48CAE4", Text: "text-brand-darkGreen", BG: "bg-brand-aqua"},
	},
	{
		ID: "feature_darkmode", Type: ItemTheme, Name: "Modo Escuro",
		Description: "Ativa o tema noturno no aplicativo.", Price: 700, Rarity: RarityEpic,
		Value: ThemeValue{From: "#1e293b", To: "#0f172a", Text: "text-white", BG: "bg-slate-800"},
	},
	{
		ID: "feature_pinkmode", Type: ItemTheme, Name: "Modo Rosa",
		Description: "Deixa o aplicativo com tons de rosa claro.", Price: 500, Rarity: RarityEpic,
		Value: ThemeValue{From: "#fce7f3", To: "#fbcfe8", Text: "text-pink-900", BG: "bg-pink-500"},
	},
	{
		ID: "theme_coral", Type: ItemTheme, Name: "Coral Sunset",
		Description: "Tons quentes de coral e laranja.", Price: 100, Rarity: RarityCommon,
		Value: ThemeValue{From: "#FF7F50", To: "#FF6347", Text: "text-orange-900", BG: "bg-orange-500"},
	},
	{
		ID: "theme_purple", Type: ItemTheme, Name: "Purple Dreams",
		Description: "Roxos vibrantes e místicos.", Price: 150, Rarity: RarityRare,
		Value: ThemeValue{From: "#8A2BE2", To: "#4B0082", Text: "text-purple-900", BG: "bg-purple-600"},
	},
	{
		ID: DefaultConfettiID, Type: ItemConfetti, Name: "Confete Padrão",
		Description: "Cores da marca.", Price: 0, Rarity: RarityCommon,
		Value: DefaultConfettiColors,
	},
	{
		ID: "confetti_neon", Type: ItemConfetti, Name: "Confete Neon",
		Description: "Explosão de cores neon.", Price: 80, Rarity: RarityCommon,
		Value: []string{"#FF00FF", "#00FF00", "#00FFFF", "#FFFF00"},
	},
	{
		ID: "confetti_rainbow", Type: ItemConfetti, Name: "Confete Arco-íris",
		Description: "Todas as cores do arco-íris.", Price: 120, Rarity: RarityRare,
		Value: []string{"#FF0000", "#FFA500", "#FFFF00", "#008000", "#0000FF", "#4B0082", "#EE82EE"},
	},
	{
		ID: DefaultFrameID, Type: ItemFrame, Name: "Sem Aro",
		Description: "Simples e limpo.", Price: 0, Rarity: RarityCommon,
		Value: "ring-0",
	},
	{
		ID: "frame_gold", Type: ItemFrame, Name: "Aro Dourado",
		Description: "Brilho dourado no nível.", Price: 200, Rarity: RarityEpic,
		Value: "ring-4 ring-yellow-400 shadow-[0_0_15px_rgba(250,204,21,0.6)]",
	},
	{
		ID: "frame_diamond", Type: ItemFrame, Name: "Aro Diamante",
		Description: "Luxo supremo em diamante.", Price: 500, Rarity: RarityLegendary,
		Value: "ring-4 ring-cyan-300 shadow-[0_0_20px_rgba(34,211,238,0.8)]",
	},
	{
		ID: "effect_none", Type: ItemEffect, Name: "Sem Efeito",
		Description: "Visual padrão.", Price: 0, Rarity: RarityCommon,
		Value: nil,
	},
	{
		ID: "effect_fire", Type: ItemEffect, Name: "Chama Motivadora",
		Description: "Uma chama de energia no fundo da tela inicial.", Price: 300, Rarity: RarityRare,
		Value: "fire",
	},
	{
		ID: "effect_pulse_card", Type: ItemEffect, Name: "Motivação Pulsante",
		Description: "Faz o card de motivação diária piscar.", Price: 300, Rarity: RarityRare,
		Value: "pulse_card",
	},
}

// FindItem resolves a catalog item by id.
func FindItem(id string) (ShopItem, bool) {
	for _, it := range ShopItems {
		if it.ID == id {
			return it, true
		}
	}
	return ShopItem{}, false
}

// FirstItemOfType is the guaranteed fallback entry for a category; the
// catalog always opens with the price-0 default of each type.
func FirstItemOfType(t ItemType) (ShopItem, bool) {
	for _, it := range ShopItems {
		if it.Type == t {
			return it, true
		}
	}
	return ShopItem{}, false
}

type Avatar struct {
	ID         string `json:"id"`
	Icon       string `json:"icon"`
	Label      string `json:"label"`
	ShirtColor string `json:"shirtColor"`
}

var Avatars = []Avatar{
	{ID: "woman_blonde", Icon: "👱‍♀️", Label: "Mulher Loira", ShirtColor: "bg-pink-400"},
	{ID: "woman_brunette", Icon: "👩", Label: "Mulher Morena", ShirtColor: "bg-purple-500"},
	{ID: "woman_black", Icon: "👩🏾", Label: "Mulher Negra", ShirtColor: "bg-amber-500"},
	{ID: "woman_old", Icon: "👵", Label: "Senhora", ShirtColor: "bg-rose-400"},
	{ID: "man_black", Icon: "👨🏾", Label: "Homem Negro", ShirtColor: "bg-emerald-500"},
	{ID: "man_native", Icon: "🧔🏽", Label: "Homem Moreno", ShirtColor: "bg-orange-500"},
	{ID: "young", Icon: "🧒", Label: "Jovem", ShirtColor: "bg-cyan-400"},
	{ID: "old", Icon: "👴", Label: "Senhor", ShirtColor: "bg-gray-500"},
}

// ChallengeQuotes rotates every 5 days of an active challenge.
var ChallengeQuotes = []string{
	"O primeiro passo é o mais importante. Acredite em você!",
	"A constância é a chave do sucesso. Continue firme!",
	"Você é mais forte do que imagina. Não desista!",
	"Resultados levam tempo. Ame o processo de mudança.",
	"Um terço do caminho já foi! Orgulhe-se de cada escolha.",
	"Sua saúde é seu maior investimento. Cuide-se!",
	"Metade do desafio! Olhe para trás e veja sua evolução.",
	"Disciplina é escolher o que você quer agora vs o que quer mais.",
	"Cada dia conta. Faça suas escolhas valerem a pena.",
	"A reta final se aproxima. Dê o seu melhor agora!",
	"Falta pouco! Sinta a energia da vitória chegando.",
	"Você conseguiu chegar até aqui. Finalize com chave de ouro!",
}
