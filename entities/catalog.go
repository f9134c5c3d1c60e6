package entities

import "strings"

type SoilType int

const (
	SoilBlack SoilType = iota
	SoilClayey
	SoilLoamy
	SoilRed
	SoilSandy
)

const UnknownName = "Unknown"

var soilNames = map[SoilType]string{
	SoilBlack:  "Black",
	SoilClayey: "Clayey",
	SoilLoamy:  "Loamy",
	SoilRed:    "Red",
	SoilSandy:  "Sandy",
}

// Name returns the label used by the training data, or "Unknown".
func (s SoilType) Name() string {
	if n, ok := soilNames[s]; ok {
		return n
	}
	return UnknownName
}

type CropType int

// crop codes follow the label encoder order of the training set (capitalised names sort first)
var cropNames = map[CropType]string{
	0:  "Barley",
	1:  "Cotton",
	2:  "Ground Nuts",
	3:  "Maize",
	4:  "Millets",
	5:  "Oil Seeds",
	6:  "Paddy",
	7:  "Pulses",
	8:  "Sugarcane",
	9:  "Tobacco",
	10: "Wheat",
	11: "coffee",
	12: "kidneybeans",
	13: "orange",
	14: "pomegranate",
	15: "rice",
	16: "watermelon",
}

func (c CropType) Name() string {
	if n, ok := cropNames[c]; ok {
		return n
	}
	return UnknownName
}

type CatalogEntry struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

// SoilCatalog lists every soil code in ascending order.
func SoilCatalog() []CatalogEntry {
	out := make([]CatalogEntry, 0, len(soilNames))
	for i := SoilBlack; i <= SoilSandy; i++ {
		out = append(out, CatalogEntry{Code: int(i), Name: i.Name()})
	}
	return out
}

// CropCatalog lists every crop code in ascending order.
func CropCatalog() []CatalogEntry {
	out := make([]CatalogEntry, 0, len(cropNames))
	for i := 0; i < len(cropNames); i++ {
		out = append(out, CatalogEntry{Code: i, Name: CropType(i).Name()})
	}
	return out
}

const DefaultStage = "Vegetative"

// Growth stages compared case-insensitively.
const (
	StageSowing     = "sowing"
	StageVegetative = "vegetative"
	StageFlowering  = "flowering"
	StageFruiting   = "fruiting"
)

// NormalizeStage trims the label and falls back to "Vegetative" when blank.
// The caller's spelling is kept; use StageKey for comparisons.
func NormalizeStage(stage string) string {
	s := strings.TrimSpace(stage)
	if s == "" {
		return DefaultStage
	}
	return s
}

func StageKey(stage string) string { return strings.ToLower(NormalizeStage(stage)) }

// IsReproductive reports flowering or fruiting.
func IsReproductive(stage string) bool {
	k := StageKey(stage)
	return k == StageFlowering || k == StageFruiting
}
