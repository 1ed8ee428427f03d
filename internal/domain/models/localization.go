package models

// LocalizedName holds the display name of an item in every supported locale.
//
// Column set:
//
//	en_us de_de fr_fr ru_ru pl_pl es_es pt_br it_it zh_cn ko_kr ja_jp zh_tw id_id
//
// swagger:model LocalizedName
type LocalizedName struct {
	ItemUniqueName string `json:"item_unique_name" validate:"required" example:"T4_BAG"`
	EnUS           string `json:"en_us" example:"Adept's Bag"`
	DeDE           string `json:"de_de"`
	FrFR           string `json:"fr_fr"`
	RuRU           string `json:"ru_ru"`
	PlPL           string `json:"pl_pl"`
	EsES           string `json:"es_es"`
	PtBR           string `json:"pt_br"`
	ItIT           string `json:"it_it"`
	ZhCN           string `json:"zh_cn"`
	KoKR           string `json:"ko_kr"`
	JaJP           string `json:"ja_jp"`
	ZhTW           string `json:"zh_tw"`
	IdID           string `json:"id_id"`
}

// Get returns the name for a locale column such as "de_de". Unknown
// locales fall back to en_us.
func (n LocalizedName) Get(locale string) string {
	switch locale {
	case "de_de":
		return n.DeDE
	case "fr_fr":
		return n.FrFR
	case "ru_ru":
		return n.RuRU
	case "pl_pl":
		return n.PlPL
	case "es_es":
		return n.EsES
	case "pt_br":
		return n.PtBR
	case "it_it":
		return n.ItIT
	case "zh_cn":
		return n.ZhCN
	case "ko_kr":
		return n.KoKR
	case "ja_jp":
		return n.JaJP
	case "zh_tw":
		return n.ZhTW
	case "id_id":
		return n.IdID
	default:
		return n.EnUS
	}
}

// Locales lists the locale columns in backend order.
var Locales = []string{
	"en_us", "de_de", "fr_fr", "ru_ru", "pl_pl", "es_es", "pt_br",
	"it_it", "zh_cn", "ko_kr", "ja_jp", "zh_tw", "id_id",
}

// LocalizedDescription has the same shape as LocalizedName but carries item descriptions.
type LocalizedDescription LocalizedName

// Localizations bundles the name and description of one item.
type Localizations struct {
	UniqueName  string               `json:"unique_name" validate:"required" example:"T4_BAG"`
	Name        LocalizedName        `json:"name"`
	Description LocalizedDescription `json:"description"`
}

// SearchResult is one hit of the localized item-name search, ranked by relevance.
type SearchResult struct {
	LocalizedName
	Rank *float32 `json:"rank,omitempty" example:"0.6"`
}
