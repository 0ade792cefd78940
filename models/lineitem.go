package models

// LineItemKind identifies which category-specific offering a line item
// belongs to. Kinds mirror the fixed category vocabulary, with "Hall" as the
// generic fallback.
type LineItemKind string

const (
	KindPartyPalace   LineItemKind = "Party Palace"
	KindMusical       LineItemKind = "Musical"
	KindLuxury        LineItemKind = "Luxury"
	KindMeeting       LineItemKind = "Meeting"
	KindAdventure     LineItemKind = "Adventure"
	KindEntertainment LineItemKind = "Entertainment"
	KindCateringTent  LineItemKind = "Catering & Tent"
	KindBeautyDecor   LineItemKind = "Beauty & Decor"
	KindMultimedia    LineItemKind = "Multimedia"
	KindHall          LineItemKind = "Hall"
)

// KindForCategory maps a product's category name to the line-item kind its
// selections must populate. Unknown categories fall back to the generic hall.
func KindForCategory(categoryName string) LineItemKind {
	switch categoryName {
	case string(KindPartyPalace):
		return KindPartyPalace
	case string(KindMusical):
		return KindMusical
	case string(KindLuxury):
		return KindLuxury
	case string(KindMeeting):
		return KindMeeting
	case string(KindAdventure):
		return KindAdventure
	case string(KindEntertainment):
		return KindEntertainment
	case string(KindCateringTent):
		return KindCateringTent
	case string(KindBeautyDecor):
		return KindBeautyDecor
	case string(KindMultimedia):
		return KindMultimedia
	default:
		return KindHall
	}
}

// LineItem is a bookable offering attached to a product (a hall, an
// instrument, a catering package, ...), tagged by its category kind.
type LineItem struct {
	ID        string       `bson:"id" json:"id"`
	ProductID string       `bson:"product_id" json:"productId"`
	Kind      LineItemKind `bson:"kind" json:"kind"`
	Name      string       `bson:"name" json:"name"`
	Price     float64      `bson:"price" json:"price"`
}
