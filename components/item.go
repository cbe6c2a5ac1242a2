package components

// ItemKind classifies inventory items
type ItemKind string

const (
	ItemWeapon   ItemKind = "weapon"
	ItemFood     ItemKind = "food"
	ItemMaterial ItemKind = "material"
)

// Item is an immutable inventory entry, Value is the heal amount for food
type Item struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Kind  ItemKind `json:"type"`
	Value float64  `json:"value"`
	Icon  string   `json:"icon"`
}

// Consumable reports whether using the item removes it and heals
func (i Item) Consumable() bool {
	return i.Kind == ItemFood
}

// Item catalog
var (
	Apple  = Item{ID: "food_1", Name: "Fresh Apple", Kind: ItemFood, Value: 20, Icon: "🍎"}
	Sword  = Item{ID: "wep_1", Name: "Rusty Sword", Kind: ItemWeapon, Value: 15, Icon: "🗡"}
	Medkit = Item{ID: "med_1", Name: "First Aid Kit", Kind: ItemFood, Value: 50, Icon: "✚"}
)
