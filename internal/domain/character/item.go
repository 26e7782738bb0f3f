package character

// Item is an inventory entry
type Item struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Quantity    int            `json:"quantity"`
	Consumable  bool           `json:"consumable"`
	Weight      float64        `json:"weight"`
	Properties  map[string]any `json:"properties,omitempty"`
}

// Use consumes the item. An item with no quantity left cannot be used;
// a consumable loses one from its quantity per successful use.
func (i *Item) Use() bool {
	if i.Quantity <= 0 {
		return false
	}
	if i.Consumable {
		i.Quantity--
	}
	return true
}
