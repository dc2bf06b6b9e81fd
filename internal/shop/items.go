package shop

// DefaultItems is the built-in clothing table.
var DefaultItems = []Item{
	// Head
	{ID: "hat_1", Name: "Baseball Cap", Description: "A stylish cap for a hippo", Icon: "🧢", Price: 50, Category: CategoryHead, Rarity: RarityCommon},
	{ID: "hat_2", Name: "Cap", Description: "A trendy cap", Icon: "🧢", Price: 75, Category: CategoryHead, Rarity: RarityCommon},
	{ID: "hat_3", Name: "Crown", Description: "A royal crown", Icon: "👑", Price: 300, Category: CategoryHead, Rarity: RarityEpic},
	{ID: "hat_4", Name: "Top Hat", Description: "An elegant hat", Icon: "🎩", Price: 120, Category: CategoryHead, Rarity: RarityRare},
	{ID: "hat_5", Name: "Helmet", Description: "A protective helmet", Icon: "⛑️", Price: 200, Category: CategoryHead, Rarity: RarityRare},

	// Upper body
	{ID: "upper_1", Name: "T-Shirt", Description: "A plain t-shirt", Icon: "👕", Price: 60, Category: CategoryUpper, Rarity: RarityCommon},
	{ID: "upper_2", Name: "Shirt", Description: "A formal shirt", Icon: "👔", Price: 100, Category: CategoryUpper, Rarity: RarityCommon},
	{ID: "upper_3", Name: "Sweater", Description: "A warm sweater", Icon: "🧥", Price: 150, Category: CategoryUpper, Rarity: RarityRare},
	{ID: "upper_4", Name: "Jacket", Description: "A stylish jacket", Icon: "🧥", Price: 250, Category: CategoryUpper, Rarity: RarityEpic},
	{ID: "upper_5", Name: "Dress", Description: "A pretty dress", Icon: "👗", Price: 180, Category: CategoryUpper, Rarity: RarityRare},

	// Lower body
	{ID: "lower_1", Name: "Shorts", Description: "Comfy shorts", Icon: "🩳", Price: 70, Category: CategoryLower, Rarity: RarityCommon},
	{ID: "lower_2", Name: "Jeans", Description: "Classic jeans", Icon: "👖", Price: 120, Category: CategoryLower, Rarity: RarityCommon},
	{ID: "lower_3", Name: "Skirt", Description: "An elegant skirt", Icon: "👗", Price: 110, Category: CategoryLower, Rarity: RarityRare},
	{ID: "lower_4", Name: "Sweatpants", Description: "For active days", Icon: "👖", Price: 90, Category: CategoryLower, Rarity: RarityCommon},
	{ID: "lower_5", Name: "Suit", Description: "A business suit", Icon: "👔", Price: 350, Category: CategoryLower, Rarity: RarityEpic},

	// Feet
	{ID: "feet_1", Name: "Sneakers", Description: "Sporty sneakers", Icon: "👟", Price: 80, Category: CategoryFeet, Rarity: RarityCommon},
	{ID: "feet_2", Name: "Slippers", Description: "Cozy house slippers", Icon: "🩴", Price: 40, Category: CategoryFeet, Rarity: RarityCommon},
	{ID: "feet_3", Name: "Shoes", Description: "Classic shoes", Icon: "👞", Price: 150, Category: CategoryFeet, Rarity: RarityRare},
	{ID: "feet_4", Name: "Boots", Description: "Warm boots", Icon: "🥾", Price: 200, Category: CategoryFeet, Rarity: RarityRare},
	{ID: "feet_5", Name: "Golden Sandals", Description: "Luxurious sandals", Icon: "👡", Price: 500, Category: CategoryFeet, Rarity: RarityEpic},
}

// Default returns a catalog of DefaultItems.
func Default() *Catalog {
	return NewCatalog(DefaultItems)
}
