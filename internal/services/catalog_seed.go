package services

import (
	"context"
	"log"

	"golang-coffee-backend/internal/models"
	"golang-coffee-backend/internal/repositories"
)

type seedProduct struct {
	id          int
	name        string
	price       float64
	category    string
	description string
	ingredients string
	img         string
	featured    bool
}

// The shop menu. Product IDs are the stable integer keys the mobile client
// and the cart ledger use.
var menuSeed = []seedProduct{
	{1, "Dalgona Crunch", 130, "iced", "Sweet, creamy, and crunchy Korean-style whipped coffee, served cold.", "Milk, Espresso, Sweet Cream Foam, Caramel/Sugar Topping.", "/assets/dalgona.png", true},
	{2, "Hallyu Cold Brew", 100, "iced", "Smooth, strong, and highly caffeinated cold brew coffee.", "Cold Brew Concentrate, Filtered Water, Ice.", "/assets/americano.png", true},
	{3, "Seoul Sweet Vanilla", 120, "iced", "Classic vanilla latte, perfectly balanced for a sweet treat.", "Milk, Espresso, Vanilla Syrup, Ice.", "/assets/vanilla.png", true},
	{4, "Busan Dark Mocha", 95, "iced", "Rich, dark chocolate mixed with a strong espresso base.", "Milk, Espresso, Dark Chocolate Sauce, Ice.", "/assets/mocha.jpg", false},
	{5, "Caramel Macchiato", 100, "iced", "Layered drink with vanilla syrup, milk, espresso shots, and caramel drizzle.", "Milk, Vanilla Syrup, Espresso, Caramel Sauce, Ice.", "/assets/caramel.jpg", false},
	{6, "Hot Mocha", 95, "hot", "Warm and comforting hot mocha, perfect for relaxing.", "Milk, Espresso, Chocolate Sauce, Steamed Milk Foam.", "/assets/hotmocha.png", false},
	{7, "Caramel Macchiato (Hot)", 100, "hot", "Sweet and layered caramel macchiato, served hot.", "Milk, Vanilla Syrup, Espresso, Caramel Sauce, Steamed Milk.", "/assets/hot2.png", false},
	{8, "Soju Shot Espresso", 90, "hot", "A double shot of espresso for maximum energy.", "Double Shot Espresso, Water (optional).", "/assets/hot3.jpg", false},
	{9, "Winter Sonata Latte", 120, "hot", "Signature warming latte with a hint of spice.", "Milk, Espresso, Spice Blend Syrup, Steamed Milk.", "/assets/hot4.png", false},
	{10, "Morning Chocolate Latte", 100, "hot", "Rich hot chocolate with a subtle coffee note.", "Milk, Chocolate Powder/Syrup, Espresso (optional), Steamed Milk.", "/assets/hot5.png", false},
	{11, "Plain Croffle", 150, "pastry", "A fusion of croissant and waffle, flaky and crispy.", "Croissant Dough, Sugar, Butter.", "/assets/Croffle.png", false},
	{12, "Strawberry Croffle", 150, "pastry", "Crispy croffle topped with fresh strawberries and sweet cream.", "Croffle Base, Fresh Strawberries, Whipped Cream, Sugar Powder.", "/assets/strawberry croffle.png", false},
	{13, "Matcha Croffle", 150, "pastry", "Croffle infused and topped with premium Matcha flavoring.", "Croffle Base, Matcha Powder, Sugar Glaze.", "/assets/matchacroffle.png", false},
	{14, "Chingu Vietnamese", 165, "iced", "Strong Vietnamese coffee with sweet condensed milk, iced.", "Vietnamese Coffee Beans, Condensed Milk, Water, Ice.", "/assets/vietnam.jpg", false},
	{15, "Kopi Chingu Cloud", 180, "iced", "Iced latte topped with a fluffy cream flavored with Korean roasted soybean powder.", "Milk, Espresso, Injeolmi Cream, Roasted Soybean Powder, Ice.", "/assets/cloud.png", false},
	{16, "Barista Drink", 155, "iced", "A bold fusion of espresso and sweet cream with a playful Korean twist.", "Espresso, Steamed Milk, Brown Sugar Syrup, Cinnamon, Korean Red Bean Flavor.", "/assets/barista.jpg", false},
	{17, "Strawberry Matcha", 170, "iced", "Layers of fresh strawberry puree, milk, and premium Jeju matcha.", "Milk, Strawberry Puree, Jeju Matcha Powder, Ice.", "/assets/matchastraw.jpg", false},
	{18, "Kopi Chingu Matcha", 190, "iced", "A rich, complex iced drink featuring high-grade Jeju matcha.", "Milk, Jeju Matcha Powder, Simple Syrup, Ice.", "/assets/matcha.png", false},
	{19, "Tiramisu Cake", 150, "pastry", "Classic Italian coffee-flavored dessert.", "Ladyfingers, Mascarpone Cheese, Eggs, Sugar, Coffee, Cocoa Powder.", "/assets/tiramisu.png", false},
	{20, "Matcha Tiramisu Cake", 150, "pastry", "A Korean-inspired twist on Tiramisu using rich Matcha.", "Ladyfingers, Mascarpone Cheese, Eggs, Sugar, Matcha Powder.", "/assets/tiramisum.png", false},
	{100, "Caramel Frappuccino", 150, "frappe", "Blended ice drink topped with whipped cream.", "Milk, Ice, Coffee Syrup, Sugar, Whipped Cream.", "/assets/frappe1.png", false},
	{101, "Kopi Frappe", 160, "frappe", "Our signature mocha frappuccino blended to perfection.", "Milk, Ice, Mocha Sauce, Espresso, Whipped Cream.", "/assets/Mocha Frappe.png", false},
	{102, "Matcha Frappe", 180, "frappe", "Refreshing matcha frappe blended with milk and ice.", "Matcha Powder, Milk, Ice, Sugar, Whipped Cream.", "/assets/matchafrappee.png", false},
}

var categorySeed = []models.ProductCategory{
	{Name: "Iced Coffee", Slug: "iced", SortOrder: 1, IsActive: true},
	{Name: "Hot Coffee", Slug: "hot", SortOrder: 2, IsActive: true},
	{Name: "Pastries", Slug: "pastry", SortOrder: 3, IsActive: true},
	{Name: "Frappes", Slug: "frappe", SortOrder: 4, IsActive: true},
}

// SeedCatalog loads the menu into MongoDB on first boot. Existing products
// are left untouched.
func SeedCatalog(ctx context.Context, productRepo repositories.ProductRepository, categoryRepo repositories.ProductCategoryRepository) error {
	for _, category := range categorySeed {
		if _, err := categoryRepo.GetBySlug(ctx, category.Slug); err == nil {
			continue
		}
		category := category
		if err := categoryRepo.Create(ctx, &category); err != nil {
			return err
		}
	}

	seeded := 0
	for _, seed := range menuSeed {
		if _, err := productRepo.GetByProductID(ctx, seed.id); err == nil {
			continue
		}
		product := &models.Product{
			ProductID:   seed.id,
			Name:        seed.name,
			Description: seed.description,
			Ingredients: seed.ingredients,
			Price:       seed.price,
			ImageUrl:    seed.img,
			Category:    seed.category,
			IsAvailable: true,
			IsFeatured:  seed.featured,
		}
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		seeded++
	}

	if seeded > 0 {
		log.Printf("Seeded %d catalog products", seeded)
	}
	return nil
}
