package menu

// seedCatalog is the fixed starting menu: ids are assigned 1..53 in
// listed order, all items available.
var seedCatalog = []struct {
	Name  string
	Price float64
}{
	{"Pizza", 350}, {"Burger", 150}, {"Pasta", 250}, {"Biryani", 300}, {"Sandwich", 120},
	{"Fried Rice", 200}, {"Noodles", 220}, {"Dosa", 100}, {"Idli", 80}, {"Paratha", 90},
	{"Coffee", 60}, {"Tea", 40}, {"Juice", 100}, {"Ice Cream", 150}, {"Cake", 200},
	{"Soup", 180}, {"Salad", 170}, {"French Fries", 130}, {"Paneer Tikka", 250}, {"Chicken Curry", 400},
	{"Fish Fry", 350}, {"Egg Curry", 220}, {"Veg Pulao", 200}, {"Samosa", 50}, {"Pakora", 70},
	{"Spring Roll", 120}, {"Shawarma", 180}, {"Momos", 160}, {"Cutlet", 90}, {"Maggi", 80},
	{"Thali", 300}, {"Poori", 110}, {"Upma", 90}, {"Pongal", 100}, {"Vada", 70},
	{"Cold Coffee", 120}, {"Milkshake", 150}, {"Falooda", 180}, {"Brownie", 170}, {"Donut", 100},
	{"Sandesh", 200}, {"Rasgulla", 180}, {"Gulab Jamun", 150}, {"Kachori", 90}, {"Pav Bhaji", 160},
	{"Chole Bhature", 180}, {"Rajma Chawal", 220}, {"Dal Makhani", 250}, {"Butter Naan", 50}, {"Roti", 20},
	{"Panner Butter Masala", 280}, {"Chicken Biryani", 450}, {"Veg Manchurian", 220},
}

// Seed loads the starting catalog into an empty repository.
func Seed(repo Repository) error {
	for _, s := range seedCatalog {
		item := Item{
			Name:      s.Name,
			Price:     s.Price,
			Available: true,
		}
		if err := repo.Add(&item); err != nil {
			return err
		}
	}
	return nil
}

// NewSeededRepository builds an in-memory catalog preloaded with the
// starting menu.
func NewSeededRepository() *InMemoryRepository {
	repo := NewInMemoryRepository()
	// Add on InMemoryRepository never fails
	_ = Seed(repo)
	return repo
}
