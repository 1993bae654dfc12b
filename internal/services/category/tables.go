package category

// brandMapping is one entry of the brand override table. Keyword is matched
// as a substring of the merchant name; Category is the reward category the
// brand maps to directly.
type brandMapping struct {
	Keyword  string
	Category string
}

// typeMapping maps one place type tag to a reward category.
type typeMapping struct {
	Type     string
	Category string
}

// brandOverrides is an ordered list on purpose: when two keywords could both
// match a name, the earlier entry wins. Do not reorder.
var brandOverrides = []brandMapping{
	{"target", "Target"},
	{"walmart", "Department Stores"},
	{"costco", "Wholesale Club"},
	{"sam's club", "Wholesale Club"},
	{"sams club", "Sam's Club"},
	{"bjs", "Wholesale Club"},
	{"whole foods", "Whole Foods"},
	{"trader joe", "Grocery"},
	{"ralphs", "Grocery"},
	{"starbucks", "Starbucks"},
	{"mcdonald", "Fast Food"},
	{"in n out", "Fast Food"},
	{"chipotle", "Dining"},
	{"panera", "Dining"},
	{"shell", "Gas stations (U.S.)"},
	{"chevron", "Gas stations (U.S.)"},
	{"hilton", "Hilton hotels/resorts"},
	{"marriott", "Marriott"},
	{"hyatt", "Hotel"},
	{"ihg", "IHG"},
	{"aaa", "AAA"},
	{"at&t", "AT&T"},
	{"att", "AT&T"},
	{"old navy", "Old Navy"},
	{"marshalls", "Marshalls"},
	{"athleta", "Athleta"},
	{"banana republic", "Banana Republic"},
	{"barnes & noble", "Barnes & Noble"},
	{"barnes and noble", "Barnes & Noble"},
	{"bass pro", "Bass Pro"},
	{"belk", "Belk"},
	{"bloomingdale", "Bloomingdale"},
	{"choice", "Choice"},
	{"jcpenney", "JCPenney"},
	{"jcpenny", "JCPenney"},
	{"kohl's", "Kohl's"},
	{"kohls", "Kohl's"},
	{"kroger", "Kroger"},
	{"lowe's", "Lowe's"},
	{"lowes", "Lowe's"},
	{"lyft", "Lyft"},
	{"macy's", "Macy's"},
	{"macys", "Macy's"},
	{"menards", "Menards"},
	{"rei", "REI"},
	{"tj maxx", "TJ Maxx"},
	{"walgreens", "Walgreens"},
	{"wayfair", "Wayfair"},
}

// typeCategories maps Google place type tags to reward categories. Lookup
// precedence is driven by the order of the caller-supplied types, not by
// this table's order.
var typeCategories = []typeMapping{
	// Food / dining
	{"restaurant", "Restaurants"},
	{"cafe", "Dining"},
	{"bar", "Dining"},
	{"meal_takeaway", "Takeout/Delivery (U.S.)"},
	{"bakery", "Dining"},
	{"fast_food_restaurant", "Fast Food"},
	{"food", "Dining"},

	// Retail / shopping
	{"supermarket", "Supermarkets (U.S.)"},
	{"grocery_or_supermarket", "Grocery"},
	{"department_store", "Department Stores"},
	{"clothing_store", "Department Stores"},
	{"electronics_store", "Electronics retailers (up to $2M spend/yr)"},
	{"home_goods_store", "Home Improvement"},
	{"book_store", "Book Store"},
	{"pharmacy", "Drugstore"},
	{"store", "Department Stores"},

	// Travel & transport
	{"gas_station", "Gas stations (U.S.)"},
	{"lodging", "Hotel"},
	{"hotel", "Hotel"},
	{"car_rental", "Car Rental"},
	{"bus_station", "Transit"},
	{"train_station", "Transit"},
	{"airport", "Travel"},

	// Entertainment & recreation
	{"gym", "Gym"},
	{"movie_theater", "Entertainment"},
	{"amusement_park", "Entertainment"},
	{"stadium", "Entertainment"},
	{"museum", "Entertainment"},
	{"night_club", "Entertainment"},
	{"spa", "Beauty"},
}

// typeCategoryIndex is the lookup form of typeCategories.
var typeCategoryIndex = func() map[string]string {
	m := make(map[string]string, len(typeCategories))
	for _, tm := range typeCategories {
		m[tm.Type] = tm.Category
	}
	return m
}()

// normalizedBrandOverrides mirrors brandOverrides with keywords run through
// Normalize, preserving order.
var normalizedBrandOverrides = func() []brandMapping {
	out := make([]brandMapping, len(brandOverrides))
	for i, bm := range brandOverrides {
		out[i] = brandMapping{Keyword: Normalize(bm.Keyword), Category: bm.Category}
	}
	return out
}()
