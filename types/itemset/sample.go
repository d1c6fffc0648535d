package itemset

// The grocery basket the tool ships with for demos.
var SampleItems = []string{
	"Milk",
	"Bread",
	"Eggs",
	"Cheese",
	"Butter",
	"Yogurt",
	"Chicken",
	"Fish",
	"Rice",
	"Pasta",
	"Tomatoes",
}

var SampleTransactions = [][]string{
	{"Milk", "Bread", "Eggs"},
	{"Milk", "Cheese"},
	{"Bread", "Butter"},
	{"Eggs", "Yogurt"},
	{"Chicken", "Fish"},
	{"Rice", "Pasta", "Tomatoes"},
	{"Milk", "Bread", "Rice"},
}
