package app

var fruitData = []string{
	"Apple", "Apricot", "Avocado", "Banana", "Blackberry", "Blueberry",
	"Cherry", "Clementine", "Coconut", "Cranberry", "Date", "Dragon fruit",
	"Fig", "Grape", "Grapefruit", "Guava", "Kiwi", "Lemon", "Lime",
	"Lychee", "Mango", "Melon", "Nectarine", "Orange", "Papaya",
	"Passion fruit", "Peach", "Pear", "Pineapple", "Plum", "Pomegranate",
	"Raspberry", "Strawberry", "Tangerine", "Watermelon",
}

var tagData = []string{
	"bubbletea", "cli", "concurrency", "database", "go", "http",
	"lipgloss", "networking", "sqlite", "terminal", "testing", "tui",
}
