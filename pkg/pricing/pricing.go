// Package pricing holds the discount arithmetic and rouble price rendering
// shared by the cart, catalog and checkout surfaces.
package pricing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Russian)

// DiscountedPrice applies a percentage discount to a base price. A zero or
// negative discount leaves the price unchanged.
func DiscountedPrice(price, discount float64) float64 {
	if discount <= 0 {
		return price
	}
	return price * (1 - discount/100)
}

// FormatPrice renders an amount as a Russian-locale rouble string, e.g.
// "1 234,50 ₽".
func FormatPrice(amount float64) string {
	return printer.Sprintf("%.2f ₽", amount)
}

// FormatDiscountedPrice renders the price after applying a discount.
func FormatDiscountedPrice(price, discount float64) string {
	return FormatPrice(DiscountedPrice(price, discount))
}

var categoryNames = map[string]string{
	"consoles":    "Приставки",
	"games":       "Игры",
	"accounts":    "Аккаунты",
	"controllers": "Джойстики",
	"services":    "Услуги",
}

// CategoryName returns the Russian display name for a category, or the raw
// value when it is not a known category.
func CategoryName(category string) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return category
}
