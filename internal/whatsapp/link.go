// Package whatsapp builds the pre-filled "order this product" deep link
// rendered next to every product.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

const phoneNumber = "212632256568"

// Link returns a wa.me URL whose text parameter is the Arabic order
// message with the product name and price filled in. Spaces are encoded
// as %20, not +.
func Link(name string, price decimal.Decimal) string {
	msg := fmt.Sprintf("مرحبا، أريد طلب هذا المنتج: %s - السعر: %s درهم", name, price.String())
	return "https://wa.me/" + phoneNumber + "?text=" + strings.ReplaceAll(url.QueryEscape(msg), "+", "%20")
}
