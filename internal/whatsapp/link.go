// Package whatsapp builds wa.me deep links that open a chat with the shop,
// prefilled with a product inquiry. The storefront has no checkout; these
// links are how a visitor turns interest into an order.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

type LinkBuilder struct {
	phone string
}

// NewLinkBuilder normalizes the shop's phone number into the digits-only
// form wa.me expects (country code included, no leading +).
func NewLinkBuilder(phone string) *LinkBuilder {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return &LinkBuilder{phone: digits.String()}
}

// ProductInquiry returns a chat link asking about the product.
func (b *LinkBuilder) ProductInquiry(productName string) string {
	msg := fmt.Sprintf("Bonjour, je suis intéressé(e) par le produit %q. Pourriez-vous me donner le prix et les modalités de commande ?", productName)
	return b.link(msg)
}

// ProductInquiryWithQuantity returns a chat link asking about the product
// for a given quantity. Quantities below 1 fall back to 1.
func (b *LinkBuilder) ProductInquiryWithQuantity(productName string, quantity int) string {
	if quantity < 1 {
		quantity = 1
	}
	msg := fmt.Sprintf("Bonjour, je suis intéressé(e) par le produit %q (quantité: %d). Pourriez-vous me donner le prix et les modalités de commande ?", productName, quantity)
	return b.link(msg)
}

func (b *LinkBuilder) link(message string) string {
	return "https://wa.me/" + b.phone + "?text=" + url.QueryEscape(message)
}
