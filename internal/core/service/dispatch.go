package service

import (
	"net/url"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/modeboutique/storefront/internal/core/domain"
)

const waBase = "https://wa.me/"

// Dispatch target kinds.
const (
	TargetGroup   = "group"
	TargetContact = "contact"
	TargetDirect  = "direct"
)

// DispatchTarget is the deep link a buyer is sent to after ordering.
type DispatchTarget struct {
	URL  string `json:"url"`
	Kind string `json:"kind"`
}

var amountPrinter = message.NewPrinter(language.English)

// BuildOrderMessage renders the order summary sent to the boutique, already
// percent-encoded for a URL query.
func BuildOrderMessage(a domain.Article, c domain.Client) string {
	var b strings.Builder
	b.WriteString("🛍️ *DEMANDE D'ARTICLE*\n\n")
	b.WriteString("📦 Article: " + a.Name + "\n")
	b.WriteString("💰 Prix: " + amountPrinter.Sprint(number.Decimal(a.PriceFC)) + " FC / " + formatAmount(a.PriceUSD) + " USD\n")
	b.WriteString("📏 Catégorie: " + a.Category + "\n")
	b.WriteString("🎨 Couleurs: " + strings.Join(a.Colors, ", ") + "\n")
	b.WriteString("📐 Tailles: " + strings.Join(a.Sizes, ", ") + "\n\n")
	b.WriteString("👤 Client: " + c.FirstName + " " + c.LastName + "\n")
	b.WriteString("📱 Téléphone: " + c.Phone + "\n\n")
	b.WriteString("Je souhaite commander cet article. Merci !")
	return encodeComponent(b.String())
}

// ResolveDispatchTarget picks the group invite link when configured, then a
// direct chat with the boutique number, then a contact picker.
func ResolveDispatchTarget(settings domain.BoutiqueSettings, encodedMessage string) DispatchTarget {
	if settings.WhatsappGroupLink != "" {
		return DispatchTarget{URL: settings.WhatsappGroupLink, Kind: TargetGroup}
	}
	if digits := digitsOnly(settings.WhatsappNumber); digits != "" {
		return DispatchTarget{URL: waBase + digits + "?text=" + encodedMessage, Kind: TargetDirect}
	}
	return DispatchTarget{URL: waBase + "?text=" + encodedMessage, Kind: TargetContact}
}

// componentUnescaper restores the characters a browser leaves alone when
// encoding a URI component.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
