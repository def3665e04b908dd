package domain

// BoutiqueSettings is the site-wide configuration singleton.
type BoutiqueSettings struct {
	Name              string `json:"name"`
	Logo              string `json:"logo"`
	Slogan            string `json:"slogan"`
	Address           string `json:"address"`
	WhatsappGroupLink string `json:"whatsapp_group_link"`
	WhatsappNumber    string `json:"whatsapp_number"`
	CurrencyFC        string `json:"currency_fc"`
	CurrencyUSD       string `json:"currency_usd"`
	Maintenance       bool   `json:"maintenance"`
}

// DefaultSettings is seeded when no settings have been persisted yet.
func DefaultSettings() BoutiqueSettings {
	return BoutiqueSettings{
		Name:        "Ma Boutique Mode",
		Slogan:      "La mode à votre portée",
		CurrencyFC:  "FC",
		CurrencyUSD: "USD",
	}
}

// SettingsPatch is a partial settings update. Nil fields are left untouched.
type SettingsPatch struct {
	Name              *string `json:"name,omitempty"`
	Logo              *string `json:"logo,omitempty"`
	Slogan            *string `json:"slogan,omitempty"`
	Address           *string `json:"address,omitempty"`
	WhatsappGroupLink *string `json:"whatsapp_group_link,omitempty"`
	WhatsappNumber    *string `json:"whatsapp_number,omitempty"`
	CurrencyFC        *string `json:"currency_fc,omitempty"`
	CurrencyUSD       *string `json:"currency_usd,omitempty"`
	Maintenance       *bool   `json:"maintenance,omitempty"`
}

// Apply merges the patch into s.
func (p SettingsPatch) Apply(s *BoutiqueSettings) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Logo != nil {
		s.Logo = *p.Logo
	}
	if p.Slogan != nil {
		s.Slogan = *p.Slogan
	}
	if p.Address != nil {
		s.Address = *p.Address
	}
	if p.WhatsappGroupLink != nil {
		s.WhatsappGroupLink = *p.WhatsappGroupLink
	}
	if p.WhatsappNumber != nil {
		s.WhatsappNumber = *p.WhatsappNumber
	}
	if p.CurrencyFC != nil {
		s.CurrencyFC = *p.CurrencyFC
	}
	if p.CurrencyUSD != nil {
		s.CurrencyUSD = *p.CurrencyUSD
	}
	if p.Maintenance != nil {
		s.Maintenance = *p.Maintenance
	}
}
