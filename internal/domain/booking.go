package domain

import (
	"github.com/shopspring/decimal"
)

// BookingConfig describes one bookable session type as shown on the
// portfolio site. Price is display metadata only - nothing is charged.
type BookingConfig struct {
	Type     string
	Label    string
	Tagline  string
	Duration string
	Price    *decimal.Decimal
}

const (
	BookingCall15         = "call-15"
	BookingTechDiscussion = "tech-discussion"
	BookingBuildMVP       = "build-mvp"
	BookingCallNow        = "call-now"
)

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

var bookingConfigs = map[string]BookingConfig{
	BookingCall15: {
		Type:     BookingCall15,
		Label:    "Book a 15-min Call",
		Tagline:  "Quick sync to see if we're a fit",
		Duration: "15 minutes",
		Price:    nil,
	},
	BookingTechDiscussion: {
		Type:     BookingTechDiscussion,
		Label:    "Tech Discussion",
		Tagline:  "Deep-dive your product architecture & scale strategy",
		Duration: "60 minutes",
		Price:    decimalPtr(decimal.NewFromInt(15)),
	},
	BookingBuildMVP: {
		Type:     BookingBuildMVP,
		Label:    "Build Your MVP",
		Tagline:  "Scoped session to plan and spec your MVP",
		Duration: "45 minutes",
		Price:    nil,
	},
	BookingCallNow: {
		Type:     BookingCallNow,
		Label:    "Call Immediately",
		Tagline:  "Priority direct line - get on a call right now",
		Duration: "On-demand",
		Price:    decimalPtr(decimal.NewFromInt(10)),
	},
}

// PriceLabel renders the session price for display. Sessions without a
// price are free.
func (c BookingConfig) PriceLabel() string {
	if c.Price == nil {
		return "Free"
	}
	return "$" + c.Price.String()
}

// BookingConfigFor resolves the catalog entry for a booking type tag.
// Unknown or empty tags fall back to a generic consultation so intake
// never rejects a submission over a cosmetic field.
func BookingConfigFor(bookingType string) BookingConfig {
	if cfg, ok := bookingConfigs[bookingType]; ok {
		return cfg
	}
	return BookingConfig{
		Type:     bookingType,
		Label:    "Consultation",
		Tagline:  "",
		Duration: "45 minutes",
		Price:    nil,
	}
}
