package catalog

import (
	"regexp"
	"strings"
	"time"
)

// salePattern captures the structured shape of a "Sale of" value:
// auction house before the first colon, the sale date text, a bracketed
// "Lot ..." token, and a trailing description used only for the online
// check.
var salePattern = regexp.MustCompile(`^(.*?):\s*(.*?)\s*\[(Lot\s*[0-9A-Za-z\s]+)\](.*?)$`)

// lotToken strips the "Lot" prefix and its following whitespace from the
// bracket contents.
var lotToken = regexp.MustCompile(`Lot\s*`)

// saleDateLayout matches dates like "Wednesday, May 15, 2024".
const saleDateLayout = "Monday, January 2, 2006"

// SaleDetails holds the attributes decomposed from a "Sale of" value. The
// zero value is the atomic parse-failure fallback: no house, no date, no
// lot, not online.
type SaleDetails struct {
	AuctionHouse string     `json:"auction_house"`
	SaleDate     *time.Time `json:"sale_date"`
	LotNumber    string     `json:"lot_number"`
	IsOnline     bool       `json:"is_online"`
}

// DecomposeSale parses a raw "Sale of" value into its structured
// attributes. Decomposition is all-or-nothing: if the structural pattern
// does not match, or the date text does not parse, the zero SaleDetails is
// returned rather than a partial result.
func DecomposeSale(raw string) SaleDetails {
	match := salePattern.FindStringSubmatch(raw)
	if match == nil {
		return SaleDetails{}
	}

	date, err := time.Parse(saleDateLayout, strings.TrimSpace(match[2]))
	if err != nil {
		return SaleDetails{}
	}

	return SaleDetails{
		AuctionHouse: strings.TrimSpace(match[1]),
		SaleDate:     &date,
		LotNumber:    strings.TrimSpace(lotToken.ReplaceAllString(match[3], "")),
		IsOnline:     strings.Contains(strings.ToLower(match[4]), "online"),
	}
}
