package catalog

import (
	"testing"
	"time"
)

func TestDecomposeSale(t *testing.T) {
	may15 := time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		raw           string
		expectedHouse string
		expectedDate  *time.Time
		expectedLot   string
		expectedOn    bool
	}{
		{
			name:          "full sale line with online marker",
			raw:           "Christie's: Wednesday, May 15, 2024 [Lot 42] (Online)",
			expectedHouse: "Christie's",
			expectedDate:  &may15,
			expectedLot:   "42",
			expectedOn:    true,
		},
		{
			name:          "in person sale without trailing text",
			raw:           "Sotheby's New York: Wednesday, May 15, 2024 [Lot 7]",
			expectedHouse: "Sotheby's New York",
			expectedDate:  &may15,
			expectedLot:   "7",
			expectedOn:    false,
		},
		{
			name:          "alphanumeric lot number",
			raw:           "Phillips: Wednesday, May 15, 2024 [Lot 12A]",
			expectedHouse: "Phillips",
			expectedDate:  &may15,
			expectedLot:   "12A",
			expectedOn:    false,
		},
		{
			name:       "online marker is case insensitive",
			raw:        "Bonhams: Wednesday, May 15, 2024 [Lot 3] ONLINE ONLY",
			expectedOn: true,
			expectedHouse: "Bonhams",
			expectedDate:  &may15,
			expectedLot:   "3",
		},
		{
			name: "unstructured value yields zero details",
			raw:  "N/A",
		},
		{
			name: "missing lot bracket yields zero details",
			raw:  "Sotheby's: Wednesday, May 15, 2024 no lot given",
		},
		{
			name: "unparseable date yields zero details",
			raw:  "Phillips: May 15, 2024 [Lot 7]",
		},
		{
			name: "bogus weekday name yields zero details",
			raw:  "Phillips: Funday, May 15, 2024 [Lot 7]",
		},
		{
			name: "empty value yields zero details",
			raw:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecomposeSale(tt.raw)

			if got.AuctionHouse != tt.expectedHouse {
				t.Errorf("auction house: expected %q, got %q", tt.expectedHouse, got.AuctionHouse)
			}
			if tt.expectedDate == nil {
				if got.SaleDate != nil {
					t.Errorf("sale date: expected nil, got %v", got.SaleDate)
				}
			} else {
				if got.SaleDate == nil {
					t.Fatalf("sale date: expected %v, got nil", tt.expectedDate)
				}
				if !got.SaleDate.Equal(*tt.expectedDate) {
					t.Errorf("sale date: expected %v, got %v", tt.expectedDate, got.SaleDate)
				}
			}
			if got.LotNumber != tt.expectedLot {
				t.Errorf("lot number: expected %q, got %q", tt.expectedLot, got.LotNumber)
			}
			if got.IsOnline != tt.expectedOn {
				t.Errorf("is online: expected %v, got %v", tt.expectedOn, got.IsOnline)
			}
		})
	}
}

func TestDecomposeSale_DateFailureIsAtomic(t *testing.T) {
	// A parseable house and lot must not survive a bad date; the details
	// come back all-or-nothing.
	got := DecomposeSale("Christie's: 15 May 2024 [Lot 42] (Online)")
	if got.AuctionHouse != "" || got.SaleDate != nil || got.LotNumber != "" || got.IsOnline {
		t.Errorf("expected zero-value details, got %+v", got)
	}
}
