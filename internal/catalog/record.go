package catalog

// Field labels as they appear in catalog entries. The order of fieldLabels
// is the match priority and is load-bearing: "Sold For" must be tested
// before any shorter label could shadow it, and the list order below is the
// one the parser walks for every line.
const (
	FieldTitle       = "Title"
	FieldDescription = "Description"
	FieldMedium      = "Medium"
	FieldYearOfWork  = "Year of Work"
	FieldSize        = "Size"
	FieldSaleOf      = "Sale of"
	FieldEstimate    = "Estimate"
	FieldSoldFor     = "Sold For"
	FieldMisc        = "Misc."

	// FieldArtist has no label of its own; it is inferred from the line
	// immediately preceding the Title line.
	FieldArtist = "Artist"
)

// fieldLabels is the fixed label vocabulary in match priority order.
var fieldLabels = []string{
	FieldTitle,
	FieldDescription,
	FieldMedium,
	FieldYearOfWork,
	FieldSize,
	FieldSaleOf,
	FieldEstimate,
	FieldSoldFor,
	FieldMisc,
}

// Derived column names for the decomposed "Sale of" attributes
const (
	ColumnAuctionHouse = "auction_house"
	ColumnSaleDate     = "sale_date"
	ColumnLotNumber    = "lot_number"
	ColumnIsOnline     = "is_online"
)

// Columns is the fixed output column order of the result table: the nine
// labeled fields, the inferred artist, then the derived sale attributes.
var Columns = []string{
	FieldTitle,
	FieldDescription,
	FieldMedium,
	FieldYearOfWork,
	FieldSize,
	FieldSaleOf,
	FieldEstimate,
	FieldSoldFor,
	FieldMisc,
	FieldArtist,
	ColumnAuctionHouse,
	ColumnSaleDate,
	ColumnLotNumber,
	ColumnIsOnline,
}

// Record maps field labels to their accumulated values for one catalog
// entry. A field is present only if its label matched (or the artist
// inference fired); absent fields stay absent rather than empty.
type Record map[string]string

// Artwork is one extracted catalog entry together with the attributes
// derived from its "Sale of" field.
type Artwork struct {
	Fields Record
	Sale   SaleDetails
}
