package domain

// TransactionListing is a list row: the transaction joined with the vendor
// name resolved from the vendor's profile document.
type TransactionListing struct {
	Transaction
	VendorName string
}

// ItemGroup is the separately stored line-item snapshot for one transaction.
type ItemGroup struct {
	ItemGroupID   int64
	TransactionID string
	Items         []NoteItem
}
