package domain

type SelectionEntry struct {
	ProductID string
	Quantity  int
}

// SelectionList keeps at most one entry per product, in first-insertion
// order. Setting a quantity for a known product updates the entry in
// place; entries are never removed, including when quantity drops to 0.
type SelectionList struct {
	entries []SelectionEntry
	index   map[string]int
}

func NewSelectionList() *SelectionList {
	return &SelectionList{
		index: make(map[string]int),
	}
}

// SetQuantity upserts the requested quantity for a product. The store
// does not validate quantity; callers enforce non-negativity.
func (l *SelectionList) SetQuantity(productID string, quantity int) {
	if i, ok := l.index[productID]; ok {
		l.entries[i].Quantity = quantity
		return
	}
	l.index[productID] = len(l.entries)
	l.entries = append(l.entries, SelectionEntry{ProductID: productID, Quantity: quantity})
}

// Entries returns a snapshot of the current entries in insertion order.
func (l *SelectionList) Entries() []SelectionEntry {
	out := make([]SelectionEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *SelectionList) Len() int {
	return len(l.entries)
}
