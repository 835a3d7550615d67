package kana

// DerivePool returns the items whose group and script are both active, in
// their original order.
func DerivePool(items []Item, sel Selection) []Item {
	pool := make([]Item, 0, len(items))
	for _, it := range items {
		if sel.groups[it.Group] && sel.scripts[it.Script] {
			pool = append(pool, it)
		}
	}
	return pool
}
