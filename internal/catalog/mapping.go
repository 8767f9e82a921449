package catalog

// ProductInfo is the per-id descriptor the mapping exposes. Fields the
// remote catalog omitted stay nil.
type ProductInfo struct {
	Title    *string
	Category *string
	Brand    *string
	Rating   *float64
}

// BuildProductMapping links each product id to its descriptor. It is a
// pure transform of the fetched list; an empty list yields an empty map.
func BuildProductMapping(products []Product) map[int]ProductInfo {
	mapping := make(map[int]ProductInfo, len(products))
	for _, p := range products {
		mapping[p.ID] = ProductInfo{
			Title:    p.Title,
			Category: p.Category,
			Brand:    p.Brand,
			Rating:   p.Rating,
		}
	}
	return mapping
}
