package common

// PageFetcher fetches one page of results for the given continuation
// token (nil for the first page) and returns the next token, if any.
type PageFetcher[T any] func(token *string) ([]T, *string, error)

// DrainPages follows continuation tokens until the service stops returning
// one and returns every item in the order it was listed. A failed page
// fails the whole listing, so callers never act on a partial view.
func DrainPages[T any](fetch PageFetcher[T]) ([]T, error) {
	var items []T
	var token *string
	for {
		page, next, err := fetch(token)
		if err != nil {
			return nil, err
		}
		items = append(items, page...)
		if next == nil || *next == "" {
			return items, nil
		}
		token = next
	}
}

// IndexBy builds a lookup table keyed by key(item). Later items win on
// duplicate keys.
func IndexBy[K comparable, T any](items []T, key func(T) K) map[K]T {
	index := make(map[K]T, len(items))
	for _, item := range items {
		index[key(item)] = item
	}
	return index
}
