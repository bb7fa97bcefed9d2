package response

type PageResponse[T any] struct {
	Entries []T    `json:"entries"`
	Next    string `json:"next"`
}

func NewPageResponse[T any](entries []T, next string) *PageResponse[T] {
	if entries == nil {
		entries = []T{}
	}
	return &PageResponse[T]{
		Entries: entries,
		Next:    next,
	}
}
