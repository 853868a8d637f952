package provider

type Model struct {
	ID string
}

type File struct {
	Name string

	Content     []byte
	ContentType string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
}

type Schema struct {
	Name        string
	Description string

	Strict *bool

	Schema map[string]any
}
