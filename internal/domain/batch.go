package domain

// Batch is a named list of tickets to price together.
type Batch struct {
	Name    string
	Tickets []Ticket
}

// BatchRef is a lightweight reference used for listing batches in a workspace.
type BatchRef struct {
	Name string
	Path string
}
