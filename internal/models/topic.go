package models

// Topic is a debate proposal with a vote count. Votes only ever increase;
// there is no delete operation.
type Topic struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Votes       int    `json:"votes"`
}
