package models

type CardStatus string

const (
	CardStatusTodo  CardStatus = "todo"
	CardStatusDoing CardStatus = "doing"
	CardStatusDone  CardStatus = "done"
)

// Card is a board entry. Cards move freely between statuses; moving a
// card into done has no side effects.
type Card struct {
	ID     string     `json:"id"`
	Title  string     `json:"title"`
	Status CardStatus `json:"status"`
}
