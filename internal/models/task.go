package models

// Task is one item of a user's task list. Lists are stored most-recent-first;
// new tasks are prepended and no other reordering happens.
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}
