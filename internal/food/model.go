package food

import "time"

// Food is a quick-add catalog entry owned by one user.
type Food struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Name      string    `json:"name" validate:"required,max=255"`
	Calories  int       `json:"calories" validate:"gte=0,lte=100000"`
	Protein   int       `json:"protein" validate:"gte=0,lte=10000"`
	CreatedAt time.Time `json:"created_at"`
}
