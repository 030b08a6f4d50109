package models

// Consumption is a log entry linking a user to a food they consumed.
// Many records may reference the same user and the same food; there is no
// uniqueness constraint on (user, food).
type Consumption struct {
	ID         int64  `db:"id" json:"id"`
	UserID     int64  `db:"user_id" json:"user_id"`
	FoodID     int64  `db:"food_id" json:"food_id"`
	ConsumedAt string `db:"consumed_at" json:"consumed_at"`
	// Food is filled by listing queries that join the catalog.
	Food *Food `db:"-" json:"food,omitempty"`
}
