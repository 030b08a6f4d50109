package models

// Food is a catalog entry available to be logged.
// The catalog is maintained out of band; the tracker only reads it.
type Food struct {
	ID       int64   `db:"id" json:"id"`
	Name     string  `db:"name" json:"name"`
	Carbs    float64 `db:"carbs" json:"carbs"`
	Protein  float64 `db:"protein" json:"protein"`
	Fats     float64 `db:"fats" json:"fats"`
	Calories int64   `db:"calories" json:"calories"`
}
