package types

type Category string

const (
	CategoryFood      Category = "Food"
	CategoryEducation Category = "Education"
	CategoryShelter   Category = "Shelter"
	CategoryHealth    Category = "Health"
)

var Categories = []Category{
	CategoryFood,
	CategoryEducation,
	CategoryShelter,
	CategoryHealth,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
