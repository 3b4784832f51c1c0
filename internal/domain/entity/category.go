package entity

import "strings"

// Category is the closed set of business categories.
type Category string

const (
	CategoryClothing      Category = "Ropa y Accesorios"
	CategoryHome          Category = "Hogar y Decoración"
	CategoryTechnology    Category = "Tecnología"
	CategoryFood          Category = "Comidas y Bebidas"
	CategoryCrafts        Category = "Artesanías"
	CategoryProfessional  Category = "Servicios Profesionales"
	CategoryEducation     Category = "Educación y Capacitación"
	CategoryHealth        Category = "Salud y Bienestar"
	CategoryBeauty        Category = "Belleza y Cuidado Personal"
	CategoryEntertainment Category = "Entretenimiento y Eventos"
	CategoryAgriculture   Category = "Agricultura"
	CategoryPets          Category = "Mascotas y Veterinaria"
	CategoryTourism       Category = "Turismo"
	CategoryLogistics     Category = "Transporte y Logística"
	CategorySports        Category = "Deportes y Recreación"
	CategoryConstruction  Category = "Construcción"
	CategoryOther         Category = "Otro"
)

// CategoryAll is the explore filter value that matches every category.
const CategoryAll = "todas"

// Categories lists every category in display order.
var Categories = []Category{
	CategoryClothing,
	CategoryHome,
	CategoryTechnology,
	CategoryFood,
	CategoryCrafts,
	CategoryProfessional,
	CategoryEducation,
	CategoryHealth,
	CategoryBeauty,
	CategoryEntertainment,
	CategoryAgriculture,
	CategoryPets,
	CategoryTourism,
	CategoryLogistics,
	CategorySports,
	CategoryConstruction,
	CategoryOther,
}

// IsValid reports whether c belongs to the closed category set.
func (c Category) IsValid() bool {
	for _, candidate := range Categories {
		if c == candidate {
			return true
		}
	}

	return false
}

// IsAllCategories reports whether a filter value means "no category filter".
func IsAllCategories(filter string) bool {
	trimmed := strings.TrimSpace(filter)

	return trimmed == "" || strings.EqualFold(trimmed, CategoryAll)
}
