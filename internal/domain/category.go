package domain

// Category описывает категорию товаров.
// Slug уникален и используется в URL витрины.
type Category struct {
	ID          string
	Name        string
	Slug        string
	Description *string
}

func NewCategory(name string, slug string, description *string) *Category {
	return &Category{
		Name:        name,
		Slug:        slug,
		Description: description,
	}
}
