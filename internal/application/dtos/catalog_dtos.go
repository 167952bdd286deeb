package dtos

// ListCatalogQuery - запрос страницы справочника (марки/модели/цвета).
type ListCatalogQuery struct {
	Page  int `json:"page" validate:"min=0"`
	Limit int `json:"limit" validate:"min=0,max=100"`
}

// BrandDTO - марка автомобиля.
type BrandDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ModelDTO - модель автомобиля.
type ModelDTO struct {
	ID      string `json:"id"`
	BrandID string `json:"brand_id"`
	Name    string `json:"name"`
}

// ColorDTO - цвет автомобиля.
type ColorDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BrandListDTO - страница марок.
type BrandListDTO struct {
	Brands []BrandDTO `json:"data"`
	Meta   ListMeta   `json:"meta"`
}

// ModelListDTO - страница моделей.
type ModelListDTO struct {
	Models []ModelDTO `json:"data"`
	Meta   ListMeta   `json:"meta"`
}

// ColorListDTO - страница цветов.
type ColorListDTO struct {
	Colors []ColorDTO `json:"data"`
	Meta   ListMeta   `json:"meta"`
}
