package dtos

// CreateCityCommand - команда создания города.
type CreateCityCommand struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	ZipCode string `json:"zip_code" validate:"required,min=3,max=12"`
}

// ListCitiesQuery - запрос страницы городов.
type ListCitiesQuery struct {
	Page  int `json:"page" validate:"min=0"`
	Limit int `json:"limit" validate:"min=0,max=100"`
}

// CityDTO - представление города для API.
type CityDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	ZipCode string `json:"zip_code"`
}

// CityListDTO - страница городов.
type CityListDTO struct {
	Cities []CityDTO `json:"data"`
	Meta   ListMeta  `json:"meta"`
}
