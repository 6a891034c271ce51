package dto

type CrearCategoriaRequest struct {
	Nombre   string  `json:"name"     validate:"required,min=1,max=80"`
	ImageURL *string `json:"imageUrl"`
}

type ActualizarCategoriaRequest struct {
	Nombre   string  `json:"name"     validate:"required,min=1,max=80"`
	ImageURL *string `json:"imageUrl"`
}

type CategoriaResponse struct {
	ID       string  `json:"id"`
	Nombre   string  `json:"name"`
	ImageURL *string `json:"imageUrl"`
}

type CrearEtiquetaRequest struct {
	Nombre string `json:"name" validate:"required,min=1,max=80"`
}

type ActualizarEtiquetaRequest struct {
	Nombre string `json:"name" validate:"required,min=1,max=80"`
}

type EtiquetaResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"name"`
}
