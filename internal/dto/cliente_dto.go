package dto

type CrearClienteRequest struct {
	Nombre          string  `json:"name"            validate:"required,min=1,max=100"`
	Apodo           *string `json:"nickname"`
	Whatsapp        *string `json:"whatsapp"`
	Email           *string `json:"email"           validate:"omitempty,email"`
	Genero          *string `json:"gender"          validate:"omitempty,oneof=F M Otro"`
	Nivel           *string `json:"clientLevel"     validate:"omitempty,oneof=Nuevo Frecuente VIP"`
	ProfileImageURL *string `json:"profileImageUrl"`
}

type ActualizarClienteRequest struct {
	Nombre          string  `json:"name"            validate:"required,min=1,max=100"`
	Apodo           *string `json:"nickname"`
	Whatsapp        *string `json:"whatsapp"`
	Email           *string `json:"email"           validate:"omitempty,email"`
	Genero          *string `json:"gender"          validate:"omitempty,oneof=F M Otro"`
	Nivel           *string `json:"clientLevel"     validate:"omitempty,oneof=Nuevo Frecuente VIP"`
	ProfileImageURL *string `json:"profileImageUrl"`
}

type ClienteResponse struct {
	ID              string  `json:"id"`
	Nombre          string  `json:"name"`
	Apodo           *string `json:"nickname"`
	Whatsapp        *string `json:"whatsapp"`
	Email           *string `json:"email"`
	Genero          *string `json:"gender"`
	Nivel           string  `json:"clientLevel"`
	ProfileImageURL *string `json:"profileImageUrl"`
}
