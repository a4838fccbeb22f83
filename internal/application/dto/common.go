package dto

// ErrorResponse salida estándar de error de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
