package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta genérica sin datos.
type MessageResponse struct {
	Message string `json:"message"`
}

// BatchResponse resultado de una importación masiva.
type BatchResponse struct {
	Count int `json:"count"`
}
