package dto

// ErrorResponse cuerpo de error HTTP (fuera de GraphQL: health, rutas inexistentes, pánicos).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse cuerpo de GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Storage string `json:"storage"`
}

// BannerResponse cuerpo de GET /.
type BannerResponse struct {
	Service string `json:"service"`
	GraphQL string `json:"graphql"`
}
