package repository

// BatchResult resultado de una inserción masiva: Count es el número de filas realmente insertadas
// (los duplicados por clave única se omiten sin error).
type BatchResult struct {
	Count int
}
