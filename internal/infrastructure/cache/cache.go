// Package cache implementa la caché por particiones ("banks", "categories") usada por las consultas
// de lectura frecuente. Invalidate borra todas las claves de una partición.
package cache

import "fmt"

// Particiones conocidas.
const (
	PartitionBanks      = "banks"
	PartitionCategories = "categories"
)

const keyPrefix = "finanzas"

func fullKey(partition, key string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, partition, key)
}

func partitionPattern(partition string) string {
	return fmt.Sprintf("%s:%s:*", keyPrefix, partition)
}
