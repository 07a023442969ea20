// Package memory implementa los repositorios en memoria. Se usa en tests y con STORAGE_DRIVER=memory;
// los datos se pierden al reiniciar.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// table conserva filas por id respetando el orden de inserción.
// Las filas se clonan al entrar y al salir para que el llamador no mute el estado interno.
type table[T any] struct {
	mu    sync.RWMutex
	rows  map[string]*T
	order []string
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]*T)}
}

func (t *table[T]) put(id string, row *T) {
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	clone := *row
	t.rows[id] = &clone
}

func (t *table[T]) get(id string) *T {
	row, ok := t.rows[id]
	if !ok {
		return nil
	}
	clone := *row
	return &clone
}

func (t *table[T]) remove(id string) {
	if _, ok := t.rows[id]; !ok {
		return
	}
	delete(t.rows, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// filter devuelve clones de las filas que cumplen match, en orden de inserción.
func (t *table[T]) filter(match func(*T) bool) []*T {
	out := make([]*T, 0)
	for _, id := range t.order {
		row := t.rows[id]
		if match(row) {
			clone := *row
			out = append(out, &clone)
		}
	}
	return out
}

func (t *table[T]) exists(match func(*T) bool) bool {
	for _, row := range t.rows {
		if match(row) {
			return true
		}
	}
	return false
}

func newID() string {
	return uuid.New().String()
}

func now() time.Time {
	return time.Now().UTC()
}
