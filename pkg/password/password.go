package password

import "golang.org/x/crypto/bcrypt"

// DefaultCost factor de costo de bcrypt usado para contraseñas de organizaciones.
const DefaultCost = 8

// Hasher calcula y verifica hashes de contraseña.
type Hasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}

// BcryptHasher implementación con bcrypt (hash lento y con sal).
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher construye el hasher. cost <= 0 usa DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash devuelve el hash bcrypt de plain.
func (h *BcryptHasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare devuelve error si plain no corresponde a hash.
func (h *BcryptHasher) Compare(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
