// Package apikey genera y verifica las claves de las aplicaciones cliente.
// La clave en claro solo existe en el momento de crearla; en la DB se guarda
// el hash bcrypt.
package apikey

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Prefix identifica las claves emitidas por esta API.
const Prefix = "ch_"

// Generate produce una clave nueva en claro.
func Generate() string {
	raw := strings.ReplaceAll(uuid.New().String()+uuid.New().String(), "-", "")
	return Prefix + raw
}

// Hash devuelve el hash bcrypt de la clave para persistir.
func Hash(key string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash de api key: %w", err)
	}
	return string(h), nil
}

// Verify compara la clave en claro contra el hash persistido.
func Verify(hash, key string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) == nil
}
