package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jhoicas/kardex-textil/internal/domain/entity"
)

// DecodeDump lee un volcado de la app de navegador. Acepta el arreglo de movimientos tal cual
// o un objeto de localStorage ({"<key>": "<arreglo serializado>"}) del que se toma key.
func DecodeDump(r io.Reader, key string) ([]entity.Movement, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("leer volcado: %w", err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, nil
	}
	if raw[0] == '[' {
		return decodeArray(raw)
	}

	var storage map[string]json.RawMessage
	if err := json.Unmarshal(raw, &storage); err != nil {
		return nil, fmt.Errorf("volcado no es un arreglo ni un objeto JSON: %w", err)
	}
	value, ok := storage[key]
	if !ok {
		return nil, fmt.Errorf("el volcado no contiene la clave %q", key)
	}
	// localStorage guarda strings: el arreglo viene serializado dentro de un string JSON.
	var inner string
	if err := json.Unmarshal(value, &inner); err == nil {
		return decodeArray([]byte(inner))
	}
	return decodeArray(value)
}

func decodeArray(raw []byte) ([]entity.Movement, error) {
	var movements []entity.Movement
	if err := json.Unmarshal(raw, &movements); err != nil {
		return nil, fmt.Errorf("decodificar movimientos: %w", err)
	}
	return movements, nil
}
