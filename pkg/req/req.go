package req

import (
	"encoding/json"
	"errors"
	"io"
)

// Decode читает JSON тело запроса в структуру T
func Decode[T any](body io.ReadCloser) (T, error) {
	var payload T
	defer body.Close()

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	err := dec.Decode(&payload)
	if err != nil {
		// Пустое тело допустимо: все поля остаются нулевыми
		if errors.Is(err, io.EOF) {
			return payload, nil
		}
		return payload, err
	}

	return payload, nil
}
