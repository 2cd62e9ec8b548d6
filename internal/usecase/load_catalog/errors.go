package load_catalog

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("load_catalog: invalid input data")
)
