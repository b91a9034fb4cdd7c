package repository_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

func TestPageRequest_Validate(t *testing.T) {
	tests := []struct {
		name string
		req  repository.PageRequest
		ok   bool
	}{
		{"defaults", repository.NewPageRequest(0, 10, "name", "ASC"), true},
		{"desc minúscula", repository.NewPageRequest(2, 1, "shortDescription", "desc"), true},
		{"página negativa", repository.NewPageRequest(-1, 10, "name", "ASC"), false},
		{"tamaño cero", repository.NewPageRequest(0, 0, "name", "ASC"), false},
		{"campo desconocido", repository.NewPageRequest(0, 10, "products", "ASC"), false},
		{"dirección desconocida", repository.NewPageRequest(0, 10, "name", "UP"), false},
		{"offset desborda", repository.NewPageRequest(math.MaxInt, 2, "name", "ASC"), false},
		{"offset máximo", repository.NewPageRequest(math.MaxInt/2, 2, "name", "ASC"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestPageRequest_ColumnaYOffset(t *testing.T) {
	req := repository.NewPageRequest(3, 20, "longDescription", "ASC")
	assert.Equal(t, "long_description", req.SortColumn())
	assert.Equal(t, 60, req.Offset())
}
