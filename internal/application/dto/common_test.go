package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/facturacion-sv/internal/application/dto"
)

func TestPageRequest_Normalize(t *testing.T) {
	cases := map[string]struct {
		in   dto.PageRequest
		want dto.PageRequest
	}{
		"vacía":           {dto.PageRequest{}, dto.PageRequest{Limit: 20}},
		"sobre el tope":   {dto.PageRequest{Limit: 500, Offset: 40}, dto.PageRequest{Limit: 100, Offset: 40}},
		"offset negativo": {dto.PageRequest{Limit: 10, Offset: -5}, dto.PageRequest{Limit: 10}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.Normalize())
		})
	}
}

func TestPageRequest_Response(t *testing.T) {
	p := dto.PageRequest{Limit: 20, Offset: 40}
	assert.Equal(t, dto.PageResponse{Limit: 20, Offset: 40, Total: 57}, p.Response(57))
	assert.Equal(t, dto.PageResponse{Limit: 20, Offset: 40}, p.Response(-1))
}
