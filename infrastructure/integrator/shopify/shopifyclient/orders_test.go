package shopifyclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextPageInfo(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{
			name:     "cabeçalho vazio",
			header:   "",
			expected: "",
		},
		{
			name:     "apenas página anterior",
			header:   `<https://shop-1.myshopify.com/admin/api/2024-01/orders.json?page_info=abc&limit=250>; rel="previous"`,
			expected: "",
		},
		{
			name:     "próxima página",
			header:   `<https://shop-1.myshopify.com/admin/api/2024-01/orders.json?page_info=xyz123&limit=250>; rel="next"`,
			expected: "xyz123",
		},
		{
			name:     "anterior e próxima na mesma linha",
			header:   `<https://s.myshopify.com/admin/api/2024-01/orders.json?page_info=prev1>; rel="previous", <https://s.myshopify.com/admin/api/2024-01/orders.json?page_info=next2>; rel="next"`,
			expected: "next2",
		},
		{
			name:     "page_info no meio da query",
			header:   `<https://s.myshopify.com/admin/api/2024-01/orders.json?limit=250&page_info=cur99&fields=id>; rel="next"`,
			expected: "cur99",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, nextPageInfo(tt.header))
		})
	}
}
