package utils_test

import (
	"testing"

	"github.com/andriekus/product-options-service/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsValidUUID(t *testing.T) {
	testCases := []struct {
		name  string
		id    string
		valid bool
	}{
		{"generated uuid", uuid.NewString(), true},
		{"uppercase hex", "6F8B9C20-1111-4F6E-9D3A-5A1B2C3D4E5F", true},
		{"empty", "", false},
		{"random text", "not-a-uuid", false},
		{"missing hyphens", "6f8b9c2011114f6e9d3a5a1b2c3d4e5f", false},
		{"braced form", "{6f8b9c20-1111-4f6e-9d3a-5a1b2c3d4e5f}", false},
		{"urn form", "urn:uuid:6f8b9c20-1111-4f6e-9d3a-5a1b2c3d4e5f", false},
		{"too short", "6f8b9c20-1111-4f6e-9d3a", false},
		{"non-hex chars", "6f8b9c20-1111-4f6e-9d3a-5a1b2c3d4z5g", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, utils.IsValidUUID(tc.id))
		})
	}
}
