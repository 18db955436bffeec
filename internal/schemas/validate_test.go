package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBytes_MalformedDocument(t *testing.T) {
	err := ValidateBytes("block_catalog.schema.json", []byte(`{ invalid json }`))
	require.Error(t, err)

	_, ok := err.(*SchemaLoadError)
	assert.True(t, ok, "malformed input surfaces as a load error")
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "age", Message: "must be a number"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "name")
	assert.Contains(t, errorMsg, "age")
}

func TestSchema_Embedded(t *testing.T) {
	for _, name := range []string{
		"vocabulary.schema.json",
		"block_catalog.schema.json",
		"ranked_blocks.schema.json",
		"catalog_stats.schema.json",
	} {
		t.Run(name, func(t *testing.T) {
			data, err := Schema(name)
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		})
	}

	_, err := Schema("missing.schema.json")
	require.Error(t, err)
	_, ok := err.(*SchemaLoadError)
	assert.True(t, ok)
}

func TestValidateBytes_BlockCatalog(t *testing.T) {
	valid := `{
		"blocks": [{
			"category": "Architecture",
			"subcategory": null,
			"title": "Scaled the platform",
			"content": "Reduced latency",
			"skills": [],
			"keywords": [],
			"strength_level": "good",
			"role_types": [],
			"company_types": []
		}]
	}`
	assert.NoError(t, ValidateBytes("block_catalog.schema.json", []byte(valid)))

	invalid := `{"blocks": [{"category": "Architecture", "title": "x", "content": "y", "strength_level": "legendary"}]}`
	err := ValidateBytes("block_catalog.schema.json", []byte(invalid))
	require.Error(t, err)
	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateValue(t *testing.T) {
	stats := map[string]any{
		"total_blocks":          1,
		"categories":            1,
		"strength_distribution": map[string]int{"essential": 0, "strong": 0, "good": 1},
		"top_skills":            []map[string]any{{"name": "AWS", "count": 1}},
		"top_role_types":        []map[string]any{},
	}
	assert.NoError(t, ValidateValue("catalog_stats.schema.json", stats))

	delete(stats, "strength_distribution")
	assert.Error(t, ValidateValue("catalog_stats.schema.json", stats))
}
