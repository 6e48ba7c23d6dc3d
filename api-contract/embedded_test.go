package apicontract_test

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apicontract "github.com/vuminh/product-api/api-contract"
)

func TestSpecIsValidOpenAPI(t *testing.T) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(apicontract.GetSpecBytes())
	require.NoError(t, err)

	require.NoError(t, doc.Validate(loader.Context))

	assert.Contains(t, doc.Paths.Map(), "/api/products")
	assert.Contains(t, doc.Paths.Map(), "/api/products/{id}")
}
