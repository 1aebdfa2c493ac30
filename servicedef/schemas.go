package servicedef

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// ResponseSchema describes the expected shape of a response body.
type ResponseSchema struct {
	name   string
	schema *gojsonschema.Schema
}

// SchemaError is returned by ResponseSchema.Validate if a response has the wrong shape.
type SchemaError struct {
	Schema   string
	Problems []string
}

func (e SchemaError) Error() string {
	return strings.Join(e.Problems, "; ")
}

var (
	ProductListResponse   = mustCompileSchema("product list", successEnvelope(PropProducts, `{"type": "array"}`))
	ProductResponse       = mustCompileSchema("product", successEnvelope(PropProduct, productSchema))
	CartResponse          = mustCompileSchema("cart", successEnvelope(PropItems, `{"type": "array", "items": {"type": "object"}}`))
	PaymentIntentResponse = mustCompileSchema("payment intent", paymentIntentSchema)
	OrderCreatedResponse  = mustCompileSchema("order created", successEnvelope(PropOrderID, nonEmptyString))
	OrderListResponse     = mustCompileSchema("order list", successEnvelope(PropOrders, `{"type": "array"}`))
	OrderResponse         = mustCompileSchema("order", successEnvelope(PropOrder, orderSchema))
	ErrorResponse         = mustCompileSchema("error", errorSchema)
)

const nonEmptyString = `{"type": "string", "minLength": 1}`

const productSchema = `{
	"type": "object",
	"required": ["id", "name"],
	"properties": {
		"id": {"type": "string"},
		"name": {"type": "string"}
	}
}`

const orderSchema = `{
	"type": "object",
	"required": ["orderId"],
	"properties": {
		"orderId": {"type": "string"}
	}
}`

const paymentIntentSchema = `{
	"type": "object",
	"required": ["success", "clientSecret", "paymentIntentId"],
	"properties": {
		"success": {"enum": [true]},
		"paymentIntentId": {"type": "string", "minLength": 1}
	}
}`

// The service reports errors as {"success": false, "error": "message"}; "success" may be omitted.
const errorSchema = `{
	"type": "object",
	"required": ["error"],
	"properties": {
		"success": {"enum": [false, null]},
		"error": {"type": "string", "minLength": 1}
	}
}`

func successEnvelope(property, propertySchema string) string {
	return fmt.Sprintf(`{
	"type": "object",
	"required": ["success", %q],
	"properties": {
		"success": {"enum": [true]},
		%q: %s
	}
}`, property, property, propertySchema)
}

func mustCompileSchema(name, source string) *ResponseSchema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(source))
	if err != nil {
		panic(fmt.Sprintf("invalid %s response schema: %s", name, err))
	}
	return &ResponseSchema{name: name, schema: schema}
}

func (s *ResponseSchema) Name() string {
	return s.name
}

// Validate checks a parsed response body against the schema. If the body does not match, the
// error is a SchemaError listing each problem.
func (s *ResponseSchema) Validate(body ldvalue.Value) error {
	result, err := s.schema.Validate(gojsonschema.NewStringLoader(body.JSONString()))
	if err != nil {
		return fmt.Errorf("could not validate %s response: %w", s.name, err)
	}
	if result.Valid() {
		return nil
	}
	var problems []string
	for _, e := range result.Errors() {
		problems = append(problems, e.String())
	}
	return SchemaError{Schema: s.name, Problems: problems}
}
