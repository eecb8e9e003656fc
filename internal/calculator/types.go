package calculator

// CalcRequest is the JSON body for POST /calculator/{operation}. Operands are
// pointers so that a missing field is distinguishable from zero.
type CalcRequest struct {
	A *float64 `json:"a" validate:"required"`
	B *float64 `json:"b" validate:"required"`
}

// CalcResponse is the JSON response for a successful calculation.
type CalcResponse struct {
	Operation Operation `json:"operation"`
	A         float64   `json:"a"`
	B         float64   `json:"b"`
	Result    float64   `json:"result"`
}
