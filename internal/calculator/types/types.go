package calculator

// Operands is the JSON body accepted by the POST endpoints. Pointers
// keep binding's required check from rejecting a legitimate zero.
type Operands struct {
	A *float64 `json:"a" binding:"required"`
	B *float64 `json:"b" binding:"required"`
}

type CalculationResponse struct {
	A        float64 `json:"a"`
	B        float64 `json:"b"`
	Operator string  `json:"operator"`
	Result   float64 `json:"result"`
}
