package service

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// FieldXTest is the request field holding the inputs to predict
const FieldXTest = "X_test"

var null = []byte("null")

// PredictionRequest holds the inputs of a single prediction call
type PredictionRequest struct {
	XTest []float64 `json:"X_test"`
}

// DecodeRequest parses a JSON request body. A missing body, a JSON value other than an object or an
// object without the field fails with ErrMissingField. Anything other than an array of JSON numbers
// fails with ErrInvalidType and a body that does not parse fails with ErrInternalFault.
func DecodeRequest(body []byte) (PredictionRequest, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, null) {
		return PredictionRequest{}, missingField()
	}
	if body[0] != '{' && json.Valid(body) {
		return PredictionRequest{}, missingField()
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return PredictionRequest{}, &Error{
			Kind: KindInternalFault,
			Msg:  "unable to parse request body",
			Err:  err,
		}
	}

	raw, exists := payload[FieldXTest]
	if !exists {
		return PredictionRequest{}, missingField()
	}

	var elems []json.RawMessage
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, null) {
		return PredictionRequest{}, invalidType(fmt.Sprintf("%s must be an array of numbers", FieldXTest))
	}
	if err := json.Unmarshal(raw, &elems); err != nil {
		return PredictionRequest{}, invalidType(fmt.Sprintf("%s must be an array of numbers", FieldXTest))
	}

	xTest := make([]float64, 0, len(elems))
	for i, elem := range elems {
		val, ok := parseNumber(elem)
		if !ok {
			return PredictionRequest{}, invalidType(fmt.Sprintf("%s[%d] must be a number", FieldXTest, i))
		}
		xTest = append(xTest, val)
	}
	return PredictionRequest{XTest: xTest}, nil
}

// parseNumber accepts only JSON number literals. Literals beyond the float64 range parse to ±Inf so
// they are rejected by the range check rather than as a type error.
func parseNumber(elem []byte) (float64, bool) {
	elem = bytes.TrimSpace(elem)
	if len(elem) == 0 {
		return 0, false
	}
	if c := elem[0]; c != '-' && (c < '0' || c > '9') {
		return 0, false
	}
	if !json.Valid(elem) {
		return 0, false
	}
	val, err := strconv.ParseFloat(string(elem), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return val, true
}

func missingField() error {
	return &Error{
		Kind: KindMissingField,
		Msg:  "Missing required field: " + FieldXTest,
	}
}

func invalidType(msg string) error {
	return &Error{
		Kind: KindInvalidType,
		Msg:  msg,
	}
}
