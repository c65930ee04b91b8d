package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/kaptinlin/jsonrepair"
)

// DecodeArguments decodes a JSON object into an argument map. Numbers are
// kept as json.Number so Coerce can check them exactly. Empty input and
// "null" yield an empty map.
//
// If the input is not valid JSON it is passed through jsonrepair and decoded
// again, so hand-typed input such as {weight_kg: 70, 'height_m': 1.75} is
// accepted.
func DecodeArguments(raw []byte) (map[string]any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return map[string]any{}, nil
	}

	args, err := decodeObject(trimmed)
	if err == nil {
		return args, nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(string(trimmed))
	if repairErr != nil {
		return nil, fmt.Errorf("decode arguments: %w (repair failed: %v)", err, repairErr)
	}
	args, err = decodeObject([]byte(repaired))
	if err != nil {
		return nil, fmt.Errorf("decode repaired arguments %s: %w", repaired, err)
	}
	return args, nil
}

func decodeObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var args map[string]any
	if err := dec.Decode(&args); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after arguments object")
	}
	if args == nil {
		args = map[string]any{}
	}
	return args, nil
}
