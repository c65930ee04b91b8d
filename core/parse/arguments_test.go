package parse

import (
	"encoding/json"
	"testing"
)

func TestDecodeArguments(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    map[string]any
		wantErr bool
	}{
		{
			name:  "valid object",
			input: `{"weight_kg": 70, "height_m": 1.75}`,
			want:  map[string]any{"weight_kg": json.Number("70"), "height_m": json.Number("1.75")},
		},
		{
			name:  "booleans and strings",
			input: `{"is_male": true, "height_cm": "180"}`,
			want:  map[string]any{"is_male": true, "height_cm": "180"},
		},
		{
			name:  "empty input",
			input: "   ",
			want:  map[string]any{},
		},
		{
			name:  "null",
			input: "null",
			want:  map[string]any{},
		},
		{
			name:  "unquoted keys are repaired",
			input: `{tdd: 50}`,
			want:  map[string]any{"tdd": json.Number("50")},
		},
		{
			name:  "single quotes are repaired",
			input: `{'fructosamine': 300}`,
			want:  map[string]any{"fructosamine": json.Number("300")},
		},
		{
			name:  "trailing comma is repaired",
			input: `{"tdd": 50,}`,
			want:  map[string]any{"tdd": json.Number("50")},
		},
		{
			name:    "array is rejected",
			input:   `[1, 2, 3]`,
			wantErr: true,
		},
		{
			name:    "bare number is rejected",
			input:   `42`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeArguments([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeArguments() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("DecodeArguments() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("argument %q = %#v, want %#v", k, got[k], v)
				}
			}
		})
	}
}
