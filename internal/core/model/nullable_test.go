package model

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
)

func TestNullableUnmarshalJSON(t *testing.T) {
	type payload struct {
		Due Nullable[string] `json:"due"`
	}

	type testCase struct {
		Name          string
		JSON          string
		ExpectedSet   bool
		ExpectedNull  bool
		ExpectedValue string
	}

	testCases := []testCase{
		{
			Name: "Absent",
			JSON: `{}`,
		},
		{
			Name:         "Null",
			JSON:         `{"due":null}`,
			ExpectedSet:  true,
			ExpectedNull: true,
		},
		{
			Name:          "Value",
			JSON:          `{"due":"2026-06-15"}`,
			ExpectedSet:   true,
			ExpectedValue: "2026-06-15",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var p payload
			if err := json.Unmarshal([]byte(tc.JSON), &p); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.ExpectedSet, p.Due.Set; e != g {
				t.Errorf("p.Due.Set: expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedNull, p.Due.Null; e != g {
				t.Errorf("p.Due.Null: expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedValue, p.Due.Value; e != g {
				t.Errorf("p.Due.Value: expected '%s', got '%s'", e, g)
			}
		})
	}
}

func TestNullableMarshalJSON(t *testing.T) {
	type payload struct {
		Due Nullable[string] `json:"due,omitzero"`
	}

	type testCase struct {
		Name     string
		Payload  payload
		Expected string
	}

	testCases := []testCase{
		{
			Name:     "Unset",
			Payload:  payload{},
			Expected: `{}`,
		},
		{
			Name:     "Null",
			Payload:  payload{Due: NewNull[string]()},
			Expected: `{"due":null}`,
		},
		{
			Name:     "Value",
			Payload:  payload{Due: NewNullable("2026-06-15")},
			Expected: `{"due":"2026-06-15"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			data, err := json.Marshal(tc.Payload)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.Expected, string(data); e != g {
				t.Errorf("json: expected '%s', got '%s'", e, g)
			}
		})
	}
}
