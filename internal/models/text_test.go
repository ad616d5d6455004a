package models

import (
	"encoding/json"
	"testing"
)

func TestFlexStringDecodes(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{`{"employee_id": "E-12"}`, "E-12"},
		{`{"employee_id": 42}`, "42"},
		{`{"employee_id": 9876543210}`, "9876543210"},
		{`{"employee_id": null}`, ""},
		{`{"employee_id": true}`, "true"},
	}

	for _, tc := range cases {
		var schedule InterviewSchedule
		if err := json.Unmarshal([]byte(tc.raw), &schedule); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.raw, err)
		}
		if got := schedule.EmployeeID.String(); got != tc.want {
			t.Fatalf("decode %s = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestGenderKeepsNull(t *testing.T) {
	var app JobApplication
	if err := json.Unmarshal([]byte(`{"full_name": "A", "gender": null}`), &app); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if app.Gender != nil {
		t.Fatalf("expected nil gender, got %q", *app.Gender)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := map[float64]string{
		21.5:  "21.5",
		20:    "20",
		-3.25: "-3.25",
		0:     "0",
	}
	for value, want := range cases {
		if got := FormatNumber(value); got != want {
			t.Fatalf("FormatNumber(%v) = %q, want %q", value, got, want)
		}
	}
}
