package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FlexString decodes a JSON string, number, or bool into its text form.
// Upstream APIs are not consistent about quoting ids and phone numbers.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		*s = FlexString(value)
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(data, &number); err == nil {
		*s = FlexString(number.String())
		return nil
	}
	var flag bool
	if err := json.Unmarshal(data, &flag); err != nil {
		return err
	}
	*s = FlexString(strconv.FormatBool(flag))
	return nil
}

func (s FlexString) String() string {
	return string(s)
}

// FormatNumber prints a float the short way: 21.5, 20, -3.25.
func FormatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
