package validation

import "testing"

func TestValidateOutputFormat(t *testing.T) {
	const expected = "expected output format of pretty, csv or json, got "

	tests := []struct {
		format string
		valid  bool
	}{
		{"pretty", true},
		{"csv", true},
		{"json", true},
		{"", false},
		{"CSV", false},
		{" json", false},
		{"yaml", false},
	}

	for _, tt := range tests {
		err := ValidateOutputFormat(tt.format)
		if tt.valid {
			if err != nil {
				t.Errorf("ValidateOutputFormat(%q) error = %v", tt.format, err)
			}
			continue
		}
		if err == nil || err.Error() != expected+tt.format {
			t.Errorf("ValidateOutputFormat(%q) error = %v, expected %q", tt.format, err, expected+tt.format)
		}
	}
}
