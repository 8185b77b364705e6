package services

import "testing"

func TestFormatSAR_Values(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect string
	}{
		{"zero", 0, "0.00 ريال"},
		{"small integer", 5, "5.00 ريال"},
		{"with decimals", 42.50, "42.50 ريال"},
		{"hundreds", 999.99, "999.99 ريال"},
		{"thousands", 1234.56, "1,234.56 ريال"},
		{"tens of thousands", 35000, "35,000.00 ريال"},
		{"hundreds of thousands", 123456.78, "123,456.78 ريال"},
		{"millions", 1234567.89, "1,234,567.89 ريال"},
		{"negative", -100, "-100.00 ريال"},
		{"negative thousands", -250000.50, "-250,000.50 ريال"},
		{"exact thousands boundary", 1000, "1,000.00 ريال"},
		{"rounding up", 0.005, "0.01 ريال"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatSAR(tt.input)
			if got != tt.expect {
				t.Errorf("FormatSAR(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"single digit", "5", "5"},
		{"three digits", "999", "999"},
		{"four digits", "1234", "1,234"},
		{"six digits", "123456", "123,456"},
		{"seven digits", "1234567", "1,234,567"},
		{"ten digits", "1234567890", "1,234,567,890"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := groupThousands(tt.input)
			if got != tt.expect {
				t.Errorf("groupThousands(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestFormatQty(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{"whole number", 10, "10"},
		{"zero", 0, "0"},
		{"half", 10.5, "10.5"},
		{"quarter", 0.25, "0.25"},
		{"large whole", 1000, "1000"},
		{"trailing zero dropped", 2.50, "2.5"},
		{"rounds up to whole", 2.995, "3"},
		{"rounds up to two", 1.999, "2"},
		{"rounds up to one", 0.999, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatQty(tt.input)
			if got != tt.want {
				t.Errorf("FormatQty(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
