package logging

import "testing"

func TestMaskIMSI(t *testing.T) {
	tests := []struct {
		name    string
		imsi    string
		enabled bool
		want    string
	}{
		{"マスク有効", "440101234567890", true, "440101********0"},
		{"マスク無効", "440101234567890", false, "440101234567890"},
		{"短いIMSI", "4401012", true, "4401012"},
		{"空文字列", "", true, ""},
		{"最小マスク対象", "44010123", true, "440101*3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaskIMSI(tt.imsi, tt.enabled)
			if got != tt.want {
				t.Errorf("MaskIMSI(%q, %v) = %q, want %q", tt.imsi, tt.enabled, got, tt.want)
			}
		})
	}
}
