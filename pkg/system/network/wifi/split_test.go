package network_wifi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitEscaped(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"escaped separator", `a\:b:c:d`, []string{"a:b", "c", "d"}},
		{"plain", "a:b:c:d", []string{"a", "b", "c", "d"}},
		{"empty input", "", []string{""}},
		{"empty fields", ":::", []string{"", "", "", ""}},
		{"trailing empty field", "a:b:", []string{"a", "b", ""}},
		{"escaped backslash", `a\\:b`, []string{`a\`, "b"}},
		{"escaped ordinary char", `a\bc`, []string{"abc"}},
		{"trailing backslash dropped", `ab\`, []string{"ab"}},
		{"bssid", `Home:A0\:63\:91\:2B\:9E\:65:72:WPA2`, []string{"Home", "A0:63:91:2B:9E:65", "72", "WPA2"}},
		{"wide characters", `中文:网络`, []string{"中文", "网络"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitEscaped(tt.in, ':'))
		})
	}
}
