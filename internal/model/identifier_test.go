package model

import (
	"strings"
	"testing"
)

func TestValidIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "u1", want: true},
		{in: "user_42-abc", want: true},
		{in: strings.Repeat("a", 128), want: true},
		{in: "", want: false},
		{in: strings.Repeat("a", 129), want: false},
		{in: "u1/progress/x", want: false},
		{in: "../u1", want: false},
		{in: "user 1", want: false},
		{in: "потребител", want: false},
	}
	for _, tt := range tests {
		if got := ValidIdentifier(tt.in); got != tt.want {
			t.Errorf("ValidIdentifier(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
