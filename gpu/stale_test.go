package gpu

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsSurfaceStale(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "outdated", err: errors.New("Surface outdated"), want: true},
		{name: "lost", err: errors.New("Surface lost"), want: true},
		{name: "timeout", err: errors.New("Surface timeout"), want: true},
		{name: "timed out", err: errors.New("surface image acquisition timed out"), want: true},
		{name: "wrapped", err: fmt.Errorf("get current texture: %w", errors.New("Surface Outdated")), want: true},
		{name: "device error", err: errors.New("device destroyed"), want: false},
		{name: "validation error", err: errors.New("validation error in BeginRenderPass"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSurfaceStale(tt.err); got != tt.want {
				t.Errorf("IsSurfaceStale(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
