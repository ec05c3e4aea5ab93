package core

import (
	"testing"

	"github.com/automoto/shootr/shared/messages"
	"github.com/automoto/shootr/shared/netcomponents"
)

func TestApplyKey(t *testing.T) {
	tests := []struct {
		name   string
		start  netcomponents.NetAccelerationData
		events []messages.KeyEvent
		want   netcomponents.NetAccelerationData
	}{
		{
			name:   "up press",
			events: []messages.KeyEvent{messages.NewKeyDown(messages.KeyArrowUp)},
			want:   netcomponents.NetAccelerationData{Y: -5},
		},
		{
			name: "up press and release",
			events: []messages.KeyEvent{
				messages.NewKeyDown(messages.KeyArrowUp),
				messages.NewKeyUp(messages.KeyArrowUp),
			},
			want: netcomponents.NetAccelerationData{},
		},
		{
			name: "release of opposite key keeps direction",
			events: []messages.KeyEvent{
				messages.NewKeyDown(messages.KeyArrowUp),
				messages.NewKeyDown(messages.KeyArrowDown),
				messages.NewKeyUp(messages.KeyArrowUp),
			},
			want: netcomponents.NetAccelerationData{Y: 5},
		},
		{
			name: "horizontal axis is independent",
			events: []messages.KeyEvent{
				messages.NewKeyDown(messages.KeyArrowLeft),
				messages.NewKeyDown(messages.KeyArrowDown),
				messages.NewKeyUp(messages.KeyArrowRight),
			},
			want: netcomponents.NetAccelerationData{X: -5, Y: 5},
		},
		{
			name:   "unknown key ignored",
			start:  netcomponents.NetAccelerationData{X: 5},
			events: []messages.KeyEvent{messages.NewKeyDown("Space")},
			want:   netcomponents.NetAccelerationData{X: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := tt.start
			for _, ev := range tt.events {
				applyKey(&acc, ev)
			}
			if acc != tt.want {
				t.Fatalf("got %+v, want %+v", acc, tt.want)
			}
		})
	}
}
