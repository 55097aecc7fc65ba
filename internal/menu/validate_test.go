package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	leaf := &Action{Name: "leaf"}

	tests := []struct {
		name    string
		root    *Menu
		wantErr string
	}{
		{
			name: "valid nested tree",
			root: New("Main",
				Item{Key: "1", Entry: New("Sub", Item{Key: "a", Entry: leaf}, Item{Key: "0", Entry: leaf})},
				Item{Key: "m", Entry: leaf},
			),
		},
		{
			name:    "duplicate key differing in case",
			root:    New("Main", Item{Key: "a", Entry: leaf}, Item{Key: "A", Entry: leaf}),
			wantErr: "duplicate key",
		},
		{
			name:    "root exit collision",
			root:    New("Main", Item{Key: "0", Entry: leaf}),
			wantErr: "reserved",
		},
		{
			name:    "nested back collision",
			root:    New("Main", Item{Key: "1", Entry: New("Sub", Item{Key: "M", Entry: leaf})}),
			wantErr: "reserved",
		},
		{
			name:    "empty key",
			root:    New("Main", Item{Key: " ", Entry: leaf}),
			wantErr: "empty key",
		},
		{
			name:    "missing entry",
			root:    New("Main", Item{Key: "1"}),
			wantErr: "no entry",
		},
		{
			name:    "nil sub-menu",
			root:    New("Main", Item{Key: "1", Entry: (*Menu)(nil)}),
			wantErr: "nil sub-menu",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.root)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidate_Cycle(t *testing.T) {
	sub := New("Sub")
	root := New("Main", Item{Key: "1", Entry: sub})
	sub.Items = append(sub.Items, Item{Key: "1", Entry: root})

	assert.ErrorContains(t, Validate(root), "cycle")
	assert.Panics(t, func() { MustValidate(root) })
	assert.Error(t, Validate(nil))
}
