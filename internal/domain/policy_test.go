package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanModify(t *testing.T) {
	tests := []struct {
		name    string
		actor   Actor
		ownerID string
		want    bool
	}{
		{
			name:    "owner may modify own resource",
			actor:   Actor{ID: "u1", Role: RoleUser},
			ownerID: "u1",
			want:    true,
		},
		{
			name:    "stranger may not modify",
			actor:   Actor{ID: "u2", Role: RoleUser},
			ownerID: "u1",
			want:    false,
		},
		{
			name:    "admin may modify anything",
			actor:   Actor{ID: "admin", Role: RoleAdmin},
			ownerID: "u1",
			want:    true,
		},
		{
			name:    "admin may modify own resource",
			actor:   Actor{ID: "admin", Role: RoleAdmin},
			ownerID: "admin",
			want:    true,
		},
		{
			name:    "empty actor id does not match empty owner as privilege",
			actor:   Actor{ID: "", Role: RoleUser},
			ownerID: "u1",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanModify(tt.actor, tt.ownerID))
		})
	}
}
