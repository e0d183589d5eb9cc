package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInGroup(t *testing.T) {
	user := User{Username: "maria", Groups: []Group{{Name: GroupManager}}}

	assert.True(t, user.InGroup(GroupManager))
	assert.False(t, user.InGroup(GroupDeliveryCrew))
}

func TestInGroupNoMemberships(t *testing.T) {
	user := User{Username: "bare"}

	assert.False(t, user.InGroup(GroupManager))
	assert.False(t, user.InGroup(GroupDeliveryCrew))
}

func TestRoleOf(t *testing.T) {
	tests := []struct {
		name string
		user User
		want Role
	}{
		{"admin wins over groups", User{IsAdmin: true, Groups: []Group{{Name: GroupManager}}}, RoleAdmin},
		{"manager group", User{Groups: []Group{{Name: GroupManager}}}, RoleManager},
		{"delivery crew group", User{Groups: []Group{{Name: GroupDeliveryCrew}}}, RoleDelivery},
		{"manager wins over delivery", User{Groups: []Group{{Name: GroupDeliveryCrew}, {Name: GroupManager}}}, RoleManager},
		{"no groups means customer", User{}, RoleCustomer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoleOf(&tt.user))
		})
	}
}
