// Package user exposes the read-only profile directory provisioned by the
// external identity provider. The portal never creates or mutates profiles;
// it only consults them for display names and notification addresses.
package user

import (
	"context"
	"errors"
	"strings"
)

var ErrNotFound = errors.New("profile not found")

type Profile struct {
	UserID    uint
	FirstName string
	LastName  string
	Email     string
}

func (p Profile) DisplayName() string {
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name == "" {
		return "Unknown"
	}
	return name
}

type Directory interface {
	GetProfile(ctx context.Context, userID uint) (*Profile, error)
}
