// Package extauth links local identities to an external auth provider.
// Admin-created users are registered with the provider first; the returned
// reference is stored on the local identity so the mobile client can sign in
// through the provider later.
package extauth

import (
	"context"
	"log"

	"github.com/google/uuid"
)

type Provider interface {
	// CreateUser registers the identity with the provider and returns an
	// opaque reference.
	CreateUser(ctx context.Context, phoneNumber, fullName string) (string, error)
	// DeleteUser removes a previously created identity. Used to roll back
	// when local persistence fails after the external create succeeded.
	DeleteUser(ctx context.Context, ref string) error
}

// LocalProvider issues references without calling out anywhere. It stands in
// for the real provider in deployments that do not use external sign-in.
type LocalProvider struct{}

func (LocalProvider) CreateUser(_ context.Context, phoneNumber, _ string) (string, error) {
	ref := uuid.NewString()
	log.Printf("extauth_local create phone=%s ref=%s", phoneNumber, ref)
	return ref, nil
}

func (LocalProvider) DeleteUser(_ context.Context, ref string) error {
	log.Printf("extauth_local delete ref=%s", ref)
	return nil
}
