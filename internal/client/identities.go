package client

import (
	"context"
	"fmt"

	"github.com/subledger-io/subledger-go/internal/http"
	"github.com/subledger-io/subledger-go/pkg/subledger"
)

// IdentitiesClient implements subledger.IdentitiesClient.
type IdentitiesClient struct {
	core *core
	path resourcePath
}

// Create implements subledger.IdentitiesClient.Create. This is the bootstrap
// operation: it needs no credentials and its response is the only place the
// issued key secret ever appears.
func (c *IdentitiesClient) Create(ctx context.Context, request *subledger.IdentityCreateRequest) (*subledger.IdentityResponse, error) {
	resp, err := c.core.http.Post(ctx, c.path.String(), request)
	if err != nil {
		return nil, fmt.Errorf("creating identity: %w", err)
	}

	return decodeIdentity(resp)
}

// IdentityClient implements subledger.IdentityClient.
type IdentityClient struct {
	core *core
	path resourcePath
}

// Get implements subledger.IdentityClient.Get.
func (c *IdentityClient) Get(ctx context.Context) (*subledger.IdentityResponse, error) {
	if !c.core.http.HasCredentials() {
		return nil, subledger.ErrCredentialsRequired
	}

	resp, err := c.core.http.Get(ctx, c.path.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("getting identity: %w", err)
	}

	return decodeIdentity(resp)
}

// Update implements subledger.IdentityClient.Update.
func (c *IdentityClient) Update(ctx context.Context, request *subledger.IdentityUpdateRequest) (*subledger.IdentityResponse, error) {
	if !c.core.http.HasCredentials() {
		return nil, subledger.ErrCredentialsRequired
	}

	resp, err := c.core.http.Patch(ctx, c.path.String(), request)
	if err != nil {
		return nil, fmt.Errorf("updating identity: %w", err)
	}

	return decodeIdentity(resp)
}

// Keys implements subledger.IdentityClient.Keys.
func (c *IdentityClient) Keys() subledger.IdentityKeysClient {
	return &IdentityKeysClient{core: c.core, path: c.path.collection("keys")}
}

// Key implements subledger.IdentityClient.Key.
func (c *IdentityClient) Key(keyID string) subledger.IdentityKeyClient {
	return &IdentityKeyClient{core: c.core, path: c.path.item("keys", keyID)}
}

// IdentityKeysClient implements subledger.IdentityKeysClient.
type IdentityKeysClient struct {
	core *core
	path resourcePath
}

// Create implements subledger.IdentityKeysClient.Create.
func (c *IdentityKeysClient) Create(ctx context.Context, request *subledger.KeyCreateRequest) (*subledger.KeyResponse, error) {
	if !c.core.http.HasCredentials() {
		return nil, subledger.ErrCredentialsRequired
	}

	resp, err := c.core.http.Post(ctx, c.path.String(), request)
	if err != nil {
		return nil, fmt.Errorf("creating identity key: %w", err)
	}

	return decodeKey(resp)
}

// IdentityKeyClient implements subledger.IdentityKeyClient.
type IdentityKeyClient struct {
	core *core
	path resourcePath
}

// Get implements subledger.IdentityKeyClient.Get.
func (c *IdentityKeyClient) Get(ctx context.Context) (*subledger.KeyResponse, error) {
	if !c.core.http.HasCredentials() {
		return nil, subledger.ErrCredentialsRequired
	}

	resp, err := c.core.http.Get(ctx, c.path.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("getting identity key: %w", err)
	}

	return decodeKey(resp)
}

// Archive implements subledger.IdentityKeyClient.Archive.
func (c *IdentityKeyClient) Archive(ctx context.Context) (*subledger.KeyResponse, error) {
	if !c.core.http.HasCredentials() {
		return nil, subledger.ErrCredentialsRequired
	}

	resp, err := c.core.http.Post(ctx, c.path.action("archive"), nil)
	if err != nil {
		return nil, fmt.Errorf("archiving identity key: %w", err)
	}

	return decodeKey(resp)
}

func decodeIdentity(resp *http.Response) (*subledger.IdentityResponse, error) {
	var result subledger.IdentityResponse

	err := resp.DecodeJSON(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing identity response: %w", err)
	}

	return &result, nil
}

func decodeKey(resp *http.Response) (*subledger.KeyResponse, error) {
	var result subledger.KeyResponse

	err := resp.DecodeJSON(&result)
	if err != nil {
		return nil, fmt.Errorf("parsing identity key response: %w", err)
	}

	return &result, nil
}
