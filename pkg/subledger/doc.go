// Package subledger defines the public types and interfaces for the
// Subledger API client.
//
// The package contains the resource navigation interfaces (Client,
// OrganizationClient, BookClient, ...), the request/response types for every
// resource, the listing parameters with their per-resource default policies,
// and the error taxonomy shared by all transports.
//
// Resource navigation mirrors the REST containment hierarchy of the API:
// organizations contain books, books contain accounts, journal entries,
// categories and reports, and accounts and journal entries contain lines.
// Collection-level and item-level navigators are distinct types, so an
// operation that requires a resource id (Update, Activate, Archive, sub
// resource navigation) is only reachable once that id has been supplied:
//
//	client.Org("o1").Book("b1").Account("a1").Balance(ctx, time.Now())
//	client.Org("o1").Book("b1").Accounts().List(ctx, nil)
//
// Most applications should construct a client through the sbclient package:
//
//	cli, err := sbclient.NewWithCredentials(ctx, "", "myKey", "mySecret")
//	if err != nil { ... }
//	books, err := cli.Org(orgID).Books().List(ctx, nil)
//
// All operations take a context.Context and return an explicit error. Errors
// from the API carry the server's exception message and HTTP status as an
// *APIError; transport failures and timeouts are distinguishable through the
// ErrTransportUnavailable and ErrRequestTimeout sentinels.
package subledger
