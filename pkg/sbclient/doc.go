// Package sbclient provides the main entry point for creating Subledger API
// clients.
//
// The simplest way to get a client is with identity key credentials:
//
//	client, err := sbclient.NewWithCredentials("https://api.subledger.com/v2", "key", "secret")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	book, err := client.Org("o1").Books().Create(ctx, &subledger.BookCreateRequest{
//		Description: "main ledger",
//	})
//
// For full control over timeouts, logging, and retries, build a
// subledger.Config and pass it to New.
package sbclient
