package db

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// Snapshot is one full result-set emission from a live query. Err is set on
// the final emission when the underlying listener fails; the channel is
// closed afterwards. A canceled context closes the channel without an error
// emission.
type Snapshot[T any] struct {
	Docs []T
	Err  error
}

// watchQuery turns a Firestore query into a stream of full result-set
// snapshots, the server-side equivalent of the storefront's onSnapshot
// subscriptions. Every emission carries the complete current result set.
// Cancel the context to release the listener; the returned channel is then
// closed.
func watchQuery[T any](ctx context.Context, query firestore.Query, decode func(doc *firestore.DocumentSnapshot) (T, error)) <-chan Snapshot[T] {
	out := make(chan Snapshot[T], 1)

	go func() {
		defer close(out)

		snapIter := query.Snapshots(ctx)
		defer snapIter.Stop()

		for {
			snap, err := snapIter.Next()
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				select {
				case out <- Snapshot[T]{Err: err}:
				case <-ctx.Done():
				}
				return
			}

			var docs []T
			for {
				doc, err := snap.Documents.Next()
				if err == iterator.Done {
					break
				}
				if err != nil {
					select {
					case out <- Snapshot[T]{Err: err}:
					case <-ctx.Done():
					}
					return
				}
				item, decErr := decode(doc)
				if decErr != nil {
					// Skip undecodable documents rather than killing the stream.
					log.Printf("watchQuery: skipping document %s: %v", doc.Ref.ID, decErr)
					continue
				}
				docs = append(docs, item)
			}

			select {
			case out <- Snapshot[T]{Docs: docs}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
