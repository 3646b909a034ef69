// Package movieapi provides a client for the hosted movie recommender API.
//
// The API exposes four read-only JSON endpoints: title search, a curated home
// feed per category, per-movie metadata, and genre-based recommendations. The
// client normalizes every call into a plain (data, error) result: HTTP
// statuses of 400 and above become an *APIError carrying the status code and
// a truncated body excerpt, transport failures are wrapped, and nothing ever
// panics across the package boundary.
//
// All responses, including errors, pass through a process-wide read-through
// cache with a fixed TTL (30s by default), so re-triggering the same view
// within the window does not hit the network again. Concurrent requests for
// the same path and parameters are collapsed into one upstream call.
//
// Create a client with the upstream base URL:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := movieapi.NewClient(
//		"https://movies.example.com",
//		logger,
//		movieapi.WithTimeout(25*time.Second),
//		movieapi.WithCacheTTL(30*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	results, err := client.Search(ctx, "batman")
package movieapi
