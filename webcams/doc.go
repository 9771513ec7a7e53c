// Package webcams provides a client for the webcams.travel REST API.
//
// Every call is a single GET against the /rest endpoint. The query string
// always carries the output format, the developer ID and the method
// identifier; operation parameters are merged on top of those, with the
// caller's values winning. The decoded response is handed back untouched.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := webcams.NewClient("your-devid", logger,
//		webcams.WithTimeout(15*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	payload, err := client.ListNearby(ctx, 46.5, 7.9,
//		webcams.Radius(5),
//		webcams.RadiusUnit("km"),
//		webcams.PerPage(25),
//	)
//
// Operations without a dedicated method go through Call:
//
//	payload, err := client.Call(ctx, "wct.webcams.list_by_region",
//		webcams.NewParams().Set("region", "CH.VS").Set("per_page", 50))
//
// # Error Handling
//
// Failures are never retried and never replaced by a fallback payload:
//
//   - TransportError: the request could not be made or its body read
//   - DecodeError: the body is not valid JSON
//
// Both match their sentinels (ErrTransport, ErrDecode) with errors.Is.
// Errors reported by the service itself arrive inside the payload; use
// APIFault to pick them out.
package webcams
