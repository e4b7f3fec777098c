// Package requestid provides HTTP middleware and helpers for request
// correlation identifiers.
//
// The middleware attaches an ID to every request: a valid client-supplied
// "X-Request-ID" header is reused, otherwise a new UUIDv4 is generated. The
// ID travels in the request context (WithContext/FromContext) and is echoed
// back to the client in the response header. LoggerExtractor integrates the
// ID with slog-based logging.
//
//	mux := http.NewServeMux()
//	mux.Handle("/hello", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//		id := requestid.FromContext(r.Context())
//		w.Write([]byte("hello, your request id is " + id))
//	}))
//	http.ListenAndServe(":8080", requestid.Middleware(mux))
//
// Invalid or empty client IDs are silently replaced; the package never
// returns errors.
package requestid
