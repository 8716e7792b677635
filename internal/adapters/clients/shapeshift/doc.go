// Package shapeshift is the ShapeShift.io API adapter.
//
// Every operation makes exactly one round-trip through [clients.Client] and
// runs the same pipeline:
//
//  1. Build the path (and, for POST endpoints, the form body).
//  2. Send it. A transport failure becomes a RequestFailed [domain.Error].
//  3. [Decode] the body into a [Payload]. Undecodable bodies are MalformedResponse.
//  4. [Classify] the payload using the endpoint's ErrorTolerant flag.
//  5. Translate the success payload into the domain model.
//
// # Error Convention
//
// ShapeShift answers HTTP 200 for failures too, signalling them with an
// "error" (or "err") field in an object body:
//
//   - "Unknown pair" → [domain.ErrUnknownPair]
//   - "This address is NOT a ShapeShift deposit address. ..." → [domain.ErrNotDepositAddress]
//   - "Unable to find pending transaction" → [domain.ErrNoPendingTransaction]
//   - "No transaction found." → [domain.ErrNoTransactionFound]
//   - anything else → [domain.ErrAPIError]
//
// The address validation endpoint reports invalid addresses through the same
// field, so it is marked ErrorTolerant: only the four messages above fail there.
//
// # Secrets
//
// API keys travel in URL paths (/txbyapikey, /txbyaddress). Paths are never
// logged; errors carry the operation name instead.
package shapeshift
