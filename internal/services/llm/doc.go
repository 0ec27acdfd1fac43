// Package llm provides the OpenRouter-compatible chat client behind every
// generation stage.
//
// # Entry Points
//
// NewClient: construct a client from Config.
// Client.Complete: send system/user prompts, receive the model's text.
//
// # Retry Behaviour
//
// The client retries on HTTP 408/429/5xx errors and network timeouts with
// exponential backoff (base 1s, max 10s, up to 3 attempts by default) and
// honors Retry-After headers. Context cancellation aborts retries
// immediately. Any error that survives the retry budget is terminal for the
// invocation; no caller above this package retries.
package llm
