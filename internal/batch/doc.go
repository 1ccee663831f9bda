// Package batch runs a sequence of words through the pronunciation client,
// strictly one at a time and in input order. Individual word failures are
// recorded and never abort the batch; no retries are performed.
package batch
