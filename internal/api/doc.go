// Package api serves floor-plan generation over HTTP.
//
// Routes:
//
//	GET  /healthz                          liveness probe
//	POST /v1/generate?style=&seed=&format= room graph in, tile map out
//	POST /v1/validate                      room graph in, summary out
//
// Every response carries an X-Request-ID header. Errors are JSON objects
// with the machine-readable code from pkg/errors and a message:
//
//	{"code": "UNKNOWN_CONNECTION", "message": "...", "request_id": "..."}
package api
