// Package http implements the REST transport of the novel service.
//
// It exposes route wiring, request handlers, and middleware. Request tracing,
// access logging, response compression, CORS and bearer authentication are
// handled here before requests are delegated to the service layer. Every
// failure is answered with a JSON body of the form {"detail": "..."}.
package http
