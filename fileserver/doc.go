// Package fileserver serves a directory tree over plain HTTP.  GET and HEAD
// requests follow net/http file-serving semantics: directory listings, MIME
// type inference and 404 for missing paths.  Every request is access logged;
// Prometheus metrics are optional and exposed on their own listener so they
// never shadow a served path.
package fileserver
