// Package app provides the application service layer.
//
// The Service owns the single live instance of each session and store and is
// the only component that references more than one of them. It sequences
// fetch, transform, and publish for every user-triggered action, guards
// against stale in-flight responses, and owns the like-toggle decision.
package app
