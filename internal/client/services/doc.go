// Package services contains application services of the Boot_Lang client.
//
// AuthService runs login, registration, logout and session refresh against
// the backend and keeps the session holder in step. AccountService runs the
// self-service profile and password flows. Both validate input with the
// forms package before the first request.
package services
