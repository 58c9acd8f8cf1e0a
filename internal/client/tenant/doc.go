// Package tenant holds the views of the generated task-manager demo that
// runs under a tenant prefix of the backend.
package tenant
