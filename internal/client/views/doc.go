// Package views holds the screens of the Boot_Lang client.
//
// A view owns its local state (loading gate, error and success banners,
// loaded data), exposes actions that validate input and call the backend,
// and renders itself as text. Views are mounted by the shell; every action
// is bound to the mount lifetime, so unmounting cancels in-flight calls and
// their late results are dropped.
package views
