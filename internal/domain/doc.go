// Package domain holds the error vocabulary shared by the loaders, the store
// and the service. It has no dependencies on other internal packages.
package domain
