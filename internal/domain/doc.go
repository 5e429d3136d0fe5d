// Package domain contains the resource entities served by the API (users,
// courses, orders, products and students) together with their field
// constraints. It is independent of HTTP and of the storage engine.
package domain
