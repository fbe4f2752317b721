// Package greet exposes the one command the frontend invokes directly
// through the Wails service bridge, bypassing the backend HTTP API.
package greet

import "fmt"

// Service is bound into the Wails application at startup; its exported
// methods become callable from the frontend.
type Service struct{}

// Greet returns the welcome message for the given name.
func (s *Service) Greet(name string) string {
	return fmt.Sprintf("Hello, %s! Welcome to Lazy Learn.", name)
}
