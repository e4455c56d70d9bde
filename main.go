// Main entry point for the application
package main

import (
	"fadeshow/internal/ui"
)

func main() {
	ui.CreateApplication()
}
