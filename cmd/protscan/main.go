// cmd/protscan/main.go
package main

import (
	"protscan/internal/app"
	"protscan/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
