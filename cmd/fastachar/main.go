// cmd/fastachar/main.go
package main

import (
	"fastachar/internal/app"
	"fastachar/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
