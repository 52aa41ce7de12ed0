package main

import (
	_ "embed"

	"github.com/haierkeys/light-notes-service/cmd"
)

//go:embed config/config.yaml
var c string

func main() {
	cmd.Execute(c)
}
