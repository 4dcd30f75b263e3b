package main

import (
	"github.com/karl0ss/downgrangefixtures-ical/internal/cli"
)

func main() {
	cli.Execute()
}
