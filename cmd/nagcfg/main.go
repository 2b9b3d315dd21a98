package main

import (
	"github.com/NVIDIA/nagcfg/pkg/cli"
)

func main() {
	cli.Execute()
}
