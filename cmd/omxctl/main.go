package main

import (
	"github.com/NVIDIA/omx-store/pkg/cli"
)

func main() {
	cli.Execute()
}
