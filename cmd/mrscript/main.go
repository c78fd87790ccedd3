package main

import "github.com/AdamWu1979/mrtrix3/cmd"

func main() {
	cmd.Execute()
}
