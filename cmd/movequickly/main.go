package main

import "github.com/quicklayout/movequickly/cmd"

func main() {
	cmd.Execute()
}
