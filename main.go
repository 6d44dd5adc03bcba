package main

import "klafsa/cmd"

func main() {
	cmd.Execute()
}
