package main

import "finsight/cmd"

func main() {
	cmd.Execute()
}
