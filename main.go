package main

import "github.com/yangzhi/snag/cmd"

func main() {
	cmd.Execute()
}
