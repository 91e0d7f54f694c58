package main

import "github.com/SphynxHF/Hello-World/cli"

func main() {
	cli.Main()
}
