package main

import "github.com/arloliu/ringitem/internal/cli"

func main() {
	cli.Execute()
}
