package main

import "github.com/iksnae/casechat/cmd"

func main() {
	cmd.Execute()
}
