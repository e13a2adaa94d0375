package main

import "github.com/jsphweid/zzsound/cmd"

func main() {
	cmd.Execute()
}
