package main

import "github.com/sukanto-m/smart-log-analyser/internal/cmd"

func main() {
	cmd.Execute()
}
