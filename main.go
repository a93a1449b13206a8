package main

import "github.com/epeers/exposure/cmd"

// @title Exposure Analyzer API
// @version 1.0
// @description Recursive exposure analysis for fund-of-funds portfolios
func main() {
	cmd.Execute()
}
