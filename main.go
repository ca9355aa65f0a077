/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/modfence/modfence/cmd"

func main() {
	cmd.Execute()
}
