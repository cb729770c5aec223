package main

import "github.com/dbsmedya/autoprobe/cmd/autoprobe/cmd"

func main() {
	cmd.Execute()
}
