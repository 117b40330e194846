package main

import "chess/cmd/chessctl/cmd"

func main() {
	cmd.Execute()
}
