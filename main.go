package main

import "github.com/vultisig/addresscodec/internal/cmd"

func main() {
	cmd.Execute()
}
