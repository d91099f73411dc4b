package main

import "github.com/estatedesk/estate/cmd/estatectl/cmd"

func main() {
	cmd.Execute()
}
