package main

import "github.com/GoCardsEdu/GoCards-API/cmd"

func main() {
	cmd.Execute()
}
